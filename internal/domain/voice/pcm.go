package voice

import (
	"encoding/binary"
	"time"
)

// Audio format constants. Upstream mic audio and downstream playback audio
// are both 16-bit linear PCM, mono, but at different sample rates.
const (
	InputSampleRate  = 16000
	OutputSampleRate = 24000
	bytesPerSample   = 2
)

// FrameDuration returns the playback duration of a PCM16 mono frame at the
// given sample rate. Odd trailing bytes are ignored.
func FrameDuration(frame []byte, sampleRate int) time.Duration {
	if sampleRate <= 0 {
		return 0
	}
	samples := len(frame) / bytesPerSample
	return time.Duration(samples) * time.Second / time.Duration(sampleRate)
}

// EncodeSamples packs int16 samples as little-endian PCM bytes.
func EncodeSamples(samples []int16) []byte {
	out := make([]byte, len(samples)*bytesPerSample)
	for i, s := range samples {
		binary.LittleEndian.PutUint16(out[i*bytesPerSample:], uint16(s))
	}
	return out
}

// DecodeSamples unpacks little-endian PCM bytes into int16 samples. An odd
// trailing byte is dropped.
func DecodeSamples(frame []byte) []int16 {
	n := len(frame) / bytesPerSample
	out := make([]int16, n)
	for i := 0; i < n; i++ {
		out[i] = int16(binary.LittleEndian.Uint16(frame[i*bytesPerSample:]))
	}
	return out
}
