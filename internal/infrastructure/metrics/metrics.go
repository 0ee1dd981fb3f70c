package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Concierge-API Metrics
var (
	// Request counters
	RequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "lumina",
			Subsystem: "concierge_api",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests",
		},
		[]string{"method", "endpoint", "status"},
	)

	// Request duration histogram
	RequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "lumina",
			Subsystem: "concierge_api",
			Name:      "request_duration_seconds",
			Help:      "HTTP request duration in seconds",
			Buckets:   []float64{0.1, 0.5, 1, 2, 5, 10, 30, 60},
		},
		[]string{"method", "endpoint"},
	)

	// Chat turn counter
	ChatTurnsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "lumina",
			Subsystem: "concierge_api",
			Name:      "chat_turns_total",
			Help:      "Total concierge chat turns by outcome",
		},
		[]string{"status"},
	)

	// Tool-call rounds per chat turn
	ChatToolRounds = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "lumina",
			Subsystem: "concierge_api",
			Name:      "chat_tool_rounds",
			Help:      "Tool-call rounds consumed per chat turn",
			Buckets:   []float64{0, 1, 2, 3, 4, 5},
		},
	)

	// Tool call counters
	ToolCallsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "lumina",
			Subsystem: "concierge_api",
			Name:      "tool_calls_total",
			Help:      "Total tool invocations executed against the cart",
		},
		[]string{"tool_name", "status"},
	)

	// Image resolution counter by source
	ImageResolutionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "lumina",
			Subsystem: "concierge_api",
			Name:      "image_resolutions_total",
			Help:      "Dish image resolutions by source (cache, generated, static, unavailable)",
		},
		[]string{"source"},
	)

	// Image generation duration
	ImageGenerationDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "lumina",
			Subsystem: "concierge_api",
			Name:      "image_generation_duration_seconds",
			Help:      "Remote image generation duration in seconds",
			Buckets:   []float64{0.5, 1, 2, 5, 10, 30, 60},
		},
	)

	// Voice session counter
	VoiceSessionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "lumina",
			Subsystem: "concierge_api",
			Name:      "voice_sessions_total",
			Help:      "Voice sessions by terminal outcome",
		},
		[]string{"outcome"},
	)

	// Voice frame counter
	VoiceFramesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "lumina",
			Subsystem: "concierge_api",
			Name:      "voice_frames_total",
			Help:      "Audio frames moved through the voice bridge",
		},
		[]string{"direction"},
	)

	// Warmup job counter
	WarmupJobsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "lumina",
			Subsystem: "concierge_api",
			Name:      "warmup_jobs_total",
			Help:      "Image warmup jobs processed",
		},
		[]string{"status"},
	)

	// Warmup queue depth gauge
	WarmupQueueDepth = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "lumina",
			Subsystem: "concierge_api",
			Name:      "warmup_queue_depth",
			Help:      "Pending image warmup jobs",
		},
	)
)
