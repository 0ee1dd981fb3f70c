package image

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"lumina-server/concierge-api/internal/infrastructure/metrics"
)

// Generator produces an image URL for a rendered prompt. Implementations
// talk to the generation provider; a nil Generator means the service runs
// on the static table alone.
type Generator interface {
	GenerateImage(ctx context.Context, prompt string) (string, error)
}

// Source labels where a resolved URL came from.
type Source string

const (
	SourceCache     Source = "cache"
	SourceGenerated Source = "generated"
	SourceStatic    Source = "static"
	SourceNone      Source = "none"
)

const promptTemplate = "Professional high-end food photography of %s. %s. " +
	"Michelin star plating, macro detail, cinematic lighting, 8k resolution, " +
	"photorealistic, depth of field."

// inflightCall coalesces concurrent generation requests for one dish name.
// Fields are written once before done closes.
type inflightCall struct {
	done chan struct{}
	url  string
	src  Source
}

// Service resolves dish names to image URLs, cache first. The cache is
// seeded with the static reference table and only grows; a generation
// failure never removes or replaces an entry.
type Service struct {
	mu        sync.Mutex
	cache     map[string]string
	inflight  map[string]*inflightCall
	generator Generator
	log       zerolog.Logger
}

func NewService(generator Generator, log zerolog.Logger) *Service {
	cache := make(map[string]string, len(staticImages))
	for name, url := range staticImages {
		cache[name] = url
	}
	return &Service{
		cache:     cache,
		inflight:  make(map[string]*inflightCall),
		generator: generator,
		log:       log.With().Str("component", "image-service").Logger(),
	}
}

// Resolve returns an image URL for the dish, or "" with SourceNone when
// neither generation nor the static table can serve it. Concurrent calls
// for the same name share one generation; distinct names run in parallel.
func (s *Service) Resolve(ctx context.Context, dishName, description string) (string, Source) {
	s.mu.Lock()
	if url, ok := s.cache[dishName]; ok {
		s.mu.Unlock()
		metrics.ImageResolutionsTotal.WithLabelValues(string(SourceCache)).Inc()
		return url, SourceCache
	}
	if call, ok := s.inflight[dishName]; ok {
		s.mu.Unlock()
		select {
		case <-call.done:
			metrics.ImageResolutionsTotal.WithLabelValues(string(call.src)).Inc()
			return call.url, call.src
		case <-ctx.Done():
			url, src := s.fallback(dishName)
			metrics.ImageResolutionsTotal.WithLabelValues(string(src)).Inc()
			return url, src
		}
	}
	call := &inflightCall{done: make(chan struct{})}
	s.inflight[dishName] = call
	s.mu.Unlock()

	url, src := s.generate(ctx, dishName, description)

	call.url, call.src = url, src
	s.mu.Lock()
	if src == SourceGenerated {
		s.cache[dishName] = url
	}
	delete(s.inflight, dishName)
	s.mu.Unlock()
	close(call.done)

	metrics.ImageResolutionsTotal.WithLabelValues(string(src)).Inc()
	return url, src
}

func (s *Service) generate(ctx context.Context, dishName, description string) (string, Source) {
	if s.generator == nil {
		return s.fallback(dishName)
	}

	prompt := fmt.Sprintf(promptTemplate, dishName, description)
	start := time.Now()
	url, err := s.generator.GenerateImage(ctx, prompt)
	metrics.ImageGenerationDuration.Observe(time.Since(start).Seconds())
	if err != nil || url == "" {
		s.log.Warn().Err(err).Str("dish", dishName).Msg("image generation failed, falling back")
		return s.fallback(dishName)
	}
	return url, SourceGenerated
}

func (s *Service) fallback(dishName string) (string, Source) {
	if url, ok := staticImages[dishName]; ok {
		return url, SourceStatic
	}
	return "", SourceNone
}

// Cached reports whether a URL is already held for the dish, without
// triggering generation.
func (s *Service) Cached(dishName string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	url, ok := s.cache[dishName]
	return url, ok
}
