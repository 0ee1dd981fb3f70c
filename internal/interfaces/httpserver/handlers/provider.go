package handlers

import (
	"github.com/rs/zerolog"

	"lumina-server/concierge-api/internal/domain/cart"
	"lumina-server/concierge-api/internal/domain/chat"
	"lumina-server/concierge-api/internal/domain/image"
	"lumina-server/concierge-api/internal/domain/menu"
	"lumina-server/concierge-api/internal/domain/voice"
	"lumina-server/concierge-api/internal/worker"
)

// Provider wires all HTTP handlers for dependency injection.
type Provider struct {
	Chat  *ChatHandler
	Cart  *CartHandler
	Menu  *MenuHandler
	Image *ImageHandler
	Voice *VoiceHandler
}

// NewProvider constructs the handler provider with domain services.
func NewProvider(
	registry *chat.Registry,
	orchestrator *chat.Orchestrator,
	catalog *menu.Catalog,
	cartStore *cart.Store,
	images *image.Service,
	pool *worker.Pool,
	voiceManager *voice.Manager,
	voiceEnabled bool,
	log zerolog.Logger,
) *Provider {
	return &Provider{
		Chat:  NewChatHandler(registry, orchestrator, chat.SystemPrompt(catalog), log),
		Cart:  NewCartHandler(catalog, cartStore, log),
		Menu:  NewMenuHandler(catalog, log),
		Image: NewImageHandler(images, catalog, pool, log),
		Voice: NewVoiceHandler(voiceManager, voiceEnabled, log),
	}
}
