//go:build wireinject

package main

import (
	"context"

	"github.com/google/wire"
	"github.com/rs/zerolog"

	"lumina-server/concierge-api/internal/config"
	"lumina-server/concierge-api/internal/domain/cart"
	"lumina-server/concierge-api/internal/domain/chat"
	"lumina-server/concierge-api/internal/domain/image"
	"lumina-server/concierge-api/internal/domain/llm"
	"lumina-server/concierge-api/internal/domain/menu"
	"lumina-server/concierge-api/internal/domain/tool"
	"lumina-server/concierge-api/internal/domain/voice"
	"lumina-server/concierge-api/internal/infrastructure/imagegen"
	"lumina-server/concierge-api/internal/infrastructure/llmprovider"
	"lumina-server/concierge-api/internal/infrastructure/logger"
	"lumina-server/concierge-api/internal/infrastructure/realtime"
	"lumina-server/concierge-api/internal/interfaces/httpserver"
	"lumina-server/concierge-api/internal/interfaces/httpserver/handlers"
	"lumina-server/concierge-api/internal/worker"
)

var conciergeSet = wire.NewSet(
	menu.NewCatalog,
	cart.NewStore,
	chat.NewRegistry,
	newExecutor,
	newChatProvider,
	wire.Bind(new(llm.Provider), new(*llmprovider.Client)),
	newOrchestrator,
	newImageGenerator,
	newImageService,
	newTaskQueue,
	newWorkerPool,
	newRealtimeDialer,
	wire.Bind(new(voice.Dialer), new(*realtime.Dialer)),
	newVoiceManager,
	newHandlerProvider,
)

// BuildApplication demonstrates how to assemble the concierge service with Wire.
func BuildApplication(ctx context.Context) (*Application, error) {
	wire.Build(
		config.Load,
		logger.New,
		conciergeSet,
		httpserver.New,
		NewApplication,
	)
	return nil, nil
}

func newExecutor(catalog *menu.Catalog, cartStore *cart.Store, log zerolog.Logger) *tool.Executor {
	return tool.NewExecutor(catalog, cartStore, log)
}

func newChatProvider(cfg *config.Config) *llmprovider.Client {
	return llmprovider.NewClient(cfg.ChatAPIURL, cfg.ChatAPIKey)
}

func newOrchestrator(
	cfg *config.Config,
	provider llm.Provider,
	executor *tool.Executor,
	cartStore *cart.Store,
	log zerolog.Logger,
) *chat.Orchestrator {
	return chat.NewOrchestrator(provider, executor, cartStore, cfg.ChatModel, cfg.MaxToolRounds, cfg.ChatTurnTimeout, log)
}

func newImageGenerator(cfg *config.Config) image.Generator {
	if !cfg.ImageGenEnabled() {
		return nil
	}
	return imagegen.NewClient(cfg.ImageAPIURL, cfg.ImageAPIKey, cfg.ImageModel)
}

func newImageService(generator image.Generator, log zerolog.Logger) *image.Service {
	return image.NewService(generator, log)
}

func newTaskQueue() *worker.TaskQueue {
	return worker.NewTaskQueue(0)
}

func newWorkerPool(queue *worker.TaskQueue, images *image.Service, cfg *config.Config, log zerolog.Logger) *worker.Pool {
	return worker.NewPool(queue, images, worker.Config{WorkerCount: cfg.WarmupWorkers}, log)
}

func newRealtimeDialer(cfg *config.Config, catalog *menu.Catalog, log zerolog.Logger) *realtime.Dialer {
	return realtime.NewDialer(
		cfg.RealtimeAPIURL,
		cfg.RealtimeAPIKey,
		cfg.RealtimeModel,
		cfg.RealtimeVoice,
		chat.SystemPrompt(catalog),
		log,
	)
}

func newVoiceManager(dialer voice.Dialer, executor *tool.Executor, log zerolog.Logger) *voice.Manager {
	return voice.NewManager(dialer, executor, voice.NewPlaybackScheduler(nil), log)
}

func newHandlerProvider(
	cfg *config.Config,
	registry *chat.Registry,
	orchestrator *chat.Orchestrator,
	catalog *menu.Catalog,
	cartStore *cart.Store,
	images *image.Service,
	pool *worker.Pool,
	voiceManager *voice.Manager,
	log zerolog.Logger,
) *handlers.Provider {
	return handlers.NewProvider(registry, orchestrator, catalog, cartStore, images, pool, voiceManager, cfg.VoiceEnabled(), log)
}
