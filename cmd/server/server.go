package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"lumina-server/concierge-api/internal/config"
	"lumina-server/concierge-api/internal/domain/cart"
	"lumina-server/concierge-api/internal/domain/chat"
	"lumina-server/concierge-api/internal/domain/image"
	"lumina-server/concierge-api/internal/domain/menu"
	"lumina-server/concierge-api/internal/domain/tool"
	"lumina-server/concierge-api/internal/domain/voice"
	"lumina-server/concierge-api/internal/infrastructure/imagegen"
	"lumina-server/concierge-api/internal/infrastructure/llmprovider"
	"lumina-server/concierge-api/internal/infrastructure/logger"
	"lumina-server/concierge-api/internal/infrastructure/observability"
	"lumina-server/concierge-api/internal/infrastructure/realtime"
	"lumina-server/concierge-api/internal/interfaces/httpserver"
	"lumina-server/concierge-api/internal/interfaces/httpserver/handlers"
	"lumina-server/concierge-api/internal/worker"
)

type Application struct {
	httpServer *httpserver.HttpServer
	log        zerolog.Logger
}

func NewApplication(httpServer *httpserver.HttpServer, log zerolog.Logger) *Application {
	return &Application{
		httpServer: httpServer,
		log:        log,
	}
}

func (a *Application) Start(ctx context.Context) error {
	return a.httpServer.Run(ctx)
}

func main() {
	loadEnvFiles()

	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	log := logger.New(cfg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTelemetry, err := observability.Setup(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("initialize observability")
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		if err := shutdownTelemetry(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("shutdown telemetry")
		}
	}()

	catalog := menu.NewCatalog()
	cartStore := cart.NewStore()
	executor := tool.NewExecutor(catalog, cartStore, log)

	chatClient := llmprovider.NewClient(cfg.ChatAPIURL, cfg.ChatAPIKey)
	orchestrator := chat.NewOrchestrator(
		chatClient,
		executor,
		cartStore,
		cfg.ChatModel,
		cfg.MaxToolRounds,
		cfg.ChatTurnTimeout,
		log,
	)
	registry := chat.NewRegistry()

	var generator image.Generator
	if cfg.ImageGenEnabled() {
		generator = imagegen.NewClient(cfg.ImageAPIURL, cfg.ImageAPIKey, cfg.ImageModel)
	} else {
		log.Warn().Msg("image generation key missing, serving static imagery only")
	}
	images := image.NewService(generator, log)

	taskQueue := worker.NewTaskQueue(0)
	workerPool := worker.NewPool(taskQueue, images, worker.Config{WorkerCount: cfg.WarmupWorkers}, log)
	workerPool.Start(ctx)
	defer func() {
		log.Info().Msg("stopping worker pool")
		workerPool.Wait()
	}()
	if cfg.WarmupOnBoot && cfg.ImageGenEnabled() {
		enqueued := workerPool.EnqueueCatalog(catalog)
		log.Info().Int("enqueued", enqueued).Msg("queued image warmup for catalog")
	}

	realtimeDialer := realtime.NewDialer(
		cfg.RealtimeAPIURL,
		cfg.RealtimeAPIKey,
		cfg.RealtimeModel,
		cfg.RealtimeVoice,
		chat.SystemPrompt(catalog),
		log,
	)
	voiceManager := voice.NewManager(realtimeDialer, executor, voice.NewPlaybackScheduler(nil), log)
	defer voiceManager.Stop()

	handlerProvider := handlers.NewProvider(
		registry,
		orchestrator,
		catalog,
		cartStore,
		images,
		workerPool,
		voiceManager,
		cfg.VoiceEnabled(),
		log,
	)

	httpServer := httpserver.New(cfg, log, handlerProvider)
	app := NewApplication(httpServer, log)

	if err := app.Start(ctx); err != nil {
		log.Fatal().Err(err).Msg("application stopped with error")
	}

	log.Info().Msg("application exited cleanly")
}

func loadEnvFiles() {
	paths := []string{".env", "../.env"}
	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			if err := godotenv.Overload(path); err != nil {
				fmt.Fprintf(os.Stderr, "warning: failed to load %s: %v\n", path, err)
			}
		}
	}
}
