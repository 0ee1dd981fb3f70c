package worker

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"lumina-server/concierge-api/internal/domain/image"
	"lumina-server/concierge-api/internal/domain/menu"
	"lumina-server/concierge-api/internal/infrastructure/metrics"
)

// Pool runs background workers that pre-resolve dish images so first paint
// never waits on generation.
type Pool struct {
	queue       *TaskQueue
	images      *image.Service
	workerCount int
	taskTimeout time.Duration
	log         zerolog.Logger
	wg          sync.WaitGroup
}

// Config contains worker pool configuration.
type Config struct {
	WorkerCount int
	TaskTimeout time.Duration
}

// NewPool creates a new warmup worker pool.
func NewPool(queue *TaskQueue, images *image.Service, cfg Config, log zerolog.Logger) *Pool {
	if cfg.WorkerCount <= 0 {
		cfg.WorkerCount = 2
	}
	if cfg.TaskTimeout <= 0 {
		cfg.TaskTimeout = 2 * time.Minute
	}
	return &Pool{
		queue:       queue,
		images:      images,
		workerCount: cfg.WorkerCount,
		taskTimeout: cfg.TaskTimeout,
		log:         log.With().Str("component", "warmup-pool").Logger(),
	}
}

// Start launches the workers. They run until ctx is cancelled.
func (p *Pool) Start(ctx context.Context) {
	p.log.Info().Int("worker_count", p.workerCount).Msg("starting warmup pool")
	for i := 0; i < p.workerCount; i++ {
		id := i + 1
		p.wg.Add(1)
		go func() {
			defer p.wg.Done()
			p.run(ctx, id)
		}()
	}
}

// Wait blocks until all workers have exited.
func (p *Pool) Wait() {
	p.wg.Wait()
}

// EnqueueCatalog schedules the hero image plus every catalog dish and
// returns the number of accepted jobs.
func (p *Pool) EnqueueCatalog(catalog *menu.Catalog) int {
	accepted := 0
	if p.queue.Enqueue(Task{DishName: image.HeroDish, Description: image.HeroDescription}) {
		accepted++
	}
	for _, item := range catalog.List() {
		if p.queue.Enqueue(Task{DishName: item.Name, Description: item.Description}) {
			accepted++
		}
	}
	return accepted
}

func (p *Pool) run(ctx context.Context, id int) {
	log := p.log.With().Int("worker_id", id).Logger()
	for {
		select {
		case <-ctx.Done():
			return
		case task := <-p.queue.Tasks():
			metrics.WarmupQueueDepth.Set(float64(p.queue.Depth()))
			p.process(ctx, log, task)
		}
	}
}

func (p *Pool) process(ctx context.Context, log zerolog.Logger, task Task) {
	taskCtx, cancel := context.WithTimeout(ctx, p.taskTimeout)
	defer cancel()

	url, source := p.images.Resolve(taskCtx, task.DishName, task.Description)
	if url == "" {
		metrics.WarmupJobsTotal.WithLabelValues("failed").Inc()
		log.Warn().Str("dish", task.DishName).Msg("warmup left dish unresolved")
		return
	}
	metrics.WarmupJobsTotal.WithLabelValues("completed").Inc()
	log.Debug().
		Str("dish", task.DishName).
		Str("source", string(source)).
		Dur("queued_for", time.Since(task.QueuedAt)).
		Msg("dish image warmed")
}
