package worker

import (
	"time"

	"lumina-server/concierge-api/internal/infrastructure/metrics"
)

// Task is one image warmup job.
type Task struct {
	DishName    string
	Description string
	QueuedAt    time.Time
}

// TaskQueue is a bounded in-memory warmup queue. Enqueue drops the task
// when the queue is full; warmup is best-effort and a dropped job just
// means the image resolves lazily on first request.
type TaskQueue struct {
	tasks chan Task
}

func NewTaskQueue(capacity int) *TaskQueue {
	if capacity <= 0 {
		capacity = 64
	}
	return &TaskQueue{tasks: make(chan Task, capacity)}
}

// Enqueue adds a task, reporting whether it was accepted.
func (q *TaskQueue) Enqueue(task Task) bool {
	task.QueuedAt = time.Now()
	select {
	case q.tasks <- task:
		metrics.WarmupQueueDepth.Set(float64(len(q.tasks)))
		return true
	default:
		metrics.WarmupJobsTotal.WithLabelValues("dropped").Inc()
		return false
	}
}

// Tasks exposes the receive side for workers.
func (q *TaskQueue) Tasks() <-chan Task {
	return q.tasks
}

// Depth returns the number of pending tasks.
func (q *TaskQueue) Depth() int {
	return len(q.tasks)
}
