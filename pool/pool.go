package pool

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

// Task is one unit of work executed by the pool.
type Task func(ctx context.Context) (any, error)

// Result is the outcome of one task.
type Result struct {
	// ID is a short random identifier assigned when the task starts.
	ID string

	// Index is the task's position in the submitted slice.
	Index int

	// Value is the task's return value, nil if it failed.
	Value any

	// Err is the task's failure, nil if it succeeded. A task skipped
	// because the context was cancelled carries the context error.
	Err error

	// Duration is the task's wall-clock execution time.
	Duration time.Duration
}

// Options configures a pool run.
type Options struct {
	// Workers is the maximum number of tasks executing concurrently.
	// If 0, the default (4) is used.
	Workers int

	// Logger logs task starts and completions when set.
	Logger *zerolog.Logger
}

const defaultWorkers = 4

// Run executes the tasks with at most Options.Workers running concurrently
// and returns one Result per task, in submission order.
//
// Task failures do not stop the run; they are recorded on the task's Result.
// Context cancellation stops scheduling new tasks — already-running tasks
// are expected to honor the context themselves — and is returned as the
// run error after all started tasks have finished.
func Run(ctx context.Context, tasks []Task, opts Options) ([]Result, error) {
	workers := opts.Workers
	if workers <= 0 {
		workers = defaultWorkers
	}
	results := make([]Result, len(tasks))

	// Wait cancels the group-derived context on return, so the run error
	// must come from the caller's context, not the derived one.
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, task := range tasks {
		g.Go(func() error {
			results[i] = runOne(gctx, i, task, opts.Logger)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return results, err
	}
	return results, ctx.Err()
}

// Stream executes the tasks like Run but delivers each Result as it
// completes. The channel is closed once every scheduled task has finished.
// A consumer that stops draining early must cancel ctx; cancellation
// releases workers blocked on delivery.
func Stream(ctx context.Context, tasks []Task, opts Options) <-chan Result {
	workers := opts.Workers
	if workers <= 0 {
		workers = defaultWorkers
	}
	out := make(chan Result)
	go func() {
		defer close(out)
		g, gctx := errgroup.WithContext(ctx)
		g.SetLimit(workers)
		for i, task := range tasks {
			g.Go(func() error {
				r := runOne(gctx, i, task, opts.Logger)
				select {
				case out <- r:
					return nil
				case <-gctx.Done():
					return gctx.Err()
				}
			})
		}
		_ = g.Wait()
	}()
	return out
}

func runOne(ctx context.Context, index int, task Task, logger *zerolog.Logger) Result {
	r := Result{
		ID:    uuid.New().String()[:8],
		Index: index,
	}
	if err := ctx.Err(); err != nil {
		r.Err = err
		return r
	}
	if logger != nil {
		logger.Debug().Str("task_id", r.ID).Int("index", index).Msg("task started")
	}
	start := time.Now()
	r.Value, r.Err = task(ctx)
	r.Duration = time.Since(start)
	if logger != nil {
		evt := logger.Debug()
		if r.Err != nil {
			evt = logger.Warn().Err(r.Err)
		}
		evt.Str("task_id", r.ID).Int("index", index).Dur("duration", r.Duration).Msg("task finished")
	}
	return r
}
