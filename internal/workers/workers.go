package workers

import "context"

type Workers struct {
	workers []Worker
}

// New aggregates the given workers. Run starts them in order.
func New(workers ...Worker) *Workers {
	return &Workers{workers: workers}
}

func (w *Workers) Run(ctx context.Context) {
	for _, worker := range w.workers {
		worker.Run(ctx)
	}
}
