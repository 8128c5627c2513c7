package modules

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"
)

type runner interface {
	Run(ctx context.Context) error
}

// Worker runs a long-lived background loop inside the application group.
type Worker struct {
	Name string
}

func (w Worker) Run(ctx context.Context, g *errgroup.Group, r runner) {
	g.Go(func() error {
		logger(ctx).Info("worker started", slog.String("worker", w.Name))

		if err := r.Run(ctx); err != nil {
			return fmt.Errorf("%s.Run: %w", w.Name, err)
		}

		logger(ctx).Info("worker stopped", slog.String("worker", w.Name))

		return nil
	})
}
