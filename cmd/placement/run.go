package main

import (
	"context"
	"fmt"

	"go.uber.org/fx"
)

// run starts the graph and blocks until a signal or an fx shutdown request.
func run(ctx context.Context, app *fx.App) error {
	if err := app.Start(ctx); err != nil {
		return fmt.Errorf("failed to start placement service: %w", err)
	}

	select {
	case <-ctx.Done():
	case <-app.Done():
	}

	stopCtx, cancel := context.WithTimeout(context.Background(), app.StopTimeout())
	defer cancel()
	if err := app.Stop(stopCtx); err != nil {
		return fmt.Errorf("failed to stop placement service: %w", err)
	}
	return nil
}
