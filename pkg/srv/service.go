package srv

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sandevgo/promptcmd/pkg/log"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 5 * time.Second

type Service interface {
	Start(ctx context.Context) error
	Shutdown(ctx context.Context) error
}

// Run starts every service and blocks until ctx is done or the first
// service's Start returns. Services are then shut down in reverse order.
// Context cancellation is not reported as an error.
func Run(ctx context.Context, services []Service) error {
	logger := log.FromCtx(ctx)

	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	g, gctx := errgroup.WithContext(runCtx)
	for _, service := range services {
		g.Go(func() error {
			defer cancel()
			if err := service.Start(gctx); err != nil && !errors.Is(err, context.Canceled) {
				return fmt.Errorf("%T failed: %w", service, err)
			}
			return nil
		})
	}
	err := g.Wait()

	shutdownCtx, stop := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
	defer stop()
	for i := len(services) - 1; i >= 0; i-- {
		if serr := services[i].Shutdown(shutdownCtx); serr != nil {
			logger.Error().Err(serr).Msgf("%T failed to shutdown", services[i])
		}
	}
	return err
}
