package cli

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/grfetch/pkg/cli/config"
	controller "github.com/m-mizutani/grfetch/pkg/controller/http"
	"github.com/m-mizutani/grfetch/pkg/utils/async"
	"github.com/urfave/cli/v3"
)

func cmdEmulate(cameraCfg *config.Camera) *cli.Command {
	var emulatorCfg config.Emulator

	return &cli.Command{
		Name:    "emulate",
		Aliases: []string{"e"},
		Usage:   "Serve a local directory through the camera HTTP API",
		Flags:   emulatorCfg.Flags(),
		Action: func(ctx context.Context, c *cli.Command) error {
			logger := ctxlog.From(ctx)

			logger.Info("Starting camera emulator",
				slog.String("addr", emulatorCfg.Addr),
				slog.String("photo_dir", emulatorCfg.PhotoDir),
			)

			server, err := controller.NewServer(
				ctx,
				emulatorCfg.PhotoDir,
				controller.WithAddr(emulatorCfg.Addr),
				controller.WithListingPath(cameraCfg.ListingPath),
			)
			if err != nil {
				return goerr.Wrap(err, "failed to create HTTP server")
			}

			serverErr := async.Go(ctx, func(ctx context.Context) error {
				ctxlog.From(ctx).Info("HTTP server starting", slog.String("addr", emulatorCfg.Addr))
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					return goerr.Wrap(err, "HTTP server error", goerr.V("addr", emulatorCfg.Addr))
				}
				return nil
			})

			// Wait for interrupt signal
			sigChan := make(chan os.Signal, 1)
			signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
			defer signal.Stop(sigChan)

			select {
			case <-ctx.Done():
				logger.Info("Context cancelled, shutting down...")
			case sig := <-sigChan:
				logger.Info("Signal received, shutting down...", slog.Any("signal", sig))
			case err := <-serverErr:
				return err
			}

			// Graceful shutdown
			shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 10*time.Second)
			defer cancel()

			if err := server.Shutdown(shutdownCtx); err != nil {
				return goerr.Wrap(err, "failed to shutdown server gracefully")
			}

			logger.Info("Emulator shutdown complete")
			return nil
		},
	}
}
