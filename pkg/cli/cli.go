package cli

import (
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/google/uuid"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/grfetch/pkg/cli/config"
	"github.com/m-mizutani/grfetch/pkg/domain/types"
	"github.com/urfave/cli/v3"
)

// Run runs the CLI application
func Run(ctx context.Context, args []string) error {
	return run(ctx, args, os.Stdout, nil)
}

// run builds and runs the application. Messages for the user go to w; logs
// go to logWriter, or stderr when it is nil.
func run(ctx context.Context, args []string, w io.Writer, logWriter io.Writer) error {
	var (
		loggerCfg = config.Logger{Writer: logWriter}
		cameraCfg config.Camera
		outputCfg config.Output
		logger    *slog.Logger
	)

	flags := append(loggerCfg.Flags(), cameraCfg.Flags()...)
	flags = append(flags, outputCfg.Flags()...)

	app := &cli.Command{
		Name:    "grfetch",
		Usage:   "Download the last photo from a Ricoh GR camera over Wi-Fi",
		Version: types.Version,
		Flags:   flags,
		Writer:  w,
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			var err error
			logger, err = loggerCfg.Configure()
			if err != nil {
				return nil, err
			}

			logger = logger.With("run_id", uuid.NewString())
			slog.SetDefault(logger)
			ctx = ctxlog.With(ctx, logger)
			return ctx, nil
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			return retrieveLast(ctx, w, &cameraCfg, &outputCfg)
		},
		Commands: []*cli.Command{
			cmdList(w, &cameraCfg),
			cmdEmulate(&cameraCfg),
		},
	}

	if err := app.Run(ctx, args); err != nil {
		if logger == nil {
			logger = slog.Default()
		}
		logger.Error("CLI execution failed", slog.Any("error", err))
		return err
	}

	return nil
}
