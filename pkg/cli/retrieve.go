package cli

import (
	"context"
	"io"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/grfetch/pkg/cli/config"
	"github.com/m-mizutani/grfetch/pkg/usecase"
)

// retrieveLast downloads the last photo. The run outcome is reported to the
// user only; it never turns into a non-zero exit status.
func retrieveLast(ctx context.Context, w io.Writer, cameraCfg *config.Camera, outputCfg *config.Output) error {
	logger := ctxlog.From(ctx)

	logger.Debug("Camera configuration",
		"camera_url", cameraCfg.URL,
		"listing_path", cameraCfg.ListingPath,
		"probe_timeout", cameraCfg.ProbeTimeout,
		"request_timeout", cameraCfg.RequestTimeout,
		"output_dir", outputCfg.Dir,
	)

	photoUC := usecase.NewPhoto(cameraCfg.NewClient(), outputCfg.Dir)
	retrieveUC := usecase.NewRetrieve(photoUC, outputCfg.Dir)

	result := retrieveUC.RetrieveLast(ctx, w)
	logger.Debug("Retrieval finished", "outcome", result.Outcome)

	return nil
}
