package usecase

import (
	"context"
	"io"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/grfetch/pkg/domain/interfaces"
	"github.com/m-mizutani/grfetch/pkg/domain/model"
	"github.com/m-mizutani/grfetch/pkg/domain/types"
)

type retrieveUseCase struct {
	photoUC   interfaces.PhotoUseCase
	outputDir string
}

// NewRetrieve creates a new instance of RetrieveUseCase
func NewRetrieve(photoUC interfaces.PhotoUseCase, outputDir string) interfaces.RetrieveUseCase {
	return &retrieveUseCase{
		photoUC:   photoUC,
		outputDir: outputDir,
	}
}

// RetrieveLast runs probe, listing and download of the last photo in one
// pass. Every stage failure ends the run with a message on w; nothing is
// retried.
func (uc *retrieveUseCase) RetrieveLast(ctx context.Context, w io.Writer) *model.RetrieveResult {
	logger := ctxlog.From(ctx)

	logger.Info("Starting camera image retrieval")
	defer logger.Info("Retrieval completed")

	if !uc.photoUC.CheckConnection(ctx) {
		PrintUnreachable(w)
		return &model.RetrieveResult{Outcome: model.RetrieveProbeFailed}
	}

	list := uc.photoUC.FetchPhotoList(ctx)
	total := list.Len()

	PrintTotal(w, total)
	logger.Info("Total number of images", "total", total, "list_status", list.Status)

	last, ok := list.Last()
	if !ok {
		warnColor.Fprintf(w, "No photos found on the %s.\n", types.CameraName)
		return &model.RetrieveResult{Outcome: model.RetrieveEmpty}
	}

	result, err := uc.photoUC.DownloadPhoto(ctx, last)
	if err != nil {
		failureColor.Fprintln(w, "Failed to download the last photo.")
		return &model.RetrieveResult{
			Outcome: model.RetrieveDownloadFailed,
			Total:   total,
			Photo:   last,
		}
	}

	successColor.Fprintf(w, "Last photo (%s) has been downloaded to the '%s' folder.\n", last, uc.outputDir)
	return &model.RetrieveResult{
		Outcome:  model.RetrieveDownloaded,
		Total:    total,
		Photo:    last,
		Download: result,
	}
}
