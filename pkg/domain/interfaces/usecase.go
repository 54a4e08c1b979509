package interfaces

import (
	"context"
	"io"

	"github.com/m-mizutani/grfetch/pkg/domain/model"
)

// PhotoUseCase defines listing and download of camera photos
type PhotoUseCase interface {
	// CheckConnection probes the camera and reports whether it is reachable
	CheckConnection(ctx context.Context) bool

	// FetchPhotoList returns the flattened photo list. It never fails: every
	// failure yields an empty list whose Status tells the cause.
	FetchPhotoList(ctx context.Context) *model.PhotoList

	// DownloadPhoto writes one photo into the output directory
	DownloadPhoto(ctx context.Context, photoPath string) (*model.DownloadResult, error)
}

// RetrieveUseCase defines the one-shot last-photo retrieval
type RetrieveUseCase interface {
	// RetrieveLast probes, lists and downloads the last photo, printing
	// user-facing messages to w
	RetrieveLast(ctx context.Context, w io.Writer) *model.RetrieveResult
}
