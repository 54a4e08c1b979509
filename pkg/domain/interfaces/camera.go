package interfaces

import (
	"context"

	"github.com/m-mizutani/grfetch/pkg/domain/model"
)

// CameraClient defines operations against the camera's HTTP API
type CameraClient interface {
	// Probe checks that the camera base address answers
	Probe(ctx context.Context) error

	// ListPhotos fetches and decodes the listing resource
	ListPhotos(ctx context.Context) (*model.PhotoListResponse, error)

	// FetchPhoto downloads the whole content of a photo path
	FetchPhoto(ctx context.Context, photoPath string) ([]byte, error)
}
