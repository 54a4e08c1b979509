package config

import (
	"time"

	"github.com/m-mizutani/grfetch/pkg/domain/interfaces"
	"github.com/m-mizutani/grfetch/pkg/domain/model"
	"github.com/m-mizutani/grfetch/pkg/domain/types"
	"github.com/m-mizutani/grfetch/pkg/infra/camera"
	"github.com/urfave/cli/v3"
)

// Camera holds the camera connection configuration
type Camera struct {
	URL            string
	ListingPath    string
	ProbeTimeout   time.Duration
	RequestTimeout time.Duration
}

// Flags returns CLI flags for camera configuration
func (c *Camera) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "camera-url",
			Usage:       "Base address of the camera HTTP API",
			Value:       types.DefaultCameraURL,
			Destination: &c.URL,
			Sources:     cli.EnvVars("GRFETCH_CAMERA_URL"),
		},
		&cli.StringFlag{
			Name:        "listing-path",
			Usage:       "Path of the photo listing resource, relative to the camera URL",
			Value:       types.DefaultListingPath,
			Destination: &c.ListingPath,
			Sources:     cli.EnvVars("GRFETCH_LISTING_PATH"),
		},
		&cli.DurationFlag{
			Name:        "probe-timeout",
			Usage:       "Timeout of the connectivity check",
			Value:       types.DefaultProbeTimeout,
			Destination: &c.ProbeTimeout,
			Sources:     cli.EnvVars("GRFETCH_PROBE_TIMEOUT"),
		},
		&cli.DurationFlag{
			Name:        "request-timeout",
			Usage:       "Timeout of listing and download requests",
			Value:       types.DefaultRequestTimeout,
			Destination: &c.RequestTimeout,
			Sources:     cli.EnvVars("GRFETCH_REQUEST_TIMEOUT"),
		},
	}
}

// Endpoint returns the listing endpoint
func (c *Camera) Endpoint() model.Endpoint {
	return model.NewEndpoint(c.URL, c.ListingPath)
}

// NewClient creates a camera client carrying both timeouts
func (c *Camera) NewClient() interfaces.CameraClient {
	return camera.NewClient(c.Endpoint(),
		camera.WithProbeTimeout(c.ProbeTimeout),
		camera.WithRequestTimeout(c.RequestTimeout),
	)
}
