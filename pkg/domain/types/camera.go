package types

import "time"

// Fixed defaults of the camera connection. They are the values used when no
// flag or environment variable overrides them.
const (
	DefaultCameraURL      = "http://192.168.0.1/"
	DefaultListingPath    = "v1/photos"
	DefaultOutputDir      = "downloads"
	DefaultProbeTimeout   = 5 * time.Second
	DefaultRequestTimeout = 10 * time.Second
)

// CameraName is how the camera is called in user-facing messages
const CameraName = "Ricoh GR III"

// ListingOK is the errCode the camera returns for a successful listing
const ListingOK = 200
