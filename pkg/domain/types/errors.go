package types

import "github.com/m-mizutani/goerr/v2"

var (
	// ErrTagTransport marks failures to reach the camera or to get a usable
	// HTTP response from it: network error, timeout, error status, body read
	ErrTagTransport = goerr.NewTag("transport")

	// ErrTagParse marks a camera response body that could not be decoded
	ErrTagParse = goerr.NewTag("parse")
)
