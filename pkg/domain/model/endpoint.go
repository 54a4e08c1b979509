package model

import "strings"

// Endpoint identifies the camera's listing resource. It is immutable once
// created.
type Endpoint struct {
	base        string
	listingPath string
}

// NewEndpoint creates an Endpoint from a base address and a listing path
// relative to it. A missing trailing slash on base is added.
func NewEndpoint(base, listingPath string) Endpoint {
	if !strings.HasSuffix(base, "/") {
		base += "/"
	}
	return Endpoint{
		base:        base,
		listingPath: strings.Trim(listingPath, "/"),
	}
}

// BaseURL returns the address the connectivity probe targets
func (e Endpoint) BaseURL() string {
	return e.base
}

// ListingURL returns base + listing path
func (e Endpoint) ListingURL() string {
	return e.base + e.listingPath
}

// PhotoURL returns the download URL of a photo path
func (e Endpoint) PhotoURL(photoPath string) string {
	return e.ListingURL() + "/" + photoPath
}

// ListingPath returns the listing path without surrounding slashes
func (e Endpoint) ListingPath() string {
	return e.listingPath
}
