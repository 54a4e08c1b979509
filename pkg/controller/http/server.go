package http

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/m-mizutani/grfetch/pkg/domain/types"
)

// config holds internal HTTP server configuration
type config struct {
	addr        string
	listingPath string
	model       string
}

// Option is a functional option for Server configuration
type Option func(*config)

// WithAddr sets the server address
func WithAddr(addr string) Option {
	return func(c *config) {
		c.addr = addr
	}
}

// WithListingPath sets the path the photo listing is served under
func WithListingPath(path string) Option {
	return func(c *config) {
		c.listingPath = path
	}
}

// WithModel sets the camera model reported by /v1/props
func WithModel(model string) Option {
	return func(c *config) {
		c.model = model
	}
}

// Server represents the camera emulator HTTP server
type Server struct {
	*http.Server
}

// NewServer creates an HTTP server exposing photoDir through the camera API
func NewServer(
	ctx context.Context,
	photoDir string,
	opts ...Option,
) (*Server, error) {
	// Default configuration
	cfg := &config{
		addr:        "localhost:8080",
		listingPath: types.DefaultListingPath,
		model:       types.CameraName + " (emulated)",
	}

	// Apply options
	for _, opt := range opts {
		opt(cfg)
	}

	router := chi.NewRouter()

	// Global middleware
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(LoggingMiddleware(ctx))
	router.Use(middleware.Recoverer)

	// Health check, also answers the client's connectivity probe
	router.Get("/", handleHealth)
	router.Get("/health", handleHealth)

	router.Get("/v1/props", handleProps(cfg.model))

	photoHandler := NewPhotoHandler(photoDir)
	listing := "/" + strings.Trim(cfg.listingPath, "/")
	router.Get(listing, photoHandler.List)
	router.Get(listing+"/{dir}/{file}", photoHandler.Download)

	server := &Server{
		Server: &http.Server{
			Addr:              cfg.addr,
			Handler:           router,
			ReadHeaderTimeout: 15 * time.Second,
		},
	}

	return server, nil
}
