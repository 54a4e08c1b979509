package camera

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net"
	"net/http"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/grfetch/pkg/domain/interfaces"
	"github.com/m-mizutani/grfetch/pkg/domain/model"
	"github.com/m-mizutani/grfetch/pkg/domain/types"
)

// config holds client configuration
type config struct {
	probeTimeout   time.Duration
	requestTimeout time.Duration
	transport      http.RoundTripper
}

// Option is a functional option for Client configuration
type Option func(*config)

// WithProbeTimeout sets the timeout of the connectivity probe
func WithProbeTimeout(d time.Duration) Option {
	return func(c *config) {
		c.probeTimeout = d
	}
}

// WithRequestTimeout sets the timeout of listing and photo requests
func WithRequestTimeout(d time.Duration) Option {
	return func(c *config) {
		c.requestTimeout = d
	}
}

// WithTransport replaces the HTTP transport, mainly for tests. The idle
// timeout still applies; dial and header timeouts are up to rt.
func WithTransport(rt http.RoundTripper) Option {
	return func(c *config) {
		c.transport = rt
	}
}

// errIdleTimeout is the cancel cause of a request during which the camera
// sent nothing for a whole timeout
var errIdleTimeout = goerr.New("camera sent no data within timeout")

// scope is an HTTP client with its own timeout. The timeout bounds every
// wait for the camera (connect, response header, each body read), not the
// whole exchange: a large photo that keeps flowing never times out.
type scope struct {
	httpClient *http.Client
	timeout    time.Duration
}

func newScope(rt http.RoundTripper, timeout time.Duration) scope {
	if rt == nil {
		rt = newTransport(timeout)
	}
	return scope{
		httpClient: &http.Client{Transport: rt},
		timeout:    timeout,
	}
}

func newTransport(timeout time.Duration) *http.Transport {
	t := http.DefaultTransport.(*http.Transport).Clone()
	t.DialContext = (&net.Dialer{
		Timeout:   timeout,
		KeepAlive: 30 * time.Second,
	}).DialContext
	t.ResponseHeaderTimeout = timeout
	return t
}

type client struct {
	endpoint model.Endpoint
	probe    scope
	request  scope
}

// NewClient creates a camera API client. The probe and the other requests
// use separate scopes so that each carries its own timeout.
func NewClient(endpoint model.Endpoint, opts ...Option) interfaces.CameraClient {
	cfg := &config{
		probeTimeout:   types.DefaultProbeTimeout,
		requestTimeout: types.DefaultRequestTimeout,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	return &client{
		endpoint: endpoint,
		probe:    newScope(cfg.transport, cfg.probeTimeout),
		request:  newScope(cfg.transport, cfg.requestTimeout),
	}
}

// Probe issues a bare GET to the base address
func (c *client) Probe(ctx context.Context) error {
	url := c.endpoint.BaseURL()
	resp, err := c.get(ctx, c.probe, url)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	// drain so the connection can be reused by the listing request
	_, _ = io.Copy(io.Discard, resp.Body)
	return nil
}

// ListPhotos fetches and decodes the listing resource. The errCode of the
// body is not interpreted here.
func (c *client) ListPhotos(ctx context.Context) (*model.PhotoListResponse, error) {
	url := c.endpoint.ListingURL()
	data, err := c.fetch(ctx, url)
	if err != nil {
		return nil, err
	}

	var resp model.PhotoListResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		return nil, goerr.Wrap(err, "failed to decode photo list",
			goerr.T(types.ErrTagParse),
			goerr.V("url", url),
			goerr.V("body_size", len(data)),
		)
	}
	if resp.ErrCode == nil {
		return nil, goerr.New("errCode is missing in photo list",
			goerr.T(types.ErrTagParse),
			goerr.V("url", url),
		)
	}

	return &resp, nil
}

// FetchPhoto downloads the whole content of a photo
func (c *client) FetchPhoto(ctx context.Context, photoPath string) ([]byte, error) {
	return c.fetch(ctx, c.endpoint.PhotoURL(photoPath))
}

func (c *client) fetch(ctx context.Context, url string) ([]byte, error) {
	resp, err := c.get(ctx, c.request, url)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read response body",
			goerr.T(types.ErrTagTransport),
			goerr.V("url", url),
		)
	}

	return data, nil
}

// get sends a GET request and rejects error statuses. The caller must close
// the body of a returned response. The request is cancelled once the camera
// stays silent for the scope's timeout.
func (c *client) get(ctx context.Context, s scope, url string) (*http.Response, error) {
	reqCtx, cancel := context.WithCancelCause(ctx)
	timer := time.AfterFunc(s.timeout, func() { cancel(errIdleTimeout) })
	release := func() {
		timer.Stop()
		cancel(nil)
	}

	req, err := http.NewRequestWithContext(reqCtx, http.MethodGet, url, nil)
	if err != nil {
		release()
		return nil, goerr.Wrap(err, "failed to create request",
			goerr.T(types.ErrTagTransport),
			goerr.V("url", url),
		)
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		err = idleCause(reqCtx, err)
		release()
		return nil, goerr.Wrap(err, "failed to send request",
			goerr.T(types.ErrTagTransport),
			goerr.V("url", url),
			goerr.V("timeout", s.timeout.String()),
		)
	}

	if resp.StatusCode >= http.StatusBadRequest {
		resp.Body.Close()
		release()
		return nil, goerr.New("unexpected status code",
			goerr.T(types.ErrTagTransport),
			goerr.V("url", url),
			goerr.V("status_code", resp.StatusCode),
		)
	}

	resp.Body = &idleBody{
		ReadCloser: resp.Body,
		ctx:        reqCtx,
		timer:      timer,
		timeout:    s.timeout,
		release:    release,
	}
	return resp, nil
}

// idleBody re-arms the idle timer whenever data arrives
type idleBody struct {
	io.ReadCloser
	ctx     context.Context
	timer   *time.Timer
	timeout time.Duration
	release func()
}

func (b *idleBody) Read(p []byte) (int, error) {
	n, err := b.ReadCloser.Read(p)
	if n > 0 {
		b.timer.Reset(b.timeout)
	}
	if err != nil && err != io.EOF {
		err = idleCause(b.ctx, err)
	}
	return n, err
}

func (b *idleBody) Close() error {
	defer b.release()
	return b.ReadCloser.Close()
}

// idleCause replaces err by errIdleTimeout when the idle timer cancelled ctx
func idleCause(ctx context.Context, err error) error {
	if errors.Is(context.Cause(ctx), errIdleTimeout) {
		return errIdleTimeout
	}
	return err
}
