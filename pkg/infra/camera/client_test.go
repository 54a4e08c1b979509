package camera_test

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/grfetch/pkg/domain/model"
	"github.com/m-mizutani/grfetch/pkg/domain/types"
	"github.com/m-mizutani/grfetch/pkg/infra/camera"
	"github.com/m-mizutani/gt"
)

// streamBody writes chunks with a pause before each one, flushing so that
// the client sees every chunk as it is written
func streamBody(chunks [][]byte, gap time.Duration) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		flusher := w.(http.Flusher)
		w.WriteHeader(http.StatusOK)
		flusher.Flush()
		for _, chunk := range chunks {
			select {
			case <-r.Context().Done():
				return
			case <-time.After(gap):
			}
			_, _ = w.Write(chunk)
			flusher.Flush()
		}
	}
}

func newCameraServer(t *testing.T, handler http.HandlerFunc) (*httptest.Server, model.Endpoint) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return server, model.NewEndpoint(server.URL, "v1/photos")
}

func TestClient_Probe(t *testing.T) {
	t.Run("reachable camera", func(t *testing.T) {
		var gotPath string
		_, ep := newCameraServer(t, func(w http.ResponseWriter, r *http.Request) {
			gotPath = r.URL.Path
			w.WriteHeader(http.StatusOK)
		})

		err := camera.NewClient(ep).Probe(context.Background())
		gt.NoError(t, err)
		gt.Value(t, gotPath).Equal("/")
	})

	t.Run("error status", func(t *testing.T) {
		_, ep := newCameraServer(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
		})

		err := camera.NewClient(ep).Probe(context.Background())
		gt.Error(t, err)
		gt.Bool(t, goerr.HasTag(err, types.ErrTagTransport)).True()
	})

	t.Run("unreachable host", func(t *testing.T) {
		server, ep := newCameraServer(t, func(w http.ResponseWriter, r *http.Request) {})
		server.Close()

		err := camera.NewClient(ep).Probe(context.Background())
		gt.Error(t, err)
		gt.Bool(t, goerr.HasTag(err, types.ErrTagTransport)).True()
	})

	t.Run("probe timeout is independent of request timeout", func(t *testing.T) {
		_, ep := newCameraServer(t, func(w http.ResponseWriter, r *http.Request) {
			select {
			case <-r.Context().Done():
			case <-time.After(time.Second):
			}
		})

		client := camera.NewClient(ep,
			camera.WithProbeTimeout(50*time.Millisecond),
			camera.WithRequestTimeout(10*time.Second),
		)
		start := time.Now()
		err := client.Probe(context.Background())
		gt.Error(t, err)
		gt.Bool(t, time.Since(start) < 900*time.Millisecond).True()
	})
}

func TestClient_ListPhotos(t *testing.T) {
	t.Run("decodes listing", func(t *testing.T) {
		var gotPath string
		_, ep := newCameraServer(t, func(w http.ResponseWriter, r *http.Request) {
			gotPath = r.URL.Path
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"errCode":200,"errMsg":"OK","dirs":[{"name":"100","files":["A.JPG","B.JPG"]}]}`))
		})

		resp, err := camera.NewClient(ep).ListPhotos(context.Background())
		gt.NoError(t, err)
		gt.Value(t, gotPath).Equal("/v1/photos")
		gt.Value(t, *resp.ErrCode).Equal(200)
		gt.Value(t, resp.PhotoPaths()).Equal([]string{"100/A.JPG", "100/B.JPG"})
	})

	t.Run("application error is returned as data", func(t *testing.T) {
		_, ep := newCameraServer(t, func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"errCode":503,"errMsg":"busy"}`))
		})

		resp, err := camera.NewClient(ep).ListPhotos(context.Background())
		gt.NoError(t, err)
		gt.Value(t, *resp.ErrCode).Equal(503)
		gt.Value(t, resp.ErrMsg).Equal("busy")
	})

	t.Run("malformed body", func(t *testing.T) {
		_, ep := newCameraServer(t, func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`<html>not json</html>`))
		})

		_, err := camera.NewClient(ep).ListPhotos(context.Background())
		gt.Error(t, err)
		gt.Bool(t, goerr.HasTag(err, types.ErrTagParse)).True()
	})

	t.Run("missing errCode", func(t *testing.T) {
		_, ep := newCameraServer(t, func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"dirs":[]}`))
		})

		_, err := camera.NewClient(ep).ListPhotos(context.Background())
		gt.Error(t, err)
		gt.Bool(t, goerr.HasTag(err, types.ErrTagParse)).True()
	})

	t.Run("request timeout", func(t *testing.T) {
		_, ep := newCameraServer(t, func(w http.ResponseWriter, r *http.Request) {
			select {
			case <-r.Context().Done():
			case <-time.After(time.Second):
			}
		})

		client := camera.NewClient(ep, camera.WithRequestTimeout(50*time.Millisecond))
		_, err := client.ListPhotos(context.Background())
		gt.Error(t, err)
		gt.Bool(t, goerr.HasTag(err, types.ErrTagTransport)).True()
	})

	t.Run("slow listing that keeps flowing succeeds", func(t *testing.T) {
		chunks := [][]byte{
			[]byte(`{"errCode":200,`),
			[]byte(`"errMsg":"OK",`),
			[]byte(`"dirs":[{"name":"100",`),
			[]byte(`"files":["A.JPG"]}`),
			[]byte(`,{"name":"101","files":["B.JPG"]}`),
			[]byte(`]}`),
		}
		_, ep := newCameraServer(t, streamBody(chunks, 60*time.Millisecond))

		client := camera.NewClient(ep, camera.WithRequestTimeout(200*time.Millisecond))
		start := time.Now()
		resp, err := client.ListPhotos(context.Background())
		gt.NoError(t, err)
		gt.Bool(t, time.Since(start) > 200*time.Millisecond).True()
		gt.Value(t, resp.PhotoPaths()).Equal([]string{"100/A.JPG", "101/B.JPG"})
	})
}

func TestClient_FetchPhoto(t *testing.T) {
	content := []byte("\xff\xd8\xff\xe0 fake jpeg")

	t.Run("downloads photo bytes", func(t *testing.T) {
		var gotPath string
		_, ep := newCameraServer(t, func(w http.ResponseWriter, r *http.Request) {
			gotPath = r.URL.Path
			w.Header().Set("Content-Type", "image/jpeg")
			_, _ = w.Write(content)
		})

		data, err := camera.NewClient(ep).FetchPhoto(context.Background(), "100/B.JPG")
		gt.NoError(t, err)
		gt.Value(t, gotPath).Equal("/v1/photos/100/B.JPG")
		gt.Value(t, data).Equal(content)
	})

	t.Run("not found", func(t *testing.T) {
		_, ep := newCameraServer(t, func(w http.ResponseWriter, r *http.Request) {
			http.NotFound(w, r)
		})

		data, err := camera.NewClient(ep).FetchPhoto(context.Background(), "100/B.JPG")
		gt.Error(t, err)
		gt.Value(t, data).Nil()
		gt.Bool(t, goerr.HasTag(err, types.ErrTagTransport)).True()
	})

	t.Run("large photo outlasting the timeout while flowing", func(t *testing.T) {
		var chunks [][]byte
		var want []byte
		for i := 0; i < 10; i++ {
			chunk := bytes.Repeat([]byte{byte('a' + i)}, 1024)
			chunks = append(chunks, chunk)
			want = append(want, chunk...)
		}
		_, ep := newCameraServer(t, streamBody(chunks, 40*time.Millisecond))

		client := camera.NewClient(ep, camera.WithRequestTimeout(200*time.Millisecond))
		start := time.Now()
		data, err := client.FetchPhoto(context.Background(), "100/B.JPG")
		gt.NoError(t, err)
		gt.Bool(t, time.Since(start) > 200*time.Millisecond).True()
		gt.Value(t, data).Equal(want)
	})

	t.Run("stalled transfer times out", func(t *testing.T) {
		_, ep := newCameraServer(t, func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write(bytes.Repeat([]byte("x"), 1024))
			w.(http.Flusher).Flush()
			select {
			case <-r.Context().Done():
			case <-time.After(2 * time.Second):
			}
		})

		client := camera.NewClient(ep, camera.WithRequestTimeout(100*time.Millisecond))
		start := time.Now()
		data, err := client.FetchPhoto(context.Background(), "100/B.JPG")
		gt.Error(t, err)
		gt.Value(t, data).Nil()
		gt.Bool(t, goerr.HasTag(err, types.ErrTagTransport)).True()
		gt.String(t, err.Error()).Contains("camera sent no data within timeout")
		gt.Bool(t, time.Since(start) < time.Second).True()
	})
}

type roundTripFunc func(req *http.Request) (*http.Response, error)

func (f roundTripFunc) RoundTrip(req *http.Request) (*http.Response, error) {
	return f(req)
}

func TestClient_WithTransport(t *testing.T) {
	var requested []string
	rt := roundTripFunc(func(req *http.Request) (*http.Response, error) {
		requested = append(requested, req.URL.String())
		return nil, context.DeadlineExceeded
	})

	client := camera.NewClient(model.NewEndpoint("http://192.168.0.1/", "v1/photos"), camera.WithTransport(rt))

	_, err := client.ListPhotos(context.Background())
	gt.Error(t, err)
	gt.Bool(t, goerr.HasTag(err, types.ErrTagTransport)).True()
	gt.Value(t, requested).Equal([]string{"http://192.168.0.1/v1/photos"})
}
