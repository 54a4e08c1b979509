package http_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	controller "github.com/m-mizutani/grfetch/pkg/controller/http"
	"github.com/m-mizutani/grfetch/pkg/domain/model"
)

func TestHealthEndpoint(t *testing.T) {
	ctx := context.Background()

	server, err := controller.NewServer(
		ctx,
		t.TempDir(),
		controller.WithAddr("localhost:0"),
	)
	if err != nil {
		t.Fatalf("Failed to create server: %v", err)
	}

	for _, path := range []string{"/", "/health"} {
		t.Run(path, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, path, nil)
			w := httptest.NewRecorder()

			server.Handler.ServeHTTP(w, req)

			if w.Code != http.StatusOK {
				t.Errorf("Status code = %v, want %v", w.Code, http.StatusOK)
			}

			var status model.HealthStatus
			if err := json.NewDecoder(w.Body).Decode(&status); err != nil {
				t.Fatalf("Failed to decode response: %v", err)
			}

			if status.Status != "healthy" {
				t.Errorf("Status = %v, want healthy", status.Status)
			}

			if status.Service != "grfetch-emulator" {
				t.Errorf("Service = %v, want grfetch-emulator", status.Service)
			}

			if status.Version == "" {
				t.Error("Version should not be empty")
			}
		})
	}
}

func TestPropsEndpoint(t *testing.T) {
	server, err := controller.NewServer(
		context.Background(),
		t.TempDir(),
		controller.WithModel("GR IIIx"),
	)
	if err != nil {
		t.Fatalf("Failed to create server: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/v1/props", nil)
	w := httptest.NewRecorder()
	server.Handler.ServeHTTP(w, req)

	var props model.CameraProps
	if err := json.NewDecoder(w.Body).Decode(&props); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}

	if props.ErrCode != 200 {
		t.Errorf("ErrCode = %v, want 200", props.ErrCode)
	}
	if props.Model != "GR IIIx" {
		t.Errorf("Model = %v, want GR IIIx", props.Model)
	}
}
