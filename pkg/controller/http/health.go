package http

import (
	"net/http"

	"github.com/m-mizutani/grfetch/pkg/domain/model"
	"github.com/m-mizutani/grfetch/pkg/domain/types"
)

// handleHealth handles health check requests
func handleHealth(w http.ResponseWriter, r *http.Request) {
	status := &model.HealthStatus{
		Status:  "healthy",
		Service: "grfetch-emulator",
		Version: types.Version,
	}

	writeJSON(r.Context(), w, http.StatusOK, status)
}

// handleProps returns a handler reporting the emulated camera properties
func handleProps(cameraModel string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(r.Context(), w, http.StatusOK, &model.CameraProps{
			ErrCode: types.ListingOK,
			ErrMsg:  "OK",
			Model:   cameraModel,
		})
	}
}
