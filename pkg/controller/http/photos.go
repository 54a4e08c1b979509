package http

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/grfetch/pkg/domain/model"
	"github.com/m-mizutani/grfetch/pkg/domain/types"
)

// PhotoHandler serves a local directory tree the way the camera serves its
// storage: every sub-directory of root is a photo directory and every
// regular file in it a photo.
type PhotoHandler struct {
	root string
}

// NewPhotoHandler creates a new PhotoHandler
func NewPhotoHandler(root string) *PhotoHandler {
	return &PhotoHandler{
		root: root,
	}
}

// List handles the photo listing request
func (h *PhotoHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := ctxlog.From(ctx)

	dirs, err := h.scan()
	if err != nil {
		logger.Error("Failed to scan photo directory", "error", err)
		writeListingError(ctx, w, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	errCode := types.ListingOK
	writeJSON(ctx, w, http.StatusOK, &model.PhotoListResponse{
		ErrCode: &errCode,
		ErrMsg:  "OK",
		Dirs:    dirs,
	})
}

// Download handles a photo content request
func (h *PhotoHandler) Download(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := ctxlog.From(ctx)

	dir := chi.URLParam(r, "dir")
	file := chi.URLParam(r, "file")
	if !isPlainName(dir) || !isPlainName(file) {
		logger.Warn("Rejected photo path", "dir", dir, "file", file)
		http.NotFound(w, r)
		return
	}

	fp := filepath.Join(h.root, dir, file)
	f, err := os.Open(fp)
	if err != nil {
		logger.Warn("Photo not found", "path", fp, "error", err)
		http.NotFound(w, r)
		return
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil || !info.Mode().IsRegular() {
		http.NotFound(w, r)
		return
	}

	http.ServeContent(w, r, file, info.ModTime(), f)
}

// scan builds the listing of root. os.ReadDir sorts by name, which gives
// the order the camera lists directories and files in.
func (h *PhotoHandler) scan() ([]model.PhotoDir, error) {
	entries, err := os.ReadDir(h.root)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read photo root", goerr.V("root", h.root))
	}

	dirs := []model.PhotoDir{}
	for _, entry := range entries {
		if !entry.IsDir() || !isPlainName(entry.Name()) {
			continue
		}

		files, err := os.ReadDir(filepath.Join(h.root, entry.Name()))
		if err != nil {
			return nil, goerr.Wrap(err, "failed to read photo directory", goerr.V("dir", entry.Name()))
		}

		dir := model.PhotoDir{Name: entry.Name(), Files: []string{}}
		for _, file := range files {
			if !file.Type().IsRegular() || !isPlainName(file.Name()) {
				continue
			}
			dir.Files = append(dir.Files, file.Name())
		}
		dirs = append(dirs, dir)
	}

	return dirs, nil
}

// isPlainName reports whether name is a single visible path element
func isPlainName(name string) bool {
	return name != "" &&
		!strings.HasPrefix(name, ".") &&
		!strings.ContainsAny(name, `/\`)
}
