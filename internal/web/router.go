package web

import (
	"io/fs"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"shahabsang/internal/imaging"
	webassets "shahabsang/web"
)

// NewRouter serves the embedded frontend bundle, on-disk catalog photos and
// generated thumbnails. Any unmatched route falls back to index.html so the
// single-page frontend handles it.
func NewRouter(imagesDir string, logger *zap.Logger) http.Handler {
	mux := http.NewServeMux()

	thumbs := &thumbHandler{ImagesDir: imagesDir, Log: logger}
	mux.HandleFunc("GET /images/thumbs/{file}", thumbs.Get)
	mux.Handle("GET /images/", http.StripPrefix("/images/", http.FileServer(http.Dir(imagesDir))))

	public := webassets.PublicFS()
	fileServer := http.FileServer(http.FS(public))
	index, indexErr := fs.ReadFile(public, "index.html")

	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		// Serve bundled assets when they exist; everything else gets the
		// frontend document with 200, never a 404.
		if path := strings.TrimPrefix(r.URL.Path, "/"); path != "" {
			if info, err := fs.Stat(public, path); err == nil && !info.IsDir() {
				fileServer.ServeHTTP(w, r)
				return
			}
		}

		if indexErr != nil {
			logger.Error("frontend bundle missing index.html", zap.Error(indexErr))
			http.Error(w, "frontend unavailable", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		w.Write(index)
	})

	return mux
}

// thumbHandler generates downscaled JPEG thumbnails of catalog photos.
type thumbHandler struct {
	ImagesDir string
	Log       *zap.Logger
}

// Get handles GET /images/thumbs/{file}. A missing or undecodable photo is a
// plain 404; image_url references are never validated against the disk.
func (h *thumbHandler) Get(w http.ResponseWriter, r *http.Request) {
	// Base strips any path traversal attempt.
	name := filepath.Base(r.PathValue("file"))

	f, err := os.Open(filepath.Join(h.ImagesDir, name))
	if err != nil {
		http.NotFound(w, r)
		return
	}
	defer f.Close()

	data, err := imaging.Thumbnail(f, imaging.ThumbDimension)
	if err != nil {
		h.Log.Warn("generating thumbnail", zap.String("file", name), zap.Error(err))
		http.NotFound(w, r)
		return
	}

	w.Header().Set("Content-Type", "image/jpeg")
	w.Header().Set("Cache-Control", "public, max-age=3600")
	w.Write(data)
}
