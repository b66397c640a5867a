package web

import (
	"log/slog"
	"net/http"

	"github.com/lmoreno/camisas/internal/imaging"
	"github.com/lmoreno/camisas/internal/lookup"
	"github.com/lmoreno/camisas/internal/model"
	"github.com/lmoreno/camisas/internal/qr"
	"github.com/lmoreno/camisas/internal/store"
)

// productoData is the template data for the public product page.
type productoData struct {
	PageData
	Shirt model.Shirt
	URL   string
}

// productoErrorData is the template data for the terminal states of the
// resolution flow. An empty Code means no code was given at all.
type productoErrorData struct {
	PageData
	Code string
}

// ProductoPage handles GET /producto/{codigo}. Public: resolves a scanned
// code against the current inventory snapshot.
func (s *Server) ProductoPage(w http.ResponseWriter, r *http.Request) {
	code := r.PathValue("codigo")
	if code == "" {
		s.ProductoNoCode(w, r)
		return
	}

	shirts, err := store.LoadShirts(r.Context(), s.DB)
	if err != nil {
		slog.Error("failed to load inventory", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	shirt, ok := lookup.Build(shirts).Resolve(code)
	if !ok {
		w.WriteHeader(http.StatusNotFound)
		s.Templates.Render(w, "producto_error.html", &productoErrorData{
			PageData: PageData{Title: "Producto no encontrado"},
			Code:     code,
		})
		return
	}

	s.Templates.Render(w, "producto.html", &productoData{
		PageData: PageData{Title: "Camisa " + shirt.Brand},
		Shirt:    shirt,
		URL:      qr.ProductURL(s.BaseURL, shirt.Code),
	})
}

// ProductoNoCode handles GET /producto with no code segment.
func (s *Server) ProductoNoCode(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusBadRequest)
	s.Templates.Render(w, "producto_error.html", &productoErrorData{
		PageData: PageData{Title: "Código no especificado"},
	})
}

// ProductoQR handles GET /producto/{codigo}/qr.png. Only codes that resolve
// get a QR image; anything else is 404.
func (s *Server) ProductoQR(w http.ResponseWriter, r *http.Request) {
	code := r.PathValue("codigo")

	shirts, err := store.LoadShirts(r.Context(), s.DB)
	if err != nil {
		slog.Error("failed to load inventory", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	shirt, ok := lookup.Build(shirts).Resolve(code)
	if !ok {
		http.NotFound(w, r)
		return
	}

	data, err := qr.PNG(qr.ProductURL(s.BaseURL, shirt.Code), qr.Size)
	if err != nil {
		slog.Error("failed to generate QR code", "error", err, "code", code)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "public, max-age=3600")
	if _, err := w.Write(data); err != nil {
		slog.Error("failed to write QR response", "error", err)
	}
}

// PlaceholderPNG handles GET /placeholder.png, the fallback shown when an
// item's external image URL does not load.
func (s *Server) PlaceholderPNG(w http.ResponseWriter, r *http.Request) {
	data, err := imaging.Placeholder(300, 300)
	if err != nil {
		slog.Error("failed to generate placeholder", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "public, max-age=86400")
	if _, err := w.Write(data); err != nil {
		slog.Error("failed to write placeholder response", "error", err)
	}
}
