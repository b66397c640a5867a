package api

import (
	"database/sql"
	"net/http"

	"github.com/lmoreno/camisas/internal/lookup"
	"github.com/lmoreno/camisas/internal/qr"
	"github.com/lmoreno/camisas/internal/store"
)

// ProductoHandler handles the public product resolution endpoint.
type ProductoHandler struct {
	DB      *sql.DB
	BaseURL string
}

// Resolve handles GET /api/producto/{codigo}. Public: this is what a scanned
// code resolves through.
func (h *ProductoHandler) Resolve(w http.ResponseWriter, r *http.Request) {
	code := r.PathValue("codigo")
	if code == "" {
		jsonError(w, http.StatusBadRequest, "codigo required")
		return
	}

	shirts, err := store.LoadShirts(r.Context(), h.DB)
	if err != nil {
		repoError(w, err)
		return
	}

	shirt, ok := lookup.Build(shirts).Resolve(code)
	if !ok {
		jsonError(w, http.StatusNotFound, "producto not found: "+code)
		return
	}

	jsonResponse(w, http.StatusOK, map[string]any{
		"producto": shirt,
		"url":      qr.ProductURL(h.BaseURL, shirt.Code),
	})
}
