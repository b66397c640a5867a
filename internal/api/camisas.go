package api

import (
	"database/sql"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/lmoreno/camisas/internal/inventory"
	"github.com/lmoreno/camisas/internal/model"
)

// CamisasHandler handles shirt CRUD endpoints.
type CamisasHandler struct {
	DB *sql.DB
}

// shirtRequest carries caller-supplied shirt fields. The price is kept as a
// raw JSON number and goes through the same parse-and-validate step as form
// input, so out-of-range values never reach the store.
type shirtRequest struct {
	Code     string      `json:"codigo"`
	Color    string      `json:"color"`
	Size     string      `json:"talla"`
	Brand    string      `json:"marca"`
	Price    json.Number `json:"precio"`
	ImageURL string      `json:"imagen"`
}

func (req *shirtRequest) fields() (inventory.Fields, error) {
	price, err := inventory.ParsePrice(req.Price.String())
	if err != nil {
		return inventory.Fields{}, err
	}
	return inventory.Fields{
		Code:     req.Code,
		Color:    req.Color,
		Size:     req.Size,
		Brand:    req.Brand,
		Price:    price,
		ImageURL: req.ImageURL,
	}, nil
}

// List handles GET /api/camisas.
func (h *CamisasHandler) List(w http.ResponseWriter, r *http.Request) {
	shirts, err := inventory.List(r.Context(), h.DB)
	if err != nil {
		repoError(w, err)
		return
	}
	if shirts == nil {
		shirts = []model.Shirt{}
	}
	jsonResponse(w, http.StatusOK, shirts)
}

// Create handles POST /api/camisas.
func (h *CamisasHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req shirtRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	fields, err := req.fields()
	if err != nil {
		repoError(w, err)
		return
	}

	shirt, err := inventory.Create(r.Context(), h.DB, fields)
	if err != nil {
		repoError(w, err)
		return
	}

	jsonResponse(w, http.StatusCreated, shirt)
}

// Get handles GET /api/camisas/{id}.
func (h *CamisasHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		jsonError(w, http.StatusBadRequest, "invalid id")
		return
	}

	shirt, err := inventory.Get(r.Context(), h.DB, id)
	if err != nil {
		repoError(w, err)
		return
	}
	jsonResponse(w, http.StatusOK, shirt)
}

// Update handles PUT /api/camisas/{id}.
func (h *CamisasHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		jsonError(w, http.StatusBadRequest, "invalid id")
		return
	}

	var req shirtRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	fields, err := req.fields()
	if err != nil {
		repoError(w, err)
		return
	}

	shirt, err := inventory.Update(r.Context(), h.DB, id, fields)
	if err != nil {
		repoError(w, err)
		return
	}
	jsonResponse(w, http.StatusOK, shirt)
}

// Delete handles DELETE /api/camisas/{id}.
func (h *CamisasHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		jsonError(w, http.StatusBadRequest, "invalid id")
		return
	}

	if err := inventory.Remove(r.Context(), h.DB, id); err != nil {
		repoError(w, err)
		return
	}

	jsonResponse(w, http.StatusOK, map[string]string{"message": "camisa deleted"})
}
