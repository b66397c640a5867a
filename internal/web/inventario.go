package web

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/lmoreno/camisas/internal/auth"
	"github.com/lmoreno/camisas/internal/inventory"
	"github.com/lmoreno/camisas/internal/model"
)

// inventarioData is the template data for the admin inventory page.
type inventarioData struct {
	PageData
	Shirts  []model.Shirt
	Editing *model.Shirt
}

// renderInventario renders the admin inventory page. If the request carries
// an "editar" query parameter, the matching shirt prefills the form.
func (s *Server) renderInventario(w http.ResponseWriter, r *http.Request, claims *auth.Claims, errMsg, successMsg string) {
	shirts, err := inventory.List(r.Context(), s.DB)
	if err != nil {
		slog.Error("failed to list shirts", "error", err)
		errMsg = "Error al cargar el inventario."
	}

	var editing *model.Shirt
	if v := r.URL.Query().Get("editar"); v != "" {
		if id, err := strconv.ParseInt(v, 10, 64); err == nil {
			for i := range shirts {
				if shirts[i].ID == id {
					editing = &shirts[i]
					break
				}
			}
		}
	}

	s.Templates.Render(w, "inventario.html", &inventarioData{
		PageData: PageData{
			Title:   "Inventario de Camisas",
			User:    claims,
			Error:   errMsg,
			Success: successMsg,
		},
		Shirts:  shirts,
		Editing: editing,
	})
}

// formFields reads shirt fields from a submitted form, parsing the price.
func formFields(r *http.Request) (inventory.Fields, error) {
	price, err := inventory.ParsePrice(r.FormValue("precio"))
	if err != nil {
		return inventory.Fields{}, err
	}
	return inventory.Fields{
		Code:     r.FormValue("codigo"),
		Color:    r.FormValue("color"),
		Size:     r.FormValue("talla"),
		Brand:    r.FormValue("marca"),
		Price:    price,
		ImageURL: r.FormValue("imagen"),
	}, nil
}

// CamisaCreateSubmit handles POST /camisas.
func (s *Server) CamisaCreateSubmit(w http.ResponseWriter, r *http.Request) {
	claims := GetWebClaims(r.Context())

	fields, err := formFields(r)
	if err == nil {
		_, err = inventory.Create(r.Context(), s.DB, fields)
	}
	if err != nil {
		if !inventory.IsValidation(err) {
			slog.Error("failed to create shirt", "error", err)
		}
		s.renderInventario(w, r, claims, userMessage(err), "")
		return
	}

	slog.Info("shirt created", "code", fields.Code)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// CamisaUpdateSubmit handles POST /camisas/{id}.
func (s *Server) CamisaUpdateSubmit(w http.ResponseWriter, r *http.Request) {
	claims := GetWebClaims(r.Context())

	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	fields, err := formFields(r)
	if err == nil {
		_, err = inventory.Update(r.Context(), s.DB, id, fields)
	}
	if err != nil {
		if !inventory.IsValidation(err) && err != inventory.ErrNotFound {
			slog.Error("failed to update shirt", "error", err, "id", id)
		}
		s.renderInventario(w, r, claims, userMessage(err), "")
		return
	}

	slog.Info("shirt updated", "id", id, "code", fields.Code)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// CamisaDeleteSubmit handles POST /camisas/{id}/eliminar. The confirmation
// prompt lives in the page; by the time this runs the operator already agreed.
func (s *Server) CamisaDeleteSubmit(w http.ResponseWriter, r *http.Request) {
	claims := GetWebClaims(r.Context())

	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	if err := inventory.Remove(r.Context(), s.DB, id); err != nil {
		if err != inventory.ErrNotFound {
			slog.Error("failed to delete shirt", "error", err, "id", id)
		}
		s.renderInventario(w, r, claims, userMessage(err), "")
		return
	}

	slog.Info("shirt deleted", "id", id)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// userMessage converts a repository error into a Spanish UI message.
func userMessage(err error) string {
	switch {
	case err == inventory.ErrNotFound:
		return "La camisa no existe."
	case inventory.IsValidation(err):
		return "Datos inválidos: " + err.Error()
	default:
		return "Error al guardar los cambios."
	}
}
