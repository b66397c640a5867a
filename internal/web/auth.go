package web

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/lmoreno/camisas/internal/auth"
	"github.com/lmoreno/camisas/internal/store"
)

// Home handles GET /. This is the composite view: a valid session shows the
// inventory admin page, anything else shows the login form.
func (s *Server) Home(w http.ResponseWriter, r *http.Request) {
	claims := sessionClaims(r, s.JWTSecret, s.DB)
	if claims == nil {
		s.Templates.Render(w, "login.html", &PageData{Title: "Iniciar Sesión"})
		return
	}
	s.renderInventario(w, r, claims, "", "")
}

// LoginSubmit handles POST /login.
func (s *Server) LoginSubmit(w http.ResponseWriter, r *http.Request) {
	password := r.FormValue("password")

	if err := s.Verifier.Verify(r.Context(), password); err != nil {
		if !errors.Is(err, auth.ErrBadCredentials) {
			slog.Error("credential verification failed", "error", err)
		}
		s.Templates.Render(w, "login.html", &PageData{
			Title: "Iniciar Sesión",
			Error: "Contraseña incorrecta.",
		})
		return
	}

	token, err := auth.GenerateToken(s.JWTSecret)
	if err != nil {
		slog.Error("failed to generate token", "error", err)
		s.Templates.Render(w, "login.html", &PageData{
			Title: "Iniciar Sesión",
			Error: "Error al iniciar sesión.",
		})
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     "token",
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteStrictMode,
		MaxAge:   86400, // 24 hours
	})

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// Logout handles POST /logout. Revokes the session so the token is dead even
// if the cookie survives somewhere.
func (s *Server) Logout(w http.ResponseWriter, r *http.Request) {
	if claims := sessionClaims(r, s.JWTSecret, s.DB); claims != nil && claims.ID != "" {
		if err := store.RevokeToken(r.Context(), s.DB, claims.ID, claims.ExpiresAt.Time); err != nil {
			slog.Error("failed to revoke token", "error", err)
		}
	}

	clearAuthCookie(w)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}
