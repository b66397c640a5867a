package web

import (
	"database/sql"
	"net/http"

	"github.com/lmoreno/camisas/internal/auth"
	webembed "github.com/lmoreno/camisas/web"
)

// NewRouter creates the web page router with all page routes registered.
func NewRouter(db *sql.DB, jwtSecret string, verifier auth.Verifier, baseURL string) (http.Handler, error) {
	templates, err := LoadTemplates()
	if err != nil {
		return nil, err
	}

	s := &Server{
		DB:        db,
		Templates: templates,
		JWTSecret: jwtSecret,
		Verifier:  verifier,
		BaseURL:   baseURL,
	}

	mux := http.NewServeMux()
	cookieAuth := CookieAuthMiddleware(jwtSecret, db)

	// Static assets.
	mux.Handle("GET /static/", http.StripPrefix("/static/", http.FileServer(http.FS(webembed.StaticFS()))))
	mux.HandleFunc("GET /placeholder.png", s.PlaceholderPNG)

	// Composite admin/login view and session routes.
	mux.HandleFunc("GET /{$}", s.Home)
	mux.HandleFunc("POST /login", s.LoginSubmit)
	mux.HandleFunc("POST /logout", s.Logout)

	// Inventory mutations (authenticated).
	mux.Handle("POST /camisas", cookieAuth(http.HandlerFunc(s.CamisaCreateSubmit)))
	mux.Handle("POST /camisas/{id}", cookieAuth(http.HandlerFunc(s.CamisaUpdateSubmit)))
	mux.Handle("POST /camisas/{id}/eliminar", cookieAuth(http.HandlerFunc(s.CamisaDeleteSubmit)))

	// Public product resolution.
	mux.HandleFunc("GET /producto", s.ProductoNoCode)
	mux.HandleFunc("GET /producto/{$}", s.ProductoNoCode)
	mux.HandleFunc("GET /producto/{codigo}", s.ProductoPage)
	mux.HandleFunc("GET /producto/{codigo}/qr.png", s.ProductoQR)

	return mux, nil
}
