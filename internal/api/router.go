package api

import (
	"database/sql"
	"net/http"

	"github.com/lmoreno/camisas/internal/auth"
)

// NewRouter creates the API router with all endpoints registered.
func NewRouter(db *sql.DB, jwtSecret string, verifier auth.Verifier, baseURL string) http.Handler {
	mux := http.NewServeMux()

	authHandler := &AuthHandler{DB: db, JWTSecret: jwtSecret, Verifier: verifier}
	camisasHandler := &CamisasHandler{DB: db}
	productoHandler := &ProductoHandler{DB: db, BaseURL: baseURL}

	authMW := AuthMiddleware(jwtSecret, db)

	// Public: login and product resolution.
	mux.HandleFunc("POST /api/auth/login", authHandler.Login)
	mux.HandleFunc("GET /api/producto/{codigo}", productoHandler.Resolve)

	// Authenticated routes.
	mux.Handle("POST /api/auth/logout", authMW(http.HandlerFunc(authHandler.Logout)))

	mux.Handle("GET /api/camisas", authMW(http.HandlerFunc(camisasHandler.List)))
	mux.Handle("POST /api/camisas", authMW(http.HandlerFunc(camisasHandler.Create)))
	mux.Handle("GET /api/camisas/{id}", authMW(http.HandlerFunc(camisasHandler.Get)))
	mux.Handle("PUT /api/camisas/{id}", authMW(http.HandlerFunc(camisasHandler.Update)))
	mux.Handle("DELETE /api/camisas/{id}", authMW(http.HandlerFunc(camisasHandler.Delete)))

	return mux
}
