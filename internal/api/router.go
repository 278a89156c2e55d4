package api

import (
	"log"
	"net/http"
	"strings"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/example/sneakfits/internal/api/middleware"
	"github.com/example/sneakfits/internal/auth"
)

func NewRouter(handlers *Handlers, authHandlers *AuthHandlers, jwtService *auth.JWTService, webDir string) http.Handler {
	mux := http.NewServeMux()
	protect := middleware.AuthMiddleware(jwtService)

	// Static files (web UI)
	if webDir != "" {
		fs := http.FileServer(http.Dir(webDir))
		mux.Handle("/", fs)
	}

	// Auth
	mux.HandleFunc("/api/auth/login", methodHandler(http.MethodPost, authHandlers.Login))
	mux.HandleFunc("/api/auth/logout", methodHandler(http.MethodPost, authHandlers.Logout))
	mux.HandleFunc("/api/auth/refresh", methodHandler(http.MethodPost, authHandlers.Refresh))
	mux.Handle("/api/auth/me", protect(http.HandlerFunc(authHandlers.Me)))

	// Shoes
	mux.Handle("/shoes", protect(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			handlers.GetShoes(w, r)
		case http.MethodPost:
			handlers.AddShoe(w, r)
		default:
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		}
	})))

	mux.Handle("/shoes/", protect(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path := r.URL.Path
		switch {
		case strings.HasSuffix(path, "/sell") && r.Method == http.MethodPost:
			handlers.SellShoe(w, r)
		case strings.HasSuffix(path, "/return") && r.Method == http.MethodPost:
			handlers.ReturnShoe(w, r)
		case r.Method == http.MethodGet:
			handlers.GetShoe(w, r)
		case r.Method == http.MethodPut:
			handlers.UpdateShoe(w, r)
		case r.Method == http.MethodDelete:
			handlers.DeleteShoe(w, r)
		default:
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		}
	})))

	// Catalog
	mux.Handle("/catalog/search", protect(methodHandler(http.MethodGet, handlers.SearchCatalog)))

	// Reports
	mux.Handle("/reports/sales", protect(methodHandler(http.MethodGet, handlers.GetSalesReport)))
	mux.Handle("/reports/sales/series", protect(methodHandler(http.MethodGet, handlers.GetSalesSeries)))

	// Metrics
	mux.Handle("/metrics", promhttp.Handler())

	return middleware.Metrics(withLogging(mux))
}

func methodHandler(method string, fn http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != method {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}
		fn(w, r)
	}
}

func withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log.Printf("[API] %s %s", r.Method, r.URL.Path)
		next.ServeHTTP(w, r)
	})
}
