package server

import (
	"encoding/base64"
	"log/slog"
	"net/http"
	"strings"

	"github.com/bsantoso/asset-ledger/internal/ledger"
)

// Server handles HTTP requests for the ledger session
type Server struct {
	service   *ledger.Service
	basicAuth BasicAuth
	mux       *http.ServeMux
}

// BasicAuth holds basic authentication credentials
type BasicAuth struct {
	Username string
	Password string
}

// NewServer creates a new Server with default mux
func NewServer(service *ledger.Service, basicAuth BasicAuth) *Server {
	return NewServerWithMux(service, basicAuth, http.NewServeMux())
}

// NewServerWithMux creates a new Server with a custom mux for testing
func NewServerWithMux(service *ledger.Service, basicAuth BasicAuth, mux *http.ServeMux) *Server {
	s := &Server{
		service:   service,
		basicAuth: basicAuth,
		mux:       mux,
	}
	s.registerRoutes()
	return s
}

// authenticate checks basic auth credentials
func (s *Server) authenticate(r *http.Request) bool {
	if s.basicAuth.Username == "" && s.basicAuth.Password == "" {
		return true // No auth required if not configured
	}

	auth := r.Header.Get("Authorization")
	if !strings.HasPrefix(auth, "Basic ") {
		return false
	}

	decoded, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(auth, "Basic "))
	if err != nil {
		return false
	}

	credentials := strings.SplitN(string(decoded), ":", 2)
	if len(credentials) != 2 {
		return false
	}

	return credentials[0] == s.basicAuth.Username && credentials[1] == s.basicAuth.Password
}

// corsMiddleware adds CORS headers and answers preflight requests
func (s *Server) corsMiddleware(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		setCORSHeaders(w)
		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next(w, r)
	}
}

// requireAuth middleware
func (s *Server) requireAuth(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !s.authenticate(r) {
			setCORSHeaders(w)
			w.Header().Set("WWW-Authenticate", `Basic realm="Asset Ledger"`)
			http.Error(w, "Unauthorized", http.StatusUnauthorized)
			return
		}
		next(w, r)
	}
}

// registerRoutes registers all API routes on the server's mux
func (s *Server) registerRoutes() {
	// Document upload and manual entry both feed staging
	s.mux.HandleFunc("POST /api/documents", s.requireAuth(s.handleUploadDocument))
	s.mux.HandleFunc("POST /api/entries", s.requireAuth(s.handleCreateEntry))

	// Staging buffer
	s.mux.HandleFunc("GET /api/staging", s.requireAuth(s.handleStaging))
	s.mux.HandleFunc("DELETE /api/staging", s.requireAuth(s.handleResetStaging))

	// Committed ledger and its two-step destructive reset
	s.mux.HandleFunc("GET /api/ledger", s.requireAuth(s.handleCommitted))
	s.mux.HandleFunc("POST /api/ledger/commit", s.requireAuth(s.handleCommit))
	s.mux.HandleFunc("POST /api/ledger/reset/arm", s.requireAuth(s.handleArmReset))
	s.mux.HandleFunc("DELETE /api/ledger", s.requireAuth(s.handleResetCommitted))

	// Reports and exports
	s.mux.HandleFunc("GET /api/reports/summary", s.requireAuth(s.handleSummary))
	s.mux.HandleFunc("GET /api/export/csv", s.requireAuth(s.handleExportCSV))
	s.mux.HandleFunc("GET /api/export/xlsx", s.requireAuth(s.handleExportXLSX))
}

// Start starts the HTTP server
func (s *Server) Start(addr string) error {
	slog.Info("Starting server", "address", addr)
	return http.ListenAndServe(addr, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.corsMiddleware(func(w http.ResponseWriter, r *http.Request) {
			s.mux.ServeHTTP(w, r)
		})(w, r)
	}))
}

// ServeHTTP implements http.Handler for testing
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}
