// Package http implements the public REST surface of the aronotes server:
// signup/login, the authenticated notes CRUD, and the third-party proxy
// routes consumed by the web client.
package http

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"

	"github.com/arolabs/aronotes/internal/logging"
	"github.com/arolabs/aronotes/internal/server/config"
	"github.com/arolabs/aronotes/internal/server/proxy"
	"github.com/arolabs/aronotes/internal/server/services"
)

type Server struct {
	address        string
	logger         logging.Logger
	users          *services.UserService
	notes          *services.NoteService
	drugs          *proxy.DrugLabelClient
	research       *proxy.ResearchClient
	advice         *proxy.AdviceSource
	jwtSecret      []byte
	allowedOrigins []string
}

func NewServer(cfg *config.Config, l logging.Logger, us *services.UserService, ns *services.NoteService) *Server {
	return &Server{
		address:        cfg.EndpointAddr,
		logger:         l.With("module", "http_server"),
		users:          us,
		notes:          ns,
		drugs:          proxy.NewDrugLabelClient(cfg.OpenFDABaseURL, cfg.ProxyTimeout),
		research:       proxy.NewResearchClient(cfg.PubMedBaseURL, cfg.ProxyTimeout),
		advice:         proxy.NewAdviceSource(),
		jwtSecret:      []byte(cfg.SecretKey),
		allowedOrigins: cfg.CORSAllowedOrigins,
	}
}

// Router builds the request routing tree. Split from Run so tests can drive
// the full middleware stack through httptest.
func (s *Server) Router() http.Handler {
	r := mux.NewRouter()
	r.Use(s.requestIDMiddleware)

	r.HandleFunc("/signup", s.handleSignup).Methods(http.MethodPost)
	r.HandleFunc("/login", s.handleLogin).Methods(http.MethodPost)
	r.HandleFunc("/ping", s.handlePing).Methods(http.MethodGet)

	r.HandleFunc("/api/drugs/fda", s.handleDrugLabel).Methods(http.MethodGet)
	r.HandleFunc("/api/research-articles", s.handleResearchArticles).Methods(http.MethodGet)
	r.HandleFunc("/health-advice", s.handleHealthAdvice).Methods(http.MethodGet)

	notes := r.PathPrefix("/notes").Subrouter()
	notes.Use(s.authMiddleware)
	notes.HandleFunc("", s.handleListNotes).Methods(http.MethodGet)
	notes.HandleFunc("", s.handleCreateNote).Methods(http.MethodPost)
	notes.HandleFunc("/{noteID}", s.handleUpdateNote).Methods(http.MethodPut)
	notes.HandleFunc("/{noteID}", s.handleDeleteNote).Methods(http.MethodDelete)

	cors := handlers.CORS(
		handlers.AllowedOrigins(s.allowedOrigins),
		handlers.AllowedMethods([]string{
			http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions,
		}),
		handlers.AllowedHeaders([]string{"Authorization", "Content-Type"}),
	)
	return cors(r)
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:    s.address,
		Handler: s.Router(),
	}

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.address)

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}
