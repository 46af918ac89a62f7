package router

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/DanangAP-mitrais/ai-chat-app/internal/api/http/handler"
	"github.com/DanangAP-mitrais/ai-chat-app/internal/api/http/middleware"
	"github.com/DanangAP-mitrais/ai-chat-app/internal/logger"
	"github.com/DanangAP-mitrais/ai-chat-app/internal/model"
)

// Router wires authentication handlers and middleware into an HTTP mux.
type Router struct {
	authService    handler.AuthService
	tokenService   TokenService
	contextManager model.ContextManager
	logger         *logger.Logger
}

// TokenService combines token issuance (login) with token resolution
// (authentication middleware).
type TokenService interface {
	handler.TokenService
	middleware.TokenService
}

// New creates new Router instance.
func New(
	authService handler.AuthService,
	tokenService TokenService,
	contextManager model.ContextManager,
	logger *logger.Logger,
) *Router {
	return &Router{
		authService:    authService,
		tokenService:   tokenService,
		contextManager: contextManager,
		logger:         logger,
	}
}

// Register builds the route table and returns the configured mux.
func (r *Router) Register() *mux.Router {
	logging := middleware.NewLogging(r.logger)
	authenticate := middleware.NewAuthenticate(r.tokenService, r.contextManager, r.logger)

	authHandler := handler.NewAuth(r.authService, r.tokenService, r.contextManager, r.logger)

	m := mux.NewRouter()
	m.Use(logging.Handle)

	m.HandleFunc("/", rootHandler).Methods(http.MethodGet)
	m.HandleFunc("/health", healthHandler).Methods(http.MethodGet)

	auth := m.PathPrefix("/auth").Subrouter()
	auth.HandleFunc("/register", authHandler.Register).Methods(http.MethodPost)
	auth.HandleFunc("/login", authHandler.Login).Methods(http.MethodPost)
	auth.HandleFunc("/logout", authHandler.Logout).Methods(http.MethodPost)
	auth.Handle("/verify", authenticate.Handle(http.HandlerFunc(authHandler.Verify))).Methods(http.MethodGet)

	return m
}

func rootHandler(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]string{"message": "Authentication Service"})
}

func healthHandler(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]string{"status": "healthy"})
}
