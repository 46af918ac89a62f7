package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/DanangAP-mitrais/ai-chat-app/internal/logger"
	"github.com/DanangAP-mitrais/ai-chat-app/internal/model"
)

// AuthService defines user registration and credential verification operations.
type AuthService interface {
	Register(ctx context.Context, fullname, email, password string) (model.User, error)
	Authenticate(ctx context.Context, email, password string) (model.User, error)
	GetUserByID(ctx context.Context, id uuid.UUID) (model.User, error)
}

// TokenService defines token issuance operations.
type TokenService interface {
	Issue(ctx context.Context, userID uuid.UUID) (accessToken string, expiresIn int, err error)
}

// Auth handles HTTP endpoints for authentication.
type Auth struct {
	authService    AuthService
	tokenService   TokenService
	contextManager model.ContextManager
	logger         *logger.Logger
}

// NewAuth creates a new Auth handler.
func NewAuth(authService AuthService, tokenService TokenService, contextManager model.ContextManager, logger *logger.Logger) *Auth {
	return &Auth{
		authService:    authService,
		tokenService:   tokenService,
		contextManager: contextManager,
		logger:         logger,
	}
}

type registerRequest struct {
	Fullname string `json:"fullname"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type userResponse struct {
	ID        string `json:"id"`
	Fullname  string `json:"fullname"`
	Email     string `json:"email"`
	CreatedAt string `json:"created_at"`
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int    `json:"expires_in"`
}

type verifyResponse struct {
	UserID   string `json:"user_id"`
	Email    string `json:"email"`
	Fullname string `json:"fullname"`
}

// Register creates a new user account.
func (h *Auth) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.Fullname == "" || req.Email == "" || req.Password == "" {
		writeError(w, http.StatusBadRequest, "fullname, email and password are required")
		return
	}

	h.logger.Debug("Auth handler: processing register request", "email", req.Email)

	user, err := h.authService.Register(r.Context(), req.Fullname, req.Email, req.Password)
	if err != nil {
		h.logger.Error("Auth handler: registration failed",
			"email", req.Email,
			"error", err.Error())
		h.handleError(w, err)
		return
	}

	h.logger.Info("Auth handler: registration completed",
		"email", user.Email,
		"user_id", user.ID)

	writeJSON(w, http.StatusCreated, userResponse{
		ID:        user.ID.String(),
		Fullname:  user.Fullname,
		Email:     user.Email,
		CreatedAt: user.CreatedAt.Format(time.RFC3339),
	})
}

// Login verifies credentials and issues an access token.
func (h *Auth) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	h.logger.Debug("Auth handler: processing login request", "email", req.Email)

	user, err := h.authService.Authenticate(r.Context(), req.Email, req.Password)
	if err != nil {
		h.logger.Info("Auth handler: login failed", "email", req.Email)
		h.handleError(w, err)
		return
	}

	accessToken, expiresIn, err := h.tokenService.Issue(r.Context(), user.ID)
	if err != nil {
		h.logger.Error("Auth handler: failed to issue token",
			"user_id", user.ID,
			"error", err.Error())
		h.handleError(w, err)
		return
	}

	h.logger.Info("Auth handler: login completed", "user_id", user.ID)

	writeJSON(w, http.StatusOK, tokenResponse{
		AccessToken: accessToken,
		TokenType:   "bearer",
		ExpiresIn:   expiresIn,
	})
}

// Logout acknowledges the request. Tokens are self-contained and there is no
// server-side revocation list, so nothing is invalidated here.
func (h *Auth) Logout(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"message": "Successfully logged out"})
}

// Verify resolves the authenticated token subject into a user identity.
// The authentication middleware must run before this handler.
func (h *Auth) Verify(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.contextManager.GetUserIDFromContext(r.Context())
	if !ok {
		unauthorized(w)
		return
	}

	user, err := h.authService.GetUserByID(r.Context(), userID)
	if err != nil {
		h.logger.Info("Auth handler: token subject not found", "user_id", userID)
		unauthorized(w)
		return
	}

	writeJSON(w, http.StatusOK, verifyResponse{
		UserID:   user.ID.String(),
		Email:    user.Email,
		Fullname: user.Fullname,
	})
}
