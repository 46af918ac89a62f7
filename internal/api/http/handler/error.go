package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/DanangAP-mitrais/ai-chat-app/internal/model"
)

// handleError translates service errors into HTTP responses. Validation
// failures carry their message, invalid credentials collapse into one generic
// 401, everything else is a server fault.
func (h *Auth) handleError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, model.ErrEmailTaken):
		writeError(w, http.StatusBadRequest, "Email already registered")
	case errors.Is(err, model.ErrWeakPassword):
		writeError(w, http.StatusBadRequest, "Password does not meet security requirements")
	case errors.Is(err, model.ErrInvalidCredentials):
		w.Header().Set("WWW-Authenticate", "Bearer")
		writeError(w, http.StatusUnauthorized, "Incorrect email or password")
	default:
		writeError(w, http.StatusInternalServerError, "Internal server error")
	}
}

func unauthorized(w http.ResponseWriter) {
	w.Header().Set("WWW-Authenticate", "Bearer")
	writeError(w, http.StatusUnauthorized, "Could not validate credentials")
}

func writeError(w http.ResponseWriter, status int, detail string) {
	writeJSON(w, status, map[string]string{"detail": detail})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
