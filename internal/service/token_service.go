package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/DanangAP-mitrais/ai-chat-app/internal/logger"
	"github.com/DanangAP-mitrais/ai-chat-app/internal/model"
)

// TokenService provides high-level operations for issuing bearer tokens and
// resolving them back to a user ID. Tokens are self-contained: nothing is
// stored server-side and they remain valid until their embedded expiry.
type TokenService struct {
	manager model.TokenManager
	logger  *logger.Logger
}

func NewTokenService(manager model.TokenManager, logger *logger.Logger) *TokenService {
	return &TokenService{manager: manager, logger: logger}
}

// Issue creates an access token for the user and reports its lifetime in
// seconds.
func (s *TokenService) Issue(ctx context.Context, userID uuid.UUID) (accessToken string, expiresIn int, err error) {
	access, err := s.manager.GenerateAccessToken(userID)
	if err != nil {
		return "", 0, fmt.Errorf("issue access: %w", err)
	}

	return access, s.manager.AccessTokenTTLSeconds(), nil
}

// GetUserID extracts the subject from a valid access token. Expired, forged
// and malformed tokens all fail the same way.
func (s *TokenService) GetUserID(ctx context.Context, token string) (uuid.UUID, error) {
	return s.manager.ParseAccessToken(token)
}
