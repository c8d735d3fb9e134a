package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/heartmarshall/agrotiquiza-backend/internal/domain"
)

// Login authenticates a user by document id and password.
// Unknown document, inactive account and wrong password all return
// ErrUnauthorized so callers cannot tell them apart.
func (s *Service) Login(ctx context.Context, input LoginInput) (*AuthResult, error) {
	input.DocumentID = strings.TrimSpace(input.DocumentID)

	// Step 1: Validate input
	if err := input.Validate(); err != nil {
		return nil, err
	}

	// Step 2: Find user by document id
	user, err := s.users.GetByDocumentID(ctx, input.DocumentID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrUnauthorized
		}
		return nil, fmt.Errorf("auth.Login get user: %w", err)
	}

	// Step 3: Verify account and password
	if !user.IsActive {
		s.log.WarnContext(ctx, "login attempt on inactive account", slog.Int64("user_id", user.ID))
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}

	// Step 4: Issue token
	token, err := s.jwt.GenerateAccessToken(user.ID, user.Role.String())
	if err != nil {
		return nil, fmt.Errorf("auth.Login generate access token: %w", err)
	}

	s.log.InfoContext(ctx, "user logged in", slog.Int64("user_id", user.ID))

	return &AuthResult{
		AccessToken:        token,
		User:               user,
		MustChangePassword: user.IsTempPassword,
	}, nil
}

// ValidateToken checks an access token and returns the caller's identity.
// The user is reloaded so deactivation and role changes apply immediately
// rather than at token expiry.
func (s *Service) ValidateToken(ctx context.Context, token string) (domain.Identity, error) {
	userID, _, err := s.jwt.ValidateAccessToken(token)
	if err != nil {
		return domain.Identity{}, domain.ErrUnauthorized
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.Identity{}, domain.ErrUnauthorized
		}
		return domain.Identity{}, fmt.Errorf("auth.ValidateToken get user: %w", err)
	}
	if !user.IsActive {
		return domain.Identity{}, domain.ErrUnauthorized
	}

	return domain.Identity{UserID: user.ID, Role: user.Role}, nil
}
