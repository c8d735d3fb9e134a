package user

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"log/slog"
	"math/big"

	"golang.org/x/crypto/bcrypt"

	"github.com/heartmarshall/agrotiquiza-backend/internal/domain"
	"github.com/heartmarshall/agrotiquiza-backend/pkg/ctxutil"
)

const tempPasswordAlphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789!@#$%^&*()-_"

// ChangePassword replaces the caller's password and clears the temporary
// flag. The current password must be supplied.
func (s *Service) ChangePassword(ctx context.Context, input ChangePasswordInput) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	// Step 1: Validate input
	if err := input.Validate(s.cfg.MinPasswordLength); err != nil {
		return err
	}

	// Step 2: Verify current password
	u, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrUnauthorized
		}
		return fmt.Errorf("get user: %w", err)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(input.OldPassword)); err != nil {
		return domain.NewValidationError("old_password", "incorrect password")
	}

	// Step 3: Store new hash
	hash, err := bcrypt.GenerateFromPassword([]byte(input.NewPassword), s.cfg.PasswordHashCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	if err := s.users.UpdatePassword(ctx, userID, string(hash), false); err != nil {
		return fmt.Errorf("update password: %w", err)
	}

	s.log.InfoContext(ctx, "password changed", slog.Int64("user_id", userID))
	return nil
}

// generateTempPassword returns a random password of length n drawn from
// tempPasswordAlphabet using crypto/rand.
func generateTempPassword(n int) (string, error) {
	limit := big.NewInt(int64(len(tempPasswordAlphabet)))
	buf := make([]byte, n)
	for i := range buf {
		idx, err := rand.Int(rand.Reader, limit)
		if err != nil {
			return "", fmt.Errorf("read random: %w", err)
		}
		buf[i] = tempPasswordAlphabet[idx.Int64()]
	}
	return string(buf), nil
}
