package auth

import "github.com/heartmarshall/agrotiquiza-backend/internal/domain"

// AuthResult is returned by Login.
type AuthResult struct {
	AccessToken string
	User        *domain.User
	// MustChangePassword is set while the user still has a temporary password.
	MustChangePassword bool
}
