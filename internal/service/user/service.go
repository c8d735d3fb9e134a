// Package user manages operator accounts: registration with a temporary
// password, activation, roles and password changes.
package user

import (
	"context"
	"log/slog"

	"github.com/heartmarshall/agrotiquiza-backend/internal/config"
	"github.com/heartmarshall/agrotiquiza-backend/internal/domain"
)

// userRepo defines the user repository interface needed by user service.
type userRepo interface {
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	List(ctx context.Context) ([]*domain.User, error)
	CountByRole(ctx context.Context, role domain.Role) (int, error)
	Create(ctx context.Context, u *domain.User) (*domain.User, error)
	UpdatePassword(ctx context.Context, id int64, hash string, temporary bool) error
	SetActive(ctx context.Context, id int64, active bool) error
	SetRole(ctx context.Context, id int64, role domain.Role) error
}

// txManager defines the transaction manager interface needed by user service.
type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service implements user administration and password operations.
type Service struct {
	log   *slog.Logger
	users userRepo
	tx    txManager
	cfg   config.AuthConfig
}

// NewService creates a new user service instance.
func NewService(
	logger *slog.Logger,
	users userRepo,
	tx txManager,
	cfg config.AuthConfig,
) *Service {
	return &Service{
		log:   logger.With("service", "user"),
		users: users,
		tx:    tx,
		cfg:   cfg,
	}
}
