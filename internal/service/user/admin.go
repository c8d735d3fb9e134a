package user

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/crypto/bcrypt"

	"github.com/heartmarshall/agrotiquiza-backend/internal/domain"
	"github.com/heartmarshall/agrotiquiza-backend/pkg/ctxutil"
)

const defaultTempPasswordLength = 10

// RegisterResult carries the created user and the temporary password. The
// plain password is returned only here and is never stored.
type RegisterResult struct {
	User         *domain.User
	TempPassword string
}

// Register creates an operator with a generated temporary password that must
// be changed at first login. Returns ErrAlreadyExists if the document id or
// email is taken.
func (s *Service) Register(ctx context.Context, input RegisterInput) (*RegisterResult, error) {
	input.normalize()

	// Step 1: Validate input
	if err := input.Validate(); err != nil {
		return nil, err
	}

	// Step 2: Generate and hash temporary password
	length := s.cfg.TempPasswordLength
	if length <= 0 {
		length = defaultTempPasswordLength
	}
	plain, err := generateTempPassword(length)
	if err != nil {
		return nil, fmt.Errorf("generate temp password: %w", err)
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), s.cfg.PasswordHashCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	// Step 3: Insert. Uniqueness is enforced by DB constraints.
	created, err := s.users.Create(ctx, &domain.User{
		DocumentID:     input.DocumentID,
		Email:          input.Email,
		FirstName:      input.FirstName,
		LastName:       input.LastName,
		Role:           input.Role,
		IsActive:       true,
		IsTempPassword: true,
		PasswordHash:   string(hash),
	})
	if err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}

	s.log.InfoContext(ctx, "user registered",
		slog.Int64("user_id", created.ID),
		slog.String("role", created.Role.String()),
	)

	return &RegisterResult{User: created, TempPassword: plain}, nil
}

// List returns all users ordered by name.
func (s *Service) List(ctx context.Context) ([]*domain.User, error) {
	users, err := s.users.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}

// ToggleActive flips the active flag of a user. Callers cannot deactivate
// themselves, and the last active manager cannot be deactivated.
func (s *Service) ToggleActive(ctx context.Context, id int64) (*domain.User, error) {
	if callerID, ok := ctxutil.UserIDFromCtx(ctx); ok && callerID == id {
		return nil, domain.NewValidationError("id", "cannot deactivate yourself")
	}

	var updated *domain.User
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		u, err := s.users.GetByID(txCtx, id)
		if err != nil {
			return fmt.Errorf("get user: %w", err)
		}

		if u.IsActive && u.Role == domain.RoleManager {
			if err := s.ensureAnotherManager(txCtx); err != nil {
				return err
			}
		}

		if err := s.users.SetActive(txCtx, id, !u.IsActive); err != nil {
			return fmt.Errorf("set active: %w", err)
		}
		u.IsActive = !u.IsActive
		updated = u
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "user active flag changed",
		slog.Int64("user_id", id),
		slog.Bool("active", updated.IsActive),
	)

	return updated, nil
}

// ChangeRole assigns a new role. The last active manager cannot be demoted.
func (s *Service) ChangeRole(ctx context.Context, id int64, role domain.Role) (*domain.User, error) {
	if !role.IsValid() {
		return nil, domain.NewValidationError("role", "invalid role")
	}

	var updated *domain.User
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		u, err := s.users.GetByID(txCtx, id)
		if err != nil {
			return fmt.Errorf("get user: %w", err)
		}
		if u.Role == role {
			updated = u
			return nil
		}

		if u.IsActive && u.Role == domain.RoleManager {
			if err := s.ensureAnotherManager(txCtx); err != nil {
				return err
			}
		}

		if err := s.users.SetRole(txCtx, id, role); err != nil {
			return fmt.Errorf("set role: %w", err)
		}
		u.Role = role
		updated = u
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "user role changed",
		slog.Int64("user_id", id),
		slog.String("role", role.String()),
	)

	return updated, nil
}

// ensureAnotherManager fails with ErrConflict when removing one active
// manager would leave none.
func (s *Service) ensureAnotherManager(ctx context.Context) error {
	n, err := s.users.CountByRole(ctx, domain.RoleManager)
	if err != nil {
		return fmt.Errorf("count managers: %w", err)
	}
	if n <= 1 {
		return fmt.Errorf("last active manager: %w", domain.ErrConflict)
	}
	return nil
}
