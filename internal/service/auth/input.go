package auth

import "github.com/heartmarshall/agrotiquiza-backend/internal/domain"

// LoginInput holds parameters for password login.
type LoginInput struct {
	DocumentID string
	Password   string
}

// Validate validates the login input.
func (i LoginInput) Validate() error {
	var errs []domain.FieldError

	if i.DocumentID == "" {
		errs = append(errs, domain.FieldError{Field: "document_id", Message: "required"})
	} else if len(i.DocumentID) > 20 {
		errs = append(errs, domain.FieldError{Field: "document_id", Message: "too long"})
	}

	if i.Password == "" {
		errs = append(errs, domain.FieldError{Field: "password", Message: "required"})
	} else if len(i.Password) > 72 {
		errs = append(errs, domain.FieldError{Field: "password", Message: "too long"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
