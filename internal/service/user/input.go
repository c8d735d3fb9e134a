package user

import (
	"net/mail"
	"strings"
	"unicode/utf8"

	"github.com/heartmarshall/agrotiquiza-backend/internal/domain"
)

const (
	maxDocumentLength = 20
	maxNameLength     = 100
	maxEmailLength    = 254
	maxPasswordLength = 72 // bcrypt ignores bytes past 72
)

// RegisterInput holds parameters for registering an operator.
type RegisterInput struct {
	DocumentID string
	Email      string
	FirstName  string
	LastName   string
	Role       domain.Role
}

func (i *RegisterInput) normalize() {
	i.DocumentID = strings.TrimSpace(i.DocumentID)
	i.Email = strings.ToLower(strings.TrimSpace(i.Email))
	i.FirstName = domain.NormalizeText(i.FirstName)
	i.LastName = domain.NormalizeText(i.LastName)
}

// Validate validates the register input.
func (i RegisterInput) Validate() error {
	var errs []domain.FieldError

	if i.DocumentID == "" {
		errs = append(errs, domain.FieldError{Field: "document_id", Message: "required"})
	} else if len(i.DocumentID) > maxDocumentLength {
		errs = append(errs, domain.FieldError{Field: "document_id", Message: "too long"})
	} else if strings.ContainsFunc(i.DocumentID, func(r rune) bool { return r < '0' || r > '9' }) {
		errs = append(errs, domain.FieldError{Field: "document_id", Message: "digits only"})
	}

	if i.Email == "" {
		errs = append(errs, domain.FieldError{Field: "email", Message: "required"})
	} else if len(i.Email) > maxEmailLength {
		errs = append(errs, domain.FieldError{Field: "email", Message: "too long"})
	} else if _, err := mail.ParseAddress(i.Email); err != nil {
		errs = append(errs, domain.FieldError{Field: "email", Message: "invalid format"})
	}

	if i.FirstName == "" {
		errs = append(errs, domain.FieldError{Field: "first_name", Message: "required"})
	} else if utf8.RuneCountInString(i.FirstName) > maxNameLength {
		errs = append(errs, domain.FieldError{Field: "first_name", Message: "too long"})
	}
	if utf8.RuneCountInString(i.LastName) > maxNameLength {
		errs = append(errs, domain.FieldError{Field: "last_name", Message: "too long"})
	}

	if !i.Role.IsValid() {
		errs = append(errs, domain.FieldError{Field: "role", Message: "invalid role"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// ChangePasswordInput holds parameters for a password change by the caller.
type ChangePasswordInput struct {
	OldPassword string
	NewPassword string
}

// Validate validates the change password input against the minimum length.
func (i ChangePasswordInput) Validate(minLength int) error {
	var errs []domain.FieldError

	if i.OldPassword == "" {
		errs = append(errs, domain.FieldError{Field: "old_password", Message: "required"})
	}

	switch {
	case len(i.NewPassword) < minLength:
		errs = append(errs, domain.FieldError{Field: "new_password", Message: "too short"})
	case len(i.NewPassword) > maxPasswordLength:
		errs = append(errs, domain.FieldError{Field: "new_password", Message: "too long"})
	case i.NewPassword == i.OldPassword:
		errs = append(errs, domain.FieldError{Field: "new_password", Message: "must differ from the current password"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
