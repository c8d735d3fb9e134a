package farm

import (
	"strings"
	"unicode/utf8"

	"github.com/heartmarshall/agrotiquiza-backend/internal/domain"
)

const (
	maxNameLength = 100
	maxCodeLength = 20
)

// CreateFarmInput holds the parameters for creating a farm.
type CreateFarmInput struct {
	Name     string
	Code     string
	Location string
	Owner    string
	Phone    string
}

// Validate checks all fields and collects all errors.
func (i CreateFarmInput) Validate() error {
	var errs []domain.FieldError

	errs = validateName(errs, i.Name)
	errs = validateCode(errs, i.Code)

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateFarmInput holds the parameters for updating a farm. Nil fields are
// left unchanged.
type UpdateFarmInput struct {
	ID       int64
	Name     *string
	Code     *string
	Location *string
	Owner    *string
	Phone    *string
}

// Validate checks all fields and collects all errors.
func (i UpdateFarmInput) Validate() error {
	var errs []domain.FieldError

	if i.ID <= 0 {
		errs = append(errs, domain.FieldError{Field: "id", Message: "required"})
	}
	if i.Name == nil && i.Code == nil && i.Location == nil && i.Owner == nil && i.Phone == nil {
		errs = append(errs, domain.FieldError{Field: "input", Message: "at least one field must be provided"})
	}
	if i.Name != nil {
		errs = validateName(errs, *i.Name)
	}
	if i.Code != nil {
		errs = validateCode(errs, *i.Code)
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func validateName(errs []domain.FieldError, name string) []domain.FieldError {
	name = strings.TrimSpace(name)
	if name == "" {
		return append(errs, domain.FieldError{Field: "name", Message: "required"})
	}
	if utf8.RuneCountInString(name) > maxNameLength {
		return append(errs, domain.FieldError{Field: "name", Message: "max 100 characters"})
	}
	return errs
}

func validateCode(errs []domain.FieldError, code string) []domain.FieldError {
	n := utf8.RuneCountInString(strings.TrimSpace(code))
	if n < domain.MinFarmCodeLength {
		return append(errs, domain.FieldError{Field: "code", Message: "min 3 characters"})
	}
	if n > maxCodeLength {
		return append(errs, domain.FieldError{Field: "code", Message: "max 20 characters"})
	}
	return errs
}

func normalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// trimPtr trims whitespace, keeping nil as nil.
func trimPtr(s *string) *string {
	if s == nil {
		return nil
	}
	v := domain.NormalizeText(*s)
	return &v
}
