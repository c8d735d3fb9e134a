package health

import (
	"strings"
	"time"

	"github.com/heartmarshall/agrotiquiza-backend/internal/domain"
)

const maxTextLength = 1000

// SanitaryInput holds the parameters for recording a sanitary event.
type SanitaryInput struct {
	Tag         string
	Date        time.Time
	Diagnosis   string
	Treatment   string
	Symptoms    *string
	Responsible string
}

// Validate checks all fields and collects all errors.
func (i SanitaryInput) Validate() error {
	var errs []domain.FieldError

	if i.Tag == "" {
		errs = append(errs, domain.FieldError{Field: "tag", Message: "required"})
	}
	if i.Date.IsZero() {
		errs = append(errs, domain.FieldError{Field: "date", Message: "required"})
	}
	errs = requiredText(errs, "diagnosis", i.Diagnosis)
	errs = requiredText(errs, "treatment", i.Treatment)
	errs = requiredText(errs, "responsible", i.Responsible)

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateSanitaryInput holds a partial update of a sanitary event.
type UpdateSanitaryInput struct {
	ID          int64
	Date        *time.Time
	Diagnosis   *string
	Treatment   *string
	Symptoms    *string // nil = don't change; ptr("") = clear
	Responsible *string
}

// Validate checks all fields and collects all errors.
func (i UpdateSanitaryInput) Validate() error {
	var errs []domain.FieldError

	if i.ID <= 0 {
		errs = append(errs, domain.FieldError{Field: "id", Message: "required"})
	}
	if i.Date == nil && i.Diagnosis == nil && i.Treatment == nil && i.Symptoms == nil && i.Responsible == nil {
		errs = append(errs, domain.FieldError{Field: "input", Message: "at least one field must be provided"})
	}
	if i.Date != nil && i.Date.IsZero() {
		errs = append(errs, domain.FieldError{Field: "date", Message: "required"})
	}
	if i.Diagnosis != nil {
		errs = requiredText(errs, "diagnosis", *i.Diagnosis)
	}
	if i.Treatment != nil {
		errs = requiredText(errs, "treatment", *i.Treatment)
	}
	if i.Responsible != nil {
		errs = requiredText(errs, "responsible", *i.Responsible)
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// InseminationInput holds the parameters for recording an insemination.
type InseminationInput struct {
	Tag         string
	Date        time.Time
	SemenType   string
	Inseminator string
	ActorID     int64
}

// Validate checks all fields and collects all errors.
func (i InseminationInput) Validate() error {
	var errs []domain.FieldError

	if i.Tag == "" {
		errs = append(errs, domain.FieldError{Field: "tag", Message: "required"})
	}
	if i.Date.IsZero() {
		errs = append(errs, domain.FieldError{Field: "date", Message: "required"})
	}
	errs = requiredText(errs, "semen_type", i.SemenType)
	errs = requiredText(errs, "inseminator", i.Inseminator)
	if i.ActorID <= 0 {
		errs = append(errs, domain.FieldError{Field: "actor_id", Message: "required"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateInseminationInput holds a partial update of an insemination.
type UpdateInseminationInput struct {
	ID          int64
	Date        *time.Time
	SemenType   *string
	Inseminator *string
}

// Validate checks all fields and collects all errors.
func (i UpdateInseminationInput) Validate() error {
	var errs []domain.FieldError

	if i.ID <= 0 {
		errs = append(errs, domain.FieldError{Field: "id", Message: "required"})
	}
	if i.Date == nil && i.SemenType == nil && i.Inseminator == nil {
		errs = append(errs, domain.FieldError{Field: "input", Message: "at least one field must be provided"})
	}
	if i.Date != nil && i.Date.IsZero() {
		errs = append(errs, domain.FieldError{Field: "date", Message: "required"})
	}
	if i.SemenType != nil {
		errs = requiredText(errs, "semen_type", *i.SemenType)
	}
	if i.Inseminator != nil {
		errs = requiredText(errs, "inseminator", *i.Inseminator)
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// ConfirmInput holds the outcome of a gestation check.
type ConfirmInput struct {
	InseminationID int64
	ConfirmedOn    time.Time
	Method         string
	Result         domain.GestationResult
	Responsible    string
	Notes          *string
}

// Validate checks all fields and collects all errors.
func (i ConfirmInput) Validate() error {
	var errs []domain.FieldError

	if i.InseminationID <= 0 {
		errs = append(errs, domain.FieldError{Field: "insemination_id", Message: "required"})
	}
	if i.ConfirmedOn.IsZero() {
		errs = append(errs, domain.FieldError{Field: "confirmed_on", Message: "required"})
	}
	errs = requiredText(errs, "method", i.Method)
	if !i.Result.IsValid() {
		errs = append(errs, domain.FieldError{Field: "result", Message: "must be pregnant or not_pregnant"})
	}
	errs = requiredText(errs, "responsible", i.Responsible)

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func requiredText(errs []domain.FieldError, field, value string) []domain.FieldError {
	value = strings.TrimSpace(value)
	if value == "" {
		return append(errs, domain.FieldError{Field: field, Message: "required"})
	}
	if len(value) > maxTextLength {
		return append(errs, domain.FieldError{Field: field, Message: "max 1000 characters"})
	}
	return errs
}

// trimOrNil trims whitespace. Returns nil if result is empty.
func trimOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}
