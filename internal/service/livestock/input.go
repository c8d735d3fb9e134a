package livestock

import (
	"time"

	"github.com/heartmarshall/agrotiquiza-backend/internal/domain"
)

const (
	maxTagLength  = 50
	maxNameLength = 100
)

// CreateAnimalInput holds the parameters for registering an animal directly,
// outside of a birth.
type CreateAnimalInput struct {
	Tag       string
	Name      string
	BirthDate *time.Time
	Breed     string
	Sex       domain.Sex
	FarmID    int64
	MotherTag string // optional
}

// Validate checks all fields and collects all errors.
func (i CreateAnimalInput) Validate() error {
	var errs []domain.FieldError

	errs = validateTag(errs, "tag", i.Tag)
	if len(i.Name) > maxNameLength {
		errs = append(errs, domain.FieldError{Field: "name", Message: "max 100 characters"})
	}
	if !i.Sex.IsValid() {
		errs = append(errs, domain.FieldError{Field: "sex", Message: "must be M or F"})
	}
	if i.FarmID <= 0 {
		errs = append(errs, domain.FieldError{Field: "farm_id", Message: "required"})
	}
	if i.MotherTag != "" && i.MotherTag == i.Tag {
		errs = append(errs, domain.FieldError{Field: "mother_tag", Message: "an animal cannot be its own mother"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// WeighingInput holds the parameters for recording a weighing.
type WeighingInput struct {
	Tag      string
	Date     time.Time
	WeightKg float64
	FarmID   int64
}

// Validate checks all fields and collects all errors.
func (i WeighingInput) Validate() error {
	var errs []domain.FieldError

	errs = validateTag(errs, "tag", i.Tag)
	if i.Date.IsZero() {
		errs = append(errs, domain.FieldError{Field: "date", Message: "required"})
	}
	if i.WeightKg <= 0 {
		errs = append(errs, domain.FieldError{Field: "weight_kg", Message: "must be greater than 0"})
	}
	if i.FarmID <= 0 {
		errs = append(errs, domain.FieldError{Field: "farm_id", Message: "required"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// BirthInput holds the parameters for registering a birth.
type BirthInput struct {
	BirthDate     time.Time
	MotherTag     string
	OffspringTag  string
	OffspringName string
	FarmID        int64
	Breed         string
	Sex           domain.Sex
	WeightKg      *float64
	ActorID       *int64
}

// Validate checks all fields and collects all errors.
func (i BirthInput) Validate() error {
	var errs []domain.FieldError

	if i.BirthDate.IsZero() {
		errs = append(errs, domain.FieldError{Field: "birth_date", Message: "required"})
	}
	errs = validateTag(errs, "mother_tag", i.MotherTag)
	errs = validateTag(errs, "offspring_tag", i.OffspringTag)
	if i.MotherTag != "" && i.MotherTag == i.OffspringTag {
		errs = append(errs, domain.FieldError{Field: "offspring_tag", Message: "must differ from the mother tag"})
	}
	if len(i.OffspringName) > maxNameLength {
		errs = append(errs, domain.FieldError{Field: "offspring_name", Message: "max 100 characters"})
	}
	if i.FarmID <= 0 {
		errs = append(errs, domain.FieldError{Field: "farm_id", Message: "required"})
	}
	if !i.Sex.IsValid() {
		errs = append(errs, domain.FieldError{Field: "sex", Message: "must be M or F"})
	}
	if i.WeightKg != nil && *i.WeightKg <= 0 {
		errs = append(errs, domain.FieldError{Field: "weight_kg", Message: "must be greater than 0"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// ProductionInput holds one milking record. A nil side is left untouched
// when the day already has a record.
type ProductionInput struct {
	Tag       string
	Date      time.Time
	MorningKg *float64
	EveningKg *float64
	ActorID   *int64
}

// Validate checks all fields and collects all errors.
func (i ProductionInput) Validate() error {
	var errs []domain.FieldError

	errs = validateTag(errs, "tag", i.Tag)
	if i.Date.IsZero() {
		errs = append(errs, domain.FieldError{Field: "date", Message: "required"})
	}
	if i.MorningKg == nil && i.EveningKg == nil {
		errs = append(errs, domain.FieldError{Field: "input", Message: "morning or evening value is required"})
	}
	if i.MorningKg != nil && *i.MorningKg < 0 {
		errs = append(errs, domain.FieldError{Field: "morning_kg", Message: "must not be negative"})
	}
	if i.EveningKg != nil && *i.EveningKg < 0 {
		errs = append(errs, domain.FieldError{Field: "evening_kg", Message: "must not be negative"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// ExitInput holds the parameters for recording an exit.
type ExitInput struct {
	Tag     string
	Date    time.Time
	Type    domain.ExitType
	ActorID *int64
	Notes   string
}

// Validate checks all fields and collects all errors.
func (i ExitInput) Validate() error {
	var errs []domain.FieldError

	errs = validateTag(errs, "tag", i.Tag)
	if i.Date.IsZero() {
		errs = append(errs, domain.FieldError{Field: "date", Message: "required"})
	}
	if !i.Type.IsValid() {
		errs = append(errs, domain.FieldError{Field: "type", Message: "must be sale, death or cull"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// TransferInput holds a batch of animals moving to one farm.
type TransferInput struct {
	Tags              []string
	DestinationFarmID int64
	ActorID           *int64
}

// Validate checks all fields and collects all errors.
func (i TransferInput) Validate() error {
	var errs []domain.FieldError

	if len(i.Tags) == 0 {
		errs = append(errs, domain.FieldError{Field: "tags", Message: "at least one tag is required"})
	}
	for _, tag := range i.Tags {
		if tag == "" {
			errs = append(errs, domain.FieldError{Field: "tags", Message: "tags must not be empty"})
			break
		}
	}
	if i.DestinationFarmID <= 0 {
		errs = append(errs, domain.FieldError{Field: "destination_farm_id", Message: "required"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// ListTransfersInput filters the transfer history.
type ListTransfersInput struct {
	Tag    string // optional
	Limit  int
	Offset int
}

func validateTag(errs []domain.FieldError, field, tag string) []domain.FieldError {
	if tag == "" {
		return append(errs, domain.FieldError{Field: field, Message: "required"})
	}
	if len(tag) > maxTagLength {
		return append(errs, domain.FieldError{Field: field, Message: "max 50 characters"})
	}
	return errs
}
