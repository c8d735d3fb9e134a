package domain

import "time"

// Sex of an animal.
type Sex string

const (
	SexMale   Sex = "M"
	SexFemale Sex = "F"
)

func (s Sex) String() string { return string(s) }

func (s Sex) IsValid() bool {
	return s == SexMale || s == SexFemale
}

// AnimalState is the primary lifecycle state of an animal.
type AnimalState string

const (
	AnimalStateActive      AnimalState = "active"
	AnimalStateSold        AnimalState = "sold"
	AnimalStateDead        AnimalState = "dead"
	AnimalStateTransferred AnimalState = "transferred"
	AnimalStateInactive    AnimalState = "inactive"
)

func (s AnimalState) String() string { return string(s) }

func (s AnimalState) IsValid() bool {
	switch s {
	case AnimalStateActive, AnimalStateSold, AnimalStateDead,
		AnimalStateTransferred, AnimalStateInactive:
		return true
	}
	return false
}

// IsTerminal reports whether the state ends the animal's productive life.
// Terminal states are only reached through an exit event and never left.
func (s AnimalState) IsTerminal() bool {
	switch s {
	case AnimalStateSold, AnimalStateDead, AnimalStateInactive:
		return true
	}
	return false
}

// ReproductiveState is tracked independently of AnimalState.
type ReproductiveState string

const (
	ReproductiveOpen        ReproductiveState = "open"
	ReproductivePregnant    ReproductiveState = "pregnant"
	ReproductiveNotPregnant ReproductiveState = "not_pregnant"
)

func (s ReproductiveState) String() string { return string(s) }

func (s ReproductiveState) IsValid() bool {
	switch s {
	case ReproductiveOpen, ReproductivePregnant, ReproductiveNotPregnant:
		return true
	}
	return false
}

// Animal is the central registry entity. The mother is a non-owning
// reference by id.
type Animal struct {
	ID                int64
	Tag               string
	Name              string
	BirthDate         *time.Time
	Breed             string
	Sex               Sex
	State             AnimalState
	ReproductiveState ReproductiveState
	FarmID            int64
	MotherID          *int64
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// IsFemale reports whether the animal is female.
func (a *Animal) IsFemale() bool { return a.Sex == SexFemale }

// CanRegisterBirth reports whether the animal may be recorded as a mother.
func (a *Animal) CanRegisterBirth() bool {
	return a.IsFemale() && a.State == AnimalStateActive
}

// AgeDays returns the age in whole days at now, or nil when the birth date
// is unknown.
func (a *Animal) AgeDays(now time.Time) *int {
	if a.BirthDate == nil {
		return nil
	}
	b := a.BirthDate.UTC()
	n := now.UTC()
	from := time.Date(b.Year(), b.Month(), b.Day(), 0, 0, 0, 0, time.UTC)
	to := time.Date(n.Year(), n.Month(), n.Day(), 0, 0, 0, 0, time.UTC)
	days := int(to.Sub(from).Hours() / 24)
	return &days
}

// ValidateMother checks that motherID does not point back at the animal.
func (a *Animal) ValidateMother(motherID *int64) error {
	if motherID != nil && a.ID != 0 && *motherID == a.ID {
		return NewValidationError("mother_id", "an animal cannot be its own mother")
	}
	return nil
}

// AnimalDetail is an animal with derived read-side data.
type AnimalDetail struct {
	Animal        *Animal
	FarmName      string
	MotherTag     *string
	LatestWeight  *Weighing
	AgeDays       *int
	OffspringTags []string
}
