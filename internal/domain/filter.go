package domain

// AnimalFilter contains filtering/pagination parameters for animal searches.
type AnimalFilter struct {
	Query  string // matches tag or name, case-insensitive
	FarmID *int64
	State  *AnimalState
	Sex    *Sex
	Limit  int
	Offset int
}

// BirthFilter narrows birth listings and exports.
type BirthFilter struct {
	MotherTag string
	FarmID    *int64
}

// SanitaryFilter narrows sanitary event listings and exports.
type SanitaryFilter struct {
	Tag    string
	FarmID *int64
}

// DefaultListLimit and MaxListLimit bound list page sizes.
const (
	DefaultListLimit = 50
	MaxListLimit     = 500
)

// ClampLimit normalizes a requested page size.
func ClampLimit(limit int) int {
	if limit <= 0 {
		return DefaultListLimit
	}
	if limit > MaxListLimit {
		return MaxListLimit
	}
	return limit
}
