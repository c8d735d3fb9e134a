package domain

import "time"

// MinFarmCodeLength is the shortest accepted farm code.
const MinFarmCodeLength = 3

// Farm is a physical livestock-holding location.
type Farm struct {
	ID        int64
	Name      string
	Code      string
	Location  string
	Owner     string
	Phone     string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// FarmUpdateParams holds optional fields for a partial farm update.
type FarmUpdateParams struct {
	Name     *string
	Code     *string
	Location *string
	Owner    *string
	Phone    *string
}
