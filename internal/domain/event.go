package domain

import "time"

// Weighing records an animal's weight on a date.
type Weighing struct {
	ID       int64
	Date     time.Time
	WeightKg float64
	AnimalID int64
	FarmID   int64
}

// Birth links a mother to a newly registered offspring.
type Birth struct {
	ID          int64
	BirthDate   time.Time
	MotherID    int64
	OffspringID *int64
	FarmID      int64
	WeightKg    *float64
	Breed       string
	Sex         Sex
	CreatedBy   *int64
	CreatedAt   time.Time

	// Read-side joins, empty on writes.
	MotherTag    string
	OffspringTag *string
}

// MilkProduction is the per-day milk yield of a female. At most one record
// exists per (AnimalID, Date).
type MilkProduction struct {
	ID        int64
	Date      time.Time
	MorningKg *float64
	EveningKg *float64
	AnimalID  int64
	FarmID    int64
}

// DailyTotal sums both milkings, counting a missing side as zero.
func (p *MilkProduction) DailyTotal() float64 {
	var total float64
	if p.MorningKg != nil {
		total += *p.MorningKg
	}
	if p.EveningKg != nil {
		total += *p.EveningKg
	}
	return total
}

// ExitType is the reason an animal leaves the herd.
type ExitType string

const (
	ExitSale  ExitType = "sale"
	ExitDeath ExitType = "death"
	ExitCull  ExitType = "cull"
)

func (t ExitType) String() string { return string(t) }

func (t ExitType) IsValid() bool {
	switch t {
	case ExitSale, ExitDeath, ExitCull:
		return true
	}
	return false
}

// ResultingState maps the exit type to the animal's terminal state.
func (t ExitType) ResultingState() AnimalState {
	switch t {
	case ExitSale:
		return AnimalStateSold
	case ExitDeath:
		return AnimalStateDead
	default:
		return AnimalStateInactive
	}
}

// ExitEvent is the terminal event of an animal.
type ExitEvent struct {
	ID            int64
	Date          time.Time
	Type          ExitType
	AnimalID      int64
	ResponsibleID *int64
	Notes         string
}

// Transfer records an animal moving between farms.
type Transfer struct {
	ID                int64
	TransferredAt     time.Time
	OriginFarmID      int64
	DestinationFarmID int64
	AnimalID          int64
	UserID            *int64

	AnimalTag string
}
