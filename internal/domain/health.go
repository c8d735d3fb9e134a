package domain

import "time"

// SanitaryEvent is a diagnosis/treatment entry for one animal.
type SanitaryEvent struct {
	ID          int64
	Date        time.Time
	AnimalID    int64
	Diagnosis   string
	Treatment   string
	Symptoms    *string
	Responsible string

	AnimalTag string
	FarmID    int64
}

// SanitaryUpdateParams holds optional fields for a partial sanitary event update.
type SanitaryUpdateParams struct {
	Date        *time.Time
	Diagnosis   *string
	Treatment   *string
	Symptoms    *string
	Responsible *string
}

// Insemination is a breeding service applied to a female.
type Insemination struct {
	ID            int64
	Date          time.Time
	AnimalID      int64
	SemenType     string
	Inseminator   string
	ResponsibleID int64

	AnimalTag string
	Confirmed bool
}

// InseminationUpdateParams holds optional fields for a partial insemination update.
type InseminationUpdateParams struct {
	Date        *time.Time
	SemenType   *string
	Inseminator *string
}

// GestationResult is the outcome of a pregnancy check.
type GestationResult string

const (
	GestationPregnant    GestationResult = "pregnant"
	GestationNotPregnant GestationResult = "not_pregnant"
)

func (r GestationResult) String() string { return string(r) }

func (r GestationResult) IsValid() bool {
	return r == GestationPregnant || r == GestationNotPregnant
}

// ReproductiveState returns the animal reproductive state implied by the result.
func (r GestationResult) ReproductiveState() ReproductiveState {
	if r == GestationPregnant {
		return ReproductivePregnant
	}
	return ReproductiveNotPregnant
}

// GestationConfirmation closes an insemination. One per insemination.
type GestationConfirmation struct {
	ID             int64
	ConfirmedOn    time.Time
	Method         string
	Result         GestationResult
	Responsible    string
	Notes          *string
	InseminationID int64

	AnimalTag string
}

// PendingCursor is the keyset position after the last pending insemination
// returned.
type PendingCursor struct {
	Date time.Time
	ID   int64
}
