package domain

// FarmCount is a per-farm count used by dashboard aggregates.
type FarmCount struct {
	FarmID   int64
	FarmName string
	Count    int64
}

// FarmAverage is a per-farm average used by dashboard aggregates.
type FarmAverage struct {
	FarmID   int64
	FarmName string
	Average  float64
}

// Dashboard is the read-only inventory summary.
type Dashboard struct {
	ExitsByType              map[ExitType]int64
	TransferCount            int64
	PregnantCount            int64
	ActiveFemales            int64
	AnimalsPerFarm           []FarmCount
	FarmCount                int64
	BirthCount               int64
	AvgProductionPerFarm     []FarmAverage
	TotalProductionKg        float64
	SanitaryEventCount       int64
	SanitaryEventsPerFarm    []FarmCount
	InseminationCount        int64
	PendingInseminationCount int64
}

