// Package report implements read-only aggregate queries for the dashboard.
// Nothing in this package writes.
package report

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/heartmarshall/agrotiquiza-backend/internal/adapter/postgres"
	"github.com/heartmarshall/agrotiquiza-backend/internal/domain"
)

// dailyTotalExpr is the per-row milk total with missing sides counted as zero.
const dailyTotalExpr = "COALESCE(p.morning_kg, 0) + COALESCE(p.evening_kg, 0)"

// inventoryStates are the states counted as present on a farm.
var inventoryStates = []string{string(domain.AnimalStateActive), string(domain.AnimalStateTransferred)}

type farmCountRow struct {
	FarmID   int64  `db:"farm_id"`
	FarmName string `db:"farm_name"`
	Count    int64  `db:"count"`
}

type farmAverageRow struct {
	FarmID   int64   `db:"farm_id"`
	FarmName string  `db:"farm_name"`
	Average  float64 `db:"average"`
}

type exitCountRow struct {
	Type  string `db:"type"`
	Count int64  `db:"count"`
}

// Repo runs dashboard aggregates against PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new report repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// ---------------------------------------------------------------------------
// Scalar counts
// ---------------------------------------------------------------------------

// CountFarms returns the number of farms.
func (r *Repo) CountFarms(ctx context.Context) (int64, error) {
	return r.count(ctx, "farms", nil)
}

// CountBirths returns the number of births.
func (r *Repo) CountBirths(ctx context.Context) (int64, error) {
	return r.count(ctx, "births", nil)
}

// CountTransfers returns the number of transfers.
func (r *Repo) CountTransfers(ctx context.Context) (int64, error) {
	return r.count(ctx, "transfers", nil)
}

// CountSanitaryEvents returns the number of sanitary events.
func (r *Repo) CountSanitaryEvents(ctx context.Context) (int64, error) {
	return r.count(ctx, "sanitary_events", nil)
}

// CountInseminations returns the number of inseminations.
func (r *Repo) CountInseminations(ctx context.Context) (int64, error) {
	return r.count(ctx, "inseminations", nil)
}

// CountPendingInseminations returns the number of inseminations without a confirmation.
func (r *Repo) CountPendingInseminations(ctx context.Context) (int64, error) {
	return r.count(ctx, "inseminations i",
		squirrel.Expr("NOT EXISTS (SELECT 1 FROM gestation_confirmations g WHERE g.insemination_id = i.id)"))
}

// CountPregnant returns the number of non-terminal animals whose reproductive state is pregnant.
func (r *Repo) CountPregnant(ctx context.Context) (int64, error) {
	return r.count(ctx, "animals", squirrel.Eq{
		"reproductive_state": string(domain.ReproductivePregnant),
		"state":              inventoryStates,
	})
}

// CountActiveFemales returns the number of active females.
func (r *Repo) CountActiveFemales(ctx context.Context) (int64, error) {
	return r.count(ctx, "animals", squirrel.Eq{
		"sex":   string(domain.SexFemale),
		"state": string(domain.AnimalStateActive),
	})
}

// TotalProductionKg returns the sum of all recorded milk.
func (r *Repo) TotalProductionKg(ctx context.Context) (float64, error) {
	q := postgres.Builder.Select("COALESCE(SUM(" + dailyTotalExpr + "), 0)").From("milk_productions p")

	var total float64
	if err := postgres.Get(ctx, r.db, &total, q); err != nil {
		return 0, fmt.Errorf("sum production: %w", err)
	}
	return total, nil
}

// ---------------------------------------------------------------------------
// Grouped aggregates
// ---------------------------------------------------------------------------

// ExitsByType returns the number of exit events per type. Types without
// events are present with zero.
func (r *Repo) ExitsByType(ctx context.Context) (map[domain.ExitType]int64, error) {
	q := postgres.Builder.Select("type", "count(*) AS count").From("exit_events").GroupBy("type")

	var rows []exitCountRow
	if err := postgres.Select(ctx, r.db, &rows, q); err != nil {
		return nil, fmt.Errorf("count exits by type: %w", err)
	}

	out := map[domain.ExitType]int64{
		domain.ExitSale:  0,
		domain.ExitDeath: 0,
		domain.ExitCull:  0,
	}
	for _, row := range rows {
		out[domain.ExitType(row.Type)] = row.Count
	}
	return out, nil
}

// AnimalsPerFarm returns, for every farm, the number of animals currently
// on it (active or transferred in).
func (r *Repo) AnimalsPerFarm(ctx context.Context) ([]domain.FarmCount, error) {
	sql, args, err := squirrel.Eq{"a.state": inventoryStates}.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	q := postgres.Builder.
		Select("f.id AS farm_id", "f.name AS farm_name", "count(a.id) AS count").
		From("farms f").
		LeftJoin("animals a ON a.farm_id = f.id AND "+sql, args...).
		GroupBy("f.id", "f.name").
		OrderBy("f.name ASC")

	return r.farmCounts(ctx, q, "count animals per farm")
}

// SanitaryEventsPerFarm returns the number of sanitary events per farm of
// the animal's current farm.
func (r *Repo) SanitaryEventsPerFarm(ctx context.Context) ([]domain.FarmCount, error) {
	q := postgres.Builder.
		Select("f.id AS farm_id", "f.name AS farm_name", "count(s.id) AS count").
		From("farms f").
		LeftJoin("animals a ON a.farm_id = f.id").
		LeftJoin("sanitary_events s ON s.animal_id = a.id").
		GroupBy("f.id", "f.name").
		OrderBy("f.name ASC")

	return r.farmCounts(ctx, q, "count sanitary events per farm")
}

// AvgProductionPerFarm returns the average daily milk total per farm. Farms
// without production records are omitted.
func (r *Repo) AvgProductionPerFarm(ctx context.Context) ([]domain.FarmAverage, error) {
	q := postgres.Builder.
		Select("f.id AS farm_id", "f.name AS farm_name", "AVG("+dailyTotalExpr+") AS average").
		From("milk_productions p").
		Join("farms f ON f.id = p.farm_id").
		GroupBy("f.id", "f.name").
		OrderBy("f.name ASC")

	var rows []farmAverageRow
	if err := postgres.Select(ctx, r.db, &rows, q); err != nil {
		return nil, fmt.Errorf("average production per farm: %w", err)
	}

	out := make([]domain.FarmAverage, len(rows))
	for i, row := range rows {
		out[i] = domain.FarmAverage{FarmID: row.FarmID, FarmName: row.FarmName, Average: row.Average}
	}
	return out, nil
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func (r *Repo) count(ctx context.Context, from string, where squirrel.Sqlizer) (int64, error) {
	q := postgres.Builder.Select("count(*)").From(from)
	if where != nil {
		q = q.Where(where)
	}

	var n int64
	if err := postgres.Get(ctx, r.db, &n, q); err != nil {
		return 0, fmt.Errorf("count %s: %w", from, err)
	}
	return n, nil
}

func (r *Repo) farmCounts(ctx context.Context, q squirrel.SelectBuilder, op string) ([]domain.FarmCount, error) {
	var rows []farmCountRow
	if err := postgres.Select(ctx, r.db, &rows, q); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	out := make([]domain.FarmCount, len(rows))
	for i, row := range rows {
		out[i] = domain.FarmCount{FarmID: row.FarmID, FarmName: row.FarmName, Count: row.Count}
	}
	return out, nil
}
