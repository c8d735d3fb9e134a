// Package insemination implements the Insemination and GestationConfirmation
// repository using PostgreSQL. An insemination is pending until a
// confirmation row references it.
package insemination

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/heartmarshall/agrotiquiza-backend/internal/adapter/postgres"
	"github.com/heartmarshall/agrotiquiza-backend/internal/domain"
)

const (
	table             = "inseminations"
	confirmationTable = "gestation_confirmations"
)

var (
	columns             = []string{"id", "date", "animal_id", "semen_type", "inseminator", "responsible_id"}
	confirmationColumns = []string{"id", "confirmed_on", "method", "result", "responsible", "notes", "insemination_id"}
)

type inseminationRow struct {
	ID            int64     `db:"id"`
	Date          time.Time `db:"date"`
	AnimalID      int64     `db:"animal_id"`
	SemenType     string    `db:"semen_type"`
	Inseminator   string    `db:"inseminator"`
	ResponsibleID int64     `db:"responsible_id"`
	AnimalTag     string    `db:"animal_tag"`
	Confirmed     bool      `db:"confirmed"`
}

func (r inseminationRow) toDomain() *domain.Insemination {
	return &domain.Insemination{
		ID:            r.ID,
		Date:          r.Date,
		AnimalID:      r.AnimalID,
		SemenType:     r.SemenType,
		Inseminator:   r.Inseminator,
		ResponsibleID: r.ResponsibleID,
		AnimalTag:     r.AnimalTag,
		Confirmed:     r.Confirmed,
	}
}

type confirmationRow struct {
	ID             int64     `db:"id"`
	ConfirmedOn    time.Time `db:"confirmed_on"`
	Method         string    `db:"method"`
	Result         string    `db:"result"`
	Responsible    string    `db:"responsible"`
	Notes          *string   `db:"notes"`
	InseminationID int64     `db:"insemination_id"`
	AnimalTag      string    `db:"animal_tag"`
}

func (r confirmationRow) toDomain() *domain.GestationConfirmation {
	return &domain.GestationConfirmation{
		ID:             r.ID,
		ConfirmedOn:    r.ConfirmedOn,
		Method:         r.Method,
		Result:         domain.GestationResult(r.Result),
		Responsible:    r.Responsible,
		Notes:          r.Notes,
		InseminationID: r.InseminationID,
		AnimalTag:      r.AnimalTag,
	}
}

// Repo provides insemination and confirmation persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new insemination repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

func selectJoined() squirrel.SelectBuilder {
	return postgres.Builder.
		Select(postgres.Qualify("i", columns)...).
		Columns(
			"a.tag AS animal_tag",
			"EXISTS (SELECT 1 FROM "+confirmationTable+" g WHERE g.insemination_id = i.id) AS confirmed",
		).
		From(table + " i").
		Join("animals a ON a.id = i.animal_id")
}

// ---------------------------------------------------------------------------
// Inseminations
// ---------------------------------------------------------------------------

// GetByID returns an insemination with its confirmed flag.
func (r *Repo) GetByID(ctx context.Context, id int64) (*domain.Insemination, error) {
	q := selectJoined().Where(squirrel.Eq{"i.id": id})

	var row inseminationRow
	if err := postgres.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, q); err != nil {
		return nil, postgres.MapError(err, "insemination", id)
	}
	return row.toDomain(), nil
}

// Create inserts an insemination.
func (r *Repo) Create(ctx context.Context, ins *domain.Insemination) (*domain.Insemination, error) {
	q := postgres.Builder.Insert(table).
		Columns("date", "animal_id", "semen_type", "inseminator", "responsible_id").
		Values(ins.Date, ins.AnimalID, ins.SemenType, ins.Inseminator, ins.ResponsibleID).
		Suffix("RETURNING " + postgres.ColumnList(columns) + ", '' AS animal_tag, false AS confirmed")

	var row inseminationRow
	if err := postgres.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, q); err != nil {
		return nil, postgres.MapError(err, "insemination of animal", ins.AnimalID)
	}

	out := row.toDomain()
	out.AnimalTag = ins.AnimalTag
	return out, nil
}

// Update applies the non-nil fields of params.
func (r *Repo) Update(ctx context.Context, id int64, params domain.InseminationUpdateParams) (*domain.Insemination, error) {
	set := map[string]any{}
	if params.Date != nil {
		set["date"] = *params.Date
	}
	if params.SemenType != nil {
		set["semen_type"] = *params.SemenType
	}
	if params.Inseminator != nil {
		set["inseminator"] = *params.Inseminator
	}

	if len(set) > 0 {
		q := postgres.Builder.Update(table).SetMap(set).Where(squirrel.Eq{"id": id})
		n, err := postgres.Exec(ctx, postgres.QuerierFromCtx(ctx, r.db), q)
		if err != nil {
			return nil, postgres.MapError(err, "insemination", id)
		}
		if n == 0 {
			return nil, fmt.Errorf("insemination %d: %w", id, domain.ErrNotFound)
		}
	}

	return r.GetByID(ctx, id)
}

// Delete removes an insemination. Its confirmation, if any, goes with it.
func (r *Repo) Delete(ctx context.Context, id int64) error {
	q := postgres.Builder.Delete(table).Where(squirrel.Eq{"id": id})

	n, err := postgres.Exec(ctx, postgres.QuerierFromCtx(ctx, r.db), q)
	if err != nil {
		return postgres.MapError(err, "insemination", id)
	}
	if n == 0 {
		return fmt.Errorf("insemination %d: %w", id, domain.ErrNotFound)
	}
	return nil
}

// HasNewer reports whether the animal of ins has an insemination ordered
// after it by (date, id).
func (r *Repo) HasNewer(ctx context.Context, ins *domain.Insemination) (bool, error) {
	q := postgres.Builder.Select("1").
		From(table).
		Where(squirrel.Eq{"animal_id": ins.AnimalID}).
		Where("(date, id) > (?, ?)", ins.Date, ins.ID)

	newer, err := postgres.Exists(ctx, postgres.QuerierFromCtx(ctx, r.db), q)
	if err != nil {
		return false, fmt.Errorf("check newer inseminations: %w", err)
	}
	return newer, nil
}

// List returns inseminations newest first.
func (r *Repo) List(ctx context.Context, limit, offset int) ([]*domain.Insemination, error) {
	q := selectJoined().
		OrderBy("i.date DESC", "i.id DESC").
		Limit(uint64(domain.ClampLimit(limit))).
		Offset(uint64(max(offset, 0)))

	return r.selectInseminations(ctx, q, "list inseminations")
}

// ListPending returns up to limit unconfirmed inseminations ordered by
// (date DESC, id DESC), strictly after the cursor when one is given.
func (r *Repo) ListPending(ctx context.Context, after *domain.PendingCursor, limit int) ([]*domain.Insemination, error) {
	q := selectJoined().
		Where("NOT EXISTS (SELECT 1 FROM " + confirmationTable + " g WHERE g.insemination_id = i.id)").
		OrderBy("i.date DESC", "i.id DESC").
		Limit(uint64(limit))

	if after != nil {
		q = q.Where("(i.date, i.id) < (?, ?)", after.Date, after.ID)
	}

	return r.selectInseminations(ctx, q, "list pending inseminations")
}

func (r *Repo) selectInseminations(ctx context.Context, q squirrel.SelectBuilder, op string) ([]*domain.Insemination, error) {
	var rows []inseminationRow
	if err := postgres.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, q); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	out := make([]*domain.Insemination, len(rows))
	for i, row := range rows {
		out[i] = row.toDomain()
	}
	return out, nil
}

// ---------------------------------------------------------------------------
// Gestation confirmations
// ---------------------------------------------------------------------------

// CreateConfirmation inserts a confirmation. A second confirmation for the
// same insemination yields domain.ErrAlreadyExists.
func (r *Repo) CreateConfirmation(ctx context.Context, c *domain.GestationConfirmation) (*domain.GestationConfirmation, error) {
	q := postgres.Builder.Insert(confirmationTable).
		Columns("confirmed_on", "method", "result", "responsible", "notes", "insemination_id").
		Values(c.ConfirmedOn, c.Method, string(c.Result), c.Responsible, c.Notes, c.InseminationID).
		Suffix("RETURNING " + postgres.ColumnList(confirmationColumns) + ", '' AS animal_tag")

	var row confirmationRow
	if err := postgres.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, q); err != nil {
		return nil, postgres.MapError(err, "confirmation of insemination", c.InseminationID)
	}

	out := row.toDomain()
	out.AnimalTag = c.AnimalTag
	return out, nil
}

// ListConfirmations returns confirmations newest first.
func (r *Repo) ListConfirmations(ctx context.Context, limit, offset int) ([]*domain.GestationConfirmation, error) {
	q := postgres.Builder.
		Select(postgres.Qualify("g", confirmationColumns)...).
		Column("a.tag AS animal_tag").
		From(confirmationTable + " g").
		Join(table + " i ON i.id = g.insemination_id").
		Join("animals a ON a.id = i.animal_id").
		OrderBy("g.confirmed_on DESC", "g.id DESC").
		Limit(uint64(domain.ClampLimit(limit))).
		Offset(uint64(max(offset, 0)))

	var rows []confirmationRow
	if err := postgres.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, q); err != nil {
		return nil, fmt.Errorf("list confirmations: %w", err)
	}

	out := make([]*domain.GestationConfirmation, len(rows))
	for i, row := range rows {
		out[i] = row.toDomain()
	}
	return out, nil
}
