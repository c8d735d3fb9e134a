package report

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/agrotiquiza-backend/internal/domain"
)

// maxParallelQueries bounds how many pool connections one dashboard holds.
const maxParallelQueries = 4

// Dashboard collects all inventory aggregates. Queries run concurrently; the
// first failure cancels the rest.
func (s *Service) Dashboard(ctx context.Context) (*domain.Dashboard, error) {
	start := time.Now()
	d := &domain.Dashboard{}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxParallelQueries)

	run := func(name string, fn func(ctx context.Context) error) {
		g.Go(func() error {
			if err := fn(gctx); err != nil {
				return fmt.Errorf("%s: %w", name, err)
			}
			return nil
		})
	}

	run("exits by type", func(ctx context.Context) (err error) {
		d.ExitsByType, err = s.stats.ExitsByType(ctx)
		return err
	})
	run("count transfers", func(ctx context.Context) (err error) {
		d.TransferCount, err = s.stats.CountTransfers(ctx)
		return err
	})
	run("count pregnant", func(ctx context.Context) (err error) {
		d.PregnantCount, err = s.stats.CountPregnant(ctx)
		return err
	})
	run("count active females", func(ctx context.Context) (err error) {
		d.ActiveFemales, err = s.stats.CountActiveFemales(ctx)
		return err
	})
	run("animals per farm", func(ctx context.Context) (err error) {
		d.AnimalsPerFarm, err = s.stats.AnimalsPerFarm(ctx)
		return err
	})
	run("count farms", func(ctx context.Context) (err error) {
		d.FarmCount, err = s.stats.CountFarms(ctx)
		return err
	})
	run("count births", func(ctx context.Context) (err error) {
		d.BirthCount, err = s.stats.CountBirths(ctx)
		return err
	})
	run("avg production per farm", func(ctx context.Context) (err error) {
		d.AvgProductionPerFarm, err = s.stats.AvgProductionPerFarm(ctx)
		return err
	})
	run("total production", func(ctx context.Context) (err error) {
		d.TotalProductionKg, err = s.stats.TotalProductionKg(ctx)
		return err
	})
	run("count sanitary events", func(ctx context.Context) (err error) {
		d.SanitaryEventCount, err = s.stats.CountSanitaryEvents(ctx)
		return err
	})
	run("sanitary events per farm", func(ctx context.Context) (err error) {
		d.SanitaryEventsPerFarm, err = s.stats.SanitaryEventsPerFarm(ctx)
		return err
	})
	run("count inseminations", func(ctx context.Context) (err error) {
		d.InseminationCount, err = s.stats.CountInseminations(ctx)
		return err
	})
	run("count pending inseminations", func(ctx context.Context) (err error) {
		d.PendingInseminationCount, err = s.stats.CountPendingInseminations(ctx)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("dashboard: %w", err)
	}

	s.log.DebugContext(ctx, "dashboard built", slog.Duration("took", time.Since(start)))

	return d, nil
}
