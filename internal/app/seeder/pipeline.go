package seeder

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"time"

	"github.com/heartmarshall/agrotiquiza-backend/internal/domain"
)

// allPhases defines the canonical execution order.
var allPhases = []string{"farms", "animals"}

var demoFarms = []domain.Farm{
	{Name: "La Esperanza", Code: "ESP", Location: "Tiquiza, Chía", Owner: "Familia Rodríguez"},
	{Name: "El Roble", Code: "ROB", Location: "Vereda Fagua", Owner: "Familia Rodríguez"},
	{Name: "La Ceiba", Code: "CEI", Location: "Vereda Yerbabuena", Owner: "Familia Rodríguez"},
}

var (
	maleNames   = []string{"Toro", "Zeus", "Thor", "Rocky", "Max", "Bruno"}
	femaleNames = []string{
		"Bella", "Luna", "Estrella", "Paloma", "Rosa", "Margarita", "Dalia",
		"Camila", "Sofia", "Valentina", "Lucero", "Princesa", "Reina", "Dulce",
	}
	breeds = []string{"Holstein", "Jersey", "Brahman"}
)

const (
	femaleShare = 0.6
	minAgeDays  = 180
	maxAgeDays  = 2920
	firstTagNum = 1001
)

// PhaseResult holds the outcome of a single pipeline phase.
type PhaseResult struct {
	Inserted int
	Skipped  int
	Errors   int
	Duration time.Duration
	Err      error
}

// Pipeline orchestrates the seeding phases.
type Pipeline struct {
	log     *slog.Logger
	farms   FarmRepo
	animals AnimalRepo
	cfg     Config
	now     func() time.Time
	results map[string]PhaseResult

	farmIDs []int64
}

// NewPipeline creates a new Pipeline.
func NewPipeline(log *slog.Logger, farms FarmRepo, animals AnimalRepo, cfg Config) *Pipeline {
	return &Pipeline{
		log:     log,
		farms:   farms,
		animals: animals,
		cfg:     cfg,
		now:     time.Now,
		results: make(map[string]PhaseResult),
	}
}

// Results returns phase results after Run completes.
func (p *Pipeline) Results() map[string]PhaseResult {
	return p.results
}

// HasErrors returns true if any phase recorded errors.
func (p *Pipeline) HasErrors() bool {
	for _, r := range p.results {
		if r.Err != nil || r.Errors > 0 {
			return true
		}
	}
	return false
}

// Run executes the pipeline. If phases is non-empty, only the listed phases
// run. The animals phase always resolves farms first, since every animal
// belongs to one.
func (p *Pipeline) Run(ctx context.Context, phases []string) error {
	// Step 1: Determine which phases to run.
	toRun := allPhases
	if len(phases) > 0 {
		filter := make(map[string]bool, len(phases))
		for _, ph := range phases {
			filter[ph] = true
		}
		toRun = nil
		for _, ph := range allPhases {
			if filter[ph] {
				toRun = append(toRun, ph)
			}
		}
		if len(toRun) == 0 {
			return fmt.Errorf("no known phase in %v", phases)
		}
	}

	// Step 2: Execute phases in order.
	for _, phase := range toRun {
		start := time.Now()
		p.log.Info("starting phase", slog.String("phase", phase))

		var result PhaseResult
		switch phase {
		case "farms":
			result = p.runFarms(ctx)
		case "animals":
			result = p.runAnimals(ctx)
		}
		result.Duration = time.Since(start)
		p.results[phase] = result

		if result.Err != nil {
			p.log.Warn("phase failed",
				slog.String("phase", phase),
				slog.String("error", result.Err.Error()),
				slog.Duration("duration", result.Duration),
			)
			return result.Err
		}
		p.log.Info("phase completed",
			slog.String("phase", phase),
			slog.Int("inserted", result.Inserted),
			slog.Int("skipped", result.Skipped),
			slog.Int("errors", result.Errors),
			slog.Duration("duration", result.Duration),
		)
	}

	p.log.Info("pipeline completed", slog.Int("phases_run", len(toRun)))
	return nil
}

// runFarms creates the demo farms that do not exist yet, matched by code.
func (p *Pipeline) runFarms(ctx context.Context) PhaseResult {
	existing, err := p.farms.List(ctx)
	if err != nil {
		return PhaseResult{Err: fmt.Errorf("list farms: %w", err)}
	}
	byCode := make(map[string]int64, len(existing))
	for _, f := range existing {
		byCode[f.Code] = f.ID
	}

	var result PhaseResult
	p.farmIDs = p.farmIDs[:0]
	for _, demo := range demoFarms {
		if id, ok := byCode[demo.Code]; ok {
			p.farmIDs = append(p.farmIDs, id)
			result.Skipped++
			continue
		}
		if p.cfg.DryRun {
			result.Inserted++
			continue
		}

		f := demo
		created, err := p.farms.Create(ctx, &f)
		if err != nil {
			return PhaseResult{Err: fmt.Errorf("create farm %s: %w", demo.Code, err)}
		}
		p.farmIDs = append(p.farmIDs, created.ID)
		result.Inserted++
	}
	return result
}

// runAnimals creates AnimalCount animals with tags A1001, A1002, ... An
// existing tag is left untouched. The random source is seeded from config
// so reruns generate the same herd.
func (p *Pipeline) runAnimals(ctx context.Context) PhaseResult {
	if len(p.farmIDs) == 0 {
		if r := p.runFarms(ctx); r.Err != nil {
			return r
		}
	}
	if len(p.farmIDs) == 0 {
		if p.cfg.DryRun {
			return PhaseResult{Skipped: p.cfg.AnimalCount}
		}
		return PhaseResult{Err: errors.New("no farms available")}
	}

	rng := rand.New(rand.NewPCG(p.cfg.RandomSeed, p.cfg.RandomSeed))
	today := p.now().UTC().Truncate(24 * time.Hour)

	var (
		result  PhaseResult
		females []*domain.Animal
	)
	for i := range p.cfg.AnimalCount {
		a := p.generateAnimal(rng, i, today, females)

		existing, err := p.animals.GetByTag(ctx, a.Tag)
		switch {
		case err == nil:
			result.Skipped++
			if existing.IsFemale() {
				females = append(females, existing)
			}
			continue
		case !errors.Is(err, domain.ErrNotFound):
			return PhaseResult{Err: fmt.Errorf("get animal %s: %w", a.Tag, err)}
		}

		if p.cfg.DryRun {
			result.Inserted++
			continue
		}

		created, err := p.animals.Create(ctx, a)
		if err != nil {
			p.log.Warn("create animal failed", slog.String("tag", a.Tag), slog.String("error", err.Error()))
			result.Errors++
			continue
		}
		result.Inserted++
		if created.IsFemale() {
			females = append(females, created)
		}
	}
	return result
}

func (p *Pipeline) generateAnimal(rng *rand.Rand, i int, today time.Time, females []*domain.Animal) *domain.Animal {
	sex := domain.SexMale
	names := maleNames
	if rng.Float64() < femaleShare {
		sex = domain.SexFemale
		names = femaleNames
	}

	born := today.AddDate(0, 0, -(minAgeDays + rng.IntN(maxAgeDays-minAgeDays+1)))
	a := &domain.Animal{
		Tag:               fmt.Sprintf("A%d", firstTagNum+i),
		Name:              fmt.Sprintf("%s %d", names[rng.IntN(len(names))], i+1),
		BirthDate:         &born,
		Breed:             breeds[rng.IntN(len(breeds))],
		Sex:               sex,
		State:             domain.AnimalStateActive,
		ReproductiveState: domain.ReproductiveOpen,
		FarmID:            p.farmIDs[rng.IntN(len(p.farmIDs))],
	}

	if len(females) > 0 && rng.Float64() < p.cfg.MotherRatio {
		var older []*domain.Animal
		for _, f := range females {
			if f.BirthDate != nil && f.BirthDate.Before(born) {
				older = append(older, f)
			}
		}
		if len(older) > 0 {
			mother := older[rng.IntN(len(older))]
			a.MotherID = &mother.ID
		}
	}
	return a
}
