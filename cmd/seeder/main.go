// Command seeder fills a database with a demo herd: three farms and a
// deterministic set of animals with tags A1001 and up. Existing farms
// (matched by code) and animals (matched by tag) are left untouched, so the
// command is safe to rerun.
//
// Flags:
//
//	--phase          comma-separated list of phases to run: farms, animals (default: all)
//	--count          number of animals to generate (overrides config)
//	--dry-run        report what would be inserted without writing to DB
//	--seeder-config  path to seeder YAML config file
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/heartmarshall/agrotiquiza-backend/internal/adapter/postgres"
	animalrepo "github.com/heartmarshall/agrotiquiza-backend/internal/adapter/postgres/animal"
	farmrepo "github.com/heartmarshall/agrotiquiza-backend/internal/adapter/postgres/farm"
	"github.com/heartmarshall/agrotiquiza-backend/internal/app"
	"github.com/heartmarshall/agrotiquiza-backend/internal/app/seeder"
	"github.com/heartmarshall/agrotiquiza-backend/internal/config"
)

func main() {
	phaseFlag := flag.String("phase", "", "comma-separated phases to run (default: all)")
	countFlag := flag.Int("count", -1, "number of animals to generate")
	dryRunFlag := flag.Bool("dry-run", false, "report without writing to DB")
	seederConfigFlag := flag.String("seeder-config", "", "path to seeder YAML config file")
	flag.Parse()

	// Load app config (for DB connection).
	appCfg, err := config.Load()
	if err != nil {
		log.Fatalf("load app config: %v", err)
	}

	logger := app.NewLogger(appCfg.Log)

	seederCfg, err := seeder.LoadConfig(*seederConfigFlag)
	if err != nil {
		logger.Error("load seeder config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// CLI flags override config.
	if *dryRunFlag {
		seederCfg.DryRun = true
	}
	if *countFlag >= 0 {
		seederCfg.AnimalCount = *countFlag
	}

	var phases []string
	if *phaseFlag != "" {
		phases = strings.Split(*phaseFlag, ",")
		for i := range phases {
			phases[i] = strings.TrimSpace(phases[i])
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, appCfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	pipeline := seeder.NewPipeline(logger, farmrepo.New(pool), animalrepo.New(pool), *seederCfg)
	if err := pipeline.Run(ctx, phases); err != nil {
		logger.Error("pipeline failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if pipeline.HasErrors() {
		logger.Warn("pipeline completed with errors")
		os.Exit(1)
	}

	logger.Info("pipeline completed successfully")
}
