package seeder

import (
	"fmt"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config holds seeder settings.
type Config struct {
	AnimalCount int    `yaml:"animal_count" env:"SEEDER_ANIMAL_COUNT" env-default:"20"`
	RandomSeed  uint64 `yaml:"random_seed"  env:"SEEDER_RANDOM_SEED"  env-default:"1"`
	// MotherRatio is the share of animals linked to an earlier-born female.
	MotherRatio float64 `yaml:"mother_ratio" env:"SEEDER_MOTHER_RATIO" env-default:"0.3"`
	DryRun      bool    `yaml:"dry_run"      env:"SEEDER_DRY_RUN"`
}

// LoadConfig reads seeder configuration from a YAML file and environment variables.
// Priority: ENV > YAML > defaults (via env-default tags).
func LoadConfig(path string) (*Config, error) {
	var cfg Config

	if path != "" {
		if _, err := os.Stat(path); err != nil {
			return nil, fmt.Errorf("seeder config: file %s not found", path)
		}
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("seeder config: read %s: %w", path, err)
		}
	} else if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("seeder config: read env: %w", err)
	}

	if cfg.AnimalCount < 0 {
		return nil, fmt.Errorf("seeder config: animal_count must not be negative")
	}
	if cfg.MotherRatio < 0 || cfg.MotherRatio > 1 {
		return nil, fmt.Errorf("seeder config: mother_ratio must be within [0, 1]")
	}
	return &cfg, nil
}
