package e2e

import (
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	// E2E_LUNCH_BIN points at a built lunch binary; scenarios are skipped without it
	LunchBin string `envconfig:"E2E_LUNCH_BIN"`
	// E2E_COLOURS enables colorized output for better log readability
	Colours bool `envconfig:"E2E_COLOURS" default:"true"`
	// E2E_SEED pins the allocator seed so rolls are reproducible
	Seed int64 `envconfig:"E2E_SEED" default:"7"`
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	return cfg, err
}
