package internal

type Config struct {
	// BadgerFilepath falls back to the sdk default database path when empty
	BadgerFilepath string `env:"BADGER_FILEPATH"`
	LogLevel       string `env:"LOG_LEVEL,default=INFO"`
	RollSchedule   string `env:"ROLL_SCHEDULE,default=0 11 * * MON"`
	AutoCommit     bool   `env:"AUTO_COMMIT,default=false"`
	// Seed makes rolls reproducible; empty means seeded from the clock
	Seed    string `env:"SEED"`
	Colours bool   `env:"COLOURS,default=true"`
}
