package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/apex/log"
)

var errInvalidConfig = errors.New("invalid configuration")

type config struct {
	addr          string
	store         string
	dbname        string
	idle          time.Duration
	percentile    float64
	logLevel      log.Level
	selfplay      bool
	selfplayMoves int
	difficulty    int
}

func parseConfig(args []string, output io.Writer) (config, error) {
	var cfg config
	var level string
	flags := flag.NewFlagSet("slowchess", flag.ContinueOnError)
	flags.SetOutput(output)
	flags.StringVar(&cfg.addr, "addr", ":8080", "HTTP listen address")
	flags.StringVar(&cfg.store, "store", "postgres", "game store: postgres or memory")
	flags.DurationVar(&cfg.idle, "idle", 30*time.Second, "how long an agent may wait before it is poked")
	flags.Float64Var(&cfg.percentile, "agent.percentile", 100, "agent picks among moves scoring at or above this percentile")
	flags.StringVar(&level, "log.level", "info", "log level")
	flags.BoolVar(&cfg.selfplay, "selfplay", false, "play agent against agent on the console and exit")
	flags.IntVar(&cfg.selfplayMoves, "selfplay.moves", 200, "ply limit in self-play mode")
	flags.IntVar(&cfg.difficulty, "selfplay.difficulty", defaultDifficulty, "agent difficulty in self-play mode")
	if err := flags.Parse(args); err != nil {
		return config{}, err
	}

	dbname, ok := os.LookupEnv("PGDATABASE")
	if !ok {
		dbname = "test"
	}
	cfg.dbname = dbname

	parsed, err := log.ParseLevel(level)
	if err != nil {
		return config{}, fmt.Errorf("%w: log.level: %v", errInvalidConfig, err)
	}
	cfg.logLevel = parsed

	if cfg.store != "postgres" && cfg.store != "memory" {
		return config{}, fmt.Errorf("%w: unknown store %q", errInvalidConfig, cfg.store)
	}
	if cfg.percentile <= 0 || cfg.percentile > 100 {
		return config{}, fmt.Errorf("%w: agent.percentile must be in (0, 100]: %v", errInvalidConfig, cfg.percentile)
	}
	if cfg.idle <= 0 {
		return config{}, fmt.Errorf("%w: idle must be positive: %v", errInvalidConfig, cfg.idle)
	}
	if cfg.difficulty < minDifficulty || cfg.difficulty > maxDifficulty {
		return config{}, fmt.Errorf("%w: selfplay.difficulty must be in [%d, %d]: %d", errInvalidConfig, minDifficulty, maxDifficulty, cfg.difficulty)
	}
	return cfg, nil
}
