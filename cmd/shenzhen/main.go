package main

import (
	"flag"
	"fmt"
	"math/rand/v2"
	"os"

	"github.com/shenzhen-solitaire/shenzhen-go/internal/config"
	"github.com/shenzhen-solitaire/shenzhen-go/internal/game"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	configPath = flag.String("config", "config/config.yaml", "path to configuration file")
	seed       = flag.Uint64("seed", 0, "deal seed, overrides game.seed when non-zero")
	version    = "dev" // set via ldflags during build
)

func main() {
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	logger, err := newLogger(cfg.Logging)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	dealSeed := cfg.Game.Seed
	if *seed != 0 {
		dealSeed = *seed
	}
	if dealSeed == 0 {
		dealSeed = rand.Uint64()
	}

	logger.Info("starting shenzhen",
		zap.String("version", version),
		zap.String("config", *configPath),
		zap.Uint64("seed", dealSeed),
	)

	r := &runner{
		session:      game.NewSession(logger, game.WithSeed(dealSeed)),
		out:          os.Stdout,
		autoComplete: cfg.Game.AutoComplete,
		render:       cfg.Game.Render,
		logger:       logger,
	}
	if err := r.run(os.Stdin); err != nil {
		logger.Error("script failed", zap.Error(err))
		os.Exit(1)
	}
}

// newLogger builds a zap logger from the logging config. Unknown levels fall
// back to info. Logs always go to stderr so stdout carries only the board.
func newLogger(cfg config.LoggingConfig) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		level = zapcore.InfoLevel
	}

	zapCfg := zap.NewDevelopmentConfig()
	zapCfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	if cfg.Format == "json" {
		zapCfg = zap.NewProductionConfig()
	}
	zapCfg.Level = zap.NewAtomicLevelAt(level)
	zapCfg.OutputPaths = []string{"stderr"}
	zapCfg.ErrorOutputPaths = []string{"stderr"}

	return zapCfg.Build()
}
