// Package main provides the puzzle runner binary: it solves one part of one
// day and prints the answer on stdout.
package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/cory-johannsen/advent/internal/config"
	"github.com/cory-johannsen/advent/internal/game/battle"
	"github.com/cory-johannsen/advent/internal/game/scenario"
	"github.com/cory-johannsen/advent/internal/observability"
	"github.com/cory-johannsen/advent/internal/puzzle"
)

func main() {
	start := time.Now()

	configPath := flag.String("config", "configs/dev.yaml", "path to configuration file; empty = defaults and environment only")
	inputPath := flag.String("input", "", "puzzle input file; empty = <puzzle.input_dir>/day<N>.txt")
	skipSamples := flag.Bool("skip-samples", false, "do not verify samples before solving")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [flags] <day> <part>\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() != 2 {
		flag.Usage()
		os.Exit(1)
	}
	day, err := strconv.Atoi(flag.Arg(0))
	if err != nil || day < 1 {
		log.Fatalf("invalid day %q: must be a positive integer", flag.Arg(0))
	}
	part, err := puzzle.ParsePart(flag.Arg(1))
	if err != nil {
		log.Fatalf("invalid part: %v", err)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logging)
	if err != nil {
		log.Fatalf("initializing logger: %v", err)
	}
	defer logger.Sync()
	logger = observability.ForRun(logger, day, int(part))

	stats := battle.Stats{HitPoints: cfg.Battle.HitPoints, AttackPower: cfg.Battle.AttackPower}
	registry, err := puzzle.NewRegistry(puzzle.DefaultEntries(stats, cfg.Battle.MaxTuningPower, logger))
	if err != nil {
		logger.Fatal("building puzzle registry", zap.Error(err))
	}
	if _, ok := registry.Resolve(day); !ok {
		logger.Fatal("day not implemented", zap.Ints("implemented", registry.Days()))
	}

	if cfg.Puzzle.VerifySamples && !*skipSamples {
		cat, err := scenario.LoadFromDir(cfg.Puzzle.SamplesDir)
		if err != nil {
			logger.Fatal("loading samples", zap.Error(err))
		}
		n, err := registry.VerifySamples(cat, day, part, logger)
		var mismatch *puzzle.MismatchError
		if errors.As(err, &mismatch) {
			logger.Fatal("sample answer mismatch",
				zap.String("sample", mismatch.Sample),
				zap.String("got", mismatch.Got),
				zap.String("want", mismatch.Want),
			)
		}
		if err != nil {
			logger.Fatal("solving sample", zap.Error(err))
		}
		logger.Info("samples verified", zap.Int("count", n))
	}

	path := *inputPath
	if path == "" {
		path = cfg.Puzzle.InputPath(day)
	}
	input, err := os.ReadFile(path)
	if err != nil {
		logger.Fatal("reading puzzle input", zap.String("path", path), zap.Error(err))
	}

	answer, err := registry.Solve(day, part, string(input))
	if err != nil {
		logger.Fatal("solving puzzle", zap.Error(err))
	}

	logger.Info("solved", zap.Duration("elapsed", time.Since(start)))
	fmt.Fprintln(os.Stdout, answer)
}
