// Package config provides Viper-based configuration loading for the puzzle runner.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// LoggingConfig holds structured logging settings.
type LoggingConfig struct {
	// Level is the minimum log level: "debug", "info", "warn", "error".
	Level string `mapstructure:"level"`
	// Format is the log output format: "json" or "console".
	Format string `mapstructure:"format"`
}

// PuzzleConfig holds input discovery and sample verification settings.
type PuzzleConfig struct {
	// InputDir is the directory holding one "day<N>.txt" file per puzzle.
	InputDir string `mapstructure:"input_dir"`
	// SamplesDir is the directory of sample scenario YAML files.
	SamplesDir string `mapstructure:"samples_dir"`
	// VerifySamples runs every sample of the selected day and part before the real input.
	VerifySamples bool `mapstructure:"verify_samples"`
}

// InputPath returns the input file path for day.
//
// Precondition: day >= 1.
func (p PuzzleConfig) InputPath(day int) string {
	return fmt.Sprintf("%s/day%d.txt", strings.TrimRight(p.InputDir, "/"), day)
}

// BattleConfig holds the combat simulation parameters.
type BattleConfig struct {
	// HitPoints is the starting hit points of every unit.
	HitPoints int `mapstructure:"hit_points"`
	// AttackPower is the default attack power of every unit.
	AttackPower int `mapstructure:"attack_power"`
	// MaxTuningPower bounds the attack power search.
	MaxTuningPower int `mapstructure:"max_tuning_power"`
}

// Config is the top-level application configuration.
type Config struct {
	Logging LoggingConfig `mapstructure:"logging"`
	Puzzle  PuzzleConfig  `mapstructure:"puzzle"`
	Battle  BattleConfig  `mapstructure:"battle"`
}

// Validate checks all configuration invariants.
//
// Postcondition: Returns nil if configuration is valid, or an error describing all violations.
func (c Config) Validate() error {
	var errs []string

	if err := validateLogging(c.Logging); err != nil {
		errs = append(errs, err.Error())
	}
	if err := validatePuzzle(c.Puzzle); err != nil {
		errs = append(errs, err.Error())
	}
	if err := validateBattle(c.Battle); err != nil {
		errs = append(errs, err.Error())
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration validation failed: %s", strings.Join(errs, "; "))
	}
	return nil
}

func validateLogging(l LoggingConfig) error {
	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[l.Level] {
		return fmt.Errorf("logging.level must be one of [debug, info, warn, error], got %q", l.Level)
	}
	validFormats := map[string]bool{"json": true, "console": true}
	if !validFormats[l.Format] {
		return fmt.Errorf("logging.format must be one of [json, console], got %q", l.Format)
	}
	return nil
}

func validatePuzzle(p PuzzleConfig) error {
	var errs []string
	if p.InputDir == "" {
		errs = append(errs, "puzzle.input_dir must not be empty")
	}
	if p.VerifySamples && p.SamplesDir == "" {
		errs = append(errs, "puzzle.samples_dir must not be empty when puzzle.verify_samples is set")
	}
	if len(errs) > 0 {
		return fmt.Errorf("%s", strings.Join(errs, "; "))
	}
	return nil
}

func validateBattle(b BattleConfig) error {
	var errs []string
	if b.HitPoints < 1 {
		errs = append(errs, fmt.Sprintf("battle.hit_points must be >= 1, got %d", b.HitPoints))
	}
	if b.AttackPower < 1 {
		errs = append(errs, fmt.Sprintf("battle.attack_power must be >= 1, got %d", b.AttackPower))
	}
	if b.MaxTuningPower <= b.AttackPower {
		errs = append(errs, fmt.Sprintf("battle.max_tuning_power must exceed battle.attack_power (%d), got %d", b.AttackPower, b.MaxTuningPower))
	}
	// At hit_points power a single hit kills.
	if b.MaxTuningPower < b.HitPoints {
		errs = append(errs, fmt.Sprintf("battle.max_tuning_power must be >= battle.hit_points (%d), got %d", b.HitPoints, b.MaxTuningPower))
	}
	if len(errs) > 0 {
		return fmt.Errorf("%s", strings.Join(errs, "; "))
	}
	return nil
}

// Load reads configuration from the given file path, applies environment variable
// overrides, and validates the result. An empty path skips the file and uses
// defaults and environment only.
//
// Postcondition: Returns a valid Config or a non-nil error.
func Load(path string) (Config, error) {
	v := viper.New()

	// Environment variable overrides with ADVENT_ prefix
	v.SetEnvPrefix("ADVENT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("reading config file: %w", err)
		}
	}

	return LoadFromViper(v)
}

// LoadFromViper builds a Config from an already-configured Viper instance.
//
// Precondition: v must be non-nil and have configuration values set.
// Postcondition: Returns a valid Config or a non-nil error.
func LoadFromViper(v *viper.Viper) (Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshalling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Defaults returns the configuration produced by Load with no file and no environment.
func Defaults() Config {
	v := viper.New()
	setDefaults(v)
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		panic(fmt.Sprintf("unmarshalling defaults: %v", err))
	}
	return cfg
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")

	v.SetDefault("puzzle.input_dir", "input")
	v.SetDefault("puzzle.samples_dir", "content/samples")
	v.SetDefault("puzzle.verify_samples", true)

	v.SetDefault("battle.hit_points", 200)
	v.SetDefault("battle.attack_power", 3)
	v.SetDefault("battle.max_tuning_power", 200)
}
