// Package config is the concrete Go type backing the "configuration
// struct" spec.md §6 gestures at. Its shape (a flat struct with
// FillDefaults and Validate methods, loadable from a TOML file) follows
// the teacher's server.Config exactly.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

const (
	// MinSolverTimeoutMS and MaxSolverTimeoutMS bound the configurable
	// per-query SMT timeout (§4.4.3).
	MinSolverTimeoutMS = 100
	MaxSolverTimeoutMS = 5 * 60 * 1000

	defaultSolverTimeoutMS = 10_000
	defaultBoxNamePrefix   = "__"
)

// Config controls the verifier and emitter stages of a compilation
// (SPEC_FULL.md §6 NEW).
type Config struct {
	// SolverTimeoutMS is the per-query SMT timeout setting (§4.4.3). It is
	// checked by Validate and is part of the cache key; it is not passed to
	// the Oracle, and the compiler itself times out no query.
	SolverTimeoutMS int `toml:"solver_timeout_ms"`

	// ProveLinked is the joined-block verification setting (§4.4.4). It is
	// part of the cache key only: verify.Run does not read it, and
	// joined-block verification runs whatever its value.
	ProveLinked bool `toml:"prove_linked"`

	// EmitVerboseDiagnostics is the verbose-rendering setting. It is part of
	// the cache key only; diagnostic rendering does not read it.
	EmitVerboseDiagnostics bool `toml:"verbose_diagnostics"`

	// BoxNamePrefix is prepended to a state's canonical name when naming
	// its storage box (glossary "Box prefix").
	BoxNamePrefix string `toml:"box_name_prefix"`

	// SigningKey, if non-empty, is used to sign the emitted manifest with
	// a JWT (§4.5). Emission without a key produces no manifest at all.
	SigningKey []byte `toml:"-"`

	// Workers bounds the verifier's concurrent solver sessions (§5 NEW).
	// 0 or 1 runs verification sequentially.
	Workers int `toml:"workers"`

	// CacheDir is the directory a content-addressed compilation cache
	// (§4.6 NEW) stores its entries under. Empty disables the cache.
	CacheDir string `toml:"cache_dir"`
}

// Load reads a folidity.toml file at path and fills in defaults for
// whatever it leaves unset.
func Load(path string) (Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: decode %s: %w", path, err)
	}
	return cfg.FillDefaults(), nil
}

// LoadOrDefault behaves like Load, but returns FillDefaults() of a zero
// Config when path does not exist, rather than an error — a missing
// folidity.toml is not a misconfiguration, just an absent one.
func LoadOrDefault(path string) (Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return Config{}.FillDefaults(), nil
	}
	return Load(path)
}

// FillDefaults returns a new Config identical to cfg but with unset values
// set to their defaults.
func (cfg Config) FillDefaults() Config {
	out := cfg
	if out.SolverTimeoutMS == 0 {
		out.SolverTimeoutMS = defaultSolverTimeoutMS
	}
	if out.BoxNamePrefix == "" {
		out.BoxNamePrefix = defaultBoxNamePrefix
	}
	if out.Workers == 0 {
		out.Workers = 1
	}
	return out
}

// Validate returns an error if cfg has invalid field values set. Call it on
// the return value of FillDefaults, the same way server.Config.Validate
// documents it should be used.
func (cfg Config) Validate() error {
	if cfg.SolverTimeoutMS < MinSolverTimeoutMS || cfg.SolverTimeoutMS > MaxSolverTimeoutMS {
		return fmt.Errorf("solver timeout: must be between %d and %d ms, got %d",
			MinSolverTimeoutMS, MaxSolverTimeoutMS, cfg.SolverTimeoutMS)
	}
	if cfg.BoxNamePrefix == "" {
		return fmt.Errorf("box name prefix: must not be empty")
	}
	if cfg.Workers < 1 {
		return fmt.Errorf("workers: must be at least 1, got %d", cfg.Workers)
	}
	return nil
}
