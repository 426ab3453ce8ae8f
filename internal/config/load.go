package config

import (
	"errors"
	"fmt"
	"os"
)

// Historical environment overrides kept from the Python assistant. They are
// folded into the config once at load time; detection itself never reads the
// process environment.
const (
	EnvWakeAliases = "YUI_WAKE_WORD_ALIASES"
	EnvWakeFuzzy   = "YUI_WAKE_WORD_FUZZY"
)

// Loaded captures resolved config path, parsed values, and non-fatal warnings.
type Loaded struct {
	Path     string
	Config   Config
	Warnings []Warning
	Exists   bool
}

// Load resolves, reads, parses, and validates the runtime configuration,
// then applies environment overrides.
func Load(explicitPath string) (Loaded, error) {
	resolvedPath, err := ResolvePath(explicitPath)
	if err != nil {
		return Loaded{}, err
	}

	base := Default()
	content, err := os.ReadFile(resolvedPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			cfg := base
			applyEnvOverrides(&cfg)
			return Loaded{
				Path:   resolvedPath,
				Config: cfg,
				Warnings: []Warning{{
					Message: fmt.Sprintf("config file %q not found; using defaults", resolvedPath),
				}},
				Exists: false,
			}, nil
		}
		return Loaded{}, fmt.Errorf("read config %q: %w", resolvedPath, err)
	}

	cfg, warnings, err := Parse(string(content), base)
	if err != nil {
		return Loaded{}, fmt.Errorf("parse config %q: %w", resolvedPath, err)
	}
	applyEnvOverrides(&cfg)

	return Loaded{
		Path:     resolvedPath,
		Config:   cfg,
		Warnings: warnings,
		Exists:   true,
	}, nil
}

// applyEnvOverrides layers the historical wake-word environment variables
// over the parsed configuration.
func applyEnvOverrides(cfg *Config) {
	if aliases := os.Getenv(EnvWakeAliases); aliases != "" {
		cfg.Wake.Aliases = append(cfg.Wake.Aliases, SplitList(aliases)...)
	}
	if fuzzy, ok := os.LookupEnv(EnvWakeFuzzy); ok {
		cfg.Wake.Fuzzy = !FuzzyDisabled(fuzzy)
	}
}
