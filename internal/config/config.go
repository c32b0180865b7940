// Package config loads solidlab configuration: defaults in code, an
// optional YAML file, and SOLIDLAB_ environment variable overrides.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// KernelConfig selects and tunes the mesh kernel backend.
type KernelConfig struct {
	// Backend is "exact" or "sdfx".
	Backend string `json:"backend" mapstructure:"backend"`
	// MeshCells is the marching cubes resolution (sdfx backend only).
	MeshCells int `json:"meshCells" mapstructure:"meshCells"`
}

// SolidConfig sets what the app shows before any user input.
type SolidConfig struct {
	DefaultKind string  `json:"defaultKind" mapstructure:"defaultKind"`
	DefaultEdge float64 `json:"defaultEdge" mapstructure:"defaultEdge"`
	ShowDual    bool    `json:"showDual" mapstructure:"showDual"`
}

// Config is the full solidlab configuration.
type Config struct {
	LogLevel string       `json:"logLevel" mapstructure:"logLevel"`
	Kernel   KernelConfig `json:"kernel" mapstructure:"kernel"`
	Solid    SolidConfig  `json:"solid" mapstructure:"solid"`
}

// Load reads configuration from an optional solidlab.yaml in configDir,
// applying defaults and SOLIDLAB_ environment overrides. A missing config
// file is not an error; a malformed one is.
func Load(configDir string) (*Config, error) {
	v := viper.New()

	v.SetDefault("logLevel", "info")
	v.SetDefault("kernel.backend", "exact")
	v.SetDefault("kernel.meshCells", 200)
	v.SetDefault("solid.defaultKind", "cube")
	v.SetDefault("solid.defaultEdge", 1.0)
	v.SetDefault("solid.showDual", false)

	v.SetConfigName("solidlab")
	v.SetConfigType("yaml")
	if configDir != "" {
		v.AddConfigPath(configDir)
	}
	v.AddConfigPath(".")

	v.SetEnvPrefix("SOLIDLAB")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	switch cfg.Kernel.Backend {
	case "exact", "sdfx":
	default:
		return nil, fmt.Errorf("unknown kernel backend %q", cfg.Kernel.Backend)
	}
	if cfg.Kernel.MeshCells <= 0 {
		return nil, fmt.Errorf("kernel.meshCells must be positive, got %d", cfg.Kernel.MeshCells)
	}
	if cfg.Solid.DefaultEdge <= 0 {
		return nil, fmt.Errorf("solid.defaultEdge must be positive, got %v", cfg.Solid.DefaultEdge)
	}

	return &cfg, nil
}
