package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

type ProjectConfig struct {
	Project  string         `yaml:"project"`
	Version  int            `yaml:"version"`
	Paths    PathsConfig    `yaml:"paths"`
	Database DatabaseConfig `yaml:"database"`
}

// PathsConfig locates the three working trees: extracted param tables,
// the schema store, and generated databases.
type PathsConfig struct {
	Gamedata string `yaml:"gamedata"`
	Schemas  string `yaml:"schemas"`
	Output   string `yaml:"output"`
}

// DatabaseConfig is only consulted by publish; generation never touches
// a database.
type DatabaseConfig struct {
	Driver string `yaml:"driver"`
	DSN    string `yaml:"dsn"`
}

func (d DatabaseConfig) Configured() bool {
	return d.Driver != "" || d.DSN != ""
}

func LoadProjectConfig(path string) (*ProjectConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("loading project config: %w", err)
	}

	var cfg ProjectConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("loading project config: %w", err)
	}

	if err := validateProjectConfig(&cfg); err != nil {
		return nil, fmt.Errorf("loading project config: %w", err)
	}

	return &cfg, nil
}

func validateProjectConfig(cfg *ProjectConfig) error {
	if strings.TrimSpace(cfg.Project) == "" {
		return fmt.Errorf("project name is required")
	}
	if cfg.Version != 1 {
		return fmt.Errorf("unsupported version: %d", cfg.Version)
	}
	if strings.TrimSpace(cfg.Paths.Gamedata) == "" {
		return fmt.Errorf("gamedata path is required")
	}
	if strings.TrimSpace(cfg.Paths.Schemas) == "" {
		return fmt.Errorf("schemas path is required")
	}
	if strings.TrimSpace(cfg.Paths.Output) == "" {
		return fmt.Errorf("output path is required")
	}

	if cfg.Database.Configured() {
		switch cfg.Database.Driver {
		case "sqlite", "postgres":
		default:
			return fmt.Errorf("unsupported database driver: %q", cfg.Database.Driver)
		}
		if strings.TrimSpace(cfg.Database.DSN) == "" {
			return fmt.Errorf("database dsn is required when a driver is set")
		}
	}

	return nil
}
