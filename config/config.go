// Package config resolves the effective run configuration from three
// layers: built-in defaults, the ddblocal.yaml file, environment overrides,
// then explicit run options. Resolution is computed once per invocation and
// the result is never mutated afterwards.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"

	"github.com/acksell/ddblocal/ddbclient"
	"github.com/acksell/ddblocal/seed"
	"github.com/acksell/ddblocal/tabledef"
)

// Filename is the configuration file searched for from the working
// directory up to the filesystem root.
const Filename = "ddblocal.yaml"

// Config is the effective, immutable configuration of one invocation.
type Config struct {
	// Stage is the active deployment stage; Stages restricts which stages
	// any operation runs in (empty means all).
	Stage  string
	Stages []string

	Host   string
	Port   int
	Region string
	Online bool

	// Migrate provisions tables as part of start.
	Migrate bool
	// ConvertEmptyValues writes empty document values as NULL.
	ConvertEmptyValues bool

	Seed       seed.Selector
	SeedDir    string
	Categories map[string]seed.Category

	Tables []tabledef.TableDefinition
}

// File is the YAML shape of ddblocal.yaml. Optional scalars are pointers so
// explicit zero values still override defaults.
type File struct {
	Stages             []string                   `yaml:"stages,omitempty"`
	Host               *string                    `yaml:"host,omitempty"`
	Port               *int                       `yaml:"port,omitempty"`
	Region             *string                    `yaml:"region,omitempty"`
	Online             *bool                      `yaml:"online,omitempty"`
	Migrate            *bool                      `yaml:"migrate,omitempty"`
	ConvertEmptyValues *bool                      `yaml:"convertEmptyValues,omitempty"`
	Seed               *seed.Selector             `yaml:"seed,omitempty"`
	SeedDir            *string                    `yaml:"seedDir,omitempty"`
	Categories         map[string]seed.Category   `yaml:"categories,omitempty"`
	Tables             []tabledef.TableDefinition `yaml:"tables,omitempty"`
}

// RunOptions are the explicit options of one command invocation, the
// highest-precedence layer. Zero values leave the lower layers in place.
type RunOptions struct {
	Stage   string
	Host    string
	Port    int
	Region  string
	Online  bool
	Migrate bool
	// Seed is the raw selector spelling ("true", "false" or a category
	// list); empty means not requested on this invocation.
	Seed string
}

// envOverrides sit between the file and the run options.
type envOverrides struct {
	Stage  string `env:"DDBLOCAL_STAGE"`
	Host   string `env:"DDBLOCAL_HOST"`
	Port   int    `env:"DDBLOCAL_PORT"`
	Region string `env:"DDBLOCAL_REGION"`
	Seed   string `env:"DDBLOCAL_SEED"`
}

// LoadFile reads and parses a configuration file.
func LoadFile(path string) (File, error) {
	var f File
	data, err := os.ReadFile(path)
	if err != nil {
		return f, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &f); err != nil {
		return f, fmt.Errorf("parse config %s: %w", path, err)
	}
	return f, nil
}

// FindFile searches for ddblocal.yaml starting in the current directory and
// walking up to the filesystem root. Returns the empty string when none
// exists.
func FindFile() string {
	dir, err := os.Getwd()
	if err != nil {
		return ""
	}
	for {
		path := filepath.Join(dir, Filename)
		if _, err := os.Stat(path); err == nil {
			return path
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return ""
		}
		dir = parent
	}
}

// Resolve layers run options over environment overrides over the file over
// defaults and returns the effective configuration.
func Resolve(file File, run RunOptions) (Config, error) {
	cfg := Config{
		Stage:      "dev",
		Host:       ddbclient.DefaultHost,
		Port:       ddbclient.DefaultPort,
		SeedDir:    "seeds",
		Seed:       seed.SelectNone(),
		Categories: file.Categories,
		Tables:     file.Tables,
		Stages:     file.Stages,
	}

	if file.Host != nil {
		cfg.Host = *file.Host
	}
	if file.Port != nil {
		cfg.Port = *file.Port
	}
	if file.Region != nil {
		cfg.Region = *file.Region
	}
	if file.Online != nil {
		cfg.Online = *file.Online
	}
	if file.Migrate != nil {
		cfg.Migrate = *file.Migrate
	}
	if file.ConvertEmptyValues != nil {
		cfg.ConvertEmptyValues = *file.ConvertEmptyValues
	}
	if file.Seed != nil {
		cfg.Seed = *file.Seed
	}
	if file.SeedDir != nil {
		cfg.SeedDir = *file.SeedDir
	}

	var envs envOverrides
	if err := env.Parse(&envs); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if envs.Stage != "" {
		cfg.Stage = envs.Stage
	}
	if envs.Host != "" {
		cfg.Host = envs.Host
	}
	if envs.Port != 0 {
		cfg.Port = envs.Port
	}
	if envs.Region != "" {
		cfg.Region = envs.Region
	}
	if envs.Seed != "" {
		cfg.Seed = seed.ParseSelector(envs.Seed)
	}

	if run.Stage != "" {
		cfg.Stage = run.Stage
	}
	if run.Host != "" {
		cfg.Host = run.Host
	}
	if run.Port != 0 {
		cfg.Port = run.Port
	}
	if run.Region != "" {
		cfg.Region = run.Region
	}
	if run.Online {
		cfg.Online = true
	}
	if run.Migrate {
		cfg.Migrate = true
	}
	if run.Seed != "" {
		cfg.Seed = seed.ParseSelector(run.Seed)
	}

	return cfg, nil
}

// ClientOptions maps the configuration to connection options.
func (c Config) ClientOptions() ddbclient.Options {
	return ddbclient.Options{
		Online: c.Online,
		Region: c.Region,
		Host:   c.Host,
		Port:   c.Port,
	}
}
