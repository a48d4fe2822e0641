// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package config handles gcschema project configuration.
package config

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/dacolabs/gcschema/internal/legacy"
	"github.com/dacolabs/gcschema/internal/proposed"
	"gopkg.in/yaml.v3"
)

// CurrentConfigVersion is the current version of the config file format.
const CurrentConfigVersion = 1

// FileName is the name of the project configuration file.
const FileName = "gcschema.yaml"

// DefaultLegacyDir is the directory holding the 2012 schema files.
const DefaultLegacyDir = "data_gc_ca_2012"

// Config represents the gcschema.yaml project configuration file.
type Config struct {
	Version int `yaml:"version"`
	// LegacyDir holds the legacy schema and its choice list files.
	LegacyDir string `yaml:"legacy_dir,omitempty"`
	// LegacySchema is the legacy schema file name inside LegacyDir.
	LegacySchema string `yaml:"legacy_schema,omitempty"`
	// Proposed is the proposed schema table (.xls, .xlsx or .csv).
	Proposed string `yaml:"proposed,omitempty"`
	// Sheet is the workbook sheet holding the proposed fields.
	Sheet string `yaml:"sheet,omitempty"`
	// Tables replaces the built-in mapping tables when set.
	Tables string `yaml:"tables,omitempty"`
}

// Default returns the configuration used when no config file exists.
func Default() *Config {
	cfg := &Config{Version: CurrentConfigVersion}
	cfg.ApplyDefaults()
	return cfg
}

// Load reads a Config from a file path.
func Load(path string) (*Config, error) {
	f, err := os.Open(path) //nolint:gosec // path is provided by caller
	if err != nil {
		return nil, err
	}
	defer f.Close() //nolint:errcheck

	var cfg Config
	if err := yaml.NewDecoder(f).Decode(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Save writes the Config to a file path.
func (c *Config) Save(path string) error {
	f, err := os.Create(path) //nolint:gosec // path is provided by caller
	if err != nil {
		return err
	}
	defer f.Close() //nolint:errcheck

	enc := yaml.NewEncoder(f)
	enc.SetIndent(2)
	return enc.Encode(c)
}

// ApplyDefaults fills every unset input with its default.
func (c *Config) ApplyDefaults() {
	if c.LegacyDir == "" {
		c.LegacyDir = DefaultLegacyDir
	}
	if c.LegacySchema == "" {
		c.LegacySchema = legacy.DefaultSchemaFile
	}
	if c.Proposed == "" {
		c.Proposed = proposed.DefaultFile
	}
	if c.Sheet == "" {
		c.Sheet = proposed.DefaultSheet
	}
}

// Resolve makes relative paths relative to baseDir.
func (c *Config) Resolve(baseDir string) {
	c.LegacyDir = resolvePath(baseDir, c.LegacyDir)
	c.Proposed = resolvePath(baseDir, c.Proposed)
	c.Tables = resolvePath(baseDir, c.Tables)
}

func resolvePath(baseDir, p string) string {
	if p == "" || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(baseDir, p)
}

// Validate checks the configuration for required fields and valid values.
func (c *Config) Validate() error {
	if c.Version != CurrentConfigVersion {
		return errors.New("unsupported config version")
	}
	if c.LegacySchema != "" && filepath.Base(c.LegacySchema) != c.LegacySchema {
		return errors.New("legacy_schema must be a file name inside legacy_dir")
	}
	return nil
}
