// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package session resolves the configuration and mapping tables a command
// runs with.
package session

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/dacolabs/gcschema/internal/config"
	"github.com/dacolabs/gcschema/internal/tables"
)

var (
	// ErrConfigNotFound indicates an explicitly requested config file is missing.
	ErrConfigNotFound = errors.New("config file not found")

	// ErrInvalidConfig indicates the config file exists but is invalid.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrInvalidTables indicates the mapping tables couldn't be loaded or are invalid.
	ErrInvalidTables = errors.New("invalid mapping tables")
)

// contextKey is used to store Context in context.Context.
type contextKey struct{}

// Options selects where a session is loaded from.
type Options struct {
	// ConfigPath is an explicit config file. When empty, gcschema.yaml in
	// Dir is used if it exists, and defaults otherwise.
	ConfigPath string

	// TablesPath overrides the tables file named by the config.
	TablesPath string

	// Dir is the directory relative paths are resolved against when no
	// config file is used. Defaults to the working directory.
	Dir string

	// Log receives diagnostics. Defaults to io.Discard.
	Log io.Writer

	// Verbose enables debug diagnostics.
	Verbose bool
}

// Context holds the resolved configuration and mapping tables.
type Context struct {
	// Config is the resolved configuration with absolute or cwd-relative paths.
	Config *config.Config

	// ConfigFile is the config file used, empty when running on defaults.
	ConfigFile string

	// Tables are the mapping tables in effect.
	Tables *tables.Tables

	// Logger writes diagnostics to stderr.
	Logger *slog.Logger
}

// Load resolves the session and returns a new context.Context with the
// session Context stored in it.
func Load(ctx context.Context, opts Options) (context.Context, error) {
	sc, err := resolve(opts)
	if err != nil {
		return nil, err
	}
	return context.WithValue(ctx, contextKey{}, sc), nil
}

func resolve(opts Options) (*Context, error) {
	cfg, cfgPath, err := ResolveConfig(opts)
	if err != nil {
		return nil, err
	}

	logger := newLogger(opts.Log, opts.Verbose)
	if cfgPath != "" {
		logger.Debug("loaded config", "path", cfgPath)
	}

	tbl, err := LoadTables(cfg.Tables)
	if err != nil {
		return nil, err
	}
	if err := tbl.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidTables, err)
	}
	if cfg.Tables == "" {
		logger.Debug("using built-in mapping tables")
	} else {
		logger.Debug("loaded mapping tables", "path", cfg.Tables)
	}

	return &Context{
		Config:     cfg,
		ConfigFile: cfgPath,
		Tables:     tbl,
		Logger:     logger,
	}, nil
}

// ResolveConfig loads the configuration selected by opts, applies defaults
// and resolves relative paths. It also returns the config file used, empty
// when running on defaults.
func ResolveConfig(opts Options) (*config.Config, string, error) {
	dir := opts.Dir
	if dir == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, "", fmt.Errorf("failed to get current directory: %w", err)
		}
		dir = cwd
	}

	cfgPath := opts.ConfigPath
	if cfgPath == "" {
		candidate := filepath.Join(dir, config.FileName)
		if _, err := os.Stat(candidate); err == nil {
			cfgPath = candidate
		}
	} else if !filepath.IsAbs(cfgPath) {
		cfgPath = filepath.Join(dir, cfgPath)
	}

	cfg := config.Default()
	baseDir := dir
	if cfgPath != "" {
		if _, err := os.Stat(cfgPath); os.IsNotExist(err) {
			return nil, "", fmt.Errorf("%w: %s", ErrConfigNotFound, cfgPath)
		}
		loaded, err := config.Load(cfgPath)
		if err != nil {
			return nil, "", fmt.Errorf("%w: %v", ErrInvalidConfig, err)
		}
		loaded.ApplyDefaults()
		cfg = loaded
		baseDir = filepath.Dir(cfgPath)
	}

	if err := cfg.Validate(); err != nil {
		return nil, "", fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	cfg.Resolve(baseDir)

	if opts.TablesPath != "" {
		cfg.Tables = opts.TablesPath
		if !filepath.IsAbs(cfg.Tables) {
			cfg.Tables = filepath.Join(dir, cfg.Tables)
		}
	}

	return cfg, cfgPath, nil
}

// LoadTables reads the tables file at path, or the built-in tables when path
// is empty. The tables are not validated.
func LoadTables(path string) (*tables.Tables, error) {
	tbl, err := loadTables(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidTables, err)
	}
	return tbl, nil
}

func loadTables(path string) (*tables.Tables, error) {
	if path == "" {
		return tables.Default()
	}
	return tables.Load(path)
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	if w == nil {
		w = io.Discard
	}
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// From extracts the session Context from a context.Context.
// Returns nil if no Context is stored.
func From(ctx context.Context) *Context {
	if sc, ok := ctx.Value(contextKey{}).(*Context); ok {
		return sc
	}
	return nil
}
