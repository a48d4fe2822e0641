// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package session

import (
	"errors"

	"github.com/spf13/cobra"
)

// Persistent flag names read by PreRunLoad.
const (
	FlagConfig  = "config"
	FlagTables  = "tables"
	FlagVerbose = "verbose"
)

// FromCommand extracts the session Context from a cobra.Command's context.
// Returns nil if no Context is stored.
func FromCommand(cmd *cobra.Command) *Context {
	return From(cmd.Context())
}

// RequireFromCommand extracts the session Context from a cobra.Command's
// context, returning an error if not found.
func RequireFromCommand(cmd *cobra.Command) (*Context, error) {
	ctx := FromCommand(cmd)
	if ctx == nil {
		return nil, errors.New("session not loaded")
	}
	return ctx, nil
}

// PreRunLoad is a PersistentPreRunE function that loads the session from the
// --config, --tables and --verbose flags and stores it in the command's
// context.
func PreRunLoad(cmd *cobra.Command, _ []string) error {
	ctx, err := Load(cmd.Context(), OptionsFromCommand(cmd))
	if err != nil {
		return err
	}
	cmd.SetContext(ctx)
	return nil
}

// OptionsFromCommand builds Options from the --config, --tables and
// --verbose flags of cmd. Diagnostics go to the command's stderr.
func OptionsFromCommand(cmd *cobra.Command) Options {
	opts := Options{Log: cmd.ErrOrStderr()}
	flags := cmd.Flags()
	if f := flags.Lookup(FlagConfig); f != nil {
		opts.ConfigPath = f.Value.String()
	}
	if f := flags.Lookup(FlagTables); f != nil {
		opts.TablesPath = f.Value.String()
	}
	if f := flags.Lookup(FlagVerbose); f != nil {
		opts.Verbose = f.Value.String() == "true"
	}
	return opts
}
