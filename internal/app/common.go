package app

import (
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/blackwell-systems/wpg/internal/generator"
	"github.com/blackwell-systems/wpg/internal/output"
	"github.com/blackwell-systems/wpg/internal/store"
	"github.com/blackwell-systems/wpg/internal/words"
)

// openStore opens the database and makes sure the schema exists.
func openStore() (*store.Store, error) {
	path, err := getDBPath()
	if err != nil {
		return nil, fmt.Errorf("failed to get database path: %w", err)
	}

	st, err := store.New(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := st.CreateSchema(); err != nil {
		st.Close()
		return nil, fmt.Errorf("failed to create database schema: %w", err)
	}

	return st, nil
}

// importFilter returns the configured import filter with any of the
// --min, --max and --strict flags of cmd applied on top.
func importFilter(cmd *cobra.Command) words.Filter {
	f := words.Filter{
		MinLetters: cfg.Import.MinLetters,
		MaxLetters: cfg.Import.MaxLetters,
		Strict:     cfg.Import.Strict,
	}
	overrideInt(cmd, "min", &f.MinLetters)
	overrideInt(cmd, "max", &f.MaxLetters)
	overrideBool(cmd, "strict", &f.Strict)
	return f
}

// generatorOptions returns the configured generator options with any of
// the --min, --max, --count, --min-words, --max-words and --out flags of
// cmd applied on top.
func generatorOptions(cmd *cobra.Command) generator.Options {
	g := cfg.Generator
	opts := generator.Options{
		MinWordLetters:   g.MinWordLetters,
		MinLetters:       g.MinLetters,
		MaxLetters:       g.MaxLetters,
		MinWords:         g.MinWords,
		MaxWords:         g.MaxWords,
		PuzzlesPerLength: g.PuzzlesPerLength,
		OutputDir:        g.OutputDir,
	}
	overrideInt(cmd, "min", &opts.MinLetters)
	overrideInt(cmd, "max", &opts.MaxLetters)
	overrideInt(cmd, "count", &opts.PuzzlesPerLength)
	overrideInt(cmd, "min-words", &opts.MinWords)
	overrideInt(cmd, "max-words", &opts.MaxWords)
	overrideString(cmd, "out", &opts.OutputDir)
	return opts
}

// loadGenerator opens a generator over st and builds its index, showing a
// spinner on a terminal.
func loadGenerator(cmd *cobra.Command, st *store.Store) (*generator.Generator, error) {
	gen := generator.New(st, generatorOptions(cmd), logger)

	spin := newSpinner("Building index")
	err := gen.Load(commandContext(cmd))
	spin.Stop()
	if err != nil {
		return nil, err
	}

	return gen, nil
}

func overrideInt(cmd *cobra.Command, name string, dst *int) {
	if f := cmd.Flags().Lookup(name); f != nil && f.Changed {
		if v, err := cmd.Flags().GetInt(name); err == nil {
			*dst = v
		}
	}
}

func overrideBool(cmd *cobra.Command, name string, dst *bool) {
	if f := cmd.Flags().Lookup(name); f != nil && f.Changed {
		if v, err := cmd.Flags().GetBool(name); err == nil {
			*dst = v
		}
	}
}

func overrideString(cmd *cobra.Command, name string, dst *string) {
	if f := cmd.Flags().Lookup(name); f != nil && f.Changed {
		if v, err := cmd.Flags().GetString(name); err == nil {
			*dst = v
		}
	}
}

// newSpinner starts a spinner on stderr when stderr is a terminal. The
// returned spinner is always safe to Stop.
func newSpinner(message string) *output.Spinner {
	s := output.NewSpinner(message)
	if isatty.IsTerminal(os.Stderr.Fd()) {
		s.Start()
	}
	return s
}
