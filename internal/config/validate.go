package config

import (
	"errors"
	"fmt"
)

// Validate rejects negative or inverted bounds.
func (c *Config) Validate() error {
	var errs []error

	errs = append(errs, checkRange("import letters", c.Import.MinLetters, c.Import.MaxLetters, true))
	errs = append(errs, checkRange("split letters", c.Split.MinLetters, c.Split.MaxLetters, true))
	if c.Split.UnitsPer <= 0 {
		errs = append(errs, fmt.Errorf("split units_per must be positive, got %d", c.Split.UnitsPer))
	}

	g := c.Generator
	errs = append(errs, checkRange("generator letters", g.MinLetters, g.MaxLetters, false))
	errs = append(errs, checkRange("generator words", g.MinWords, g.MaxWords, true))
	if g.MinWordLetters < 1 {
		errs = append(errs, fmt.Errorf("generator min_word_letters must be at least 1, got %d", g.MinWordLetters))
	}
	if g.PuzzlesPerLength < 0 {
		errs = append(errs, fmt.Errorf("generator puzzles_per_length must not be negative, got %d", g.PuzzlesPerLength))
	}
	if g.OutputDir == "" {
		errs = append(errs, errors.New("generator output_dir must be set"))
	}

	switch c.Log.Format {
	case "text", "json":
	default:
		errs = append(errs, fmt.Errorf("log format must be text or json, got %q", c.Log.Format))
	}

	return errors.Join(errs...)
}

// checkRange validates a [min, max] pair. When zeroMaxUnbounded is set, a
// max of zero means no upper bound.
func checkRange(name string, lo, hi int, zeroMaxUnbounded bool) error {
	if lo < 0 || hi < 0 {
		return fmt.Errorf("%s: bounds must not be negative (min %d, max %d)", name, lo, hi)
	}
	if zeroMaxUnbounded && hi == 0 {
		return nil
	}
	if lo > hi {
		return fmt.Errorf("%s: min %d is greater than max %d", name, lo, hi)
	}
	return nil
}
