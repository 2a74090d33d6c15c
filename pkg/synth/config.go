/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: config.go
Description: Configuration for the synthesizer: candidate length budgets, the length
generator variant, validation parallelism and the injected logger.
*/

package synth

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
)

// ErrInvalidConfig is returned by Config.Validate for unusable settings
var ErrInvalidConfig = errors.New("invalid synthesizer config")

const (
	DefaultMaxPatternLength = 100
	DefaultMaxLiteralLength = 50
)

// Config holds synthesizer settings
type Config struct {
	MaxPatternLength int            `json:"max_pattern_length"` // candidates longer than this are skipped
	MaxLiteralLength int            `json:"max_literal_length"` // longest single valid string the literal fallback accepts
	LengthRange      bool           `json:"length_range"`       // enable the ^.{min,max}$ length variant
	Workers          int            `json:"workers"`            // >1 validates candidates concurrently
	Logger           *logrus.Logger `json:"-"`
}

// DefaultConfig returns the settings used by the package-level Synthesize
func DefaultConfig() *Config {
	return &Config{
		MaxPatternLength: DefaultMaxPatternLength,
		MaxLiteralLength: DefaultMaxLiteralLength,
		LengthRange:      false,
		Workers:          1,
	}
}

// Validate checks the Config for invalid values
func (c *Config) Validate() error {
	if c.MaxPatternLength <= 0 {
		return fmt.Errorf("%w: max_pattern_length must be positive", ErrInvalidConfig)
	}
	if c.MaxLiteralLength <= 0 {
		return fmt.Errorf("%w: max_literal_length must be positive", ErrInvalidConfig)
	}
	if c.MaxLiteralLength > c.MaxPatternLength {
		return fmt.Errorf("%w: max_literal_length (%d) exceeds max_pattern_length (%d)",
			ErrInvalidConfig, c.MaxLiteralLength, c.MaxPatternLength)
	}
	if c.Workers < 0 {
		return fmt.Errorf("%w: workers must not be negative", ErrInvalidConfig)
	}
	return nil
}
