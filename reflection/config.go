package reflection

import (
	"errors"
	"fmt"
	"log/slog"

	"wirepath/options"
	"wirepath/sentinel"
	"wirepath/utils"
)

const (
	// DefaultMaxDepth bounds recursion into nested and self-referential schemas.
	DefaultMaxDepth = 42
	// MaxDepthLimit is the largest MaxDepth a Config accepts.
	MaxDepthLimit = 1024
)

var ErrInvalidConfig = errors.New("invalid reflector config")

// Config holds the settings of a Reflector.
type Config struct {
	// MaxDepth is the depth bound of enumeration passes and the last depth
	// tried by Locate. Properties nested deeper are reported as not found.
	MaxDepth int

	// Catalog supplies sentinel pairs. Default: sentinel.Default.
	Catalog *sentinel.Catalog

	// Logger receives the events selected by Trace at debug level.
	// Nil discards them.
	Logger *slog.Logger

	Trace options.TraceEnum
}

// DefaultConfig returns the configuration of the Default reflector.
func DefaultConfig() Config {
	return Config{
		MaxDepth: DefaultMaxDepth,
		Catalog:  sentinel.Default,
		Trace:    options.TraceNone,
	}
}

// Validate checks if the configuration has valid values.
func (c Config) Validate() error {
	if !utils.IsInRange(0, c.MaxDepth, MaxDepthLimit) {
		return fmt.Errorf("%w: max depth must be between 0 and %d (got %d)", ErrInvalidConfig, MaxDepthLimit, c.MaxDepth)
	}

	if c.Catalog == nil {
		return fmt.Errorf("%w: catalog is required", ErrInvalidConfig)
	}

	return nil
}
