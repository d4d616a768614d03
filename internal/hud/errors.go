package hud

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidDefinition reports a directive that is not a name followed by arguments.
	ErrInvalidDefinition = errors.New("invalid hud definition")
	// ErrUnknownComponent reports a directive naming no known component.
	ErrUnknownComponent = errors.New("invalid hud component")
	// ErrInvalidArgs reports a directive without x, y and alignment.
	ErrInvalidArgs = errors.New("invalid hud component args")
	// ErrInvalidAlignment reports an alignment outside the fixed vocabulary.
	ErrInvalidAlignment = errors.New("invalid hud component alignment")
)

// ConfigError is a fatal configuration error tied to one line of input.
type ConfigError struct {
	Line int // 1-based
	Text string
	Err  error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("line %d: %v %q", e.Line, e.Err, e.Text)
}

func (e *ConfigError) Unwrap() error { return e.Err }
