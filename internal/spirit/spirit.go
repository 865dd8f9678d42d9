// Package spirit defines the value object shared by every analysis engine and
// the single error kind raised for rejected inputs.
package spirit

import (
	"errors"
	"time"
)

// ErrInvalidInput is the only error kind the engines raise: non-Arabic text
// in the abjad path, a non-Arabic name in the jafr path, or out-of-range
// coordinates in the tower path. Engines wrap it with a human-readable
// reason; callers match with errors.Is.
var ErrInvalidInput = errors.New("invalid input")

// Breakdown is the method-specific detailed payload of a Result. Each engine
// contributes its own typed implementation (abjad.Breakdown, jafr.Breakdown,
// tower.Chart) rather than a nested untyped map.
type Breakdown interface {
	// Kind returns a short machine-readable tag for the engine that produced
	// the breakdown ("abjad", "jafr", "tower").
	Kind() string
}

// Result is the immutable output of one analysis. It is created once per
// computation and never mutated afterwards; ownership passes to whichever
// collection holds it.
type Result struct {
	Method         string    `json:"method"`
	Input          any       `json:"input_data"`
	Value          int       `json:"numerical_value"`
	Reduced        int       `json:"reduced_value"`
	Interpretation string    `json:"interpretation"`
	Breakdown      Breakdown `json:"detailed_breakdown"`
	Timestamp      time.Time `json:"timestamp"`
}
