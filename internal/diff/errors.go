package diff

import "errors"

// ErrEmptyInput is returned when one or both inputs are empty; the
// caller is expected to load both sides before comparing.
var ErrEmptyInput = errors.New("cannot compare empty input")

// ErrInvariant indicates the engine produced an inconsistent
// intermediate result. It always means a bug in the engine, never bad
// input, and the computation that raised it returns no rows at all.
var ErrInvariant = errors.New("internal invariant violated")
