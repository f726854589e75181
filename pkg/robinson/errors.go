package robinson

import (
	"errors"
	"fmt"
)

// ErrDegenerate is returned when a triangle would have a non-positive or
// non-finite leg length, or a non-finite coordinate or angle.
var ErrDegenerate = errors.New("degenerate triangle")

// DecomposeError reports a substitution that produced an invalid child. The
// computation is deterministic, so the parent itself is the faulty input.
type DecomposeError struct {
	Parent Triangle
	Err    error
}

func (e *DecomposeError) Error() string {
	return fmt.Sprintf("decompose %s: %v", e.Parent, e.Err)
}

func (e *DecomposeError) Unwrap() error {
	return e.Err
}
