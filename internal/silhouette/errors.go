package silhouette

import (
	"errors"
	"fmt"
)

// ErrInput matches every *InputError via errors.Is.
var ErrInput = errors.New("input image could not be loaded")

// InputError reports a silhouette that could not be decoded. It aborts the run.
type InputError struct {
	View View
	Path string
	Err  error
}

func (e *InputError) Error() string {
	return fmt.Sprintf("%s image could not be loaded. Check the file path. (%s: %v)", e.View, e.Path, e.Err)
}

func (e *InputError) Unwrap() error { return e.Err }

// Is reports ErrInput as a match.
func (e *InputError) Is(target error) bool { return target == ErrInput }
