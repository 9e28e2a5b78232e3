package review

import (
	"errors"
	"fmt"
)

// Sentinel errors for the review core. Callers match with errors.Is and
// surface a message; none of these is fatal to the host.
var (
	// ErrInsufficientInput means fewer than two files were supplied.
	ErrInsufficientInput = errors.New("review: at least two files are required")

	// ErrDegenerateInput means the supplied filenames share no structure a
	// pattern could be derived from (identical names, duplicates, or no
	// common prefix).
	ErrDegenerateInput = errors.New("review: filenames share no usable structure")

	// ErrCrossDirectory means the supplied files do not share one parent
	// directory.
	ErrCrossDirectory = errors.New("review: files span multiple directories")

	// ErrInvalidPattern means a user-supplied slot pattern failed to
	// compile or lacks a radix capture group. The slot keeps its previous
	// valid pattern.
	ErrInvalidPattern = errors.New("review: invalid slot pattern")

	// ErrInactive means a navigation request arrived without an active
	// review session.
	ErrInactive = errors.New("review: no active session")
)

// ScanError reports an unreadable directory during discovery. The session's
// previously discovered radixes are retained when a scan fails.
type ScanError struct {
	Dir string
	Err error
}

func (e *ScanError) Error() string {
	return fmt.Sprintf("review: scan %s: %v", e.Dir, e.Err)
}

func (e *ScanError) Unwrap() error { return e.Err }
