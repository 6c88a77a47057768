package release

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidReleaseFormat is returned when the newest tag does not carry
	// the "v" prefix followed by a version.
	ErrInvalidReleaseFormat = errors.New("invalid release format")

	// ErrNetwork is returned when the tag listing cannot be fetched, decoded,
	// or is empty.
	ErrNetwork = errors.New("release listing unavailable")
)

// FormatError reports the offending tag for ErrInvalidReleaseFormat.
type FormatError struct {
	Tag ReleaseTag
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("%s: tag %q does not match v<version>", ErrInvalidReleaseFormat, string(e.Tag))
}

func (e *FormatError) Unwrap() error { return ErrInvalidReleaseFormat }

// NetworkError wraps the underlying cause of ErrNetwork.
type NetworkError struct {
	Op  string
	Err error
}

func (e *NetworkError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s: %s", ErrNetwork, e.Op)
	}
	return fmt.Sprintf("%s: %s: %v", ErrNetwork, e.Op, e.Err)
}

// Is makes errors.Is(err, ErrNetwork) hold while Unwrap still exposes the cause.
func (e *NetworkError) Is(target error) bool { return target == ErrNetwork }

func (e *NetworkError) Unwrap() error { return e.Err }
