package htdigest

import "errors"

// UnsupportedFunctionError is returned when a hash function name
// is not one of the supported [Functions].
type UnsupportedFunctionError struct {
	Name string
}

func (e *UnsupportedFunctionError) Error() string {
	return "unsupported hash function " + e.Name
}

// ErrFoldTooShort is returned from [Fold] when given fewer than two digests.
var ErrFoldTooShort = errors.New("fold requires at least two digests")
