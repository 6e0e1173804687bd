package hashtree

import (
	"errors"
	"fmt"

	"github.com/gordian-engine/hashtree/htdigest"
)

// ErrEmptyInput is returned when building a tree from zero items.
var ErrEmptyInput = errors.New("no items to build tree from")

// ErrInvalidDirection is returned from [Verify]
// when a proof step has neither [Left] nor [Right] direction.
var ErrInvalidDirection = errors.New("invalid proof step direction")

// BalanceError is returned from [Combine]
// when the two children differ in height or hash function,
// or when their hash function differs from the requested one.
//
// The tree builder never produces this error for valid input;
// it only occurs if Combine is misused directly.
type BalanceError struct {
	LeftHeight, RightHeight int

	LeftFunction, RightFunction, Function htdigest.Function
}

func (e *BalanceError) Error() string {
	if e.LeftHeight != e.RightHeight {
		return fmt.Sprintf(
			"cannot combine nodes of unequal height (left=%d, right=%d)",
			e.LeftHeight, e.RightHeight,
		)
	}

	return fmt.Sprintf(
		"cannot combine nodes with incompatible hash functions (left=%s, right=%s, want=%s)",
		e.LeftFunction, e.RightFunction, e.Function,
	)
}

// ProofTargetNotFoundError is returned when generating a proof
// for a value that does not occur among the padded leaves.
type ProofTargetNotFoundError struct {
	Target []byte

	// The tree level where no pair matched.
	// Zero is the raw leaf level.
	Level int
}

func (e *ProofTargetNotFoundError) Error() string {
	return fmt.Sprintf("proof target %x not found at level %d", e.Target, e.Level)
}

// LeafIndexError is returned from [*Tree.ProveIndex]
// when the index is outside the padded leaf range.
type LeafIndexError struct {
	Index, Len int
}

func (e *LeafIndexError) Error() string {
	return fmt.Sprintf("leaf index %d out of range [0, %d)", e.Index, e.Len)
}
