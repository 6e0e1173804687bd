package hashtree

import (
	"fmt"

	"github.com/gordian-engine/hashtree/htdigest"
)

// Verify replays proof starting from leaf and returns the resulting root.
// The caller compares the result against a known block header;
// [*Tree.Verify] does that comparison directly.
//
// Verify holds no reference to any tree.
// Using a different hash function than the tree was built with
// produces a root that does not match.
func Verify(p htdigest.Provider, f htdigest.Function, leaf []byte, proof Proof) ([]byte, error) {
	cur := leaf
	for k, s := range proof {
		var err error
		dst := make([]byte, 0, f.Size())

		switch s.Direction {
		case Right:
			cur, err = p.AppendDigest(dst, f, cur, s.Sibling)
		case Left:
			cur, err = p.AppendDigest(dst, f, s.Sibling, cur)
		default:
			return nil, fmt.Errorf("proof step %d has direction %s: %w", k, s.Direction, ErrInvalidDirection)
		}

		if err != nil {
			return nil, fmt.Errorf("failed to hash proof step %d: %w", k, err)
		}
	}

	return cur, nil
}
