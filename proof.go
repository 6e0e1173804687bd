package hashtree

import (
	"bytes"
	"fmt"

	"github.com/bits-and-blooms/bitset"
	"github.com/gordian-engine/hashtree/htdigest"
)

// Direction indicates which side of the path a proof sibling is on.
type Direction uint8

const (
	// The sibling is the left operand: digest(sibling || current).
	Left Direction = iota + 1

	// The sibling is the right operand: digest(current || sibling).
	Right
)

func (d Direction) String() string {
	switch d {
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return fmt.Sprintf("Direction(%d)", uint8(d))
	}
}

// ProofStep is one level of a [Proof].
type ProofStep struct {
	Direction Direction
	Sibling   []byte
}

// Proof is an inclusion proof, ordered from the leaf's own level
// (index 0, whose sibling is a raw item)
// up to the level just below the root.
type Proof []ProofStep

// PathBits returns a bitset with bit k set
// when the path at level k is the right child,
// i.e. when step k has its sibling on the [Left].
func (p Proof) PathBits() *bitset.BitSet {
	bs := bitset.New(uint(len(p)))
	for k, s := range p {
		if s.Direction == Left {
			bs.Set(uint(k))
		}
	}
	return bs
}

// Index returns the padded leaf index that p proves.
func (p Proof) Index() int {
	idx := 0
	bs := p.PathBits()
	for k, ok := bs.NextSet(0); ok; k, ok = bs.NextSet(k + 1) {
		idx |= 1 << k
	}
	return idx
}

// GenerateProof builds a proof for target over leaves,
// mirroring the pairing used to build a [Tree] from the same leaves.
// The leaves are padded first, as [Pad] does.
//
// At each level, pairs are scanned left to right,
// and the first pair containing the current target is used.
// Within a pair, a match on the right element is preferred.
// If no pair matches, GenerateProof returns a [*ProofTargetNotFoundError].
func GenerateProof(p htdigest.Provider, f htdigest.Function, leaves [][]byte, target []byte) (Proof, error) {
	if len(leaves) == 0 {
		return nil, ErrEmptyInput
	}
	if !f.Valid() {
		return nil, &htdigest.UnsupportedFunctionError{Name: string(f)}
	}

	padded, _ := Pad(leaves)
	return generateProof(p, f, padded, target)
}

// generateProof expects leaves to be padded already.
func generateProof(p htdigest.Provider, f htdigest.Function, leaves [][]byte, target []byte) (Proof, error) {
	var proof Proof

	level := leaves
	for depth := 0; len(level) > 1; depth++ {
		next := make([][]byte, len(level)/2)
		var nextTarget []byte

		for i := range next {
			left, right := level[2*i], level[2*i+1]

			up, err := p.AppendDigest(make([]byte, 0, f.Size()), f, left, right)
			if err != nil {
				return nil, fmt.Errorf("failed to hash proof level %d: %w", depth, err)
			}
			next[i] = up

			if nextTarget != nil {
				// Already matched earlier in this level.
				continue
			}

			if bytes.Equal(right, target) {
				proof = append(proof, ProofStep{Direction: Left, Sibling: left})
				nextTarget = up
			} else if bytes.Equal(left, target) {
				proof = append(proof, ProofStep{Direction: Right, Sibling: right})
				nextTarget = up
			}
		}

		if nextTarget == nil {
			return nil, &ProofTargetNotFoundError{Target: target, Level: depth}
		}

		level = next
		target = nextTarget
	}

	return proof, nil
}
