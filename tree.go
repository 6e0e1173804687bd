package hashtree

import (
	"bytes"
	"encoding/hex"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/bits-and-blooms/bitset"
	"github.com/gordian-engine/hashtree/htdigest"
)

// Tree is a binary Merkle tree over an ordered list of items.
//
// Create a Tree with [New].
// A Tree is not safe for concurrent use;
// mutations through [*Tree.Append] or [*Tree.SetHashFunction]
// must complete before any other method is called.
type Tree struct {
	log *slog.Logger

	p htdigest.Provider
	f htdigest.Function

	// Raw items as given, before padding.
	leaves [][]byte

	// Everything below is derived from leaves and f,
	// and is replaced wholesale on every rebuild.
	padded  [][]byte
	padding *bitset.BitSet

	root *Node
}

// Config is the configuration passed to [New].
type Config struct {
	// The items to build the tree from, in order.
	// Must not be empty.
	// The tree retains the individual item slices,
	// so the caller must not modify them afterwards.
	Items [][]byte

	// Name of the hash function, matched case-insensitively.
	// See [htdigest.Functions].
	HashFunction string

	// How to compute digests.
	// Defaults to [htdigest.Standard] if nil.
	Provider htdigest.Provider
}

// New builds a Tree from the given configuration.
//
// If cfg.Items is empty, New returns [ErrEmptyInput].
// If the hash function is not supported,
// New returns an error matching [*htdigest.UnsupportedFunctionError].
func New(log *slog.Logger, cfg Config) (*Tree, error) {
	if len(cfg.Items) == 0 {
		return nil, ErrEmptyInput
	}

	f, err := htdigest.Parse(cfg.HashFunction)
	if err != nil {
		return nil, fmt.Errorf("cannot build tree: %w", err)
	}

	p := cfg.Provider
	if p == nil {
		p = htdigest.Standard{}
	}

	t := &Tree{
		log: log,

		p: p,
		f: f,

		leaves: append([][]byte(nil), cfg.Items...),
	}

	if err := t.rebuild(t.leaves, f); err != nil {
		return nil, err
	}

	return t, nil
}

// Append adds items to the end of the tree's item list
// and rebuilds the entire tree.
//
// If the rebuild fails, the tree is left unchanged.
func (t *Tree) Append(items ...[]byte) error {
	leaves := make([][]byte, 0, len(t.leaves)+len(items))
	leaves = append(leaves, t.leaves...)
	leaves = append(leaves, items...)

	return t.rebuild(leaves, t.f)
}

// SetHashFunction switches the tree to a different hash function
// and rebuilds the entire tree from the existing items.
//
// If name is not a supported hash function, the tree is left unchanged
// and the returned error matches [*htdigest.UnsupportedFunctionError].
func (t *Tree) SetHashFunction(name string) error {
	f, err := htdigest.Parse(name)
	if err != nil {
		return fmt.Errorf("cannot change hash function: %w", err)
	}

	return t.rebuild(t.leaves, f)
}

// rebuild computes all derived state from scratch
// and only assigns it to t after every hash succeeded.
func (t *Tree) rebuild(leaves [][]byte, f htdigest.Function) error {
	padded, padding := Pad(leaves)

	// Leaf level.
	layer := make([]*Node, len(padded)/2)
	for i := range layer {
		lp, err := NewLeafPair(t.p, f, padded[2*i], padded[2*i+1])
		if err != nil {
			return err
		}
		layer[i] = NodeFromPair(lp)
	}

	// Every layer has a power of two width,
	// so halving always pairs equal-height nodes.
	for len(layer) > 1 {
		next := layer[:len(layer)/2]
		for i := range next {
			n, err := Combine(t.p, f, layer[2*i], layer[2*i+1])
			if err != nil {
				var be *BalanceError
				if errors.As(err, &be) {
					panic(fmt.Errorf("BUG: %w", err))
				}
				return err
			}

			// Writing into the front half of the same backing array is safe:
			// index i is only written after indices 2i and 2i+1 have been read.
			next[i] = n
		}
		layer = next
	}

	t.leaves = leaves
	t.f = f
	t.padded = padded
	t.padding = padding
	t.root = layer[0]

	t.log.Debug(
		"Rebuilt tree",
		"n_leaves", len(leaves),
		"n_padded", len(padded),
		"height", t.root.Height,
		"hash_function", f,
	)

	return nil
}

// HashFunction returns the hash function used for every node in the tree.
func (t *Tree) HashFunction() htdigest.Function {
	return t.f
}

// Leaves returns the raw items, without padding.
// The caller must not modify the returned slice.
func (t *Tree) Leaves() [][]byte {
	return t.leaves
}

// PaddedLeaves returns the items after padding.
// The caller must not modify the returned slice.
func (t *Tree) PaddedLeaves() [][]byte {
	return t.padded
}

// IsPadding reports whether the padded leaf at index i
// is a duplicate appended during padding.
func (t *Tree) IsPadding(i int) bool {
	return i >= 0 && t.padding.Test(uint(i))
}

// Root returns the root node.
func (t *Tree) Root() *Node {
	return t.root
}

// Height returns the height of the root node.
// A tree of two padded leaves has height 1.
func (t *Tree) Height() int {
	return t.root.Height
}

// BlockHeader returns the root digest.
// The caller must not modify the returned slice.
func (t *Tree) BlockHeader() []byte {
	return t.root.Data
}

// Prove generates a proof for the first occurrence of target
// among the tree's padded leaves.
// See [GenerateProof] for how occurrences are ordered.
func (t *Tree) Prove(target []byte) (Proof, error) {
	return generateProof(t.p, t.f, t.padded, target)
}

// ProveIndex generates a proof for the padded leaf at index i.
// Unlike [*Tree.Prove], the result is unambiguous
// even when the same value occurs more than once.
func (t *Tree) ProveIndex(i int) (Proof, error) {
	if i < 0 || i >= len(t.padded) {
		return nil, &LeafIndexError{Index: i, Len: len(t.padded)}
	}

	// Walk from the root toward the leaf.
	// The proof is filled from its end, since it is stored leaf first.
	proof := make(Proof, t.root.Height)
	n := t.root
	for level := t.root.Height - 1; level >= 1; level-- {
		// Bit (level) of i selects the child below n.
		if i&(1<<level) == 0 {
			proof[level] = ProofStep{Direction: Right, Sibling: n.Right.Data}
			n = n.Left
		} else {
			proof[level] = ProofStep{Direction: Left, Sibling: n.Left.Data}
			n = n.Right
		}
	}

	if i&1 == 0 {
		proof[0] = ProofStep{Direction: Right, Sibling: n.Pair.Right}
	} else {
		proof[0] = ProofStep{Direction: Left, Sibling: n.Pair.Left}
	}

	return proof, nil
}

// Verify reports whether proof, starting from leaf,
// reproduces the tree's block header.
func (t *Tree) Verify(leaf []byte, proof Proof) (bool, error) {
	root, err := Verify(t.p, t.f, leaf, proof)
	if err != nil {
		return false, err
	}
	return bytes.Equal(root, t.root.Data), nil
}

// String returns a human-readable dump of the tree,
// one line per level from the root down to the leaf pairs.
func (t *Tree) String() string {
	var b strings.Builder

	layer := []*Node{t.root}
	for len(layer) > 0 {
		fmt.Fprintf(&b, "Height: %d, Count: %d\n", layer[0].Height, len(layer))

		var next []*Node
		for i, n := range layer {
			if i > 0 {
				b.WriteByte('\t')
			}
			b.WriteString(hex.EncodeToString(n.Data))

			if !n.IsLeafPair() {
				next = append(next, n.Left, n.Right)
			}
		}
		b.WriteByte('\n')

		layer = next
	}

	return b.String()
}
