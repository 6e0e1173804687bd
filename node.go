package hashtree

import (
	"fmt"

	"github.com/gordian-engine/hashtree/htdigest"
)

// LeafPair is the first-level hash of two adjacent padded items.
type LeafPair struct {
	// The raw items, in order.
	Left, Right []byte

	Function htdigest.Function

	// Digest of Left || Right.
	Data []byte
}

// NewLeafPair hashes left and right together using p.
func NewLeafPair(p htdigest.Provider, f htdigest.Function, left, right []byte) (LeafPair, error) {
	data, err := p.AppendDigest(make([]byte, 0, f.Size()), f, left, right)
	if err != nil {
		return LeafPair{}, fmt.Errorf("failed to hash leaf pair: %w", err)
	}

	return LeafPair{
		Left:  left,
		Right: right,

		Function: f,

		Data: data,
	}, nil
}

// Height is always 1 for a leaf pair.
func (LeafPair) Height() int { return 1 }

// Node is a node of the hash tree.
//
// A node at height 1 wraps a [LeafPair] and has no children.
// Every higher node exclusively owns its two children,
// which share the node's hash function and are one level lower.
type Node struct {
	Function htdigest.Function
	Data     []byte
	Height   int

	// Both nil when Pair is set.
	Left, Right *Node

	// Set only for height 1 nodes.
	Pair *LeafPair
}

// NodeFromPair returns the height 1 node for lp.
func NodeFromPair(lp LeafPair) *Node {
	return &Node{
		Function: lp.Function,
		Data:     lp.Data,
		Height:   1,

		Pair: &lp,
	}
}

// IsLeafPair reports whether n is a height 1 node without children.
func (n *Node) IsLeafPair() bool {
	return n.Pair != nil
}

// Combine returns a new parent node of left and right,
// whose data is the digest of left.Data || right.Data.
//
// The parent takes ownership of left and right;
// the caller must not attach them to any other node.
//
// If the children differ in height, or if either child's function differs from f,
// Combine returns a [*BalanceError].
func Combine(p htdigest.Provider, f htdigest.Function, left, right *Node) (*Node, error) {
	if left.Height != right.Height || left.Function != f || right.Function != f {
		return nil, &BalanceError{
			LeftHeight:  left.Height,
			RightHeight: right.Height,

			LeftFunction:  left.Function,
			RightFunction: right.Function,
			Function:      f,
		}
	}

	data, err := p.AppendDigest(make([]byte, 0, f.Size()), f, left.Data, right.Data)
	if err != nil {
		return nil, fmt.Errorf("failed to hash node: %w", err)
	}

	return &Node{
		Function: f,
		Data:     data,
		Height:   left.Height + 1,

		Left:  left,
		Right: right,
	}, nil
}
