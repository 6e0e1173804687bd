// Package hashtree builds binary Merkle trees over ordered lists of opaque items,
// and generates and verifies inclusion proofs for those items.
//
// Items are padded by duplicating the last item
// until the count is a power of two and at least two.
// Adjacent padded items are hashed together into a [LeafPair],
// and pairs of equal-height nodes are combined upward into a single root.
// The root digest is the tree's "block header".
//
// Digests come from an [htdigest.Provider];
// every node in one tree uses the same [htdigest.Function].
//
// A [Tree] is never updated incrementally.
// [*Tree.Append] and [*Tree.SetHashFunction] rebuild the whole tree.
//
// Proofs are generated by value with [*Tree.Prove],
// or by padded leaf index with [*Tree.ProveIndex].
// When the same value occurs at multiple positions
// (including through padding), proving by value uses the first pair,
// in left to right order, that contains the value;
// within a pair, the right element is considered before the left.
// [Verify] is a pure function of the leaf, the proof, and the hash function.
package hashtree
