package hashtreetest

import (
	"bytes"
	"math/bits"
	"testing"

	"github.com/gordian-engine/hashtree"
	"github.com/gordian-engine/hashtree/htdigest"
	"github.com/gordian-engine/hashtree/htdigest/htdigesttest"
	"github.com/gordian-engine/hashtree/internal/httest"
	"github.com/stretchr/testify/require"
)

// Fixture is a tree built for a test,
// with a counting digest provider and a test logger.
//
// Create an instance with [NewFixture].
type Fixture struct {
	Tree *hashtree.Tree

	Provider *htdigesttest.CountingProvider
}

// FixtureConfig is the configuration for [NewFixture].
type FixtureConfig struct {
	Items [][]byte

	// Defaults to sha256 when empty.
	HashFunction string
}

// NewFixture builds a tree from cfg, failing the test on any error.
func NewFixture(t testing.TB, cfg FixtureConfig) *Fixture {
	t.Helper()

	hf := cfg.HashFunction
	if hf == "" {
		hf = string(htdigest.SHA256)
	}

	cp := &htdigesttest.CountingProvider{P: htdigest.Standard{}}

	tree, err := hashtree.New(httest.NewLogger(t), hashtree.Config{
		Items:        cfg.Items,
		HashFunction: hf,
		Provider:     cp,
	})
	require.NoError(t, err)

	return &Fixture{
		Tree:     tree,
		Provider: cp,
	}
}

// StringItems converts strings to items.
func StringItems(ss ...string) [][]byte {
	out := make([][]byte, len(ss))
	for i, s := range ss {
		out[i] = []byte(s)
	}
	return out
}

// RequireTreeInvariants checks the structural invariants of tree:
// the height and block header agree with the root,
// padding is a power of two of duplicates of the last item,
// and every node is balanced.
func RequireTreeInvariants(t testing.TB, tree *hashtree.Tree) {
	t.Helper()

	root := tree.Root()
	require.Equal(t, root.Height, tree.Height())
	require.Equal(t, root.Data, tree.BlockHeader())

	leaves := tree.Leaves()
	padded := tree.PaddedLeaves()

	require.GreaterOrEqual(t, len(padded), 2)
	require.Equal(t, 1, bits.OnesCount(uint(len(padded))), "padded length %d must be a power of two", len(padded))
	require.Equal(t, bits.Len(uint(len(padded)))-1, tree.Height())

	last := leaves[len(leaves)-1]
	for i, p := range padded {
		if i < len(leaves) {
			require.Equal(t, leaves[i], p)
			require.False(t, tree.IsPadding(i), "raw leaf %d reported as padding", i)
		} else {
			require.Equal(t, last, p)
			require.True(t, tree.IsPadding(i), "padded leaf %d not reported as padding", i)
		}
	}

	RequireNodeInvariants(t, root, tree.HashFunction())
}

// RequireNodeInvariants recursively checks that n and its descendants
// use function f and have children of equal height one below their parent.
func RequireNodeInvariants(t testing.TB, n *hashtree.Node, f htdigest.Function) {
	t.Helper()

	require.Equal(t, f, n.Function)
	require.Len(t, n.Data, f.Size())

	if n.IsLeafPair() {
		require.Equal(t, 1, n.Height)
		require.Nil(t, n.Left)
		require.Nil(t, n.Right)
		require.True(t, bytes.Equal(n.Pair.Data, n.Data))
		return
	}

	require.NotNil(t, n.Left)
	require.NotNil(t, n.Right)
	require.Equal(t, n.Height-1, n.Left.Height)
	require.Equal(t, n.Height-1, n.Right.Height)

	RequireNodeInvariants(t, n.Left, f)
	RequireNodeInvariants(t, n.Right, f)
}
