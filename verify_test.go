package hashtree_test

import (
	"testing"

	"github.com/gordian-engine/hashtree"
	"github.com/gordian-engine/hashtree/hashtreetest"
	"github.com/gordian-engine/hashtree/htdigest"
	"github.com/gordian-engine/hashtree/internal/httest"
	"github.com/stretchr/testify/require"
)

func TestVerify_tamperedSibling(t *testing.T) {
	t.Parallel()

	items := httest.RandomItemsForTest(t, 9, 8)
	fx := hashtreetest.NewFixture(t, hashtreetest.FixtureConfig{Items: items})

	proof, err := fx.Tree.Prove(items[4])
	require.NoError(t, err)

	for k := range proof {
		tampered := make(hashtree.Proof, len(proof))
		copy(tampered, proof)

		sib := append([]byte(nil), proof[k].Sibling...)
		sib[0] ^= 0x01
		tampered[k].Sibling = sib

		ok, err := fx.Tree.Verify(items[4], tampered)
		require.NoError(t, err)
		require.False(t, ok, "tampered step %d still verified", k)
	}

	// The original proof is unaffected by the copies.
	ok, err := fx.Tree.Verify(items[4], proof)
	require.NoError(t, err)
	require.True(t, ok)
}

func TestVerify_flippedDirection(t *testing.T) {
	t.Parallel()

	fx := hashtreetest.NewFixture(t, hashtreetest.FixtureConfig{
		Items: hashtreetest.StringItems("a", "b", "c", "d"),
	})

	proof, err := fx.Tree.Prove([]byte("c"))
	require.NoError(t, err)

	tampered := make(hashtree.Proof, len(proof))
	copy(tampered, proof)
	tampered[1].Direction = hashtree.Right

	ok, err := fx.Tree.Verify([]byte("c"), tampered)
	require.NoError(t, err)
	require.False(t, ok)
}

func TestVerify_mismatchedHashFunction(t *testing.T) {
	t.Parallel()

	items := hashtreetest.StringItems("a", "b", "c", "d", "e", "f")
	fx := hashtreetest.NewFixture(t, hashtreetest.FixtureConfig{Items: items})

	proof, err := fx.Tree.Prove([]byte("e"))
	require.NoError(t, err)

	for _, f := range htdigest.Functions {
		root, err := hashtree.Verify(htdigest.Standard{}, f, []byte("e"), proof)
		require.NoError(t, err)

		if f == htdigest.SHA256 {
			require.Equal(t, fx.Tree.BlockHeader(), root)
		} else {
			require.NotEqual(t, fx.Tree.BlockHeader(), root, "function %s", f)
		}
	}
}

func TestVerify_emptyProof(t *testing.T) {
	t.Parallel()

	root, err := hashtree.Verify(htdigest.Standard{}, htdigest.SHA256, []byte("leaf"), nil)
	require.NoError(t, err)
	require.Equal(t, []byte("leaf"), root)
}

func TestVerify_invalidDirection(t *testing.T) {
	t.Parallel()

	_, err := hashtree.Verify(htdigest.Standard{}, htdigest.SHA256, []byte("leaf"), hashtree.Proof{
		{Direction: hashtree.Right, Sibling: []byte("s")},
		{Direction: hashtree.Direction(7), Sibling: []byte("s")},
	})
	require.ErrorIs(t, err, hashtree.ErrInvalidDirection)
}

func TestVerify_unsupportedFunction(t *testing.T) {
	t.Parallel()

	_, err := hashtree.Verify(htdigest.Standard{}, htdigest.Function("md5"), []byte("leaf"), hashtree.Proof{
		{Direction: hashtree.Right, Sibling: []byte("s")},
	})

	var ufe *htdigest.UnsupportedFunctionError
	require.ErrorAs(t, err, &ufe)
}

func TestVerify_usesProvider(t *testing.T) {
	t.Parallel()

	fx := hashtreetest.NewFixture(t, hashtreetest.FixtureConfig{
		Items: httest.RandomItemsForTest(t, 16, 8),
	})

	proof, err := fx.Tree.ProveIndex(5)
	require.NoError(t, err)

	fx.Provider.Reset()
	ok, err := fx.Tree.Verify(fx.Tree.PaddedLeaves()[5], proof)
	require.NoError(t, err)
	require.True(t, ok)

	// One digest per level.
	require.Equal(t, fx.Tree.Height(), fx.Provider.Count())
}
