package hashtree_test

import (
	"errors"
	"testing"

	"github.com/gordian-engine/hashtree"
	"github.com/gordian-engine/hashtree/htdigest"
	"github.com/stretchr/testify/require"
)

func TestNewLeafPair(t *testing.T) {
	t.Parallel()

	lp, err := hashtree.NewLeafPair(htdigest.Standard{}, htdigest.SHA256, []byte("a"), []byte("b"))
	require.NoError(t, err)

	want, err := htdigest.Sum(htdigest.SHA256, []byte("ab"))
	require.NoError(t, err)

	require.Equal(t, want, lp.Data)
	require.Equal(t, 1, lp.Height())
	require.Equal(t, []byte("a"), lp.Left)
	require.Equal(t, []byte("b"), lp.Right)
	require.Equal(t, htdigest.SHA256, lp.Function)
}

func TestNewLeafPair_unsupportedFunction(t *testing.T) {
	t.Parallel()

	_, err := hashtree.NewLeafPair(htdigest.Standard{}, htdigest.Function("md5"), []byte("a"), []byte("b"))

	var ufe *htdigest.UnsupportedFunctionError
	require.ErrorAs(t, err, &ufe)
}

func TestCombine(t *testing.T) {
	t.Parallel()

	p := htdigest.Standard{}

	mkPair := func(f htdigest.Function, l, r string) *hashtree.Node {
		lp, err := hashtree.NewLeafPair(p, f, []byte(l), []byte(r))
		require.NoError(t, err)
		return hashtree.NodeFromPair(lp)
	}

	t.Run("equal heights", func(t *testing.T) {
		t.Parallel()

		left := mkPair(htdigest.SHA1, "a", "b")
		right := mkPair(htdigest.SHA1, "c", "d")

		n, err := hashtree.Combine(p, htdigest.SHA1, left, right)
		require.NoError(t, err)

		want, err := htdigest.Sum(htdigest.SHA1, left.Data, right.Data)
		require.NoError(t, err)

		require.Equal(t, want, n.Data)
		require.Equal(t, 2, n.Height)
		require.Same(t, left, n.Left)
		require.Same(t, right, n.Right)
		require.False(t, n.IsLeafPair())
		require.True(t, left.IsLeafPair())
	})

	t.Run("unequal heights", func(t *testing.T) {
		t.Parallel()

		a := mkPair(htdigest.SHA256, "a", "b")
		b := mkPair(htdigest.SHA256, "c", "d")
		ab, err := hashtree.Combine(p, htdigest.SHA256, a, b)
		require.NoError(t, err)

		c := mkPair(htdigest.SHA256, "e", "f")
		_, err = hashtree.Combine(p, htdigest.SHA256, ab, c)

		var be *hashtree.BalanceError
		require.True(t, errors.As(err, &be))
		require.Equal(t, 2, be.LeftHeight)
		require.Equal(t, 1, be.RightHeight)
		require.Contains(t, be.Error(), "unequal height")
	})

	t.Run("mixed hash functions", func(t *testing.T) {
		t.Parallel()

		left := mkPair(htdigest.SHA256, "a", "b")
		right := mkPair(htdigest.SHA512, "c", "d")

		_, err := hashtree.Combine(p, htdigest.SHA256, left, right)

		var be *hashtree.BalanceError
		require.ErrorAs(t, err, &be)
		require.Equal(t, htdigest.SHA512, be.RightFunction)
		require.Contains(t, be.Error(), "incompatible hash functions")
	})

	t.Run("children differ from requested function", func(t *testing.T) {
		t.Parallel()

		left := mkPair(htdigest.SHA224, "a", "b")
		right := mkPair(htdigest.SHA224, "c", "d")

		_, err := hashtree.Combine(p, htdigest.SHA384, left, right)

		var be *hashtree.BalanceError
		require.ErrorAs(t, err, &be)
		require.Equal(t, htdigest.SHA384, be.Function)
	})
}
