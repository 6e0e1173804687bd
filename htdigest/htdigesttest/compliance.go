package htdigesttest

import (
	"errors"
	"testing"

	"github.com/gordian-engine/hashtree/htdigest"
	"github.com/stretchr/testify/require"
)

type ProviderFactory func() htdigest.Provider

// TestProviderCompliance runs the behavior every [htdigest.Provider]
// must satisfy for use in a hash tree.
func TestProviderCompliance(t *testing.T, f ProviderFactory) {
	for _, fn := range htdigest.Functions {
		t.Run(string(fn), func(t *testing.T) {
			t.Parallel()

			testFunctionCompliance(t, f, fn)
		})
	}

	t.Run("rejects unknown function", func(t *testing.T) {
		t.Parallel()

		p := f()
		_, err := p.AppendDigest(nil, htdigest.Function("md5"), []byte("data"))

		var ufe *htdigest.UnsupportedFunctionError
		require.True(t, errors.As(err, &ufe))
		require.Equal(t, "md5", ufe.Name)
	})
}

func testFunctionCompliance(t *testing.T, f ProviderFactory, fn htdigest.Function) {
	t.Run("output has function size", func(t *testing.T) {
		t.Parallel()

		d, err := f().AppendDigest(nil, fn, []byte("sized"))
		require.NoError(t, err)
		require.Len(t, d, fn.Size())
	})

	t.Run("deterministic across calls", func(t *testing.T) {
		t.Parallel()

		p := f()

		d1, err := p.AppendDigest(nil, fn, []byte("deterministic_data"))
		require.NoError(t, err)

		// Unrelated digest in between must not affect the next one.
		_, err = p.AppendDigest(nil, fn, []byte("interleaved"))
		require.NoError(t, err)

		d2, err := p.AppendDigest(nil, fn, []byte("deterministic_data"))
		require.NoError(t, err)

		require.Equal(t, d1, d2)
	})

	t.Run("split input equals concatenation", func(t *testing.T) {
		t.Parallel()

		p := f()

		whole, err := p.AppendDigest(nil, fn, []byte("leftright"))
		require.NoError(t, err)

		split, err := p.AppendDigest(nil, fn, []byte("left"), []byte("right"))
		require.NoError(t, err)

		require.Equal(t, whole, split)
	})

	t.Run("order matters", func(t *testing.T) {
		t.Parallel()

		p := f()

		lr, err := p.AppendDigest(nil, fn, []byte("left"), []byte("right"))
		require.NoError(t, err)

		rl, err := p.AppendDigest(nil, fn, []byte("right"), []byte("left"))
		require.NoError(t, err)

		require.NotEqual(t, lr, rl)
	})

	t.Run("appends to dst", func(t *testing.T) {
		t.Parallel()

		p := f()

		plain, err := p.AppendDigest(nil, fn, []byte("payload"))
		require.NoError(t, err)

		prefix := []byte("prefix")
		out, err := p.AppendDigest(append([]byte(nil), prefix...), fn, []byte("payload"))
		require.NoError(t, err)

		require.Equal(t, prefix, out[:len(prefix)])
		require.Equal(t, plain, out[len(prefix):])
	})
}
