package htdigest

// Provider computes digests for the hash tree.
//
// AppendDigest hashes the concatenation of every element of in,
// with no separator, and appends the digest to dst.
// The caller may pass dst[:0] of a buffer with sufficient capacity
// to avoid allocation.
// Provider must not retain references to dst or in.
//
// Each call must start from fresh hash state;
// nothing from one digest may leak into the next.
type Provider interface {
	AppendDigest(dst []byte, f Function, in ...[]byte) ([]byte, error)
}

// Standard is the default [Provider],
// backed by the standard library and sha256-simd.
type Standard struct{}

func (Standard) AppendDigest(dst []byte, f Function, in ...[]byte) ([]byte, error) {
	h, err := f.newHash()
	if err != nil {
		return dst, err
	}

	for _, b := range in {
		_, _ = h.Write(b)
	}
	return h.Sum(dst), nil
}

// Sum returns the digest of the concatenated input using [Standard].
func Sum(f Function, in ...[]byte) ([]byte, error) {
	return Standard{}.AppendDigest(nil, f, in...)
}

// Fold reduces digests to a single digest.
// It repeatedly removes the first two entries a and b,
// and appends digest(a || b) to the end of the working list,
// until only one entry remains.
//
// The input slice is not modified.
// When len(digests) is a power of two, the result is the Merkle root
// over those digests.
func Fold(p Provider, f Function, digests [][]byte) ([]byte, error) {
	if len(digests) < 2 {
		return nil, ErrFoldTooShort
	}

	queue := make([][]byte, len(digests), 2*len(digests))
	copy(queue, digests)

	for len(queue) > 1 {
		d, err := p.AppendDigest(nil, f, queue[0], queue[1])
		if err != nil {
			return nil, err
		}
		queue = append(queue[2:], d)
	}

	return queue[0], nil
}
