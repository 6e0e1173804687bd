package htdigesttest

import (
	"sync/atomic"

	"github.com/gordian-engine/hashtree/htdigest"
)

// CountingProvider wraps another [htdigest.Provider]
// and counts the digests it was asked to compute.
type CountingProvider struct {
	P htdigest.Provider

	n atomic.Int64
}

func (c *CountingProvider) AppendDigest(dst []byte, f htdigest.Function, in ...[]byte) ([]byte, error) {
	c.n.Add(1)
	return c.P.AppendDigest(dst, f, in...)
}

// Count returns the number of AppendDigest calls so far.
func (c *CountingProvider) Count() int {
	return int(c.n.Load())
}

// Reset sets the count back to zero.
func (c *CountingProvider) Reset() {
	c.n.Store(0)
}
