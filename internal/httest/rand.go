package httest

import (
	"crypto/sha256"
	"math/rand/v2"
	"testing"
)

// RandomItemsForTest returns n items of size sz
// containing pseudorandom data, derived from a seed based on the test name.
// Items are distinct with overwhelming probability for sz >= 8.
func RandomItemsForTest(t testing.TB, n, sz int) [][]byte {
	// Sha256 happens to be the right size for the chacha8 seed,
	// and the test name length is then irrelevant.
	seed := sha256.Sum256([]byte(t.Name()))
	chacha := rand.NewChaCha8(seed)

	mem := make([]byte, n*sz)
	if _, err := chacha.Read(mem); err != nil {
		panic(err)
	}

	out := make([][]byte, n)
	for i := range out {
		out[i] = mem[i*sz : (i+1)*sz : (i+1)*sz]
	}
	return out
}
