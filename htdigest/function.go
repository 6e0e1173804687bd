package htdigest

import (
	"crypto/sha1"
	"crypto/sha256"
	"crypto/sha512"
	"hash"
	"strings"

	simd "github.com/minio/sha256-simd"
)

// Function identifies one of the supported secure hash functions.
// Values are always lowercase; use [Parse] to accept user input.
type Function string

const (
	SHA1   Function = "sha1"
	SHA224 Function = "sha224"
	SHA256 Function = "sha256"
	SHA384 Function = "sha384"
	SHA512 Function = "sha512"
)

// Functions lists every supported Function, in ascending digest size.
var Functions = []Function{SHA1, SHA224, SHA256, SHA384, SHA512}

type functionInfo struct {
	size int
	new  func() hash.Hash
}

var registry = map[Function]functionInfo{
	SHA1:   {size: sha1.Size, new: sha1.New},
	SHA224: {size: sha256.Size224, new: sha256.New224},
	SHA256: {size: simd.Size, new: simd.New},
	SHA384: {size: sha512.Size384, new: sha512.New384},
	SHA512: {size: sha512.Size, new: sha512.New},
}

// Parse resolves name, case-insensitively, to a supported Function.
// Unknown names produce an [*UnsupportedFunctionError].
func Parse(name string) (Function, error) {
	f := Function(strings.ToLower(name))
	if _, ok := registry[f]; !ok {
		return "", &UnsupportedFunctionError{Name: name}
	}
	return f, nil
}

// Valid reports whether f is one of the supported functions.
func (f Function) Valid() bool {
	_, ok := registry[f]
	return ok
}

// Size returns the digest length of f in bytes,
// or zero if f is not supported.
func (f Function) Size() int {
	return registry[f].size
}

func (f Function) String() string {
	return string(f)
}

// newHash returns fresh hash state for f.
func (f Function) newHash() (hash.Hash, error) {
	info, ok := registry[f]
	if !ok {
		return nil, &UnsupportedFunctionError{Name: string(f)}
	}
	return info.new(), nil
}
