// Package htdigest is the digest provider for hashtree.
//
// A [Provider] turns byte input into a fixed-length digest
// for one of the supported [Function] values.
// The [Standard] provider builds a fresh hash state on every call,
// so one Standard value can be shared freely, including across goroutines.
package htdigest
