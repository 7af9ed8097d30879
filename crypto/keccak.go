// Package crypto provides the Keccak256 hashing primitives used by the
// leansig signature scheme: leaf compression, Merkle tree node hashing and
// domain-separated seed expansion.
package crypto

import (
	"github.com/geanlabs/leansig/core/types"
	"golang.org/x/crypto/sha3"
)

// Keccak256 calculates the Keccak-256 hash of the concatenation of data.
func Keccak256(data ...[]byte) []byte {
	d := sha3.NewLegacyKeccak256()
	for _, b := range data {
		d.Write(b)
	}
	return d.Sum(nil)
}

// Keccak256Hash calculates Keccak-256 and returns it as a types.Hash.
func Keccak256Hash(data ...[]byte) types.Hash {
	return types.BytesToHash(Keccak256(data...))
}

// Keccak256Tagged calculates Keccak-256 over a domain-separation tag followed
// by data. Distinct tags keep derived values (secret seeds, public seeds,
// padding leaves) from colliding even when the input bytes coincide.
func Keccak256Tagged(tag string, data ...[]byte) []byte {
	d := sha3.NewLegacyKeccak256()
	d.Write([]byte(tag))
	for _, b := range data {
		d.Write(b)
	}
	return d.Sum(nil)
}
