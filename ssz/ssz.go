// Package ssz implements the subset of Simple Serialize (SSZ) used for the
// canonical encodings of leansig keys and signatures: little-endian unsigned
// integers and fixed-size containers built by field concatenation.
//
// Spec: https://github.com/ethereum/consensus-specs/blob/dev/ssz/simple-serialize.md
package ssz

import "errors"

// Common errors.
var (
	ErrSize   = errors.New("ssz: invalid size")
	ErrOffset = errors.New("ssz: invalid offset")
)

// Marshaler is implemented by types that can serialize themselves to SSZ.
type Marshaler interface {
	MarshalSSZ() ([]byte, error)
	SizeSSZ() int
}

// Unmarshaler is implemented by types that can deserialize themselves from SSZ.
type Unmarshaler interface {
	UnmarshalSSZ([]byte) error
}
