package xmss

import (
	"fmt"

	"github.com/geanlabs/leansig/core/types"
	"github.com/geanlabs/leansig/ssz"
)

// Encoded sizes. All integers are little-endian per SSZ; both key encodings
// are fixed-size containers, signatures additionally carry a tree-height
// dependent authentication path.
const (
	publicKeySize = 32 + types.HashLength + 8 + 8
	secretKeySize = 32 + 32 + 8 + 8 + 8 + 8
)

// PublicKey is the shareable commitment to a signing key: the WOTS+ public
// seed, the Merkle root over all one-time public keys, and the activation
// interval. It carries no secret and is safe to copy freely.
type PublicKey struct {
	Seed            []byte // WOTS+ public seed (32 bytes)
	Root            types.Hash
	ActivationStart uint64
	ActivationEnd   uint64
}

// Span returns the number of active epochs the key covers.
func (pk *PublicKey) Span() uint64 {
	return pk.ActivationEnd - pk.ActivationStart
}

// TreeHeight returns the Merkle tree height implied by the activation span,
// which is also the authentication path length of every signature.
func (pk *PublicKey) TreeHeight() int {
	return treeHeight(pk.Span())
}

// SizeSSZ returns the encoded size in bytes.
func (pk *PublicKey) SizeSSZ() int { return publicKeySize }

// MarshalSSZ encodes the public key as
// seed[32] || root[32] || u64 start || u64 end.
func (pk *PublicKey) MarshalSSZ() ([]byte, error) {
	return ssz.MarshalFixedContainer(
		pk.Seed,
		pk.Root[:],
		ssz.MarshalUint64(pk.ActivationStart),
		ssz.MarshalUint64(pk.ActivationEnd),
	), nil
}

// UnmarshalSSZ decodes and validates a public key. All failures wrap
// ErrDeserialization.
func (pk *PublicKey) UnmarshalSSZ(data []byte) error {
	if len(data) != publicKeySize {
		return fmt.Errorf("%w: public key must be %d bytes, got %d",
			ErrDeserialization, publicKeySize, len(data))
	}
	r := ssz.NewReader(data)
	pk.Seed = r.Bytes(32)
	pk.Root = types.BytesToHash(r.Bytes(types.HashLength))
	pk.ActivationStart = r.Uint64()
	pk.ActivationEnd = r.Uint64()
	if err := r.Err(); err != nil {
		return fmt.Errorf("%w: %v", ErrDeserialization, err)
	}
	if pk.ActivationStart >= pk.ActivationEnd {
		return fmt.Errorf("%w: empty activation interval", ErrDeserialization)
	}
	if pk.Span() > MaxActiveEpochs {
		return fmt.Errorf("%w: activation span %d exceeds %d",
			ErrDeserialization, pk.Span(), uint64(MaxActiveEpochs))
	}
	return nil
}

// Signature binds one epoch to one one-time signature and the Merkle
// authentication path opening it against the public root. The leaf index is
// implied by epoch - ActivationStart and is not encoded separately.
type Signature struct {
	Epoch    uint64
	OTSSig   []byte // WOTS+ signature chains
	AuthPath []types.Hash
}

// SizeSSZ returns the encoded size in bytes.
func (s *Signature) SizeSSZ() int {
	return 8 + wotsSigSize + len(s.AuthPath)*types.HashLength
}

// MarshalSSZ encodes the signature as
// u64 epoch || otsSig[len*n] || path[height][32].
func (s *Signature) MarshalSSZ() ([]byte, error) {
	if len(s.OTSSig) != wotsSigSize {
		return nil, fmt.Errorf("%w: one-time signature is %d bytes, want %d",
			ErrSigningFailed, len(s.OTSSig), wotsSigSize)
	}
	out := make([]byte, 0, s.SizeSSZ())
	out = append(out, ssz.MarshalUint64(s.Epoch)...)
	out = append(out, s.OTSSig...)
	for _, h := range s.AuthPath {
		out = append(out, h[:]...)
	}
	return out, nil
}

// unmarshalSignature decodes a signature whose authentication path must be
// exactly height hashes long. All failures wrap ErrDeserialization.
func unmarshalSignature(data []byte, height int) (*Signature, error) {
	want := 8 + wotsSigSize + height*types.HashLength
	if len(data) != want {
		return nil, fmt.Errorf("%w: signature must be %d bytes for tree height %d, got %d",
			ErrDeserialization, want, height, len(data))
	}
	r := ssz.NewReader(data)
	sig := &Signature{
		Epoch:    r.Uint64(),
		OTSSig:   r.Bytes(wotsSigSize),
		AuthPath: make([]types.Hash, height),
	}
	for i := 0; i < height; i++ {
		sig.AuthPath[i] = types.BytesToHash(r.Bytes(types.HashLength))
	}
	if err := r.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDeserialization, err)
	}
	return sig, nil
}
