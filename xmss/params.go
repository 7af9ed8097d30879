// Package xmss implements the leansig signature scheme: a forward-secure,
// stateful, hash-based (XMSS-family) scheme that signs fixed 32-byte messages
// bound to monotonically increasing epochs. A signing key commits to one
// Winternitz one-time keypair per epoch of its activation interval via a
// Keccak256 Merkle tree; a sliding preparation window keeps the
// authentication paths for upcoming epochs precomputed so signing cost does
// not depend on the tree height.
//
// The one-time signature primitive is the WOTS+ implementation from
// github.com/kasperdi/SPHINCSPLUS-golang; this package only manages key
// lifecycle, the Merkle commitment and the wire encodings around it.
package xmss

import (
	"github.com/kasperdi/SPHINCSPLUS-golang/address"
	"github.com/kasperdi/SPHINCSPLUS-golang/parameters"

	"github.com/geanlabs/leansig/core/types"
	"github.com/geanlabs/leansig/crypto"
)

// MessageLength is the fixed size of messages that can be signed (32 bytes).
// Callers sign digests, never raw payloads.
const MessageLength = 32

// MaxTreeHeight caps the Merkle tree height, bounding key generation to
// 2^20 leaf derivations. Hierarchical XMSS variants reach lifetime 2^32
// with a tree of trees; this single-tree scheme does not.
const MaxTreeHeight = 20

// MaxActiveEpochs is the largest activation span a key may cover.
const MaxActiveEpochs = 1 << MaxTreeHeight

// Domain-separation tags for seed expansion and tree padding.
const (
	secretSeedTag  = "leansig.seed.secret.v1"
	publicSeedTag  = "leansig.seed.public.v1"
	paddingLeafTag = "leansig.padding.leaf.v1"
)

// wotsParams is the WOTS+ parameter set (n=32, w=16) shared by every key.
// RANDOMIZE is off: signatures must be deterministic for a fixed leaf.
var wotsParams = parameters.MakeSphincsPlusSHA256256fRobust(false)

// wotsSigSize is the byte length of one WOTS+ signature (len chains of n
// bytes each).
var wotsSigSize = wotsParams.Len * wotsParams.N

// paddingLeaf is the fixed, publicly known leaf value used to pad trees over
// non-power-of-two activation spans. Padding leaves carry no signing key, so
// they are inert: no epoch maps to them and no one-time signature can open
// them.
var paddingLeaf = types.BytesToHash(crypto.Keccak256Tagged(paddingLeafTag))

// wotsAdrs returns a fresh hash address for the one-time keypair at the
// given leaf. The key pair address separates per-leaf chains under a single
// secret seed; WOTS+ mutates the chain and hash fields while iterating, so
// callers must not share the returned value across operations.
func wotsAdrs(leaf uint32) *address.ADRS {
	adrs := new(address.ADRS)
	adrs.SetType(address.WOTS_HASH)
	adrs.SetKeyPairAddress(int(leaf))
	return adrs
}

// treeHeight returns ceil(log2(span)), the Merkle tree height covering span
// leaves.
func treeHeight(span uint64) int {
	h := 0
	size := uint64(1)
	for size < span {
		size <<= 1
		h++
	}
	return h
}

// windowCapacity returns the preparation window capacity for an activation
// span: 2*ceil(sqrt(span)), clamped to the span itself. Keeping roughly
// 2*sqrt(lifetime) paths cached balances memory against advance frequency.
func windowCapacity(span uint64) int {
	r := uint64(1)
	for r*r < span {
		r++
	}
	c := 2 * r
	if c > span {
		c = span
	}
	return int(c)
}
