package xmss

import (
	"github.com/kasperdi/SPHINCSPLUS-golang/wots"

	"github.com/geanlabs/leansig/core/types"
	"github.com/geanlabs/leansig/crypto"
)

// The one-time key generator. Every leaf keypair is derived on demand from
// the key's two seeds and the leaf index: the secret chains come from the
// secret seed via the WOTS+ PRF, the public chains from hashing them forward
// under the public seed. Derivation is pure, so the tree can be rebuilt from
// the seeds alone and no per-leaf secret is ever stored.

// deriveLeaf computes the Merkle leaf for a one-time keypair: the Keccak256
// hash of the compressed WOTS+ public key at the given leaf index.
func deriveLeaf(skSeed, pkSeed []byte, leaf uint32) types.Hash {
	pk := wots.Wots_PKgen(wotsParams, skSeed, pkSeed, wotsAdrs(leaf))
	return crypto.Keccak256Hash(pk)
}

// otsSign produces the WOTS+ signature for a 32-byte message with the
// one-time key at the given leaf index.
func otsSign(skSeed, pkSeed, message []byte, leaf uint32) []byte {
	return wots.Wots_sign(wotsParams, message, skSeed, pkSeed, wotsAdrs(leaf))
}

// otsRecoverLeaf recovers the candidate Merkle leaf from a WOTS+ signature
// and message: the public-key-recovery step of verification. It matches
// deriveLeaf exactly when the signature was produced by the leaf's secret
// key over the same message.
func otsRecoverLeaf(sig, message, pkSeed []byte, leaf uint32) types.Hash {
	pk := wots.Wots_pkFromSig(wotsParams, sig, message, pkSeed, wotsAdrs(leaf))
	return crypto.Keccak256Hash(pk)
}
