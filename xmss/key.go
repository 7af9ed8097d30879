package xmss

import (
	"bytes"
	"fmt"
	"math"
	"sync"

	"github.com/geanlabs/leansig/core/types"
	"github.com/geanlabs/leansig/crypto"
	"github.com/geanlabs/leansig/ssz"
)

// SigningKey is the stateful half of a leansig keypair. It owns the secret
// seed material, the Merkle tree over the activation interval and the
// sliding window of prepared authentication paths.
//
// The key moves through three phases: created (empty window, nothing
// signable), prepared (a nonempty window of signable epochs) and exhausted
// (the window has reached the activation end; AdvancePreparation fails
// forever). There is no way back from exhaustion.
//
// A mutex serializes Sign, AdvancePreparation and the serializers against
// each other; a SigningKey may be shared across goroutines, but the scheme
// itself assumes exactly one logical owner deciding when epochs advance.
type SigningKey struct {
	mu sync.Mutex

	skSeed []byte // WOTS+ secret seed (32 bytes)
	pkSeed []byte // WOTS+ public seed (32 bytes)

	activationStart uint64
	activationEnd   uint64

	tree   *merkleTree
	window *preparationWindow
}

// Generate creates a new signing key active for
// [activationEpoch, activationEpoch+numActiveEpochs). The whole key is
// derived deterministically from seed: the secret and public WOTS+ seeds are
// domain-separated Keccak256 expansions of its 8-byte encoding. The Merkle
// tree is built eagerly (one WOTS+ public key derivation per epoch); the
// preparation window starts empty, so AdvancePreparation must run before the
// first Sign.
func Generate(seed, activationEpoch, numActiveEpochs uint64) (*SigningKey, error) {
	if numActiveEpochs == 0 {
		return nil, fmt.Errorf("%w: zero active epochs", ErrInvalidInterval)
	}
	if numActiveEpochs > MaxActiveEpochs {
		return nil, fmt.Errorf("%w: span %d exceeds %d",
			ErrInvalidInterval, numActiveEpochs, uint64(MaxActiveEpochs))
	}
	if activationEpoch > math.MaxUint64-numActiveEpochs {
		return nil, fmt.Errorf("%w: interval end overflows", ErrInvalidInterval)
	}

	seedBytes := ssz.MarshalUint64(seed)
	skSeed := crypto.Keccak256Tagged(secretSeedTag, seedBytes)
	pkSeed := crypto.Keccak256Tagged(publicSeedTag, seedBytes)

	start := activationEpoch
	end := activationEpoch + numActiveEpochs
	return newSigningKey(skSeed, pkSeed, start, end, start, start)
}

// Restore reconstructs a signing key from its canonical public and secret
// encodings. The secret encoding records the seeds, the activation interval
// and the prepared window bounds; the tree and the window's authentication
// paths are regenerated from the seeds. The two encodings must agree: the
// root recomputed from the secret seeds has to match the public key's root.
func Restore(pkBytes, skBytes []byte) (*SigningKey, error) {
	var pk PublicKey
	if err := pk.UnmarshalSSZ(pkBytes); err != nil {
		return nil, err
	}

	if len(skBytes) != secretKeySize {
		return nil, fmt.Errorf("%w: secret key must be %d bytes, got %d",
			ErrDeserialization, secretKeySize, len(skBytes))
	}
	r := ssz.NewReader(skBytes)
	skSeed := r.Bytes(32)
	pkSeed := r.Bytes(32)
	start := r.Uint64()
	end := r.Uint64()
	prepStart := r.Uint64()
	prepEnd := r.Uint64()
	if err := r.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDeserialization, err)
	}

	if start != pk.ActivationStart || end != pk.ActivationEnd {
		return nil, fmt.Errorf("%w: secret and public activation intervals disagree",
			ErrDeserialization)
	}
	if !bytes.Equal(pkSeed, pk.Seed) {
		return nil, fmt.Errorf("%w: secret and public seeds disagree", ErrDeserialization)
	}
	if prepStart < start || prepStart > prepEnd || prepEnd > end {
		return nil, fmt.Errorf("%w: prepared window [%d, %d) outside activation [%d, %d)",
			ErrDeserialization, prepStart, prepEnd, start, end)
	}
	if prepEnd-prepStart > uint64(windowCapacity(end-start)) {
		return nil, fmt.Errorf("%w: prepared window larger than capacity", ErrDeserialization)
	}

	k, err := newSigningKey(skSeed, pkSeed, start, end, prepStart, prepEnd)
	if err != nil {
		return nil, err
	}
	if k.tree.root() != pk.Root {
		return nil, fmt.Errorf("%w: recomputed root does not match public key",
			ErrDeserialization)
	}
	return k, nil
}

// newSigningKey builds the Merkle tree for [start, end) and replays the
// prepared window [prepStart, prepEnd) from it.
func newSigningKey(skSeed, pkSeed []byte, start, end, prepStart, prepEnd uint64) (*SigningKey, error) {
	span := end - start
	leaves := make([]types.Hash, span)
	for i := uint64(0); i < span; i++ {
		leaves[i] = deriveLeaf(skSeed, pkSeed, uint32(i))
	}

	k := &SigningKey{
		skSeed:          skSeed,
		pkSeed:          pkSeed,
		activationStart: start,
		activationEnd:   end,
		tree:            buildMerkleTree(leaves),
		window:          newPreparationWindow(prepStart, windowCapacity(span)),
	}
	for epoch := prepStart; epoch < prepEnd; epoch++ {
		k.window.push(k.tree.authPath(uint32(epoch - start)))
	}
	return k, nil
}

// ActivationStart returns the first epoch the key may sign for.
func (k *SigningKey) ActivationStart() uint64 {
	return k.activationStart
}

// ActivationEnd returns the first epoch past the key's activation interval.
func (k *SigningKey) ActivationEnd() uint64 {
	return k.activationEnd
}

// PreparedStart returns the first epoch of the prepared window.
func (k *SigningKey) PreparedStart() uint64 {
	k.mu.Lock()
	defer k.mu.Unlock()
	return k.window.start
}

// PreparedEnd returns the first epoch past the prepared window.
func (k *SigningKey) PreparedEnd() uint64 {
	k.mu.Lock()
	defer k.mu.Unlock()
	return k.window.end
}

// PublicKey returns the key's shareable commitment.
func (k *SigningKey) PublicKey() *PublicKey {
	return &PublicKey{
		Seed:            dupBytes(k.pkSeed),
		Root:            k.tree.root(),
		ActivationStart: k.activationStart,
		ActivationEnd:   k.activationEnd,
	}
}

// PublicKeyBytes returns the canonical public key encoding.
func (k *SigningKey) PublicKeyBytes() ([]byte, error) {
	if k == nil {
		return nil, ErrNilKey
	}
	return k.PublicKey().MarshalSSZ()
}

// SecretKeyBytes returns the canonical secret key encoding:
// skSeed[32] || pkSeed[32] || u64 start || u64 end || u64 prepStart || u64 prepEnd.
// Consumed-leaf flags are in-memory state only and are not serialized.
func (k *SigningKey) SecretKeyBytes() ([]byte, error) {
	if k == nil {
		return nil, ErrNilKey
	}
	k.mu.Lock()
	defer k.mu.Unlock()
	return ssz.MarshalFixedContainer(
		k.skSeed,
		k.pkSeed,
		ssz.MarshalUint64(k.activationStart),
		ssz.MarshalUint64(k.activationEnd),
		ssz.MarshalUint64(k.window.start),
		ssz.MarshalUint64(k.window.end),
	), nil
}

// AdvancePreparation slides the prepared window forward by one epoch:
// the authentication path for the leaf at PreparedEnd is computed and
// cached, and once the window is at capacity the oldest cached path is
// discarded. Fails with ErrEpochsExhausted, leaving the window unchanged,
// when the window has reached the end of the activation interval.
func (k *SigningKey) AdvancePreparation() error {
	if k == nil {
		return ErrNilKey
	}
	k.mu.Lock()
	defer k.mu.Unlock()

	if k.window.end == k.activationEnd {
		return ErrEpochsExhausted
	}
	k.window.push(k.tree.authPath(uint32(k.window.end - k.activationStart)))
	return nil
}

// Sign produces the encoded signature for a 32-byte message at the given
// epoch. The epoch must be inside the prepared window and its one-time key
// must not have signed before; otherwise Sign fails with ErrEpochNotPrepared
// and produces no output. Sign never computes authentication paths itself,
// so its cost does not depend on the tree height.
func (k *SigningKey) Sign(epoch uint64, message []byte) ([]byte, error) {
	if k == nil {
		return nil, ErrNilKey
	}
	if len(message) != MessageLength {
		return nil, fmt.Errorf("%w: got %d bytes", ErrMessageLength, len(message))
	}

	k.mu.Lock()
	defer k.mu.Unlock()

	if !k.window.contains(epoch) {
		return nil, fmt.Errorf("%w: epoch %d outside prepared window [%d, %d)",
			ErrEpochNotPrepared, epoch, k.window.start, k.window.end)
	}
	if k.window.isConsumed(epoch) {
		return nil, fmt.Errorf("%w: epoch %d already signed", ErrEpochNotPrepared, epoch)
	}

	leaf := uint32(epoch - k.activationStart)
	otsSig := otsSign(k.skSeed, k.pkSeed, message, leaf)
	if len(otsSig) != wotsSigSize {
		return nil, fmt.Errorf("%w: one-time signature is %d bytes, want %d",
			ErrSigningFailed, len(otsSig), wotsSigSize)
	}

	sig := &Signature{
		Epoch:    epoch,
		OTSSig:   otsSig,
		AuthPath: k.window.path(epoch),
	}
	out, err := sig.MarshalSSZ()
	if err != nil {
		return nil, err
	}
	k.window.markConsumed(epoch)
	return out, nil
}

// VerifyWithKey verifies a signature against this key's own public
// commitment, avoiding a public key serialization round-trip.
func (k *SigningKey) VerifyWithKey(epoch uint64, message, sigBytes []byte) error {
	if k == nil {
		return ErrNilKey
	}
	return verifyWithPublicKey(k.PublicKey(), epoch, message, sigBytes)
}

// dupBytes returns a copy of a byte slice.
func dupBytes(b []byte) []byte {
	if b == nil {
		return nil
	}
	c := make([]byte, len(b))
	copy(c, b)
	return c
}
