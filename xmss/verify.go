package xmss

import "fmt"

// Verify checks an encoded signature against an encoded public key, epoch
// and 32-byte message. It is stateless and touches only the inputs, so it is
// safe to call from any number of goroutines concurrently.
//
// Malformed inputs fail with ErrDeserialization (or ErrMessageLength) before
// any cryptographic work. Every mismatch after that (epoch outside the
// activation interval, epoch not matching the signature, a recomputed root
// differing from the commitment) fails with ErrVerificationFailed.
func Verify(pkBytes []byte, epoch uint64, message, sigBytes []byte) error {
	var pk PublicKey
	if err := pk.UnmarshalSSZ(pkBytes); err != nil {
		return err
	}
	return verifyWithPublicKey(&pk, epoch, message, sigBytes)
}

func verifyWithPublicKey(pk *PublicKey, epoch uint64, message, sigBytes []byte) error {
	if len(message) != MessageLength {
		return fmt.Errorf("%w: got %d bytes", ErrMessageLength, len(message))
	}
	if epoch < pk.ActivationStart || epoch >= pk.ActivationEnd {
		return fmt.Errorf("%w: epoch %d outside activation [%d, %d)",
			ErrVerificationFailed, epoch, pk.ActivationStart, pk.ActivationEnd)
	}

	sig, err := unmarshalSignature(sigBytes, pk.TreeHeight())
	if err != nil {
		return err
	}
	if sig.Epoch != epoch {
		return fmt.Errorf("%w: signature is for epoch %d, not %d",
			ErrVerificationFailed, sig.Epoch, epoch)
	}

	// Recover the one-time public key from the signature, then fold the
	// resulting leaf up the authentication path. The leaf index's bit
	// pattern fixes the sibling order at each level.
	index := epoch - pk.ActivationStart
	leaf := otsRecoverLeaf(sig.OTSSig, message, pk.Seed, uint32(index))
	if foldAuthPath(leaf, index, sig.AuthPath) != pk.Root {
		return fmt.Errorf("%w: root mismatch", ErrVerificationFailed)
	}
	return nil
}
