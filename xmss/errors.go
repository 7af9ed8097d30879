package xmss

import "errors"

// The closed error set surfaced by this package. Callers discriminate with
// errors.Is; wrapped detail never replaces a sentinel.
var (
	// ErrNilKey is returned when an operation is invoked on a nil key.
	ErrNilKey = errors.New("xmss: nil signing key")

	// ErrMessageLength is returned when a message is not exactly
	// MessageLength bytes.
	ErrMessageLength = errors.New("xmss: message must be 32 bytes")

	// ErrInvalidInterval is returned by Generate for an empty, oversized or
	// overflowing activation interval.
	ErrInvalidInterval = errors.New("xmss: invalid activation interval")

	// ErrEpochNotPrepared is returned by Sign when the epoch's
	// authentication path is not in the prepared window, or when the
	// epoch's one-time key has already been consumed.
	ErrEpochNotPrepared = errors.New("xmss: epoch not prepared")

	// ErrEpochsExhausted is returned by AdvancePreparation once the window
	// has reached the end of the activation interval. The condition is
	// terminal for the key.
	ErrEpochsExhausted = errors.New("xmss: active epochs exhausted")

	// ErrSigningFailed is returned when the one-time signature primitive
	// produces no usable signature. Retrying with the same leaf is unsafe;
	// callers must not retry.
	ErrSigningFailed = errors.New("xmss: signing failed")

	// ErrDeserialization is returned for malformed or mutually inconsistent
	// serialized keys and signatures.
	ErrDeserialization = errors.New("xmss: deserialization failed")

	// ErrVerificationFailed is returned when a signature does not open the
	// public key's root commitment for the claimed epoch and message.
	ErrVerificationFailed = errors.New("xmss: verification failed")
)
