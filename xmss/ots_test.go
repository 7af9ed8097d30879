package xmss

import (
	"bytes"
	"testing"

	"github.com/geanlabs/leansig/crypto"
	"github.com/geanlabs/leansig/ssz"
)

func testSeeds(seed uint64) (skSeed, pkSeed []byte) {
	seedBytes := ssz.MarshalUint64(seed)
	return crypto.Keccak256Tagged(secretSeedTag, seedBytes),
		crypto.Keccak256Tagged(publicSeedTag, seedBytes)
}

func TestDeriveLeafDeterministic(t *testing.T) {
	skSeed, pkSeed := testSeeds(1)

	a := deriveLeaf(skSeed, pkSeed, 7)
	b := deriveLeaf(skSeed, pkSeed, 7)
	if a != b {
		t.Errorf("deriveLeaf not deterministic: %s != %s", a, b)
	}
}

func TestDeriveLeafDistinctPerIndex(t *testing.T) {
	skSeed, pkSeed := testSeeds(1)

	seen := make(map[[32]byte]uint32)
	for i := uint32(0); i < 8; i++ {
		leaf := deriveLeaf(skSeed, pkSeed, i)
		if prev, ok := seen[leaf]; ok {
			t.Fatalf("leaf %d collides with leaf %d", i, prev)
		}
		seen[leaf] = i
	}
}

func TestOTSSignDeterministic(t *testing.T) {
	skSeed, pkSeed := testSeeds(2)
	msg := bytes.Repeat([]byte{0xab}, MessageLength)

	a := otsSign(skSeed, pkSeed, msg, 3)
	b := otsSign(skSeed, pkSeed, msg, 3)
	if !bytes.Equal(a, b) {
		t.Error("otsSign not deterministic for fixed inputs")
	}
	if len(a) != wotsSigSize {
		t.Errorf("signature len = %d, want %d", len(a), wotsSigSize)
	}
}

func TestOTSRecoverMatchesDerivedLeaf(t *testing.T) {
	skSeed, pkSeed := testSeeds(3)
	msg := crypto.Keccak256([]byte("recover test"))

	sig := otsSign(skSeed, pkSeed, msg, 5)
	got := otsRecoverLeaf(sig, msg, pkSeed, 5)
	want := deriveLeaf(skSeed, pkSeed, 5)
	if got != want {
		t.Errorf("recovered leaf = %s, want %s", got, want)
	}

	// A different message must not recover the same leaf.
	other := crypto.Keccak256([]byte("different"))
	if otsRecoverLeaf(sig, other, pkSeed, 5) == want {
		t.Error("recovered leaf matches for a different message")
	}

	// Nor a different leaf index.
	if otsRecoverLeaf(sig, msg, pkSeed, 6) == want {
		t.Error("recovered leaf matches for a different index")
	}
}
