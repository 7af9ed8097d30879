package xmss

import (
	"testing"

	"github.com/geanlabs/leansig/core/types"
	"github.com/geanlabs/leansig/crypto"
)

func testLeaves(n int) []types.Hash {
	leaves := make([]types.Hash, n)
	for i := range leaves {
		leaves[i] = crypto.Keccak256Hash([]byte{byte(i)})
	}
	return leaves
}

func TestBuildMerkleTreeHeights(t *testing.T) {
	tests := []struct {
		leaves int
		height int
		size   int
	}{
		{1, 0, 1},
		{2, 1, 2},
		{3, 2, 4},
		{4, 2, 4},
		{5, 3, 8},
		{8, 3, 8},
		{9, 4, 16},
	}
	for _, tt := range tests {
		tree := buildMerkleTree(testLeaves(tt.leaves))
		if tree.height != tt.height {
			t.Errorf("leaves=%d: height = %d, want %d", tt.leaves, tree.height, tt.height)
		}
		if tree.size != tt.size {
			t.Errorf("leaves=%d: size = %d, want %d", tt.leaves, tree.size, tt.size)
		}
	}
}

func TestSingleLeafTree(t *testing.T) {
	leaves := testLeaves(1)
	tree := buildMerkleTree(leaves)

	if tree.root() != leaves[0] {
		t.Errorf("root = %s, want leaf %s", tree.root(), leaves[0])
	}
	if path := tree.authPath(0); len(path) != 0 {
		t.Errorf("auth path len = %d, want 0", len(path))
	}
}

func TestAuthPathFoldsToRoot(t *testing.T) {
	for _, n := range []int{2, 3, 4, 5, 8, 13} {
		leaves := testLeaves(n)
		tree := buildMerkleTree(leaves)

		for i := 0; i < n; i++ {
			path := tree.authPath(uint32(i))
			if len(path) != tree.height {
				t.Fatalf("n=%d leaf=%d: path len = %d, want %d", n, i, len(path), tree.height)
			}
			if got := foldAuthPath(leaves[i], uint64(i), path); got != tree.root() {
				t.Errorf("n=%d leaf=%d: folded root = %s, want %s", n, i, got, tree.root())
			}
		}
	}
}

func TestPaddingLeavesAreFixed(t *testing.T) {
	want := types.BytesToHash(crypto.Keccak256Tagged(paddingLeafTag))
	if paddingLeaf != want {
		t.Fatalf("paddingLeaf = %s, want %s", paddingLeaf, want)
	}

	// A padded slot must hold exactly the public padding value, so both
	// sides of the wire can rebuild identical trees.
	tree := buildMerkleTree(testLeaves(3))
	if tree.nodes[tree.size+3] != paddingLeaf {
		t.Errorf("padded slot = %s, want %s", tree.nodes[tree.size+3], paddingLeaf)
	}
}

func TestPaddingChangesRoot(t *testing.T) {
	// Trees over 3 and 4 distinct leaves must not collide just because the
	// first three leaves agree.
	leaves := testLeaves(4)
	a := buildMerkleTree(leaves[:3])
	b := buildMerkleTree(leaves)
	if a.root() == b.root() {
		t.Error("padded tree root equals unpadded root")
	}
}

func TestFoldAuthPathWrongLeaf(t *testing.T) {
	leaves := testLeaves(4)
	tree := buildMerkleTree(leaves)

	path := tree.authPath(2)
	if foldAuthPath(leaves[1], 2, path) == tree.root() {
		t.Error("wrong leaf folds to the correct root")
	}
	if foldAuthPath(leaves[2], 1, path) == tree.root() {
		t.Error("wrong index folds to the correct root")
	}
}
