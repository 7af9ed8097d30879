package xmss

import (
	"github.com/geanlabs/leansig/core/types"
	"github.com/geanlabs/leansig/crypto"
)

// merkleTree is a complete binary hash tree over the one-time public key
// leaves of an activation interval. Nodes are stored 1-indexed with the root
// at index 1 and the leaves at [size, 2*size); trees over non-power-of-two
// spans are padded to the next power of two with the fixed paddingLeaf.
type merkleTree struct {
	height int
	size   int          // number of leaf slots (power of two)
	leaves int          // live leaves; slots beyond this hold paddingLeaf
	nodes  []types.Hash // 1-indexed, nodes[1] is the root
}

// buildMerkleTree constructs the tree bottom-up from the given leaf hashes.
func buildMerkleTree(leaves []types.Hash) *merkleTree {
	n := len(leaves)
	height := treeHeight(uint64(n))
	size := 1 << height

	nodes := make([]types.Hash, 2*size)
	for i := 0; i < n; i++ {
		nodes[size+i] = leaves[i]
	}
	for i := n; i < size; i++ {
		nodes[size+i] = paddingLeaf
	}
	for i := size - 1; i >= 1; i-- {
		left := nodes[2*i]
		right := nodes[2*i+1]
		nodes[i] = crypto.Keccak256Hash(left[:], right[:])
	}

	return &merkleTree{
		height: height,
		size:   size,
		leaves: n,
		nodes:  nodes,
	}
}

// root returns the tree's root commitment.
func (t *merkleTree) root() types.Hash {
	return t.nodes[1]
}

// authPath collects the sibling hashes from the given leaf up to the root.
// The returned slice has length t.height; the caller guarantees
// leaf < t.leaves.
func (t *merkleTree) authPath(leaf uint32) []types.Hash {
	path := make([]types.Hash, t.height)
	nodeIdx := int(leaf) + t.size

	for level := 0; level < t.height; level++ {
		path[level] = t.nodes[nodeIdx^1]
		nodeIdx >>= 1
	}
	return path
}

// foldAuthPath recomputes a candidate root by hashing a leaf up through its
// authentication path. The bit pattern of the leaf index selects the
// left/right order at each level.
func foldAuthPath(leaf types.Hash, index uint64, path []types.Hash) types.Hash {
	computed := leaf
	for _, sibling := range path {
		if index&1 == 0 {
			computed = crypto.Keccak256Hash(computed[:], sibling[:])
		} else {
			computed = crypto.Keccak256Hash(sibling[:], computed[:])
		}
		index >>= 1
	}
	return computed
}
