// Copyright 2025 The PIV2/PIVHU developers
// Distributed under the MIT software license, see the accompanying
// file COPYING or http://www.opensource.org/licenses/mit-license.php.

package merkle

import (
	"github.com/pivhu/piv2-genesis/internal/hashing"
)

// RootHash reduces a list of transaction IDs to the merkle root by pairwise
// double hashing, duplicating the last element of odd-length levels. An
// empty list yields the zero hash. A single-element list is returned as-is
// without further hashing.
func RootHash(txids [][32]byte) [32]byte {
	if len(txids) == 0 {
		return [32]byte{}
	}
	level := make([][32]byte, len(txids))
	copy(level, txids)
	for len(level) > 1 {
		if len(level)%2 == 1 {
			level = append(level, level[len(level)-1])
		}
		next := make([][32]byte, 0, len(level)/2)
		for i := 0; i < len(level); i += 2 {
			var pair [64]byte
			copy(pair[:32], level[i][:])
			copy(pair[32:], level[i+1][:])
			next = append(next, hashing.Sum256d(pair[:]))
		}
		level = next
	}
	return level[0]
}
