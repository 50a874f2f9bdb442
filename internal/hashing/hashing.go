// Copyright 2025 The PIV2/PIVHU developers
// Distributed under the MIT software license, see the accompanying
// file COPYING or http://www.opensource.org/licenses/mit-license.php.

package hashing

import (
	"github.com/minio/sha256-simd"
)

// Sum256d computes the double SHA-256 of data. Transaction IDs, merkle
// nodes, and header hashes all use this.
func Sum256d(data []byte) [32]byte {
	first := sha256.Sum256(data)
	return sha256.Sum256(first[:])
}
