// Copyright 2025 The PIV2/PIVHU developers
// Distributed under the MIT software license, see the accompanying
// file COPYING or http://www.opensource.org/licenses/mit-license.php.

package difficulty

import (
	"math/big"

	"github.com/pivhu/piv2-genesis/internal/wire"
)

// BitsToTarget expands the compact difficulty encoding into the full
// 256-bit target. The top byte of bits is the base-256 exponent, the low
// three bytes the mantissa. Note that the sign-bit convention used by some
// compact encodings is not handled here; genesis bits values never set it.
func BitsToTarget(bits uint32) *big.Int {
	mantissa := int64(bits & 0x00ffffff)
	exponent := uint(bits >> 24)
	if exponent <= 3 {
		return big.NewInt(mantissa >> (8 * (3 - exponent)))
	}
	target := big.NewInt(mantissa)
	return target.Lsh(target, 8*(exponent-3))
}

// HashToBig interprets a hash as a little-endian 256-bit integer for
// comparison against the target
func HashToBig(hash [32]byte) *big.Int {
	return new(big.Int).SetBytes(wire.ReverseBytes(hash[:]))
}
