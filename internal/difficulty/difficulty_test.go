// Copyright 2025 The PIV2/PIVHU developers
// Distributed under the MIT software license, see the accompanying
// file COPYING or http://www.opensource.org/licenses/mit-license.php.

package difficulty

import (
	"math/big"
	"testing"
)

func TestBitsToTargetRegtest(t *testing.T) {
	target := BitsToTarget(0x207fffff)
	expected := new(big.Int).Lsh(big.NewInt(0x7fffff), 8*(0x20-3))
	if target.Cmp(expected) != 0 {
		t.Errorf("unexpected target: got %064x, wanted %064x", target, expected)
	}
}

func TestBitsToTargetNarrowing(t *testing.T) {
	testDefs := []struct {
		bits     uint32
		expected int64
	}{
		// Exponent 3 passes the mantissa through
		{0x03123456, 0x123456},
		// Lower exponents shift it down a byte at a time
		{0x02123456, 0x1234},
		{0x01123456, 0x12},
		{0x00123456, 0},
	}
	for _, testDef := range testDefs {
		target := BitsToTarget(testDef.bits)
		if target.Cmp(big.NewInt(testDef.expected)) != 0 {
			t.Errorf(
				"unexpected target for 0x%08x: got %x, wanted %x",
				testDef.bits,
				target,
				testDef.expected,
			)
		}
	}
}

func TestBitsToTargetMantissaMonotonic(t *testing.T) {
	// With a fixed exponent a larger mantissa must give a larger target
	previous := BitsToTarget(0x1e000001)
	for _, mantissa := range []uint32{0x000100, 0x010000, 0x0ffff0, 0xffffff} {
		target := BitsToTarget(0x1e000000 | mantissa)
		if target.Cmp(previous) <= 0 {
			t.Errorf(
				"expected target for mantissa %06x to exceed %064x, got %064x",
				mantissa,
				previous,
				target,
			)
		}
		previous = target
	}
}

func TestBitsToTargetExponentShift(t *testing.T) {
	// Incrementing the exponent shifts the target left one byte
	for exponent := uint32(4); exponent < 0x20; exponent++ {
		lower := BitsToTarget(exponent<<24 | 0x0ffff0)
		higher := BitsToTarget((exponent+1)<<24 | 0x0ffff0)
		expected := new(big.Int).Lsh(lower, 8)
		if higher.Cmp(expected) != 0 {
			t.Errorf(
				"unexpected target for exponent %d: got %064x, wanted %064x",
				exponent+1,
				higher,
				expected,
			)
		}
	}
}

func TestHashToBig(t *testing.T) {
	// Hash bytes are interpreted as a little-endian integer
	var hash [32]byte
	hash[0] = 0x01
	if got := HashToBig(hash); got.Cmp(big.NewInt(1)) != 0 {
		t.Errorf("unexpected value: got %x, wanted 1", got)
	}
	hash[0] = 0
	hash[31] = 0x01
	expected := new(big.Int).Lsh(big.NewInt(1), 248)
	if got := HashToBig(hash); got.Cmp(expected) != 0 {
		t.Errorf("unexpected value: got %x, wanted %x", got, expected)
	}
}
