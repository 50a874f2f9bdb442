// Copyright 2025 The PIV2/PIVHU developers
// Distributed under the MIT software license, see the accompanying
// file COPYING or http://www.opensource.org/licenses/mit-license.php.

package wire

import (
	"bytes"
	"encoding/binary"
	"encoding/hex"
	"fmt"
)

// P2PKH script opcodes
const (
	opDup         = 0x76
	opHash160     = 0xa9
	opData20      = 0x14
	opEqualVerify = 0x88
	opCheckSig    = 0xac
)

// DefaultScriptBits is the nBits value pushed into the coinbase scriptSig.
// This matches the original chain parameters (0x1d00ffff) and is
// independent of the network's actual difficulty bits.
const DefaultScriptBits uint32 = 486604799

// DefaultScriptNum is the small number pushed into the coinbase scriptSig
// after the bits value.
const DefaultScriptNum uint8 = 4

// TxOut is a single P2PKH output of the coinbase transaction
type TxOut struct {
	Value      uint64
	PubKeyHash [20]byte
}

// EncodeVarint serializes n in the variable-length integer format: a single
// byte below 0xfd, otherwise a tag byte (0xfd/0xfe/0xff) followed by the
// value as a 2/4/8 byte little-endian integer.
func EncodeVarint(n uint64) []byte {
	switch {
	case n < 0xfd:
		return []byte{byte(n)}
	case n <= 0xffff:
		buf := make([]byte, 3)
		buf[0] = 0xfd
		binary.LittleEndian.PutUint16(buf[1:], uint16(n))
		return buf
	case n <= 0xffffffff:
		buf := make([]byte, 5)
		buf[0] = 0xfe
		binary.LittleEndian.PutUint32(buf[1:], uint32(n))
		return buf
	default:
		buf := make([]byte, 9)
		buf[0] = 0xff
		binary.LittleEndian.PutUint64(buf[1:], n)
		return buf
	}
}

// DecodeVarint reads a variable-length integer from the start of buf and
// returns the value along with the number of bytes consumed.
func DecodeVarint(buf []byte) (uint64, int, error) {
	if len(buf) == 0 {
		return 0, 0, fmt.Errorf("varint: empty input")
	}
	tag := buf[0]
	switch {
	case tag < 0xfd:
		return uint64(tag), 1, nil
	case tag == 0xfd:
		if len(buf) < 3 {
			return 0, 0, fmt.Errorf("varint: short input for 2-byte value")
		}
		return uint64(binary.LittleEndian.Uint16(buf[1:])), 3, nil
	case tag == 0xfe:
		if len(buf) < 5 {
			return 0, 0, fmt.Errorf("varint: short input for 4-byte value")
		}
		return uint64(binary.LittleEndian.Uint32(buf[1:])), 5, nil
	default:
		if len(buf) < 9 {
			return 0, 0, fmt.Errorf("varint: short input for 8-byte value")
		}
		return binary.LittleEndian.Uint64(buf[1:]), 9, nil
	}
}

// CoinbaseScript builds the genesis coinbase scriptSig: three pushes for the
// bits value, a small script number, and the coinbase message. Each push
// uses a single-byte length prefix, so each piece must stay under 256 bytes.
func CoinbaseScript(message string, bits uint32, scriptNum uint8) ([]byte, error) {
	var bitsBytes [4]byte
	binary.LittleEndian.PutUint32(bitsBytes[:], bits)
	msgBytes := []byte(message)
	if len(msgBytes) > 0xff {
		return nil, fmt.Errorf(
			"coinbase message of %d bytes overflows single-byte push",
			len(msgBytes),
		)
	}
	var script bytes.Buffer
	script.WriteByte(byte(len(bitsBytes)))
	script.Write(bitsBytes[:])
	script.WriteByte(1)
	script.WriteByte(scriptNum)
	script.WriteByte(byte(len(msgBytes)))
	script.Write(msgBytes)
	return script.Bytes(), nil
}

// PayToPubKeyHash builds the standard 25-byte P2PKH output script:
// OP_DUP OP_HASH160 <20 bytes> OP_EQUALVERIFY OP_CHECKSIG
func PayToPubKeyHash(pubKeyHash [20]byte) []byte {
	script := make([]byte, 0, 25)
	script = append(script, opDup, opHash160, opData20)
	script = append(script, pubKeyHash[:]...)
	script = append(script, opEqualVerify, opCheckSig)
	return script
}

// DecodePubKeyHash decodes a hex-encoded 20-byte public key hash
func DecodePubKeyHash(s string) ([20]byte, error) {
	var ret [20]byte
	decoded, err := hex.DecodeString(s)
	if err != nil {
		return ret, fmt.Errorf("invalid pubkey hash %q: %w", s, err)
	}
	if len(decoded) != 20 {
		return ret, fmt.Errorf(
			"invalid pubkey hash %q: expected 20 bytes, got %d",
			s,
			len(decoded),
		)
	}
	copy(ret[:], decoded)
	return ret, nil
}

// CoinbaseTx serializes the genesis coinbase transaction: a single synthetic
// input spending the null outpoint with the coinbase scriptSig, followed by
// the given outputs.
func CoinbaseTx(outputs []TxOut, message string) ([]byte, error) {
	scriptSig, err := CoinbaseScript(message, DefaultScriptBits, DefaultScriptNum)
	if err != nil {
		return nil, err
	}
	var tx bytes.Buffer
	var u32 [4]byte
	var u64 [8]byte
	// Version
	binary.LittleEndian.PutUint32(u32[:], 1)
	tx.Write(u32[:])
	// Input count
	tx.Write(EncodeVarint(1))
	// Null previous outpoint
	tx.Write(make([]byte, 32))
	binary.LittleEndian.PutUint32(u32[:], 0xffffffff)
	tx.Write(u32[:])
	// scriptSig
	tx.Write(EncodeVarint(uint64(len(scriptSig))))
	tx.Write(scriptSig)
	// Sequence
	binary.LittleEndian.PutUint32(u32[:], 0xffffffff)
	tx.Write(u32[:])
	// Outputs
	tx.Write(EncodeVarint(uint64(len(outputs))))
	for _, out := range outputs {
		binary.LittleEndian.PutUint64(u64[:], out.Value)
		tx.Write(u64[:])
		script := PayToPubKeyHash(out.PubKeyHash)
		tx.Write(EncodeVarint(uint64(len(script))))
		tx.Write(script)
	}
	// Locktime
	binary.LittleEndian.PutUint32(u32[:], 0)
	tx.Write(u32[:])
	return tx.Bytes(), nil
}

// ReverseBytes returns a reversed copy of b. Hashes are serialized in their
// natural byte order and only reversed for display.
func ReverseBytes(b []byte) []byte {
	ret := make([]byte, len(b))
	for i, c := range b {
		ret[len(b)-1-i] = c
	}
	return ret
}

// HashHex returns the display representation of a hash: hex of the
// byte-reversed value
func HashHex(hash [32]byte) string {
	return hex.EncodeToString(ReverseBytes(hash[:]))
}
