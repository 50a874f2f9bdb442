// Copyright 2025 The PIV2/PIVHU developers
// Distributed under the MIT software license, see the accompanying
// file COPYING or http://www.opensource.org/licenses/mit-license.php.

package miner

import (
	"errors"
	"math/big"
	"time"

	"github.com/pivhu/piv2-genesis/internal/config"
	"github.com/pivhu/piv2-genesis/internal/difficulty"
	"github.com/pivhu/piv2-genesis/internal/hashing"
	"github.com/pivhu/piv2-genesis/internal/merkle"
	"github.com/pivhu/piv2-genesis/internal/wire"
)

// ErrExhausted is returned when the full nonce space is scanned without any
// header hash meeting the target
var ErrExhausted = errors.New("nonce space exhausted without meeting target")

// ErrStopped is returned when the search is cancelled before completion
var ErrStopped = errors.New("mining stopped")

// defaultMaxNonce bounds the nonce scan to the 32-bit space
const defaultMaxNonce = 0xffffffff

// shutdownCheckInterval is how many nonces a worker scans between
// cancellation checks. Coarse enough to keep per-iteration overhead out of
// the hot loop.
const shutdownCheckInterval = 4096

// Job holds the immutable inputs to a mining run. The header template,
// merkle root, and target are computed once and shared read-only across
// workers; only the header's nonce field varies during the search.
type Job struct {
	Header     wire.BlockHeader
	Target     *big.Int
	MerkleRoot [32]byte
	// MaxNonce bounds the search to nonces in [0, MaxNonce). Defaults to
	// the full 32-bit space.
	MaxNonce uint64
}

// Result is the outcome of a successful mining run
type Result struct {
	Nonce      uint32
	Hash       [32]byte
	MerkleRoot [32]byte
	Time       uint32
	Bits       uint32
	Elapsed    time.Duration
	Hashes     uint64
}

// HashHex returns the display form of the header hash
func (r *Result) HashHex() string {
	return wire.HashHex(r.Hash)
}

// MerkleRootHex returns the display form of the merkle root
func (r *Result) MerkleRootHex() string {
	return wire.HashHex(r.MerkleRoot)
}

// NewJob builds the coinbase transaction, merkle root, header template, and
// target for the given network params and output list
func NewJob(
	params config.NetworkParams,
	outputs []config.GenesisOutput,
) (*Job, error) {
	txOuts := make([]wire.TxOut, 0, len(outputs))
	for _, out := range outputs {
		pubKeyHash, err := wire.DecodePubKeyHash(out.PubKeyHash)
		if err != nil {
			return nil, err
		}
		txOuts = append(
			txOuts,
			wire.TxOut{Value: out.Value, PubKeyHash: pubKeyHash},
		)
	}
	txBytes, err := wire.CoinbaseTx(txOuts, params.CoinbaseMessage)
	if err != nil {
		return nil, err
	}
	txid := hashing.Sum256d(txBytes)
	merkleRoot := merkle.RootHash([][32]byte{txid})
	return &Job{
		Header: wire.BlockHeader{
			Version:    params.Version,
			MerkleRoot: merkleRoot,
			Timestamp:  params.Time,
			Bits:       params.Bits,
		},
		Target:     difficulty.BitsToTarget(params.Bits),
		MerkleRoot: merkleRoot,
		MaxNonce:   defaultMaxNonce,
	}, nil
}

// Mine runs the baseline single-threaded search: scan nonces in increasing
// order until a header hash falls at or below the target. A close of
// doneChan cancels the search.
func (j *Job) Mine(doneChan <-chan any) (*Result, error) {
	startTime := time.Now()
	header := j.Header
	var hashes uint64
	for nonce := uint64(0); nonce < j.MaxNonce; nonce++ {
		if doneChan != nil && nonce%shutdownCheckInterval == 0 {
			select {
			case <-doneChan:
				return nil, ErrStopped
			default:
			}
		}
		header.Nonce = uint32(nonce)
		headerBytes := header.Serialize()
		hash := hashing.Sum256d(headerBytes[:])
		hashes++
		if difficulty.HashToBig(hash).Cmp(j.Target) <= 0 {
			return &Result{
				Nonce:      uint32(nonce),
				Hash:       hash,
				MerkleRoot: j.MerkleRoot,
				Time:       header.Timestamp,
				Bits:       header.Bits,
				Elapsed:    time.Since(startTime),
				Hashes:     hashes,
			}, nil
		}
	}
	return nil, ErrExhausted
}
