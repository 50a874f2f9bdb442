// Copyright 2025 The PIV2/PIVHU developers
// Distributed under the MIT software license, see the accompanying
// file COPYING or http://www.opensource.org/licenses/mit-license.php.

package miner

import (
	"math"
	"sync"
	"sync/atomic"

	"github.com/pivhu/piv2-genesis/internal/difficulty"
	"github.com/pivhu/piv2-genesis/internal/hashing"
	"github.com/pivhu/piv2-genesis/internal/logging"
)

// Miner scans a single shard of the nonce space. The job is shared
// read-only across all miners; each works on its own header copy.
type Miner struct {
	waitGroup   *sync.WaitGroup
	resultChan  chan Result
	doneChan    chan any
	job         *Job
	startNonce  uint64
	endNonce    uint64
	bestNonce   *atomic.Uint64
	hashCounter *atomic.Uint64
}

func New(
	waitGroup *sync.WaitGroup,
	resultChan chan Result,
	doneChan chan any,
	job *Job,
	startNonce uint64,
	endNonce uint64,
	bestNonce *atomic.Uint64,
	hashCounter *atomic.Uint64,
) *Miner {
	return &Miner{
		waitGroup:   waitGroup,
		resultChan:  resultChan,
		doneChan:    doneChan,
		job:         job,
		startNonce:  startNonce,
		endNonce:    endNonce,
		bestNonce:   bestNonce,
		hashCounter: hashCounter,
	}
}

func (m *Miner) Start() {
	defer m.waitGroup.Done()

	header := m.job.Header
	target := m.job.Target
	for nonce := m.startNonce; nonce < m.endNonce; nonce++ {
		if nonce%shutdownCheckInterval == 0 {
			// Check for shutdown
			select {
			case <-m.doneChan:
				return
			default:
			}
			// Anything we could still find is larger than a nonce already
			// found below our current position
			if m.bestNonce.Load() < nonce {
				return
			}
		}
		header.Nonce = uint32(nonce)
		headerBytes := header.Serialize()
		hash := hashing.Sum256d(headerBytes[:])
		m.hashCounter.Add(1)
		if difficulty.HashToBig(hash).Cmp(target) <= 0 {
			m.reportResult(nonce, hash)
			return
		}
	}
}

// reportResult publishes a qualifying nonce unless a smaller one was
// already found by another worker. The scan order within a shard is
// increasing, so the first hit is also the shard's smallest.
func (m *Miner) reportResult(nonce uint64, hash [32]byte) {
	for {
		current := m.bestNonce.Load()
		if current <= nonce {
			return
		}
		if m.bestNonce.CompareAndSwap(current, nonce) {
			break
		}
	}
	logging.GetLogger().Debugf("found candidate nonce %d (hash %x)", nonce, hash)
	m.resultChan <- Result{
		Nonce:      uint32(nonce),
		Hash:       hash,
		MerkleRoot: m.job.MerkleRoot,
		Time:       m.job.Header.Timestamp,
		Bits:       m.job.Header.Bits,
	}
}

// newBestNonce returns the shared best-nonce tracker, initialized above any
// reachable nonce value
func newBestNonce() *atomic.Uint64 {
	ret := &atomic.Uint64{}
	ret.Store(math.MaxUint64)
	return ret
}
