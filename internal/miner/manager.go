// Copyright 2025 The PIV2/PIVHU developers
// Distributed under the MIT software license, see the accompanying
// file COPYING or http://www.opensource.org/licenses/mit-license.php.

package miner

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/pivhu/piv2-genesis/internal/config"
	"github.com/pivhu/piv2-genesis/internal/logging"
	"github.com/pivhu/piv2-genesis/internal/metrics"
)

// Manager shards the nonce space across a set of workers and collects the
// lowest qualifying nonce. Because every worker scans its shard in
// increasing order and abandons work above an already-found nonce, the
// parallel search returns the same nonce as the sequential one.
type Manager struct {
	workerCount      int
	workerWaitGroup  sync.WaitGroup
	doneChan         chan any
	resultChan       chan Result
	bestNonce        *atomic.Uint64
	hashCounter      *atomic.Uint64
	hashLogTimer     *time.Timer
	hashLogLastCount uint64
	hashLogMutex     sync.Mutex
	hashLogStopped   bool
	stopMutex        sync.Mutex
	stopped          bool
}

func NewManager(workerCount int) *Manager {
	if workerCount < 1 {
		workerCount = 1
	}
	return &Manager{
		workerCount: workerCount,
		doneChan:    make(chan any),
	}
}

// Stop cancels a running search. Mine will return ErrStopped.
func (m *Manager) Stop() {
	m.stopMutex.Lock()
	defer m.stopMutex.Unlock()
	if m.stopped {
		return
	}
	m.stopped = true
	close(m.doneChan)
}

// Mine runs the sharded search to completion and returns the result with
// the smallest nonce, ErrExhausted when the whole space fails the target,
// or ErrStopped after a call to Stop
func (m *Manager) Mine(job *Job) (*Result, error) {
	startTime := time.Now()
	m.resultChan = make(chan Result, m.workerCount)
	m.bestNonce = newBestNonce()
	m.hashCounter = &atomic.Uint64{}
	m.scheduleHashRateLog()
	logging.GetLogger().Infof(
		"starting %d workers over %d nonces",
		m.workerCount,
		job.MaxNonce,
	)
	// Start workers on contiguous disjoint shards
	shardSpan := job.MaxNonce / uint64(m.workerCount)
	for i := 0; i < m.workerCount; i++ {
		startNonce := uint64(i) * shardSpan
		endNonce := startNonce + shardSpan
		if i == m.workerCount-1 {
			endNonce = job.MaxNonce
		}
		miner := New(
			&m.workerWaitGroup,
			m.resultChan,
			m.doneChan,
			job,
			startNonce,
			endNonce,
			m.bestNonce,
			m.hashCounter,
		)
		m.workerWaitGroup.Add(1)
		go miner.Start()
	}
	m.workerWaitGroup.Wait()
	// Count any hashes not yet flushed by the rate log. The mutex keeps a
	// timer callback in flight from double counting or re-arming.
	m.hashLogMutex.Lock()
	m.hashLogStopped = true
	if m.hashLogTimer != nil {
		m.hashLogTimer.Stop()
	}
	hashCount := m.hashCounter.Load()
	flushCount := hashCount - m.hashLogLastCount
	m.hashLogLastCount = hashCount
	m.hashLogMutex.Unlock()
	metrics.ProcessedHashes().Add(float64(flushCount))
	close(m.resultChan)
	// Multiple shards may report before cancellation catches up; keep the
	// smallest nonce
	var best *Result
	for result := range m.resultChan {
		if best == nil || result.Nonce < best.Nonce {
			r := result
			best = &r
		}
	}
	if best == nil {
		select {
		case <-m.doneChan:
			return nil, ErrStopped
		default:
		}
		return nil, ErrExhausted
	}
	best.Elapsed = time.Since(startTime)
	best.Hashes = hashCount
	return best, nil
}

func (m *Manager) scheduleHashRateLog() {
	cfg := config.GetConfig()
	m.hashLogTimer = time.AfterFunc(
		time.Duration(cfg.Miner.HashRateInterval)*time.Second,
		m.hashRateLog,
	)
}

func (m *Manager) hashRateLog() {
	m.hashLogMutex.Lock()
	defer m.hashLogMutex.Unlock()
	if m.hashLogStopped {
		return
	}
	cfg := config.GetConfig()
	hashCount := m.hashCounter.Load()
	hashCountDiff := hashCount - m.hashLogLastCount
	m.hashLogLastCount = hashCount
	metrics.ProcessedHashes().Add(float64(hashCountDiff))
	secondDivisor := uint64(cfg.Miner.HashRateInterval) // #nosec G115
	logging.GetLogger().Infof("hash rate: %d/s", hashCountDiff/secondDivisor)
	m.scheduleHashRateLog()
}
