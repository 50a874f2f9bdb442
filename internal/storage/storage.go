// Copyright 2025 The PIV2/PIVHU developers
// Distributed under the MIT software license, see the accompanying
// file COPYING or http://www.opensource.org/licenses/mit-license.php.

package storage

import (
	"fmt"

	"github.com/pivhu/piv2-genesis/internal/config"
	"github.com/pivhu/piv2-genesis/internal/logging"

	"github.com/dgraph-io/badger/v4"
	"github.com/fxamacker/cbor/v2"
)

const genesisResultKeyPrefix = "genesis_result_"

type Storage struct {
	db *badger.DB
}

var globalStorage = &Storage{}

func (s *Storage) Load() error {
	cfg := config.GetConfig()
	badgerOpts := badger.DefaultOptions(cfg.Storage.Directory).
		WithLogger(NewBadgerLogger()).
		// The default INFO logging is a bit verbose
		WithLoggingLevel(badger.WARNING)
	db, err := badger.Open(badgerOpts)
	if err != nil {
		return err
	}
	s.db = db
	return nil
}

func (s *Storage) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

// UpdateResult stores the mining result for a network, replacing any
// previous one
func (s *Storage) UpdateResult(network string, result any) error {
	resultCbor, err := cbor.Marshal(result)
	if err != nil {
		return err
	}
	key := fmt.Sprintf("%s%s", genesisResultKeyPrefix, network)
	err = s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), resultCbor)
	})
	return err
}

// GetResult loads the stored mining result for a network into dest. A
// missing key leaves dest untouched.
func (s *Storage) GetResult(network string, dest any) error {
	key := fmt.Sprintf("%s%s", genesisResultKeyPrefix, network)
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(key))
		if err != nil {
			return err
		}
		return item.Value(func(v []byte) error {
			return cbor.Unmarshal(v, dest)
		})
	})
	if err != nil {
		if err == badger.ErrKeyNotFound {
			return nil
		}
		return err
	}
	return nil
}

func GetStorage() *Storage {
	return globalStorage
}

// BadgerLogger is a wrapper type to give our logger the expected interface
type BadgerLogger struct {
	*logging.Logger
}

func NewBadgerLogger() *BadgerLogger {
	return &BadgerLogger{
		Logger: logging.GetLogger(),
	}
}

func (b *BadgerLogger) Warningf(msg string, args ...any) {
	b.Logger.Warnf(msg, args...)
}
