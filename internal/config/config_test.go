// Copyright 2025 The PIV2/PIVHU developers
// Distributed under the MIT software license, see the accompanying
// file COPYING or http://www.opensource.org/licenses/mit-license.php.

package config

import (
	"encoding/hex"
	"os"
	"path/filepath"
	"testing"
)

func TestNetworks(t *testing.T) {
	for _, network := range []string{"mainnet", "testnet", "regtest"} {
		params, ok := Networks[network]
		if !ok {
			t.Fatalf("missing network %s", network)
		}
		if params.Version != 1 {
			t.Errorf("unexpected version for %s: %d", network, params.Version)
		}
		if params.CoinbaseMessage == "" {
			t.Errorf("empty coinbase message for %s", network)
		}
		if params.Time == 0 || params.Bits == 0 {
			t.Errorf(
				"unexpected params for %s: time %d, bits 0x%08x",
				network,
				params.Time,
				params.Bits,
			)
		}
	}
	if Networks["regtest"].Bits != 0x207fffff {
		t.Errorf(
			"unexpected regtest bits: 0x%08x",
			Networks["regtest"].Bits,
		)
	}
}

func TestGenesisOutputs(t *testing.T) {
	if len(GenesisOutputs) != 5 {
		t.Fatalf("unexpected output count: %d", len(GenesisOutputs))
	}
	for _, output := range GenesisOutputs {
		if output.Value == 0 {
			t.Errorf("zero value output to %s", output.PubKeyHash)
		}
		decoded, err := hex.DecodeString(output.PubKeyHash)
		if err != nil {
			t.Errorf("invalid pubkey hash %q: %s", output.PubKeyHash, err)
			continue
		}
		if len(decoded) != 20 {
			t.Errorf(
				"unexpected pubkey hash length for %q: %d",
				output.PubKeyHash,
				len(decoded),
			)
		}
	}
}

func TestLoadClampsMinerSettings(t *testing.T) {
	cfg := GetConfig()
	origMiner := cfg.Miner
	defer func() {
		cfg.Miner = origMiner
	}()
	configFile := filepath.Join(t.TempDir(), "config.yaml")
	configYaml := "miner:\n  workers: 0\n  hashRateInterval: 0\n"
	if err := os.WriteFile(configFile, []byte(configYaml), 0o644); err != nil {
		t.Fatalf("unexpected error writing config file: %s", err)
	}
	loaded, err := Load(configFile)
	if err != nil {
		t.Fatalf("unexpected error loading config: %s", err)
	}
	if loaded.Miner.WorkerCount < 1 {
		t.Errorf("unexpected worker count: %d", loaded.Miner.WorkerCount)
	}
	if loaded.Miner.HashRateInterval < 1 {
		t.Errorf(
			"unexpected hash rate interval: %d",
			loaded.Miner.HashRateInterval,
		)
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := GetConfig()
	if cfg.Miner.WorkerCount < 1 {
		t.Errorf("unexpected default worker count: %d", cfg.Miner.WorkerCount)
	}
	if cfg.Miner.HashRateInterval < 1 {
		t.Errorf(
			"unexpected default hash rate interval: %d",
			cfg.Miner.HashRateInterval,
		)
	}
	if _, ok := Networks[cfg.Network]; !ok {
		t.Errorf("default network %s not in network table", cfg.Network)
	}
}
