// Copyright 2025 The PIV2/PIVHU developers
// Distributed under the MIT software license, see the accompanying
// file COPYING or http://www.opensource.org/licenses/mit-license.php.

package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/pivhu/piv2-genesis/internal/config"
	"github.com/pivhu/piv2-genesis/internal/logging"
	"github.com/pivhu/piv2-genesis/internal/metrics"
	"github.com/pivhu/piv2-genesis/internal/miner"
	"github.com/pivhu/piv2-genesis/internal/storage"
	"github.com/pivhu/piv2-genesis/internal/version"
	"github.com/pivhu/piv2-genesis/internal/wire"

	_ "go.uber.org/automaxprocs"
)

var cmdlineFlags struct {
	configFile string
	network    string
	quiet      bool
}

func main() {
	flag.StringVar(&cmdlineFlags.configFile, "config", "", "path to config file to load")
	flag.StringVar(&cmdlineFlags.network, "network", "", "network to mine genesis params for (mainnet/testnet/regtest)")
	flag.BoolVar(&cmdlineFlags.quiet, "quiet", false, "only print the resulting genesis params")
	flag.Parse()

	// Load config
	cfg, err := config.Load(cmdlineFlags.configFile)
	if err != nil {
		fmt.Printf("Failed to load config: %s\n", err)
		os.Exit(1)
	}
	if cmdlineFlags.network != "" {
		cfg.Network = cmdlineFlags.network
		if _, ok := config.Networks[cfg.Network]; !ok {
			fmt.Printf("Unknown network: %s\n", cfg.Network)
			os.Exit(1)
		}
	}

	// Configure logging
	logging.Setup()
	logger := logging.GetLogger()
	// Sync logger on exit
	defer func() {
		if err := logger.Sync(); err != nil {
			// We don't actually care about the error here, but we have to do something
			// to appease the linter
			return
		}
	}()

	logger.Infof("piv2-genesis %s starting", version.GetVersionString())

	// Start metrics listener
	if err := metrics.Start(); err != nil {
		logger.Fatalf("failed to start metrics listener: %s", err)
	}

	// Open result store
	if err := storage.GetStorage().Load(); err != nil {
		logger.Fatalf("failed to open storage: %s", err)
	}
	defer func() {
		if err := storage.GetStorage().Close(); err != nil {
			logger.Errorf("failed to close storage: %s", err)
		}
	}()

	// Surface any result stored by a previous run for this network
	var previous miner.Result
	if err := storage.GetStorage().GetResult(cfg.Network, &previous); err != nil {
		logger.Warnf("failed to load stored result: %s", err)
	} else if previous.Hash != ([32]byte{}) {
		logger.Infof(
			"previously mined genesis for %s: nonce %d, hash %s",
			cfg.Network,
			previous.Nonce,
			previous.HashHex(),
		)
	}

	// Build the mining job for the selected network
	params := config.GetNetwork()
	job, err := miner.NewJob(params, config.GenesisOutputs)
	if err != nil {
		logger.Fatalf("failed to build mining job: %s", err)
	}

	if !cmdlineFlags.quiet {
		printBanner(cfg.Network, params, job)
	}

	mgr := miner.NewManager(cfg.Miner.WorkerCount)

	// Stop workers on SIGINT/SIGTERM
	signalChan := make(chan os.Signal, 1)
	signal.Notify(signalChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-signalChan
		logger.Infof("got signal %s, stopping", sig)
		mgr.Stop()
	}()

	result, err := mgr.Mine(job)
	if err != nil {
		if errors.Is(err, miner.ErrStopped) {
			os.Exit(1)
		}
		if errors.Is(err, miner.ErrExhausted) {
			logger.Fatalf(
				"nonce space exhausted: adjust nTime or the coinbase message and retry",
			)
		}
		logger.Fatalf("mining failed: %s", err)
	}

	// Persist result for this network
	if err := storage.GetStorage().UpdateResult(cfg.Network, result); err != nil {
		logger.Errorf("failed to store result: %s", err)
	}

	if cmdlineFlags.quiet {
		fmt.Printf("nNonce=%d\n", result.Nonce)
		fmt.Printf("hash=%s\n", result.HashHex())
		fmt.Printf("merkle=%s\n", result.MerkleRootHex())
		return
	}
	printResult(result)
}

func printBanner(network string, params config.NetworkParams, job *miner.Job) {
	rule := strings.Repeat("=", 70)
	fmt.Println(rule)
	fmt.Printf("PIV2 Genesis Mining (%s)\n", network)
	fmt.Println(rule)
	fmt.Printf("Timestamp: %s\n", params.CoinbaseMessage)
	fmt.Printf("nTime: %d\n", params.Time)
	fmt.Printf("nBits: 0x%08x\n", params.Bits)
	fmt.Printf("Target: %064x\n", job.Target)
	fmt.Printf("Merkle Root: %s\n", wire.HashHex(job.MerkleRoot))
	fmt.Println(rule)
	fmt.Println("Mining...")
}

func printResult(result *miner.Result) {
	rule := strings.Repeat("=", 70)
	fmt.Println()
	fmt.Println(rule)
	fmt.Println("GENESIS FOUND!")
	fmt.Println(rule)
	fmt.Printf("nNonce: %d\n", result.Nonce)
	fmt.Printf("Hash: %s\n", result.HashHex())
	fmt.Printf("Merkle Root: %s\n", result.MerkleRootHex())
	fmt.Printf("Time: %.2f seconds (%d hashes)\n", result.Elapsed.Seconds(), result.Hashes)
	fmt.Println(rule)
	fmt.Println()
	fmt.Println("C++ Code:")
	fmt.Printf(
		"    assert(consensus.hashGenesisBlock == uint256S(\"0x%s\"));\n",
		result.HashHex(),
	)
	fmt.Printf(
		"    assert(genesis.hashMerkleRoot == uint256S(\"0x%s\"));\n",
		result.MerkleRootHex(),
	)
}
