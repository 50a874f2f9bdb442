// Copyright 2025 The PIV2/PIVHU developers
// Distributed under the MIT software license, see the accompanying
// file COPYING or http://www.opensource.org/licenses/mit-license.php.

package config

import (
	"fmt"
	"os"
	"runtime"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
)

type Config struct {
	Logging LoggingConfig `yaml:"logging"`
	Storage StorageConfig `yaml:"storage"`
	Miner   MinerConfig   `yaml:"miner"`
	Metrics MetricsConfig `yaml:"metrics"`
	Network string        `yaml:"network" envconfig:"NETWORK"`
}

type LoggingConfig struct {
	Debug bool `yaml:"debug" envconfig:"LOGGING_DEBUG"`
}

type StorageConfig struct {
	Directory string `yaml:"dir" envconfig:"STORAGE_DIR"`
}

type MinerConfig struct {
	WorkerCount      int `yaml:"workers"          envconfig:"WORKER_COUNT"`
	HashRateInterval int `yaml:"hashRateInterval" envconfig:"HASH_RATE_INTERVAL"`
}

type MetricsConfig struct {
	ListenAddress string `yaml:"address" envconfig:"METRICS_LISTEN_ADDRESS"`
	ListenPort    uint   `yaml:"port"    envconfig:"METRICS_LISTEN_PORT"`
}

// Singleton config instance with default values
var globalConfig = &Config{
	Metrics: MetricsConfig{
		ListenAddress: "",
		ListenPort:    0,
	},
	Storage: StorageConfig{
		Directory: "./.piv2-genesis",
	},
	// The default worker config is somewhat conservative: worker count is set
	// to half of the available logical CPUs
	Miner: MinerConfig{
		WorkerCount:      max(1, runtime.NumCPU()/2),
		HashRateInterval: 60,
	},
	Network: "testnet",
}

func Load(configFile string) (*Config, error) {
	// Load config file as YAML if provided
	if configFile != "" {
		buf, err := os.ReadFile(configFile)
		if err != nil {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		err = yaml.Unmarshal(buf, globalConfig)
		if err != nil {
			return nil, fmt.Errorf("error parsing config file: %w", err)
		}
	}
	// Load config values from environment variables
	// We use "dummy" as the app name here to (mostly) prevent picking up env
	// vars that we hadn't explicitly specified in annotations above
	err := envconfig.Process("dummy", globalConfig)
	if err != nil {
		return nil, fmt.Errorf("error processing environment: %w", err)
	}
	// Clamp miner settings that feed shard math and the hash rate divisor
	if globalConfig.Miner.WorkerCount < 1 {
		globalConfig.Miner.WorkerCount = 1
	}
	if globalConfig.Miner.HashRateInterval < 1 {
		globalConfig.Miner.HashRateInterval = 1
	}
	// Check specified network
	if err := globalConfig.validateNetwork(); err != nil {
		return nil, err
	}
	return globalConfig, nil
}

// GetConfig returns the global config instance
func GetConfig() *Config {
	return globalConfig
}

// GetNetwork returns the genesis params for the configured network
func GetNetwork() NetworkParams {
	return Networks[globalConfig.Network]
}

func (c *Config) validateNetwork() error {
	if _, ok := Networks[c.Network]; !ok {
		return fmt.Errorf("unknown network: %s", c.Network)
	}
	return nil
}
