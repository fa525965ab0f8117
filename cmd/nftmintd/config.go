package main

import (
	"encoding/hex"
	"fmt"

	"github.com/BurntSushi/toml"
)

type Config struct {
	Listen      string `toml:"listen"`
	KeyHash     string `toml:"key_hash"` // 64 hex chars; zero key when empty
	RequestFee  uint64 `toml:"request_fee"`
	FeeBalance  uint64 `toml:"fee_balance"`
	ArchiveDir  string `toml:"archive_dir"` // in-memory archive when empty
	AutoFulfill bool   `toml:"auto_fulfill"`
	Collection  string `toml:"collection"`
	LogLevel    string `toml:"log_level"`

	// RootSeed enables receipt countersigning of finalized records. The
	// receipt keys are derived from it; 64 hex chars, no signing when empty.
	RootSeed   string `toml:"root_seed"`
	PQReceipts bool   `toml:"pq_receipts"` // also issue Dilithium3 receipts
}

func defaultConfig() Config {
	return Config{
		Listen:      "127.0.0.1:7707",
		RequestFee:  100,
		FeeBalance:  10000,
		AutoFulfill: true,
		Collection:  "Rose",
		LogLevel:    "info",
	}
}

func loadConfig(path string) (Config, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	if cfg.Listen == "" {
		return Config{}, fmt.Errorf("config %s: listen must not be empty", path)
	}
	if _, err := cfg.keyHash(); err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	if _, err := cfg.rootSeed(); err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

func (c Config) keyHash() ([32]byte, error) {
	var key [32]byte
	if c.KeyHash == "" {
		return key, nil
	}
	b, err := hex.DecodeString(c.KeyHash)
	if err != nil {
		return key, fmt.Errorf("key_hash must be hex: %w", err)
	}
	if len(b) != len(key) {
		return key, fmt.Errorf("key_hash must be %d hex chars", 2*len(key))
	}
	copy(key[:], b)
	return key, nil
}

// rootSeed returns the decoded receipt root seed, or nil when countersigning
// is not configured.
func (c Config) rootSeed() ([]byte, error) {
	if c.RootSeed == "" {
		return nil, nil
	}
	b, err := hex.DecodeString(c.RootSeed)
	if err != nil {
		return nil, fmt.Errorf("root_seed must be hex: %w", err)
	}
	if len(b) != 32 {
		return nil, fmt.Errorf("root_seed must be %d hex chars", 64)
	}
	return b, nil
}
