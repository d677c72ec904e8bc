// Package config loads the CLI-facing configuration that decides how
// cmd/ndnclient constructs a Transport and a Node. None of this is
// consumed by the engine itself - per spec, config/CLI is out of the
// core's scope - it only ever sees already-typed Go values.
package config

import (
	"math"
	"time"

	"github.com/pelletier/go-toml"
)

// Config is the parsed contents of a client configuration file.
type Config struct {
	Transport struct {
		Network string // "unix", "tcp" or "ws"
		Address string
	}
	Log struct {
		Level string
	}
	DefaultInterestLifetime time.Duration
}

// Load reads and parses a TOML configuration file, filling in the same
// defaults a freshly-installed client would want.
func Load(path string) (*Config, error) {
	tree, err := toml.LoadFile(path)
	if err != nil {
		return nil, err
	}

	cfg := &Config{}
	cfg.Transport.Network = getStringDefault(tree, "transport.network", "unix")
	cfg.Transport.Address = getStringDefault(tree, "transport.address", "/run/nfd/nfd.sock")
	cfg.Log.Level = getStringDefault(tree, "log.level", "INFO")
	cfg.DefaultInterestLifetime = time.Duration(getIntDefault(tree, "interest.default_lifetime_ms", 4000)) * time.Millisecond

	return cfg, nil
}

func getStringDefault(tree *toml.Tree, key, def string) string {
	raw := tree.Get(key)
	if raw == nil {
		return def
	}
	if v, ok := raw.(string); ok {
		return v
	}
	return def
}

func getIntDefault(tree *toml.Tree, key string, def int64) int64 {
	raw := tree.Get(key)
	if raw == nil {
		return def
	}
	if v, ok := raw.(int64); ok && v > 0 && v <= math.MaxInt32 {
		return v
	}
	return def
}
