package treestore

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config selects which decorator layers a store is assembled with.
// The zero value is a bare container; DefaultConfig enables everything.
type Config struct {
	// Journal enables the write journal and transaction support.
	Journal bool `yaml:"journal"`

	// MaxEntries bounds the journal; <= 0 selects DefaultMaxEntries.
	MaxEntries int `yaml:"max_entries"`

	// Observable enables change subscriptions.
	Observable bool `yaml:"observable"`
}

// DefaultConfig returns the full stack: journal with the default bound and
// notifications enabled.
func DefaultConfig() Config {
	return Config{Journal: true, MaxEntries: DefaultMaxEntries, Observable: true}
}

// LoadConfig reads and parses a YAML config file. Unknown fields are
// rejected so typos fail at load time rather than silently disabling a
// layer.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}

// FromConfig assembles a store per the config flags.
func FromConfig(cfg Config) *TreeStore {
	opts := make([]Option, 0, 2)
	if cfg.Journal {
		opts = append(opts, WithJournal(cfg.MaxEntries))
	} else {
		opts = append(opts, WithoutJournal())
	}
	if !cfg.Observable {
		opts = append(opts, WithoutObservable())
	}
	return New(opts...)
}
