// Copyright (c) 2025 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package main

import (
	"bytes"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/zemse/parity-esn/admission"
)

// fileConfig is the content of the --config file. Absent keys keep their defaults.
type fileConfig struct {
	ChainID             *string `yaml:"chain-id"`
	CheckLowS           *bool   `yaml:"check-low-s"`
	AllowEmptySignature *bool   `yaml:"allow-empty-signature"`
	Workers             *int    `yaml:"workers"`
	MaxTxSize           *uint64 `yaml:"max-tx-size"`
	SenderCacheSize     *int    `yaml:"sender-cache-size"`
}

func loadConfig(path string) (*fileConfig, error) {
	data, err := os.ReadFile(path) //#nosec G304
	if err != nil {
		return nil, errors.Wrap(err, "read config")
	}

	var cfg fileConfig
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && err != io.EOF {
		return nil, errors.Wrapf(err, "parse config %v", path)
	}
	return &cfg, nil
}

func (c *fileConfig) apply(opts *admission.Options) error {
	if c.ChainID != nil {
		id, err := parseChainID(*c.ChainID)
		if err != nil {
			return err
		}
		opts.ChainID = id
	}
	if c.CheckLowS != nil {
		opts.CheckLowS = *c.CheckLowS
	}
	if c.AllowEmptySignature != nil {
		opts.AllowEmptySignature = *c.AllowEmptySignature
	}
	if c.Workers != nil {
		opts.Workers = *c.Workers
	}
	if c.MaxTxSize != nil {
		opts.MaxTxSize = *c.MaxTxSize
	}
	if c.SenderCacheSize != nil {
		if *c.SenderCacheSize < 0 {
			return errors.New("sender-cache-size: must not be negative")
		}
		opts.SenderCacheSize = *c.SenderCacheSize
	}
	return nil
}

// parseChainID parses a decimal or 0x prefixed chain id. "none" yields nil.
func parseChainID(s string) (*uint64, error) {
	s = strings.TrimSpace(s)
	if strings.EqualFold(s, "none") {
		return nil, nil
	}
	id, err := strconv.ParseUint(s, 0, 64)
	if err != nil {
		return nil, errors.Wrapf(err, "chain-id %q", s)
	}
	return &id, nil
}
