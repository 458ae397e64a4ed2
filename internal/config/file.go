// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/goccy/go-yaml"
)

// fileConfig mirrors [StructuredConfig] for config files. Durations are
// declared as [Duration] so they can be written as "30s" in both formats.
type fileConfig struct {
	App struct {
		Env              Mode     `json:"env" yaml:"env"`
		TokenSignKey     string   `json:"token_sign_key" yaml:"token_sign_key"`
		TokenIssuer      string   `json:"token_issuer" yaml:"token_issuer"`
		TokenDuration    Duration `json:"token_duration" yaml:"token_duration"`
		PasswordHashCost int      `json:"password_hash_cost" yaml:"password_hash_cost"`
	} `json:"app" yaml:"app"`

	Server struct {
		HTTPAddress       string   `json:"http_address" yaml:"http_address"`
		RequestTimeout    Duration `json:"request_timeout" yaml:"request_timeout"`
		ReadHeaderTimeout Duration `json:"read_header_timeout" yaml:"read_header_timeout"`
		StaticDir         string   `json:"static_dir" yaml:"static_dir"`
		RateLimit         float64  `json:"rate_limit" yaml:"rate_limit"`
		RateBurst         int      `json:"rate_burst" yaml:"rate_burst"`
		TrustProxy        bool     `json:"trust_proxy" yaml:"trust_proxy"`
	} `json:"server" yaml:"server"`

	CORS CORS `json:"cors" yaml:"cors"`

	Storage Storage `json:"storage" yaml:"storage"`
}

// parseFile reads a config file, choosing the decoder by extension:
// .yaml and .yml are YAML, everything else is JSON.
func parseFile(path string) (*StructuredConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	var fileCfg fileConfig
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &fileCfg); err != nil {
			return nil, fmt.Errorf("error decoding yaml configs: %w", err)
		}
	default:
		if err := json.Unmarshal(data, &fileCfg); err != nil {
			return nil, fmt.Errorf("error decoding json configs: %w", err)
		}
	}

	return &StructuredConfig{
		App: App{
			Env:              fileCfg.App.Env,
			TokenSignKey:     fileCfg.App.TokenSignKey,
			TokenIssuer:      fileCfg.App.TokenIssuer,
			TokenDuration:    time.Duration(fileCfg.App.TokenDuration),
			PasswordHashCost: fileCfg.App.PasswordHashCost,
		},
		Server: Server{
			HTTPAddress:       fileCfg.Server.HTTPAddress,
			RequestTimeout:    time.Duration(fileCfg.Server.RequestTimeout),
			ReadHeaderTimeout: time.Duration(fileCfg.Server.ReadHeaderTimeout),
			StaticDir:         fileCfg.Server.StaticDir,
			RateLimit:         fileCfg.Server.RateLimit,
			RateBurst:         fileCfg.Server.RateBurst,
			TrustProxy:        fileCfg.Server.TrustProxy,
		},
		CORS:    fileCfg.CORS,
		Storage: fileCfg.Storage,
	}, nil
}

// Duration is a wrapper around time.Duration that can be decoded from
// strings like "1h" or "30s", or from a number of nanoseconds.
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		return d.UnmarshalText([]byte(value))
	default:
		return fmt.Errorf("invalid duration %s", string(b))
	}
}

func (d *Duration) UnmarshalText(text []byte) error {
	tmp, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	*d = Duration(tmp)
	return nil
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
