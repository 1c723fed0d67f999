// Copyright 2025 KrakLabs
//
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package config loads the pipeline's configuration: environment variables
// read once at startup into a Config struct, optionally layered over an
// on-disk YAML file supplying remote-adapter credentials.
package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/kraklabs/jobpipe/internal/errors"
)

// Remote holds the three credentials identifying the account, database, and
// API token the remote persistence adapter authenticates with.
type Remote struct {
	BaseURL  string `yaml:"base_url"`
	Account  string `yaml:"account"`
	Database string `yaml:"database"`
	Token    string `yaml:"token"`
}

// Config is the pipeline's run configuration, mergeable from an on-disk
// YAML file and overridden by environment variables.
type Config struct {
	SlugsFile        string `yaml:"slugs_file"`
	CacheFile        string `yaml:"cache_file"`
	Concurrency      int    `yaml:"concurrency"`
	KeywordsRegex    string `yaml:"keywords_regex"`
	NegativeKeywords string `yaml:"negative_keywords_regex"`

	Remote Remote `yaml:"remote"`
}

// Default returns the pipeline's baked-in defaults, before any YAML file
// or environment variable overrides are applied.
func Default() Config {
	return Config{
		SlugsFile:        "slugs.json",
		CacheFile:        "cache.json",
		Concurrency:      25,
		KeywordsRegex:    `(?i)intern|graduate|new grad|entry.level|junior|early.career`,
		NegativeKeywords: `(?i)senior|lead|principal|manager|staff|director|head of`,
	}
}

// Load builds a Config by starting from Default(), applying path (if
// non-empty) as a YAML overlay, then applying environment variable
// overrides.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, errors.NewConfigError(
				"Cannot read configuration file",
				fmt.Sprintf("Failed to read %s", path),
				"Check the --config path and file permissions",
				err,
			)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, errors.NewConfigError(
				"Invalid configuration format",
				fmt.Sprintf("YAML parsing failed for %s", path),
				"Fix the syntax error or remove --config to use defaults",
				err,
			)
		}
	}

	cfg.applyEnvOverrides()
	return cfg, nil
}

// applyEnvOverrides reads the environment, overriding whatever Default()
// or the YAML file set — environment variables always win.
func (c *Config) applyEnvOverrides() {
	if v := os.Getenv("SLUGS_FILE"); v != "" {
		c.SlugsFile = v
	}
	if v := os.Getenv("CONCURRENCY"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			c.Concurrency = n
		}
	}
	if v := os.Getenv("KEYWORDS_REGEX"); v != "" {
		c.KeywordsRegex = v
	}
	if v := os.Getenv("NEGATIVE_KEYWORDS_REGEX"); v != "" {
		c.NegativeKeywords = v
	}
	if v := os.Getenv("JOBPIPE_ACCOUNT"); v != "" {
		c.Remote.Account = v
	}
	if v := os.Getenv("JOBPIPE_DATABASE"); v != "" {
		c.Remote.Database = v
	}
	if v := os.Getenv("JOBPIPE_TOKEN"); v != "" {
		c.Remote.Token = v
	}
	if v := os.Getenv("JOBPIPE_BASE_URL"); v != "" {
		c.Remote.BaseURL = v
	}
}

// ValidateRemote checks that every credential the remote persistence
// adapter needs is present, returning a config error naming the missing
// ones rather than letting the adapter fail opaquely on first request.
func (c Config) ValidateRemote() error {
	var missing []string
	if c.Remote.BaseURL == "" {
		missing = append(missing, "JOBPIPE_BASE_URL")
	}
	if c.Remote.Account == "" {
		missing = append(missing, "JOBPIPE_ACCOUNT")
	}
	if c.Remote.Database == "" {
		missing = append(missing, "JOBPIPE_DATABASE")
	}
	if c.Remote.Token == "" {
		missing = append(missing, "JOBPIPE_TOKEN")
	}
	if len(missing) > 0 {
		return errors.NewConfigError(
			"Missing remote adapter credentials",
			fmt.Sprintf("--prod requires %v to be set", missing),
			"Set the missing environment variables or pass --config with a remote: section",
			nil,
		)
	}
	return nil
}
