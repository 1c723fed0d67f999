// Copyright 2025 KrakLabs
//
// SPDX-License-Identifier: AGPL-3.0-or-later

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaultsWithNoPathOrEnv(t *testing.T) {
	clearEnv(t)

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "slugs.json", cfg.SlugsFile)
	assert.Equal(t, 25, cfg.Concurrency)
}

func TestLoadAppliesYAMLOverlay(t *testing.T) {
	clearEnv(t)

	dir := t.TempDir()
	path := filepath.Join(dir, "jobpipe.yaml")
	require.NoError(t, os.WriteFile(path, []byte("slugs_file: custom-slugs.json\nconcurrency: 10\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "custom-slugs.json", cfg.SlugsFile)
	assert.Equal(t, 10, cfg.Concurrency)
}

func TestEnvOverridesYAML(t *testing.T) {
	clearEnv(t)
	t.Setenv("SLUGS_FILE", "env-slugs.json")
	t.Setenv("CONCURRENCY", "5")

	dir := t.TempDir()
	path := filepath.Join(dir, "jobpipe.yaml")
	require.NoError(t, os.WriteFile(path, []byte("slugs_file: custom-slugs.json\nconcurrency: 10\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "env-slugs.json", cfg.SlugsFile)
	assert.Equal(t, 5, cfg.Concurrency)
}

func TestLoadRejectsUnreadableFile(t *testing.T) {
	clearEnv(t)

	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestValidateRemoteReportsMissingCredentials(t *testing.T) {
	cfg := Default()
	err := cfg.ValidateRemote()
	assert.Error(t, err)

	cfg.Remote = Remote{BaseURL: "https://api.example.com", Account: "acct", Database: "db", Token: "tok"}
	assert.NoError(t, cfg.ValidateRemote())
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{"SLUGS_FILE", "CONCURRENCY", "KEYWORDS_REGEX", "NEGATIVE_KEYWORDS_REGEX",
		"JOBPIPE_ACCOUNT", "JOBPIPE_DATABASE", "JOBPIPE_TOKEN", "JOBPIPE_BASE_URL"} {
		t.Setenv(k, "")
	}
}
