// Copyright 2025 KrakLabs
//
// SPDX-License-Identifier: AGPL-3.0-or-later

package storage

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

// remoteChunkSize is the number of statements per request for the remote
// adapter — smaller than the local chunk size because each chunk is one
// HTTP round trip.
const remoteChunkSize = 50

// RemoteConfig identifies the account, database, and API token the remote
// adapter authenticates with.
type RemoteConfig struct {
	BaseURL  string
	Account  string
	Database string
	Token    string
}

// RemoteBackend is the remote-API realization of Backend: a net/http JSON
// client that posts batches of already-rendered SQL statements. Selected
// by --prod in place of the local sqlite adapter.
type RemoteBackend struct {
	cfg    RemoteConfig
	client *http.Client
}

// NewRemoteBackend builds a RemoteBackend using client, or http.DefaultClient
// if client is nil.
func NewRemoteBackend(cfg RemoteConfig, client *http.Client) *RemoteBackend {
	if client == nil {
		client = http.DefaultClient
	}
	return &RemoteBackend{cfg: cfg, client: client}
}

type executeBatchRequest struct {
	Statements []string `json:"statements"`
}

type getExistingIDsResponse struct {
	IDs []string `json:"ids"`
}

// ExecuteBatch renders each statement to a flat SQL string — the remote
// transport has no bind-parameter channel of its own — and posts chunks of
// remoteChunkSize as separate requests.
func (b *RemoteBackend) ExecuteBatch(ctx context.Context, stmts []Statement) error {
	for start := 0; start < len(stmts); start += remoteChunkSize {
		end := min(start+remoteChunkSize, len(stmts))
		rendered := make([]string, end-start)
		for i, stmt := range stmts[start:end] {
			rendered[i] = renderStatement(stmt)
		}
		if err := b.postBatch(ctx, rendered); err != nil {
			return err
		}
	}
	return nil
}

func (b *RemoteBackend) postBatch(ctx context.Context, rendered []string) error {
	body, err := json.Marshal(executeBatchRequest{Statements: rendered})
	if err != nil {
		return fmt.Errorf("marshal batch: %w", err)
	}

	resp, err := b.do(ctx, "/execute_batch", body)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	return nil
}

// GetExistingIDs fetches the current job ids from the remote store.
func (b *RemoteBackend) GetExistingIDs(ctx context.Context) (map[string]struct{}, error) {
	resp, err := b.do(ctx, "/existing_ids", nil)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var parsed getExistingIDsResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("decode existing ids: %w", err)
	}

	ids := make(map[string]struct{}, len(parsed.IDs))
	for _, id := range parsed.IDs {
		ids[id] = struct{}{}
	}
	return ids, nil
}

// InitializeGeoTables renders the same countries/regions rows as the local
// adapter's native insert and sends them as one initialize_geo_tables
// request; the server side is responsible for the idempotent row-count
// skip, since the remote store's current population isn't observable here.
func (b *RemoteBackend) InitializeGeoTables(ctx context.Context, countries map[string]string, regions map[string]RegionRow) error {
	type payload struct {
		Countries map[string]string   `json:"countries"`
		Regions   map[string]RegionRow `json:"regions"`
	}

	body, err := json.Marshal(payload{Countries: countries, Regions: regions})
	if err != nil {
		return fmt.Errorf("marshal geo tables: %w", err)
	}

	resp, err := b.do(ctx, "/initialize_geo_tables", body)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	return nil
}

func (b *RemoteBackend) do(ctx context.Context, path string, body []byte) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, b.cfg.BaseURL+path, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+b.cfg.Token)
	req.Header.Set("X-Account", b.cfg.Account)
	req.Header.Set("X-Database", b.cfg.Database)

	resp, err := b.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, fmt.Errorf("%s: status %d", path, resp.StatusCode)
	}
	return resp, nil
}

// Close is a no-op for the remote adapter: there is no persistent
// connection to release.
func (b *RemoteBackend) Close() error {
	return nil
}
