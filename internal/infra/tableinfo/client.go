// Package tableinfo implements the HTTP client for the companion table
// service, the authoritative source of table capacity and active status.
package tableinfo

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"tablebook/internal/domain/table"
	"tablebook/internal/pkg/config"
	"tablebook/internal/pkg/errs"
	"tablebook/internal/usecase/shared"
)

type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(cfg config.TableServiceConfig) *Client {
	return &Client{
		baseURL: cfg.BaseURL,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
	}
}

var _ shared.TableInfoClient = (*Client)(nil)

type tableEnvelope struct {
	Table struct {
		ID              int64 `json:"id"`
		SeatingCapacity int   `json:"seating_capacity"`
		IsActive        bool  `json:"is_active"`
	} `json:"table"`
}

// FetchTable performs a single round trip; any transport failure or
// non-success status is an error the caller interprets (not-found on the
// create path, placeholder on the read path).
func (c *Client) FetchTable(ctx context.Context, tableID int64) (*table.Table, error) {
	url := fmt.Sprintf("%s/api/tables/%d", c.baseURL, tableID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, errs.Wrap(err, "failed to build table service request")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errs.Wrap(err, "table service unreachable")
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, errs.New(fmt.Sprintf("table service returned status %d", resp.StatusCode))
	}

	var envelope tableEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return nil, errs.Wrap(err, "failed to decode table service response")
	}

	tbl, err := table.NewTable(envelope.Table.ID, envelope.Table.SeatingCapacity, envelope.Table.IsActive)
	if err != nil {
		return nil, errs.Wrap(err, "table service returned an invalid table")
	}

	return tbl, nil
}
