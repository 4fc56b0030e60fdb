package shared

import (
	"context"

	"tablebook/internal/domain/table"
)

// TableInfoClient fetches the authoritative table snapshot from the companion
// table service. A single best-effort round trip, no retry; any failure is
// reported as an error and interpreted by the caller.
type TableInfoClient interface {
	FetchTable(ctx context.Context, tableID int64) (*table.Table, error)
}
