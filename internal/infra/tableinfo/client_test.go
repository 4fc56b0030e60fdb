//go:build unit

package tableinfo_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"tablebook/internal/infra/tableinfo"
	"tablebook/internal/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newClient(baseURL string) *tableinfo.Client {
	return tableinfo.NewClient(config.TableServiceConfig{
		BaseURL: baseURL,
		Timeout: 2 * time.Second,
	})
}

func TestFetchTable(t *testing.T) {
	t.Run("success: decodes the table envelope", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/api/tables/1", r.URL.Path)
			assert.Equal(t, http.MethodGet, r.Method)

			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"table":{"id":1,"seating_capacity":4,"is_active":true,"location":"patio"}}`))
		}))
		defer server.Close()

		tbl, err := newClient(server.URL).FetchTable(context.Background(), 1)
		require.NoError(t, err)
		assert.Equal(t, int64(1), tbl.ID())
		assert.Equal(t, 4, tbl.SeatingCapacity())
		assert.True(t, tbl.IsActive())
	})

	t.Run("error: non-success status", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		}))
		defer server.Close()

		_, err := newClient(server.URL).FetchTable(context.Background(), 42)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "status 404")
	})

	t.Run("error: unreachable service", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
		server.Close()

		_, err := newClient(server.URL).FetchTable(context.Background(), 1)
		require.Error(t, err)
	})

	t.Run("error: malformed body", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(`{not json`))
		}))
		defer server.Close()

		_, err := newClient(server.URL).FetchTable(context.Background(), 1)
		require.Error(t, err)
	})

	t.Run("error: envelope without a valid table", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(`{"table":{"id":0,"seating_capacity":0,"is_active":false}}`))
		}))
		defer server.Close()

		_, err := newClient(server.URL).FetchTable(context.Background(), 1)
		require.Error(t, err)
	})

	t.Run("context cancellation aborts the request", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			<-r.Context().Done()
		}))
		defer server.Close()

		ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
		defer cancel()

		_, err := newClient(server.URL).FetchTable(ctx, 1)
		require.Error(t, err)
	})
}
