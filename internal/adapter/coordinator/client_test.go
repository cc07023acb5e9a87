package coordinator

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dayanaadylkhanova/credit-claim/internal/service"
)

const wallet = "9xQeWvG816bUx9EPjHmaT23yvVM2ZWbrrpZb9PusVFin"

func TestReadBalance_ClampsAndFloors(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		body string
		want int64
	}{
		{"integer", `{"wallet":"w","total":150}`, 150},
		{"negative_clamped", `{"wallet":"w","total":-42}`, 0},
		{"fraction_floored", `{"wallet":"w","total":99.9}`, 99},
		{"missing_total", `{"wallet":"w"}`, 0},
		{"null_total", `{"wallet":"w","total":null}`, 0},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, http.MethodGet, r.Method)
				assert.Equal(t, "/credits/"+wallet, r.URL.Path)
				_, _ = w.Write([]byte(tc.body))
			}))
			defer srv.Close()

			got, err := NewClient(srv.URL+"/", time.Second).ReadBalance(context.Background(), wallet)
			require.NoError(t, err)
			assert.Equal(t, wallet, got.Wallet)
			assert.Equal(t, tc.want, got.Total)
		})
	}
}

func TestReadBalance_UpstreamErrorCarriesDiagnostics(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "db down", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL, time.Second).ReadBalance(context.Background(), wallet)
	require.Error(t, err)
	assert.True(t, errors.Is(err, service.ErrLedgerUnavailable))

	var le *service.LedgerError
	require.True(t, errors.As(err, &le))
	assert.Equal(t, http.StatusServiceUnavailable, le.Status)
	assert.Equal(t, "db down", le.Detail())
}

func TestReadBalance_TimeoutIsLedgerUnavailable(t *testing.T) {
	t.Parallel()

	block := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-block
	}))
	defer srv.Close()
	defer close(block)

	_, err := NewClient(srv.URL, 50*time.Millisecond).ReadBalance(context.Background(), wallet)
	require.Error(t, err)
	assert.True(t, errors.Is(err, service.ErrLedgerUnavailable))
}

func TestSettle_SendsSameAmountAndIdempotencyKey(t *testing.T) {
	t.Parallel()

	var got settleRequest
	var key string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/credits/settle", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		key = r.Header.Get("Idempotency-Key")
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		_, _ = w.Write([]byte(`{"ok":true,"total":7}`))
	}))
	defer srv.Close()

	res, err := NewClient(srv.URL, time.Second).Settle(context.Background(), wallet, 150, "claim", "intent-1")
	require.NoError(t, err)
	assert.Equal(t, settleRequest{Wallet: wallet, Amount: 150, Reason: "claim", ClaimID: "intent-1"}, got)
	assert.Equal(t, "intent-1", key)
	assert.True(t, res.OK)
	assert.Equal(t, int64(7), res.Total)
}

func TestSettle_FailureWrapsSettlementFailed(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		_, _ = w.Write([]byte("balance changed"))
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL, time.Second).Settle(context.Background(), wallet, 150, "claim", "")
	require.Error(t, err)
	assert.True(t, errors.Is(err, service.ErrSettlementFailed))
	assert.False(t, errors.Is(err, service.ErrLedgerUnavailable))

	var le *service.LedgerError
	require.True(t, errors.As(err, &le))
	assert.Equal(t, "settle", le.Op)
	assert.Equal(t, "balance changed", le.Detail())
}

func TestClampTotal(t *testing.T) {
	t.Parallel()

	assert.Equal(t, int64(0), clampTotal(""))
	assert.Equal(t, int64(0), clampTotal("-0.5"))
	assert.Equal(t, int64(12), clampTotal("12.99"))
	assert.Equal(t, int64(1000000), clampTotal("1e6"))
}
