// Package coordinator talks to the external credit coordinator that owns wallet balances.
package coordinator

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/dayanaadylkhanova/credit-claim/internal/entity"
	"github.com/dayanaadylkhanova/credit-claim/internal/service"
)

// Upstream bodies longer than this are cut in diagnostics.
const maxDiagnosticBody = 512

type Client struct {
	baseURL string
	http    *http.Client
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

type creditsResponse struct {
	Wallet string      `json:"wallet"`
	Total  json.Number `json:"total"`
}

type settleRequest struct {
	Wallet  string `json:"wallet"`
	Amount  int64  `json:"amount"`
	Reason  string `json:"reason"`
	ClaimID string `json:"claimId,omitempty"`
}

type settleResponse struct {
	OK    bool        `json:"ok"`
	Total json.Number `json:"total"`
}

func (c *Client) ReadBalance(ctx context.Context, wallet string) (entity.CreditBalance, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/credits/"+url.PathEscape(wallet), nil)
	if err != nil {
		return entity.CreditBalance{}, fmt.Errorf("build credits request: %w", err)
	}

	var out creditsResponse
	if err := c.do(req, "read", service.ErrLedgerUnavailable, &out); err != nil {
		return entity.CreditBalance{}, err
	}
	return entity.CreditBalance{Wallet: wallet, Total: clampTotal(out.Total)}, nil
}

func (c *Client) Settle(ctx context.Context, wallet string, amount int64, reason, claimID string) (entity.SettlementResult, error) {
	body, err := json.Marshal(settleRequest{Wallet: wallet, Amount: amount, Reason: reason, ClaimID: claimID})
	if err != nil {
		return entity.SettlementResult{}, fmt.Errorf("marshal settle request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/credits/settle", bytes.NewReader(body))
	if err != nil {
		return entity.SettlementResult{}, fmt.Errorf("build settle request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if claimID != "" {
		req.Header.Set("Idempotency-Key", claimID)
	}

	var out settleResponse
	if err := c.do(req, "settle", service.ErrSettlementFailed, &out); err != nil {
		return entity.SettlementResult{}, err
	}
	return entity.SettlementResult{OK: out.OK, Total: clampTotal(out.Total)}, nil
}

func (c *Client) do(req *http.Request, op string, kind error, out any) error {
	resp, err := c.http.Do(req)
	if err != nil {
		return &service.LedgerError{Op: op, Body: err.Error(), Err: kind}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return &service.LedgerError{Op: op, Status: resp.StatusCode, Body: err.Error(), Err: kind}
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &service.LedgerError{Op: op, Status: resp.StatusCode, Body: truncate(string(raw)), Err: kind}
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return &service.LedgerError{Op: op, Status: resp.StatusCode, Body: "decode: " + err.Error(), Err: kind}
	}
	return nil
}

// clampTotal floors fractional totals and never returns a negative balance.
func clampTotal(n json.Number) int64 {
	if n == "" {
		return 0
	}
	if v, err := n.Int64(); err == nil {
		return max(v, 0)
	}
	f, err := n.Float64()
	if err != nil || math.IsNaN(f) || f <= 0 {
		return 0
	}
	if f >= math.MaxInt64 {
		return math.MaxInt64
	}
	return int64(math.Floor(f))
}

func truncate(s string) string {
	s = strings.TrimSpace(s)
	if len(s) > maxDiagnosticBody {
		return s[:maxDiagnosticBody]
	}
	return s
}
