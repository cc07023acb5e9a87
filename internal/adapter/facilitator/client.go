// Package facilitator verifies opaque payment proofs with a remote x402 facilitator.
package facilitator

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/dayanaadylkhanova/credit-claim/internal/entity"
	"github.com/dayanaadylkhanova/credit-claim/internal/service"
)

const maxDetail = 512

type Client struct {
	BaseURL string
	HTTP    *http.Client
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		BaseURL: strings.TrimRight(baseURL, "/"),
		HTTP:    &http.Client{Timeout: timeout},
	}
}

// Verify posts the proof to /v1/verify. On success the raw response body is the receipt.
func (c *Client) Verify(ctx context.Context, in entity.PaymentVerifyRequest) (string, error) {
	data, err := json.Marshal(in)
	if err != nil {
		return "", fmt.Errorf("marshal verify request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+"/v1/verify", bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("build verify request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", service.ErrFacilitatorUnavailable, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("%w: read response: %v", service.ErrFacilitatorUnavailable, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		detail := strings.TrimSpace(string(body))
		if len(detail) > maxDetail {
			detail = detail[:maxDetail]
		}
		return "", &service.PaymentError{Status: resp.StatusCode, Detail: detail, Err: service.ErrPaymentVerifyFailed}
	}
	// Header values cannot carry line breaks.
	return strings.Join(strings.Fields(string(body)), " "), nil
}
