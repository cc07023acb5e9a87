package facilitator

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

	"github.com/dayanaadylkhanova/credit-claim/internal/entity"
	"github.com/dayanaadylkhanova/credit-claim/internal/service"
)

func TestVerify_PostsProofAndReturnsReceipt(t *testing.T) {
	t.Parallel()

	var got entity.PaymentVerifyRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v1/verify", r.URL.Path)
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		_, _ = w.Write([]byte("{\"ok\":true,\n \"id\":\"pay_1\"}\n"))
	}))
	defer srv.Close()

	c := NewClient(srv.URL+"/", time.Second)
	receipt, err := c.Verify(context.Background(), entity.PaymentVerifyRequest{
		XPayment: "proof", Receiver: "recv", ResourceID: "credits-read",
	})
	require.NoError(t, err)
	assert.Equal(t, `{"ok":true, "id":"pay_1"}`, receipt)
	assert.Equal(t, entity.PaymentVerifyRequest{XPayment: "proof", Receiver: "recv", ResourceID: "credits-read"}, got)
}

func TestVerify_RejectionIsPaymentVerifyFailed(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusPaymentRequired)
		_, _ = w.Write([]byte("insufficient funds"))
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL, time.Second).Verify(context.Background(), entity.PaymentVerifyRequest{XPayment: "p"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, service.ErrPaymentVerifyFailed))

	var pe *service.PaymentError
	require.True(t, errors.As(err, &pe))
	assert.Equal(t, http.StatusPaymentRequired, pe.Status)
	assert.Equal(t, "insufficient funds", pe.Detail)
}

func TestVerify_UnreachableIsFacilitatorUnavailable(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	_, err := NewClient(url, time.Second).Verify(context.Background(), entity.PaymentVerifyRequest{XPayment: "p"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, service.ErrFacilitatorUnavailable))
}

func TestVerify_TruncatedReceiptIsFacilitatorUnavailable(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Length", "100")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"ok":tr`))
	}))
	defer srv.Close()

	receipt, err := NewClient(srv.URL, time.Second).Verify(context.Background(), entity.PaymentVerifyRequest{XPayment: "p"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, service.ErrFacilitatorUnavailable))
	assert.False(t, errors.Is(err, service.ErrPaymentVerifyFailed))
	assert.Empty(t, receipt)
}
