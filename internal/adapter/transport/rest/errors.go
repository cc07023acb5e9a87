package rest

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dayanaadylkhanova/credit-claim/internal/service"
)

// Error tags in response bodies.
const (
	tagInvalidJSON         = "invalid_json"
	tagWalletRequired      = "wallet_required"
	tagSignatureRequired   = "claim_signature_required"
	tagBadClaimMessage     = "bad_claim_message"
	tagInvalidWallet       = "invalid_wallet"
	tagClaimExpired        = "claim_expired"
	tagNotEnoughCredits    = "not_enough_credits"
	tagSigVerifyFailed     = "sig_verify_failed"
	tagClaimReplayed       = "claim_replayed"
	tagClaimInProgress     = "claim_in_progress"
	tagCreditsFetchFailed  = "credits_fetch_failed"
	tagSettleFailed        = "settle_failed"
	tagRateLimited         = "rate_limited"
	tagPaymentVerifyFailed = "payment_verify_failed"
	tagFacilitatorDown     = "payment_facilitator_unavailable"
	tagPaymentInternal     = "x402_internal"
	tagInternal            = "internal_error"
)

func errorBody(tag string) gin.H {
	return gin.H{"ok": false, "error": tag}
}

// claimError maps an orchestrator error to the response status and body.
func claimError(err error) (int, gin.H) {
	var (
		insufficient *service.InsufficientCreditsError
		settle       *service.SettleFailedError
		ledger       *service.LedgerError
	)

	switch {
	case errors.Is(err, service.ErrWalletRequired):
		return http.StatusBadRequest, errorBody(tagWalletRequired)
	case errors.Is(err, service.ErrClaimSignatureRequired):
		return http.StatusBadRequest, errorBody(tagSignatureRequired)
	case errors.Is(err, service.ErrBadMessageShape):
		return http.StatusBadRequest, errorBody(tagBadClaimMessage)
	case errors.Is(err, service.ErrInvalidWallet):
		return http.StatusBadRequest, errorBody(tagInvalidWallet)
	case errors.Is(err, service.ErrClaimExpired):
		return http.StatusBadRequest, errorBody(tagClaimExpired)
	case errors.Is(err, service.ErrBadSignatureEncoding), errors.Is(err, service.ErrSignatureMismatch):
		return http.StatusUnauthorized, errorBody(tagSigVerifyFailed)
	case errors.Is(err, service.ErrClaimReplayed):
		return http.StatusConflict, errorBody(tagClaimReplayed)
	case errors.Is(err, service.ErrClaimInProgress):
		return http.StatusConflict, errorBody(tagClaimInProgress)
	case errors.As(err, &insufficient):
		body := errorBody(tagNotEnoughCredits)
		body["total"] = insufficient.Total
		return http.StatusBadRequest, body
	case errors.As(err, &settle):
		detail := settle.Error()
		if errors.As(settle.Err, &ledger) {
			detail = ledger.Detail()
		}
		return http.StatusBadGateway, errorBody(tagSettleFailed + ":" + detail)
	case errors.As(err, &ledger) && errors.Is(err, service.ErrLedgerUnavailable):
		return http.StatusBadGateway, errorBody(tagCreditsFetchFailed + ":" + ledger.Detail())
	default:
		return http.StatusInternalServerError, errorBody(tagInternal)
	}
}
