package rest

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dayanaadylkhanova/credit-claim/internal/entity"
	"github.com/dayanaadylkhanova/credit-claim/internal/service"
)

type handlers struct {
	log     *slog.Logger
	claims  Claimer
	credits BalanceReader
}

type claimResponse struct {
	OK     bool   `json:"ok"`
	Tx     string `json:"tx"`
	Minted int64  `json:"minted"`
	Total  int64  `json:"total"`
}

type creditsResponse struct {
	OK     bool   `json:"ok"`
	Wallet string `json:"wallet"`
	Total  int64  `json:"total"`
}

func (h *handlers) healthz(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

func (h *handlers) claim(c *gin.Context) {
	var req entity.ClaimRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorBody(tagInvalidJSON))
		return
	}

	res, err := h.claims.Claim(c.Request.Context(), req)
	if err != nil {
		status, body := claimError(err)
		if status == http.StatusInternalServerError {
			h.log.Error("claim failed", "wallet", req.Wallet, "err", err)
		}
		c.JSON(status, body)
		return
	}

	c.JSON(http.StatusOK, claimResponse{
		OK:     true,
		Tx:     res.Receipt.TransactionSignature,
		Minted: res.Receipt.AmountMinted,
		Total:  res.Remaining,
	})
}

func (h *handlers) readCredits(c *gin.Context) {
	wallet := c.Param("wallet")
	bal, err := h.credits.ReadBalance(c.Request.Context(), wallet)
	if err != nil {
		var le *service.LedgerError
		if errors.As(err, &le) {
			c.JSON(http.StatusBadGateway, errorBody(tagCreditsFetchFailed+":"+le.Detail()))
			return
		}
		h.log.Error("read credits", "wallet", wallet, "err", err)
		c.JSON(http.StatusInternalServerError, errorBody(tagInternal))
		return
	}
	c.JSON(http.StatusOK, creditsResponse{OK: true, Wallet: bal.Wallet, Total: bal.Total})
}
