package entity

// ClaimPrefix is the fixed head of every signed claim message:
// CLAIM|<hostId>|<wallet>|<timestamp>.
const ClaimPrefix = "CLAIM"

type ClaimRequest struct {
	Wallet    string `json:"wallet"`
	HostID    string `json:"hostId"`
	Message   string `json:"msg"`
	Signature string `json:"sig"`
}

// ExpectedPrefix is the part of Message the signer may not choose.
func (r ClaimRequest) ExpectedPrefix() string {
	return ClaimPrefix + "|" + r.HostID + "|" + r.Wallet + "|"
}

// ClaimMode tells how a claim was admitted.
type ClaimMode int

const (
	ModeVerified ClaimMode = iota + 1
	ModeBypassed
)

func (m ClaimMode) String() string {
	switch m {
	case ModeVerified:
		return "verified"
	case ModeBypassed:
		return "bypassed"
	default:
		return "unknown"
	}
}

type CreditBalance struct {
	Wallet string `json:"wallet"`
	Total  int64  `json:"total"`
}

type SettlementResult struct {
	OK    bool  `json:"ok"`
	Total int64 `json:"total"`
}

type MintReceipt struct {
	TransactionSignature string `json:"tx"`
	AmountMinted         int64  `json:"minted"`
}

// ClaimResult is what a successful claim returns to the caller.
type ClaimResult struct {
	Mode      ClaimMode
	IntentID  string
	Receipt   MintReceipt
	Remaining int64
}
