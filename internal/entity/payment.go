package entity

// PaymentVersion is the version tag of the 402 requirement document.
const PaymentVersion = "x402-1"

// SchemeFacilitator is the only payment scheme the gate advertises.
const SchemeFacilitator = "facilitator"

type Price struct {
	Currency string `json:"currency"`
	Value    string `json:"value"`
}

type PaymentRequirement struct {
	Scheme      string `json:"scheme"`
	Facilitator string `json:"facilitator"`
	Receiver    string `json:"receiver"`
	Amount      Price  `json:"amount"`
	ResourceID  string `json:"resourceId"`
}

type PaymentRequired struct {
	Version             string               `json:"version"`
	PaymentRequirements []PaymentRequirement `json:"paymentRequirements"`
}

// PaymentVerifyRequest is posted to the facilitator's /v1/verify.
type PaymentVerifyRequest struct {
	XPayment   string `json:"xPayment"`
	Receiver   string `json:"receiver"`
	ResourceID string `json:"resourceId"`
}
