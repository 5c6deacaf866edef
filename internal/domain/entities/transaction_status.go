package entities

import "encoding/json"

// TransactionState is the canonical, provider-agnostic view of a gateway
// transaction state. Every provider client maps its own status vocabulary
// into this set; vocabulary the client does not recognize maps to ERROR so
// downstream state machines stay total.

type TransactionState string

const (
	TransactionStatePending  TransactionState = "PENDING"
	TransactionStateApproved TransactionState = "APPROVED"
	TransactionStateDeclined TransactionState = "DECLINED"
	TransactionStateVoided   TransactionState = "VOIDED"
	TransactionStateError    TransactionState = "ERROR"
)

// TransactionStatus is the normalized result of one gateway status lookup.
//
// It is built fresh on every verification call and never persisted; only the
// effect of reconciling it is durable, via the Payable record.
//
// Raw keeps the original gateway body for audit/traceability. It is opaque
// outside the provider client that produced it.

type TransactionStatus struct {
	Reference   string           `json:"reference"`
	State       TransactionState `json:"state"`
	AmountCents int64            `json:"amount_cents"`
	Currency    string           `json:"currency"`

	Raw json.RawMessage `json:"raw,omitempty"`
}
