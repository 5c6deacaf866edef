package entities

import "time"

// PayableState represents the local lifecycle of a payable record.
//
// AWAITING_PAYMENT is the only non-terminal state. Once a record reaches
// PAID, FAILED or CANCELLED it must never be overwritten by a later
// reconciliation, regardless of what the gateway reports afterwards.

type PayableState string

const (
	PayableStateAwaitingPayment PayableState = "AWAITING_PAYMENT"
	PayableStatePaid            PayableState = "PAID"
	PayableStateFailed          PayableState = "FAILED"
	PayableStateCancelled       PayableState = "CANCELLED"
)

// Terminal reports whether the state can no longer change.
func (s PayableState) Terminal() bool {
	switch s {
	case PayableStatePaid, PayableStateFailed, PayableStateCancelled:
		return true
	}
	return false
}

// Payable is the local record a gateway transaction reconciles into
// (an enrollment invoice awaiting payment).
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (state-index): state
//
// Idempotency marker:
//   - LastProcessedReference + LastProcessedState record that a given gateway
//     reference already produced its terminal local effect. The repository
//     conditions every transition on the current state so repeated or
//     concurrent reconciliations of the same reference settle on a single
//     outcome.

type Payable struct {
	ID                  string       `json:"id"`
	EnrollmentID        string       `json:"enrollment_id"`
	OwnerIdentity       string       `json:"owner_identity"`
	ExpectedAmountCents int64        `json:"expected_amount_cents"`
	ExpectedCurrency    string       `json:"expected_currency"`
	GatewayReference    string       `json:"gateway_reference,omitempty"`
	State               PayableState `json:"state"`

	LastProcessedReference string           `json:"last_processed_reference,omitempty"`
	LastProcessedState     TransactionState `json:"last_processed_state,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
