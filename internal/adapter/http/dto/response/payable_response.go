package response

import (
	"time"

	"campuspay/internal/domain/entities"
)

type PayableResponse struct {
	ID                  string    `json:"id"`
	EnrollmentID        string    `json:"enrollment_id"`
	OwnerIdentity       string    `json:"owner_identity"`
	ExpectedAmountCents int64     `json:"expected_amount_cents"`
	ExpectedCurrency    string    `json:"expected_currency"`
	GatewayReference    string    `json:"gateway_reference,omitempty"`
	State               string    `json:"state"`
	CreatedAt           time.Time `json:"created_at"`
	UpdatedAt           time.Time `json:"updated_at"`
}

func FromPayable(p entities.Payable) PayableResponse {
	return PayableResponse{
		ID:                  p.ID,
		EnrollmentID:        p.EnrollmentID,
		OwnerIdentity:       p.OwnerIdentity,
		ExpectedAmountCents: p.ExpectedAmountCents,
		ExpectedCurrency:    p.ExpectedCurrency,
		GatewayReference:    p.GatewayReference,
		State:               string(p.State),
		CreatedAt:           p.CreatedAt,
		UpdatedAt:           p.UpdatedAt,
	}
}
