package payments

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"campuspay/internal/domain/entities"
	"campuspay/internal/usecase/interfaces"
)

// SandboxClient is a deterministic local provider for development and
// integration tests: no credentials, no network. The reference suffix steers
// the outcome, so a checkout flow can be exercised end to end against
// predictable gateway answers.
//
//	ref-approved  -> APPROVED with the configured amount/currency
//	ref-pending   -> PENDING
//	ref-declined  -> DECLINED
//	ref-voided    -> VOIDED
//	ref-error     -> ERROR
//	ref-mismatch  -> APPROVED with a wrong amount (integrity-path testing)
//	ref-unknown   -> gateway rejects the reference
//	anything else -> APPROVED

type SandboxClient struct {
	amountCents int64
	currency    string
}

var _ interfaces.IProviderClient = (*SandboxClient)(nil)

func NewSandboxClient(amountCents int64, currency string) *SandboxClient {
	if amountCents <= 0 {
		amountCents = 50000
	}
	if currency == "" {
		currency = "COP"
	}
	return &SandboxClient{amountCents: amountCents, currency: strings.ToUpper(currency)}
}

func (c *SandboxClient) Name() string { return "sandbox" }

func (c *SandboxClient) GetTransactionStatus(_ context.Context, reference string) (entities.TransactionStatus, error) {
	reference = strings.TrimSpace(reference)
	if reference == "" {
		return entities.TransactionStatus{}, interfaces.ErrInvalidReference
	}

	state := entities.TransactionStateApproved
	amount := c.amountCents
	switch {
	case strings.HasSuffix(reference, "-unknown"):
		return entities.TransactionStatus{}, fmt.Errorf("%w: unknown reference", interfaces.ErrGatewayRejected)
	case strings.HasSuffix(reference, "-pending"):
		state = entities.TransactionStatePending
	case strings.HasSuffix(reference, "-declined"):
		state = entities.TransactionStateDeclined
	case strings.HasSuffix(reference, "-voided"):
		state = entities.TransactionStateVoided
	case strings.HasSuffix(reference, "-error"):
		state = entities.TransactionStateError
	case strings.HasSuffix(reference, "-mismatch"):
		amount += 500
	}

	raw, _ := json.Marshal(map[string]any{
		"id":              reference,
		"status":          string(state),
		"amount_in_cents": amount,
		"currency":        c.currency,
		"simulated_at":    time.Now().UTC().Format(time.RFC3339Nano),
	})

	return entities.TransactionStatus{
		Reference:   reference,
		State:       state,
		AmountCents: amount,
		Currency:    c.currency,
		Raw:         raw,
	}, nil
}
