package usecase

import (
	"context"
	"errors"
	"log"
	"strings"

	"campuspay/internal/domain/entities"
	"campuspay/internal/usecase/interfaces"
)

var (
	// ErrIdentityMismatch: the gateway answered for a different reference
	// than the one requested. Integrity failure, never retryable.
	ErrIdentityMismatch = errors.New("transaction reference mismatch")

	// ErrAmountMismatch: an APPROVED transaction carries an amount or
	// currency that differs from the local record. Security-relevant: it is
	// surfaced for operator investigation instead of being coerced into
	// DECLINED, and it blocks reconciliation.
	ErrAmountMismatch = errors.New("transaction amount mismatch")
)

// Expected carries the local record's view of what the gateway transaction
// should look like. The caller resolves it before verification; this layer
// never looks identities up itself.
type Expected struct {
	AmountCents   int64
	Currency      string
	OwnerIdentity string
}

// VerificationResult is the classified outcome of one gateway lookup.
//
// Trusted is true only when the cross-checks passed for an
// APPROVED/DECLINED/VOIDED state. PENDING is always trusted (there is no
// amount to compare yet); ERROR never is.
type VerificationResult struct {
	Status  entities.TransactionStatus
	Trusted bool
}

// IVerificationUseCase checks the true gateway-side state of a transaction
// and validates it against the expected local record.

type IVerificationUseCase interface {
	Verify(ctx context.Context, reference string, expected Expected) (VerificationResult, error)
}

type VerificationUseCase struct {
	registry interfaces.IProviderRegistry
}

var _ IVerificationUseCase = (*VerificationUseCase)(nil)

func NewVerificationUseCase(registry interfaces.IProviderRegistry) *VerificationUseCase {
	return &VerificationUseCase{registry: registry}
}

// Verify performs a single gateway lookup and cross-checks the result.
// It never retries: ErrGatewayUnavailable propagates so the caller's
// orchestration layer can decide the retry policy.
func (u *VerificationUseCase) Verify(ctx context.Context, reference string, expected Expected) (VerificationResult, error) {
	reference = strings.TrimSpace(reference)
	if reference == "" {
		log.Printf("[payment][verifier] invalid reference (empty)")
		return VerificationResult{}, interfaces.ErrInvalidReference
	}
	if u.registry == nil {
		return VerificationResult{}, interfaces.ErrNoProviderConfigured
	}

	provider, err := u.registry.ActiveProvider()
	if err != nil {
		log.Printf("[payment][verifier] no active provider err=%v", err)
		return VerificationResult{}, err
	}

	status, err := provider.GetTransactionStatus(ctx, reference)
	if err != nil {
		log.Printf("[payment][verifier] gateway lookup failed provider=%s reference=%s err=%v", provider.Name(), reference, err)
		return VerificationResult{}, err
	}
	log.Printf("[payment][verifier] gateway status provider=%s reference=%s state=%s amount_cents=%d currency=%s",
		provider.Name(), reference, status.State, status.AmountCents, status.Currency)

	if status.Reference != reference {
		log.Printf("[payment][verifier] identity mismatch requested=%s returned=%s", reference, status.Reference)
		return VerificationResult{}, ErrIdentityMismatch
	}

	if status.State == entities.TransactionStateApproved {
		if status.AmountCents != expected.AmountCents || status.Currency != expected.Currency {
			log.Printf("[payment][verifier] ALERT amount mismatch reference=%s got=%d %s want=%d %s",
				reference, status.AmountCents, status.Currency, expected.AmountCents, expected.Currency)
			return VerificationResult{}, ErrAmountMismatch
		}
	}

	return VerificationResult{Status: status, Trusted: trustedState(status.State)}, nil
}

func trustedState(state entities.TransactionState) bool {
	switch state {
	case entities.TransactionStateApproved,
		entities.TransactionStateDeclined,
		entities.TransactionStateVoided,
		entities.TransactionStatePending:
		return true
	}
	return false
}
