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
	ErrInvalidPayableID = errors.New("invalid payable id")
	ErrPayableNotFound  = errors.New("payable not found")

	// ErrVerificationUntrusted: the gateway outcome could not be trusted
	// (ERROR state). The local record is left untouched.
	ErrVerificationUntrusted = errors.New("verification outcome untrusted")
)

// ReconciliationResult is what the caller gets back from one
// verify-and-reconcile pass. Reconciled is true only on the call that
// actually committed a state transition; polling a PENDING transaction or
// re-checking an already-terminal record yields Reconciled=false with no
// error, because those are normal outcomes, not failures.
type ReconciliationResult struct {
	State      entities.PayableState
	Reconciled bool
}

// IReconciliationUseCase converts a verified gateway state into a durable
// local decision, exactly once per payable.
//
// Transition table (local state x verified state, trusted outcomes only):
//
//	AWAITING_PAYMENT x PENDING   -> AWAITING_PAYMENT (no effect)
//	AWAITING_PAYMENT x APPROVED  -> PAID      (enrollment activated once)
//	AWAITING_PAYMENT x DECLINED  -> FAILED    (no effect)
//	AWAITING_PAYMENT x VOIDED    -> CANCELLED (no effect)
//	terminal         x anything  -> unchanged (idempotent no-op)
//
// Safe to call arbitrarily many times for the same reference, from polling,
// retries or webhook-style triggers, concurrently included: the repository's
// conditional transition guarantees a single winner.

type IReconciliationUseCase interface {
	VerifyAndReconcile(ctx context.Context, payableID, reference string) (ReconciliationResult, error)
}

type ReconciliationUseCase struct {
	repo     interfaces.IPayableRepository
	verifier IVerificationUseCase
	cache    interfaces.IStatusCache // optional; nil disables throttling
}

var _ IReconciliationUseCase = (*ReconciliationUseCase)(nil)

func NewReconciliationUseCase(repo interfaces.IPayableRepository, verifier IVerificationUseCase, cache interfaces.IStatusCache) *ReconciliationUseCase {
	return &ReconciliationUseCase{repo: repo, verifier: verifier, cache: cache}
}

func (u *ReconciliationUseCase) VerifyAndReconcile(ctx context.Context, payableID, reference string) (ReconciliationResult, error) {
	payableID = strings.TrimSpace(payableID)
	reference = strings.TrimSpace(reference)
	log.Printf("[payment][reconciler] start payable_id=%s reference=%s", payableID, reference)
	if payableID == "" {
		return ReconciliationResult{}, ErrInvalidPayableID
	}
	if reference == "" {
		return ReconciliationResult{}, interfaces.ErrInvalidReference
	}

	p, err := u.repo.GetByID(ctx, payableID)
	if err != nil {
		log.Printf("[payment][reconciler] load failed payable_id=%s err=%v", payableID, err)
		return ReconciliationResult{}, err
	}
	if p.ID == "" {
		log.Printf("[payment][reconciler] payable not found payable_id=%s", payableID)
		return ReconciliationResult{}, ErrPayableNotFound
	}

	// Idempotency guard: a terminal record is never reconciled again, no
	// matter what the gateway would report now.
	if p.State.Terminal() {
		log.Printf("[payment][reconciler] already terminal payable_id=%s state=%s last_reference=%s",
			p.ID, p.State, p.LastProcessedReference)
		return ReconciliationResult{State: p.State, Reconciled: false}, nil
	}

	// A fresh PENDING snapshot means the gateway was asked moments ago;
	// skip the outbound call for this poll.
	if u.cache != nil {
		pending, cacheErr := u.cache.GetPending(ctx, reference)
		if cacheErr != nil {
			log.Printf("[payment][reconciler] status cache read failed reference=%s err=%v", reference, cacheErr)
		} else if pending {
			return ReconciliationResult{State: p.State, Reconciled: false}, nil
		}
	}

	res, err := u.verifier.Verify(ctx, reference, Expected{
		AmountCents:   p.ExpectedAmountCents,
		Currency:      p.ExpectedCurrency,
		OwnerIdentity: p.OwnerIdentity,
	})
	if err != nil {
		return ReconciliationResult{}, err
	}

	if !res.Trusted {
		log.Printf("[payment][reconciler] untrusted outcome payable_id=%s reference=%s state=%s", p.ID, reference, res.Status.State)
		return ReconciliationResult{}, ErrVerificationUntrusted
	}

	next, transition := transitionFor(res.Status.State)
	if !transition {
		// PENDING: expected while the payer completes checkout.
		if u.cache != nil {
			if cacheErr := u.cache.SetPending(ctx, reference); cacheErr != nil {
				log.Printf("[payment][reconciler] status cache write failed reference=%s err=%v", reference, cacheErr)
			}
		}
		return ReconciliationResult{State: p.State, Reconciled: false}, nil
	}

	updated, err := u.repo.ApplyTransition(ctx, p, next, res.Status)
	if err != nil {
		if errors.Is(err, interfaces.ErrTransitionConflict) {
			// A concurrent reconciliation won the race. Its outcome stands.
			current, readErr := u.repo.GetByID(ctx, payableID)
			if readErr != nil {
				return ReconciliationResult{}, readErr
			}
			log.Printf("[payment][reconciler] lost transition race payable_id=%s state=%s", current.ID, current.State)
			return ReconciliationResult{State: current.State, Reconciled: false}, nil
		}
		log.Printf("[payment][reconciler] transition failed payable_id=%s to=%s err=%v", p.ID, next, err)
		return ReconciliationResult{}, err
	}

	log.Printf("[payment][reconciler] reconciled payable_id=%s reference=%s state=%s", updated.ID, reference, updated.State)
	return ReconciliationResult{State: updated.State, Reconciled: true}, nil
}

// transitionFor maps a trusted verified state to the payable state it commits.
// PENDING (and anything unmapped) commits nothing.
func transitionFor(state entities.TransactionState) (entities.PayableState, bool) {
	switch state {
	case entities.TransactionStateApproved:
		return entities.PayableStatePaid, true
	case entities.TransactionStateDeclined:
		return entities.PayableStateFailed, true
	case entities.TransactionStateVoided:
		return entities.PayableStateCancelled, true
	}
	return entities.PayableStateAwaitingPayment, false
}
