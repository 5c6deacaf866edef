package interfaces

import (
	"context"
	"errors"

	"campuspay/internal/domain/entities"
)

// ErrTransitionConflict: the conditional write lost a race against a
// concurrent reconciliation of the same payable. The caller re-reads and
// returns the winner's state.
var ErrTransitionConflict = errors.New("payable transition conflict")

// IPayableRepository abstracts DynamoDB persistence for Payable.
//
// ApplyTransition is the reconciliation commit point: a single transactional
// write that moves the payable out of AWAITING_PAYMENT, records the
// idempotency marker and, for PAID, applies the business effect (enrollment
// activation) in the same transaction. It must be conditioned on the current
// state so two racing reconciliations agree on one terminal outcome.
//
//go:generate mockgen -source=payable_repository_interface.go -destination=mocks/mock_payable_repository_interface.go -package=mocks
type IPayableRepository interface {
	Create(ctx context.Context, p entities.Payable) (entities.Payable, error)
	GetByID(ctx context.Context, id string) (entities.Payable, error)
	ListByState(ctx context.Context, state entities.PayableState, limit int32) ([]entities.Payable, error)
	ApplyTransition(ctx context.Context, p entities.Payable, to entities.PayableState, verified entities.TransactionStatus) (entities.Payable, error)
}
