package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"campuspay/internal/domain/entities"
	"campuspay/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrInvalidEnrollmentID = errors.New("invalid enrollment_id")
	ErrInvalidOwner        = errors.New("invalid owner_identity")
	ErrInvalidAmount       = errors.New("invalid expected amount")
	ErrInvalidCurrency     = errors.New("invalid expected currency")
)

// IPayableUseCase exposes the collaborator-facing payable operations: the
// checkout flow creates a record awaiting payment, status pages read it back.
// Reconciliation is deliberately not here; see IReconciliationUseCase.

type IPayableUseCase interface {
	Create(ctx context.Context, enrollmentID, ownerIdentity string, amountCents int64, currency, gatewayReference string) (entities.Payable, error)
	GetByID(ctx context.Context, id string) (entities.Payable, error)
}

type PayableUseCase struct {
	repo interfaces.IPayableRepository
}

var _ IPayableUseCase = (*PayableUseCase)(nil)

func NewPayableUseCase(repo interfaces.IPayableRepository) *PayableUseCase {
	return &PayableUseCase{repo: repo}
}

func (u *PayableUseCase) Create(ctx context.Context, enrollmentID, ownerIdentity string, amountCents int64, currency, gatewayReference string) (entities.Payable, error) {
	enrollmentID = strings.TrimSpace(enrollmentID)
	if enrollmentID == "" {
		return entities.Payable{}, ErrInvalidEnrollmentID
	}
	ownerIdentity = strings.TrimSpace(ownerIdentity)
	if ownerIdentity == "" {
		return entities.Payable{}, ErrInvalidOwner
	}
	if amountCents <= 0 {
		return entities.Payable{}, ErrInvalidAmount
	}
	currency = strings.ToUpper(strings.TrimSpace(currency))
	if len(currency) != 3 {
		return entities.Payable{}, ErrInvalidCurrency
	}

	now := time.Now().UTC()
	p := entities.Payable{
		ID:                  uuid.NewString(),
		EnrollmentID:        enrollmentID,
		OwnerIdentity:       ownerIdentity,
		ExpectedAmountCents: amountCents,
		ExpectedCurrency:    currency,
		GatewayReference:    strings.TrimSpace(gatewayReference),
		State:               entities.PayableStateAwaitingPayment,
		CreatedAt:           now,
		UpdatedAt:           now,
	}
	return u.repo.Create(ctx, p)
}

func (u *PayableUseCase) GetByID(ctx context.Context, id string) (entities.Payable, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Payable{}, ErrInvalidPayableID
	}

	p, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Payable{}, err
	}
	if p.ID == "" {
		return entities.Payable{}, ErrPayableNotFound
	}
	return p, nil
}
