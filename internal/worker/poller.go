package worker

import (
	"context"
	"errors"
	"log"
	"math/rand"
	"time"

	"campuspay/internal/domain/entities"
	"campuspay/internal/usecase"
	"campuspay/internal/usecase/interfaces"
)

// Poller is the pull-side caller of the reconciliation engine: it scans
// payables still awaiting payment and verifies each one against the gateway.
// Retry policy lives here, not in the core — the verifier performs a single
// lookup and the poller decides what a transient failure is worth.

type Poller struct {
	repo        interfaces.IPayableRepository
	engine      usecase.IReconciliationUseCase
	interval    time.Duration
	batchSize   int32
	maxAttempts int

	// sleep is swappable for tests.
	sleep func(time.Duration)
}

func NewPoller(repo interfaces.IPayableRepository, engine usecase.IReconciliationUseCase, interval time.Duration, batchSize int32, maxAttempts int) *Poller {
	if interval <= 0 {
		interval = 15 * time.Second
	}
	if maxAttempts < 1 {
		maxAttempts = 1
	}
	return &Poller{
		repo:        repo,
		engine:      engine,
		interval:    interval,
		batchSize:   batchSize,
		maxAttempts: maxAttempts,
		sleep:       time.Sleep,
	}
}

// Run blocks until ctx is cancelled, reconciling one batch per tick.
func (p *Poller) Run(ctx context.Context) {
	log.Printf("[payment][poller] started interval=%s batch=%d", p.interval, p.batchSize)
	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Printf("[payment][poller] stopped: %v", ctx.Err())
			return
		case <-ticker.C:
			p.RunCycle(ctx)
		}
	}
}

// RunCycle reconciles one batch of awaiting payables.
func (p *Poller) RunCycle(ctx context.Context) {
	pending, err := p.repo.ListByState(ctx, entities.PayableStateAwaitingPayment, p.batchSize)
	if err != nil {
		log.Printf("[payment][poller] list failed err=%v", err)
		return
	}

	for _, payable := range pending {
		if payable.GatewayReference == "" {
			// No gateway transaction was recorded for this payable yet;
			// nothing to verify until the checkout flow stores one.
			continue
		}
		p.reconcileOne(ctx, payable)
	}
}

func (p *Poller) reconcileOne(ctx context.Context, payable entities.Payable) {
	for attempt := 1; attempt <= p.maxAttempts; attempt++ {
		result, err := p.engine.VerifyAndReconcile(ctx, payable.ID, payable.GatewayReference)
		if err == nil {
			if result.Reconciled {
				log.Printf("[payment][poller] reconciled payable_id=%s state=%s", payable.ID, result.State)
			}
			return
		}

		switch {
		case errors.Is(err, interfaces.ErrGatewayUnavailable):
			if attempt == p.maxAttempts {
				log.Printf("[payment][poller] gateway unavailable payable_id=%s attempts=%d; next cycle will retry", payable.ID, attempt)
				return
			}
			delay := backoff(attempt)
			log.Printf("[payment][poller] gateway unavailable payable_id=%s attempt=%d backoff=%s", payable.ID, attempt, delay)
			select {
			case <-ctx.Done():
				return
			default:
				p.sleep(delay)
			}
		case errors.Is(err, usecase.ErrAmountMismatch), errors.Is(err, usecase.ErrIdentityMismatch):
			// Integrity failures need an operator, not a retry loop.
			log.Printf("[payment][poller] ALERT integrity failure payable_id=%s reference=%s err=%v",
				payable.ID, payable.GatewayReference, err)
			return
		default:
			log.Printf("[payment][poller] reconcile failed payable_id=%s err=%v", payable.ID, err)
			return
		}
	}
}

// backoff grows exponentially with jitter so a flapping gateway is not hit by
// every payable at once.
func backoff(attempt int) time.Duration {
	base := time.Second << (attempt - 1)
	jitter := time.Duration(rand.Int63n(int64(time.Second)))
	return base + jitter
}
