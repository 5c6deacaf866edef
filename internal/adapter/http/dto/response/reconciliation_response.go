package response

import "campuspay/internal/usecase"

// ReconciliationResponse reports the payable state after one
// verify-and-reconcile pass. Reconciled is true only on the call that
// committed the transition; polls that observed no change return false.
type ReconciliationResponse struct {
	State      string `json:"state"`
	Reconciled bool   `json:"reconciled"`
}

func FromReconciliationResult(r usecase.ReconciliationResult) ReconciliationResponse {
	return ReconciliationResponse{
		State:      string(r.State),
		Reconciled: r.Reconciled,
	}
}
