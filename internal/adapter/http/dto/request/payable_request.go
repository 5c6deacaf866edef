package request

// CreatePayableRequest seeds a payable record awaiting payment. The caller
// (checkout flow) has already created the gateway transaction and may pass
// its reference so the background poller can reconcile without a browser.
type CreatePayableRequest struct {
	EnrollmentID     string `json:"enrollment_id" binding:"required"`
	OwnerIdentity    string `json:"owner_identity" binding:"required"`
	AmountCents      int64  `json:"amount_cents" binding:"required"`
	Currency         string `json:"currency" binding:"required"`
	GatewayReference string `json:"gateway_reference"`
}

// ReconcileRequest triggers one verify-and-reconcile pass for a payable.
type ReconcileRequest struct {
	Reference string `json:"reference" binding:"required"`
}
