package request

// WebhookEventRequest is the push-path trigger. Gateways notify about
// transaction updates; the event only tells us *which* transaction to check.
// Its contents are never trusted for state: the reconciler re-queries the
// gateway, so polling and webhooks funnel through the same idempotency guard.
type WebhookEventRequest struct {
	Event string           `json:"event"`
	Data  WebhookEventData `json:"data"`
}

type WebhookEventData struct {
	PayableID string `json:"payable_id"`
	Reference string `json:"reference"`
}
