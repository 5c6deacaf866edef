package interfaces

import (
	"context"
	"errors"

	"campuspay/internal/domain/entities"
)

// Provider call-path error taxonomy. Provider clients never swallow errors;
// they classify them so callers can decide between retrying, failing the
// request and alerting an operator.
var (
	// ErrInvalidReference: empty/whitespace reference, rejected before any
	// network call is made.
	ErrInvalidReference = errors.New("invalid transaction reference")

	// ErrNoProviderConfigured: configuration selects an unknown or missing
	// provider. Startup error, never retryable per request.
	ErrNoProviderConfigured = errors.New("no payment provider configured")

	// ErrGatewayUnavailable: network failure, timeout or gateway 5xx.
	// Transient; the caller may retry.
	ErrGatewayUnavailable = errors.New("payment gateway unavailable")

	// ErrGatewayRejected: the gateway returned an explicit error for this
	// reference (e.g. unknown reference). Not retryable for that reference.
	ErrGatewayRejected = errors.New("payment gateway rejected reference")

	// ErrGatewayProtocolError: the response could not be parsed or is missing
	// required fields. Signals schema drift, not a transient failure.
	ErrGatewayProtocolError = errors.New("payment gateway protocol error")
)

// IProviderClient abstracts one external payment gateway.
//
// GetTransactionStatus performs exactly one outbound call and maps the
// gateway payload into the normalized TransactionStatus. The mapping from
// gateway status vocabulary to canonical states is total: unknown values map
// to TransactionStateError instead of failing.
//
//go:generate mockgen -source=provider_client_interface.go -destination=mocks/mock_provider_client_interface.go -package=mocks
type IProviderClient interface {
	Name() string
	GetTransactionStatus(ctx context.Context, reference string) (entities.TransactionStatus, error)
}

// IProviderRegistry resolves the single active provider for this process.
//
// Resolution is configuration-driven and deterministic: one provider per
// process lifetime, never switched per call. A transaction is always checked
// against the provider that issued it.
type IProviderRegistry interface {
	ActiveProvider() (IProviderClient, error)
}
