package payments

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"math"
	"strconv"
	"strings"

	"campuspay/internal/domain/entities"
	"campuspay/internal/usecase/interfaces"

	"github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/payment"
)

var ErrMissingMercadoPagoAccessToken = errors.New("missing MERCADOPAGO_ACCESS_TOKEN")

// MercadoPagoClient verifies transactions against Mercado Pago via the
// official SDK. Mercado Pago payment ids are numeric; any other reference is
// rejected for this provider without a network call.

type MercadoPagoClient struct {
	client payment.Client
}

var _ interfaces.IProviderClient = (*MercadoPagoClient)(nil)

func NewMercadoPagoClient(accessToken string) (*MercadoPagoClient, error) {
	if accessToken == "" {
		log.Printf("[payment][mercadopago] missing MERCADOPAGO_ACCESS_TOKEN")
		return nil, ErrMissingMercadoPagoAccessToken
	}

	cfg, err := config.New(accessToken)
	if err != nil {
		log.Printf("[payment][mercadopago] failed creating sdk config err=%v", err)
		return nil, err
	}
	log.Printf("[payment][mercadopago] client initialized")

	return &MercadoPagoClient{client: payment.NewClient(cfg)}, nil
}

func (c *MercadoPagoClient) Name() string { return "mercadopago" }

func (c *MercadoPagoClient) GetTransactionStatus(ctx context.Context, reference string) (entities.TransactionStatus, error) {
	reference = strings.TrimSpace(reference)
	if reference == "" {
		return entities.TransactionStatus{}, interfaces.ErrInvalidReference
	}

	id, err := strconv.Atoi(reference)
	if err != nil {
		log.Printf("[payment][mercadopago] non-numeric reference=%q", reference)
		return entities.TransactionStatus{}, fmt.Errorf("%w: non-numeric reference", interfaces.ErrGatewayRejected)
	}

	resp, err := c.client.Get(ctx, id)
	if err != nil {
		log.Printf("[payment][mercadopago] sdk get failed reference=%s err=%v", reference, err)
		return entities.TransactionStatus{}, classifyMercadoPagoError(err)
	}
	if resp == nil {
		return entities.TransactionStatus{}, fmt.Errorf("%w: empty response", interfaces.ErrGatewayProtocolError)
	}
	if resp.Status == "" || resp.CurrencyID == "" {
		log.Printf("[payment][mercadopago] response missing required fields reference=%s", reference)
		return entities.TransactionStatus{}, fmt.Errorf("%w: missing required fields", interfaces.ErrGatewayProtocolError)
	}

	raw, err := json.Marshal(resp)
	if err != nil {
		return entities.TransactionStatus{}, fmt.Errorf("%w: %v", interfaces.ErrGatewayProtocolError, err)
	}

	cents := int64(math.Round(resp.TransactionAmount * 100))
	if cents < 0 {
		return entities.TransactionStatus{}, fmt.Errorf("%w: negative amount", interfaces.ErrGatewayProtocolError)
	}

	return entities.TransactionStatus{
		Reference:   strconv.Itoa(resp.ID),
		State:       mapMercadoPagoStatus(resp.Status),
		AmountCents: cents,
		Currency:    strings.ToUpper(resp.CurrencyID),
		Raw:         raw,
	}, nil
}

// classifyMercadoPagoError sorts SDK errors into the taxonomy. The SDK
// surfaces gateway errors as flattened strings, so classification inspects
// the message the same way the gateway's own error bodies read.
func classifyMercadoPagoError(err error) error {
	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "not_found") || strings.Contains(msg, "\"status\":404"):
		return fmt.Errorf("%w: %v", interfaces.ErrGatewayRejected, err)
	case strings.Contains(msg, "\"status\":400") || strings.Contains(msg, "\"status\":401") || strings.Contains(msg, "\"status\":403"):
		return fmt.Errorf("%w: %v", interfaces.ErrGatewayRejected, err)
	default:
		return fmt.Errorf("%w: %v", interfaces.ErrGatewayUnavailable, err)
	}
}

// mapMercadoPagoStatus is total over the gateway vocabulary; unknown values
// map to ERROR.
func mapMercadoPagoStatus(status string) entities.TransactionState {
	switch strings.ToLower(strings.TrimSpace(status)) {
	case "pending", "in_process", "in_mediation", "authorized":
		return entities.TransactionStatePending
	case "approved":
		return entities.TransactionStateApproved
	case "rejected":
		return entities.TransactionStateDeclined
	case "cancelled", "refunded", "charged_back":
		return entities.TransactionStateVoided
	default:
		log.Printf("[payment][mercadopago] unknown gateway status %q mapped to ERROR", status)
		return entities.TransactionStateError
	}
}
