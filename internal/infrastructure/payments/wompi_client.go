package payments

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"campuspay/internal/domain/entities"
	"campuspay/internal/usecase/interfaces"

	"github.com/sony/gobreaker"
)

var ErrMissingWompiPrivateKey = errors.New("missing WOMPI_PRIVATE_KEY")

const wompiMaxResponseBytes = 1 << 20

// wompiTransactionEnvelope mirrors the relevant slice of Wompi's
// GET /v1/transactions/{id} response. Pointers distinguish absent fields from
// zero values so schema drift is reported as a protocol error.
type wompiTransactionEnvelope struct {
	Data *wompiTransactionData `json:"data"`
}

type wompiTransactionData struct {
	ID           *string `json:"id"`
	Status       *string `json:"status"`
	AmountInCents *int64 `json:"amount_in_cents"`
	Currency     *string `json:"currency"`
}

// WompiClient verifies transactions against the Wompi gateway.
//
// The outbound call path is wrapped in a circuit breaker: only
// unavailable-class failures count against it, so a burst of lookups for
// unknown references does not trip the breaker.

type WompiClient struct {
	baseURL    string
	privateKey string
	httpClient *http.Client
	breaker    *gobreaker.CircuitBreaker
}

var _ interfaces.IProviderClient = (*WompiClient)(nil)

func NewWompiClient(baseURL, privateKey string, timeout time.Duration) (*WompiClient, error) {
	if strings.TrimSpace(privateKey) == "" {
		log.Printf("[payment][wompi] missing WOMPI_PRIVATE_KEY")
		return nil, ErrMissingWompiPrivateKey
	}
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	breaker := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:    "wompi",
		Timeout: 30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 5
		},
		IsSuccessful: func(err error) bool {
			return err == nil || !errors.Is(err, interfaces.ErrGatewayUnavailable)
		},
	})

	log.Printf("[payment][wompi] client initialized base_url=%s timeout=%s", baseURL, timeout)
	return &WompiClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		privateKey: privateKey,
		httpClient: &http.Client{Timeout: timeout},
		breaker:    breaker,
	}, nil
}

func (c *WompiClient) Name() string { return "wompi" }

func (c *WompiClient) GetTransactionStatus(ctx context.Context, reference string) (entities.TransactionStatus, error) {
	reference = strings.TrimSpace(reference)
	if reference == "" {
		return entities.TransactionStatus{}, interfaces.ErrInvalidReference
	}

	out, err := c.breaker.Execute(func() (interface{}, error) {
		return c.fetchTransaction(ctx, reference)
	})
	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			log.Printf("[payment][wompi] circuit open reference=%s", reference)
			return entities.TransactionStatus{}, fmt.Errorf("%w: circuit breaker open", interfaces.ErrGatewayUnavailable)
		}
		return entities.TransactionStatus{}, err
	}
	return out.(entities.TransactionStatus), nil
}

func (c *WompiClient) fetchTransaction(ctx context.Context, reference string) (entities.TransactionStatus, error) {
	url := fmt.Sprintf("%s/transactions/%s", c.baseURL, reference)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return entities.TransactionStatus{}, fmt.Errorf("%w: %v", interfaces.ErrGatewayProtocolError, err)
	}
	req.Header.Set("Authorization", "Bearer "+c.privateKey)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Printf("[payment][wompi] request failed reference=%s err=%v", reference, err)
		return entities.TransactionStatus{}, fmt.Errorf("%w: %v", interfaces.ErrGatewayUnavailable, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, wompiMaxResponseBytes))
	if err != nil {
		return entities.TransactionStatus{}, fmt.Errorf("%w: %v", interfaces.ErrGatewayUnavailable, err)
	}

	switch {
	case resp.StatusCode >= 500 || resp.StatusCode == http.StatusTooManyRequests:
		log.Printf("[payment][wompi] gateway unavailable reference=%s status=%d", reference, resp.StatusCode)
		return entities.TransactionStatus{}, fmt.Errorf("%w: http %d", interfaces.ErrGatewayUnavailable, resp.StatusCode)
	case resp.StatusCode >= 400:
		log.Printf("[payment][wompi] gateway rejected reference=%s status=%d", reference, resp.StatusCode)
		return entities.TransactionStatus{}, fmt.Errorf("%w: http %d", interfaces.ErrGatewayRejected, resp.StatusCode)
	}

	var envelope wompiTransactionEnvelope
	if err := json.Unmarshal(body, &envelope); err != nil {
		log.Printf("[payment][wompi] response unmarshal failed reference=%s err=%v", reference, err)
		return entities.TransactionStatus{}, fmt.Errorf("%w: %v", interfaces.ErrGatewayProtocolError, err)
	}
	data := envelope.Data
	if data == nil || data.ID == nil || data.Status == nil || data.AmountInCents == nil || data.Currency == nil {
		log.Printf("[payment][wompi] response missing required fields reference=%s", reference)
		return entities.TransactionStatus{}, fmt.Errorf("%w: missing required fields", interfaces.ErrGatewayProtocolError)
	}
	if *data.AmountInCents < 0 {
		return entities.TransactionStatus{}, fmt.Errorf("%w: negative amount", interfaces.ErrGatewayProtocolError)
	}

	return entities.TransactionStatus{
		Reference:   *data.ID,
		State:       mapWompiStatus(*data.Status),
		AmountCents: *data.AmountInCents,
		Currency:    *data.Currency,
		Raw:         json.RawMessage(body),
	}, nil
}

// mapWompiStatus is total: Wompi vocabulary the client does not know maps to
// ERROR instead of failing the lookup.
func mapWompiStatus(status string) entities.TransactionState {
	switch strings.ToUpper(strings.TrimSpace(status)) {
	case "PENDING":
		return entities.TransactionStatePending
	case "APPROVED":
		return entities.TransactionStateApproved
	case "DECLINED":
		return entities.TransactionStateDeclined
	case "VOIDED":
		return entities.TransactionStateVoided
	case "ERROR":
		return entities.TransactionStateError
	default:
		log.Printf("[payment][wompi] unknown gateway status %q mapped to ERROR", status)
		return entities.TransactionStateError
	}
}
