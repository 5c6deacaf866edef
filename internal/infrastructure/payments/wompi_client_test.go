package payments

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"campuspay/internal/domain/entities"
	"campuspay/internal/usecase/interfaces"

	"github.com/stretchr/testify/assert"
)

func newWompiServer(t *testing.T, handler http.HandlerFunc) (*httptest.Server, *WompiClient) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client, err := NewWompiClient(srv.URL, "prv_test_key", 2*time.Second)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return srv, client
}

func TestNewWompiClient_RequiresPrivateKey(t *testing.T) {
	_, err := NewWompiClient("https://production.wompi.co/v1", "  ", 0)
	if !errors.Is(err, ErrMissingWompiPrivateKey) {
		t.Fatalf("expected ErrMissingWompiPrivateKey, got %v", err)
	}
}

func TestWompiClient_GetTransactionStatus(t *testing.T) {
	t.Run("empty reference never reaches the gateway", func(t *testing.T) {
		_, client := newWompiServer(t, func(w http.ResponseWriter, r *http.Request) {
			t.Fatal("unexpected gateway call")
		})
		_, err := client.GetTransactionStatus(context.Background(), "  ")
		if !errors.Is(err, interfaces.ErrInvalidReference) {
			t.Fatalf("expected ErrInvalidReference, got %v", err)
		}
	})

	t.Run("approved transaction", func(t *testing.T) {
		var gotPath, gotAuth string
		_, client := newWompiServer(t, func(w http.ResponseWriter, r *http.Request) {
			gotPath = r.URL.Path
			gotAuth = r.Header.Get("Authorization")
			fmt.Fprint(w, `{"data":{"id":"txn-1","status":"APPROVED","amount_in_cents":50000,"currency":"COP"}}`)
		})

		status, err := client.GetTransactionStatus(context.Background(), "txn-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		assert.Equal(t, "/transactions/txn-1", gotPath)
		assert.Equal(t, "Bearer prv_test_key", gotAuth)
		assert.Equal(t, entities.TransactionStateApproved, status.State)
		assert.Equal(t, int64(50000), status.AmountCents)
		assert.Equal(t, "COP", status.Currency)
		assert.Equal(t, "txn-1", status.Reference)
		assert.NotEmpty(t, status.Raw)
	})

	t.Run("404 is a rejection", func(t *testing.T) {
		_, client := newWompiServer(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		})
		_, err := client.GetTransactionStatus(context.Background(), "txn-missing")
		if !errors.Is(err, interfaces.ErrGatewayRejected) {
			t.Fatalf("expected ErrGatewayRejected, got %v", err)
		}
	})

	t.Run("500 is unavailable", func(t *testing.T) {
		_, client := newWompiServer(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		})
		_, err := client.GetTransactionStatus(context.Background(), "txn-1")
		if !errors.Is(err, interfaces.ErrGatewayUnavailable) {
			t.Fatalf("expected ErrGatewayUnavailable, got %v", err)
		}
	})

	t.Run("429 is unavailable", func(t *testing.T) {
		_, client := newWompiServer(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusTooManyRequests)
		})
		_, err := client.GetTransactionStatus(context.Background(), "txn-1")
		if !errors.Is(err, interfaces.ErrGatewayUnavailable) {
			t.Fatalf("expected ErrGatewayUnavailable, got %v", err)
		}
	})

	t.Run("malformed body is a protocol error", func(t *testing.T) {
		_, client := newWompiServer(t, func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, `{"data":`)
		})
		_, err := client.GetTransactionStatus(context.Background(), "txn-1")
		if !errors.Is(err, interfaces.ErrGatewayProtocolError) {
			t.Fatalf("expected ErrGatewayProtocolError, got %v", err)
		}
	})

	t.Run("missing fields are a protocol error", func(t *testing.T) {
		_, client := newWompiServer(t, func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, `{"data":{"id":"txn-1","status":"APPROVED"}}`)
		})
		_, err := client.GetTransactionStatus(context.Background(), "txn-1")
		if !errors.Is(err, interfaces.ErrGatewayProtocolError) {
			t.Fatalf("expected ErrGatewayProtocolError, got %v", err)
		}
	})

	t.Run("negative amount is a protocol error", func(t *testing.T) {
		_, client := newWompiServer(t, func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, `{"data":{"id":"txn-1","status":"APPROVED","amount_in_cents":-1,"currency":"COP"}}`)
		})
		_, err := client.GetTransactionStatus(context.Background(), "txn-1")
		if !errors.Is(err, interfaces.ErrGatewayProtocolError) {
			t.Fatalf("expected ErrGatewayProtocolError, got %v", err)
		}
	})

	t.Run("unknown status maps to ERROR state", func(t *testing.T) {
		_, client := newWompiServer(t, func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, `{"data":{"id":"txn-1","status":"FROZEN","amount_in_cents":50000,"currency":"COP"}}`)
		})
		status, err := client.GetTransactionStatus(context.Background(), "txn-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		assert.Equal(t, entities.TransactionStateError, status.State)
	})
}

func TestWompiClient_CircuitBreaker(t *testing.T) {
	t.Run("opens after consecutive unavailable failures", func(t *testing.T) {
		calls := 0
		_, client := newWompiServer(t, func(w http.ResponseWriter, r *http.Request) {
			calls++
			w.WriteHeader(http.StatusServiceUnavailable)
		})

		for i := 0; i < 5; i++ {
			_, err := client.GetTransactionStatus(context.Background(), "txn-1")
			if !errors.Is(err, interfaces.ErrGatewayUnavailable) {
				t.Fatalf("call %d: expected ErrGatewayUnavailable, got %v", i, err)
			}
		}

		// Breaker is now open: the next lookup must not hit the server.
		_, err := client.GetTransactionStatus(context.Background(), "txn-1")
		if !errors.Is(err, interfaces.ErrGatewayUnavailable) {
			t.Fatalf("expected ErrGatewayUnavailable, got %v", err)
		}
		assert.Equal(t, 5, calls)
	})

	t.Run("rejections do not trip the breaker", func(t *testing.T) {
		calls := 0
		_, client := newWompiServer(t, func(w http.ResponseWriter, r *http.Request) {
			calls++
			w.WriteHeader(http.StatusNotFound)
		})

		for i := 0; i < 8; i++ {
			_, err := client.GetTransactionStatus(context.Background(), "txn-missing")
			if !errors.Is(err, interfaces.ErrGatewayRejected) {
				t.Fatalf("call %d: expected ErrGatewayRejected, got %v", i, err)
			}
		}
		assert.Equal(t, 8, calls)
	})
}

func TestMapWompiStatus(t *testing.T) {
	cases := map[string]entities.TransactionState{
		"PENDING":  entities.TransactionStatePending,
		"approved": entities.TransactionStateApproved,
		"DECLINED": entities.TransactionStateDeclined,
		"VOIDED":   entities.TransactionStateVoided,
		"ERROR":    entities.TransactionStateError,
		"FROZEN":   entities.TransactionStateError,
		"":         entities.TransactionStateError,
	}
	for in, want := range cases {
		if got := mapWompiStatus(in); got != want {
			t.Fatalf("mapWompiStatus(%q) = %s, want %s", in, got, want)
		}
	}
}
