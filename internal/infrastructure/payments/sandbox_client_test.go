package payments

import (
	"context"
	"errors"
	"testing"

	"campuspay/internal/domain/entities"
	"campuspay/internal/usecase/interfaces"

	"github.com/stretchr/testify/assert"
)

func TestSandboxClient_GetTransactionStatus(t *testing.T) {
	client := NewSandboxClient(50000, "cop")

	t.Run("empty reference", func(t *testing.T) {
		_, err := client.GetTransactionStatus(context.Background(), "")
		if !errors.Is(err, interfaces.ErrInvalidReference) {
			t.Fatalf("expected ErrInvalidReference, got %v", err)
		}
	})

	t.Run("unknown suffix is rejected", func(t *testing.T) {
		_, err := client.GetTransactionStatus(context.Background(), "ref-unknown")
		if !errors.Is(err, interfaces.ErrGatewayRejected) {
			t.Fatalf("expected ErrGatewayRejected, got %v", err)
		}
	})

	t.Run("suffix steers the state", func(t *testing.T) {
		cases := map[string]entities.TransactionState{
			"ref-pending":  entities.TransactionStatePending,
			"ref-declined": entities.TransactionStateDeclined,
			"ref-voided":   entities.TransactionStateVoided,
			"ref-error":    entities.TransactionStateError,
			"ref-anything": entities.TransactionStateApproved,
		}
		for ref, want := range cases {
			status, err := client.GetTransactionStatus(context.Background(), ref)
			if err != nil {
				t.Fatalf("%s: unexpected error: %v", ref, err)
			}
			assert.Equal(t, want, status.State, ref)
			assert.Equal(t, ref, status.Reference)
			assert.Equal(t, "COP", status.Currency)
		}
	})

	t.Run("mismatch suffix reports a wrong amount", func(t *testing.T) {
		status, err := client.GetTransactionStatus(context.Background(), "ref-mismatch")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		assert.Equal(t, entities.TransactionStateApproved, status.State)
		assert.Equal(t, int64(50500), status.AmountCents)
	})

	t.Run("defaults apply when construction values are empty", func(t *testing.T) {
		c := NewSandboxClient(0, "")
		status, err := c.GetTransactionStatus(context.Background(), "ref-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		assert.Equal(t, int64(50000), status.AmountCents)
		assert.Equal(t, "COP", status.Currency)
	})
}
