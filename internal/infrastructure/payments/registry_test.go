package payments

import (
	"errors"
	"testing"

	appconfig "campuspay/internal/infrastructure/config"
	"campuspay/internal/usecase/interfaces"

	"github.com/stretchr/testify/assert"
)

func TestNewRegistry(t *testing.T) {
	t.Run("no provider configured", func(t *testing.T) {
		_, err := NewRegistry(appconfig.Config{Provider: ""})
		if !errors.Is(err, interfaces.ErrNoProviderConfigured) {
			t.Fatalf("expected ErrNoProviderConfigured, got %v", err)
		}
	})

	t.Run("unknown provider", func(t *testing.T) {
		_, err := NewRegistry(appconfig.Config{Provider: "paypal"})
		if !errors.Is(err, interfaces.ErrNoProviderConfigured) {
			t.Fatalf("expected ErrNoProviderConfigured, got %v", err)
		}
	})

	t.Run("wompi without private key fails at boot", func(t *testing.T) {
		_, err := NewRegistry(appconfig.Config{Provider: "wompi", WompiBaseURL: "https://sandbox.wompi.co/v1"})
		if !errors.Is(err, interfaces.ErrNoProviderConfigured) {
			t.Fatalf("expected ErrNoProviderConfigured, got %v", err)
		}
	})

	t.Run("sandbox resolves", func(t *testing.T) {
		registry, err := NewRegistry(appconfig.Config{Provider: "Sandbox", SandboxAmountCents: 50000, SandboxCurrency: "COP"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		provider, err := registry.ActiveProvider()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		assert.Equal(t, "sandbox", provider.Name())
	})

	t.Run("wompi resolves with credentials", func(t *testing.T) {
		registry, err := NewRegistry(appconfig.Config{
			Provider:        "wompi",
			WompiBaseURL:    "https://sandbox.wompi.co/v1",
			WompiPrivateKey: "prv_test_key",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		provider, err := registry.ActiveProvider()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		assert.Equal(t, "wompi", provider.Name())
	})
}

func TestRegistry_ActiveProvider_NilSafe(t *testing.T) {
	var registry *Registry
	_, err := registry.ActiveProvider()
	if !errors.Is(err, interfaces.ErrNoProviderConfigured) {
		t.Fatalf("expected ErrNoProviderConfigured, got %v", err)
	}
}
