package payments

import (
	"fmt"
	"log"
	"strings"

	appconfig "campuspay/internal/infrastructure/config"
	"campuspay/internal/usecase/interfaces"
)

// Registry holds the single provider client active for this process.
//
// The provider is resolved exactly once, at boot, from immutable
// configuration. Misconfiguration is a startup failure, not a per-request
// error: a process that cannot name its provider should not serve traffic.

type Registry struct {
	active interfaces.IProviderClient
}

var _ interfaces.IProviderRegistry = (*Registry)(nil)

func NewRegistry(cfg appconfig.Config) (*Registry, error) {
	name := strings.ToLower(strings.TrimSpace(cfg.Provider))

	var (
		client interfaces.IProviderClient
		err    error
	)
	switch name {
	case "wompi":
		client, err = NewWompiClient(cfg.WompiBaseURL, cfg.WompiPrivateKey, cfg.GatewayTimeout)
	case "mercadopago":
		client, err = NewMercadoPagoClient(cfg.MercadoPagoAccessToken)
	case "sandbox":
		client = NewSandboxClient(cfg.SandboxAmountCents, cfg.SandboxCurrency)
	case "":
		return nil, interfaces.ErrNoProviderConfigured
	default:
		return nil, fmt.Errorf("%w: unknown provider %q", interfaces.ErrNoProviderConfigured, cfg.Provider)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", interfaces.ErrNoProviderConfigured, err)
	}

	log.Printf("[payment][registry] active provider=%s", client.Name())
	return &Registry{active: client}, nil
}

func (r *Registry) ActiveProvider() (interfaces.IProviderClient, error) {
	if r == nil || r.active == nil {
		return nil, interfaces.ErrNoProviderConfigured
	}
	return r.active, nil
}
