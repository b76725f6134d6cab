package payments

import (
	"context"
	"fmt"
)

// Manager dispatches order creation to a named provider. Only Razorpay is
// registered today; the registry keeps adding another provider a one-liner.
type Manager struct {
	gateways map[string]Gateway
}

func NewManager() *Manager {
	return &Manager{gateways: make(map[string]Gateway)}
}

func (m *Manager) Register(name string, gateway Gateway) {
	m.gateways[name] = gateway
}

func (m *Manager) CreateOrder(ctx context.Context, provider string, req OrderRequest) (*Order, error) {
	gateway, ok := m.gateways[provider]
	if !ok {
		return nil, fmt.Errorf("gateway not registered: %s", provider)
	}
	return gateway.CreateOrder(ctx, req)
}
