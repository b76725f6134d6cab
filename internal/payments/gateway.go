package payments

import "context"

// Gateway defines the order-creation capability of a payment provider,
// so handlers can run against a test double without touching the network.
type Gateway interface {
	CreateOrder(ctx context.Context, req OrderRequest) (*Order, error)
}
