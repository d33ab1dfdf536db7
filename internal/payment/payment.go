package payment

import "context"

// Intent is a client-confirmable payment handle. The client finishes the
// payment with ClientSecret; order creation does not wait for the outcome.
type Intent struct {
	ID           string
	ClientSecret string
	Amount       int64
	Currency     string
	Status       string
}

// Gateway is the external payment processor boundary. Amounts are in minor
// units of the shop's single currency (pence).
type Gateway interface {
	CreateIntent(ctx context.Context, amount int64, metadata map[string]string) (*Intent, error)
}
