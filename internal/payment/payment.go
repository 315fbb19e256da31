package payment

import "errors"

// ErrGatewayUnavailable marks failures a caller can retry: timeouts, transport errors,
// gateway-side 5xx.
var ErrGatewayUnavailable = errors.New("payment gateway unavailable")

// Order is the gateway-side record a checkout is started from.
type Order struct {
	ID       string `json:"id"`
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
	Receipt  string `json:"receipt"`
	KeyID    string `json:"keyId"`
}
