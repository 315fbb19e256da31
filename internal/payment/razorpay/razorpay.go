// Package razorpay adapts the Razorpay orders API and its checkout signature scheme.
package razorpay

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"
	"trekBooker/internal/payment"

	rzp "github.com/razorpay/razorpay-go"
)

// OrderCreator is the part of the Razorpay SDK the adapter calls.
type OrderCreator interface {
	Create(data map[string]interface{}, extraHeaders map[string]string) (map[string]interface{}, error)
}

type Client struct {
	orders    OrderCreator
	keyID     string
	keySecret string
	timeout   time.Duration
}

func New(keyID, keySecret string, timeout time.Duration) *Client {
	return NewWithOrders(rzp.NewClient(keyID, keySecret).Order, keyID, keySecret, timeout)
}

func NewWithOrders(orders OrderCreator, keyID, keySecret string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	return &Client{
		orders:    orders,
		keyID:     keyID,
		keySecret: keySecret,
		timeout:   timeout,
	}
}

type createResult struct {
	body map[string]interface{}
	err  error
}

// CreateOrder registers an order for amountMinor (paise) and waits at most the configured
// timeout. Any failure is reported as payment.ErrGatewayUnavailable.
func (c *Client) CreateOrder(ctx context.Context, amountMinor int64, currency, receipt string, notes map[string]string) (payment.Order, error) {
	const op = "payment.razorpay.CreateOrder"

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	noteData := make(map[string]interface{}, len(notes))
	for k, v := range notes {
		noteData[k] = v
	}

	data := map[string]interface{}{
		"amount":   amountMinor,
		"currency": currency,
		"receipt":  receipt,
		"notes":    noteData,
	}

	done := make(chan createResult, 1)
	go func() {
		body, err := c.orders.Create(data, nil)
		done <- createResult{body: body, err: err}
	}()

	var res createResult
	select {
	case <-ctx.Done():
		return payment.Order{}, fmt.Errorf("%s: %w: %v", op, payment.ErrGatewayUnavailable, ctx.Err())
	case res = <-done:
	}

	if res.err != nil {
		return payment.Order{}, fmt.Errorf("%s: %w: %v", op, payment.ErrGatewayUnavailable, res.err)
	}

	id, _ := res.body["id"].(string)
	if id == "" {
		return payment.Order{}, fmt.Errorf("%s: %w: response without order id", op, payment.ErrGatewayUnavailable)
	}

	order := payment.Order{
		ID:       id,
		Amount:   amountMinor,
		Currency: currency,
		Receipt:  receipt,
		KeyID:    c.keyID,
	}
	if amount, ok := res.body["amount"].(float64); ok {
		order.Amount = int64(amount)
	}
	if cur, ok := res.body["currency"].(string); ok && cur != "" {
		order.Currency = cur
	}

	return order, nil
}

// VerifySignature checks the checkout signature: hex(HMAC-SHA256(secret, orderID|paymentID)).
func (c *Client) VerifySignature(orderID, paymentID, signature string) bool {
	if c.keySecret == "" || orderID == "" || paymentID == "" || signature == "" {
		return false
	}

	expected := Sign(c.keySecret, orderID, paymentID)

	return hmac.Equal([]byte(expected), []byte(signature))
}

func Sign(secret, orderID, paymentID string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(orderID + "|" + paymentID))

	return hex.EncodeToString(mac.Sum(nil))
}
