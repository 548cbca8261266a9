package payment

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEvent_ConfirmsPayment(t *testing.T) {
	s := &CheckoutSession{Metadata: map[string]string{MetadataCartCode: "abc"}}

	assert.True(t, (&Event{Type: EventCheckoutCompleted, Session: s}).ConfirmsPayment())
	assert.True(t, (&Event{Type: EventCheckoutAsyncPaymentSucceed, Session: s}).ConfirmsPayment())
	assert.False(t, (&Event{Type: "checkout.session.expired", Session: s}).ConfirmsPayment())
	assert.False(t, (&Event{Type: EventCheckoutCompleted}).ConfirmsPayment())
	assert.Equal(t, "abc", s.CartCode())
}
