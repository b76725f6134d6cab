package payments

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSignaturePayload(t *testing.T) {
	assert.Equal(t, "order_ABC|pay_XYZ", SignaturePayload("order_ABC", "pay_XYZ"))
}

func TestExpectedSignatureFixedVector(t *testing.T) {
	// HMAC-SHA256("sek_123", "order_ABC|pay_XYZ") as lowercase hex.
	const want = "f1d337c8015eb14453b77e001b18d703dc94c7d3eddcc7dbcaa545a586e13a89"

	assert.Equal(t, want, ExpectedSignature("sek_123", "order_ABC", "pay_XYZ"))
	assert.True(t, VerifySignature("sek_123", "order_ABC", "pay_XYZ", want))
	assert.False(t, VerifySignature("sek_123", "order_ABC", "pay_XYZ", "not-the-digest"))
	assert.False(t, VerifySignature("sek_999", "order_ABC", "pay_XYZ", want))
}

func TestVerifySignatureDeterministic(t *testing.T) {
	sig := ExpectedSignature("sek_123", "order_ABC", "pay_XYZ")
	for i := 0; i < 5; i++ {
		assert.True(t, VerifySignature("sek_123", "order_ABC", "pay_XYZ", sig))
	}
}

func TestVerifySignatureRejectsNearMisses(t *testing.T) {
	const (
		secret    = "rzp_secret_abc"
		orderID   = "order_123"
		paymentID = "pay_456"
	)
	sig := ExpectedSignature(secret, orderID, paymentID)

	flip := func(s string, i int) string {
		b := []byte(s)
		b[i] ^= 0x01
		return string(b)
	}

	for i := range orderID {
		assert.False(t, VerifySignature(secret, flip(orderID, i), paymentID, sig),
			"tampered orderID byte %d must not verify", i)
	}
	for i := range paymentID {
		assert.False(t, VerifySignature(secret, orderID, flip(paymentID, i), sig),
			"tampered paymentID byte %d must not verify", i)
	}
	for i := range sig {
		assert.False(t, VerifySignature(secret, orderID, paymentID, flip(sig, i)),
			"tampered signature byte %d must not verify", i)
	}
}
