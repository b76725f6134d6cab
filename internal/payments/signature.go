package payments

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
)

// SignaturePayload builds the message Razorpay signs after checkout
// completes: order id and payment id joined by a single '|'. The format is
// fixed by the gateway's signing scheme and must match byte for byte.
func SignaturePayload(orderID, paymentID string) string {
	return orderID + "|" + paymentID
}

// ExpectedSignature computes the lowercase hex HMAC-SHA256 digest of the
// signature payload under the shared key secret.
func ExpectedSignature(secret, orderID, paymentID string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(SignaturePayload(orderID, paymentID)))
	return hex.EncodeToString(mac.Sum(nil))
}

// VerifySignature reports whether the signature supplied by the client
// matches the one we compute locally. Pure computation, no gateway call.
func VerifySignature(secret, orderID, paymentID, signature string) bool {
	want := ExpectedSignature(secret, orderID, paymentID)
	return hmac.Equal([]byte(want), []byte(signature))
}
