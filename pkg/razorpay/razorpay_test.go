package razorpay

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"testing"
)

func signPayload(orderID, paymentID, secret string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(orderID + "|" + paymentID))
	return hex.EncodeToString(mac.Sum(nil))
}

func TestVerify(t *testing.T) {
	const secret = "test_secret"

	tests := []struct {
		name      string
		orderID   string
		paymentID string
		signature string
		want      bool
	}{
		{
			name:      "valid signature",
			orderID:   "order_abc",
			paymentID: "pay_xyz",
			signature: signPayload("order_abc", "pay_xyz", secret),
			want:      true,
		},
		{
			name:      "tampered payment id",
			orderID:   "order_abc",
			paymentID: "pay_other",
			signature: signPayload("order_abc", "pay_xyz", secret),
			want:      false,
		},
		{
			name:      "wrong secret",
			orderID:   "order_abc",
			paymentID: "pay_xyz",
			signature: signPayload("order_abc", "pay_xyz", "other_secret"),
			want:      false,
		},
		{
			name:      "empty signature",
			orderID:   "order_abc",
			paymentID: "pay_xyz",
			signature: "",
			want:      false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := verify(tt.orderID, tt.paymentID, tt.signature, secret); got != tt.want {
				t.Errorf("verify() = %v, want %v", got, tt.want)
			}
		})
	}
}
