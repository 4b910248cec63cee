package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParsePaymentInfo(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want PaymentInfo
	}{
		{
			name: "structured payload",
			raw:  `{"method":"TRANSFER","reference":"TX-42","note":"front desk"}`,
			want: PaymentInfo{Method: "TRANSFER", Reference: "TX-42", Note: "front desk"},
		},
		{
			name: "bare method string",
			raw:  "CASH",
			want: PaymentInfo{Method: "CASH"},
		},
		{
			name: "whitespace trimmed",
			raw:  "  CARD  ",
			want: PaymentInfo{Method: "CARD"},
		},
		{
			name: "json without method falls back to raw",
			raw:  `{"reference":"TX-42"}`,
			want: PaymentInfo{Method: `{"reference":"TX-42"}`},
		},
		{
			name: "malformed json falls back to raw",
			raw:  `{"method":`,
			want: PaymentInfo{Method: `{"method":`},
		},
		{
			name: "empty payload",
			raw:  "",
			want: PaymentInfo{},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ParsePaymentInfo(tc.raw))
		})
	}
}
