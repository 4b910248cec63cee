package utils

import (
	"encoding/json"
	"strings"
)

// PaymentInfo is the structured payload the payment confirmation flow sends
// to invoice checkout.
type PaymentInfo struct {
	Method    string `json:"method"`
	Reference string `json:"reference,omitempty"`
	Note      string `json:"note,omitempty"`
}

// ParsePaymentInfo decodes a payment payload. The payload is either a JSON
// object {method, reference, note} or a bare method string like "CASH";
// anything that doesn't parse as the former is treated as the latter.
func ParsePaymentInfo(raw string) PaymentInfo {
	raw = strings.TrimSpace(raw)
	if strings.HasPrefix(raw, "{") {
		var info PaymentInfo
		if err := json.Unmarshal([]byte(raw), &info); err == nil && info.Method != "" {
			return info
		}
	}
	return PaymentInfo{Method: raw}
}
