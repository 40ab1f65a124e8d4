package service

import (
	"fmt"
	"net/url"
	"regexp"
	"strconv"
	"strings"

	"github.com/brightbreeze/billing-api/pkg/money"
)

// UPI deep-link text is generated for display only and never verified
// against any payment gateway.

var upiPattern = regexp.MustCompile(`^[a-z0-9._-]+@[a-z0-9.-]+$`)

// SanitizeUpiID strips whitespace and lowercases a raw UPI handle.
func SanitizeUpiID(raw string) string {
	return strings.ToLower(strings.Join(strings.Fields(raw), ""))
}

// IsValidUpiID reports whether a sanitized handle looks like a UPI ID.
func IsValidUpiID(upiID string) bool {
	return upiPattern.MatchString(upiID)
}

// BuildUpiURI builds the upi://pay deep link for an amount. An empty or
// unusable handle falls back to the default shop handle.
func BuildUpiURI(upiID string, amount float64) string {
	effective := SanitizeUpiID(upiID)
	if effective == "" {
		effective = DefaultSettings().UpiID
	}
	amountString := strconv.FormatFloat(money.RoundCurrency(amount), 'f', 2, 64)
	return fmt.Sprintf("upi://pay?pa=%s&pn=Bill&am=%s", effective, amountString)
}

// BuildQrURL returns a QR image URL encoding the UPI deep link.
func BuildQrURL(upiID string, amount float64, size int) string {
	if size <= 0 {
		size = 220
	}
	uri := BuildUpiURI(upiID, amount)
	return fmt.Sprintf("https://api.qrserver.com/v1/create-qr-code/?size=%dx%d&data=%s",
		size, size, url.QueryEscape(uri))
}
