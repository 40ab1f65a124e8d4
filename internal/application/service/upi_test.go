package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeUpiID(t *testing.T) {
	assert.Equal(t, "shop@upi", SanitizeUpiID("  Shop@UPI  "))
	assert.Equal(t, "a.b-c@bank", SanitizeUpiID("a.b-c @ bank"))
	assert.Equal(t, "", SanitizeUpiID("   "))
}

func TestIsValidUpiID(t *testing.T) {
	assert.True(t, IsValidUpiID("shop@upi"))
	assert.True(t, IsValidUpiID("sharma.stores-1@okbank"))
	assert.False(t, IsValidUpiID("shop"))
	assert.False(t, IsValidUpiID("@bank"))
	assert.False(t, IsValidUpiID("shop@"))
	assert.False(t, IsValidUpiID("Shop@Upi")) // must be sanitized first
}

func TestBuildUpiURI(t *testing.T) {
	assert.Equal(t, "upi://pay?pa=shop@upi&pn=Bill&am=224.00", BuildUpiURI("shop@upi", 224))
	assert.Equal(t, "upi://pay?pa=shop@upi&pn=Bill&am=112.50", BuildUpiURI("  Shop@UPI ", 112.499999999))

	// Blank handle falls back to the default shop handle.
	assert.Equal(t, "upi://pay?pa=shop@upi&pn=Bill&am=10.00", BuildUpiURI("", 10))
}

func TestBuildQrURL(t *testing.T) {
	url := BuildQrURL("shop@upi", 224, 0)
	assert.Contains(t, url, "https://api.qrserver.com/v1/create-qr-code/?size=220x220&data=")
	assert.Contains(t, url, "upi%3A%2F%2Fpay%3Fpa%3Dshop%40upi")
}
