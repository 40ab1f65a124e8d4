package money

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoundCurrency(t *testing.T) {
	assert.Equal(t, 2.68, RoundCurrency(2.675))
	assert.Equal(t, 224.0, RoundCurrency(224.00000000000003))
	assert.Equal(t, 0.0, RoundCurrency(0))
	assert.Equal(t, -2.67, RoundCurrency(-2.674))
	assert.Equal(t, 0.0, RoundCurrency(math.NaN()))
	assert.Equal(t, 0.0, RoundCurrency(math.Inf(1)))
	assert.Equal(t, 0.0, RoundCurrency(math.Inf(-1)))
}

func TestRoundCurrencyIdempotent(t *testing.T) {
	values := []float64{2.675, 0.005, 123.456, 99.999, -42.125, 1e9 + 0.555}
	for _, v := range values {
		once := RoundCurrency(v)
		assert.Equal(t, once, RoundCurrency(once), "value %v", v)
	}
}

func TestSanitizeGstRate(t *testing.T) {
	assert.Equal(t, 18.0, SanitizeGstRate(18))
	assert.Equal(t, 12.55, SanitizeGstRate(12.549))
	assert.Equal(t, 0.0, SanitizeGstRate(-5))
	assert.Equal(t, 0.0, SanitizeGstRate(math.NaN()))
	assert.Equal(t, 0.0, SanitizeGstRate(math.Inf(1)))
}

func TestSanitizeGstRateIdempotent(t *testing.T) {
	values := []float64{0, 5, 12.555, 18, 28.004, 99.999}
	for _, v := range values {
		once := SanitizeGstRate(v)
		assert.Equal(t, once, SanitizeGstRate(once), "value %v", v)
	}
}

func TestFormatCurrency(t *testing.T) {
	assert.Equal(t, "₹0.00", FormatCurrency(0))
	assert.Equal(t, "₹5.50", FormatCurrency(5.5))
	assert.Equal(t, "₹999.00", FormatCurrency(999))
	assert.Equal(t, "₹1,000.00", FormatCurrency(1000))
	assert.Equal(t, "₹12,345.68", FormatCurrency(12345.675))
	assert.Equal(t, "₹1,23,456.78", FormatCurrency(123456.78))
	assert.Equal(t, "₹1,23,45,678.90", FormatCurrency(12345678.9))
	assert.Equal(t, "-₹1,500.00", FormatCurrency(-1500))
}
