package feesplit

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalculate(t *testing.T) {
	split := Calculate(100.0)
	assert.Equal(t, 10.0, split.Fee)
	assert.Equal(t, 90.0, split.ProviderAmount)
}

func TestCalculateRounding(t *testing.T) {
	// 10% от 99.99 = 9.999, округляется до 10.00
	split := Calculate(99.99)
	assert.Equal(t, 10.0, split.Fee)
	assert.InDelta(t, 89.99, split.ProviderAmount, 1e-9)
}

func TestCalculateZero(t *testing.T) {
	split := Calculate(0)
	assert.Equal(t, 0.0, split.Fee)
	assert.Equal(t, 0.0, split.ProviderAmount)
}

func TestSplitSumsToTotal(t *testing.T) {
	totals := []float64{0.01, 1, 33.33, 99.99, 100, 123.45, 1000.01, 99999.99}

	for _, total := range totals {
		split := Calculate(total)
		// Сумма долей равна исходной сумме без потерь на округлении
		assert.Equal(t, total, split.Fee+split.ProviderAmount, "total=%v", total)
		assert.GreaterOrEqual(t, split.Fee, 0.0)
		assert.GreaterOrEqual(t, split.ProviderAmount, 0.0)
	}
}
