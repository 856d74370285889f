package calc

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestSavingsPercent(t *testing.T) {
	assert.Equal(t, int64(20), SavingsPercent(decimal.RequireFromString("150.00"), decimal.RequireFromString("120.00")))
	assert.Equal(t, int64(33), SavingsPercent(decimal.RequireFromString("30.00"), decimal.RequireFromString("20.00")))
	assert.Equal(t, int64(0), SavingsPercent(decimal.RequireFromString("45.00"), decimal.RequireFromString("45.00")))
	assert.Equal(t, int64(0), SavingsPercent(decimal.Zero, decimal.RequireFromString("10.00")))
	assert.Equal(t, int64(0), SavingsPercent(decimal.RequireFromString("40.00"), decimal.RequireFromString("45.00")))
}
