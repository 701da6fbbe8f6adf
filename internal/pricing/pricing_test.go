package pricing

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lawncare/internal/domain"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestPriceMowingAtThreshold(t *testing.T) {
	c := NewCalculator()

	q, err := c.Price(domain.ServiceMowing, dec("0.1"))
	require.NoError(t, err)

	assert.True(t, q.Total.Equal(dec("30.00")), "got %s", q.Total)
	assert.True(t, q.Additional.IsZero())
}

func TestPriceMowingAboveThreshold(t *testing.T) {
	c := NewCalculator()

	// 30 + (1.1 - 0.1) * 70 = 100.00
	q, err := c.Price(domain.ServiceMowing, dec("1.1"))
	require.NoError(t, err)

	assert.True(t, q.Total.Equal(dec("100.00")), "got %s", q.Total)
	assert.True(t, q.Base.Equal(dec("30")))
	assert.True(t, q.Additional.Equal(dec("70.00")), "got %s", q.Additional)
}

func TestPriceCleanup(t *testing.T) {
	c := NewCalculator()

	// below threshold: base only
	q, err := c.Price(domain.ServiceCleanup, dec("0.5"))
	require.NoError(t, err)
	assert.True(t, q.Total.Equal(dec("125.00")), "got %s", q.Total)

	// 125 + (2.5 - 0.5) * 75 = 275.00
	q, err = c.Price(domain.ServiceCleanup, dec("2.5"))
	require.NoError(t, err)
	assert.True(t, q.Total.Equal(dec("275.00")), "got %s", q.Total)
}

func TestPriceRoundsToCents(t *testing.T) {
	c := NewCalculator()

	// 30 + (0.33 - 0.1) * 70 = 46.1
	q, err := c.Price(domain.ServiceMowing, dec("0.33"))
	require.NoError(t, err)
	assert.True(t, q.Total.Equal(dec("46.10")), "got %s", q.Total)
}

func TestPriceUnknownServiceType(t *testing.T) {
	c := NewCalculator()

	_, err := c.Price(domain.ServiceType("fertilizing"), dec("1.0"))
	assert.ErrorIs(t, err, ErrUnknownServiceType)
}

func TestPriceOutOfRange(t *testing.T) {
	c := NewCalculator()

	cases := []string{"0", "-1", "0.05", "2.6", "100"}
	for _, acres := range cases {
		_, err := c.Price(domain.ServiceMowing, dec(acres))
		assert.ErrorIs(t, err, ErrOutOfRange, "acres=%s", acres)
	}
}
