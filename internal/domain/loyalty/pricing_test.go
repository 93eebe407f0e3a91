package loyalty

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyTierScenarios(t *testing.T) {
	l := DefaultLadder()

	starter, err := l.Resolve(0, false)
	require.NoError(t, err)

	q, err := ApplyTier(100000, starter)
	require.NoError(t, err)
	assert.Equal(t, float64(90000), q.FinalPrice)
	assert.Equal(t, float64(10000), q.DiscountAmount)
	assert.Equal(t, float64(10), q.DiscountPercent)

	gold, err := l.Resolve(0, true)
	require.NoError(t, err)

	q, err = ApplyTier(100000, gold)
	require.NoError(t, err)
	assert.Equal(t, float64(75000), q.FinalPrice)
	assert.Equal(t, float64(25000), q.DiscountAmount)
}

func TestApplyTierRounding(t *testing.T) {
	tier := Tier{Level: 1, Name: "Starter", Discount: 0.15}

	// 15% of 99999 = 14999.85 -> rounds half up to 15000
	q, err := ApplyTier(99999, tier)
	require.NoError(t, err)
	assert.Equal(t, float64(15000), q.DiscountAmount)
	assert.Equal(t, float64(84999), q.FinalPrice)
	assert.Equal(t, q.BasePrice, q.FinalPrice+q.DiscountAmount)
}

func TestApplyTierBounds(t *testing.T) {
	l := DefaultLadder()

	for _, tier := range l.Tiers() {
		for _, base := range []float64{0, 1, 999, 100000, 12345678} {
			q, err := ApplyTier(base, tier)
			require.NoError(t, err)
			assert.GreaterOrEqual(t, q.FinalPrice, float64(0), "tier %s base %v", tier.Name, base)
			assert.LessOrEqual(t, q.FinalPrice, base, "tier %s base %v", tier.Name, base)
		}
	}
}

func TestApplyTierRejectsNegativePrice(t *testing.T) {
	_, err := ApplyTier(-100, Tier{Discount: 0.1})
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestRoundAmount(t *testing.T) {
	assert.Equal(t, float64(0), RoundAmount(0.4))
	assert.Equal(t, float64(1), RoundAmount(0.5))
	assert.Equal(t, float64(1), RoundAmount(0.9))
	assert.Equal(t, float64(25000), RoundAmount(500000*0.05))
}
