package loyalty

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveLadder(t *testing.T) {
	l := DefaultLadder()

	cases := []struct {
		name       string
		spent      float64
		starCenter bool
		wantName   string
		wantLevel  int
	}{
		{"zero spend is Starter", 0, false, "Starter", 1},
		{"just under Bronze stays Starter", 1999999, false, "Starter", 1},
		{"Bronze threshold exact", 2000000, false, "Bronze", 2},
		{"Silver threshold exact", 10000000, false, "Silver", 3},
		{"Gold threshold exact", 20000000, false, "Gold", 4},
		{"Diamond threshold exact", 50000000, false, "Diamond", 5},
		{"far above top stays Diamond", 999999999, false, "Diamond", 5},
		{"star center with zero spend is Gold", 0, true, "Gold", 4},
		{"star center under Gold is Gold", 19999999, true, "Gold", 4},
		{"star center at Gold unchanged", 20000000, true, "Gold", 4},
		{"star center above Gold keeps real tier", 50000000, true, "Diamond", 5},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			tier, err := l.Resolve(tc.spent, tc.starCenter)
			require.NoError(t, err)
			assert.Equal(t, tc.wantName, tier.Name)
			assert.Equal(t, tc.wantLevel, tier.Level)
		})
	}
}

func TestResolveRejectsNegativeSpend(t *testing.T) {
	l := DefaultLadder()
	_, err := l.Resolve(-1, false)
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestResolveMonotonic(t *testing.T) {
	l := DefaultLadder()

	spends := []float64{0, 1, 1999999, 2000000, 5000000, 9999999, 10000000, 19999999, 20000000, 49999999, 50000000, 80000000}
	prev := 0
	for _, s := range spends {
		tier, err := l.Resolve(s, false)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, tier.Level, prev, "spend %v", s)
		prev = tier.Level
	}
}

func TestStarCenterFloorMatchesGoldResolution(t *testing.T) {
	l := DefaultLadder()

	gold, err := l.Resolve(20000000, false)
	require.NoError(t, err)

	for _, s := range []float64{0, 100, 1999999, 10000000, 19999999} {
		boosted, err := l.Resolve(s, true)
		require.NoError(t, err)
		assert.Equal(t, gold.Level, boosted.Level, "spend %v", s)
	}
}

func TestNextTier(t *testing.T) {
	l := DefaultLadder()

	next, ok := l.Next(1)
	require.True(t, ok)
	assert.Equal(t, "Bronze", next.Name)

	_, ok = l.Next(5)
	assert.False(t, ok, "Diamond has no next tier")
}

func TestNewLadderValidation(t *testing.T) {
	base := func() []Tier {
		return []Tier{
			{Level: 1, Name: "A", MinSpent: 0, Discount: 0.1},
			{Level: 2, Name: "B", MinSpent: 100, Discount: 0.2},
		}
	}

	t.Run("valid", func(t *testing.T) {
		_, err := NewLadder(base(), "B")
		assert.NoError(t, err)
	})

	t.Run("empty", func(t *testing.T) {
		_, err := NewLadder(nil, "A")
		assert.ErrorIs(t, err, ErrInvalidArgument)
	})

	t.Run("first tier must start at zero", func(t *testing.T) {
		tiers := base()
		tiers[0].MinSpent = 5
		_, err := NewLadder(tiers, "B")
		assert.ErrorIs(t, err, ErrInvalidArgument)
	})

	t.Run("thresholds must increase", func(t *testing.T) {
		tiers := base()
		tiers[1].MinSpent = 0
		_, err := NewLadder(tiers, "B")
		assert.ErrorIs(t, err, ErrInvalidArgument)
	})

	t.Run("discount below one", func(t *testing.T) {
		tiers := base()
		tiers[1].Discount = 1.0
		_, err := NewLadder(tiers, "B")
		assert.ErrorIs(t, err, ErrInvalidArgument)
	})

	t.Run("unknown override tier", func(t *testing.T) {
		_, err := NewLadder(base(), "Platinum")
		assert.ErrorIs(t, err, ErrInvalidArgument)
	})
}
