package loyalty

import (
	"errors"
	"fmt"
)

/*
	Loyalty tiers
	-------------
	- Responsible ONLY for:
	  • the static tier ladder
	  • resolving a user's effective tier from cumulative spend
	- No pricing here (see pricing.go), no persistence.
*/

var ErrInvalidArgument = errors.New("invalid argument")

type Tier struct {
	Level    int      `json:"level"`
	Name     string   `json:"name"`
	MinSpent float64  `json:"min_spent"`
	Discount float64  `json:"discount"` // fraction in [0,1)
	Benefits []string `json:"benefits"`
}

// Ladder is an immutable, ascending sequence of tiers plus the tier used as
// the star-center floor. Build it once at startup and inject it; resolvers
// never reach for globals.
type Ladder struct {
	tiers    []Tier
	override Tier
}

// NewLadder validates and freezes a tier ladder.
// overrideName picks the star-center floor tier (must exist in tiers).
func NewLadder(tiers []Tier, overrideName string) (*Ladder, error) {
	if len(tiers) == 0 {
		return nil, fmt.Errorf("%w: empty tier list", ErrInvalidArgument)
	}
	if tiers[0].MinSpent != 0 {
		return nil, fmt.Errorf("%w: first tier must have min_spent = 0", ErrInvalidArgument)
	}

	for i, t := range tiers {
		if t.Level != i+1 {
			return nil, fmt.Errorf("%w: tier levels must be 1..n in order, got level %d at position %d", ErrInvalidArgument, t.Level, i)
		}
		if t.Discount < 0 || t.Discount >= 1 {
			return nil, fmt.Errorf("%w: tier %q discount %v out of [0,1)", ErrInvalidArgument, t.Name, t.Discount)
		}
		if i > 0 && t.MinSpent <= tiers[i-1].MinSpent {
			return nil, fmt.Errorf("%w: tier %q min_spent must be greater than previous tier's", ErrInvalidArgument, t.Name)
		}
	}

	l := &Ladder{tiers: append([]Tier(nil), tiers...)}

	found := false
	for _, t := range l.tiers {
		if t.Name == overrideName {
			l.override = t
			found = true
			break
		}
	}
	if !found {
		return nil, fmt.Errorf("%w: override tier %q not in ladder", ErrInvalidArgument, overrideName)
	}

	return l, nil
}

// DefaultLadder is the production ladder. Amounts are rupiah.
func DefaultLadder() *Ladder {
	l, err := NewLadder([]Tier{
		{Level: 1, Name: "Starter", MinSpent: 0, Discount: 0.10, Benefits: []string{"Diskon Produk 10%"}},
		{Level: 2, Name: "Bronze", MinSpent: 2000000, Discount: 0.15, Benefits: []string{"Diskon Produk 15%"}},
		{Level: 3, Name: "Silver", MinSpent: 10000000, Discount: 0.20, Benefits: []string{"Diskon Produk 20%"}},
		{Level: 4, Name: "Gold", MinSpent: 20000000, Discount: 0.25, Benefits: []string{"Diskon Produk 25%"}},
		{Level: 5, Name: "Diamond", MinSpent: 50000000, Discount: 0.30, Benefits: []string{"Diskon Produk 30%"}},
	}, "Gold")
	if err != nil {
		// The default table is compiled in; a validation failure here is a bug.
		panic(err)
	}
	return l
}

// Resolve maps cumulative spend to the highest qualifying tier.
// Star centers are floored at the override tier (Gold) even with zero spend.
func (l *Ladder) Resolve(totalSpent float64, isStarCenter bool) (Tier, error) {
	if totalSpent < 0 {
		return Tier{}, fmt.Errorf("%w: negative total spent %v", ErrInvalidArgument, totalSpent)
	}

	effective := totalSpent
	if isStarCenter && effective < l.override.MinSpent {
		effective = l.override.MinSpent
	}

	// Highest threshold first, take the first match. The level-1 tier has
	// min_spent = 0, so this always terminates with a tier.
	for i := len(l.tiers) - 1; i >= 0; i-- {
		if effective >= l.tiers[i].MinSpent {
			return l.tiers[i], nil
		}
	}
	return l.tiers[0], nil
}

// Next returns the tier above the given level, or false at the top.
func (l *Ladder) Next(level int) (Tier, bool) {
	for _, t := range l.tiers {
		if t.Level == level+1 {
			return t, true
		}
	}
	return Tier{}, false
}

// ByLevel looks a tier up by its level number.
func (l *Ladder) ByLevel(level int) (Tier, bool) {
	for _, t := range l.tiers {
		if t.Level == level {
			return t, true
		}
	}
	return Tier{}, false
}

// Tiers returns a copy of the ladder for display (profile, admin screens).
func (l *Ladder) Tiers() []Tier {
	return append([]Tier(nil), l.tiers...)
}
