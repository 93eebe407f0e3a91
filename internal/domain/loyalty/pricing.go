package loyalty

import (
	"fmt"
	"math"
)

// Quote is a tier-discounted price breakdown for one base price.
type Quote struct {
	BasePrice       float64 `json:"base_price"`
	FinalPrice      float64 `json:"final_price"`
	DiscountAmount  float64 `json:"discount_amount"`
	DiscountPercent float64 `json:"discount_percent"`
}

// RoundAmount rounds to the whole rupiah, half up. Every price and commission
// in the app goes through this exactly once so screens never disagree by a
// rupiah.
func RoundAmount(v float64) float64 {
	return math.Floor(v + 0.5)
}

// ApplyTier computes the discounted price for a base price under a tier.
// FinalPrice + DiscountAmount always equals BasePrice exactly: the discount
// is rounded and the final price derived by subtraction.
func ApplyTier(basePrice float64, tier Tier) (Quote, error) {
	if basePrice < 0 {
		return Quote{}, fmt.Errorf("%w: negative base price %v", ErrInvalidArgument, basePrice)
	}

	discount := RoundAmount(basePrice * tier.Discount)
	return Quote{
		BasePrice:       basePrice,
		FinalPrice:      basePrice - discount,
		DiscountAmount:  discount,
		DiscountPercent: tier.Discount * 100,
	}, nil
}
