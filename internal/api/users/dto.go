package users

import "storefront-app/internal/domain/loyalty"

type MeResponse struct {
	User    UserDTO    `json:"user"`
	Loyalty LoyaltyDTO `json:"loyalty"`
}

type UserDTO struct {
	ID             uint    `json:"id"`
	Name           string  `json:"name"`
	Email          string  `json:"email"`
	Phone          string  `json:"phone,omitempty"`
	Role           string  `json:"role"`
	ReferralCode   *string `json:"referral_code,omitempty"`
	ReferredByCode *string `json:"referred_by_code,omitempty"`
	WalletBalance  float64 `json:"wallet_balance"`
}

type LoyaltyDTO struct {
	TotalSpent   float64       `json:"total_spent"`
	IsStarCenter bool          `json:"is_star_center"`
	CurrentTier  loyalty.Tier  `json:"current_tier"`
	NextTier     *loyalty.Tier `json:"next_tier,omitempty"`

	// Rupiah still to spend before the next tier; zero at the top.
	ToNextTier float64 `json:"to_next_tier"`
}
