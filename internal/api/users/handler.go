package users

import (
	"net/http"

	"storefront-app/database"
	"storefront-app/internal/domain/loyalty"
	"storefront-app/internal/domain/users"

	"github.com/gin-gonic/gin"
)

var ladder = loyalty.DefaultLadder()

// GET /me
func GetCurrentUser(c *gin.Context) {
	userID := c.GetUint("user_id")
	if userID == 0 {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var user users.User
	if err := database.DB.First(&user, userID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	spent := user.TotalSpent
	if spent < 0 {
		spent = 0
	}
	tier, err := ladder.Resolve(spent, user.IsStarCenter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to resolve tier"})
		return
	}

	var nextTier *loyalty.Tier
	var toNext float64
	if next, ok := ladder.Next(tier.Level); ok {
		nextTier = &next
		toNext = next.MinSpent - spent
		if toNext < 0 {
			toNext = 0
		}
	}

	resp := MeResponse{
		User: UserDTO{
			ID:             user.ID,
			Name:           user.Name,
			Email:          user.Email,
			Phone:          user.Phone,
			Role:           user.Role,
			ReferralCode:   user.ReferralCode,
			ReferredByCode: user.ReferredByCode,
			WalletBalance:  user.WalletBalance,
		},
		Loyalty: LoyaltyDTO{
			TotalSpent:   user.TotalSpent,
			IsStarCenter: user.IsStarCenter,
			CurrentTier:  tier,
			NextTier:     nextTier,
			ToNextTier:   toNext,
		},
	}

	c.JSON(http.StatusOK, resp)
}
