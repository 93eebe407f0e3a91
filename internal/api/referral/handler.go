package referral

import (
	"net/http"
	"time"

	"storefront-app/database"
	"storefront-app/internal/domain/referral"
	"storefront-app/internal/domain/users"

	"github.com/gin-gonic/gin"
)

type DownlineDTO struct {
	ID       uint      `json:"id"`
	Name     string    `json:"name"`
	JoinedAt time.Time `json:"joined_at"`
}

type CommissionDTO struct {
	ID        uint      `json:"id"`
	FromUser  string    `json:"from_user"`
	Amount    float64   `json:"amount"`
	OrderID   uint      `json:"order_id"`
	CreatedAt time.Time `json:"created_at"`
}

// GET /referral — the referral dashboard: own code, wallet, direct downlines
// and the commission ledger.
func GetReferralSummary(c *gin.Context) {
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

	downlineDTOs := []DownlineDTO{}
	if user.ReferralCode != nil {
		var downlines []users.User
		if err := database.DB.
			Where("referred_by_code = ?", *user.ReferralCode).
			Order("created_at DESC").
			Find(&downlines).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load downlines"})
			return
		}
		for _, d := range downlines {
			downlineDTOs = append(downlineDTOs, DownlineDTO{ID: d.ID, Name: d.Name, JoinedAt: d.CreatedAt})
		}
	}

	var commissions []referral.Commission
	if err := database.DB.
		Where("upline_id = ?", userID).
		Order("created_at DESC").
		Find(&commissions).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load commissions"})
		return
	}

	commissionDTOs := make([]CommissionDTO, 0, len(commissions))
	var totalEarned float64
	for _, cm := range commissions {
		commissionDTOs = append(commissionDTOs, CommissionDTO{
			ID:        cm.ID,
			FromUser:  cm.FromUser,
			Amount:    cm.Amount,
			OrderID:   cm.OrderID,
			CreatedAt: cm.CreatedAt,
		})
		totalEarned += cm.Amount
	}

	c.JSON(http.StatusOK, gin.H{
		"referral_code":  user.ReferralCode,
		"wallet_balance": user.WalletBalance,
		"total_earned":   totalEarned,
		"downlines":      downlineDTOs,
		"commissions":    commissionDTOs,
	})
}
