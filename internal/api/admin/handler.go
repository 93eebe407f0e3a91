package admin

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"storefront-app/database"
	"storefront-app/internal/domain/loyalty"
	"storefront-app/internal/domain/orders"
	"storefront-app/internal/domain/users"

	"github.com/gin-gonic/gin"
)

var ladder = loyalty.DefaultLadder()

type AdminUser struct {
	ID             uint    `json:"id"`
	Name           string  `json:"name"`
	Email          string  `json:"email"`
	Phone          string  `json:"phone"`
	Role           string  `json:"role"`
	TotalSpent     float64 `json:"total_spent"`
	WalletBalance  float64 `json:"wallet_balance"`
	IsStarCenter   bool    `json:"is_star_center"`
	TierName       string  `json:"tier_name"`
	TierLevel      int     `json:"tier_level"`
	ReferralCode   *string `json:"referral_code,omitempty"`
	ReferredByCode *string `json:"referred_by_code,omitempty"`
}

type AdminStats struct {
	TotalUsers     int     `json:"total_users"`
	TotalOrders    int     `json:"total_orders"`
	PendingOrders  int     `json:"pending_orders"`
	TotalRevenue   float64 `json:"total_revenue"`
	RecentRevenue  float64 `json:"recent_revenue"`
	TotalProducts  int     `json:"total_products"`
	CommissionPaid float64 `json:"commission_paid"`
}

func GetAdminStats(c *gin.Context) {
	var stats AdminStats

	var totalUsers, totalOrders, pendingOrders, totalProducts int64
	var totalRevenue, recentRevenue, commissionPaid float64

	database.DB.Table("users").Count(&totalUsers)
	database.DB.Model(&orders.Order{}).Count(&totalOrders)
	database.DB.Model(&orders.Order{}).Where("status = ?", orders.StatusPendingPayment).Count(&pendingOrders)
	database.DB.Table("products").Count(&totalProducts)

	// Revenue counts completed orders only; pending and cancelled never
	// contribute.
	database.DB.Model(&orders.Order{}).
		Where("status = ?", orders.StatusCompleted).
		Select("COALESCE(SUM(total_amount), 0)").Scan(&totalRevenue)

	thirtyDaysAgo := time.Now().AddDate(0, 0, -30)
	database.DB.Model(&orders.Order{}).
		Where("status = ? AND updated_at >= ?", orders.StatusCompleted, thirtyDaysAgo).
		Select("COALESCE(SUM(total_amount), 0)").Scan(&recentRevenue)

	database.DB.Table("commissions").
		Select("COALESCE(SUM(amount), 0)").Scan(&commissionPaid)

	stats.TotalUsers = int(totalUsers)
	stats.TotalOrders = int(totalOrders)
	stats.PendingOrders = int(pendingOrders)
	stats.TotalProducts = int(totalProducts)
	stats.TotalRevenue = totalRevenue
	stats.RecentRevenue = recentRevenue
	stats.CommissionPaid = commissionPaid

	c.JSON(http.StatusOK, stats)
}

// GET /admin/users?q=...
func ListAllUsers(c *gin.Context) {
	q := database.DB.Order("created_at DESC")
	if search := c.Query("q"); search != "" {
		like := "%" + search + "%"
		q = q.Where("name ILIKE ? OR email ILIKE ? OR referral_code ILIKE ?", like, like, like)
	}

	var all []users.User
	if err := q.Find(&all).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load users"})
		return
	}

	adminUsers := make([]AdminUser, 0, len(all))
	for _, u := range all {
		spent := u.TotalSpent
		if spent < 0 {
			spent = 0
		}
		tier, err := ladder.Resolve(spent, u.IsStarCenter)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to resolve tier"})
			return
		}

		adminUsers = append(adminUsers, AdminUser{
			ID:             u.ID,
			Name:           u.Name,
			Email:          u.Email,
			Phone:          u.Phone,
			Role:           u.Role,
			TotalSpent:     u.TotalSpent,
			WalletBalance:  u.WalletBalance,
			IsStarCenter:   u.IsStarCenter,
			TierName:       tier.Name,
			TierLevel:      tier.Level,
			ReferralCode:   u.ReferralCode,
			ReferredByCode: u.ReferredByCode,
		})
	}

	c.JSON(http.StatusOK, adminUsers)
}

// POST /admin/users/:id/star-center — toggle the tier override flag.
func ToggleStarCenter(c *gin.Context) {
	var user users.User
	if err := database.DB.First(&user, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	newValue := !user.IsStarCenter
	if err := database.DB.Model(&users.User{}).
		Where("id = ?", user.ID).
		Update("is_star_center", newValue).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update user"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"id": user.ID, "is_star_center": newValue})
}

// POST /admin/users/:id/reset — zero out spend and wallet (support tooling).
// The only writer of total_spent besides order settlement.
func ResetAccount(c *gin.Context) {
	res := database.DB.Model(&users.User{}).
		Where("id = ?", c.Param("id")).
		Updates(map[string]interface{}{
			"total_spent":    0,
			"wallet_balance": 0,
		})
	if res.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to reset account"})
		return
	}
	if res.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Account reset"})
}

// GET /admin/orders
func ListAllOrders(c *gin.Context) {
	q := database.DB.Preload("Items").Preload("User").Order("created_at DESC")
	if status := c.Query("status"); status != "" {
		q = q.Where("status = ?", status)
	}

	var all []orders.Order
	if err := q.Find(&all).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load orders"})
		return
	}

	c.JSON(http.StatusOK, all)
}

// POST /admin/orders/:id/approve — settle a pending order: complete it,
// accrue the buyer's spend, pay the one-level referral commission.
func ApproveOrder(c *gin.Context) {
	orderID, ok := orderIDParam(c)
	if !ok {
		return
	}

	approved, err := orders.Approve(database.DB, orderID)
	if err != nil {
		writeSettlementError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"order_id":       approved.ID,
		"status":         approved.Status,
		"invoice_number": approved.InvoiceNumber,
	})
}

// POST /admin/orders/:id/reject
func RejectOrder(c *gin.Context) {
	orderID, ok := orderIDParam(c)
	if !ok {
		return
	}

	rejected, err := orders.Reject(database.DB, orderID)
	if err != nil {
		writeSettlementError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"order_id": rejected.ID,
		"status":   rejected.Status,
	})
}

func orderIDParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order id"})
		return 0, false
	}
	return uint(id), true
}

func writeSettlementError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, orders.ErrOrderNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
	case errors.Is(err, orders.ErrInvalidStateTransition):
		c.JSON(http.StatusConflict, gin.H{"error": "Order is not awaiting payment"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Settlement failed"})
	}
}
