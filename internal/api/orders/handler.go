package orders

import (
	"fmt"
	"net/http"

	"storefront-app/config"
	"storefront-app/database"
	"storefront-app/internal/domain/catalog"
	"storefront-app/internal/domain/loyalty"
	"storefront-app/internal/domain/orders"
	"storefront-app/internal/domain/users"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

var ladder = loyalty.DefaultLadder()

type checkoutItem struct {
	ProductID uint `json:"product_id" binding:"required"`
	Qty       int  `json:"qty" binding:"required,min=1"`
}

type checkoutInput struct {
	Items           []checkoutItem `json:"items" binding:"required,min=1"`
	ShippingAddress string         `json:"shipping_address" binding:"required"`
	Courier         string         `json:"courier"`
	PaymentProofURL string         `json:"payment_proof_url" binding:"required"`
}

// POST /checkout
//
// Line prices are computed server-side from the buyer's CURRENT tier and the
// order total is frozen on the row. Tier changes after checkout never reprice
// a placed order.
func Checkout(c *gin.Context) {
	userID := c.GetUint("user_id")
	if userID == 0 {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var input checkoutInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var buyer users.User
	if err := database.DB.First(&buyer, userID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	spent := buyer.TotalSpent
	if spent < 0 {
		spent = 0
	}
	tier, err := ladder.Resolve(spent, buyer.IsStarCenter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to resolve tier"})
		return
	}

	var order orders.Order
	err = database.DB.Transaction(func(tx *gorm.DB) error {
		var items []orders.OrderItem
		var subtotal float64

		for _, in := range input.Items {
			var product catalog.Product
			if err := tx.First(&product, in.ProductID).Error; err != nil {
				return fmt.Errorf("product %d not found", in.ProductID)
			}
			if !product.IsActive {
				return fmt.Errorf("product %q is no longer available", product.Name)
			}

			quote, err := loyalty.ApplyTier(product.BasePrice, tier)
			if err != nil {
				return err
			}

			items = append(items, orders.OrderItem{
				ProductID: product.ID,
				Name:      product.Name,
				ImageURL:  product.ImageURL,
				BasePrice: product.BasePrice,
				UnitPrice: quote.FinalPrice,
				Qty:       in.Qty,
			})
			subtotal += quote.FinalPrice * float64(in.Qty)
		}

		order = orders.Order{
			UserID:          buyer.ID,
			Items:           items,
			ShippingAddress: input.ShippingAddress,
			Courier:         input.Courier,
			ShippingCost:    config.SHIPPING_COST,
			TotalAmount:     subtotal + config.SHIPPING_COST,
			Status:          orders.StatusPendingPayment,
			PaymentProofURL: input.PaymentProofURL,
		}
		return tx.Create(&order).Error
	})
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"order_id":     order.ID,
		"total_amount": order.TotalAmount,
		"status":       order.Status,
	})
}

// GET /orders — the caller's order history, newest first.
func ListMyOrders(c *gin.Context) {
	userID := c.GetUint("user_id")
	if userID == 0 {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var result []orders.Order
	if err := database.DB.
		Preload("Items").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&result).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load orders"})
		return
	}

	c.JSON(http.StatusOK, result)
}

// GET /orders/:id — owner or admin only (invoice view).
func GetOrder(c *gin.Context) {
	userID := c.GetUint("user_id")
	role := c.GetString("role")

	var order orders.Order
	if err := database.DB.Preload("Items").First(&order, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return
	}

	if order.UserID != userID && role != "admin" {
		c.JSON(http.StatusForbidden, gin.H{"error": "Access denied"})
		return
	}

	c.JSON(http.StatusOK, order)
}
