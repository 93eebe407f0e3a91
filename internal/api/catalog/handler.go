package catalog

import (
	"net/http"

	"storefront-app/database"
	"storefront-app/internal/domain/catalog"
	"storefront-app/internal/domain/loyalty"
	"storefront-app/internal/domain/users"

	"github.com/gin-gonic/gin"
)

var ladder = loyalty.DefaultLadder()

// callerTier resolves the tier of the (optionally) authenticated caller.
// Anonymous callers get no tier and see base prices.
func callerTier(c *gin.Context) *loyalty.Tier {
	userID := c.GetUint("user_id")
	if userID == 0 {
		return nil
	}

	var user users.User
	if err := database.DB.First(&user, userID).Error; err != nil {
		return nil
	}

	spent := user.TotalSpent
	if spent < 0 {
		spent = 0
	}
	tier, err := ladder.Resolve(spent, user.IsStarCenter)
	if err != nil {
		return nil
	}
	return &tier
}

func toDTO(p catalog.Product, tier *loyalty.Tier) ProductDTO {
	dto := ProductDTO{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Category:    p.Category,
		ImageURL:    p.ImageURL,
		Stock:       p.Stock,
		BasePrice:   p.BasePrice,
		FinalPrice:  p.BasePrice,
	}
	if tier == nil {
		return dto
	}

	quote, err := loyalty.ApplyTier(p.BasePrice, *tier)
	if err != nil {
		return dto
	}
	dto.FinalPrice = quote.FinalPrice
	dto.DiscountAmount = quote.DiscountAmount
	dto.DiscountPercent = quote.DiscountPercent
	dto.TierName = tier.Name
	return dto
}

// GET /products
func ListProducts(c *gin.Context) {
	var products []catalog.Product
	if err := database.DB.Where("is_active = ?", true).Order("created_at DESC").Find(&products).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load products"})
		return
	}

	tier := callerTier(c)
	result := make([]ProductDTO, 0, len(products))
	for _, p := range products {
		result = append(result, toDTO(p, tier))
	}

	c.JSON(http.StatusOK, result)
}

// GET /products/:id
func GetProduct(c *gin.Context) {
	var product catalog.Product
	if err := database.DB.First(&product, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}
	if !product.IsActive {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}

	c.JSON(http.StatusOK, toDTO(product, callerTier(c)))
}

// GET /tiers — the full ladder for the membership/benefits screen.
func ListTiers(c *gin.Context) {
	c.JSON(http.StatusOK, ladder.Tiers())
}
