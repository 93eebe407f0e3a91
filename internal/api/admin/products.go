package admin

import (
	"net/http"

	"storefront-app/database"
	"storefront-app/internal/domain/catalog"

	"github.com/gin-gonic/gin"
)

type productInput struct {
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description"`
	BasePrice   float64 `json:"base_price" binding:"required,gt=0"`
	Category    string  `json:"category"`
	ImageURL    string  `json:"image_url"`
	Stock       int     `json:"stock"`
	IsActive    *bool   `json:"is_active"`
}

// GET /admin/products — includes inactive products, unlike the public catalog.
func ListProducts(c *gin.Context) {
	var products []catalog.Product
	if err := database.DB.Order("created_at DESC").Find(&products).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load products"})
		return
	}
	c.JSON(http.StatusOK, products)
}

// POST /admin/products
func CreateProduct(c *gin.Context) {
	var input productInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	product := catalog.Product{
		Name:        input.Name,
		Description: input.Description,
		BasePrice:   input.BasePrice,
		Category:    input.Category,
		ImageURL:    input.ImageURL,
		Stock:       input.Stock,
		IsActive:    true,
	}
	if input.IsActive != nil {
		product.IsActive = *input.IsActive
	}

	if err := database.DB.Create(&product).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create product"})
		return
	}

	c.JSON(http.StatusCreated, product)
}

// PUT /admin/products/:id
func UpdateProduct(c *gin.Context) {
	var product catalog.Product
	if err := database.DB.First(&product, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}

	var input productInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updates := map[string]interface{}{
		"name":        input.Name,
		"description": input.Description,
		"base_price":  input.BasePrice,
		"category":    input.Category,
		"image_url":   input.ImageURL,
		"stock":       input.Stock,
	}
	if input.IsActive != nil {
		updates["is_active"] = *input.IsActive
	}

	if err := database.DB.Model(&product).Updates(updates).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update product"})
		return
	}

	c.JSON(http.StatusOK, product)
}

// DELETE /admin/products/:id
func DeleteProduct(c *gin.Context) {
	res := database.DB.Delete(&catalog.Product{}, c.Param("id"))
	if res.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete product"})
		return
	}
	if res.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Product deleted"})
}
