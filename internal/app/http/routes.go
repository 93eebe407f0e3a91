package routes

import (
	adminapi "storefront-app/internal/api/admin"
	authapi "storefront-app/internal/api/auth"
	catalogapi "storefront-app/internal/api/catalog"
	ordersapi "storefront-app/internal/api/orders"
	referralapi "storefront-app/internal/api/referral"
	usersapi "storefront-app/internal/api/users"
	"storefront-app/internal/app/http/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// ✅ Apply input sanitization to public routes only
	public := r.Group("/")
	public.Use(middleware.SanitizeAndCleanInputMiddleware())

	public.POST("/register", authapi.Register)
	public.POST("/login", authapi.Login)

	public.GET("/auth/google", authapi.GoogleStart)
	public.GET("/auth/google/callback", authapi.GoogleCallback)

	// Catalog is public; logged-in callers get member prices
	browse := r.Group("/")
	browse.Use(middleware.OptionalAuthMiddleware())
	browse.GET("/products", catalogapi.ListProducts)
	browse.GET("/products/:id", catalogapi.GetProduct)
	browse.GET("/tiers", catalogapi.ListTiers)

	// Authenticated
	auth := r.Group("/")
	auth.Use(middleware.AuthMiddleware())
	auth.GET("/me", usersapi.GetCurrentUser)
	auth.POST("/change-password", authapi.ChangePassword)

	auth.POST("/checkout", middleware.SanitizeAndCleanInputMiddleware(), ordersapi.Checkout)
	auth.GET("/orders", ordersapi.ListMyOrders)
	auth.GET("/orders/:id", ordersapi.GetOrder)

	auth.GET("/referral", referralapi.GetReferralSummary)

	// Admin routes
	admin := r.Group("/admin")
	admin.Use(middleware.AuthMiddleware(), middleware.RequireRole("admin"))
	admin.GET("/dashboard", adminapi.GetAdminStats)
	admin.GET("/users", adminapi.ListAllUsers)
	admin.POST("/users/:id/star-center", adminapi.ToggleStarCenter)
	admin.POST("/users/:id/reset", adminapi.ResetAccount)

	admin.GET("/products", adminapi.ListProducts)
	admin.POST("/products", adminapi.CreateProduct)
	admin.PUT("/products/:id", adminapi.UpdateProduct)
	admin.DELETE("/products/:id", adminapi.DeleteProduct)

	admin.GET("/orders", adminapi.ListAllOrders)
	admin.POST("/orders/:id/approve", adminapi.ApproveOrder)
	admin.POST("/orders/:id/reject", adminapi.RejectOrder)
}
