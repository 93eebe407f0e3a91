package database

import (
	"fmt"
	"log"
	"os"

	"storefront-app/internal/domain/catalog"
	"storefront-app/internal/domain/orders"
	"storefront-app/internal/domain/referral"
	"storefront-app/internal/domain/users"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func InitDB() {
	dsn := os.Getenv("DB_URL")
	if dsn == "" {
		log.Fatal("❌ DB_URL not set")
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatal("❌ Failed to connect to database:", err)
	}

	DB = db

	// ✅ Auto-migrate all domain models
	if err := DB.AutoMigrate(
		// accounts
		&users.User{},

		// catalog
		&catalog.Product{},

		// orders
		&orders.Order{},
		&orders.OrderItem{},

		// referral ledger
		&referral.Commission{},
	); err != nil {
		log.Fatal("❌ AutoMigrate error:", err)
	}

	fmt.Println("✅ Connected and migrated successfully")
}
