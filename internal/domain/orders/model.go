package orders

import (
	"time"

	"storefront-app/internal/domain/users"
)

// Order status values. pending_payment is the only state an admin may act on;
// completed and cancelled are terminal.
const (
	StatusPendingPayment = "pending_payment"
	StatusProcessing     = "processing"
	StatusShipped        = "shipped"
	StatusCompleted      = "completed"
	StatusCancelled      = "cancelled"
)

type Order struct {
	ID     uint `gorm:"primaryKey"`
	UserID uint `gorm:"not null;index"`
	User   users.User

	Items []OrderItem `gorm:"foreignKey:OrderID"`

	ShippingAddress string
	Courier         string
	ShippingCost    float64

	// TotalAmount is frozen at checkout from tier-discounted line prices plus
	// shipping. Tier changes after checkout never reprice a placed order.
	TotalAmount float64 `gorm:"not null"`

	Status          string `gorm:"type:varchar(20);not null;default:'pending_payment';index"`
	PaymentProofURL string
	InvoiceNumber   *string `gorm:"uniqueIndex:idx_orders_invoice_number"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

type OrderItem struct {
	ID        uint `gorm:"primaryKey"`
	OrderID   uint `gorm:"not null;index"`
	ProductID uint
	Name      string
	ImageURL  string
	BasePrice float64
	UnitPrice float64 // tier-discounted price charged at checkout
	Qty       int
}
