package catalog

import "time"

type Product struct {
	ID          uint `gorm:"primaryKey"`
	Name        string
	Description string
	BasePrice   float64 `gorm:"not null"`
	Category    string
	ImageURL    string
	Stock       int
	IsActive    bool `gorm:"not null;default:true"`

	CreatedAt time.Time
	UpdatedAt time.Time
}
