package users

import (
	"time"
)

type User struct {
	ID           uint `gorm:"primaryKey"`
	Name         string
	Email        string  `gorm:"not null;uniqueIndex:idx_users_email"`
	Password     *string `gorm:"" json:"-"`
	AuthProvider string  `gorm:"type:varchar(20);not null;default:'local'"`
	GoogleSub    *string `gorm:"uniqueIndex:idx_users_google_sub" json:"-"`
	Phone        string
	Dob          string
	Role         string

	// Loyalty: cumulative spend drives the tier; only order settlement (and
	// the admin reset tool) ever writes TotalSpent.
	TotalSpent   float64 `gorm:"not null;default:0"`
	IsStarCenter bool    `gorm:"not null;default:false"`

	// Referral: ReferralCode is this user's own public code; ReferredByCode
	// is the (unvalidated) code entered at registration, resolved only when
	// an order settles.
	ReferralCode   *string `gorm:"uniqueIndex:idx_users_referral_code"`
	ReferredByCode *string `gorm:"column:referred_by_code"`
	WalletBalance  float64 `gorm:"not null;default:0"`

	CreatedAt time.Time
	UpdatedAt time.Time
}
