package referral

import "time"

// Commission is an append-only ledger row. Entries are created only when an
// order settles and are never updated or deleted.
type Commission struct {
	ID       uint   `gorm:"primaryKey"`
	UplineID uint   `gorm:"not null;index"`
	FromUser string // buyer display name at settlement time
	Amount   float64
	OrderID  uint `gorm:"not null;index"`

	CreatedAt time.Time
}
