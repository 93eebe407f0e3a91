package orders

import (
	"fmt"
	"regexp"
	"strings"
	"testing"
	"time"

	"storefront-app/internal/domain/referral"
	"storefront-app/internal/domain/users"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&users.User{},
		&Order{},
		&OrderItem{},
		&referral.Commission{},
	))
	return db
}

func strPtr(s string) *string { return &s }

func seedUser(t *testing.T, db *gorm.DB, u users.User) users.User {
	t.Helper()
	require.NoError(t, db.Create(&u).Error)
	return u
}

func seedPendingOrder(t *testing.T, db *gorm.DB, buyerID uint, total float64) Order {
	t.Helper()
	o := Order{
		UserID:       buyerID,
		ShippingCost: 20000,
		TotalAmount:  total,
		Status:       StatusPendingPayment,
	}
	require.NoError(t, db.Create(&o).Error)
	return o
}

func TestApprovePaysOneLevelCommission(t *testing.T) {
	db := openTestDB(t)

	upline := seedUser(t, db, users.User{Name: "Upline", Email: "up@example.com", Role: "user", ReferralCode: strPtr("ABC123")})
	buyer := seedUser(t, db, users.User{Name: "Budi", Email: "budi@example.com", Role: "user", ReferralCode: strPtr("BUD9999"), ReferredByCode: strPtr("ABC123")})
	order := seedPendingOrder(t, db, buyer.ID, 500000)

	approved, err := Approve(db, order.ID)
	require.NoError(t, err)

	assert.Equal(t, StatusCompleted, approved.Status)
	require.NotNil(t, approved.InvoiceNumber)
	assert.Regexp(t, regexp.MustCompile(`^INV/\d{8}/[0-9A-Z]{4}$`), *approved.InvoiceNumber)

	var gotBuyer users.User
	require.NoError(t, db.First(&gotBuyer, buyer.ID).Error)
	assert.Equal(t, float64(500000), gotBuyer.TotalSpent)

	var gotUpline users.User
	require.NoError(t, db.First(&gotUpline, upline.ID).Error)
	assert.Equal(t, float64(25000), gotUpline.WalletBalance)

	var entries []referral.Commission
	require.NoError(t, db.Find(&entries).Error)
	require.Len(t, entries, 1)
	assert.Equal(t, upline.ID, entries[0].UplineID)
	assert.Equal(t, float64(25000), entries[0].Amount)
	assert.Equal(t, order.ID, entries[0].OrderID)
	assert.Equal(t, "Budi", entries[0].FromUser)
}

func TestApproveTwiceCreditsOnce(t *testing.T) {
	db := openTestDB(t)

	upline := seedUser(t, db, users.User{Name: "Upline", Email: "up@example.com", Role: "user", ReferralCode: strPtr("UPL0001")})
	buyer := seedUser(t, db, users.User{Name: "Budi", Email: "budi@example.com", Role: "user", ReferredByCode: strPtr("UPL0001")})
	order := seedPendingOrder(t, db, buyer.ID, 100000)

	_, err := Approve(db, order.ID)
	require.NoError(t, err)

	_, err = Approve(db, order.ID)
	assert.ErrorIs(t, err, ErrInvalidStateTransition)

	var gotBuyer users.User
	require.NoError(t, db.First(&gotBuyer, buyer.ID).Error)
	assert.Equal(t, float64(100000), gotBuyer.TotalSpent, "spend must not double-apply")

	var gotUpline users.User
	require.NoError(t, db.First(&gotUpline, upline.ID).Error)
	assert.Equal(t, float64(5000), gotUpline.WalletBalance)

	var count int64
	require.NoError(t, db.Model(&referral.Commission{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestApproveWithoutUpline(t *testing.T) {
	db := openTestDB(t)

	buyer := seedUser(t, db, users.User{Name: "Organic", Email: "org@example.com", Role: "user"})
	order := seedPendingOrder(t, db, buyer.ID, 250000)

	approved, err := Approve(db, order.ID)
	require.NoError(t, err)
	assert.Equal(t, StatusCompleted, approved.Status)

	var gotBuyer users.User
	require.NoError(t, db.First(&gotBuyer, buyer.ID).Error)
	assert.Equal(t, float64(250000), gotBuyer.TotalSpent)

	var count int64
	require.NoError(t, db.Model(&referral.Commission{}).Count(&count).Error)
	assert.Equal(t, int64(0), count)
}

func TestApproveWithStaleReferralCode(t *testing.T) {
	db := openTestDB(t)

	buyer := seedUser(t, db, users.User{Name: "Budi", Email: "budi@example.com", Role: "user", ReferredByCode: strPtr("NOBODY1")})
	order := seedPendingOrder(t, db, buyer.ID, 250000)

	_, err := Approve(db, order.ID)
	require.NoError(t, err)

	var gotBuyer users.User
	require.NoError(t, db.First(&gotBuyer, buyer.ID).Error)
	assert.Equal(t, float64(250000), gotBuyer.TotalSpent, "stale code still settles the order")

	var count int64
	require.NoError(t, db.Model(&referral.Commission{}).Count(&count).Error)
	assert.Equal(t, int64(0), count)
}

func TestApproveMissingOrder(t *testing.T) {
	db := openTestDB(t)

	_, err := Approve(db, 9999)
	assert.ErrorIs(t, err, ErrOrderNotFound)
}

func TestApproveCancelledOrder(t *testing.T) {
	db := openTestDB(t)

	buyer := seedUser(t, db, users.User{Name: "Budi", Email: "budi@example.com", Role: "user"})
	order := seedPendingOrder(t, db, buyer.ID, 100000)

	_, err := Reject(db, order.ID)
	require.NoError(t, err)

	_, err = Approve(db, order.ID)
	assert.ErrorIs(t, err, ErrInvalidStateTransition)

	var gotBuyer users.User
	require.NoError(t, db.First(&gotBuyer, buyer.ID).Error)
	assert.Equal(t, float64(0), gotBuyer.TotalSpent)
}

func TestRejectPendingOrder(t *testing.T) {
	db := openTestDB(t)

	buyer := seedUser(t, db, users.User{Name: "Budi", Email: "budi@example.com", Role: "user", ReferredByCode: strPtr("ANY0000")})
	order := seedPendingOrder(t, db, buyer.ID, 100000)

	rejected, err := Reject(db, order.ID)
	require.NoError(t, err)
	assert.Equal(t, StatusCancelled, rejected.Status)
	assert.Nil(t, rejected.InvoiceNumber)

	// No spend, no commission on reject.
	var gotBuyer users.User
	require.NoError(t, db.First(&gotBuyer, buyer.ID).Error)
	assert.Equal(t, float64(0), gotBuyer.TotalSpent)

	var count int64
	require.NoError(t, db.Model(&referral.Commission{}).Count(&count).Error)
	assert.Equal(t, int64(0), count)
}

func TestRejectCompletedOrder(t *testing.T) {
	db := openTestDB(t)

	buyer := seedUser(t, db, users.User{Name: "Budi", Email: "budi@example.com", Role: "user"})
	order := seedPendingOrder(t, db, buyer.ID, 100000)

	_, err := Approve(db, order.ID)
	require.NoError(t, err)

	_, err = Reject(db, order.ID)
	assert.ErrorIs(t, err, ErrInvalidStateTransition)
}

func TestRejectMissingOrder(t *testing.T) {
	db := openTestDB(t)

	_, err := Reject(db, 12345)
	assert.ErrorIs(t, err, ErrOrderNotFound)
}

func TestNewInvoiceNumber(t *testing.T) {
	now := time.Date(2024, 1, 31, 10, 0, 0, 0, time.UTC)
	inv := NewInvoiceNumber(now)
	assert.Regexp(t, regexp.MustCompile(`^INV/20240131/[0-9A-Z]{4}$`), inv)
}
