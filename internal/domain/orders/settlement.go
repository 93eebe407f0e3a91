package orders

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"storefront-app/internal/domain/loyalty"
	"storefront-app/internal/domain/referral"
	"storefront-app/internal/domain/users"

	"gorm.io/gorm"
)

// CommissionRate is the flat one-level referral commission paid to the
// buyer's upline when an order settles.
const CommissionRate = 0.05

var (
	ErrOrderNotFound          = errors.New("order not found")
	ErrBuyerNotFound          = errors.New("buyer not found")
	ErrInvalidStateTransition = errors.New("order is not awaiting payment")
)

/*
	Order settlement
	----------------
	Approve and Reject are the only writers of order status, and Approve is
	the only writer of total_spent / wallet_balance outside admin tooling.

	The status flip is a conditional UPDATE guarded on the current status, so
	two admins racing to approve the same order cannot both get through: the
	loser sees zero rows affected and the whole transaction rolls back with
	ErrInvalidStateTransition. Balance changes are column-expression
	increments, never read-modify-write.
*/

// Approve settles a pending order: completes it with a fresh invoice number,
// accrues the total onto the buyer's spend, and pays the one-level referral
// commission if the buyer's stored code resolves to an upline.
//
// A referred_by_code that matches nobody is not an error; the order still
// completes, just without a commission.
func Approve(db *gorm.DB, orderID uint) (*Order, error) {
	var approved Order

	err := db.Transaction(func(tx *gorm.DB) error {
		now := time.Now()
		invNum := NewInvoiceNumber(now)

		res := tx.Model(&Order{}).
			Where("id = ? AND status = ?", orderID, StatusPendingPayment).
			Updates(map[string]interface{}{
				"status":         StatusCompleted,
				"invoice_number": invNum,
				"updated_at":     now,
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			// Lost the guard: either the order is gone or someone already
			// moved it out of pending_payment.
			var existing Order
			if err := tx.First(&existing, orderID).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return ErrOrderNotFound
				}
				return err
			}
			return fmt.Errorf("%w (status %q)", ErrInvalidStateTransition, existing.Status)
		}

		if err := tx.Preload("Items").First(&approved, orderID).Error; err != nil {
			return err
		}

		if err := tx.Model(&users.User{}).
			Where("id = ?", approved.UserID).
			Update("total_spent", gorm.Expr("total_spent + ?", approved.TotalAmount)).Error; err != nil {
			return err
		}

		var buyer users.User
		if err := tx.First(&buyer, approved.UserID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrBuyerNotFound
			}
			return err
		}

		if buyer.ReferredByCode == nil || strings.TrimSpace(*buyer.ReferredByCode) == "" {
			return nil
		}

		var upline users.User
		err := tx.Where("referral_code = ?", *buyer.ReferredByCode).First(&upline).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// Stale or mistyped code: silent no-commission outcome.
			return nil
		}
		if err != nil {
			return err
		}

		commission := loyalty.RoundAmount(approved.TotalAmount * CommissionRate)

		if err := tx.Model(&users.User{}).
			Where("id = ?", upline.ID).
			Update("wallet_balance", gorm.Expr("wallet_balance + ?", commission)).Error; err != nil {
			return err
		}

		entry := referral.Commission{
			UplineID: upline.ID,
			FromUser: buyerDisplayName(buyer),
			Amount:   commission,
			OrderID:  approved.ID,
		}
		return tx.Create(&entry).Error
	})
	if err != nil {
		return nil, err
	}
	return &approved, nil
}

// Reject cancels a pending order. Terminal, no other side effects.
func Reject(db *gorm.DB, orderID uint) (*Order, error) {
	var rejected Order

	err := db.Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&Order{}).
			Where("id = ? AND status = ?", orderID, StatusPendingPayment).
			Updates(map[string]interface{}{
				"status":     StatusCancelled,
				"updated_at": time.Now(),
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			var existing Order
			if err := tx.First(&existing, orderID).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return ErrOrderNotFound
				}
				return err
			}
			return fmt.Errorf("%w (status %q)", ErrInvalidStateTransition, existing.Status)
		}
		return tx.First(&rejected, orderID).Error
	})
	if err != nil {
		return nil, err
	}
	return &rejected, nil
}

func buyerDisplayName(u users.User) string {
	if strings.TrimSpace(u.Name) == "" {
		return "Anonymous User"
	}
	return u.Name
}
