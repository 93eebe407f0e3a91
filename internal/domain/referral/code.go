package referral

import (
	"crypto/rand"
	"fmt"
	"strings"

	"storefront-app/internal/domain/users"

	"gorm.io/gorm"
)

/*
	Referral codes
	--------------
	- Responsible ONLY for:
	  • generating a user's own referral code
	  • persisting it
	- Resolution of an upline from a code happens at order settlement.
*/

const codeAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// MakeCode derives a referral code from a display name.
// Example: "Budi Santoso" -> "BUD" + 4 random chars.
func MakeCode(name string) string {
	prefix := strings.ToUpper(strings.TrimSpace(name))
	if len(prefix) > 3 {
		prefix = prefix[:3]
	}
	out := []byte(prefix)
	for i, c := range out {
		if c < 'A' || c > 'Z' {
			out[i] = 'X'
		}
	}
	for len(out) < 3 {
		out = append(out, 'X')
	}

	suffix := make([]byte, 4)
	rand.Read(suffix)
	for i := range suffix {
		suffix[i] = codeAlphabet[int(suffix[i])%len(codeAlphabet)]
	}
	return string(out) + string(suffix)
}

// EnsureReferralCode ensures user.ReferralCode exists and is persisted.
// Must be called AFTER user has an ID (after Create).
//
// Pass db in, do NOT import storefront-app/database here (avoids import cycle).
func EnsureReferralCode(db *gorm.DB, user *users.User) (string, error) {
	if user == nil {
		return "", fmt.Errorf("user is nil")
	}
	if db == nil {
		return "", fmt.Errorf("db is nil")
	}
	if user.ReferralCode != nil && strings.TrimSpace(*user.ReferralCode) != "" {
		return *user.ReferralCode, nil
	}
	if user.ID == 0 {
		return "", fmt.Errorf("user ID missing (call EnsureReferralCode after Create)")
	}

	// The unique index on referral_code is the real guard; retry a few times
	// on collision.
	for attempt := 0; attempt < 5; attempt++ {
		code := MakeCode(user.Name)

		err := db.
			Model(&users.User{}).
			Where("id = ?", user.ID).
			Update("referral_code", code).Error
		if err == nil {
			user.ReferralCode = &code
			return code, nil
		}
		if attempt == 4 {
			return "", err
		}
	}
	return "", fmt.Errorf("could not generate referral code")
}
