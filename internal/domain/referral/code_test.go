package referral

import (
	"fmt"
	"regexp"
	"strings"
	"testing"

	"storefront-app/internal/domain/users"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestMakeCode(t *testing.T) {
	codePattern := regexp.MustCompile(`^[A-ZX]{3}[0-9A-Z]{4}$`)

	cases := []struct {
		name       string
		wantPrefix string
	}{
		{"Budi Santoso", "BUD"},
		{"budi", "BUD"},
		{"Al", "ALX"},
		{"", "XXX"},
		{"99 Cats", "XXX"}, // non-letters become X
	}

	for _, tc := range cases {
		code := MakeCode(tc.name)
		assert.Len(t, code, 7, "name %q", tc.name)
		assert.Equal(t, tc.wantPrefix, code[:3], "name %q", tc.name)
		assert.Regexp(t, codePattern, code)
	}
}

func TestEnsureReferralCode(t *testing.T) {
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&users.User{}))

	u := users.User{Name: "Budi", Email: "budi@example.com", Role: "user"}
	require.NoError(t, db.Create(&u).Error)

	code, err := EnsureReferralCode(db, &u)
	require.NoError(t, err)
	assert.Equal(t, "BUD", code[:3])

	// Idempotent: second call returns the persisted code.
	again, err := EnsureReferralCode(db, &u)
	require.NoError(t, err)
	assert.Equal(t, code, again)

	var stored users.User
	require.NoError(t, db.First(&stored, u.ID).Error)
	require.NotNil(t, stored.ReferralCode)
	assert.Equal(t, code, *stored.ReferralCode)
}

func TestEnsureReferralCodeRequiresID(t *testing.T) {
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&users.User{}))

	u := users.User{Name: "Budi"}
	_, err = EnsureReferralCode(db, &u)
	assert.Error(t, err)
}
