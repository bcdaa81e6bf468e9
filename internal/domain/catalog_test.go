package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBookingLink_IsExpired(t *testing.T) {
	ttl := time.Hour
	created := time.Date(2024, 6, 10, 12, 0, 0, 0, time.Local)
	link := &BookingLink{CreatedAt: created}

	assert.False(t, link.IsExpired(created.Add(30*time.Minute), ttl))
	assert.False(t, link.IsExpired(created.Add(ttl), ttl), "exactly at the lifetime the link is still alive")
	assert.True(t, link.IsExpired(created.Add(ttl+time.Second), ttl))
}

func TestBookingLink_IsUsable(t *testing.T) {
	ttl := time.Hour
	created := time.Date(2024, 6, 10, 12, 0, 0, 0, time.Local)
	now := created.Add(10 * time.Minute)

	fresh := &BookingLink{CreatedAt: created}
	assert.True(t, fresh.IsUsable(now, ttl))

	used := &BookingLink{CreatedAt: created, Used: true}
	assert.False(t, used.IsUsable(now, ttl))

	stale := &BookingLink{CreatedAt: created}
	assert.False(t, stale.IsUsable(created.Add(2*time.Hour), ttl))
}

func TestParseRole(t *testing.T) {
	role, err := ParseRole("manager")
	assert.NoError(t, err)
	assert.Equal(t, RoleManager, role)

	role, err = ParseRole("shop")
	assert.NoError(t, err)
	assert.Equal(t, RoleShop, role)

	_, err = ParseRole("admin")
	assert.ErrorIs(t, err, ErrUnknownRole)
}
