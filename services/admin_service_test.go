package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToggleAvailabilityTwiceRestoresState(t *testing.T) {
	ctx := context.Background()
	st := newTestStore()
	admin := NewAdminService(st)
	menu := NewMenuService(st)

	assert.False(t, menu.IsUnavailable(ctx, 5))

	assert.True(t, admin.ToggleAvailability(ctx, 5))
	assert.True(t, menu.IsUnavailable(ctx, 5))

	assert.False(t, admin.ToggleAvailability(ctx, 5))
	assert.False(t, menu.IsUnavailable(ctx, 5))
}

func TestUnavailableSetPersists(t *testing.T) {
	ctx := context.Background()
	st := newTestStore()

	NewAdminService(st).ToggleAvailability(ctx, 3)
	NewAdminService(st).ToggleAvailability(ctx, 7)

	assert.ElementsMatch(t, []int{3, 7}, NewAdminService(st).Unavailable(ctx))
}

func TestWhatsAppNumberRoundTrip(t *testing.T) {
	ctx := context.Background()
	admin := NewAdminService(newTestStore())

	assert.Empty(t, admin.WhatsAppNumber(ctx))

	admin.SetWhatsAppNumber(ctx, "2348031112222")
	assert.Equal(t, "2348031112222", admin.WhatsAppNumber(ctx))

	admin.SetWhatsAppNumber(ctx, "")
	assert.Empty(t, admin.WhatsAppNumber(ctx))
}
