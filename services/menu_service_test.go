package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"foodhub-api/models"
)

func TestViewIsPure(t *testing.T) {
	ctx := context.Background()
	menu := NewMenuService(newTestStore())

	first := menu.View(ctx, "Rice", "rice", SortPriceAsc)
	second := menu.View(ctx, "Rice", "rice", SortPriceAsc)

	assert.Equal(t, first, second)
	assert.Len(t, models.MenuData, 16, "catalog must not be mutated by views")
}

func TestViewFiltersByCategory(t *testing.T) {
	ctx := context.Background()
	menu := NewMenuService(newTestStore())

	for _, item := range menu.View(ctx, "Drinks", "", SortPopularity) {
		assert.Equal(t, "Drinks", item.Category)
	}
	assert.Len(t, menu.View(ctx, "Drinks", "", SortPopularity), 4)
}

func TestViewAllKeepsEverything(t *testing.T) {
	ctx := context.Background()
	menu := NewMenuService(newTestStore())

	assert.Len(t, menu.View(ctx, "All", "", SortPopularity), len(models.MenuData))
	assert.Len(t, menu.View(ctx, "", "", SortPopularity), len(models.MenuData))
}

func TestViewSearchMatchesNameOrDescription(t *testing.T) {
	ctx := context.Background()
	menu := NewMenuService(newTestStore())

	names := func(views []MenuView) []string {
		var out []string
		for _, v := range views {
			out = append(out, v.Name)
		}
		return out
	}

	// substring of a name, different case
	assert.Contains(t, names(menu.View(ctx, "", "JOLLOF", SortPopularity)), "Jollof Rice")
	// substring that only appears in a description
	assert.Contains(t, names(menu.View(ctx, "", "hibiscus drink", SortPopularity)), "Zobo (Hibiscus)")
}

func TestViewEmptyResultIsValid(t *testing.T) {
	ctx := context.Background()
	menu := NewMenuService(newTestStore())

	assert.Empty(t, menu.View(ctx, "", "no such dish anywhere", SortPopularity))
}

func TestViewSortOrders(t *testing.T) {
	ctx := context.Background()
	menu := NewMenuService(newTestStore())

	asc := menu.View(ctx, "", "", SortPriceAsc)
	for i := 1; i < len(asc); i++ {
		assert.LessOrEqual(t, asc[i-1].Price, asc[i].Price)
	}

	desc := menu.View(ctx, "", "", SortPriceDesc)
	for i := 1; i < len(desc); i++ {
		assert.GreaterOrEqual(t, desc[i-1].Price, desc[i].Price)
	}

	popular := menu.View(ctx, "", "", SortPopularity)
	for i := 1; i < len(popular); i++ {
		assert.GreaterOrEqual(t, popular[i-1].PopularityScore, popular[i].PopularityScore)
	}
}

func TestViewSortTiesKeepCatalogOrder(t *testing.T) {
	// Fried Rice (id 2) and Meat Pie (id 9) share popularity 88; the catalog
	// lists Fried Rice first, so a stable sort must too.
	ctx := context.Background()
	menu := NewMenuService(newTestStore())

	popular := menu.View(ctx, "", "", SortPopularity)
	posFriedRice, posMeatPie := -1, -1
	for i, item := range popular {
		switch item.ID {
		case 2:
			posFriedRice = i
		case 9:
			posMeatPie = i
		}
	}
	require.GreaterOrEqual(t, posFriedRice, 0)
	require.GreaterOrEqual(t, posMeatPie, 0)
	assert.Less(t, posFriedRice, posMeatPie)
}

func TestViewAnnotatesAvailability(t *testing.T) {
	ctx := context.Background()
	st := newTestStore()
	menu := NewMenuService(st)
	admin := NewAdminService(st)

	admin.ToggleAvailability(ctx, 5)

	assert.True(t, menu.IsUnavailable(ctx, 5))
	for _, item := range menu.View(ctx, "", "", SortPopularity) {
		if item.ID == 5 {
			assert.True(t, item.Unavailable)
		} else {
			assert.False(t, item.Unavailable)
		}
	}
}

func TestItemLookup(t *testing.T) {
	ctx := context.Background()
	menu := NewMenuService(newTestStore())

	item, ok := menu.Item(ctx, 1)
	require.True(t, ok)
	assert.Equal(t, "Jollof Rice", item.Name)

	_, ok = menu.Item(ctx, 999)
	assert.False(t, ok)
}

func TestFeaturedItems(t *testing.T) {
	ctx := context.Background()
	menu := NewMenuService(newTestStore())

	featured := menu.Featured(ctx)
	require.NotEmpty(t, featured)
	for _, item := range featured {
		assert.True(t, item.Featured)
	}
}
