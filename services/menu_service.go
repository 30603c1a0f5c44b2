package services

import (
	"context"
	"sort"
	"strings"

	"foodhub-api/models"
	"foodhub-api/store"
)

// Sort keys accepted by the menu view.
const (
	SortPopularity = "popularity"
	SortPriceAsc   = "price-asc"
	SortPriceDesc  = "price-desc"
)

// MenuView is a catalog item annotated with its current availability.
type MenuView struct {
	models.MenuItem
	Unavailable bool `json:"unavailable"`
}

// MenuService serves read-only views over the fixed catalog. Filtering,
// searching and sorting never mutate the catalog; every call builds a fresh
// slice, so identical arguments always yield identical results.
type MenuService struct {
	store *store.Store
}

func NewMenuService(st *store.Store) *MenuService {
	return &MenuService{store: st}
}

// View applies filter, then search, then sort over the catalog.
// An empty or "All" category keeps every item; the search term matches
// case-insensitively against name or description; unknown sort keys fall back
// to popularity. Ties keep catalog order.
func (s *MenuService) View(ctx context.Context, category, search, sortBy string) []MenuView {
	unavailable := s.unavailableSet(ctx)

	items := make([]MenuView, 0, len(models.MenuData))
	term := strings.ToLower(strings.TrimSpace(search))
	for _, item := range models.MenuData {
		if category != "" && category != "All" && item.Category != category {
			continue
		}
		if term != "" &&
			!strings.Contains(strings.ToLower(item.Name), term) &&
			!strings.Contains(strings.ToLower(item.Description), term) {
			continue
		}
		items = append(items, MenuView{MenuItem: item, Unavailable: unavailable[item.ID]})
	}

	switch sortBy {
	case SortPriceAsc:
		sort.SliceStable(items, func(i, j int) bool { return items[i].Price < items[j].Price })
	case SortPriceDesc:
		sort.SliceStable(items, func(i, j int) bool { return items[i].Price > items[j].Price })
	default:
		sort.SliceStable(items, func(i, j int) bool { return items[i].PopularityScore > items[j].PopularityScore })
	}

	return items
}

// Featured returns the home-page items in catalog order.
func (s *MenuService) Featured(ctx context.Context) []MenuView {
	unavailable := s.unavailableSet(ctx)

	var featured []MenuView
	for _, item := range models.MenuData {
		if item.Featured {
			featured = append(featured, MenuView{MenuItem: item, Unavailable: unavailable[item.ID]})
		}
	}
	return featured
}

// Item looks up a single catalog entry. A miss means a stale or unknown id.
func (s *MenuService) Item(ctx context.Context, id int) (MenuView, bool) {
	item, ok := models.FindMenuItem(id)
	if !ok {
		return MenuView{}, false
	}
	return MenuView{MenuItem: item, Unavailable: s.IsUnavailable(ctx, id)}, true
}

func (s *MenuService) Categories() []models.Category {
	return models.Categories
}

// IsUnavailable reports whether the item is currently marked out of stock.
func (s *MenuService) IsUnavailable(ctx context.Context, id int) bool {
	return s.unavailableSet(ctx)[id]
}

func (s *MenuService) unavailableSet(ctx context.Context) map[int]bool {
	set := make(map[int]bool)
	for _, id := range s.store.LoadUnavailable(ctx) {
		set[id] = true
	}
	return set
}
