package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"foodhub-api/services"
)

type MenuController struct {
	Menu *services.MenuService
}

func NewMenuController(menu *services.MenuService) *MenuController {
	return &MenuController{Menu: menu}
}

// GetMenu serves the filter → search → sort view over the catalog. An empty
// result is valid and renders as an empty list.
func (c *MenuController) GetMenu(ctx *gin.Context) {
	category := ctx.Query("category")
	search := ctx.Query("search")
	sortBy := ctx.DefaultQuery("sort", services.SortPopularity)

	items := c.Menu.View(ctx.Request.Context(), category, search, sortBy)

	sendJSONResponse(ctx, http.StatusOK, gin.H{
		"items": items,
		"count": len(items),
	})
}

func (c *MenuController) GetCategories(ctx *gin.Context) {
	sendJSONResponse(ctx, http.StatusOK, gin.H{"categories": c.Menu.Categories()})
}

func (c *MenuController) GetFeatured(ctx *gin.Context) {
	sendJSONResponse(ctx, http.StatusOK, gin.H{"items": c.Menu.Featured(ctx.Request.Context())})
}

func (c *MenuController) GetMenuItem(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Invalid item ID")
		return
	}

	item, ok := c.Menu.Item(ctx.Request.Context(), id)
	if !ok {
		sendErrorResponse(ctx, http.StatusNotFound, msgItemNotFound)
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"item": item})
}
