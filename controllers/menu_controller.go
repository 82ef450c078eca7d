package controllers

import (
	"github.com/Hike-12/BitNBuild25-TeamPony-sub000/pkg/resp"
	"github.com/Hike-12/BitNBuild25-TeamPony-sub000/services"
	"github.com/Hike-12/BitNBuild25-TeamPony-sub000/utils"

	"github.com/gin-gonic/gin"
)

type menuActiveRequest struct {
	IsActive *bool `json:"is_active" binding:"required"`
}

type MenuController struct {
	Catalog *services.CatalogService
}

func NewMenuController(catalog *services.CatalogService) *MenuController {
	return &MenuController{Catalog: catalog}
}

// GET /api/vendor/dashboard
func (ctl *MenuController) Dashboard(c *gin.Context) {
	data, err := ctl.Catalog.Dashboard(c.Request.Context(), utils.CurrentUserID(c))
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, gin.H{"dashboard_data": data})
}

// GET /api/vendor/menu-items
func (ctl *MenuController) ListItems(c *gin.Context) {
	items, err := ctl.Catalog.ListItems(c.Request.Context(), utils.CurrentUserID(c))
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, gin.H{"menu_items": items})
}

// POST /api/vendor/menu-items
func (ctl *MenuController) CreateItem(c *gin.Context) {
	var req services.CreateMenuItemInput
	if !bindJSON(c, &req) {
		return
	}
	item, err := ctl.Catalog.CreateItem(c.Request.Context(), utils.CurrentUserID(c), req)
	if err != nil {
		fail(c, err)
		return
	}
	resp.Created(c, gin.H{"menu_item": item})
}

// GET /api/vendor/daily-menus?date=YYYY-MM-DD
func (ctl *MenuController) ListMenus(c *gin.Context) {
	day, ok := queryDay(c, "date")
	if !ok {
		return
	}
	menus, err := ctl.Catalog.ListMenus(c.Request.Context(), utils.CurrentUserID(c), day)
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, gin.H{"menus": menus})
}

// POST /api/vendor/daily-menus
func (ctl *MenuController) CreateMenu(c *gin.Context) {
	var req services.CreateMenuInput
	if !bindJSON(c, &req) {
		return
	}
	menu, err := ctl.Catalog.CreateMenu(c.Request.Context(), utils.CurrentUserID(c), req)
	if err != nil {
		fail(c, err)
		return
	}
	resp.Created(c, gin.H{"menu": menu})
}

// PATCH /api/vendor/daily-menus/:menuId/active
func (ctl *MenuController) SetActive(c *gin.Context) {
	menuID, ok := parseIDParam(c, "menuId")
	if !ok {
		return
	}
	var req menuActiveRequest
	if !bindJSON(c, &req) {
		return
	}
	if err := ctl.Catalog.SetMenuActive(c.Request.Context(), utils.CurrentUserID(c), menuID, *req.IsActive); err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "Menu updated"})
}

// GET /api/menus?date=YYYY-MM-DD
func (ctl *MenuController) Public(c *gin.Context) {
	day, ok := queryDay(c, "date")
	if !ok {
		return
	}
	menus, err := ctl.Catalog.PublicMenus(c.Request.Context(), day)
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, gin.H{"menus": menus})
}
