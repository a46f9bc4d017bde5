// Package handler provides HTTP handlers for the Porthole API.
package handler

import (
	"net/http"

	"nfcunha/porthole/core/models"
	"nfcunha/porthole/core/service"

	"github.com/gin-gonic/gin"
)

// DashboardHandler handles container list and preference requests.
type DashboardHandler struct {
	dashboard *service.Dashboard
}

// NewDashboardHandler creates a new dashboard handler.
func NewDashboardHandler(dashboard *service.Dashboard) *DashboardHandler {
	return &DashboardHandler{
		dashboard: dashboard,
	}
}

// ListContainers handles GET /portal/containers
// Query parameters:
//   - search: string (case-insensitive name filter, kept for later requests)
//   - sort: name-asc | name-desc | created-asc | created-desc (persisted)
func (h *DashboardHandler) ListContainers(c *gin.Context) {
	if !h.applyListQuery(c) {
		return
	}
	c.JSON(http.StatusOK, h.dashboard.State())
}

// applyListQuery applies search and sort query parameters. It answers the
// request itself and returns false when a parameter is invalid.
func (h *DashboardHandler) applyListQuery(c *gin.Context) bool {
	if sortParam, ok := c.GetQuery("sort"); ok {
		opt, valid := models.ParseSortOption(sortParam)
		if !valid {
			c.JSON(http.StatusBadRequest, gin.H{
				"error":  "Invalid sort option",
				"detail": sortParam,
			})
			return false
		}
		h.dashboard.SetSortOption(opt)
	}

	if search, ok := c.GetQuery("search"); ok {
		h.dashboard.SetSearch(search)
	}
	return true
}

// RefreshContainers handles POST /portal/containers/refresh
// A failed fetch answers 502 and leaves the previous list in place.
func (h *DashboardHandler) RefreshContainers(c *gin.Context) {
	if err := h.dashboard.Load(c.Request.Context()); err != nil {
		if redirectForm(c) {
			return
		}
		c.JSON(http.StatusBadGateway, gin.H{
			"error":  "Failed to fetch containers",
			"detail": err.Error(),
		})
		return
	}

	if redirectForm(c) {
		return
	}
	c.JSON(http.StatusOK, h.dashboard.State())
}

// GetPreferences handles GET /portal/preferences
func (h *DashboardHandler) GetPreferences(c *gin.Context) {
	c.JSON(http.StatusOK, h.dashboard.Preferences())
}

// UpdateHostname handles PUT /portal/preferences/hostname
// The value is stored as given; an empty value restores the default host.
func (h *DashboardHandler) UpdateHostname(c *gin.Context) {
	var req struct {
		Hostname string `json:"hostname" form:"hostname"`
	}

	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":  "Invalid request body",
			"detail": err.Error(),
		})
		return
	}

	h.dashboard.SetHostname(req.Hostname)

	if redirectForm(c) {
		return
	}
	c.JSON(http.StatusOK, h.dashboard.Preferences())
}

// UpdateSortOption handles PUT /portal/preferences/sort
func (h *DashboardHandler) UpdateSortOption(c *gin.Context) {
	var req struct {
		SortOption string `json:"sort_option" form:"sort_option" binding:"required"`
	}

	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":  "Invalid request body",
			"detail": err.Error(),
		})
		return
	}

	opt, valid := models.ParseSortOption(req.SortOption)
	if !valid {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":  "Invalid sort option",
			"detail": req.SortOption,
		})
		return
	}
	h.dashboard.SetSortOption(opt)

	if redirectForm(c) {
		return
	}
	c.JSON(http.StatusOK, h.dashboard.Preferences())
}

// redirectForm sends browsers that posted an HTML form back to the page.
func redirectForm(c *gin.Context) bool {
	if c.ContentType() != "application/x-www-form-urlencoded" {
		return false
	}
	c.Redirect(http.StatusSeeOther, "/")
	return true
}
