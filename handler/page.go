package handler

import (
	"embed"
	"html/template"
	"net/http"

	"nfcunha/porthole/core/models"
	"nfcunha/porthole/core/service"

	"github.com/gin-gonic/gin"
)

//go:embed templates/*.html
var templateFS embed.FS

// ViewerSandbox is the sandbox applied to the embedded viewer frame.
const ViewerSandbox = "allow-same-origin allow-scripts allow-popups allow-forms"

var sortOptions = []models.SortOption{
	models.SortNameAsc,
	models.SortNameDesc,
	models.SortCreatedAsc,
	models.SortCreatedDesc,
}

// LoadTemplates installs the page templates on the engine.
func LoadTemplates(engine *gin.Engine) {
	engine.SetHTMLTemplate(template.Must(template.ParseFS(templateFS, "templates/*.html")))
}

// PageHandler renders the dashboard page.
type PageHandler struct {
	list      *DashboardHandler
	dashboard *service.Dashboard
}

// NewPageHandler creates a new page handler.
func NewPageHandler(dashboard *service.Dashboard) *PageHandler {
	return &PageHandler{
		list:      NewDashboardHandler(dashboard),
		dashboard: dashboard,
	}
}

// Index handles GET /
// Accepts the same search and sort query parameters as ListContainers.
func (h *PageHandler) Index(c *gin.Context) {
	if !h.list.applyListQuery(c) {
		return
	}

	c.HTML(http.StatusOK, "index.html", gin.H{
		"State":       h.dashboard.State(),
		"Viewer":      h.dashboard.Viewer(),
		"SortOptions": sortOptions,
		"Sandbox":     ViewerSandbox,
	})
}
