package handler

import (
	"nfcunha/porthole/core/service"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes mounts the page at / and the API under /portal.
func RegisterRoutes(engine *gin.Engine, dashboard *service.Dashboard, events EventSource, pinger Pinger) {
	pageHandler := NewPageHandler(dashboard)
	engine.GET("/", pageHandler.Index)

	portal := engine.Group("/portal")
	{
		portal.GET("/health", Health(pinger))

		dashboardHandler := NewDashboardHandler(dashboard)
		containers := portal.Group("/containers")
		{
			containers.GET("", dashboardHandler.ListContainers)
			containers.POST("/refresh", dashboardHandler.RefreshContainers)
		}

		preferences := portal.Group("/preferences")
		{
			preferences.GET("", dashboardHandler.GetPreferences)
			preferences.PUT("/hostname", dashboardHandler.UpdateHostname)
			preferences.POST("/hostname", dashboardHandler.UpdateHostname)
			preferences.PUT("/sort", dashboardHandler.UpdateSortOption)
			preferences.POST("/sort", dashboardHandler.UpdateSortOption)
		}

		viewerHandler := NewViewerHandler(dashboard)
		viewer := portal.Group("/viewer")
		{
			viewer.GET("", viewerHandler.GetViewer)
			viewer.GET("/ws", viewerHandler.StreamViewer)
			viewer.POST("/visit", viewerHandler.Visit)
			viewer.POST("/back", viewerHandler.Back)
			viewer.POST("/forward", viewerHandler.Forward)
			viewer.POST("/refresh", viewerHandler.Refresh)
		}

		eventHandler := NewEventHandler(events)
		portal.GET("/events", eventHandler.ListEvents)
	}
}
