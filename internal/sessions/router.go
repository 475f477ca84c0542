package sessions

import "github.com/gin-gonic/gin"

// SetupSessionRoutes configures the catalog and booking session routes
func SetupSessionRoutes(rg *gin.RouterGroup, controller *Controller) {
	rg.GET("/catalog", controller.GetCatalog)

	sessions := rg.Group("/sessions")
	{
		sessions.POST("", controller.CreateSession)
		sessions.GET("/:id", controller.GetSession)
		sessions.DELETE("/:id", controller.EndSession)

		// Order fields, editable while in the Input phase
		sessions.PUT("/:id/tickets/:category", controller.SetTicketCount)
		sessions.PUT("/:id/location", controller.SetLocation)
		sessions.PUT("/:id/date", controller.SetDate)
		sessions.PUT("/:id/name", controller.SetName)

		// Workflow actions
		sessions.POST("/:id/submit", controller.Submit)
		sessions.POST("/:id/back", controller.Back)
		sessions.POST("/:id/confirm", controller.Confirm)
		sessions.POST("/:id/advisory/dismiss", controller.DismissAdvisory)
		sessions.POST("/:id/confirmation/dismiss", controller.DismissConfirmation)
		sessions.POST("/:id/reset", controller.Reset)
	}
}
