package routes

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"studioquote/handlers"
)

// RegisterQuoteRoutes registers the stateless pricing endpoints.
func RegisterQuoteRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/quote")
	{
		api.GET("/catalog", hb.GetCatalog)
		api.POST("/preview", hb.PreviewQuote)
	}
}

// RegisterSessionRoutes registers the wizard session lifecycle endpoints.
func RegisterSessionRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/quote/session")
	{
		api.POST("", hb.InitiateSession)
		api.GET("/:sessionID", hb.GetSession)
		api.PUT("/:sessionID/selection", hb.UpdateSelection)
		api.PUT("/:sessionID/contact", hb.SetContact)
		api.POST("/:sessionID/advance", hb.AdvanceSession)
		api.POST("/:sessionID/back", hb.BackSession)
		api.DELETE("/:sessionID", hb.CancelSession)
		api.POST("/:sessionID/summary", hb.GenerateSummary)
		api.GET("/:sessionID/export/pdf", hb.ExportPDF)
		api.GET("/:sessionID/export/xlsx", hb.ExportExcel)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "studio quote server"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterHealthRoute(r)
	RegisterQuoteRoutes(r, hb)
	RegisterSessionRoutes(r, hb)
}
