package handlers

import (
	"github.com/gin-gonic/gin"
)

// HandlerBundle aggregates every HTTP handler so routes can be registered
// from one place.
type HandlerBundle struct {
	// Stateless pricing endpoints.
	GetCatalog   gin.HandlerFunc
	PreviewQuote gin.HandlerFunc

	// Wizard session endpoints.
	InitiateSession gin.HandlerFunc
	GetSession      gin.HandlerFunc
	UpdateSelection gin.HandlerFunc
	SetContact      gin.HandlerFunc
	AdvanceSession  gin.HandlerFunc
	BackSession     gin.HandlerFunc
	CancelSession   gin.HandlerFunc
	GenerateSummary gin.HandlerFunc

	// Export endpoints.
	ExportPDF   gin.HandlerFunc
	ExportExcel gin.HandlerFunc
}
