package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"studioquote/models"
	"studioquote/services/pricing"
	"studioquote/utils"
)

// QuoteHandler exposes the stateless pricing surface: the service catalog and
// one-shot quote previews.
type QuoteHandler struct{}

func NewQuoteHandler() *QuoteHandler {
	return &QuoteHandler{}
}

type catalogOption struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type catalogService struct {
	ID      models.ServiceType `json:"id"`
	Name    string             `json:"name"`
	Options []catalogOption    `json:"options"`
}

// catalogOrder fixes the display order of services and their options.
var catalogOrder = []struct {
	service models.ServiceType
	options []string
}{
	{models.ServicePhotography, []string{
		models.PhotoEvent, models.PhotoRealEstate, models.PhotoHeadshots,
		models.PhotoProduct, models.PhotoFood, models.PhotoFashion, models.PhotoWedding,
	}},
	{models.ServiceVideo, []string{
		models.VideoEvent, models.VideoCorporate, models.VideoPromo,
		models.VideoRealEstate, models.VideoWedding,
	}},
	{models.ServicePost, []string{models.PostVideo, models.PostPhoto}},
	{models.ServiceTours, []string{"studio", "1-bedroom", "2-bedroom", "3-bedroom"}},
	{models.ServiceTimelapse, []string{
		models.TimelapseShort, models.TimelapseLong, models.TimelapseExtreme,
	}},
}

func subServiceNames(service models.ServiceType) map[string]string {
	switch service {
	case models.ServicePhotography:
		return models.PhotographySubServices
	case models.ServiceVideo:
		return models.VideoSubServices
	case models.ServicePost:
		return models.PostProductionSubServices
	case models.ServiceTours:
		return models.ToursSubServices
	case models.ServiceTimelapse:
		return models.TimelapseSubServices
	}
	return nil
}

// GetCatalog returns everything a client needs to render the wizard: services
// with their options, supported cities, venue types, and delivery timelines.
func (h *QuoteHandler) GetCatalog(c *gin.Context) {
	services := make([]catalogService, 0, len(catalogOrder))
	for _, entry := range catalogOrder {
		names := subServiceNames(entry.service)
		options := make([]catalogOption, 0, len(entry.options))
		for _, id := range entry.options {
			options = append(options, catalogOption{ID: id, Name: names[id]})
		}
		services = append(services, catalogService{
			ID:      entry.service,
			Name:    models.ServiceNames[entry.service],
			Options: options,
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"services":          services,
		"locations":         pricing.Locations(),
		"locationTypes":     models.LocationTypeOptions,
		"deliveryTimelines": []string{models.DeliveryStandard, models.DeliveryRush},
	})
}

// PreviewQuote computes a quote for a selection without creating a session.
func (h *QuoteHandler) PreviewQuote(c *gin.Context) {
	var input struct {
		Selection models.Selection `json:"selection"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{"quote": pricing.Compute(input.Selection)})
}
