package pricing

import (
	"fmt"

	"studioquote/models"
)

// secondCameraAllowed lists the sub-types that can book a second camera.
var secondCameraAllowed = map[models.ServiceType]map[string]bool{
	models.ServicePhotography: {models.PhotoEvent: true},
	models.ServiceVideo:       {models.VideoEvent: true, models.VideoWedding: true},
}

// cameraSurcharge reports whether the selection carries a camera surcharge
// and the label of the resulting line. The amount is always 100% of the base
// line, resolved by the caller.
func cameraSurcharge(sel models.Selection) (string, bool) {
	if sel.ServiceType == models.ServiceTimelapse {
		if sel.TimelapseExtraCamera {
			return "Extra Camera", true
		}
		return "", false
	}
	if !sel.SecondCamera {
		return "", false
	}
	if allowed := secondCameraAllowed[sel.ServiceType]; allowed[sel.SubType()] {
		return "Second Camera", true
	}
	return "", false
}

// studioFee applies when shooting in a studio venue and the sub-type is a
// duration-tiered event, priced off the same duration as the shoot.
func studioFee(sel models.Selection) (models.LineItem, bool) {
	if sel.LocationType != "Studio" {
		return models.LineItem{}, false
	}
	var duration string
	var hours int
	switch {
	case sel.ServiceType == models.ServicePhotography && sel.PhotographySubType == models.PhotoEvent:
		duration, hours = sel.PhotoEventDuration, sel.PhotoEventHours
	case sel.ServiceType == models.ServiceVideo && sel.VideoSubType == models.VideoEvent:
		duration, hours = sel.VideoEventDuration, sel.VideoEventHours
	default:
		return models.LineItem{}, false
	}
	return models.LineItem{
		Label:  fmt.Sprintf("Studio Rental (%s)", durationDetail(duration, hours)),
		Amount: durationPrice(studioRentalRates, duration, hours),
	}, true
}

// travelFee is the flat logistics fee for shooting outside the home city.
func travelFee(sel models.Selection) (models.LineItem, bool) {
	fee, ok := travelFees[sel.Location]
	if !ok || fee == 0 {
		return models.LineItem{}, false
	}
	return models.LineItem{
		Label:  fmt.Sprintf("Travel & Logistics (%s)", locationNames[sel.Location]),
		Amount: fee,
	}, true
}
