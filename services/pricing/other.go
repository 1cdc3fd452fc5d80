package pricing

import (
	"fmt"

	"studioquote/models"
)

// tourItems prices a 360 tour from the property-type table.
func tourItems(sel models.Selection) []models.LineItem {
	price, ok := tourRates[sel.ToursSubType]
	if !ok {
		return nil
	}
	return []models.LineItem{{
		Label:  baseLabel(models.ServiceTours, models.ToursSubServices[sel.ToursSubType], ""),
		Amount: price,
	}}
}

// timelapseItems prices a time-lapse project from its slider, clamped to the
// band of the chosen project length.
func timelapseItems(sel models.Selection) []models.LineItem {
	band, ok := timelapseBands[sel.TimelapseSubType]
	if !ok {
		return nil
	}
	return []models.LineItem{{
		Label:  baseLabel(models.ServiceTimelapse, models.TimelapseSubServices[sel.TimelapseSubType], ""),
		Amount: band.clamp(sel.TimelapsePrice),
	}}
}

// postProductionItems prices editing work. Post-production never receives
// universal modifiers, so these lines are the whole quote.
func postProductionItems(sel models.Selection) []models.LineItem {
	subName, ok := models.PostProductionSubServices[sel.PostSubType]
	if !ok {
		return nil
	}

	switch sel.PostSubType {
	case models.PostVideo:
		switch sel.PostVideoEditingType {
		case "perHour":
			hours := sel.PostVideoEditingHours
			if hours < 1 {
				hours = 1
			}
			return []models.LineItem{{
				Label:  baseLabel(models.ServicePost, subName, hoursLabel(hours)),
				Amount: float64(hours) * postVideoHourly,
			}}
		case "perMinute":
			minutes := sel.PostVideoEditingMinutes
			if minutes < 1 {
				minutes = 1
			}
			detail := "1 finished minute"
			if minutes > 1 {
				detail = fmt.Sprintf("%d finished minutes", minutes)
			}
			return []models.LineItem{{
				Label:  baseLabel(models.ServicePost, subName, detail),
				Amount: float64(minutes) * postVideoPerMinuteBand.clamp(sel.PostVideoEditingPerMinutePrice),
			}}
		case "social":
			return []models.LineItem{{
				Label:  baseLabel(models.ServicePost, subName, "Social Media Edit"),
				Amount: postVideoSocialBand.clamp(sel.PostVideoEditingSocialPrice),
			}}
		}
		return nil

	case models.PostPhoto:
		band, ok := postPhotoBands[sel.PostPhotoEditingType]
		if !ok {
			return nil
		}
		qty := sel.PostPhotoEditingQuantity
		if qty < 1 {
			qty = 1
		}
		detail := "1 photo"
		if qty > 1 {
			detail = fmt.Sprintf("%d photos", qty)
		}
		return []models.LineItem{{
			Label:  baseLabel(models.ServicePost, subName, fmt.Sprintf("%s, %s", detail, sel.PostPhotoEditingType)),
			Amount: float64(qty) * band.clamp(sel.PostPhotoEditingPrice),
		}}
	}
	return nil
}
