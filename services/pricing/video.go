package pricing

import (
	"fmt"

	"studioquote/models"
)

// videoItems resolves the base line and same-family add-ons for a video
// production selection. Returns nil when the sub-type is unset or unknown.
func videoItems(sel models.Selection) []models.LineItem {
	subName, ok := models.VideoSubServices[sel.VideoSubType]
	if !ok {
		return nil
	}

	switch sel.VideoSubType {
	case models.VideoEvent:
		return []models.LineItem{{
			Label:  baseLabel(models.ServiceVideo, subName, durationDetail(sel.VideoEventDuration, sel.VideoEventHours)),
			Amount: durationPrice(videoEventRates, sel.VideoEventDuration, sel.VideoEventHours),
		}}

	case models.VideoCorporate:
		return corporateItems(sel, subName)

	case models.VideoPromo:
		return promoItems(sel, subName)

	case models.VideoRealEstate:
		price, ok := realEstateVideoRates[sel.VideoRealEstatePropertyType]
		if !ok {
			return nil
		}
		return []models.LineItem{{
			Label:  baseLabel(models.ServiceVideo, subName, propertyTypeName(sel.VideoRealEstatePropertyType)),
			Amount: price,
		}}

	case models.VideoWedding:
		return []models.LineItem{{
			Label:  baseLabel(models.ServiceVideo, subName, ""),
			Amount: weddingVideoBand.clamp(sel.VideoWeddingPrice),
		}}
	}
	return nil
}

// corporateItems builds the foundation package line plus each toggled extra,
// in declaration order.
func corporateItems(sel models.Selection, subName string) []models.LineItem {
	items := []models.LineItem{{
		Label:  baseLabel(models.ServiceVideo, subName, ""),
		Amount: corporateBasePrice,
	}}
	switch sel.VideoCorporateExtendedFilming {
	case models.DurationHalfDay:
		items = append(items, models.LineItem{Label: "Extended Filming (Half Day)", Amount: corporateHalfDayFilming})
	case models.DurationFullDay:
		items = append(items, models.LineItem{Label: "Extended Filming (Full Day)", Amount: corporateFullDayFilming})
	}
	if sel.VideoCorporateTwoCam {
		items = append(items, models.LineItem{Label: "Two-Camera Interview Setup", Amount: corporateTwoCamPrice})
	}
	if sel.VideoCorporateScripting {
		items = append(items, models.LineItem{Label: "Scriptwriting & Storyboarding", Amount: corporateScriptingPrice})
	}
	if sel.VideoCorporateEditing {
		items = append(items, models.LineItem{Label: "Advanced Editing Package", Amount: corporateEditingPrice})
	}
	if sel.VideoCorporateGraphics {
		items = append(items, models.LineItem{Label: "Motion Graphics & Titles", Amount: corporateGraphicsPrice})
	}
	if sel.VideoCorporateVoiceover {
		items = append(items, models.LineItem{Label: "Professional Voice-over", Amount: corporateVoiceoverPrice})
	}
	return items
}

func promoItems(sel models.Selection, subName string) []models.LineItem {
	items := []models.LineItem{{
		Label:  baseLabel(models.ServiceVideo, subName, "Foundation Package"),
		Amount: promoBasePrice,
	}}
	if sel.VideoPromoFullDay {
		items = append(items, models.LineItem{Label: "Full-Day Production", Amount: promoFullDayPrice})
	}
	if sel.VideoPromoMultiLoc > 0 {
		items = append(items, models.LineItem{
			Label:  fmt.Sprintf("Additional Locations (x%d)", sel.VideoPromoMultiLoc),
			Amount: float64(sel.VideoPromoMultiLoc) * promoPerLocation,
		})
	}
	if sel.VideoPromoConcept {
		items = append(items, models.LineItem{Label: "Concept Development & Storyboard", Amount: promoConceptPrice})
	}
	if sel.VideoPromoGraphics {
		items = append(items, models.LineItem{Label: "Motion Graphics Package", Amount: promoGraphicsPrice})
	}
	if sel.VideoPromoSound {
		items = append(items, models.LineItem{Label: "Licensed Music & Sound Design", Amount: promoSoundPrice})
	}
	if sel.VideoPromoMakeup {
		items = append(items, models.LineItem{Label: "Hair & Makeup Artist", Amount: promoMakeupPrice})
	}
	return items
}

func propertyTypeName(t string) string {
	switch t {
	case "studio":
		return "Studio"
	case "1-bedroom":
		return "1-Bedroom"
	case "2-bedroom":
		return "2-Bedroom"
	case "3-bedroom":
		return "3-Bedroom"
	case "villa":
		return "Villa"
	}
	return t
}
