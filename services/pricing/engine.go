package pricing

import (
	"fmt"

	"studioquote/models"
)

// Compute maps a selection to its itemized quote. It is pure and total: an
// unset service type yields an empty result, an unset or unknown sub-type
// yields a zero-priced placeholder line, and no input ever produces an error.
func Compute(sel models.Selection) models.QuoteResult {
	if sel.ServiceType == "" {
		return models.QuoteResult{Items: []models.LineItem{}}
	}

	var items []models.LineItem
	switch sel.ServiceType {
	case models.ServicePhotography:
		items = photographyItems(sel)
	case models.ServiceVideo:
		items = videoItems(sel)
	case models.ServiceTours:
		items = tourItems(sel)
	case models.ServiceTimelapse:
		items = timelapseItems(sel)
	case models.ServicePost:
		items = postProductionItems(sel)
	}

	if len(items) == 0 {
		// Service chosen but its sub-type is not: a bare placeholder so the
		// preview still shows what was picked.
		return models.QuoteResult{
			Items: []models.LineItem{{Label: models.ServiceNames[sel.ServiceType], Amount: 0}},
		}
	}

	// The camera surcharge doubles the base line exactly: it references the
	// base price at computation time, never the running subtotal.
	basePrice := items[0].Amount
	if label, ok := cameraSurcharge(sel); ok {
		items = append(items, models.LineItem{Label: label, Amount: basePrice})
	}

	subtotal := sumItems(items)

	// Universal modifiers never apply to post-production work.
	if sel.ServiceType != models.ServicePost {
		if fee, ok := studioFee(sel); ok {
			items = append(items, fee)
		}
		if fee, ok := travelFee(sel); ok {
			items = append(items, fee)
		}
		if sel.DeliveryTimeline == models.DeliveryRush {
			items = append(items, models.LineItem{
				Label:  "Rush Delivery (+50%)",
				Amount: rushRate * subtotal,
			})
		}
	}

	return models.QuoteResult{Items: items, Total: sumItems(items)}
}

func sumItems(items []models.LineItem) float64 {
	var total float64
	for _, it := range items {
		total += it.Amount
	}
	return total
}

// baseLabel renders the standard "Service: Sub-Type (detail)" line label.
func baseLabel(service models.ServiceType, subName, detail string) string {
	label := fmt.Sprintf("%s: %s", models.ServiceNames[service], subName)
	if detail != "" {
		label += fmt.Sprintf(" (%s)", detail)
	}
	return label
}

func hoursLabel(hours int) string {
	if hours == 1 {
		return "1 hr"
	}
	return fmt.Sprintf("%d hrs", hours)
}

func durationDetail(duration string, hours int) string {
	switch duration {
	case models.DurationHalfDay:
		return "Half Day"
	case models.DurationFullDay:
		return "Full Day"
	default:
		return hoursLabel(hours)
	}
}

func durationPrice(rates durationRates, duration string, hours int) float64 {
	switch duration {
	case models.DurationHalfDay:
		return rates.HalfDay
	case models.DurationFullDay:
		return rates.FullDay
	default:
		return rates.perHourPrice(hours)
	}
}
