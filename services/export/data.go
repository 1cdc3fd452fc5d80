package export

import (
	"fmt"
	"strings"
	"time"

	"studioquote/models"
	"studioquote/services/pricing"
)

const studioName = "Motion & Stills Productions"

// Standard terms printed on every exported quote.
var quoteTerms = []string{
	"50% advance payment is required to confirm the booking.",
	"This quote is valid for 30 days from the date of issue.",
}

// QuoteExportData is everything the PDF and Excel renderers need, flattened
// out of a session so the renderers stay free of session concerns.
type QuoteExportData struct {
	StudioName string
	QuoteRef   string
	Date       string
	Title      string
	Summary    string
	Customer   models.Contact
	Service    string
	Location   string
	Items      []models.LineItem
	Total      float64
	Terms      []string
}

// FromSession builds export data from a live session. The enrichment title and
// summary are used when present; otherwise the static pair is printed.
func FromSession(session *models.QuoteSession) QuoteExportData {
	data := QuoteExportData{
		StudioName: studioName,
		QuoteRef:   quoteRef(session.SessionID),
		Date:       time.Now().Format("02 Jan 2006"),
		Title:      "Your Project Quote",
		Summary:    "Here is a summary of your quote selections.",
		Customer:   session.Contact,
		Location:   pricing.LocationName(session.Selection.Location),
		Items:      session.Quote.Items,
		Total:      session.Quote.Total,
		Terms:      quoteTerms,
	}

	if name := session.Selection.SubTypeName(); name != "" {
		data.Service = fmt.Sprintf("%s: %s", models.ServiceNames[session.Selection.ServiceType], name)
	} else if session.Selection.ServiceType != "" {
		data.Service = models.ServiceNames[session.Selection.ServiceType]
	}

	if e := session.Enrichment; e != nil {
		if e.ProjectTitle != "" {
			data.Title = e.ProjectTitle
		}
		if e.Summary != "" {
			data.Summary = e.Summary
		}
	}
	return data
}

// quoteRef derives a short human-friendly reference from the session ID.
func quoteRef(sessionID string) string {
	compact := strings.ReplaceAll(sessionID, "-", "")
	if len(compact) > 8 {
		compact = compact[:8]
	}
	return "Q-" + strings.ToUpper(compact)
}

// formatAED renders an amount as whole dirhams with thousands separators.
func formatAED(v float64) string {
	n := int64(v + 0.5)
	if v < 0 {
		n = int64(v - 0.5)
	}

	sign := ""
	if n < 0 {
		sign = "-"
		n = -n
	}

	digits := fmt.Sprintf("%d", n)
	var sb strings.Builder
	for i, d := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			sb.WriteByte(',')
		}
		sb.WriteRune(d)
	}
	return fmt.Sprintf("AED %s%s", sign, sb.String())
}
