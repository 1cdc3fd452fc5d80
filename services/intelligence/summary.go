package intelligence

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/cenkalti/backoff/v4"
	"go.uber.org/zap"

	"studioquote/models"
	"studioquote/utils"
)

// Fallback pair served whenever the generator is unreachable or returns
// something unusable.
const (
	fallbackTitle   = "Your Project Quote"
	fallbackSummary = "Here is a summary of your quote selections."
)

// SummaryInput is the distilled view of a session the generator sees. It is
// also the cache identity: two sessions with the same input share a summary.
type SummaryInput struct {
	ServiceType  string   `json:"serviceType"`
	PackageType  string   `json:"packageType,omitempty"`
	Hours        int      `json:"hours,omitempty"`
	Location     string   `json:"location,omitempty"`
	LocationType string   `json:"locationType,omitempty"`
	Addons       []string `json:"addons,omitempty"`
	Name         string   `json:"name,omitempty"`
}

// InputFromSession extracts the summary-relevant fields from a session.
func InputFromSession(session *models.QuoteSession) SummaryInput {
	sel := session.Selection
	input := SummaryInput{
		ServiceType:  models.ServiceNames[sel.ServiceType],
		Location:     sel.Location,
		LocationType: sel.LocationType,
		Name:         session.Contact.Name,
	}
	if name := sel.SubTypeName(); name != "" {
		input.ServiceType = fmt.Sprintf("%s: %s", models.ServiceNames[sel.ServiceType], name)
	}

	switch {
	case sel.ServiceType == models.ServicePhotography && sel.PhotographySubType == models.PhotoEvent:
		input.PackageType = sel.PhotoEventDuration
		if sel.PhotoEventDuration == models.DurationPerHour {
			input.Hours = sel.PhotoEventHours
		}
	case sel.ServiceType == models.ServiceVideo && sel.VideoSubType == models.VideoEvent:
		input.PackageType = sel.VideoEventDuration
		if sel.VideoEventDuration == models.DurationPerHour {
			input.Hours = sel.VideoEventHours
		}
	case sel.ServiceType == models.ServicePhotography && sel.PhotographySubType == models.PhotoFashion:
		input.PackageType = sel.PhotoFashionPackage
	case sel.ServiceType == models.ServicePhotography && sel.PhotographySubType == models.PhotoWedding:
		input.PackageType = sel.PhotoWeddingPackage
	}

	if sel.SecondCamera {
		input.Addons = append(input.Addons, "Second Camera")
	}
	if sel.TimelapseExtraCamera {
		input.Addons = append(input.Addons, "Extra Camera")
	}
	if sel.DeliveryTimeline == models.DeliveryRush {
		input.Addons = append(input.Addons, "Rush Delivery")
	}
	return input
}

func (in SummaryInput) cacheKey() string {
	data, _ := json.Marshal(in)
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

// Summarize generates a project title and summary for the session. It never
// fails: any generation or parsing problem degrades to the static fallback
// pair with status "unavailable".
func (s *DefaultSummaryService) Summarize(ctx context.Context, session *models.QuoteSession) models.Enrichment {
	input := InputFromSession(session)
	key := input.cacheKey()

	if s.Cache != nil {
		cached, err := s.Cache.Get(ctx, key)
		if err != nil {
			utils.GetLogger().Warn("summary cache lookup failed", zap.Error(err))
		} else if cached != nil {
			return *cached
		}
	}

	prompt := buildPrompt(input)
	var raw string
	generate := func() error {
		var err error
		raw, err = s.Generator.GenerateContent(ctx, prompt)
		return err
	}
	policy := backoff.WithContext(backoff.WithMaxRetries(backoff.NewExponentialBackOff(), 2), ctx)
	if err := backoff.Retry(generate, policy); err != nil {
		utils.GetLogger().Warn("quote summary generation failed", zap.Error(err))
		return fallbackEnrichment()
	}

	enrichment, err := parseEnrichment(raw)
	if err != nil {
		utils.GetLogger().Warn("quote summary response unusable", zap.Error(err))
		return fallbackEnrichment()
	}

	if s.Cache != nil {
		if err := s.Cache.Set(ctx, key, enrichment); err != nil {
			utils.GetLogger().Warn("failed to cache quote summary", zap.Error(err))
		}
	}
	return enrichment
}

func fallbackEnrichment() models.Enrichment {
	return models.Enrichment{
		Status:       models.EnrichmentUnavailable,
		ProjectTitle: fallbackTitle,
		Summary:      fallbackSummary,
	}
}

func buildPrompt(input SummaryInput) string {
	var sb strings.Builder
	sb.WriteString("You are an assistant for a media production studio in the UAE. ")
	sb.WriteString("A customer has configured a quote; write a short, friendly project title ")
	sb.WriteString("and a one-paragraph summary of their selections.\n\n")

	fmt.Fprintf(&sb, "Service: %s\n", input.ServiceType)
	if input.PackageType != "" {
		fmt.Fprintf(&sb, "Package: %s\n", input.PackageType)
	}
	if input.Hours > 0 {
		fmt.Fprintf(&sb, "Hours: %d\n", input.Hours)
	}
	if input.Location != "" {
		fmt.Fprintf(&sb, "Location: %s\n", input.Location)
	}
	if input.LocationType != "" {
		fmt.Fprintf(&sb, "Location type: %s\n", input.LocationType)
	}
	if len(input.Addons) > 0 {
		fmt.Fprintf(&sb, "Add-ons: %s\n", strings.Join(input.Addons, ", "))
	}
	if input.Name != "" {
		fmt.Fprintf(&sb, "Customer name: %s\n", input.Name)
	}

	sb.WriteString("\nRespond with only a JSON object of the form ")
	sb.WriteString(`{"projectTitle": "...", "summary": "..."}`)
	sb.WriteString(" and nothing else. Do not mention prices or totals.")
	return sb.String()
}

// parseEnrichment extracts the JSON object from the model output, tolerating
// markdown code fences and surrounding prose.
func parseEnrichment(raw string) (models.Enrichment, error) {
	start := strings.Index(raw, "{")
	end := strings.LastIndex(raw, "}")
	if start < 0 || end <= start {
		return models.Enrichment{}, fmt.Errorf("no JSON object in model output")
	}

	var parsed struct {
		ProjectTitle string `json:"projectTitle"`
		Summary      string `json:"summary"`
	}
	if err := json.Unmarshal([]byte(raw[start:end+1]), &parsed); err != nil {
		return models.Enrichment{}, fmt.Errorf("malformed model output: %w", err)
	}
	if parsed.ProjectTitle == "" || parsed.Summary == "" {
		return models.Enrichment{}, fmt.Errorf("model output missing projectTitle or summary")
	}

	return models.Enrichment{
		Status:       models.EnrichmentReady,
		ProjectTitle: parsed.ProjectTitle,
		Summary:      parsed.Summary,
	}, nil
}
