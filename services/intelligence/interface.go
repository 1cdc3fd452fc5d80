package intelligence

import (
	"context"

	"studioquote/models"
)

// SummaryService turns a quote selection into a short project title and a
// human-readable summary. The numeric quote never depends on it.
type SummaryService interface {
	Summarize(ctx context.Context, session *models.QuoteSession) models.Enrichment
}

// DefaultSummaryService generates summaries through a ContentGenerator and
// memoizes results in a SummaryCache. Either field may be nil-tolerant only
// for Cache; a Generator is required.
type DefaultSummaryService struct {
	Generator ContentGenerator
	Cache     SummaryCache
}
