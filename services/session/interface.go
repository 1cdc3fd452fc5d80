// Package session manages the lifecycle of a quote wizard session: created
// with defaults, mutated step by step, recomputed on every change, and
// discarded on reset or expiry.
package session

import (
	"context"

	"studioquote/models"
)

// SessionService defines the interface for managing a stateful quote wizard session.
type SessionService interface {
	Initiate(ctx context.Context) (*models.QuoteSession, error)
	Get(ctx context.Context, sessionID string) (*models.QuoteSession, error)
	UpdateSelection(ctx context.Context, sessionID string, sel models.Selection) (*models.QuoteSession, error)
	SetContact(ctx context.Context, sessionID string, contact models.Contact) (*models.QuoteSession, error)
	SetEnrichment(ctx context.Context, sessionID string, enrichment models.Enrichment) (*models.QuoteSession, error)
	Advance(ctx context.Context, sessionID string) (*models.QuoteSession, error)
	Back(ctx context.Context, sessionID string) (*models.QuoteSession, error)
	Cancel(ctx context.Context, sessionID string) error
}

// Store persists wizard sessions for their lifetime.
type Store interface {
	Save(ctx context.Context, session *models.QuoteSession) error
	Get(ctx context.Context, sessionID string) (*models.QuoteSession, error)
	Delete(ctx context.Context, sessionID string) error
}

// DefaultSessionService implements SessionService.
type DefaultSessionService struct {
	Store Store
}
