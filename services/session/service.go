package session

import (
	"context"
	"fmt"
	"reflect"

	"github.com/google/uuid"

	"studioquote/models"
	"studioquote/services/pricing"
)

// Initiate creates a new wizard session with default selections, assigns it a
// unique SessionID, and stores it.
func (s *DefaultSessionService) Initiate(ctx context.Context) (*models.QuoteSession, error) {
	session := &models.QuoteSession{
		SessionID: uuid.New().String(),
		Step:      models.StepService,
		Selection: models.DefaultSelection(),
	}
	session.Quote = pricing.Compute(session.Selection)

	if err := s.Store.Save(ctx, session); err != nil {
		return nil, fmt.Errorf("initiate session: %w", err)
	}
	return session, nil
}

// Get retrieves a live session.
func (s *DefaultSessionService) Get(ctx context.Context, sessionID string) (*models.QuoteSession, error) {
	return s.Store.Get(ctx, sessionID)
}

// UpdateSelection replaces the session's selection and synchronously
// recomputes the quote so the caller always sees a live preview. A changed
// selection drops any previously generated enrichment.
func (s *DefaultSessionService) UpdateSelection(ctx context.Context, sessionID string, sel models.Selection) (*models.QuoteSession, error) {
	session, err := s.Store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if !reflect.DeepEqual(session.Selection, sel) {
		session.Selection = sel
		session.Enrichment = nil
	}
	session.Quote = pricing.Compute(session.Selection)

	if err := s.Store.Save(ctx, session); err != nil {
		return nil, fmt.Errorf("update session: %w", err)
	}
	return session, nil
}

// SetContact stores the customer's contact details. They never affect the
// computed quote.
func (s *DefaultSessionService) SetContact(ctx context.Context, sessionID string, contact models.Contact) (*models.QuoteSession, error) {
	session, err := s.Store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	session.Contact = contact
	if err := s.Store.Save(ctx, session); err != nil {
		return nil, fmt.Errorf("update session contact: %w", err)
	}
	return session, nil
}

// SetEnrichment attaches a generated title and summary to the session.
func (s *DefaultSessionService) SetEnrichment(ctx context.Context, sessionID string, enrichment models.Enrichment) (*models.QuoteSession, error) {
	session, err := s.Store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	session.Enrichment = &enrichment
	if err := s.Store.Save(ctx, session); err != nil {
		return nil, fmt.Errorf("update session enrichment: %w", err)
	}
	return session, nil
}

// Advance validates the current step and moves the wizard forward. A failed
// validation leaves the session untouched and is surfaced to the caller.
func (s *DefaultSessionService) Advance(ctx context.Context, sessionID string) (*models.QuoteSession, error) {
	session, err := s.Store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	next, err := nextStep(session)
	if err != nil {
		return nil, err
	}
	session.Step = next
	session.Quote = pricing.Compute(session.Selection)

	if err := s.Store.Save(ctx, session); err != nil {
		return nil, fmt.Errorf("advance session: %w", err)
	}
	return session, nil
}

// Back moves the wizard one step backwards. No validation applies.
func (s *DefaultSessionService) Back(ctx context.Context, sessionID string) (*models.QuoteSession, error) {
	session, err := s.Store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	for i, step := range models.StepOrder {
		if step == session.Step && i > 0 {
			session.Step = models.StepOrder[i-1]
			break
		}
	}
	if err := s.Store.Save(ctx, session); err != nil {
		return nil, fmt.Errorf("step session back: %w", err)
	}
	return session, nil
}

// Cancel discards the session entirely.
func (s *DefaultSessionService) Cancel(ctx context.Context, sessionID string) error {
	return s.Store.Delete(ctx, sessionID)
}
