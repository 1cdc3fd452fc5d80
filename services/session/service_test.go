package session

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"studioquote/models"
)

func newTestService() *DefaultSessionService {
	return &DefaultSessionService{Store: NewMemorySessionStore()}
}

func TestInitiateStartsWithDefaults(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	session, err := svc.Initiate(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, session.SessionID)
	require.Equal(t, models.StepService, session.Step)
	require.Empty(t, session.Quote.Items)
	require.Zero(t, session.Quote.Total)
}

func TestUpdateSelectionRecomputesQuote(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	session, err := svc.Initiate(ctx)
	require.NoError(t, err)

	sel := session.Selection
	sel.ServiceType = models.ServicePhotography
	sel.PhotographySubType = models.PhotoHeadshots
	sel.PhotoHeadshotsPeople = 3

	updated, err := svc.UpdateSelection(ctx, session.SessionID, sel)
	require.NoError(t, err)
	require.Equal(t, float64(1050), updated.Quote.Total)
}

func TestUpdateSelectionDropsStaleEnrichment(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	session, err := svc.Initiate(ctx)
	require.NoError(t, err)

	session.Enrichment = &models.Enrichment{Status: models.EnrichmentReady, ProjectTitle: "t", Summary: "s"}
	require.NoError(t, svc.Store.Save(ctx, session))

	sel := session.Selection
	sel.ServiceType = models.ServiceTours
	sel.ToursSubType = "studio"

	updated, err := svc.UpdateSelection(ctx, session.SessionID, sel)
	require.NoError(t, err)
	require.Nil(t, updated.Enrichment)

	// An identical update keeps it.
	updated.Enrichment = &models.Enrichment{Status: models.EnrichmentReady}
	require.NoError(t, svc.Store.Save(ctx, updated))
	again, err := svc.UpdateSelection(ctx, session.SessionID, sel)
	require.NoError(t, err)
	require.NotNil(t, again.Enrichment)
}

func TestAdvanceValidatesEachStep(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	session, err := svc.Initiate(ctx)
	require.NoError(t, err)
	id := session.SessionID

	// Cannot leave the service step without a service.
	_, err = svc.Advance(ctx, id)
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	require.Equal(t, "serviceType", verr.Field)

	sel := session.Selection
	sel.ServiceType = models.ServiceVideo
	_, err = svc.UpdateSelection(ctx, id, sel)
	require.NoError(t, err)
	session, err = svc.Advance(ctx, id)
	require.NoError(t, err)
	require.Equal(t, models.StepDetails, session.Step)

	// Cannot leave details without a sub-type.
	_, err = svc.Advance(ctx, id)
	require.ErrorAs(t, err, &verr)
	require.Equal(t, "subType", verr.Field)

	sel.VideoSubType = models.VideoCorporate
	_, err = svc.UpdateSelection(ctx, id, sel)
	require.NoError(t, err)
	session, err = svc.Advance(ctx, id)
	require.NoError(t, err)
	require.Equal(t, models.StepLogistics, session.Step)

	session, err = svc.Advance(ctx, id)
	require.NoError(t, err)
	require.Equal(t, models.StepContact, session.Step)

	// Contact details gate the final step.
	_, err = svc.Advance(ctx, id)
	require.ErrorAs(t, err, &verr)
	require.Equal(t, "name", verr.Field)

	_, err = svc.SetContact(ctx, id, models.Contact{Name: "Sara", Email: "sara@example.com"})
	require.NoError(t, err)
	session, err = svc.Advance(ctx, id)
	require.NoError(t, err)
	require.Equal(t, models.StepQuote, session.Step)

	// The quote step is terminal.
	_, err = svc.Advance(ctx, id)
	require.ErrorAs(t, err, &verr)
}

func TestBackStopsAtFirstStep(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	session, err := svc.Initiate(ctx)
	require.NoError(t, err)

	back, err := svc.Back(ctx, session.SessionID)
	require.NoError(t, err)
	require.Equal(t, models.StepService, back.Step)
}

func TestCancelDiscardsSession(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	session, err := svc.Initiate(ctx)
	require.NoError(t, err)
	require.NoError(t, svc.Cancel(ctx, session.SessionID))

	_, err = svc.Get(ctx, session.SessionID)
	require.True(t, errors.Is(err, ErrSessionNotFound))
}

func TestRealEstateRequiresProperties(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	session, err := svc.Initiate(ctx)
	require.NoError(t, err)
	id := session.SessionID

	sel := session.Selection
	sel.ServiceType = models.ServicePhotography
	sel.PhotographySubType = models.PhotoRealEstate
	_, err = svc.UpdateSelection(ctx, id, sel)
	require.NoError(t, err)

	_, err = svc.Advance(ctx, id) // service -> details
	require.NoError(t, err)

	_, err = svc.Advance(ctx, id)
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	require.Equal(t, "photoRealEstateProperties", verr.Field)
}
