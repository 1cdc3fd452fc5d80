package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"studioquote/models"
	"studioquote/services/intelligence"
	"studioquote/services/session"
	"studioquote/utils"
)

// QuoteSessionHandler exposes the wizard session lifecycle over HTTP.
type QuoteSessionHandler struct {
	Service session.SessionService
	Summary intelligence.SummaryService
	Logger  *zap.Logger
}

func NewQuoteSessionHandler(svc session.SessionService, summary intelligence.SummaryService, logger *zap.Logger) *QuoteSessionHandler {
	return &QuoteSessionHandler{Service: svc, Summary: summary, Logger: logger}
}

// InitiateSession creates a new wizard session with default selections.
func (h *QuoteSessionHandler) InitiateSession(c *gin.Context) {
	created, err := h.Service.Initiate(c.Request.Context())
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to create quote session", err.Error())
		return
	}
	c.JSON(http.StatusCreated, created)
}

// GetSession returns the current state of a session.
func (h *QuoteSessionHandler) GetSession(c *gin.Context) {
	found, err := h.Service.Get(c.Request.Context(), c.Param("sessionID"))
	if err != nil {
		respondSessionError(c, err)
		return
	}
	c.JSON(http.StatusOK, found)
}

// UpdateSelection replaces the session's selection and returns the session
// with a freshly computed quote.
func (h *QuoteSessionHandler) UpdateSelection(c *gin.Context) {
	var input struct {
		Selection models.Selection `json:"selection"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	updated, err := h.Service.UpdateSelection(c.Request.Context(), c.Param("sessionID"), input.Selection)
	if err != nil {
		respondSessionError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// SetContact stores the customer's contact details.
func (h *QuoteSessionHandler) SetContact(c *gin.Context) {
	var input struct {
		Contact models.Contact `json:"contact"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	updated, err := h.Service.SetContact(c.Request.Context(), c.Param("sessionID"), input.Contact)
	if err != nil {
		respondSessionError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// AdvanceSession validates the current step and moves the wizard forward.
func (h *QuoteSessionHandler) AdvanceSession(c *gin.Context) {
	advanced, err := h.Service.Advance(c.Request.Context(), c.Param("sessionID"))
	if err != nil {
		respondSessionError(c, err)
		return
	}
	c.JSON(http.StatusOK, advanced)
}

// BackSession moves the wizard one step backwards.
func (h *QuoteSessionHandler) BackSession(c *gin.Context) {
	moved, err := h.Service.Back(c.Request.Context(), c.Param("sessionID"))
	if err != nil {
		respondSessionError(c, err)
		return
	}
	c.JSON(http.StatusOK, moved)
}

// CancelSession discards the session.
func (h *QuoteSessionHandler) CancelSession(c *gin.Context) {
	if err := h.Service.Cancel(c.Request.Context(), c.Param("sessionID")); err != nil {
		respondSessionError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "cancelled"})
}

// GenerateSummary produces the AI title and summary for the session and
// attaches it. The endpoint always succeeds for a live session: generation
// failures degrade to the static fallback pair.
func (h *QuoteSessionHandler) GenerateSummary(c *gin.Context) {
	ctx := c.Request.Context()
	current, err := h.Service.Get(ctx, c.Param("sessionID"))
	if err != nil {
		respondSessionError(c, err)
		return
	}
	if current.Selection.ServiceType == "" {
		utils.JSONError(c, http.StatusConflict, "nothing to summarize", "no service has been selected yet")
		return
	}

	enrichment := h.Summary.Summarize(ctx, current)
	updated, err := h.Service.SetEnrichment(ctx, current.SessionID, enrichment)
	if err != nil {
		respondSessionError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// respondSessionError maps service errors onto HTTP statuses.
func respondSessionError(c *gin.Context, err error) {
	var verr *session.ValidationError
	switch {
	case errors.Is(err, session.ErrSessionNotFound):
		utils.JSONError(c, http.StatusNotFound, "quote session not found or expired", "")
	case errors.As(err, &verr):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": verr.Reason, "field": verr.Field})
	default:
		utils.JSONError(c, http.StatusInternalServerError, "quote session operation failed", err.Error())
	}
}
