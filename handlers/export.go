package handlers

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"studioquote/services/export"
	"studioquote/services/session"
	"studioquote/utils"
)

// ExportHandler renders a session's quote as a downloadable document.
type ExportHandler struct {
	Service session.SessionService
	Logger  *zap.Logger
}

func NewExportHandler(svc session.SessionService, logger *zap.Logger) *ExportHandler {
	return &ExportHandler{Service: svc, Logger: logger}
}

// ExportPDF streams the quote as a PDF attachment.
func (h *ExportHandler) ExportPDF(c *gin.Context) {
	data, ok := h.exportData(c)
	if !ok {
		return
	}

	pdfBytes, err := export.GeneratePDF(data)
	if err != nil {
		h.Logger.Error("quote PDF generation failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to generate PDF", err.Error())
		return
	}

	c.Header("Content-Disposition", attachmentName(data.QuoteRef, "pdf"))
	c.Data(http.StatusOK, "application/pdf", pdfBytes)
}

// ExportExcel streams the quote as an XLSX attachment.
func (h *ExportHandler) ExportExcel(c *gin.Context) {
	data, ok := h.exportData(c)
	if !ok {
		return
	}

	xlsxBytes, err := export.GenerateExcel(data)
	if err != nil {
		h.Logger.Error("quote Excel generation failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to generate Excel", err.Error())
		return
	}

	c.Header("Content-Disposition", attachmentName(data.QuoteRef, "xlsx"))
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", xlsxBytes)
}

func (h *ExportHandler) exportData(c *gin.Context) (export.QuoteExportData, bool) {
	current, err := h.Service.Get(c.Request.Context(), c.Param("sessionID"))
	if err != nil {
		respondSessionError(c, err)
		return export.QuoteExportData{}, false
	}
	if current.Selection.ServiceType == "" {
		utils.JSONError(c, http.StatusConflict, "nothing to export", "no service has been selected yet")
		return export.QuoteExportData{}, false
	}
	return export.FromSession(current), true
}

func attachmentName(quoteRef, ext string) string {
	return fmt.Sprintf(`attachment; filename="%s.%s"`, strings.ToLower(quoteRef), ext)
}
