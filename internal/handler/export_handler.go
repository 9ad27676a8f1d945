package handler

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/jadvalhub/jadval-api/internal/service"
	"github.com/jadvalhub/jadval-api/pkg/response"
)

// ExportHandler serves timetable downloads.
type ExportHandler struct {
	exports *service.ExportService
}

// NewExportHandler constructs ExportHandler.
func NewExportHandler(exports *service.ExportService) *ExportHandler {
	return &ExportHandler{exports: exports}
}

// Excel godoc
// @Summary Download the timetable as an Excel workbook
// @Tags Export
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success 200 {file} binary
// @Router /export/excel [get]
func (h *ExportHandler) Excel(c *gin.Context) {
	payload, err := h.exports.Excel(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	serveFile(c, payload, "xlsx", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
}

// CSV godoc
// @Summary Download the timetable as CSV
// @Tags Export
// @Produce text/csv
// @Success 200 {file} binary
// @Router /export/csv [get]
func (h *ExportHandler) CSV(c *gin.Context) {
	payload, err := h.exports.CSV(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	serveFile(c, payload, "csv", "text/csv")
}

// PDF godoc
// @Summary Download the timetable as PDF
// @Tags Export
// @Produce application/pdf
// @Success 200 {file} binary
// @Router /export/pdf [get]
func (h *ExportHandler) PDF(c *gin.Context) {
	payload, err := h.exports.PDF(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	serveFile(c, payload, "pdf", "application/pdf")
}

func serveFile(c *gin.Context, payload []byte, ext, mimeType string) {
	filename := fmt.Sprintf("dars-jadvali-%s.%s", time.Now().Format("2006-01-02"), ext)
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Header("Cache-Control", "no-store")
	c.Data(http.StatusOK, mimeType, payload)
}
