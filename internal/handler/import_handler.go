package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jadvalhub/jadval-api/internal/service"
	appErrors "github.com/jadvalhub/jadval-api/pkg/errors"
	"github.com/jadvalhub/jadval-api/pkg/response"
)

// ImportHandler exposes the spreadsheet import flow: upload, preview
// with column mapping, commit.
type ImportHandler struct {
	imports *service.ImportService
}

// NewImportHandler constructs ImportHandler.
func NewImportHandler(imports *service.ImportService) *ImportHandler {
	return &ImportHandler{imports: imports}
}

// PreviewRequest carries mapped sheet rows for reconciliation.
type PreviewRequest struct {
	Rows    [][]string            `json:"rows"`
	Mapping service.ColumnMapping `json:"mapping"`
}

// Parse godoc
// @Summary Upload a workbook and return its tabular content
// @Tags Import
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Workbook (.xlsx)"
// @Success 200 {object} response.Envelope
// @Router /import/parse [post]
func (h *ImportHandler) Parse(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "file is required"))
		return
	}
	src, err := fileHeader.Open()
	if err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to open file"))
		return
	}
	defer src.Close()

	table, err := h.imports.ParseSheet(src)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, table)
}

// Preview godoc
// @Summary Reconcile mapped rows against current data without committing
// @Tags Import
// @Accept json
// @Produce json
// @Param payload body PreviewRequest true "Rows and column mapping"
// @Success 200 {object} response.Envelope
// @Router /import/preview [post]
func (h *ImportHandler) Preview(c *gin.Context) {
	var req PreviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	batch, err := h.imports.Preview(c.Request.Context(), req.Rows, req.Mapping)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, batch)
}

// Commit godoc
// @Summary Apply a previewed batch to the timetable
// @Tags Import
// @Accept json
// @Produce json
// @Param payload body service.PreviewBatch true "Previewed batch"
// @Success 200 {object} response.Envelope
// @Router /import/commit [post]
func (h *ImportHandler) Commit(c *gin.Context) {
	var batch service.PreviewBatch
	if err := c.ShouldBindJSON(&batch); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	if err := h.imports.Commit(c.Request.Context(), batch); err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, gin.H{
		"teachers":   len(batch.Teachers),
		"groups":     len(batch.Groups),
		"classrooms": len(batch.Classrooms),
		"lessons":    len(batch.Lessons),
	})
}
