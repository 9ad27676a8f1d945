package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jadvalhub/jadval-api/internal/service"
	"github.com/jadvalhub/jadval-api/pkg/response"
)

// StateHandler exposes the full state tree for client hydration.
type StateHandler struct {
	state *service.StateService
}

// NewStateHandler constructs StateHandler.
func NewStateHandler(state *service.StateService) *StateHandler {
	return &StateHandler{state: state}
}

// Get godoc
// @Summary Full application state in one response
// @Tags State
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /state [get]
func (h *StateHandler) Get(c *gin.Context) {
	response.JSON(c, http.StatusOK, h.state.Snapshot(c.Request.Context()))
}

// Reset godoc
// @Summary Discard all data and restore the seed dataset
// @Tags State
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /state/reset [post]
func (h *StateHandler) Reset(c *gin.Context) {
	response.JSON(c, http.StatusOK, h.state.Reset(c.Request.Context()))
}
