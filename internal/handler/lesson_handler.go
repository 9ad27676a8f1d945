package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/jadvalhub/jadval-api/internal/models"
	"github.com/jadvalhub/jadval-api/internal/service"
	appErrors "github.com/jadvalhub/jadval-api/pkg/errors"
	"github.com/jadvalhub/jadval-api/pkg/response"
)

// LessonHandler exposes lesson booking endpoints.
type LessonHandler struct {
	lessons *service.LessonService
	slots   *service.SlotService
}

// NewLessonHandler constructs LessonHandler.
func NewLessonHandler(lessons *service.LessonService, slots *service.SlotService) *LessonHandler {
	return &LessonHandler{lessons: lessons, slots: slots}
}

// List godoc
// @Summary List lessons
// @Tags Lessons
// @Produce json
// @Param teacherId query string false "Filter by teacher"
// @Param groupId query string false "Filter by group"
// @Param classroomId query string false "Filter by classroom"
// @Param day query int false "Filter by weekday 1-7"
// @Success 200 {object} response.Envelope
// @Router /lessons [get]
func (h *LessonHandler) List(c *gin.Context) {
	filter := service.LessonFilter{
		TeacherID:   c.Query("teacherId"),
		GroupID:     c.Query("groupId"),
		ClassroomID: c.Query("classroomId"),
	}
	if day, err := strconv.Atoi(c.Query("day")); err == nil {
		filter.DayOfWeek = day
	}
	response.JSON(c, http.StatusOK, h.lessons.List(c.Request.Context(), filter))
}

// Get godoc
// @Summary Get lesson detail
// @Tags Lessons
// @Produce json
// @Param id path string true "Lesson ID"
// @Success 200 {object} response.Envelope
// @Router /lessons/{id} [get]
func (h *LessonHandler) Get(c *gin.Context) {
	lesson, err := h.lessons.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, lesson)
}

// Create godoc
// @Summary Book a lesson
// @Tags Lessons
// @Accept json
// @Produce json
// @Param payload body service.LessonRequest true "Lesson payload"
// @Success 201 {object} response.Envelope
// @Failure 409 {object} response.Envelope
// @Router /lessons [post]
func (h *LessonHandler) Create(c *gin.Context) {
	var req service.LessonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	lesson, err := h.lessons.Create(c.Request.Context(), req)
	if err != nil {
		respondLessonError(c, err)
		return
	}
	response.Created(c, lesson)
}

// Update godoc
// @Summary Replace a lesson booking
// @Tags Lessons
// @Accept json
// @Produce json
// @Param id path string true "Lesson ID"
// @Param payload body service.LessonRequest true "Lesson payload"
// @Success 200 {object} response.Envelope
// @Failure 409 {object} response.Envelope
// @Router /lessons/{id} [put]
func (h *LessonHandler) Update(c *gin.Context) {
	var req service.LessonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	lesson, err := h.lessons.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		respondLessonError(c, err)
		return
	}
	response.JSON(c, http.StatusOK, lesson)
}

// Delete godoc
// @Summary Delete lesson
// @Tags Lessons
// @Param id path string true "Lesson ID"
// @Success 204
// @Router /lessons/{id} [delete]
func (h *LessonHandler) Delete(c *gin.Context) {
	if err := h.lessons.Delete(c.Request.Context(), c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}

// CheckConflicts godoc
// @Summary Preview conflicts for a candidate lesson without booking it
// @Tags Lessons
// @Accept json
// @Produce json
// @Param excludeId query string false "Lesson to exclude, for edit forms"
// @Param payload body service.LessonRequest true "Candidate lesson"
// @Success 200 {object} response.Envelope
// @Router /lessons/conflicts [post]
func (h *LessonHandler) CheckConflicts(c *gin.Context) {
	var req service.LessonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	conflicts := h.lessons.CheckConflicts(c.Request.Context(), req, c.Query("excludeId"))
	response.JSON(c, http.StatusOK, gin.H{"conflicts": conflicts, "hasConflict": len(conflicts) > 0})
}

// Slots godoc
// @Summary Generate candidate time slots from working hours
// @Tags Lessons
// @Produce json
// @Param startHour query int false "Override start hour"
// @Param endHour query int false "Override end hour"
// @Param interval query int false "Override slot length in minutes"
// @Success 200 {object} response.Envelope
// @Router /slots [get]
func (h *LessonHandler) Slots(c *gin.Context) {
	var query service.SlotQuery
	if v, err := strconv.Atoi(c.Query("startHour")); err == nil {
		query.StartHour = v
	}
	if v, err := strconv.Atoi(c.Query("endHour")); err == nil {
		query.EndHour = v
	}
	if v, err := strconv.Atoi(c.Query("interval")); err == nil {
		query.Interval = v
	}
	response.JSON(c, http.StatusOK, h.slots.Slots(c.Request.Context(), query))
}

// BySlot godoc
// @Summary List lessons occupying an exact slot
// @Tags Lessons
// @Produce json
// @Param day query int true "Weekday 1-7"
// @Param start query string true "Slot start HH:MM"
// @Param end query string true "Slot end HH:MM"
// @Success 200 {object} response.Envelope
// @Router /lessons/slot [get]
func (h *LessonHandler) BySlot(c *gin.Context) {
	day, err := strconv.Atoi(c.Query("day"))
	if err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "day must be a number"))
		return
	}
	lessons := h.lessons.LessonsForSlot(c.Request.Context(), day, c.Query("start"), c.Query("end"))
	response.JSON(c, http.StatusOK, lessons)
}

// respondLessonError attaches the colliding lessons to conflict responses.
func respondLessonError(c *gin.Context, err error) {
	var conflictErr *models.ConflictError
	if errors.As(err, &conflictErr) {
		response.ErrorWithMeta(c, err, map[string]interface{}{"conflicts": conflictErr.Conflicts})
		return
	}
	response.Error(c, err)
}
