package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/jadvalhub/jadval-api/internal/middleware"
	"github.com/jadvalhub/jadval-api/internal/service"
)

// Services bundles everything the router needs.
type Services struct {
	Auth       *service.AuthService
	Teachers   *service.TeacherService
	Groups     *service.GroupService
	Classrooms *service.ClassroomService
	Lessons    *service.LessonService
	Slots      *service.SlotService
	Settings   *service.SettingsService
	Imports    *service.ImportService
	Exports    *service.ExportService
	State      *service.StateService
	Metrics    *service.MetricsService
}

// Register mounts all API routes on the given prefix. Login stays open;
// everything else requires a valid session token.
func Register(r *gin.Engine, prefix string, svcs Services) {
	api := r.Group(prefix)

	auth := NewAuthHandler(svcs.Auth)
	api.POST("/auth/login", auth.Login)

	protected := api.Group("")
	protected.Use(middleware.JWT(svcs.Auth))

	teachers := NewTeacherHandler(svcs.Teachers)
	protected.GET("/teachers", teachers.List)
	protected.POST("/teachers", teachers.Create)
	protected.GET("/teachers/:id", teachers.Get)
	protected.PUT("/teachers/:id", teachers.Update)
	protected.DELETE("/teachers/:id", teachers.Delete)
	protected.GET("/teachers/:id/schedule", teachers.Schedule)

	groups := NewGroupHandler(svcs.Groups)
	protected.GET("/groups", groups.List)
	protected.POST("/groups", groups.Create)
	protected.PUT("/groups/:id", groups.Update)
	protected.DELETE("/groups/:id", groups.Delete)

	classrooms := NewClassroomHandler(svcs.Classrooms)
	protected.GET("/classrooms", classrooms.List)
	protected.POST("/classrooms", classrooms.Create)
	protected.PUT("/classrooms/:id", classrooms.Update)
	protected.DELETE("/classrooms/:id", classrooms.Delete)

	lessons := NewLessonHandler(svcs.Lessons, svcs.Slots)
	protected.GET("/lessons", lessons.List)
	protected.POST("/lessons", lessons.Create)
	protected.GET("/lessons/slot", lessons.BySlot)
	protected.POST("/lessons/conflicts", lessons.CheckConflicts)
	protected.GET("/lessons/:id", lessons.Get)
	protected.PUT("/lessons/:id", lessons.Update)
	protected.DELETE("/lessons/:id", lessons.Delete)
	protected.GET("/slots", lessons.Slots)

	settings := NewSettingsHandler(svcs.Settings)
	protected.GET("/settings", settings.Get)
	protected.PUT("/settings", settings.Update)

	imports := NewImportHandler(svcs.Imports)
	protected.POST("/import/parse", imports.Parse)
	protected.POST("/import/preview", imports.Preview)
	protected.POST("/import/commit", imports.Commit)

	exports := NewExportHandler(svcs.Exports)
	protected.GET("/export/xlsx", exports.Excel)
	protected.GET("/export/csv", exports.CSV)
	protected.GET("/export/pdf", exports.PDF)

	state := NewStateHandler(svcs.State)
	protected.GET("/state", state.Get)
	protected.POST("/state/reset", state.Reset)
}
