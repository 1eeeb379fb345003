// file: internals/features/academics/calendar_assignments/route/calendar_assignment_routes.go
package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"

	controller "kampusku_backend/internals/features/academics/calendar_assignments/controller"
)

func CalendarAssignmentAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := controller.NewCalendarAssignmentController(db, validator.New())

	assignments := r.Group("/calendar-assignments")
	assignments.Post("/", ctl.Create)
	assignments.Patch("/:id/deactivate", ctl.Deactivate)
	assignments.Get("/", ctl.List)
}

// Term-window resolution is read-only and public; the ICS feed lets
// calendar clients subscribe to a degree's term dates.
func TermWindowPublicRoutes(r fiber.Router, db *gorm.DB, log *zap.Logger) {
	ctl := controller.NewTermWindowController(db, log)

	windows := r.Group("/term-windows")
	windows.Get("/", ctl.Get)
	windows.Get("/ics", ctl.GetICS)
}
