// file: internals/features/academics/calendar_profiles/route/calendar_profile_routes.go
package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	controller "kampusku_backend/internals/features/academics/calendar_profiles/controller"
)

func CalendarProfileAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := controller.NewCalendarProfileController(db, validator.New())

	profiles := r.Group("/calendar-profiles")
	profiles.Post("/", ctl.Create)
	profiles.Patch("/:code", ctl.Patch)
	profiles.Post("/:code/clone", ctl.Clone)
	profiles.Post("/:code/set-default", ctl.SetDefault)
	profiles.Delete("/:code", ctl.Delete)
}

func CalendarProfilePublicRoutes(r fiber.Router, db *gorm.DB) {
	ctl := controller.NewCalendarProfileController(db, validator.New())

	profiles := r.Group("/calendar-profiles")
	profiles.Get("/", ctl.List)
	profiles.Get("/:code", ctl.GetByCode)
}
