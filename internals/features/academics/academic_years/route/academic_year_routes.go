// file: internals/features/academics/academic_years/route/academic_year_routes.go
package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	controller "kampusku_backend/internals/features/academics/academic_years/controller"
)

func AcademicYearAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := controller.NewAcademicYearController(db, validator.New())

	years := r.Group("/academic-years")
	years.Post("/", ctl.Create)
	years.Patch("/:id", ctl.Patch)
	years.Delete("/:id", ctl.Delete)
	years.Post("/:id/restore", ctl.Restore)
}

func AcademicYearPublicRoutes(r fiber.Router, db *gorm.DB) {
	ctl := controller.NewAcademicYearController(db, validator.New())

	years := r.Group("/academic-years")
	years.Get("/", ctl.List)
}
