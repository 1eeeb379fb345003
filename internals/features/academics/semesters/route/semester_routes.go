// file: internals/features/academics/semesters/route/semester_routes.go
package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"

	controller "kampusku_backend/internals/features/academics/semesters/controller"
	service "kampusku_backend/internals/features/academics/semesters/service"
)

func SemesterAdminRoutes(r fiber.Router, db *gorm.DB, tickets service.TicketSinkFactory, log *zap.Logger) {
	ctl := controller.NewSemesterAdminController(db, validator.New(), tickets, log)

	semesters := r.Group("/semesters")
	semesters.Get("/:degree_code/binding", ctl.GetBinding)
	semesters.Put("/:degree_code/binding", ctl.UpdateBinding)
	semesters.Get("/:degree_code/structures", ctl.ListStructures)
	semesters.Put("/:degree_code/structure", ctl.UpsertStructure)
	semesters.Post("/:degree_code/rebuild", ctl.Rebuild)
	semesters.Delete("/:degree_code", ctl.ClearAll)
}

func SemesterPublicRoutes(r fiber.Router, db *gorm.DB, tickets service.TicketSinkFactory, log *zap.Logger) {
	ctl := controller.NewSemesterAdminController(db, validator.New(), tickets, log)

	semesters := r.Group("/semesters")
	semesters.Get("/", ctl.ListSemesters)
}
