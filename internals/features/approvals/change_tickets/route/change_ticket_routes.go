// file: internals/features/approvals/change_tickets/route/change_ticket_routes.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	controller "kampusku_backend/internals/features/approvals/change_tickets/controller"
)

func ChangeTicketAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := controller.NewChangeTicketController(db)

	tickets := r.Group("/change-tickets")
	tickets.Get("/", ctl.List)
	tickets.Get("/:id", ctl.GetByID)
}
