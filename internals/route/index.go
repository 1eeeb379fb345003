// file: internals/route/index.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"

	configs "kampusku_backend/internals/configs"
	academicYearRoute "kampusku_backend/internals/features/academics/academic_years/route"
	assignmentRoute "kampusku_backend/internals/features/academics/calendar_assignments/route"
	profileRoute "kampusku_backend/internals/features/academics/calendar_profiles/route"
	semesterRoute "kampusku_backend/internals/features/academics/semesters/route"
	semesterService "kampusku_backend/internals/features/academics/semesters/service"
	ticketRoute "kampusku_backend/internals/features/approvals/change_tickets/route"
	ticketService "kampusku_backend/internals/features/approvals/change_tickets/service"
	auth "kampusku_backend/internals/middlewares/auth"
)

func SetupRoutes(app *fiber.App, db *gorm.DB, log *zap.Logger) {
	BaseRoutes(app, db)

	// sink factory so guarded mutations write their ticket inside the
	// same transaction as the dependents check
	tickets := semesterService.TicketSinkFactory(ticketService.NewGormTicketSink)

	// ===================== PUBLIC =====================
	public := app.Group("/api/public")
	academicYearRoute.AcademicYearPublicRoutes(public, db)
	profileRoute.CalendarProfilePublicRoutes(public, db)
	assignmentRoute.TermWindowPublicRoutes(public, db, log)
	semesterRoute.SemesterPublicRoutes(public, db, tickets, log)

	// ===================== ADMIN =====================
	admin := app.Group("/api/a",
		auth.AuthJWT(auth.AuthJWTOpts{
			Secret:              configs.JWTSecret,
			AllowCookieFallback: true,
		}),
	)
	academicYearRoute.AcademicYearAdminRoutes(admin, db)
	profileRoute.CalendarProfileAdminRoutes(admin, db)
	assignmentRoute.CalendarAssignmentAdminRoutes(admin, db)
	semesterRoute.SemesterAdminRoutes(admin, db, tickets, log)
	ticketRoute.ChangeTicketAdminRoutes(admin, db)
}
