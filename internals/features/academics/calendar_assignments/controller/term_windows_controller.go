// file: internals/features/academics/calendar_assignments/controller/term_windows_controller.go
package controller

import (
	"errors"
	"fmt"
	"strings"
	"time"

	ics "github.com/arran4/golang-ical"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"

	service "kampusku_backend/internals/features/academics/calendar_assignments/service"
	profileService "kampusku_backend/internals/features/academics/calendar_profiles/service"
	helper "kampusku_backend/internals/helpers"
	"kampusku_backend/internals/helpers/aycode"
)

type TermWindowController struct {
	Resolver *service.Resolver
}

func NewTermWindowController(db *gorm.DB, log *zap.Logger) *TermWindowController {
	return &TermWindowController{
		Resolver: service.NewResolver(
			service.NewAssignmentStore(db),
			service.NewProfileLookup(db),
			service.NewDefaultProfileLookup(db),
			log,
		),
	}
}

type termWindowQuery struct {
	AYCode          string
	DegreeCode      string
	ProgramCode     string
	BranchCode      string
	ProgressionYear int
}

func (ctl *TermWindowController) parseQuery(c *fiber.Ctx) (termWindowQuery, error) {
	q := termWindowQuery{
		AYCode:          strings.TrimSpace(c.Query("ay")),
		DegreeCode:      strings.TrimSpace(c.Query("degree")),
		ProgramCode:     strings.TrimSpace(c.Query("program")),
		BranchCode:      strings.TrimSpace(c.Query("branch")),
		ProgressionYear: c.QueryInt("year", 1),
	}
	if q.AYCode == "" || q.DegreeCode == "" {
		return q, errors.New("query params 'ay' and 'degree' are required")
	}
	if !aycode.Valid(q.AYCode) {
		return q, fmt.Errorf("invalid academic year code %q", q.AYCode)
	}
	if q.ProgressionYear < 1 || q.ProgressionYear > 10 {
		return q, errors.New("query param 'year' must be between 1 and 10")
	}
	return q, nil
}

func (ctl *TermWindowController) resolveWindows(c *fiber.Ctx, q termWindowQuery) (*service.ResolveResult, []profileService.TermWindow, error) {
	res, err := ctl.Resolver.Resolve(c.UserContext(), service.ResolveInput{
		AYCode:          q.AYCode,
		DegreeCode:      q.DegreeCode,
		ProgramCode:     q.ProgramCode,
		BranchCode:      q.BranchCode,
		ProgressionYear: q.ProgressionYear,
	})
	if err != nil {
		return nil, nil, err
	}
	windows, err := profileService.ComputeTermWindows(res.Profile, q.AYCode, res.ShiftDays)
	if err != nil {
		return nil, nil, err
	}
	return res, windows, nil
}

/* ============================================
   GET /api/public/term-windows?ay=&degree=&program=&branch=&year=
============================================ */

func (ctl *TermWindowController) Get(c *fiber.Ctx) error {
	q, err := ctl.parseQuery(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	res, windows, err := ctl.resolveWindows(c, q)
	if err != nil {
		if errors.Is(err, service.ErrResolutionNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, err.Error())
		}
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	return helper.JsonOK(c, "OK", fiber.Map{
		"academic_year":    q.AYCode,
		"degree_code":      q.DegreeCode,
		"progression_year": q.ProgressionYear,
		"profile_code":     res.Profile.CalendarProfileCode,
		"shift_days":       res.ShiftDays,
		"source":           res.Source,
		"term_windows":     windows,
	})
}

/* ============================================
   GET /api/public/term-windows.ics?ay=&degree=&program=&branch=&year=
   iCalendar feed of the resolved windows.
============================================ */

func (ctl *TermWindowController) GetICS(c *fiber.Ctx) error {
	q, err := ctl.parseQuery(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	res, windows, err := ctl.resolveWindows(c, q)
	if err != nil {
		if errors.Is(err, service.ErrResolutionNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, err.Error())
		}
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId("-//kampusku//term-windows//EN")

	for i, w := range windows {
		uid := fmt.Sprintf("%s-%s-y%d-t%d@kampusku", q.DegreeCode, q.AYCode, q.ProgressionYear, i+1)
		ev := cal.AddEvent(uid)
		ev.SetCreatedTime(time.Now())
		ev.SetDtStampTime(time.Now())
		ev.SetAllDayStartAt(w.StartDate)
		// DTEND is exclusive in iCalendar
		ev.SetAllDayEndAt(w.EndDate.AddDate(0, 0, 1))
		ev.SetSummary(fmt.Sprintf("%s - %s (%s)", q.DegreeCode, w.Label, q.AYCode))
		ev.SetDescription(res.Source)
	}

	c.Set(fiber.HeaderContentType, "text/calendar; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="term-windows.ics"`)
	return c.SendString(cal.Serialize())
}
