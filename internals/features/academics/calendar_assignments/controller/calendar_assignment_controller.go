// file: internals/features/academics/calendar_assignments/controller/calendar_assignment_controller.go
package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	dto "kampusku_backend/internals/features/academics/calendar_assignments/dto"
	model "kampusku_backend/internals/features/academics/calendar_assignments/model"
	profileModel "kampusku_backend/internals/features/academics/calendar_profiles/model"
	helper "kampusku_backend/internals/helpers"
)

type CalendarAssignmentController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewCalendarAssignmentController(db *gorm.DB, v *validator.Validate) *CalendarAssignmentController {
	if v == nil {
		v = validator.New()
	}
	return &CalendarAssignmentController{DB: db, Validator: v}
}

func bindAndValidate[T any](c *fiber.Ctx, v *validator.Validate, dst *T) error {
	if err := c.BodyParser(dst); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	if v != nil {
		if err := v.Struct(dst); err != nil {
			return fiber.NewError(fiber.StatusUnprocessableEntity, err.Error())
		}
	}
	return nil
}

/* ============================================
   CREATE
   POST /api/a/calendar-assignments

   Creating an assignment supersedes the previous active row on the same
   key tuple (that row is deactivated, not deleted) and locks the profile.
============================================ */

func (ctl *CalendarAssignmentController) Create(c *fiber.Ctx) error {
	var p dto.CalendarAssignmentCreateDTO
	if err := bindAndValidate(c, ctl.Validator, &p); err != nil {
		return helper.JsonError(c, err.(*fiber.Error).Code, err.Error())
	}
	p.Normalize()

	ent := p.ToModel()
	if err := ctl.DB.WithContext(c.UserContext()).Transaction(func(tx *gorm.DB) error {
		var prof profileModel.CalendarProfileModel
		if err := tx.First(&prof, "calendar_profile_code = ?", ent.CalendarAssignmentProfileCode).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Calendar profile not found")
			}
			return err
		}

		// supersede the previous active rule at the same key, if any
		if err := tx.Model(&model.CalendarAssignmentModel{}).
			Where("calendar_assignment_level = ?", ent.CalendarAssignmentLevel).
			Where("calendar_assignment_degree_code = ?", ent.CalendarAssignmentDegreeCode).
			Where("calendar_assignment_program_code = ?", ent.CalendarAssignmentProgramCode).
			Where("calendar_assignment_branch_code = ?", ent.CalendarAssignmentBranchCode).
			Where("calendar_assignment_progression_year = ?", ent.CalendarAssignmentProgressionYear).
			Where("calendar_assignment_effective_from_ay = ?", ent.CalendarAssignmentEffectiveFromAY).
			Where("calendar_assignment_is_active = TRUE").
			Update("calendar_assignment_is_active", false).Error; err != nil {
			return err
		}

		if err := tx.Create(&ent).Error; err != nil {
			return err
		}

		// first reference locks the profile for in-place edits
		if !prof.CalendarProfileIsLocked {
			if err := tx.Model(&prof).Update("calendar_profile_is_locked", true).Error; err != nil {
				return err
			}
		}
		return nil
	}); err != nil {
		var fe *fiber.Error
		if errors.As(err, &fe) {
			return helper.JsonError(c, fe.Code, fe.Message)
		}
		if helper.IsUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict,
				"An active assignment already exists for this key")
		}
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	return helper.JsonCreated(c, "Calendar assignment created", dto.FromModel(ent))
}

/* ============================================
   DEACTIVATE
   PATCH /api/a/calendar-assignments/:id/deactivate
   Assignments are never physically deleted.
============================================ */

func (ctl *CalendarAssignmentController) Deactivate(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid id")
	}

	var ent model.CalendarAssignmentModel
	if err := ctl.DB.WithContext(c.UserContext()).
		First(&ent, "calendar_assignment_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Calendar assignment not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch calendar assignment")
	}
	if !ent.CalendarAssignmentIsActive {
		return helper.JsonOK(c, "Already inactive", dto.FromModel(ent))
	}

	if err := ctl.DB.Model(&ent).
		Update("calendar_assignment_is_active", false).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to deactivate assignment")
	}
	ent.CalendarAssignmentIsActive = false
	return helper.JsonUpdated(c, "Calendar assignment deactivated", dto.FromModel(ent))
}

/* ============================================
   LIST
   GET /api/a/calendar-assignments
============================================ */

func (ctl *CalendarAssignmentController) List(c *fiber.Ctx) error {
	var f dto.CalendarAssignmentFilterDTO
	if err := c.QueryParser(&f); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid query")
	}
	if err := ctl.Validator.Struct(&f); err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}

	paging := helper.ResolvePaging(c, 20, 200)
	q := ctl.DB.WithContext(c.UserContext()).Model(&model.CalendarAssignmentModel{})
	if f.DegreeCode != nil {
		q = q.Where("calendar_assignment_degree_code = ?", *f.DegreeCode)
	}
	if f.Level != nil {
		q = q.Where("calendar_assignment_level = ?", *f.Level)
	}
	if f.ProgressionYear != nil {
		q = q.Where("calendar_assignment_progression_year = ?", *f.ProgressionYear)
	}
	if f.ActiveOnly == nil || *f.ActiveOnly {
		q = q.Where("calendar_assignment_is_active = TRUE")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count assignments")
	}

	var rows []model.CalendarAssignmentModel
	if err := q.Order("calendar_assignment_effective_from_year DESC, calendar_assignment_created_at DESC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to list assignments")
	}

	return helper.JsonList(c, "OK", dto.FromModels(rows),
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}
