// file: internals/features/academics/academic_years/controller/academic_year_controller.go
package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	assignmentModel "kampusku_backend/internals/features/academics/calendar_assignments/model"
	dto "kampusku_backend/internals/features/academics/academic_years/dto"
	model "kampusku_backend/internals/features/academics/academic_years/model"
	service "kampusku_backend/internals/features/academics/academic_years/service"
	helper "kampusku_backend/internals/helpers"
	"kampusku_backend/internals/helpers/aycode"
)

type AcademicYearController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewAcademicYearController(db *gorm.DB, v *validator.Validate) *AcademicYearController {
	if v == nil {
		v = validator.New()
	}
	return &AcademicYearController{DB: db, Validator: v}
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
   POST /api/a/academic-years
============================================ */

func (ctl *AcademicYearController) Create(c *fiber.Ctx) error {
	var p dto.AcademicYearCreateDTO
	if err := bindAndValidate(c, ctl.Validator, &p); err != nil {
		return helper.JsonError(c, err.(*fiber.Error).Code, err.Error())
	}
	p.Normalize()

	if !aycode.Valid(p.AcademicYearCode) {
		return helper.JsonError(c, fiber.StatusBadRequest,
			"academic_year_code must look like 2025-26, 2025/26 or AY2025-26")
	}

	ent := p.ToModel()
	if err := ctl.DB.WithContext(c.UserContext()).Transaction(func(tx *gorm.DB) error {
		store := service.NewYearStore(tx)
		if err := service.CheckOverlap(c.UserContext(), store, ent.AcademicYearStatus,
			ent.AcademicYearStartDate, ent.AcademicYearEndDate, nil); err != nil {
			return err
		}
		return tx.Create(&ent).Error
	}); err != nil {
		var oe *service.OverlapError
		if errors.As(err, &oe) {
			return helper.JsonError(c, fiber.StatusConflict, oe.Error())
		}
		if helper.IsUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict, "Academic year code already exists")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create academic year")
	}
	return helper.JsonCreated(c, "Academic year created", dto.FromModel(ent))
}

/* ============================================
   PATCH /api/a/academic-years/:id
============================================ */

func (ctl *AcademicYearController) Patch(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid id")
	}

	var p dto.AcademicYearUpdateDTO
	if err := bindAndValidate(c, ctl.Validator, &p); err != nil {
		return helper.JsonError(c, err.(*fiber.Error).Code, err.Error())
	}
	if p.AcademicYearCode != nil && !aycode.Valid(*p.AcademicYearCode) {
		return helper.JsonError(c, fiber.StatusBadRequest,
			"academic_year_code must look like 2025-26, 2025/26 or AY2025-26")
	}

	var ent model.AcademicYearModel
	if err := ctl.DB.WithContext(c.UserContext()).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&ent, "academic_year_id = ?", id).Error; err != nil {
			return err
		}
		p.ApplyUpdates(&ent)
		if ent.AcademicYearEndDate.Before(ent.AcademicYearStartDate) {
			return fiber.NewError(fiber.StatusBadRequest, "End date must be >= start date")
		}
		store := service.NewYearStore(tx)
		if err := service.CheckOverlap(c.UserContext(), store, ent.AcademicYearStatus,
			ent.AcademicYearStartDate, ent.AcademicYearEndDate, &id); err != nil {
			return err
		}
		return tx.Save(&ent).Error
	}); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Academic year not found")
		}
		var oe *service.OverlapError
		if errors.As(err, &oe) {
			return helper.JsonError(c, fiber.StatusConflict, oe.Error())
		}
		var fe *fiber.Error
		if errors.As(err, &fe) {
			return helper.JsonError(c, fe.Code, fe.Message)
		}
		if helper.IsUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict, "Academic year code already exists")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update academic year")
	}
	return helper.JsonUpdated(c, "Academic year updated", dto.FromModel(ent))
}

/* ============================================
   DELETE (soft) /api/a/academic-years/:id
   Refused while calendar assignments still reference the code.
============================================ */

func (ctl *AcademicYearController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid id")
	}

	var ent model.AcademicYearModel
	if err := ctl.DB.First(&ent, "academic_year_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Academic year not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch academic year")
	}

	var cnt int64
	if err := ctl.DB.Model(&assignmentModel.CalendarAssignmentModel{}).
		Where("calendar_assignment_effective_from_ay = ? AND calendar_assignment_is_active = TRUE",
			ent.AcademicYearCode).
		Count(&cnt).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to check dependents")
	}
	if cnt > 0 {
		return helper.JsonError(c, fiber.StatusConflict,
			"Academic year is referenced by active calendar assignments")
	}

	if err := ctl.DB.Delete(&ent).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete academic year")
	}
	return helper.JsonDeleted(c, "Academic year deleted", fiber.Map{"academic_year_id": id})
}

/* ============================================
   RESTORE /api/a/academic-years/:id/restore
============================================ */

func (ctl *AcademicYearController) Restore(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid id")
	}

	var ent model.AcademicYearModel
	if err := ctl.DB.Unscoped().First(&ent, "academic_year_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Academic year not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch academic year")
	}
	if !ent.AcademicYearDeletedAt.Valid {
		return helper.JsonOK(c, "OK", dto.FromModel(ent))
	}

	if err := ctl.DB.Unscoped().Model(&ent).
		Update("academic_year_deleted_at", nil).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to restore academic year")
	}
	ent.AcademicYearDeletedAt = gorm.DeletedAt{}
	return helper.JsonUpdated(c, "Academic year restored", dto.FromModel(ent))
}

/* ============================================
   LIST (public) GET /api/public/academic-years
============================================ */

func (ctl *AcademicYearController) List(c *fiber.Ctx) error {
	var f dto.AcademicYearFilterDTO
	if err := c.QueryParser(&f); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid query")
	}
	if err := ctl.Validator.Struct(&f); err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}

	paging := helper.ResolvePaging(c, 20, 200)
	q := ctl.DB.WithContext(c.UserContext()).Model(&model.AcademicYearModel{})
	if f.Code != nil {
		q = q.Where("academic_year_code = ?", *f.Code)
	}
	if f.Status != nil {
		q = q.Where("academic_year_status = ?", *f.Status)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count academic years")
	}

	var rows []model.AcademicYearModel
	if err := q.Order("academic_year_start_date ASC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to list academic years")
	}

	return helper.JsonList(c, "OK", dto.FromModels(rows),
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}
