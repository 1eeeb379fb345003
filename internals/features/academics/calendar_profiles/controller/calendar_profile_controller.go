// file: internals/features/academics/calendar_profiles/controller/calendar_profile_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	dto "kampusku_backend/internals/features/academics/calendar_profiles/dto"
	model "kampusku_backend/internals/features/academics/calendar_profiles/model"
	helper "kampusku_backend/internals/helpers"
)

type CalendarProfileController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewCalendarProfileController(db *gorm.DB, v *validator.Validate) *CalendarProfileController {
	if v == nil {
		v = validator.New()
	}
	return &CalendarProfileController{DB: db, Validator: v}
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

func (ctl *CalendarProfileController) byCode(c *fiber.Ctx, code string) (*model.CalendarProfileModel, error) {
	var ent model.CalendarProfileModel
	if err := ctl.DB.WithContext(c.UserContext()).
		First(&ent, "calendar_profile_code = ?", code).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Calendar profile not found")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch calendar profile")
	}
	return &ent, nil
}

/* ============================================
   CREATE
   POST /api/a/calendar-profiles
============================================ */

func (ctl *CalendarProfileController) Create(c *fiber.Ctx) error {
	var p dto.CalendarProfileCreateDTO
	if err := bindAndValidate(c, ctl.Validator, &p); err != nil {
		return helper.JsonError(c, err.(*fiber.Error).Code, err.Error())
	}
	p.Normalize()

	ent := p.ToModel()
	if err := ent.CalendarProfileTerms.Validate(); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	if err := ctl.DB.WithContext(c.UserContext()).Create(&ent).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict, "Calendar profile code already exists")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create calendar profile")
	}
	return helper.JsonCreated(c, "Calendar profile created", dto.FromModel(ent))
}

/* ============================================
   PATCH /api/a/calendar-profiles/:code
   Locked profiles are immutable; edit by cloning instead.
============================================ */

func (ctl *CalendarProfileController) Patch(c *fiber.Ctx) error {
	code := strings.ToUpper(strings.TrimSpace(c.Params("code")))
	ent, err := ctl.byCode(c, code)
	if err != nil {
		fe := err.(*fiber.Error)
		return helper.JsonError(c, fe.Code, fe.Message)
	}
	if ent.CalendarProfileIsLocked {
		return helper.JsonError(c, fiber.StatusConflict,
			"Profile is locked (in use by assignments); clone it to make changes")
	}

	var p dto.CalendarProfileUpdateDTO
	if err := bindAndValidate(c, ctl.Validator, &p); err != nil {
		return helper.JsonError(c, err.(*fiber.Error).Code, err.Error())
	}
	p.ApplyUpdates(ent)
	if err := ent.CalendarProfileTerms.Validate(); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	if err := ctl.DB.WithContext(c.UserContext()).Save(ent).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update calendar profile")
	}
	return helper.JsonUpdated(c, "Calendar profile updated", dto.FromModel(*ent))
}

/* ============================================
   CLONE
   POST /api/a/calendar-profiles/:code/clone
============================================ */

func (ctl *CalendarProfileController) Clone(c *fiber.Ctx) error {
	code := strings.ToUpper(strings.TrimSpace(c.Params("code")))
	src, err := ctl.byCode(c, code)
	if err != nil {
		fe := err.(*fiber.Error)
		return helper.JsonError(c, fe.Code, fe.Message)
	}

	var p dto.CalendarProfileCloneDTO
	if err := bindAndValidate(c, ctl.Validator, &p); err != nil {
		return helper.JsonError(c, err.(*fiber.Error).Code, err.Error())
	}

	clone := model.CalendarProfileModel{
		CalendarProfileCode:           strings.ToUpper(strings.TrimSpace(p.NewCode)),
		CalendarProfileName:           src.CalendarProfileName + " (copy)",
		CalendarProfileModel:          src.CalendarProfileModel,
		CalendarProfileAnchorMonthDay: src.CalendarProfileAnchorMonthDay,
		CalendarProfileTerms:          append(model.TermSpecList(nil), src.CalendarProfileTerms...),
	}
	if p.NewName != nil {
		clone.CalendarProfileName = strings.TrimSpace(*p.NewName)
	}

	if err := ctl.DB.WithContext(c.UserContext()).Create(&clone).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict, "Calendar profile code already exists")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to clone calendar profile")
	}
	return helper.JsonCreated(c, "Calendar profile cloned", dto.FromModel(clone))
}

/* ============================================
   SET DEFAULT
   PATCH /api/a/calendar-profiles/:code/set-default
============================================ */

func (ctl *CalendarProfileController) SetDefault(c *fiber.Ctx) error {
	code := strings.ToUpper(strings.TrimSpace(c.Params("code")))
	ent, err := ctl.byCode(c, code)
	if err != nil {
		fe := err.(*fiber.Error)
		return helper.JsonError(c, fe.Code, fe.Message)
	}

	if err := ctl.DB.WithContext(c.UserContext()).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&model.CalendarProfileModel{}).
			Where("calendar_profile_is_system = TRUE AND calendar_profile_id <> ?", ent.CalendarProfileID).
			Update("calendar_profile_is_system", false).Error; err != nil {
			return err
		}
		return tx.Model(ent).Update("calendar_profile_is_system", true).Error
	}); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to set default profile")
	}
	ent.CalendarProfileIsSystem = true
	return helper.JsonUpdated(c, "Default calendar profile set", dto.FromModel(*ent))
}

/* ============================================
   DELETE (soft) /api/a/calendar-profiles/:code
   Locked profiles are never deleted.
============================================ */

func (ctl *CalendarProfileController) Delete(c *fiber.Ctx) error {
	code := strings.ToUpper(strings.TrimSpace(c.Params("code")))
	ent, err := ctl.byCode(c, code)
	if err != nil {
		fe := err.(*fiber.Error)
		return helper.JsonError(c, fe.Code, fe.Message)
	}
	if ent.CalendarProfileIsLocked {
		return helper.JsonError(c, fiber.StatusConflict, "Profile is locked (in use by assignments)")
	}
	if ent.CalendarProfileIsSystem {
		return helper.JsonError(c, fiber.StatusConflict, "The system default profile cannot be deleted")
	}

	if err := ctl.DB.WithContext(c.UserContext()).Delete(ent).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete calendar profile")
	}
	return helper.JsonDeleted(c, "Calendar profile deleted", fiber.Map{"calendar_profile_code": code})
}

/* ============================================
   LIST (public) GET /api/public/calendar-profiles
   GET /api/public/calendar-profiles/:code
============================================ */

func (ctl *CalendarProfileController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)
	q := ctl.DB.WithContext(c.UserContext()).Model(&model.CalendarProfileModel{})

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count calendar profiles")
	}

	var rows []model.CalendarProfileModel
	if err := q.Order("calendar_profile_code ASC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to list calendar profiles")
	}

	return helper.JsonList(c, "OK", dto.FromModels(rows),
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

func (ctl *CalendarProfileController) GetByCode(c *fiber.Ctx) error {
	code := strings.ToUpper(strings.TrimSpace(c.Params("code")))
	ent, err := ctl.byCode(c, code)
	if err != nil {
		fe := err.(*fiber.Error)
		return helper.JsonError(c, fe.Code, fe.Message)
	}
	return helper.JsonOK(c, "OK", dto.FromModel(*ent))
}
