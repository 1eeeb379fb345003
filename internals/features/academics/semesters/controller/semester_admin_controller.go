// file: internals/features/academics/semesters/controller/semester_admin_controller.go
package controller

import (
	"context"
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"

	dto "kampusku_backend/internals/features/academics/semesters/dto"
	model "kampusku_backend/internals/features/academics/semesters/model"
	service "kampusku_backend/internals/features/academics/semesters/service"
	helper "kampusku_backend/internals/helpers"
	auth "kampusku_backend/internals/middlewares/auth"
)

type SemesterAdminController struct {
	DB        *gorm.DB
	Validator *validator.Validate
	Tickets   service.TicketSinkFactory
	Log       *zap.Logger
}

func NewSemesterAdminController(db *gorm.DB, v *validator.Validate, tickets service.TicketSinkFactory, log *zap.Logger) *SemesterAdminController {
	if v == nil {
		v = validator.New()
	}
	return &SemesterAdminController{DB: db, Validator: v, Tickets: tickets, Log: log}
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

// guardFor binds every guard collaborator, the ticket sink included, to
// the request transaction.
func (ctl *SemesterAdminController) guardFor(tx *gorm.DB) *service.ChangeGuard {
	return service.NewChangeGuard(service.NewGormDependentCounter(tx), ctl.Tickets(tx), ctl.Log)
}

func (ctl *SemesterAdminController) materializerFor(tx *gorm.DB) *service.Materializer {
	return service.NewMaterializer(service.NewGormStructureReader(tx), service.NewGormSemesterStore(tx), ctl.Log)
}

func jsonTxError(c *fiber.Ctx, err error, fallback string) error {
	var fe *fiber.Error
	if errors.As(err, &fe) {
		return helper.JsonError(c, fe.Code, fe.Message)
	}
	return helper.JsonError(c, fiber.StatusInternalServerError, fallback)
}

func degreeCodeParam(c *fiber.Ctx) (string, error) {
	code := strings.ToUpper(strings.TrimSpace(c.Params("degree_code")))
	if code == "" {
		return "", fiber.NewError(fiber.StatusBadRequest, "degree_code is required")
	}
	return code, nil
}

// loadBinding returns the stored binding or the (degree, year_term) default.
func loadBinding(tx *gorm.DB, degreeCode string) (model.SemesterBindingModel, bool, error) {
	var b model.SemesterBindingModel
	err := tx.First(&b, "semester_binding_degree_code = ?", degreeCode).Error
	if err == nil {
		return b, true, nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.DefaultBinding(degreeCode), false, nil
	}
	return b, false, err
}

/* ============================================
   BINDING
   GET /api/a/semesters/:degree_code/binding
   PUT /api/a/semesters/:degree_code/binding

   A binding-mode change always goes to the approval queue. A label-mode
   change applies directly; already published labels stay as they are and
   refresh on the next rebuild.
============================================ */

func (ctl *SemesterAdminController) GetBinding(c *fiber.Ctx) error {
	degreeCode, err := degreeCodeParam(c)
	if err != nil {
		return helper.JsonError(c, err.(*fiber.Error).Code, err.Error())
	}
	b, _, err := loadBinding(ctl.DB.WithContext(c.UserContext()), degreeCode)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load binding")
	}
	return helper.JsonOK(c, "OK", dto.BindingFromModel(b))
}

func (ctl *SemesterAdminController) UpdateBinding(c *fiber.Ctx) error {
	degreeCode, err := degreeCodeParam(c)
	if err != nil {
		return helper.JsonError(c, err.(*fiber.Error).Code, err.Error())
	}
	var p dto.SemesterBindingUpdateDTO
	if err := bindAndValidate(c, ctl.Validator, &p); err != nil {
		return helper.JsonError(c, err.(*fiber.Error).Code, err.Error())
	}
	p.Normalize()

	var (
		deferred bool
		out      model.SemesterBindingModel
	)
	err = ctl.DB.WithContext(c.UserContext()).Transaction(func(tx *gorm.DB) error {
		b, exists, err := loadBinding(tx, degreeCode)
		if err != nil {
			return err
		}

		modeChanged := p.SemesterBindingMode != nil && *p.SemesterBindingMode != b.SemesterBindingMode
		if modeChanged {
			if _, err := ctl.guardFor(tx).Apply(c.UserContext(), service.GuardRequest{
				DegreeCode:     degreeCode,
				Action:         service.ActionBindingChange,
				Before:         map[string]string{"binding_mode": b.SemesterBindingMode},
				After:          map[string]string{"binding_mode": *p.SemesterBindingMode},
				RequesterEmail: auth.RequesterEmail(c),
				ReasonNote:     p.ReasonNote,
			}, func(context.Context) (int, error) { return 0, nil }); err != nil {
				return err
			}
			deferred = true
			out = b
			return nil
		}

		if p.SemesterBindingLabelMode != nil {
			b.SemesterBindingLabelMode = *p.SemesterBindingLabelMode
		}
		if !exists {
			if err := tx.Create(&b).Error; err != nil {
				return err
			}
		} else if err := tx.Save(&b).Error; err != nil {
			return err
		}
		out = b
		return nil
	})
	if err != nil {
		return jsonTxError(c, err, "Failed to update binding")
	}
	if deferred {
		return helper.JsonDeferred(c, "Binding change submitted for approval", dto.BindingFromModel(out))
	}
	return helper.JsonUpdated(c, "Binding updated", dto.BindingFromModel(out))
}
