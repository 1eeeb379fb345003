// file: internals/features/approvals/change_tickets/controller/change_ticket_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	dto "kampusku_backend/internals/features/approvals/change_tickets/dto"
	model "kampusku_backend/internals/features/approvals/change_tickets/model"
	helper "kampusku_backend/internals/helpers"
)

// Read-only surface. Tickets are created by the change guard and resolved
// by the approval subsystem, never through these endpoints.
type ChangeTicketController struct {
	DB *gorm.DB
}

func NewChangeTicketController(db *gorm.DB) *ChangeTicketController {
	return &ChangeTicketController{DB: db}
}

// GET /api/a/change-tickets/:id
func (ctl *ChangeTicketController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid id")
	}
	var ent model.ChangeTicketModel
	if err := ctl.DB.WithContext(c.UserContext()).
		First(&ent, "change_ticket_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Change ticket not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch change ticket")
	}
	return helper.JsonOK(c, "OK", dto.FromModel(ent))
}

// GET /api/a/change-tickets?object_id=&status=&action=
func (ctl *ChangeTicketController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 200)

	q := ctl.DB.WithContext(c.UserContext()).Model(&model.ChangeTicketModel{}).
		Where("change_ticket_object_type = ?", "semesters")
	if v := strings.TrimSpace(c.Query("object_id")); v != "" {
		q = q.Where("change_ticket_object_id = ?", v)
	}
	if v := strings.ToLower(strings.TrimSpace(c.Query("status"))); v != "" {
		q = q.Where("change_ticket_status = ?", v)
	}
	if v := strings.ToLower(strings.TrimSpace(c.Query("action"))); v != "" {
		q = q.Where("change_ticket_action = ?", v)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count change tickets")
	}
	var rows []model.ChangeTicketModel
	if err := q.Order("change_ticket_created_at DESC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load change tickets")
	}

	return helper.JsonList(c, "OK", dto.FromModels(rows),
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}
