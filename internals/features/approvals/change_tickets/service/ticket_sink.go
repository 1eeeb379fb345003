// file: internals/features/approvals/change_tickets/service/ticket_sink.go
package service

import (
	"context"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	semesterService "kampusku_backend/internals/features/academics/semesters/service"
	model "kampusku_backend/internals/features/approvals/change_tickets/model"
)

// gormTicketSink writes pending tickets into the approval queue table.
type gormTicketSink struct{ db *gorm.DB }

func NewGormTicketSink(db *gorm.DB) semesterService.TicketSink { return &gormTicketSink{db: db} }

func (s *gormTicketSink) Submit(ctx context.Context, t semesterService.TicketRequest) error {
	ent := model.ChangeTicketModel{
		ChangeTicketObjectType:     t.ObjectType,
		ChangeTicketObjectID:       t.ObjectID,
		ChangeTicketAction:         t.Action,
		ChangeTicketPayload:        datatypes.JSON(t.Payload),
		ChangeTicketRequesterEmail: t.RequesterEmail,
		ChangeTicketReasonNote:     t.ReasonNote,
		ChangeTicketStatus:         model.StatusPending,
	}
	return s.db.WithContext(ctx).Create(&ent).Error
}
