// file: internals/features/approvals/change_tickets/model/change_ticket_model.go
package model

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"
)

// Actions the semester engine may request approval for.
const (
	ActionBindingChange = "binding_change"
	ActionEditStructure = "edit_structure"
	ActionRebuild       = "rebuild_semesters"
	ActionRebuildAll    = "rebuild_all_semesters"
	ActionClearAll      = "clear_all_semesters"
)

// ChangeTicketModel is owned by the approval subsystem. This engine only
// creates pending tickets and reads their status; approve/reject happens
// elsewhere.
type ChangeTicketModel struct {
	ChangeTicketID             uuid.UUID      `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:change_ticket_id" json:"change_ticket_id"`
	ChangeTicketObjectType     string         `gorm:"type:text;not null;column:change_ticket_object_type" json:"change_ticket_object_type"`
	ChangeTicketObjectID       string         `gorm:"type:text;not null;column:change_ticket_object_id" json:"change_ticket_object_id"`
	ChangeTicketAction         string         `gorm:"type:text;not null;column:change_ticket_action" json:"change_ticket_action"`
	ChangeTicketPayload        datatypes.JSON `gorm:"type:jsonb;column:change_ticket_payload" json:"change_ticket_payload,omitempty"`
	ChangeTicketRequesterEmail string         `gorm:"type:text;not null;column:change_ticket_requester_email" json:"change_ticket_requester_email"`
	ChangeTicketReasonNote     string         `gorm:"type:text;column:change_ticket_reason_note" json:"change_ticket_reason_note,omitempty"`
	ChangeTicketStatus         string         `gorm:"type:text;not null;default:pending;column:change_ticket_status" json:"change_ticket_status"`
	ChangeTicketCreatedAt      time.Time      `gorm:"type:timestamptz;not null;autoCreateTime;column:change_ticket_created_at" json:"change_ticket_created_at"`
	ChangeTicketUpdatedAt      time.Time      `gorm:"type:timestamptz;not null;autoUpdateTime;column:change_ticket_updated_at" json:"change_ticket_updated_at"`
}

func (ChangeTicketModel) TableName() string { return "change_tickets" }

func (m *ChangeTicketModel) BeforeSave(tx *gorm.DB) error {
	m.ChangeTicketObjectType = strings.TrimSpace(m.ChangeTicketObjectType)
	m.ChangeTicketObjectID = strings.TrimSpace(m.ChangeTicketObjectID)
	if m.ChangeTicketObjectType == "" || m.ChangeTicketObjectID == "" {
		return errors.New("change_ticket_object_type and change_ticket_object_id are required")
	}
	switch m.ChangeTicketAction {
	case ActionBindingChange, ActionEditStructure, ActionRebuild, ActionRebuildAll, ActionClearAll:
	default:
		return errors.New("unknown change_ticket_action")
	}
	if m.ChangeTicketStatus == "" {
		m.ChangeTicketStatus = StatusPending
	}
	switch m.ChangeTicketStatus {
	case StatusPending, StatusApproved, StatusRejected:
	default:
		return errors.New("change_ticket_status must be pending, approved or rejected")
	}
	return nil
}
