// file: internals/features/approvals/change_tickets/dto/change_ticket_dto.go
package dto

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"

	model "kampusku_backend/internals/features/approvals/change_tickets/model"
)

type ChangeTicketResponseDTO struct {
	ChangeTicketID             uuid.UUID       `json:"change_ticket_id"`
	ChangeTicketObjectType     string          `json:"change_ticket_object_type"`
	ChangeTicketObjectID       string          `json:"change_ticket_object_id"`
	ChangeTicketAction         string          `json:"change_ticket_action"`
	ChangeTicketPayload        json.RawMessage `json:"change_ticket_payload,omitempty"`
	ChangeTicketRequesterEmail string          `json:"change_ticket_requester_email"`
	ChangeTicketReasonNote     string          `json:"change_ticket_reason_note,omitempty"`
	ChangeTicketStatus         string          `json:"change_ticket_status"`
	ChangeTicketCreatedAt      time.Time       `json:"change_ticket_created_at"`
}

func FromModel(ent model.ChangeTicketModel) ChangeTicketResponseDTO {
	return ChangeTicketResponseDTO{
		ChangeTicketID:             ent.ChangeTicketID,
		ChangeTicketObjectType:     ent.ChangeTicketObjectType,
		ChangeTicketObjectID:       ent.ChangeTicketObjectID,
		ChangeTicketAction:         ent.ChangeTicketAction,
		ChangeTicketPayload:        json.RawMessage(ent.ChangeTicketPayload),
		ChangeTicketRequesterEmail: ent.ChangeTicketRequesterEmail,
		ChangeTicketReasonNote:     ent.ChangeTicketReasonNote,
		ChangeTicketStatus:         ent.ChangeTicketStatus,
		ChangeTicketCreatedAt:      ent.ChangeTicketCreatedAt,
	}
}

func FromModels(list []model.ChangeTicketModel) []ChangeTicketResponseDTO {
	out := make([]ChangeTicketResponseDTO, 0, len(list))
	for _, it := range list {
		out = append(out, FromModel(it))
	}
	return out
}
