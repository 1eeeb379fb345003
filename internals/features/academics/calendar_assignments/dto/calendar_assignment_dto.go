// file: internals/features/academics/calendar_assignments/dto/calendar_assignment_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	model "kampusku_backend/internals/features/academics/calendar_assignments/model"
)

// =======================
// Request DTO
// =======================

type CalendarAssignmentCreateDTO struct {
	CalendarAssignmentLevel           string `json:"calendar_assignment_level"             validate:"required,oneof=degree program branch"`
	CalendarAssignmentDegreeCode      string `json:"calendar_assignment_degree_code"       validate:"required,min=1,max=24"`
	CalendarAssignmentProgramCode     string `json:"calendar_assignment_program_code"      validate:"omitempty,max=24"`
	CalendarAssignmentBranchCode      string `json:"calendar_assignment_branch_code"       validate:"omitempty,max=24"`
	CalendarAssignmentEffectiveFromAY string `json:"calendar_assignment_effective_from_ay" validate:"required,min=7,max=10"`
	CalendarAssignmentProgressionYear int    `json:"calendar_assignment_progression_year"  validate:"required,min=1,max=10"`
	CalendarAssignmentProfileCode     string `json:"calendar_assignment_profile_code"      validate:"required,min=2,max=24"`
	CalendarAssignmentShiftDays       int    `json:"calendar_assignment_shift_days"        validate:"min=-30,max=30"`
}

type CalendarAssignmentFilterDTO struct {
	DegreeCode      *string `query:"degree"           validate:"omitempty,min=1"`
	Level           *string `query:"level"            validate:"omitempty,oneof=degree program branch"`
	ProgressionYear *int    `query:"progression_year" validate:"omitempty,min=1,max=10"`
	ActiveOnly      *bool   `query:"active_only"`
}

// =======================
// Response DTO
// =======================

type CalendarAssignmentResponseDTO struct {
	CalendarAssignmentID                uuid.UUID `json:"calendar_assignment_id"`
	CalendarAssignmentLevel             string    `json:"calendar_assignment_level"`
	CalendarAssignmentDegreeCode        string    `json:"calendar_assignment_degree_code"`
	CalendarAssignmentProgramCode       string    `json:"calendar_assignment_program_code,omitempty"`
	CalendarAssignmentBranchCode        string    `json:"calendar_assignment_branch_code,omitempty"`
	CalendarAssignmentEffectiveFromAY   string    `json:"calendar_assignment_effective_from_ay"`
	CalendarAssignmentEffectiveFromYear int       `json:"calendar_assignment_effective_from_year"`
	CalendarAssignmentProgressionYear   int       `json:"calendar_assignment_progression_year"`
	CalendarAssignmentProfileCode       string    `json:"calendar_assignment_profile_code"`
	CalendarAssignmentShiftDays         int       `json:"calendar_assignment_shift_days"`
	CalendarAssignmentIsActive          bool      `json:"calendar_assignment_is_active"`
	CalendarAssignmentCreatedAt         time.Time `json:"calendar_assignment_created_at"`
}

// =======================
// Helpers
// =======================

func (p *CalendarAssignmentCreateDTO) Normalize() {
	p.CalendarAssignmentLevel = strings.ToLower(strings.TrimSpace(p.CalendarAssignmentLevel))
	p.CalendarAssignmentDegreeCode = strings.TrimSpace(p.CalendarAssignmentDegreeCode)
	p.CalendarAssignmentProgramCode = strings.TrimSpace(p.CalendarAssignmentProgramCode)
	p.CalendarAssignmentBranchCode = strings.TrimSpace(p.CalendarAssignmentBranchCode)
	p.CalendarAssignmentEffectiveFromAY = strings.TrimSpace(p.CalendarAssignmentEffectiveFromAY)
	p.CalendarAssignmentProfileCode = strings.ToUpper(strings.TrimSpace(p.CalendarAssignmentProfileCode))
}

func (p *CalendarAssignmentCreateDTO) ToModel() model.CalendarAssignmentModel {
	return model.CalendarAssignmentModel{
		CalendarAssignmentLevel:           p.CalendarAssignmentLevel,
		CalendarAssignmentDegreeCode:      p.CalendarAssignmentDegreeCode,
		CalendarAssignmentProgramCode:     p.CalendarAssignmentProgramCode,
		CalendarAssignmentBranchCode:      p.CalendarAssignmentBranchCode,
		CalendarAssignmentEffectiveFromAY: p.CalendarAssignmentEffectiveFromAY,
		CalendarAssignmentProgressionYear: p.CalendarAssignmentProgressionYear,
		CalendarAssignmentProfileCode:     p.CalendarAssignmentProfileCode,
		CalendarAssignmentShiftDays:       p.CalendarAssignmentShiftDays,
		CalendarAssignmentIsActive:        true,
	}
}

func FromModel(ent model.CalendarAssignmentModel) CalendarAssignmentResponseDTO {
	return CalendarAssignmentResponseDTO{
		CalendarAssignmentID:                ent.CalendarAssignmentID,
		CalendarAssignmentLevel:             ent.CalendarAssignmentLevel,
		CalendarAssignmentDegreeCode:        ent.CalendarAssignmentDegreeCode,
		CalendarAssignmentProgramCode:       ent.CalendarAssignmentProgramCode,
		CalendarAssignmentBranchCode:        ent.CalendarAssignmentBranchCode,
		CalendarAssignmentEffectiveFromAY:   ent.CalendarAssignmentEffectiveFromAY,
		CalendarAssignmentEffectiveFromYear: ent.CalendarAssignmentEffectiveFromYear,
		CalendarAssignmentProgressionYear:   ent.CalendarAssignmentProgressionYear,
		CalendarAssignmentProfileCode:       ent.CalendarAssignmentProfileCode,
		CalendarAssignmentShiftDays:         ent.CalendarAssignmentShiftDays,
		CalendarAssignmentIsActive:          ent.CalendarAssignmentIsActive,
		CalendarAssignmentCreatedAt:         ent.CalendarAssignmentCreatedAt,
	}
}

func FromModels(list []model.CalendarAssignmentModel) []CalendarAssignmentResponseDTO {
	out := make([]CalendarAssignmentResponseDTO, 0, len(list))
	for _, it := range list {
		out = append(out, FromModel(it))
	}
	return out
}
