// file: internals/features/academics/semesters/dto/semester_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	model "kampusku_backend/internals/features/academics/semesters/model"
)

// =======================
// Request DTO
// =======================

type SemesterBindingUpdateDTO struct {
	SemesterBindingMode      *string `json:"semester_binding_mode,omitempty"       validate:"omitempty,oneof=degree program branch"`
	SemesterBindingLabelMode *string `json:"semester_binding_label_mode,omitempty" validate:"omitempty,oneof=year_term semester_n"`
	ReasonNote               string  `json:"reason_note,omitempty"                 validate:"omitempty,max=500"`
}

type SemesterStructureUpsertDTO struct {
	SemesterStructureLevel        string     `json:"semester_structure_level"          validate:"required,oneof=degree program branch"`
	SemesterStructureTargetID     *uuid.UUID `json:"semester_structure_target_id,omitempty"`
	SemesterStructureYears        int        `json:"semester_structure_years"          validate:"required,min=1,max=10"`
	SemesterStructureTermsPerYear int        `json:"semester_structure_terms_per_year" validate:"required,min=1,max=5"`
	ReasonNote                    string     `json:"reason_note,omitempty"             validate:"omitempty,max=500"`
}

type SemesterRebuildDTO struct {
	TargetID   *uuid.UUID `json:"target_id,omitempty"`
	ReasonNote string     `json:"reason_note,omitempty" validate:"omitempty,max=500"`
}

// =======================
// Response DTO
// =======================

type SemesterBindingResponseDTO struct {
	SemesterBindingID         uuid.UUID `json:"semester_binding_id"`
	SemesterBindingDegreeCode string    `json:"semester_binding_degree_code"`
	SemesterBindingMode       string    `json:"semester_binding_mode"`
	SemesterBindingLabelMode  string    `json:"semester_binding_label_mode"`
	SemesterBindingCreatedAt  time.Time `json:"semester_binding_created_at"`
	SemesterBindingUpdatedAt  time.Time `json:"semester_binding_updated_at"`
}

type SemesterStructureResponseDTO struct {
	SemesterStructureID           uuid.UUID  `json:"semester_structure_id"`
	SemesterStructureLevel        string     `json:"semester_structure_level"`
	SemesterStructureDegreeCode   string     `json:"semester_structure_degree_code"`
	SemesterStructureTargetID     *uuid.UUID `json:"semester_structure_target_id,omitempty"`
	SemesterStructureYears        int        `json:"semester_structure_years"`
	SemesterStructureTermsPerYear int        `json:"semester_structure_terms_per_year"`
	SemesterStructureUpdatedAt    time.Time  `json:"semester_structure_updated_at"`
}

type SemesterResponseDTO struct {
	SemesterID         uuid.UUID  `json:"semester_id"`
	SemesterDegreeCode string     `json:"semester_degree_code"`
	SemesterProgramID  *uuid.UUID `json:"semester_program_id,omitempty"`
	SemesterBranchID   *uuid.UUID `json:"semester_branch_id,omitempty"`
	SemesterYearIndex  int        `json:"semester_year_index"`
	SemesterTermIndex  int        `json:"semester_term_index"`
	SemesterNumber     int        `json:"semester_number"`
	SemesterLabel      string     `json:"semester_label"`
	SemesterIsActive   bool       `json:"semester_is_active"`
}

type RebuildResultDTO struct {
	Deferred bool `json:"deferred"`
	Rows     int  `json:"rows"`
}

// =======================
// Helpers
// =======================

func (u *SemesterBindingUpdateDTO) Normalize() {
	if u.SemesterBindingMode != nil {
		m := strings.ToLower(strings.TrimSpace(*u.SemesterBindingMode))
		u.SemesterBindingMode = &m
	}
	if u.SemesterBindingLabelMode != nil {
		m := strings.ToLower(strings.TrimSpace(*u.SemesterBindingLabelMode))
		u.SemesterBindingLabelMode = &m
	}
	u.ReasonNote = strings.TrimSpace(u.ReasonNote)
}

func (p *SemesterStructureUpsertDTO) Normalize() {
	p.SemesterStructureLevel = strings.ToLower(strings.TrimSpace(p.SemesterStructureLevel))
	p.ReasonNote = strings.TrimSpace(p.ReasonNote)
}

func BindingFromModel(ent model.SemesterBindingModel) SemesterBindingResponseDTO {
	return SemesterBindingResponseDTO{
		SemesterBindingID:         ent.SemesterBindingID,
		SemesterBindingDegreeCode: ent.SemesterBindingDegreeCode,
		SemesterBindingMode:       ent.SemesterBindingMode,
		SemesterBindingLabelMode:  ent.SemesterBindingLabelMode,
		SemesterBindingCreatedAt:  ent.SemesterBindingCreatedAt,
		SemesterBindingUpdatedAt:  ent.SemesterBindingUpdatedAt,
	}
}

func StructureFromModel(ent model.SemesterStructureModel) SemesterStructureResponseDTO {
	return SemesterStructureResponseDTO{
		SemesterStructureID:           ent.SemesterStructureID,
		SemesterStructureLevel:        ent.SemesterStructureLevel,
		SemesterStructureDegreeCode:   ent.SemesterStructureDegreeCode,
		SemesterStructureTargetID:     ent.SemesterStructureTargetID,
		SemesterStructureYears:        ent.SemesterStructureYears,
		SemesterStructureTermsPerYear: ent.SemesterStructureTermsPerYear,
		SemesterStructureUpdatedAt:    ent.SemesterStructureUpdatedAt,
	}
}

func SemesterFromModel(ent model.SemesterModel) SemesterResponseDTO {
	return SemesterResponseDTO{
		SemesterID:         ent.SemesterID,
		SemesterDegreeCode: ent.SemesterDegreeCode,
		SemesterProgramID:  ent.SemesterProgramID,
		SemesterBranchID:   ent.SemesterBranchID,
		SemesterYearIndex:  ent.SemesterYearIndex,
		SemesterTermIndex:  ent.SemesterTermIndex,
		SemesterNumber:     ent.SemesterNumber,
		SemesterLabel:      ent.SemesterLabel,
		SemesterIsActive:   ent.SemesterIsActive,
	}
}

func SemestersFromModels(list []model.SemesterModel) []SemesterResponseDTO {
	out := make([]SemesterResponseDTO, 0, len(list))
	for _, it := range list {
		out = append(out, SemesterFromModel(it))
	}
	return out
}
