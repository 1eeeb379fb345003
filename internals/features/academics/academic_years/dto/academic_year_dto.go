// file: internals/features/academics/academic_years/dto/academic_year_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"kampusku_backend/internals/features/academics/academic_years/model"
)

// =======================
// Request DTO
// =======================

type AcademicYearCreateDTO struct {
	AcademicYearCode      string    `json:"academic_year_code"       validate:"required,min=7,max=10"`
	AcademicYearStartDate time.Time `json:"academic_year_start_date" validate:"required"`
	AcademicYearEndDate   time.Time `json:"academic_year_end_date"   validate:"required,gtefield=AcademicYearStartDate"`
	AcademicYearStatus    *string   `json:"academic_year_status,omitempty" validate:"omitempty,oneof=planned open closed"`
}

type AcademicYearUpdateDTO struct {
	AcademicYearCode      *string    `json:"academic_year_code,omitempty"       validate:"omitempty,min=7,max=10"`
	AcademicYearStartDate *time.Time `json:"academic_year_start_date,omitempty"`
	AcademicYearEndDate   *time.Time `json:"academic_year_end_date,omitempty"`
	AcademicYearStatus    *string    `json:"academic_year_status,omitempty"     validate:"omitempty,oneof=planned open closed"`
}

type AcademicYearFilterDTO struct {
	Code     *string `query:"code"      validate:"omitempty,min=4"`
	Status   *string `query:"status"    validate:"omitempty,oneof=planned open closed"`
	Page     int     `query:"page"      validate:"omitempty,min=1"`
	PageSize int     `query:"page_size" validate:"omitempty,min=1,max=200"`
}

// =======================
// Response DTO
// =======================

type AcademicYearResponseDTO struct {
	AcademicYearID        uuid.UUID  `json:"academic_year_id"`
	AcademicYearCode      string     `json:"academic_year_code"`
	AcademicYearStartDate time.Time  `json:"academic_year_start_date"`
	AcademicYearEndDate   time.Time  `json:"academic_year_end_date"`
	AcademicYearStatus    string     `json:"academic_year_status"`
	AcademicYearCreatedAt time.Time  `json:"academic_year_created_at"`
	AcademicYearUpdatedAt *time.Time `json:"academic_year_updated_at,omitempty"`
}

// =======================
// Helpers
// =======================

func (p *AcademicYearCreateDTO) Normalize() {
	p.AcademicYearCode = strings.TrimSpace(p.AcademicYearCode)
}

func (p *AcademicYearCreateDTO) ToModel() model.AcademicYearModel {
	status := model.StatusPlanned
	if p.AcademicYearStatus != nil {
		status = *p.AcademicYearStatus
	}
	return model.AcademicYearModel{
		AcademicYearCode:      p.AcademicYearCode,
		AcademicYearStartDate: p.AcademicYearStartDate,
		AcademicYearEndDate:   p.AcademicYearEndDate,
		AcademicYearStatus:    status,
	}
}

func (u *AcademicYearUpdateDTO) ApplyUpdates(ent *model.AcademicYearModel) {
	if u.AcademicYearCode != nil {
		ent.AcademicYearCode = strings.TrimSpace(*u.AcademicYearCode)
	}
	if u.AcademicYearStartDate != nil {
		ent.AcademicYearStartDate = *u.AcademicYearStartDate
	}
	if u.AcademicYearEndDate != nil {
		ent.AcademicYearEndDate = *u.AcademicYearEndDate
	}
	if u.AcademicYearStatus != nil {
		ent.AcademicYearStatus = *u.AcademicYearStatus
	}
}

func FromModel(ent model.AcademicYearModel) AcademicYearResponseDTO {
	out := AcademicYearResponseDTO{
		AcademicYearID:        ent.AcademicYearID,
		AcademicYearCode:      ent.AcademicYearCode,
		AcademicYearStartDate: ent.AcademicYearStartDate,
		AcademicYearEndDate:   ent.AcademicYearEndDate,
		AcademicYearStatus:    ent.AcademicYearStatus,
		AcademicYearCreatedAt: ent.AcademicYearCreatedAt,
	}
	if !ent.AcademicYearUpdatedAt.IsZero() {
		updated := ent.AcademicYearUpdatedAt
		out.AcademicYearUpdatedAt = &updated
	}
	return out
}

func FromModels(list []model.AcademicYearModel) []AcademicYearResponseDTO {
	out := make([]AcademicYearResponseDTO, 0, len(list))
	for _, it := range list {
		out = append(out, FromModel(it))
	}
	return out
}
