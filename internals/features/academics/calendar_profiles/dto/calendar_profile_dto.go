// file: internals/features/academics/calendar_profiles/dto/calendar_profile_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	model "kampusku_backend/internals/features/academics/calendar_profiles/model"
)

// =======================
// Request DTO
// =======================

type TermSpecDTO struct {
	Label         string `json:"label"           validate:"required,min=1,max=50"`
	StartMonthDay string `json:"start_month_day" validate:"required,len=5"`
	EndMonthDay   string `json:"end_month_day"   validate:"required,len=5"`
}

type CalendarProfileCreateDTO struct {
	CalendarProfileCode           string        `json:"calendar_profile_code"  validate:"required,min=2,max=24"`
	CalendarProfileName           string        `json:"calendar_profile_name"  validate:"required,min=2,max=100"`
	CalendarProfileModel          string        `json:"calendar_profile_model" validate:"omitempty,max=50"`
	CalendarProfileAnchorMonthDay *string       `json:"calendar_profile_anchor_month_day,omitempty" validate:"omitempty,len=5"`
	CalendarProfileTerms          []TermSpecDTO `json:"calendar_profile_terms" validate:"required,min=1,max=5,dive"`
}

type CalendarProfileUpdateDTO struct {
	CalendarProfileName           *string       `json:"calendar_profile_name,omitempty"  validate:"omitempty,min=2,max=100"`
	CalendarProfileModel          *string       `json:"calendar_profile_model,omitempty" validate:"omitempty,max=50"`
	CalendarProfileAnchorMonthDay *string       `json:"calendar_profile_anchor_month_day,omitempty" validate:"omitempty,len=5"`
	CalendarProfileTerms          []TermSpecDTO `json:"calendar_profile_terms,omitempty" validate:"omitempty,min=1,max=5,dive"`
}

type CalendarProfileCloneDTO struct {
	NewCode string  `json:"new_code" validate:"required,min=2,max=24"`
	NewName *string `json:"new_name,omitempty" validate:"omitempty,min=2,max=100"`
}

// =======================
// Response DTO
// =======================

type CalendarProfileResponseDTO struct {
	CalendarProfileID             uuid.UUID          `json:"calendar_profile_id"`
	CalendarProfileCode           string             `json:"calendar_profile_code"`
	CalendarProfileName           string             `json:"calendar_profile_name"`
	CalendarProfileModel          string             `json:"calendar_profile_model"`
	CalendarProfileAnchorMonthDay *string            `json:"calendar_profile_anchor_month_day,omitempty"`
	CalendarProfileTerms          model.TermSpecList `json:"calendar_profile_terms"`
	CalendarProfileIsLocked       bool               `json:"calendar_profile_is_locked"`
	CalendarProfileIsSystem       bool               `json:"calendar_profile_is_system"`
	CalendarProfileCreatedAt      time.Time          `json:"calendar_profile_created_at"`
	CalendarProfileUpdatedAt      time.Time          `json:"calendar_profile_updated_at"`
}

// =======================
// Helpers
// =======================

func termsToModel(in []TermSpecDTO) model.TermSpecList {
	out := make(model.TermSpecList, 0, len(in))
	for _, t := range in {
		out = append(out, model.TermSpec{
			Label:         strings.TrimSpace(t.Label),
			StartMonthDay: strings.TrimSpace(t.StartMonthDay),
			EndMonthDay:   strings.TrimSpace(t.EndMonthDay),
		})
	}
	return out
}

func (p *CalendarProfileCreateDTO) Normalize() {
	p.CalendarProfileCode = strings.ToUpper(strings.TrimSpace(p.CalendarProfileCode))
	p.CalendarProfileName = strings.TrimSpace(p.CalendarProfileName)
	p.CalendarProfileModel = strings.TrimSpace(p.CalendarProfileModel)
}

func (p *CalendarProfileCreateDTO) ToModel() model.CalendarProfileModel {
	var anchor *string
	if p.CalendarProfileAnchorMonthDay != nil {
		a := strings.TrimSpace(*p.CalendarProfileAnchorMonthDay)
		if a != "" {
			anchor = &a
		}
	}
	return model.CalendarProfileModel{
		CalendarProfileCode:           p.CalendarProfileCode,
		CalendarProfileName:           p.CalendarProfileName,
		CalendarProfileModel:          p.CalendarProfileModel,
		CalendarProfileAnchorMonthDay: anchor,
		CalendarProfileTerms:          termsToModel(p.CalendarProfileTerms),
	}
}

func (u *CalendarProfileUpdateDTO) ApplyUpdates(ent *model.CalendarProfileModel) {
	if u.CalendarProfileName != nil {
		ent.CalendarProfileName = strings.TrimSpace(*u.CalendarProfileName)
	}
	if u.CalendarProfileModel != nil {
		ent.CalendarProfileModel = strings.TrimSpace(*u.CalendarProfileModel)
	}
	if u.CalendarProfileAnchorMonthDay != nil {
		a := strings.TrimSpace(*u.CalendarProfileAnchorMonthDay)
		if a == "" {
			ent.CalendarProfileAnchorMonthDay = nil
		} else {
			ent.CalendarProfileAnchorMonthDay = &a
		}
	}
	if u.CalendarProfileTerms != nil {
		ent.CalendarProfileTerms = termsToModel(u.CalendarProfileTerms)
	}
}

func FromModel(ent model.CalendarProfileModel) CalendarProfileResponseDTO {
	return CalendarProfileResponseDTO{
		CalendarProfileID:             ent.CalendarProfileID,
		CalendarProfileCode:           ent.CalendarProfileCode,
		CalendarProfileName:           ent.CalendarProfileName,
		CalendarProfileModel:          ent.CalendarProfileModel,
		CalendarProfileAnchorMonthDay: ent.CalendarProfileAnchorMonthDay,
		CalendarProfileTerms:          ent.CalendarProfileTerms,
		CalendarProfileIsLocked:       ent.CalendarProfileIsLocked,
		CalendarProfileIsSystem:       ent.CalendarProfileIsSystem,
		CalendarProfileCreatedAt:      ent.CalendarProfileCreatedAt,
		CalendarProfileUpdatedAt:      ent.CalendarProfileUpdatedAt,
	}
}

func FromModels(list []model.CalendarProfileModel) []CalendarProfileResponseDTO {
	out := make([]CalendarProfileResponseDTO, 0, len(list))
	for _, it := range list {
		out = append(out, FromModel(it))
	}
	return out
}
