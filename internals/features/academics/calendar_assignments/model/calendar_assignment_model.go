// file: internals/features/academics/calendar_assignments/model/calendar_assignment_model.go
package model

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"kampusku_backend/internals/helpers/aycode"
)

const (
	LevelDegree  = "degree"
	LevelProgram = "program"
	LevelBranch  = "branch"
)

type CalendarAssignmentModel struct {
	CalendarAssignmentID    uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:calendar_assignment_id" json:"calendar_assignment_id"`
	CalendarAssignmentLevel string    `gorm:"type:text;not null;column:calendar_assignment_level" json:"calendar_assignment_level"`

	CalendarAssignmentDegreeCode  string `gorm:"type:text;not null;column:calendar_assignment_degree_code" json:"calendar_assignment_degree_code"`
	CalendarAssignmentProgramCode string `gorm:"type:text;not null;default:'';column:calendar_assignment_program_code" json:"calendar_assignment_program_code"`
	CalendarAssignmentBranchCode  string `gorm:"type:text;not null;default:'';column:calendar_assignment_branch_code" json:"calendar_assignment_branch_code"`

	CalendarAssignmentEffectiveFromAY string `gorm:"type:text;not null;column:calendar_assignment_effective_from_ay" json:"calendar_assignment_effective_from_ay"`
	// Derived from the AY code in BeforeSave; keeps the precedence query an
	// integer comparison instead of string arithmetic over mixed formats.
	CalendarAssignmentEffectiveFromYear int `gorm:"not null;column:calendar_assignment_effective_from_year" json:"calendar_assignment_effective_from_year"`

	CalendarAssignmentProgressionYear int    `gorm:"not null;default:1;column:calendar_assignment_progression_year" json:"calendar_assignment_progression_year"`
	CalendarAssignmentProfileCode     string `gorm:"type:text;not null;column:calendar_assignment_profile_code" json:"calendar_assignment_profile_code"`
	CalendarAssignmentShiftDays       int    `gorm:"not null;default:0;column:calendar_assignment_shift_days" json:"calendar_assignment_shift_days"`
	CalendarAssignmentIsActive        bool   `gorm:"not null;default:true;column:calendar_assignment_is_active" json:"calendar_assignment_is_active"`

	CalendarAssignmentCreatedAt time.Time `gorm:"type:timestamptz;not null;autoCreateTime;column:calendar_assignment_created_at" json:"calendar_assignment_created_at"`
	CalendarAssignmentUpdatedAt time.Time `gorm:"type:timestamptz;not null;autoUpdateTime;column:calendar_assignment_updated_at" json:"calendar_assignment_updated_at"`
}

func (CalendarAssignmentModel) TableName() string { return "calendar_assignments" }

func (m *CalendarAssignmentModel) BeforeSave(tx *gorm.DB) error {
	m.CalendarAssignmentDegreeCode = strings.TrimSpace(m.CalendarAssignmentDegreeCode)
	m.CalendarAssignmentProgramCode = strings.TrimSpace(m.CalendarAssignmentProgramCode)
	m.CalendarAssignmentBranchCode = strings.TrimSpace(m.CalendarAssignmentBranchCode)
	m.CalendarAssignmentProfileCode = strings.TrimSpace(m.CalendarAssignmentProfileCode)

	if m.CalendarAssignmentDegreeCode == "" {
		return errors.New("calendar_assignment_degree_code is required")
	}
	switch m.CalendarAssignmentLevel {
	case LevelDegree:
		if m.CalendarAssignmentProgramCode != "" || m.CalendarAssignmentBranchCode != "" {
			return errors.New("degree-level assignments must not carry program or branch codes")
		}
	case LevelProgram:
		if m.CalendarAssignmentProgramCode == "" {
			return errors.New("program-level assignments require a program code")
		}
		if m.CalendarAssignmentBranchCode != "" {
			return errors.New("program-level assignments must not carry a branch code")
		}
	case LevelBranch:
		if m.CalendarAssignmentBranchCode == "" {
			return errors.New("branch-level assignments require a branch code")
		}
	default:
		return errors.New("calendar_assignment_level must be degree, program or branch")
	}

	if m.CalendarAssignmentShiftDays < -30 || m.CalendarAssignmentShiftDays > 30 {
		return errors.New("calendar_assignment_shift_days must be between -30 and 30")
	}
	if m.CalendarAssignmentProgressionYear < 1 || m.CalendarAssignmentProgressionYear > 10 {
		return errors.New("calendar_assignment_progression_year must be between 1 and 10")
	}

	year, err := aycode.Parse(m.CalendarAssignmentEffectiveFromAY)
	if err != nil {
		return err
	}
	m.CalendarAssignmentEffectiveFromYear = year
	return nil
}
