// file: internals/features/academics/academic_years/model/academic_year_model.go
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
	StatusPlanned = "planned"
	StatusOpen    = "open"
	StatusClosed  = "closed"
)

type AcademicYearModel struct {
	AcademicYearID        uuid.UUID      `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:academic_year_id" json:"academic_year_id"`
	// Example: "2025-26", "AY2025/26"
	AcademicYearCode      string         `gorm:"type:text;not null;column:academic_year_code" json:"academic_year_code"`
	AcademicYearStartDate time.Time      `gorm:"type:date;not null;column:academic_year_start_date" json:"academic_year_start_date"`
	AcademicYearEndDate   time.Time      `gorm:"type:date;not null;column:academic_year_end_date" json:"academic_year_end_date"`
	AcademicYearStatus    string         `gorm:"type:text;not null;default:planned;column:academic_year_status" json:"academic_year_status"`

	AcademicYearCreatedAt time.Time      `gorm:"type:timestamptz;not null;autoCreateTime;column:academic_year_created_at" json:"academic_year_created_at"`
	AcademicYearUpdatedAt time.Time      `gorm:"type:timestamptz;not null;autoUpdateTime;column:academic_year_updated_at" json:"academic_year_updated_at"`
	AcademicYearDeletedAt gorm.DeletedAt `gorm:"column:academic_year_deleted_at;index" json:"academic_year_deleted_at,omitempty"`
}

func (AcademicYearModel) TableName() string { return "academic_years" }

func (m *AcademicYearModel) BeforeSave(tx *gorm.DB) error {
	m.AcademicYearCode = strings.TrimSpace(m.AcademicYearCode)
	if !aycode.Valid(m.AcademicYearCode) {
		return errors.New("academic_year_code must look like 2025-26, 2025/26 or AY2025-26")
	}
	if m.AcademicYearEndDate.Before(m.AcademicYearStartDate) {
		return errors.New("academic_year_end_date must be >= academic_year_start_date")
	}
	switch m.AcademicYearStatus {
	case StatusPlanned, StatusOpen, StatusClosed:
	default:
		return errors.New("academic_year_status must be planned, open or closed")
	}
	return nil
}
