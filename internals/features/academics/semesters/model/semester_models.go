// file: internals/features/academics/semesters/model/semester_models.go
package model

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	BindingDegree  = "degree"
	BindingProgram = "program"
	BindingBranch  = "branch"

	LabelYearTerm  = "year_term"
	LabelSemesterN = "semester_n"
)

/* ============================================
   SemesterBinding: which org level owns the
   semester structure of a degree, and how the
   generated rows are labeled.
============================================ */

type SemesterBindingModel struct {
	SemesterBindingID         uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:semester_binding_id" json:"semester_binding_id"`
	SemesterBindingDegreeCode string    `gorm:"type:text;not null;uniqueIndex;column:semester_binding_degree_code" json:"semester_binding_degree_code"`
	SemesterBindingMode       string    `gorm:"type:text;not null;default:degree;column:semester_binding_mode" json:"semester_binding_mode"`
	SemesterBindingLabelMode  string    `gorm:"type:text;not null;default:year_term;column:semester_binding_label_mode" json:"semester_binding_label_mode"`
	SemesterBindingCreatedAt  time.Time `gorm:"type:timestamptz;not null;autoCreateTime;column:semester_binding_created_at" json:"semester_binding_created_at"`
	SemesterBindingUpdatedAt  time.Time `gorm:"type:timestamptz;not null;autoUpdateTime;column:semester_binding_updated_at" json:"semester_binding_updated_at"`
}

func (SemesterBindingModel) TableName() string { return "semester_bindings" }

func (m *SemesterBindingModel) BeforeSave(tx *gorm.DB) error {
	m.SemesterBindingDegreeCode = strings.TrimSpace(m.SemesterBindingDegreeCode)
	if m.SemesterBindingDegreeCode == "" {
		return errors.New("semester_binding_degree_code is required")
	}
	switch m.SemesterBindingMode {
	case BindingDegree, BindingProgram, BindingBranch:
	default:
		return errors.New("semester_binding_mode must be degree, program or branch")
	}
	switch m.SemesterBindingLabelMode {
	case LabelYearTerm, LabelSemesterN:
	default:
		return errors.New("semester_binding_label_mode must be year_term or semester_n")
	}
	return nil
}

// DefaultBinding is what a degree gets before anything is configured.
func DefaultBinding(degreeCode string) SemesterBindingModel {
	return SemesterBindingModel{
		SemesterBindingDegreeCode: degreeCode,
		SemesterBindingMode:       BindingDegree,
		SemesterBindingLabelMode:  LabelYearTerm,
	}
}

/* ============================================
   SemesterStructure: years x terms-per-year for
   one target (degree, program or branch).
============================================ */

type SemesterStructureModel struct {
	SemesterStructureID           uuid.UUID  `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:semester_structure_id" json:"semester_structure_id"`
	SemesterStructureLevel        string     `gorm:"type:text;not null;column:semester_structure_level" json:"semester_structure_level"`
	SemesterStructureDegreeCode   string     `gorm:"type:text;not null;column:semester_structure_degree_code" json:"semester_structure_degree_code"`
	// nil for degree-level structures, the program/branch id otherwise
	SemesterStructureTargetID     *uuid.UUID `gorm:"type:uuid;column:semester_structure_target_id" json:"semester_structure_target_id,omitempty"`
	SemesterStructureYears        int        `gorm:"not null;column:semester_structure_years" json:"semester_structure_years"`
	SemesterStructureTermsPerYear int        `gorm:"not null;column:semester_structure_terms_per_year" json:"semester_structure_terms_per_year"`
	SemesterStructureCreatedAt    time.Time  `gorm:"type:timestamptz;not null;autoCreateTime;column:semester_structure_created_at" json:"semester_structure_created_at"`
	SemesterStructureUpdatedAt    time.Time  `gorm:"type:timestamptz;not null;autoUpdateTime;column:semester_structure_updated_at" json:"semester_structure_updated_at"`
}

func (SemesterStructureModel) TableName() string { return "semester_structures" }

func (m *SemesterStructureModel) BeforeSave(tx *gorm.DB) error {
	if m.SemesterStructureYears < 1 || m.SemesterStructureYears > 10 {
		return errors.New("semester_structure_years must be between 1 and 10")
	}
	if m.SemesterStructureTermsPerYear < 1 || m.SemesterStructureTermsPerYear > 5 {
		return errors.New("semester_structure_terms_per_year must be between 1 and 5")
	}
	switch m.SemesterStructureLevel {
	case BindingDegree:
		if m.SemesterStructureTargetID != nil {
			return errors.New("degree-level structures must not carry a target id")
		}
	case BindingProgram, BindingBranch:
		if m.SemesterStructureTargetID == nil {
			return errors.New("program/branch structures require a target id")
		}
	default:
		return errors.New("semester_structure_level must be degree, program or branch")
	}
	return nil
}

/* ============================================
   Semester: entirely derived rows. Regenerated
   by the materializer, never hand-edited.
============================================ */

type SemesterModel struct {
	SemesterID         uuid.UUID  `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:semester_id" json:"semester_id"`
	SemesterDegreeCode string     `gorm:"type:text;not null;column:semester_degree_code" json:"semester_degree_code"`
	SemesterProgramID  *uuid.UUID `gorm:"type:uuid;column:semester_program_id" json:"semester_program_id,omitempty"`
	SemesterBranchID   *uuid.UUID `gorm:"type:uuid;column:semester_branch_id" json:"semester_branch_id,omitempty"`
	SemesterYearIndex  int        `gorm:"not null;column:semester_year_index" json:"semester_year_index"`
	SemesterTermIndex  int        `gorm:"not null;column:semester_term_index" json:"semester_term_index"`
	// 1-based sequential position across the whole (year, term) grid
	SemesterNumber    int       `gorm:"not null;column:semester_number" json:"semester_number"`
	SemesterLabel     string    `gorm:"type:text;not null;column:semester_label" json:"semester_label"`
	SemesterIsActive  bool      `gorm:"not null;default:true;column:semester_is_active" json:"semester_is_active"`
	SemesterCreatedAt time.Time `gorm:"type:timestamptz;not null;autoCreateTime;column:semester_created_at" json:"semester_created_at"`
	SemesterUpdatedAt time.Time `gorm:"type:timestamptz;not null;autoUpdateTime;column:semester_updated_at" json:"semester_updated_at"`
}

func (SemesterModel) TableName() string { return "semesters" }
