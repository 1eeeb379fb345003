// file: internals/features/academics/org/model/org_models.go
//
// Read-only reference models for the organizational hierarchy. The tables are
// owned by the degree/program/branch admin subsystem; the calendar engine only
// queries them (resolver code validation, materializer target iteration).
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type DegreeModel struct {
	DegreeID        uuid.UUID      `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:degree_id" json:"degree_id"`
	DegreeCode      string         `gorm:"type:text;not null;column:degree_code" json:"degree_code"`
	DegreeName      string         `gorm:"type:text;not null;column:degree_name" json:"degree_name"`
	DegreeCreatedAt time.Time      `gorm:"type:timestamptz;not null;autoCreateTime;column:degree_created_at" json:"degree_created_at"`
	DegreeUpdatedAt time.Time      `gorm:"type:timestamptz;not null;autoUpdateTime;column:degree_updated_at" json:"degree_updated_at"`
	DegreeDeletedAt gorm.DeletedAt `gorm:"column:degree_deleted_at;index" json:"degree_deleted_at,omitempty"`
}

func (DegreeModel) TableName() string { return "degrees" }

type ProgramModel struct {
	ProgramID         uuid.UUID      `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:program_id" json:"program_id"`
	ProgramDegreeCode string         `gorm:"type:text;not null;column:program_degree_code" json:"program_degree_code"`
	ProgramCode       string         `gorm:"type:text;not null;column:program_code" json:"program_code"`
	ProgramName       string         `gorm:"type:text;not null;column:program_name" json:"program_name"`
	ProgramCreatedAt  time.Time      `gorm:"type:timestamptz;not null;autoCreateTime;column:program_created_at" json:"program_created_at"`
	ProgramUpdatedAt  time.Time      `gorm:"type:timestamptz;not null;autoUpdateTime;column:program_updated_at" json:"program_updated_at"`
	ProgramDeletedAt  gorm.DeletedAt `gorm:"column:program_deleted_at;index" json:"program_deleted_at,omitempty"`
}

func (ProgramModel) TableName() string { return "programs" }

type BranchModel struct {
	BranchID         uuid.UUID      `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:branch_id" json:"branch_id"`
	BranchDegreeCode string         `gorm:"type:text;not null;column:branch_degree_code" json:"branch_degree_code"`
	BranchProgramID  *uuid.UUID     `gorm:"type:uuid;column:branch_program_id" json:"branch_program_id,omitempty"`
	BranchCode       string         `gorm:"type:text;not null;column:branch_code" json:"branch_code"`
	BranchName       string         `gorm:"type:text;not null;column:branch_name" json:"branch_name"`
	BranchCreatedAt  time.Time      `gorm:"type:timestamptz;not null;autoCreateTime;column:branch_created_at" json:"branch_created_at"`
	BranchUpdatedAt  time.Time      `gorm:"type:timestamptz;not null;autoUpdateTime;column:branch_updated_at" json:"branch_updated_at"`
	BranchDeletedAt  gorm.DeletedAt `gorm:"column:branch_deleted_at;index" json:"branch_deleted_at,omitempty"`
}

func (BranchModel) TableName() string { return "branches" }
