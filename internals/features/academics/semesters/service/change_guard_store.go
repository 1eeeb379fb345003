// file: internals/features/academics/semesters/service/change_guard_store.go
package service

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"kampusku_backend/internals/features/academics/semesters/model"
)

// TicketSinkFactory builds a sink bound to a specific DB handle. Controllers
// pass the request transaction so a deferral writes its ticket atomically
// with the dependents check.
type TicketSinkFactory func(tx *gorm.DB) TicketSink

type gormDependentCounter struct{ db *gorm.DB }

func NewGormDependentCounter(db *gorm.DB) DependentCounter { return &gormDependentCounter{db: db} }

func (c *gormDependentCounter) CountForTarget(ctx context.Context, degreeCode string, programID, branchID *uuid.UUID) (int64, error) {
	q := c.db.WithContext(ctx).Model(&model.SemesterModel{}).
		Where("semester_degree_code = ?", degreeCode)
	if programID == nil {
		q = q.Where("semester_program_id IS NULL")
	} else {
		q = q.Where("semester_program_id = ?", *programID)
	}
	if branchID == nil {
		q = q.Where("semester_branch_id IS NULL")
	} else {
		q = q.Where("semester_branch_id = ?", *branchID)
	}
	var n int64
	err := q.Count(&n).Error
	return n, err
}

func (c *gormDependentCounter) CountForDegree(ctx context.Context, degreeCode string) (int64, error) {
	var n int64
	err := c.db.WithContext(ctx).Model(&model.SemesterModel{}).
		Where("semester_degree_code = ?", degreeCode).
		Count(&n).Error
	return n, err
}
