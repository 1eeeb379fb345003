// file: internals/features/academics/semesters/service/materializer_store.go
package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"kampusku_backend/internals/features/academics/semesters/model"
)

/* ============================================
   GORM-backed stores. Bind them to the request
   transaction so the dependents check and the
   rebuild stay atomic.
============================================ */

type gormStructureReader struct{ db *gorm.DB }

func NewGormStructureReader(db *gorm.DB) StructureReader { return &gormStructureReader{db: db} }

func (s *gormStructureReader) Find(ctx context.Context, level, degreeCode string, targetID *uuid.UUID) (*model.SemesterStructureModel, error) {
	q := s.db.WithContext(ctx).
		Where("semester_structure_level = ? AND semester_structure_degree_code = ?", level, degreeCode)
	if targetID == nil {
		q = q.Where("semester_structure_target_id IS NULL")
	} else {
		q = q.Where("semester_structure_target_id = ?", *targetID)
	}
	var st model.SemesterStructureModel
	if err := q.First(&st).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &st, nil
}

func (s *gormStructureReader) ListForDegree(ctx context.Context, level, degreeCode string) ([]model.SemesterStructureModel, error) {
	var out []model.SemesterStructureModel
	err := s.db.WithContext(ctx).
		Where("semester_structure_level = ? AND semester_structure_degree_code = ?", level, degreeCode).
		Order("semester_structure_created_at ASC").
		Find(&out).Error
	return out, err
}

type gormSemesterStore struct{ db *gorm.DB }

func NewGormSemesterStore(db *gorm.DB) SemesterStore { return &gormSemesterStore{db: db} }

func (s *gormSemesterStore) DeleteTarget(ctx context.Context, degreeCode string, programID, branchID *uuid.UUID) (int64, error) {
	q := s.db.WithContext(ctx).Where("semester_degree_code = ?", degreeCode)
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
	res := q.Delete(&model.SemesterModel{})
	return res.RowsAffected, res.Error
}

func (s *gormSemesterStore) DeleteAllForDegree(ctx context.Context, degreeCode string) (int64, error) {
	res := s.db.WithContext(ctx).
		Where("semester_degree_code = ?", degreeCode).
		Delete(&model.SemesterModel{})
	return res.RowsAffected, res.Error
}

func (s *gormSemesterStore) Insert(ctx context.Context, rows []model.SemesterModel) error {
	if len(rows) == 0 {
		return nil
	}
	return s.db.WithContext(ctx).Create(&rows).Error
}
