// file: internals/features/academics/calendar_assignments/service/resolver_store.go
package service

import (
	"context"
	"errors"

	"gorm.io/gorm"

	assignmentModel "kampusku_backend/internals/features/academics/calendar_assignments/model"
	profileModel "kampusku_backend/internals/features/academics/calendar_profiles/model"
)

// GORM-backed implementations of the resolver's lookups.

type gormAssignmentStore struct{ db *gorm.DB }

func NewAssignmentStore(db *gorm.DB) AssignmentStore { return &gormAssignmentStore{db: db} }

func (s *gormAssignmentStore) FindBest(ctx context.Context, q AssignmentQuery) (*assignmentModel.CalendarAssignmentModel, error) {
	query := s.db.WithContext(ctx).
		Where("calendar_assignment_level = ?", q.Level).
		Where("calendar_assignment_degree_code = ?", q.DegreeCode).
		Where("calendar_assignment_program_code = ?", q.ProgramCode).
		Where("calendar_assignment_branch_code = ?", q.BranchCode).
		Where("calendar_assignment_progression_year = ?", q.ProgressionYear).
		Where("calendar_assignment_effective_from_year <= ?", q.MaxEffectiveYear).
		Where("calendar_assignment_is_active = TRUE").
		Order("calendar_assignment_effective_from_year DESC")

	var row assignmentModel.CalendarAssignmentModel
	if err := query.First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &row, nil
}

type gormProfileLookup struct{ db *gorm.DB }

func NewProfileLookup(db *gorm.DB) ProfileLookup { return &gormProfileLookup{db: db} }

func (s *gormProfileLookup) ProfileByCode(ctx context.Context, code string) (*profileModel.CalendarProfileModel, error) {
	var row profileModel.CalendarProfileModel
	if err := s.db.WithContext(ctx).
		First(&row, "calendar_profile_code = ?", code).Error; err != nil {
		return nil, err
	}
	return &row, nil
}

type gormDefaultProfileLookup struct{ db *gorm.DB }

func NewDefaultProfileLookup(db *gorm.DB) DefaultProfileLookup {
	return &gormDefaultProfileLookup{db: db}
}

func (s *gormDefaultProfileLookup) DefaultProfile(ctx context.Context) (*profileModel.CalendarProfileModel, error) {
	var row profileModel.CalendarProfileModel
	if err := s.db.WithContext(ctx).
		First(&row, "calendar_profile_is_system = TRUE").Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &row, nil
}
