// file: internals/features/academics/academic_years/service/overlap.go
package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	yearModel "kampusku_backend/internals/features/academics/academic_years/model"
)

// OverlapError: the proposed date range clashes with another non-closed year.
type OverlapError struct {
	ConflictingCode string
}

func (e *OverlapError) Error() string {
	return fmt.Sprintf("date range overlaps academic year %s", e.ConflictingCode)
}

// YearStore is the slice of persistence the overlap check needs.
type YearStore interface {
	ListNotClosed(ctx context.Context, excludeID *uuid.UUID) ([]yearModel.AcademicYearModel, error)
}

type gormYearStore struct{ db *gorm.DB }

func NewYearStore(db *gorm.DB) YearStore { return &gormYearStore{db: db} }

func (s *gormYearStore) ListNotClosed(ctx context.Context, excludeID *uuid.UUID) ([]yearModel.AcademicYearModel, error) {
	q := s.db.WithContext(ctx).
		Where("academic_year_status <> ?", yearModel.StatusClosed)
	if excludeID != nil {
		q = q.Where("academic_year_id <> ?", *excludeID)
	}
	var rows []yearModel.AcademicYearModel
	if err := q.Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// RangesOverlap reports whether two inclusive [start,end] date ranges intersect.
func RangesOverlap(aStart, aEnd, bStart, bEnd time.Time) bool {
	return !aStart.After(bEnd) && !bStart.After(aEnd)
}

// CheckOverlap rejects a planned/open year whose [start,end] intersects any
// other non-closed year. Closed years never conflict.
func CheckOverlap(ctx context.Context, store YearStore, status string, start, end time.Time, excludeID *uuid.UUID) error {
	if status == yearModel.StatusClosed {
		return nil
	}
	others, err := store.ListNotClosed(ctx, excludeID)
	if err != nil {
		return err
	}
	for _, other := range others {
		if RangesOverlap(start, end, other.AcademicYearStartDate, other.AcademicYearEndDate) {
			return &OverlapError{ConflictingCode: other.AcademicYearCode}
		}
	}
	return nil
}
