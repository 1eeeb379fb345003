package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	yearModel "kampusku_backend/internals/features/academics/academic_years/model"
)

type mockYearStore struct {
	rows []yearModel.AcademicYearModel
}

func (m *mockYearStore) ListNotClosed(_ context.Context, excludeID *uuid.UUID) ([]yearModel.AcademicYearModel, error) {
	var out []yearModel.AcademicYearModel
	for _, r := range m.rows {
		if r.AcademicYearStatus == yearModel.StatusClosed {
			continue
		}
		if excludeID != nil && r.AcademicYearID == *excludeID {
			continue
		}
		out = append(out, r)
	}
	return out, nil
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestCheckOverlap_RejectsIntersectingYears(t *testing.T) {
	// 2024-25 runs 2024-07-01..2025-06-15; 2025-26 wants 2025-06-01..2026-05-31.
	store := &mockYearStore{rows: []yearModel.AcademicYearModel{{
		AcademicYearID:        uuid.New(),
		AcademicYearCode:      "2024-25",
		AcademicYearStartDate: date(2024, 7, 1),
		AcademicYearEndDate:   date(2025, 6, 15),
		AcademicYearStatus:    yearModel.StatusOpen,
	}}}

	err := CheckOverlap(context.Background(), store, yearModel.StatusPlanned,
		date(2025, 6, 1), date(2026, 5, 31), nil)
	var oe *OverlapError
	if !errors.As(err, &oe) {
		t.Fatalf("expected OverlapError, got %v", err)
	}
	if oe.ConflictingCode != "2024-25" {
		t.Errorf("conflicting code = %q, want 2024-25", oe.ConflictingCode)
	}
}

func TestCheckOverlap_AllowsDisjointYears(t *testing.T) {
	store := &mockYearStore{rows: []yearModel.AcademicYearModel{{
		AcademicYearID:        uuid.New(),
		AcademicYearCode:      "2024-25",
		AcademicYearStartDate: date(2024, 7, 1),
		AcademicYearEndDate:   date(2025, 6, 15),
		AcademicYearStatus:    yearModel.StatusOpen,
	}}}

	if err := CheckOverlap(context.Background(), store, yearModel.StatusPlanned,
		date(2025, 7, 1), date(2026, 6, 15), nil); err != nil {
		t.Fatalf("disjoint ranges should pass: %v", err)
	}
}

func TestCheckOverlap_IgnoresClosedYears(t *testing.T) {
	store := &mockYearStore{rows: []yearModel.AcademicYearModel{{
		AcademicYearID:        uuid.New(),
		AcademicYearCode:      "2024-25",
		AcademicYearStartDate: date(2024, 7, 1),
		AcademicYearEndDate:   date(2025, 6, 15),
		AcademicYearStatus:    yearModel.StatusClosed,
	}}}

	if err := CheckOverlap(context.Background(), store, yearModel.StatusOpen,
		date(2025, 6, 1), date(2026, 5, 31), nil); err != nil {
		t.Fatalf("closed years must not conflict: %v", err)
	}
}

func TestCheckOverlap_ClosedProposalSkipsCheck(t *testing.T) {
	store := &mockYearStore{rows: []yearModel.AcademicYearModel{{
		AcademicYearID:        uuid.New(),
		AcademicYearCode:      "2024-25",
		AcademicYearStartDate: date(2024, 7, 1),
		AcademicYearEndDate:   date(2025, 6, 15),
		AcademicYearStatus:    yearModel.StatusOpen,
	}}}

	if err := CheckOverlap(context.Background(), store, yearModel.StatusClosed,
		date(2024, 7, 1), date(2025, 6, 15), nil); err != nil {
		t.Fatalf("a closed proposal is never checked: %v", err)
	}
}

func TestCheckOverlap_ExcludesSelfOnUpdate(t *testing.T) {
	selfID := uuid.New()
	store := &mockYearStore{rows: []yearModel.AcademicYearModel{{
		AcademicYearID:        selfID,
		AcademicYearCode:      "2024-25",
		AcademicYearStartDate: date(2024, 7, 1),
		AcademicYearEndDate:   date(2025, 6, 15),
		AcademicYearStatus:    yearModel.StatusOpen,
	}}}

	if err := CheckOverlap(context.Background(), store, yearModel.StatusOpen,
		date(2024, 7, 1), date(2025, 6, 30), &selfID); err != nil {
		t.Fatalf("a row must not conflict with itself: %v", err)
	}
}

func TestRangesOverlap_TouchingEdgesCount(t *testing.T) {
	// inclusive ranges: sharing a single day overlaps
	if !RangesOverlap(date(2024, 7, 1), date(2025, 6, 15), date(2025, 6, 15), date(2026, 5, 31)) {
		t.Error("ranges sharing an endpoint must overlap")
	}
	if RangesOverlap(date(2024, 7, 1), date(2025, 6, 15), date(2025, 6, 16), date(2026, 5, 31)) {
		t.Error("adjacent ranges must not overlap")
	}
}
