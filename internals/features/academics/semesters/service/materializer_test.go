// file: internals/features/academics/semesters/service/materializer_test.go
package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"kampusku_backend/internals/features/academics/semesters/model"
)

type memStructureReader struct {
	structures []model.SemesterStructureModel
}

func (r *memStructureReader) Find(_ context.Context, level, degreeCode string, targetID *uuid.UUID) (*model.SemesterStructureModel, error) {
	for i := range r.structures {
		st := r.structures[i]
		if st.SemesterStructureLevel != level || st.SemesterStructureDegreeCode != degreeCode {
			continue
		}
		if targetID == nil && st.SemesterStructureTargetID == nil {
			return &st, nil
		}
		if targetID != nil && st.SemesterStructureTargetID != nil && *targetID == *st.SemesterStructureTargetID {
			return &st, nil
		}
	}
	return nil, nil
}

func (r *memStructureReader) ListForDegree(_ context.Context, level, degreeCode string) ([]model.SemesterStructureModel, error) {
	var out []model.SemesterStructureModel
	for _, st := range r.structures {
		if st.SemesterStructureLevel == level && st.SemesterStructureDegreeCode == degreeCode {
			out = append(out, st)
		}
	}
	return out, nil
}

type memSemesterStore struct {
	rows []model.SemesterModel
}

func sameTarget(row model.SemesterModel, programID, branchID *uuid.UUID) bool {
	match := func(got *uuid.UUID, want *uuid.UUID) bool {
		if want == nil {
			return got == nil
		}
		return got != nil && *got == *want
	}
	return match(row.SemesterProgramID, programID) && match(row.SemesterBranchID, branchID)
}

func (s *memSemesterStore) DeleteTarget(_ context.Context, degreeCode string, programID, branchID *uuid.UUID) (int64, error) {
	var kept []model.SemesterModel
	var deleted int64
	for _, row := range s.rows {
		if row.SemesterDegreeCode == degreeCode && sameTarget(row, programID, branchID) {
			deleted++
			continue
		}
		kept = append(kept, row)
	}
	s.rows = kept
	return deleted, nil
}

func (s *memSemesterStore) DeleteAllForDegree(_ context.Context, degreeCode string) (int64, error) {
	var kept []model.SemesterModel
	var deleted int64
	for _, row := range s.rows {
		if row.SemesterDegreeCode == degreeCode {
			deleted++
			continue
		}
		kept = append(kept, row)
	}
	s.rows = kept
	return deleted, nil
}

func (s *memSemesterStore) Insert(_ context.Context, rows []model.SemesterModel) error {
	s.rows = append(s.rows, rows...)
	return nil
}

func degreeStructure(degreeCode string, years, terms int) model.SemesterStructureModel {
	return model.SemesterStructureModel{
		SemesterStructureLevel:        model.BindingDegree,
		SemesterStructureDegreeCode:   degreeCode,
		SemesterStructureYears:        years,
		SemesterStructureTermsPerYear: terms,
	}
}

func TestRebuildDegreeCountAndNumbering(t *testing.T) {
	structures := &memStructureReader{structures: []model.SemesterStructureModel{
		degreeStructure("S1-INF", 4, 2),
	}}
	semesters := &memSemesterStore{}
	mat := NewMaterializer(structures, semesters, zap.NewNop())

	n, err := mat.Rebuild(context.Background(), RebuildInput{
		DegreeCode:  "S1-INF",
		BindingMode: model.BindingDegree,
		LabelMode:   model.LabelYearTerm,
	})
	if err != nil {
		t.Fatalf("rebuild: %v", err)
	}
	if n != 8 {
		t.Fatalf("expected 8 rows, got %d", n)
	}
	for i, row := range semesters.rows {
		if row.SemesterNumber != i+1 {
			t.Fatalf("row %d has semester_number %d", i, row.SemesterNumber)
		}
	}
	first := semesters.rows[0]
	if first.SemesterLabel != "Year 1 • Term 1" {
		t.Fatalf("unexpected first label %q", first.SemesterLabel)
	}
	last := semesters.rows[7]
	if last.SemesterYearIndex != 4 || last.SemesterTermIndex != 2 {
		t.Fatalf("unexpected last row year=%d term=%d", last.SemesterYearIndex, last.SemesterTermIndex)
	}
}

func TestRebuildIsIdempotent(t *testing.T) {
	structures := &memStructureReader{structures: []model.SemesterStructureModel{
		degreeStructure("S1-INF", 3, 2),
	}}
	semesters := &memSemesterStore{}
	mat := NewMaterializer(structures, semesters, zap.NewNop())

	in := RebuildInput{DegreeCode: "S1-INF", BindingMode: model.BindingDegree, LabelMode: model.LabelSemesterN}
	if _, err := mat.Rebuild(context.Background(), in); err != nil {
		t.Fatalf("first rebuild: %v", err)
	}
	firstRun := append([]model.SemesterModel(nil), semesters.rows...)

	n, err := mat.Rebuild(context.Background(), in)
	if err != nil {
		t.Fatalf("second rebuild: %v", err)
	}
	if n != len(firstRun) || len(semesters.rows) != len(firstRun) {
		t.Fatalf("second rebuild changed row count: %d vs %d", len(semesters.rows), len(firstRun))
	}
	for i := range firstRun {
		a, b := firstRun[i], semesters.rows[i]
		if a.SemesterLabel != b.SemesterLabel || a.SemesterNumber != b.SemesterNumber ||
			a.SemesterYearIndex != b.SemesterYearIndex || a.SemesterTermIndex != b.SemesterTermIndex {
			t.Fatalf("row %d differs between rebuilds: %+v vs %+v", i, a, b)
		}
	}
	if semesters.rows[5].SemesterLabel != "Semester 6" {
		t.Fatalf("unexpected semester_n label %q", semesters.rows[5].SemesterLabel)
	}
}

func TestRebuildSkipsUnconfiguredTargets(t *testing.T) {
	configured := uuid.New()
	structures := &memStructureReader{structures: []model.SemesterStructureModel{
		{
			SemesterStructureLevel:        model.BindingProgram,
			SemesterStructureDegreeCode:   "S1-INF",
			SemesterStructureTargetID:     &configured,
			SemesterStructureYears:        2,
			SemesterStructureTermsPerYear: 2,
		},
	}}
	semesters := &memSemesterStore{}
	mat := NewMaterializer(structures, semesters, zap.NewNop())

	unconfigured := uuid.New()
	n, err := mat.Rebuild(context.Background(), RebuildInput{
		DegreeCode:  "S1-INF",
		BindingMode: model.BindingProgram,
		LabelMode:   model.LabelYearTerm,
		TargetID:    &unconfigured,
	})
	if err != nil {
		t.Fatalf("rebuild: %v", err)
	}
	if n != 0 || len(semesters.rows) != 0 {
		t.Fatalf("unconfigured target should produce no rows, got %d", n)
	}

	n, err = mat.Rebuild(context.Background(), RebuildInput{
		DegreeCode:  "S1-INF",
		BindingMode: model.BindingProgram,
		LabelMode:   model.LabelYearTerm,
	})
	if err != nil {
		t.Fatalf("rebuild all: %v", err)
	}
	if n != 4 {
		t.Fatalf("expected 4 rows for the configured program, got %d", n)
	}
	if semesters.rows[0].SemesterProgramID == nil || *semesters.rows[0].SemesterProgramID != configured {
		t.Fatalf("rows should belong to the configured program")
	}
}

func TestRebuildReplacesOnlyItsTarget(t *testing.T) {
	progA, progB := uuid.New(), uuid.New()
	structures := &memStructureReader{structures: []model.SemesterStructureModel{
		{
			SemesterStructureLevel:        model.BindingProgram,
			SemesterStructureDegreeCode:   "S1-INF",
			SemesterStructureTargetID:     &progA,
			SemesterStructureYears:        2,
			SemesterStructureTermsPerYear: 2,
		},
		{
			SemesterStructureLevel:        model.BindingProgram,
			SemesterStructureDegreeCode:   "S1-INF",
			SemesterStructureTargetID:     &progB,
			SemesterStructureYears:        1,
			SemesterStructureTermsPerYear: 2,
		},
	}}
	semesters := &memSemesterStore{}
	mat := NewMaterializer(structures, semesters, zap.NewNop())

	if _, err := mat.Rebuild(context.Background(), RebuildInput{
		DegreeCode: "S1-INF", BindingMode: model.BindingProgram, LabelMode: model.LabelYearTerm,
	}); err != nil {
		t.Fatalf("rebuild all: %v", err)
	}
	if len(semesters.rows) != 6 {
		t.Fatalf("expected 6 rows across both programs, got %d", len(semesters.rows))
	}

	n, err := mat.Rebuild(context.Background(), RebuildInput{
		DegreeCode: "S1-INF", BindingMode: model.BindingProgram, LabelMode: model.LabelYearTerm, TargetID: &progA,
	})
	if err != nil {
		t.Fatalf("rebuild one: %v", err)
	}
	if n != 4 || len(semesters.rows) != 6 {
		t.Fatalf("single-target rebuild disturbed other targets: n=%d total=%d", n, len(semesters.rows))
	}
}

func TestClearRemovesEverySemester(t *testing.T) {
	structures := &memStructureReader{structures: []model.SemesterStructureModel{
		degreeStructure("S1-INF", 4, 2),
	}}
	semesters := &memSemesterStore{}
	mat := NewMaterializer(structures, semesters, zap.NewNop())

	if _, err := mat.Rebuild(context.Background(), RebuildInput{
		DegreeCode: "S1-INF", BindingMode: model.BindingDegree, LabelMode: model.LabelYearTerm,
	}); err != nil {
		t.Fatalf("rebuild: %v", err)
	}
	n, err := mat.Clear(context.Background(), "S1-INF")
	if err != nil {
		t.Fatalf("clear: %v", err)
	}
	if n != 8 || len(semesters.rows) != 0 {
		t.Fatalf("clear should remove all 8 rows, removed %d, left %d", n, len(semesters.rows))
	}
}

func TestRebuildRejectsUnknownBindingMode(t *testing.T) {
	mat := NewMaterializer(&memStructureReader{}, &memSemesterStore{}, zap.NewNop())
	if _, err := mat.Rebuild(context.Background(), RebuildInput{
		DegreeCode: "S1-INF", BindingMode: "faculty", LabelMode: model.LabelYearTerm,
	}); err == nil {
		t.Fatal("expected error for unknown binding mode")
	}
}
