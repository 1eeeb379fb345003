// file: internals/features/academics/semesters/service/materializer.go
package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"kampusku_backend/internals/features/academics/semesters/model"
)

var ErrUnknownBindingMode = errors.New("unknown binding mode")

/* ============================================
   Store interfaces. GORM implementations live
   in materializer_store.go; tests swap in
   in-memory fakes.
============================================ */

type StructureReader interface {
	// Find returns nil (not an error) when no structure is configured yet.
	Find(ctx context.Context, level, degreeCode string, targetID *uuid.UUID) (*model.SemesterStructureModel, error)
	// ListForDegree returns every configured structure at the given level.
	ListForDegree(ctx context.Context, level, degreeCode string) ([]model.SemesterStructureModel, error)
}

type SemesterStore interface {
	DeleteTarget(ctx context.Context, degreeCode string, programID, branchID *uuid.UUID) (int64, error)
	DeleteAllForDegree(ctx context.Context, degreeCode string) (int64, error)
	Insert(ctx context.Context, rows []model.SemesterModel) error
}

/* ============================================
   Materializer
============================================ */

type RebuildInput struct {
	DegreeCode  string
	BindingMode string
	LabelMode   string
	// nil rebuilds every configured target under the binding mode
	TargetID *uuid.UUID
}

type Materializer struct {
	structures StructureReader
	semesters  SemesterStore
	log        *zap.Logger
}

func NewMaterializer(structures StructureReader, semesters SemesterStore, log *zap.Logger) *Materializer {
	return &Materializer{structures: structures, semesters: semesters, log: log}
}

// Rebuild deletes and regenerates semester rows for the degree under the
// given binding mode. Returns the number of rows written. Targets without
// a configured structure are skipped silently.
func (m *Materializer) Rebuild(ctx context.Context, in RebuildInput) (int, error) {
	switch in.BindingMode {
	case model.BindingDegree:
		return m.rebuildDegree(ctx, in)
	case model.BindingProgram, model.BindingBranch:
		return m.rebuildTargets(ctx, in)
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownBindingMode, in.BindingMode)
	}
}

// Clear removes every semester row for the degree regardless of binding mode.
func (m *Materializer) Clear(ctx context.Context, degreeCode string) (int, error) {
	n, err := m.semesters.DeleteAllForDegree(ctx, degreeCode)
	if err != nil {
		return 0, err
	}
	m.log.Info("semesters cleared",
		zap.String("degree_code", degreeCode),
		zap.Int64("deleted", n))
	return int(n), nil
}

func (m *Materializer) rebuildDegree(ctx context.Context, in RebuildInput) (int, error) {
	st, err := m.structures.Find(ctx, model.BindingDegree, in.DegreeCode, nil)
	if err != nil {
		return 0, err
	}
	if st == nil {
		// structure not set yet, nothing to materialize
		return 0, nil
	}
	if _, err := m.semesters.DeleteTarget(ctx, in.DegreeCode, nil, nil); err != nil {
		return 0, err
	}
	rows := generateRows(in.DegreeCode, nil, nil, st, in.LabelMode)
	if err := m.semesters.Insert(ctx, rows); err != nil {
		return 0, err
	}
	m.log.Info("semesters rebuilt",
		zap.String("degree_code", in.DegreeCode),
		zap.String("binding_mode", in.BindingMode),
		zap.Int("rows", len(rows)))
	return len(rows), nil
}

func (m *Materializer) rebuildTargets(ctx context.Context, in RebuildInput) (int, error) {
	var structures []model.SemesterStructureModel
	if in.TargetID != nil {
		st, err := m.structures.Find(ctx, in.BindingMode, in.DegreeCode, in.TargetID)
		if err != nil {
			return 0, err
		}
		if st != nil {
			structures = append(structures, *st)
		}
	} else {
		var err error
		structures, err = m.structures.ListForDegree(ctx, in.BindingMode, in.DegreeCode)
		if err != nil {
			return 0, err
		}
	}

	total := 0
	for i := range structures {
		st := &structures[i]
		programID, branchID := targetRefs(in.BindingMode, st.SemesterStructureTargetID)
		if _, err := m.semesters.DeleteTarget(ctx, in.DegreeCode, programID, branchID); err != nil {
			return 0, err
		}
		rows := generateRows(in.DegreeCode, programID, branchID, st, in.LabelMode)
		if err := m.semesters.Insert(ctx, rows); err != nil {
			return 0, err
		}
		total += len(rows)
	}
	m.log.Info("semesters rebuilt",
		zap.String("degree_code", in.DegreeCode),
		zap.String("binding_mode", in.BindingMode),
		zap.Int("targets", len(structures)),
		zap.Int("rows", total))
	return total, nil
}

func targetRefs(mode string, targetID *uuid.UUID) (programID, branchID *uuid.UUID) {
	switch mode {
	case model.BindingProgram:
		return targetID, nil
	case model.BindingBranch:
		return nil, targetID
	}
	return nil, nil
}

func generateRows(degreeCode string, programID, branchID *uuid.UUID, st *model.SemesterStructureModel, labelMode string) []model.SemesterModel {
	rows := make([]model.SemesterModel, 0, st.SemesterStructureYears*st.SemesterStructureTermsPerYear)
	number := 0
	for year := 1; year <= st.SemesterStructureYears; year++ {
		for term := 1; term <= st.SemesterStructureTermsPerYear; term++ {
			number++
			rows = append(rows, model.SemesterModel{
				SemesterDegreeCode: degreeCode,
				SemesterProgramID:  programID,
				SemesterBranchID:   branchID,
				SemesterYearIndex:  year,
				SemesterTermIndex:  term,
				SemesterNumber:     number,
				SemesterLabel:      semesterLabel(labelMode, year, term, number),
				SemesterIsActive:   true,
			})
		}
	}
	return rows
}

func semesterLabel(labelMode string, year, term, number int) string {
	if labelMode == model.LabelSemesterN {
		return fmt.Sprintf("Semester %d", number)
	}
	return fmt.Sprintf("Year %d • Term %d", year, term)
}
