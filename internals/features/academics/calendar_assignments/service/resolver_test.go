package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	assignmentModel "kampusku_backend/internals/features/academics/calendar_assignments/model"
	profileModel "kampusku_backend/internals/features/academics/calendar_profiles/model"
)

// ── Mock stores ──

type mockAssignmentStore struct {
	rows []assignmentModel.CalendarAssignmentModel
}

func (m *mockAssignmentStore) FindBest(_ context.Context, q AssignmentQuery) (*assignmentModel.CalendarAssignmentModel, error) {
	var best *assignmentModel.CalendarAssignmentModel
	for i := range m.rows {
		r := &m.rows[i]
		if !r.CalendarAssignmentIsActive ||
			r.CalendarAssignmentLevel != q.Level ||
			r.CalendarAssignmentDegreeCode != q.DegreeCode ||
			r.CalendarAssignmentProgramCode != q.ProgramCode ||
			r.CalendarAssignmentBranchCode != q.BranchCode ||
			r.CalendarAssignmentProgressionYear != q.ProgressionYear ||
			r.CalendarAssignmentEffectiveFromYear > q.MaxEffectiveYear {
			continue
		}
		if best == nil || r.CalendarAssignmentEffectiveFromYear > best.CalendarAssignmentEffectiveFromYear {
			best = r
		}
	}
	return best, nil
}

type mockProfileLookup struct {
	profiles map[string]*profileModel.CalendarProfileModel
}

func (m *mockProfileLookup) ProfileByCode(_ context.Context, code string) (*profileModel.CalendarProfileModel, error) {
	if p, ok := m.profiles[code]; ok {
		return p, nil
	}
	return nil, fmt.Errorf("profile %q not found", code)
}

type mockDefaultLookup struct {
	def *profileModel.CalendarProfileModel
}

func (m *mockDefaultLookup) DefaultProfile(_ context.Context) (*profileModel.CalendarProfileModel, error) {
	return m.def, nil
}

// ── Helpers ──

func profile(code string) *profileModel.CalendarProfileModel {
	return &profileModel.CalendarProfileModel{
		CalendarProfileCode: code,
		CalendarProfileName: code,
		CalendarProfileTerms: profileModel.TermSpecList{
			{Label: "T1", StartMonthDay: "07-01", EndMonthDay: "12-15"},
		},
	}
}

func assignment(level, degree, program, branch string, progYear, effYear, shift int, profileCode string) assignmentModel.CalendarAssignmentModel {
	return assignmentModel.CalendarAssignmentModel{
		CalendarAssignmentLevel:             level,
		CalendarAssignmentDegreeCode:        degree,
		CalendarAssignmentProgramCode:       program,
		CalendarAssignmentBranchCode:        branch,
		CalendarAssignmentProgressionYear:   progYear,
		CalendarAssignmentEffectiveFromAY:   fmt.Sprintf("%04d-%02d", effYear, (effYear+1)%100),
		CalendarAssignmentEffectiveFromYear: effYear,
		CalendarAssignmentShiftDays:         shift,
		CalendarAssignmentProfileCode:       profileCode,
		CalendarAssignmentIsActive:          true,
	}
}

func newTestResolver(store *mockAssignmentStore, defaults *mockDefaultLookup, codes ...string) *Resolver {
	profiles := &mockProfileLookup{profiles: map[string]*profileModel.CalendarProfileModel{}}
	for _, code := range codes {
		profiles.profiles[code] = profile(code)
	}
	if defaults == nil {
		defaults = &mockDefaultLookup{}
	}
	return NewResolver(store, profiles, defaults, nil)
}

// ── Tests ──

func TestResolve_BranchBeatsDegree(t *testing.T) {
	store := &mockAssignmentStore{rows: []assignmentModel.CalendarAssignmentModel{
		assignment("degree", "BTECH", "", "", 2, 2024, 0, "DEG-PROF"),
		assignment("branch", "BTECH", "", "CSE", 2, 2024, 5, "BR-PROF"),
	}}
	r := newTestResolver(store, nil, "DEG-PROF", "BR-PROF")

	got, err := r.Resolve(context.Background(), ResolveInput{
		AYCode: "2025-26", DegreeCode: "BTECH", BranchCode: "CSE", ProgressionYear: 2,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Profile.CalendarProfileCode != "BR-PROF" {
		t.Errorf("profile = %s, want BR-PROF (branch beats degree)", got.Profile.CalendarProfileCode)
	}
	if got.ShiftDays != 5 {
		t.Errorf("shift = %d, want 5", got.ShiftDays)
	}
	if !strings.Contains(got.Source, "branch-level") {
		t.Errorf("source = %q, want a branch-level description", got.Source)
	}
}

func TestResolve_FallsBackToYearOne(t *testing.T) {
	store := &mockAssignmentStore{rows: []assignmentModel.CalendarAssignmentModel{
		assignment("degree", "BTECH", "", "", 1, 2023, 0, "Y1-PROF"),
	}}
	r := newTestResolver(store, nil, "Y1-PROF")

	got, err := r.Resolve(context.Background(), ResolveInput{
		AYCode: "2025-26", DegreeCode: "BTECH", ProgressionYear: 3,
	})
	if err != nil {
		t.Fatalf("expected year-1 fallback, got error: %v", err)
	}
	if got.Profile.CalendarProfileCode != "Y1-PROF" {
		t.Errorf("profile = %s, want Y1-PROF", got.Profile.CalendarProfileCode)
	}
	if !strings.Contains(got.Source, "fallback") {
		t.Errorf("source = %q, should mention the fallback", got.Source)
	}
}

func TestResolve_SkipsTiersWithoutCodes(t *testing.T) {
	// A branch rule exists, but the query carries no branch code: the rule
	// must not leak into the result.
	store := &mockAssignmentStore{rows: []assignmentModel.CalendarAssignmentModel{
		assignment("branch", "BTECH", "", "CSE", 1, 2024, 0, "BR-PROF"),
		assignment("degree", "BTECH", "", "", 1, 2024, 0, "DEG-PROF"),
	}}
	r := newTestResolver(store, nil, "BR-PROF", "DEG-PROF")

	got, err := r.Resolve(context.Background(), ResolveInput{
		AYCode: "2025-26", DegreeCode: "BTECH", ProgressionYear: 1,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Profile.CalendarProfileCode != "DEG-PROF" {
		t.Errorf("profile = %s, want DEG-PROF", got.Profile.CalendarProfileCode)
	}
}

func TestResolve_MostRecentEffectiveYearWins(t *testing.T) {
	store := &mockAssignmentStore{rows: []assignmentModel.CalendarAssignmentModel{
		assignment("degree", "BTECH", "", "", 1, 2020, 0, "OLD-PROF"),
		assignment("degree", "BTECH", "", "", 1, 2024, 0, "NEW-PROF"),
		assignment("degree", "BTECH", "", "", 1, 2026, 0, "FUTURE-PROF"),
	}}
	r := newTestResolver(store, nil, "OLD-PROF", "NEW-PROF", "FUTURE-PROF")

	got, err := r.Resolve(context.Background(), ResolveInput{
		AYCode: "2025-26", DegreeCode: "BTECH", ProgressionYear: 1,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// 2026 is in the future for AY 2025-26; 2024 beats 2020.
	if got.Profile.CalendarProfileCode != "NEW-PROF" {
		t.Errorf("profile = %s, want NEW-PROF", got.Profile.CalendarProfileCode)
	}
}

func TestResolve_SystemDefaultFallback(t *testing.T) {
	store := &mockAssignmentStore{}
	def := &mockDefaultLookup{def: profile("SYS-DEFAULT")}
	r := newTestResolver(store, def)

	got, err := r.Resolve(context.Background(), ResolveInput{
		AYCode: "2025-26", DegreeCode: "BTECH", ProgressionYear: 1,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Profile.CalendarProfileCode != "SYS-DEFAULT" {
		t.Errorf("profile = %s, want SYS-DEFAULT", got.Profile.CalendarProfileCode)
	}
	if got.ShiftDays != 0 {
		t.Errorf("default fallback must not shift, got %d", got.ShiftDays)
	}
	if !strings.Contains(got.Source, "system default") {
		t.Errorf("source = %q, want system default description", got.Source)
	}
}

func TestResolve_NothingApplies(t *testing.T) {
	r := newTestResolver(&mockAssignmentStore{}, &mockDefaultLookup{})

	_, err := r.Resolve(context.Background(), ResolveInput{
		AYCode: "2025-26", DegreeCode: "BTECH", ProgressionYear: 1,
	})
	if !errors.Is(err, ErrResolutionNotFound) {
		t.Fatalf("expected ErrResolutionNotFound, got %v", err)
	}
}

func TestResolve_InvalidAYCode(t *testing.T) {
	r := newTestResolver(&mockAssignmentStore{}, nil)
	if _, err := r.Resolve(context.Background(), ResolveInput{
		AYCode: "garbage", DegreeCode: "BTECH", ProgressionYear: 1,
	}); err == nil {
		t.Fatal("expected error for an invalid AY code")
	}
}

func TestResolve_ProgramBeatsDegreeButLosesToBranch(t *testing.T) {
	store := &mockAssignmentStore{rows: []assignmentModel.CalendarAssignmentModel{
		assignment("degree", "BTECH", "", "", 2, 2024, 0, "DEG-PROF"),
		assignment("program", "BTECH", "CS", "", 2, 2024, 0, "PR-PROF"),
		assignment("branch", "BTECH", "", "CSE", 2, 2024, 0, "BR-PROF"),
	}}
	r := newTestResolver(store, nil, "DEG-PROF", "PR-PROF", "BR-PROF")

	// With program but no branch code, the program rule wins.
	got, err := r.Resolve(context.Background(), ResolveInput{
		AYCode: "2025-26", DegreeCode: "BTECH", ProgramCode: "CS", ProgressionYear: 2,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Profile.CalendarProfileCode != "PR-PROF" {
		t.Errorf("profile = %s, want PR-PROF", got.Profile.CalendarProfileCode)
	}

	// With both, branch wins.
	got, err = r.Resolve(context.Background(), ResolveInput{
		AYCode: "2025-26", DegreeCode: "BTECH", ProgramCode: "CS", BranchCode: "CSE", ProgressionYear: 2,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Profile.CalendarProfileCode != "BR-PROF" {
		t.Errorf("profile = %s, want BR-PROF", got.Profile.CalendarProfileCode)
	}
}
