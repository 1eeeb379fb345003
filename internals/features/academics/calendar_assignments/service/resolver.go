// file: internals/features/academics/calendar_assignments/service/resolver.go
package service

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	assignmentModel "kampusku_backend/internals/features/academics/calendar_assignments/model"
	profileModel "kampusku_backend/internals/features/academics/calendar_profiles/model"
	"kampusku_backend/internals/helpers/aycode"
)

// ErrResolutionNotFound: no assignment matched any precedence tier and no
// system default profile is configured.
var ErrResolutionNotFound = errors.New("no calendar assignment applies and no system default profile is configured")

// AssignmentStore answers the per-tier lookup: the single active assignment at
// the given key with the greatest effective-from year not after the queried AY.
type AssignmentStore interface {
	FindBest(ctx context.Context, q AssignmentQuery) (*assignmentModel.CalendarAssignmentModel, error)
}

// ProfileLookup loads profiles referenced by assignments.
type ProfileLookup interface {
	ProfileByCode(ctx context.Context, code string) (*profileModel.CalendarProfileModel, error)
}

// DefaultProfileLookup supplies the system default; injected so tests and
// deployments without a default stay explicit (nil result, not a stub).
type DefaultProfileLookup interface {
	DefaultProfile(ctx context.Context) (*profileModel.CalendarProfileModel, error)
}

type AssignmentQuery struct {
	Level            string
	DegreeCode       string
	ProgramCode      string
	BranchCode       string
	ProgressionYear  int
	MaxEffectiveYear int
}

type ResolveInput struct {
	AYCode          string
	DegreeCode      string
	ProgramCode     string
	BranchCode      string
	ProgressionYear int
}

type ResolveResult struct {
	Profile   *profileModel.CalendarProfileModel
	ShiftDays int
	// Source names the precedence tier that matched; audit/debugging only.
	Source string
}

type Resolver struct {
	assignments AssignmentStore
	profiles    ProfileLookup
	defaults    DefaultProfileLookup
	log         *zap.Logger
}

func NewResolver(assignments AssignmentStore, profiles ProfileLookup, defaults DefaultProfileLookup, log *zap.Logger) *Resolver {
	if log == nil {
		log = zap.NewNop()
	}
	return &Resolver{assignments: assignments, profiles: profiles, defaults: defaults, log: log}
}

type tier struct {
	level           string
	progressionYear int
	needsProgram    bool
	needsBranch     bool
}

// Resolve walks the precedence ladder, most specific first: branch, program,
// degree at the exact progression year, then the same three at year 1. Within
// one tier only the row with the greatest effectiveFromYear <= the queried AY
// counts; later rules override future years without touching the past.
func (r *Resolver) Resolve(ctx context.Context, in ResolveInput) (*ResolveResult, error) {
	maxYear, err := aycode.Parse(in.AYCode)
	if err != nil {
		return nil, err
	}
	if in.ProgressionYear < 1 {
		return nil, fmt.Errorf("progression year must be >= 1, got %d", in.ProgressionYear)
	}

	tiers := []tier{
		{level: assignmentModel.LevelBranch, progressionYear: in.ProgressionYear, needsProgram: false, needsBranch: true},
		{level: assignmentModel.LevelProgram, progressionYear: in.ProgressionYear, needsProgram: true},
		{level: assignmentModel.LevelDegree, progressionYear: in.ProgressionYear},
	}
	if in.ProgressionYear != 1 {
		tiers = append(tiers,
			tier{level: assignmentModel.LevelBranch, progressionYear: 1, needsBranch: true},
			tier{level: assignmentModel.LevelProgram, progressionYear: 1, needsProgram: true},
			tier{level: assignmentModel.LevelDegree, progressionYear: 1},
		)
	}

	for _, t := range tiers {
		if t.needsBranch && in.BranchCode == "" {
			continue
		}
		if t.needsProgram && in.ProgramCode == "" {
			continue
		}

		q := AssignmentQuery{
			Level:            t.level,
			DegreeCode:       in.DegreeCode,
			ProgressionYear:  t.progressionYear,
			MaxEffectiveYear: maxYear,
		}
		switch t.level {
		case assignmentModel.LevelProgram:
			q.ProgramCode = in.ProgramCode
		case assignmentModel.LevelBranch:
			q.BranchCode = in.BranchCode
		}

		found, err := r.assignments.FindBest(ctx, q)
		if err != nil {
			return nil, err
		}
		if found == nil {
			continue
		}

		profile, err := r.profiles.ProfileByCode(ctx, found.CalendarAssignmentProfileCode)
		if err != nil {
			return nil, err
		}

		source := fmt.Sprintf("%s-level assignment, progression year %d, effective from %s",
			t.level, t.progressionYear, found.CalendarAssignmentEffectiveFromAY)
		if t.progressionYear != in.ProgressionYear {
			source += " (year-1 fallback)"
		}
		r.log.Debug("calendar resolved",
			zap.String("ay", in.AYCode),
			zap.String("degree", in.DegreeCode),
			zap.String("source", source),
			zap.String("profile", profile.CalendarProfileCode))

		return &ResolveResult{
			Profile:   profile,
			ShiftDays: found.CalendarAssignmentShiftDays,
			Source:    source,
		}, nil
	}

	if r.defaults != nil {
		def, err := r.defaults.DefaultProfile(ctx)
		if err != nil {
			return nil, err
		}
		if def != nil {
			return &ResolveResult{
				Profile: def,
				Source:  fmt.Sprintf("system default profile %s", def.CalendarProfileCode),
			}, nil
		}
	}
	return nil, ErrResolutionNotFound
}
