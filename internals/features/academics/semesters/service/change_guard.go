// file: internals/features/academics/semesters/service/change_guard.go
package service

import (
	"context"
	"fmt"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

/* ============================================
   Structural mutations on semesters are gated:
   once materialized rows exist they are treated
   as dependent data, and destructive changes go
   through the approval queue instead of being
   applied in place.
============================================ */

const (
	ActionBindingChange = "binding_change"
	ActionEditStructure = "edit_structure"
	ActionRebuild       = "rebuild_semesters"
	ActionRebuildAll    = "rebuild_all_semesters"
	ActionClearAll      = "clear_all_semesters"
)

// TicketRequest is what gets handed to the approval queue. The guard only
// submits tickets; approval and the follow-up mutation are the caller's job.
type TicketRequest struct {
	ObjectType     string `json:"object_type"`
	ObjectID       string `json:"object_id"`
	Action         string `json:"action"`
	Payload        []byte `json:"payload"`
	RequesterEmail string `json:"requester_email"`
	ReasonNote     string `json:"reason_note"`
}

type TicketSink interface {
	Submit(ctx context.Context, t TicketRequest) error
}

type DependentCounter interface {
	CountForTarget(ctx context.Context, degreeCode string, programID, branchID *uuid.UUID) (int64, error)
	CountForDegree(ctx context.Context, degreeCode string) (int64, error)
}

type GuardRequest struct {
	DegreeCode string
	Action     string
	// target scope for single-target actions; both nil means degree level
	ProgramID *uuid.UUID
	BranchID  *uuid.UUID

	// before/after snapshots for the ticket payload
	Before any
	After  any

	RequesterEmail string
	ReasonNote     string
}

type GuardResult struct {
	// Deferred is true when a ticket was created and nothing was mutated.
	Deferred bool
	// Affected is the mutation's row count when applied directly.
	Affected int
}

type ChangeGuard struct {
	dependents DependentCounter
	tickets    TicketSink
	log        *zap.Logger
}

func NewChangeGuard(dependents DependentCounter, tickets TicketSink, log *zap.Logger) *ChangeGuard {
	return &ChangeGuard{dependents: dependents, tickets: tickets, log: log}
}

// Apply runs mutate immediately when the change is safe, otherwise submits
// one approval ticket and leaves the data untouched. Binding-mode changes
// are always deferred. Run it inside the same transaction as mutate so the
// dependents check cannot race a concurrent rebuild.
func (g *ChangeGuard) Apply(ctx context.Context, req GuardRequest, mutate func(ctx context.Context) (int, error)) (GuardResult, error) {
	deferred, err := g.mustDefer(ctx, req)
	if err != nil {
		return GuardResult{}, err
	}
	if deferred {
		if err := g.submitTicket(ctx, req); err != nil {
			return GuardResult{}, err
		}
		return GuardResult{Deferred: true}, nil
	}
	n, err := mutate(ctx)
	if err != nil {
		return GuardResult{}, err
	}
	return GuardResult{Affected: n}, nil
}

func (g *ChangeGuard) mustDefer(ctx context.Context, req GuardRequest) (bool, error) {
	if req.Action == ActionBindingChange {
		return true, nil
	}
	var (
		count int64
		err   error
	)
	switch req.Action {
	case ActionEditStructure, ActionRebuild:
		count, err = g.dependents.CountForTarget(ctx, req.DegreeCode, req.ProgramID, req.BranchID)
	case ActionRebuildAll, ActionClearAll:
		count, err = g.dependents.CountForDegree(ctx, req.DegreeCode)
	default:
		return false, fmt.Errorf("unknown guard action %q", req.Action)
	}
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (g *ChangeGuard) submitTicket(ctx context.Context, req GuardRequest) error {
	payload, err := sonic.Marshal(map[string]any{
		"before": req.Before,
		"after":  req.After,
	})
	if err != nil {
		return err
	}
	t := TicketRequest{
		ObjectType:     "semesters",
		ObjectID:       g.objectID(req),
		Action:         req.Action,
		Payload:        payload,
		RequesterEmail: req.RequesterEmail,
		ReasonNote:     req.ReasonNote,
	}
	if err := g.tickets.Submit(ctx, t); err != nil {
		return err
	}
	g.log.Info("change deferred to approval",
		zap.String("degree_code", req.DegreeCode),
		zap.String("action", req.Action),
		zap.String("object_id", t.ObjectID))
	return nil
}

func (g *ChangeGuard) objectID(req GuardRequest) string {
	if req.ProgramID != nil {
		return req.ProgramID.String()
	}
	if req.BranchID != nil {
		return req.BranchID.String()
	}
	return req.DegreeCode
}
