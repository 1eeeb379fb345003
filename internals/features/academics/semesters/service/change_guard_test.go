// file: internals/features/academics/semesters/service/change_guard_test.go
package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type memDependentCounter struct {
	targetCount int64
	degreeCount int64
}

func (c *memDependentCounter) CountForTarget(context.Context, string, *uuid.UUID, *uuid.UUID) (int64, error) {
	return c.targetCount, nil
}

func (c *memDependentCounter) CountForDegree(context.Context, string) (int64, error) {
	return c.degreeCount, nil
}

type memTicketSink struct {
	tickets []TicketRequest
}

func (s *memTicketSink) Submit(_ context.Context, t TicketRequest) error {
	s.tickets = append(s.tickets, t)
	return nil
}

func TestStructureEditAppliesDirectlyWithoutDependents(t *testing.T) {
	sink := &memTicketSink{}
	guard := NewChangeGuard(&memDependentCounter{}, sink, zap.NewNop())

	mutated := 0
	res, err := guard.Apply(context.Background(), GuardRequest{
		DegreeCode:     "S1-INF",
		Action:         ActionEditStructure,
		RequesterEmail: "admin@kampusku.id",
	}, func(context.Context) (int, error) {
		mutated++
		return 1, nil
	})
	if err != nil {
		t.Fatalf("apply: %v", err)
	}
	if res.Deferred {
		t.Fatal("edit with zero dependents must not be deferred")
	}
	if mutated != 1 || res.Affected != 1 {
		t.Fatalf("mutation should have run exactly once, ran %d", mutated)
	}
	if len(sink.tickets) != 0 {
		t.Fatalf("no ticket expected, got %d", len(sink.tickets))
	}
}

func TestStructureEditWithDependentsCreatesOneTicket(t *testing.T) {
	sink := &memTicketSink{}
	guard := NewChangeGuard(&memDependentCounter{targetCount: 8}, sink, zap.NewNop())

	mutated := 0
	res, err := guard.Apply(context.Background(), GuardRequest{
		DegreeCode:     "S1-INF",
		Action:         ActionEditStructure,
		Before:         map[string]int{"years": 4, "terms_per_year": 2},
		After:          map[string]int{"years": 3, "terms_per_year": 2},
		RequesterEmail: "admin@kampusku.id",
		ReasonNote:     "curriculum shortened",
	}, func(context.Context) (int, error) {
		mutated++
		return 1, nil
	})
	if err != nil {
		t.Fatalf("apply: %v", err)
	}
	if !res.Deferred {
		t.Fatal("edit with dependents must be deferred")
	}
	if mutated != 0 {
		t.Fatalf("mutation must not run when deferred, ran %d", mutated)
	}
	if len(sink.tickets) != 1 {
		t.Fatalf("exactly one ticket expected, got %d", len(sink.tickets))
	}
	ticket := sink.tickets[0]
	if ticket.ObjectType != "semesters" || ticket.Action != ActionEditStructure {
		t.Fatalf("unexpected ticket %+v", ticket)
	}
	if ticket.ObjectID != "S1-INF" {
		t.Fatalf("degree-level edit should key the ticket by degree code, got %q", ticket.ObjectID)
	}
}

func TestBindingChangeIsAlwaysDeferred(t *testing.T) {
	sink := &memTicketSink{}
	guard := NewChangeGuard(&memDependentCounter{}, sink, zap.NewNop())

	res, err := guard.Apply(context.Background(), GuardRequest{
		DegreeCode:     "S1-INF",
		Action:         ActionBindingChange,
		Before:         map[string]string{"binding_mode": "degree"},
		After:          map[string]string{"binding_mode": "program"},
		RequesterEmail: "admin@kampusku.id",
	}, func(context.Context) (int, error) {
		t.Fatal("binding change must never mutate directly")
		return 0, nil
	})
	if err != nil {
		t.Fatalf("apply: %v", err)
	}
	if !res.Deferred || len(sink.tickets) != 1 {
		t.Fatalf("binding change should produce one ticket, got deferred=%v tickets=%d", res.Deferred, len(sink.tickets))
	}
}

func TestClearAllChecksWholeDegree(t *testing.T) {
	// a program scope with zero rows but other rows under the degree
	sink := &memTicketSink{}
	guard := NewChangeGuard(&memDependentCounter{targetCount: 0, degreeCount: 12}, sink, zap.NewNop())

	programID := uuid.New()
	res, err := guard.Apply(context.Background(), GuardRequest{
		DegreeCode: "S1-INF",
		Action:     ActionClearAll,
		ProgramID:  &programID,
	}, func(context.Context) (int, error) { return 0, nil })
	if err != nil {
		t.Fatalf("apply: %v", err)
	}
	if !res.Deferred {
		t.Fatal("clear-all must consider every row under the degree")
	}
	if sink.tickets[0].ObjectID != programID.String() {
		t.Fatalf("ticket should carry the target id, got %q", sink.tickets[0].ObjectID)
	}
}

func TestUnknownActionIsRejected(t *testing.T) {
	guard := NewChangeGuard(&memDependentCounter{}, &memTicketSink{}, zap.NewNop())
	if _, err := guard.Apply(context.Background(), GuardRequest{
		DegreeCode: "S1-INF",
		Action:     "rename_degree",
	}, func(context.Context) (int, error) { return 0, nil }); err == nil {
		t.Fatal("expected error for unknown action")
	}
}
