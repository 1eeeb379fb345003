//go:build integration

// file: internals/features/approvals/change_tickets/service/ticket_sink_integration_test.go
//
// Runs against a real Postgres. Point TEST_DATABASE_URL at a scratch
// database and run with: go test -tags integration ./...
package service

import (
	"context"
	"errors"
	"os"
	"testing"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	semesterModel "kampusku_backend/internals/features/academics/semesters/model"
	semesterService "kampusku_backend/internals/features/academics/semesters/service"
	model "kampusku_backend/internals/features/approvals/change_tickets/model"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("connect: %v", err)
	}
	if err := db.AutoMigrate(&semesterModel.SemesterModel{}, &model.ChangeTicketModel{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

// A deferral must write its ticket inside the caller's transaction: when
// that transaction rolls back, no ticket may survive.
func TestDeferredTicketRollsBackWithTransaction(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()
	const degree = "IT-S1-TICKET"

	t.Cleanup(func() {
		db.Where("semester_degree_code = ?", degree).Delete(&semesterModel.SemesterModel{})
		db.Where("change_ticket_object_id = ?", degree).Delete(&model.ChangeTicketModel{})
	})

	seed := semesterModel.SemesterModel{
		SemesterDegreeCode: degree,
		SemesterYearIndex:  1,
		SemesterTermIndex:  1,
		SemesterNumber:     1,
		SemesterLabel:      "Year 1 • Term 1",
		SemesterIsActive:   true,
	}
	if err := db.Create(&seed).Error; err != nil {
		t.Fatalf("seed semester: %v", err)
	}

	guarded := func(tx *gorm.DB) (semesterService.GuardResult, error) {
		guard := semesterService.NewChangeGuard(
			semesterService.NewGormDependentCounter(tx),
			NewGormTicketSink(tx),
			zap.NewNop(),
		)
		return guard.Apply(ctx, semesterService.GuardRequest{
			DegreeCode:     degree,
			Action:         semesterService.ActionEditStructure,
			Before:         map[string]int{"years": 4},
			After:          map[string]int{"years": 3},
			RequesterEmail: "admin@kampusku.id",
		}, func(context.Context) (int, error) { return 0, nil })
	}

	ticketCount := func() int64 {
		var n int64
		if err := db.Model(&model.ChangeTicketModel{}).
			Where("change_ticket_object_id = ?", degree).
			Count(&n).Error; err != nil {
			t.Fatalf("count tickets: %v", err)
		}
		return n
	}

	rollback := errors.New("force rollback")
	err := db.Transaction(func(tx *gorm.DB) error {
		res, err := guarded(tx)
		if err != nil {
			return err
		}
		if !res.Deferred {
			t.Fatal("edit with dependents must be deferred")
		}
		return rollback
	})
	if !errors.Is(err, rollback) {
		t.Fatalf("transaction: %v", err)
	}
	if n := ticketCount(); n != 0 {
		t.Fatalf("rolled-back deferral left %d tickets", n)
	}

	if err := db.Transaction(func(tx *gorm.DB) error {
		_, err := guarded(tx)
		return err
	}); err != nil {
		t.Fatalf("transaction: %v", err)
	}
	if n := ticketCount(); n != 1 {
		t.Fatalf("committed deferral should leave exactly one ticket, got %d", n)
	}
}
