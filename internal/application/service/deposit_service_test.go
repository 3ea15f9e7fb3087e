package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/medipos/pharmapos-api/internal/domain/entity"
	"github.com/medipos/pharmapos-api/internal/domain/repository"
)

type fakeDepositRepo struct {
	deposits []entity.DailyDeposit
}

func (f *fakeDepositRepo) Create(_ context.Context, d *entity.DailyDeposit) error {
	if d.ID == uuid.Nil {
		d.ID = uuid.New()
	}
	f.deposits = append(f.deposits, *d)
	return nil
}

func (f *fakeDepositRepo) List(_ context.Context, params *repository.DepositFilterParams) ([]entity.DailyDeposit, int64, error) {
	out := make([]entity.DailyDeposit, len(f.deposits))
	copy(out, f.deposits)
	return out, int64(len(out)), nil
}

func (f *fakeDepositRepo) ListRange(_ context.Context, from, to *time.Time, employeeID *uuid.UUID) ([]entity.DailyDeposit, error) {
	var out []entity.DailyDeposit
	for i := range f.deposits {
		d := f.deposits[i]
		if employeeID != nil && d.EmployeeID != *employeeID {
			continue
		}
		out = append(out, d)
	}
	return out, nil
}

func TestCreateDeposit(t *testing.T) {
	repo := &fakeDepositRepo{}
	svc := NewDepositService(repo)

	deposit, err := svc.CreateDeposit(context.Background(), &CreateDepositInput{
		Date:            time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
		CashRevenue:     50000,
		AmountSubmitted: 49500,
		Notes:           "short 5.00, till float missing",
		EmployeeID:      uuid.New(),
		EmployeeName:    "Alice",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if deposit.AmountSubmitted != 49500 {
		t.Errorf("submitted = %d, want 49500", deposit.AmountSubmitted)
	}
	if len(repo.deposits) != 1 {
		t.Errorf("persisted = %d, want 1", len(repo.deposits))
	}
}

func TestCreateDepositValidation(t *testing.T) {
	svc := NewDepositService(&fakeDepositRepo{})
	ctx := context.Background()

	if _, err := svc.CreateDeposit(ctx, &CreateDepositInput{AmountSubmitted: -1, Notes: "till short"}); err == nil {
		t.Error("expected error for negative amount")
	}
	// every deposit needs a real note; whitespace does not count
	if _, err := svc.CreateDeposit(ctx, &CreateDepositInput{AmountSubmitted: 100, Notes: "ok"}); err == nil {
		t.Error("expected error for too-short notes")
	}
	if _, err := svc.CreateDeposit(ctx, &CreateDepositInput{AmountSubmitted: 100, EmployeeID: uuid.New(), EmployeeName: "A"}); err == nil {
		t.Error("expected error for empty notes")
	}
	if _, err := svc.CreateDeposit(ctx, &CreateDepositInput{AmountSubmitted: 100, Notes: "   ", EmployeeID: uuid.New(), EmployeeName: "A"}); err == nil {
		t.Error("expected error for whitespace-only notes")
	}
	if _, err := svc.CreateDeposit(ctx, &CreateDepositInput{AmountSubmitted: 100, Notes: "  all counted  ", EmployeeID: uuid.New(), EmployeeName: "A"}); err != nil {
		t.Errorf("valid note rejected: %v", err)
	}
}
