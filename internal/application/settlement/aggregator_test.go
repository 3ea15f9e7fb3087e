package settlement

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/medipos/pharmapos-api/internal/domain/entity"
	"github.com/medipos/pharmapos-api/internal/domain/enum"
)

var (
	alice = uuid.MustParse("11111111-1111-1111-1111-111111111111")
	bob   = uuid.MustParse("22222222-2222-2222-2222-222222222222")
)

func saleAt(employeeID uuid.UUID, name string, method enum.PaymentMethod, cents int64, ts time.Time) entity.Sale {
	return entity.Sale{
		ID:            uuid.New(),
		ProductID:     uuid.New(),
		ProductName:   "Paracetamol 500mg",
		Quantity:      1,
		UnitPrice:     cents,
		TotalAmount:   cents,
		EmployeeID:    employeeID,
		EmployeeName:  name,
		PaymentMethod: method,
		Timestamp:     ts,
	}
}

func debtPaymentAt(userID uuid.UUID, name string, cents int64, ts time.Time) entity.AuditLog {
	return entity.AuditLog{
		ID:       uuid.New(),
		UserID:   userID,
		UserName: name,
		Action:   enum.ActionDebtUpdated,
		Details:  "Updated debt",
		Metadata: &entity.AuditMetadata{
			OldDebt:       cents,
			NewDebt:       0,
			PaymentAmount: cents,
		},
		Timestamp: ts,
	}
}

func depositOn(employeeID uuid.UUID, name string, cents int64, day time.Time) entity.DailyDeposit {
	return entity.DailyDeposit{
		ID:              uuid.New(),
		Date:            day,
		EmployeeID:      employeeID,
		EmployeeName:    name,
		AmountSubmitted: cents,
	}
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestDailyHistoryEmptyInputs(t *testing.T) {
	records := DailyHistory(nil, nil, nil, time.UTC)
	if len(records) != 0 {
		t.Fatalf("expected no records, got %d", len(records))
	}
}

func TestDailyHistoryCashSalesOnly(t *testing.T) {
	ts := time.Date(2025, 3, 10, 14, 30, 0, 0, time.UTC)
	sales := []entity.Sale{
		saleAt(alice, "Alice", enum.PaymentCash, 1500, ts),
		saleAt(alice, "Alice", enum.PaymentCash, 2500, ts.Add(time.Hour)),
		saleAt(alice, "Alice", enum.PaymentCard, 9900, ts), // not cash, excluded
	}
	deposits := []entity.DailyDeposit{
		depositOn(alice, "Alice", 4000, day(2025, 3, 10)),
	}

	records := DailyHistory(sales, nil, deposits, time.UTC)
	if len(records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(records))
	}

	rec := records[0]
	if rec.SalesExpected != 4000 {
		t.Errorf("salesExpected = %d, want 4000", rec.SalesExpected)
	}
	if rec.Expected != 4000 {
		t.Errorf("expected = %d, want 4000", rec.Expected)
	}
	if rec.Submitted != 4000 {
		t.Errorf("submitted = %d, want 4000", rec.Submitted)
	}
	if rec.Discrepancy != 0 || rec.Status != StatusBalanced {
		t.Errorf("got discrepancy %d status %s, want 0 balanced", rec.Discrepancy, rec.Status)
	}
}

func TestDailyHistoryDebtPaymentsCountTowardExpected(t *testing.T) {
	ts := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	sales := []entity.Sale{
		saleAt(alice, "Alice", enum.PaymentCash, 1000, ts),
	}
	logs := []entity.AuditLog{
		debtPaymentAt(alice, "Alice", 500, ts.Add(2*time.Hour)),
		// additional debt with no payment carries no cash
		{
			ID:        uuid.New(),
			UserID:    alice,
			UserName:  "Alice",
			Action:    enum.ActionDebtUpdated,
			Details:   "Added debt",
			Metadata:  &entity.AuditMetadata{OldDebt: 0, NewDebt: 2000, PaymentAmount: 0},
			Timestamp: ts.Add(3 * time.Hour),
		},
	}
	deposits := []entity.DailyDeposit{
		depositOn(alice, "Alice", 1200, day(2025, 3, 10)),
	}

	records := DailyHistory(sales, logs, deposits, time.UTC)
	if len(records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(records))
	}

	rec := records[0]
	if rec.SalesExpected != 1000 {
		t.Errorf("salesExpected = %d, want 1000", rec.SalesExpected)
	}
	if rec.DebtExpected != 500 {
		t.Errorf("debtExpected = %d, want 500", rec.DebtExpected)
	}
	if rec.Discrepancy != -300 {
		t.Errorf("discrepancy = %d, want -300", rec.Discrepancy)
	}
	if rec.Status != StatusShortage {
		t.Errorf("status = %s, want shortage", rec.Status)
	}
}

func TestDailyHistoryDropsEmptyDays(t *testing.T) {
	// A non-cash sale produces a day with zero expected and zero
	// submitted, which must not appear in the history.
	sales := []entity.Sale{
		saleAt(alice, "Alice", enum.PaymentMobileBanking, 5000, time.Date(2025, 3, 11, 10, 0, 0, 0, time.UTC)),
	}

	records := DailyHistory(sales, nil, nil, time.UTC)
	if len(records) != 0 {
		t.Fatalf("expected 0 records, got %d", len(records))
	}
}

func TestDailyHistoryDepositWithoutSalesIsExcess(t *testing.T) {
	deposits := []entity.DailyDeposit{
		depositOn(bob, "Bob", 700, day(2025, 3, 12)),
	}

	records := DailyHistory(nil, nil, deposits, time.UTC)
	if len(records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(records))
	}
	if records[0].Discrepancy != 700 || records[0].Status != StatusExcess {
		t.Errorf("got discrepancy %d status %s, want 700 excess", records[0].Discrepancy, records[0].Status)
	}
}

func TestDailyHistoryOrderIndependence(t *testing.T) {
	ts := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	sales := []entity.Sale{
		saleAt(alice, "Alice", enum.PaymentCash, 1000, ts),
		saleAt(bob, "Bob", enum.PaymentCash, 2000, ts),
		saleAt(alice, "Alice", enum.PaymentCash, 3000, ts.AddDate(0, 0, 1)),
	}
	deposits := []entity.DailyDeposit{
		depositOn(alice, "Alice", 1000, day(2025, 3, 10)),
		depositOn(bob, "Bob", 1500, day(2025, 3, 10)),
	}

	forward := DailyHistory(sales, nil, deposits, time.UTC)

	reversedSales := []entity.Sale{sales[2], sales[1], sales[0]}
	reversedDeposits := []entity.DailyDeposit{deposits[1], deposits[0]}
	backward := DailyHistory(reversedSales, nil, reversedDeposits, time.UTC)

	if len(forward) != len(backward) {
		t.Fatalf("record counts differ: %d vs %d", len(forward), len(backward))
	}
	for i := range forward {
		if forward[i] != backward[i] {
			t.Errorf("record %d differs: %+v vs %+v", i, forward[i], backward[i])
		}
	}
}

func TestDailyHistorySortsNewestFirst(t *testing.T) {
	sales := []entity.Sale{
		saleAt(alice, "Alice", enum.PaymentCash, 1000, time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)),
		saleAt(bob, "Bob", enum.PaymentCash, 1000, time.Date(2025, 3, 12, 9, 0, 0, 0, time.UTC)),
		saleAt(alice, "Alice", enum.PaymentCash, 1000, time.Date(2025, 3, 12, 9, 0, 0, 0, time.UTC)),
	}

	records := DailyHistory(sales, nil, nil, time.UTC)
	if len(records) != 3 {
		t.Fatalf("expected 3 records, got %d", len(records))
	}
	if records[0].Date != "2025-03-12" || records[0].EmployeeName != "Alice" {
		t.Errorf("record 0 = %s/%s, want 2025-03-12/Alice", records[0].Date, records[0].EmployeeName)
	}
	if records[1].Date != "2025-03-12" || records[1].EmployeeName != "Bob" {
		t.Errorf("record 1 = %s/%s, want 2025-03-12/Bob", records[1].Date, records[1].EmployeeName)
	}
	if records[2].Date != "2025-03-10" {
		t.Errorf("record 2 date = %s, want 2025-03-10", records[2].Date)
	}
}

func TestDailyHistoryTimezoneBucketing(t *testing.T) {
	// 2025-03-10 23:30 UTC is already 2025-03-11 in UTC+3.
	nairobi := time.FixedZone("EAT", 3*60*60)
	sales := []entity.Sale{
		saleAt(alice, "Alice", enum.PaymentCash, 1000, time.Date(2025, 3, 10, 23, 30, 0, 0, time.UTC)),
	}

	records := DailyHistory(sales, nil, nil, nairobi)
	if len(records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(records))
	}
	if records[0].Date != "2025-03-11" {
		t.Errorf("date = %s, want 2025-03-11", records[0].Date)
	}
}

func TestLifetimeBalancesAdditivity(t *testing.T) {
	// Days of -10.00, +5.00 and +5.00 cancel to a balanced lifetime.
	records := []DailyRecord{
		{Date: "2025-03-10", EmployeeID: alice, EmployeeName: "Alice", Discrepancy: -1000},
		{Date: "2025-03-11", EmployeeID: alice, EmployeeName: "Alice", Discrepancy: 500},
		{Date: "2025-03-12", EmployeeID: alice, EmployeeName: "Alice", Discrepancy: 500},
		{Date: "2025-03-10", EmployeeID: bob, EmployeeName: "Bob", Discrepancy: -250},
	}

	balances := LifetimeBalances(records)
	if len(balances) != 2 {
		t.Fatalf("expected 2 balances, got %d", len(balances))
	}

	if balances[0].EmployeeName != "Alice" {
		t.Fatalf("balances not sorted by name: %+v", balances)
	}
	if balances[0].Balance != 0 || balances[0].Status != StatusBalanced {
		t.Errorf("Alice balance = %d status %s, want 0 balanced", balances[0].Balance, balances[0].Status)
	}
	if balances[1].Balance != -250 || balances[1].Status != StatusShortage {
		t.Errorf("Bob balance = %d status %s, want -250 shortage", balances[1].Balance, balances[1].Status)
	}

	if SystemBalance(balances) != -250 {
		t.Errorf("system balance = %d, want -250", SystemBalance(balances))
	}
}

func TestClassify(t *testing.T) {
	cases := []struct {
		discrepancy int64
		want        DayStatus
	}{
		{-1, StatusShortage},
		{0, StatusBalanced},
		{1, StatusExcess},
	}
	for _, tc := range cases {
		if got := Classify(tc.discrepancy); got != tc.want {
			t.Errorf("Classify(%d) = %s, want %s", tc.discrepancy, got, tc.want)
		}
	}
}
