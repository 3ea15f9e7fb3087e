// Package settlement reconciles cash actually submitted by employees
// against the cash they were expected to collect. It is a pure
// aggregation layer: it only reads immutable snapshots of sales, audit
// events and deposits, and never writes anything.
package settlement

import (
	"encoding/json"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/medipos/pharmapos-api/internal/domain/entity"
	"github.com/medipos/pharmapos-api/internal/domain/enum"
)

// DayStatus classifies the discrepancy of one employee-day
type DayStatus string

const (
	StatusShortage DayStatus = "shortage"
	StatusExcess   DayStatus = "excess"
	StatusBalanced DayStatus = "balanced"
)

// DailyRecord is the reconciliation result for one employee on one
// calendar day. All amounts are cents; Discrepancy is Submitted minus
// Expected, so a shortage is negative.
type DailyRecord struct {
	Date          string
	EmployeeID    uuid.UUID
	EmployeeName  string
	SalesExpected int64
	DebtExpected  int64
	Expected      int64
	Submitted     int64
	Discrepancy   int64
	Status        DayStatus
}

// MarshalJSON renders cent amounts as decimals for API responses
func (r DailyRecord) MarshalJSON() ([]byte, error) {
	return json.Marshal(&struct {
		Date          string    `json:"date"`
		EmployeeID    uuid.UUID `json:"employeeId"`
		EmployeeName  string    `json:"employeeName"`
		SalesExpected float64   `json:"salesExpected"`
		DebtExpected  float64   `json:"debtExpected"`
		Expected      float64   `json:"expected"`
		Submitted     float64   `json:"submitted"`
		Discrepancy   float64   `json:"discrepancy"`
		Status        DayStatus `json:"status"`
	}{
		Date:          r.Date,
		EmployeeID:    r.EmployeeID,
		EmployeeName:  r.EmployeeName,
		SalesExpected: float64(r.SalesExpected) / 100,
		DebtExpected:  float64(r.DebtExpected) / 100,
		Expected:      float64(r.Expected) / 100,
		Submitted:     float64(r.Submitted) / 100,
		Discrepancy:   float64(r.Discrepancy) / 100,
		Status:        r.Status,
	})
}

// EmployeeBalance is the running settlement position of one employee
// across their entire history. Balance is the sum of daily
// discrepancies in cents.
type EmployeeBalance struct {
	EmployeeID   uuid.UUID
	EmployeeName string
	Balance      int64
	Status       DayStatus
}

// MarshalJSON renders the balance as a decimal for API responses
func (b EmployeeBalance) MarshalJSON() ([]byte, error) {
	return json.Marshal(&struct {
		EmployeeID   uuid.UUID `json:"employeeId"`
		EmployeeName string    `json:"employeeName"`
		Balance      float64   `json:"balance"`
		Status       DayStatus `json:"status"`
	}{
		EmployeeID:   b.EmployeeID,
		EmployeeName: b.EmployeeName,
		Balance:      float64(b.Balance) / 100,
		Status:       b.Status,
	})
}

type dayKey struct {
	date       string
	employeeID uuid.UUID
}

// Classify maps a discrepancy to its status
func Classify(discrepancy int64) DayStatus {
	switch {
	case discrepancy < 0:
		return StatusShortage
	case discrepancy > 0:
		return StatusExcess
	default:
		return StatusBalanced
	}
}

// DailyHistory groups sales, debt payments and deposits into per-employee
// per-day reconciliation records. Sale and audit timestamps are bucketed
// into calendar days in loc; deposit rows carry their own calendar day.
// Days where nothing was expected and nothing was submitted are dropped.
// Records are returned newest day first, then by employee name.
func DailyHistory(sales []entity.Sale, logs []entity.AuditLog, deposits []entity.DailyDeposit, loc *time.Location) []DailyRecord {
	if loc == nil {
		loc = time.UTC
	}

	buckets := make(map[dayKey]*DailyRecord)
	get := func(date string, employeeID uuid.UUID, employeeName string) *DailyRecord {
		key := dayKey{date: date, employeeID: employeeID}
		rec, ok := buckets[key]
		if !ok {
			rec = &DailyRecord{Date: date, EmployeeID: employeeID, EmployeeName: employeeName}
			buckets[key] = rec
		}
		if rec.EmployeeName == "" {
			rec.EmployeeName = employeeName
		}
		return rec
	}

	// Only cash crosses the counter; card and mobile settle through the
	// bank directly and never count toward an employee's expected figure.
	for i := range sales {
		s := &sales[i]
		if s.PaymentMethod != enum.PaymentCash {
			continue
		}
		date := s.Timestamp.In(loc).Format(entity.DateLayout)
		rec := get(date, s.EmployeeID, s.EmployeeName)
		rec.SalesExpected += s.TotalAmount
	}

	for i := range logs {
		l := &logs[i]
		payment := l.DebtPayment()
		if payment == 0 {
			continue
		}
		date := l.Timestamp.In(loc).Format(entity.DateLayout)
		rec := get(date, l.UserID, l.UserName)
		rec.DebtExpected += payment
	}

	for i := range deposits {
		d := &deposits[i]
		rec := get(d.Day(), d.EmployeeID, d.EmployeeName)
		rec.Submitted += d.AmountSubmitted
	}

	records := make([]DailyRecord, 0, len(buckets))
	for _, rec := range buckets {
		rec.Expected = rec.SalesExpected + rec.DebtExpected
		if rec.Expected == 0 && rec.Submitted == 0 {
			continue
		}
		rec.Discrepancy = rec.Submitted - rec.Expected
		rec.Status = Classify(rec.Discrepancy)
		records = append(records, *rec)
	}

	sort.Slice(records, func(i, j int) bool {
		if records[i].Date != records[j].Date {
			return records[i].Date > records[j].Date
		}
		if records[i].EmployeeName != records[j].EmployeeName {
			return records[i].EmployeeName < records[j].EmployeeName
		}
		return records[i].EmployeeID.String() < records[j].EmployeeID.String()
	})

	return records
}

// LifetimeBalances folds daily records into one running balance per
// employee, sorted by employee name. An employee whose shortages and
// excesses cancel out ends up balanced regardless of how uneven the
// individual days were.
func LifetimeBalances(records []DailyRecord) []EmployeeBalance {
	totals := make(map[uuid.UUID]*EmployeeBalance)
	for i := range records {
		rec := &records[i]
		bal, ok := totals[rec.EmployeeID]
		if !ok {
			bal = &EmployeeBalance{EmployeeID: rec.EmployeeID, EmployeeName: rec.EmployeeName}
			totals[rec.EmployeeID] = bal
		}
		bal.Balance += rec.Discrepancy
	}

	balances := make([]EmployeeBalance, 0, len(totals))
	for _, bal := range totals {
		bal.Status = Classify(bal.Balance)
		balances = append(balances, *bal)
	}

	sort.Slice(balances, func(i, j int) bool {
		if balances[i].EmployeeName != balances[j].EmployeeName {
			return balances[i].EmployeeName < balances[j].EmployeeName
		}
		return balances[i].EmployeeID.String() < balances[j].EmployeeID.String()
	})

	return balances
}

// SystemBalance sums every employee's lifetime balance into a single
// figure for the whole operation.
func SystemBalance(balances []EmployeeBalance) int64 {
	var total int64
	for i := range balances {
		total += balances[i].Balance
	}
	return total
}
