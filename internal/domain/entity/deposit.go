package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DateLayout is the calendar-day format used for deposit dates and
// settlement grouping.
const DateLayout = "2006-01-02"

// DailyDeposit records one act of submitting cash to the bank.
// Rows are append-only and never edited; CashRevenue is the expected
// figure known at submission time, kept for later reconciliation.
type DailyDeposit struct {
	ID              uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Date            time.Time `gorm:"type:date;not null;index" json:"-"`
	EmployeeID      uuid.UUID `gorm:"type:uuid;not null;index" json:"employeeId"`
	EmployeeName    string    `gorm:"size:255;not null" json:"employeeName"`
	CashRevenue     int64     `gorm:"not null;default:0" json:"-"` // cents
	AmountSubmitted int64     `gorm:"not null" json:"-"`           // cents
	Notes           string    `gorm:"type:text" json:"notes,omitempty"`
	CreatedAt       time.Time `json:"createdAt"`
}

// BeforeCreate generates a UUID before creating a new deposit
func (d *DailyDeposit) BeforeCreate(tx *gorm.DB) error {
	if d.ID == uuid.Nil {
		d.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the DailyDeposit model
func (DailyDeposit) TableName() string {
	return "daily_deposits"
}

// Day returns the deposit's calendar day as a YYYY-MM-DD string
func (d *DailyDeposit) Day() string {
	return d.Date.Format(DateLayout)
}

// MarshalJSON renders the date as a day string and amounts as decimals
func (d DailyDeposit) MarshalJSON() ([]byte, error) {
	type Alias DailyDeposit
	return json.Marshal(&struct {
		Alias
		Date            string  `json:"date"`
		CashRevenue     float64 `json:"cashRevenue"`
		AmountSubmitted float64 `json:"amountSubmitted"`
	}{
		Alias:           Alias(d),
		Date:            d.Date.Format(DateLayout),
		CashRevenue:     float64(d.CashRevenue) / 100,
		AmountSubmitted: float64(d.AmountSubmitted) / 100,
	})
}
