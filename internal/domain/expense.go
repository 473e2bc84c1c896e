package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// DailyExpenseSummary is the authoritative expense tally for one calendar
// day, sourced from the expense ledger. Read-only from this service's
// point of view.
type DailyExpenseSummary struct {
	Date          time.Time
	TotalAmount   decimal.Decimal
	TotalExpenses int
}

// DefaultSyncTolerance is the drift a cut's recorded expense figure may
// show against the ledger before it counts as desynced.
var DefaultSyncTolerance = decimal.New(1, -2) // 0.01

// ExpenseSyncReport compares a cut's recorded expense figure against the
// independently tallied ledger figure for the same day. Advisory only:
// a desynced cut can still be edited and saved.
type ExpenseSyncReport struct {
	CutExpenses  decimal.Decimal
	RealExpenses decimal.Decimal
	Difference   decimal.Decimal
	Tolerance    decimal.Decimal
	Desynced     bool
}

// CheckExpenseSync builds a sync report. A cut is desynced when the
// absolute difference strictly exceeds the tolerance; drift exactly at
// the tolerance is still in sync.
func CheckExpenseSync(cutExpenses, realExpenses, tolerance decimal.Decimal) ExpenseSyncReport {
	cut := NormalizeAmount(cutExpenses)
	real := NormalizeAmount(realExpenses)
	diff := cut.Sub(real).Abs()

	return ExpenseSyncReport{
		CutExpenses:  cut,
		RealExpenses: real,
		Difference:   diff,
		Tolerance:    tolerance,
		Desynced:     diff.GreaterThan(tolerance),
	}
}
