package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/gymops/cashcut/internal/domain"
)

// CutResponse is the canonical wire shape of a cash cut. Every derived
// field is always present, including the mixto buckets, so persisted and
// displayed records share one complete, self-consistent shape.
type CutResponse struct {
	ID        string `json:"id"`
	CutNumber int64  `json:"cut_number"`
	CutDate   string `json:"cut_date"` // YYYY-MM-DD
	Status    string `json:"status"`
	IsManual  bool   `json:"is_manual"`

	POSEfectivo      decimal.Decimal `json:"pos_efectivo"`
	POSTransferencia decimal.Decimal `json:"pos_transferencia"`
	POSDebito        decimal.Decimal `json:"pos_debito"`
	POSCredito       decimal.Decimal `json:"pos_credito"`
	POSMixto         decimal.Decimal `json:"pos_mixto"`
	POSTransactions  int             `json:"pos_transactions"`
	POSCommissions   decimal.Decimal `json:"pos_commissions"`
	POSTotal         decimal.Decimal `json:"pos_total"`

	AbonosEfectivo      decimal.Decimal `json:"abonos_efectivo"`
	AbonosTransferencia decimal.Decimal `json:"abonos_transferencia"`
	AbonosDebito        decimal.Decimal `json:"abonos_debito"`
	AbonosCredito       decimal.Decimal `json:"abonos_credito"`
	AbonosMixto         decimal.Decimal `json:"abonos_mixto"`
	AbonosTransactions  int             `json:"abonos_transactions"`
	AbonosCommissions   decimal.Decimal `json:"abonos_commissions"`
	AbonosTotal         decimal.Decimal `json:"abonos_total"`

	MembershipEfectivo      decimal.Decimal `json:"membership_efectivo"`
	MembershipTransferencia decimal.Decimal `json:"membership_transferencia"`
	MembershipDebito        decimal.Decimal `json:"membership_debito"`
	MembershipCredito       decimal.Decimal `json:"membership_credito"`
	MembershipMixto         decimal.Decimal `json:"membership_mixto"`
	MembershipTransactions  int             `json:"membership_transactions"`
	MembershipCommissions   decimal.Decimal `json:"membership_commissions"`
	MembershipTotal         decimal.Decimal `json:"membership_total"`

	TotalEfectivo      decimal.Decimal `json:"total_efectivo"`
	TotalTransferencia decimal.Decimal `json:"total_transferencia"`
	TotalDebito        decimal.Decimal `json:"total_debito"`
	TotalCredito       decimal.Decimal `json:"total_credito"`
	TotalMixto         decimal.Decimal `json:"total_mixto"`

	TotalTransactions int             `json:"total_transactions"`
	TotalCommissions  decimal.Decimal `json:"total_commissions"`
	GrandTotal        decimal.Decimal `json:"grand_total"`

	ExpensesAmount decimal.Decimal `json:"expenses_amount"`
	FinalBalance   decimal.Decimal `json:"final_balance"`
	NetAmount      decimal.Decimal `json:"net_amount"`

	CreatedBy   string    `json:"created_by"`
	CreatorName string    `json:"creator_name,omitempty"`
	Notes       string    `json:"notes,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// CutFromDomain converts a domain cut to its wire shape.
func CutFromDomain(c *domain.CutRecord) *CutResponse {
	return &CutResponse{
		ID:        c.ID,
		CutNumber: c.CutNumber,
		CutDate:   c.CutDate.Format("2006-01-02"),
		Status:    string(c.Status),
		IsManual:  c.IsManual,

		POSEfectivo:      c.POS.Efectivo,
		POSTransferencia: c.POS.Transferencia,
		POSDebito:        c.POS.Debito,
		POSCredito:       c.POS.Credito,
		POSMixto:         c.POS.Mixto,
		POSTransactions:  c.POS.Transactions,
		POSCommissions:   c.POS.Commissions,
		POSTotal:         c.POSTotal,

		AbonosEfectivo:      c.Abonos.Efectivo,
		AbonosTransferencia: c.Abonos.Transferencia,
		AbonosDebito:        c.Abonos.Debito,
		AbonosCredito:       c.Abonos.Credito,
		AbonosMixto:         c.Abonos.Mixto,
		AbonosTransactions:  c.Abonos.Transactions,
		AbonosCommissions:   c.Abonos.Commissions,
		AbonosTotal:         c.AbonosTotal,

		MembershipEfectivo:      c.Membership.Efectivo,
		MembershipTransferencia: c.Membership.Transferencia,
		MembershipDebito:        c.Membership.Debito,
		MembershipCredito:       c.Membership.Credito,
		MembershipMixto:         c.Membership.Mixto,
		MembershipTransactions:  c.Membership.Transactions,
		MembershipCommissions:   c.Membership.Commissions,
		MembershipTotal:         c.MembershipTotal,

		TotalEfectivo:      c.Totals.Efectivo,
		TotalTransferencia: c.Totals.Transferencia,
		TotalDebito:        c.Totals.Debito,
		TotalCredito:       c.Totals.Credito,
		TotalMixto:         c.Totals.Mixto,

		TotalTransactions: c.TotalTransactions,
		TotalCommissions:  c.TotalCommissions,
		GrandTotal:        c.GrandTotal,

		ExpensesAmount: c.ExpensesAmount,
		FinalBalance:   c.FinalBalance,
		NetAmount:      c.FinalBalance,

		CreatedBy:   c.CreatedBy,
		CreatorName: c.CreatorName,
		Notes:       c.Notes,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}

// CutsFromDomain converts domain cuts to wire shapes.
func CutsFromDomain(cuts []*domain.CutRecord) []*CutResponse {
	result := make([]*CutResponse, len(cuts))
	for i, c := range cuts {
		result[i] = CutFromDomain(c)
	}
	return result
}

// ListCutsResponse wraps a page of cuts.
type ListCutsResponse struct {
	Cuts  []*CutResponse `json:"cuts"`
	Total int64          `json:"total"`
}

// SyncReportResponse is the advisory expense-sync report for a cut.
type SyncReportResponse struct {
	CutID        string          `json:"cut_id"`
	CutDate      string          `json:"cut_date"`
	CutExpenses  decimal.Decimal `json:"cut_expenses"`
	RealExpenses decimal.Decimal `json:"real_expenses"`
	Difference   decimal.Decimal `json:"difference"`
	Tolerance    decimal.Decimal `json:"tolerance"`
	Desynced     bool            `json:"desynced"`
}

// SyncReportFromDomain converts a sync result to its wire shape.
func SyncReportFromDomain(cut *domain.CutRecord, report domain.ExpenseSyncReport) *SyncReportResponse {
	return &SyncReportResponse{
		CutID:        cut.ID,
		CutDate:      cut.CutDate.Format("2006-01-02"),
		CutExpenses:  report.CutExpenses,
		RealExpenses: report.RealExpenses,
		Difference:   report.Difference,
		Tolerance:    report.Tolerance,
		Desynced:     report.Desynced,
	}
}

// ExpenseSummaryResponse is the daily expense ledger summary.
type ExpenseSummaryResponse struct {
	Date          string          `json:"date"`
	TotalAmount   decimal.Decimal `json:"total_amount"`
	TotalExpenses int             `json:"total_expenses"`
}

// ExpenseSummaryFromDomain converts a domain summary to its wire shape.
func ExpenseSummaryFromDomain(s *domain.DailyExpenseSummary) *ExpenseSummaryResponse {
	return &ExpenseSummaryResponse{
		Date:          s.Date.Format("2006-01-02"),
		TotalAmount:   s.TotalAmount,
		TotalExpenses: s.TotalExpenses,
	}
}

// UserResponse represents a user in API responses.
type UserResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Role      string    `json:"role"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// UserFromDomain converts a domain user to a response.
func UserFromDomain(u *domain.User) *UserResponse {
	return &UserResponse{
		ID:        u.ID,
		Email:     u.Email,
		Name:      u.Name,
		Role:      string(u.Role),
		Active:    u.Active,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

// UsersFromDomain converts domain users to responses.
func UsersFromDomain(users []*domain.User) []*UserResponse {
	result := make([]*UserResponse, len(users))
	for i, u := range users {
		result[i] = UserFromDomain(u)
	}
	return result
}

// LoginResponse carries the issued token and the authenticated user.
type LoginResponse struct {
	Token string        `json:"token"`
	User  *UserResponse `json:"user"`
}

// ErrorResponse represents an error in API responses.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
