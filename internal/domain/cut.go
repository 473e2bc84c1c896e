package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Channel identifies a revenue source feeding a cash cut.
type Channel string

const (
	ChannelPOS        Channel = "pos"
	ChannelAbonos     Channel = "abonos"
	ChannelMembership Channel = "membership"
)

// Method identifies a payment instrument.
type Method string

const (
	MethodEfectivo      Method = "efectivo"
	MethodTransferencia Method = "transferencia"
	MethodDebito        Method = "debito"
	MethodCredito       Method = "credito"
	MethodMixto         Method = "mixto"
)

// Channels lists the revenue channels in canonical order.
var Channels = []Channel{ChannelPOS, ChannelAbonos, ChannelMembership}

// Methods lists the payment methods in canonical order.
var Methods = []Method{MethodEfectivo, MethodTransferencia, MethodDebito, MethodCredito, MethodMixto}

// CutStatus represents the lifecycle state of a cash cut.
type CutStatus string

const (
	CutStatusOpen   CutStatus = "open"
	CutStatusEdited CutStatus = "edited"
	CutStatusClosed CutStatus = "closed"
)

// IsValid checks if the status is a known cut status.
func (s CutStatus) IsValid() bool {
	switch s {
	case CutStatusOpen, CutStatusEdited, CutStatusClosed:
		return true
	}
	return false
}

// ChannelFigures holds one channel's raw figures for a single day:
// the five method buckets, the transaction count and the commissions
// already attributed to the channel.
type ChannelFigures struct {
	Efectivo      decimal.Decimal
	Transferencia decimal.Decimal
	Debito        decimal.Decimal
	Credito       decimal.Decimal
	Mixto         decimal.Decimal
	Transactions  int
	Commissions   decimal.Decimal
}

// Total sums the five method buckets. No rounding is applied.
func (f ChannelFigures) Total() decimal.Decimal {
	return f.Efectivo.
		Add(f.Transferencia).
		Add(f.Debito).
		Add(f.Credito).
		Add(f.Mixto)
}

// Method returns the bucket for a payment method.
func (f ChannelFigures) Method(m Method) decimal.Decimal {
	switch m {
	case MethodEfectivo:
		return f.Efectivo
	case MethodTransferencia:
		return f.Transferencia
	case MethodDebito:
		return f.Debito
	case MethodCredito:
		return f.Credito
	case MethodMixto:
		return f.Mixto
	}
	return decimal.Zero
}

// Normalize re-normalizes every figure so later arithmetic is safe.
func (f ChannelFigures) Normalize() ChannelFigures {
	return ChannelFigures{
		Efectivo:      NormalizeAmount(f.Efectivo),
		Transferencia: NormalizeAmount(f.Transferencia),
		Debito:        NormalizeAmount(f.Debito),
		Credito:       NormalizeAmount(f.Credito),
		Mixto:         NormalizeAmount(f.Mixto),
		Transactions:  NormalizeCount(f.Transactions),
		Commissions:   NormalizeAmount(f.Commissions),
	}
}

// DayFigures is the raw per-channel input fetched from the transactional
// systems for one calendar day.
type DayFigures struct {
	Date       time.Time
	POS        ChannelFigures
	Abonos     ChannelFigures
	Membership ChannelFigures
}

// MethodTotals holds the per-method grand totals across all channels.
type MethodTotals struct {
	Efectivo      decimal.Decimal
	Transferencia decimal.Decimal
	Debito        decimal.Decimal
	Credito       decimal.Decimal
	Mixto         decimal.Decimal
}

// Sum adds the five method totals.
func (t MethodTotals) Sum() decimal.Decimal {
	return t.Efectivo.
		Add(t.Transferencia).
		Add(t.Debito).
		Add(t.Credito).
		Add(t.Mixto)
}

// CutRecord is one cash-drawer reconciliation for one calendar day.
// Derived fields are never edited directly; Recompute is the only path
// that populates them.
type CutRecord struct {
	ID        string
	CutNumber int64
	CutDate   time.Time
	Status    CutStatus
	IsManual  bool

	POS        ChannelFigures
	Abonos     ChannelFigures
	Membership ChannelFigures

	POSTotal        decimal.Decimal
	AbonosTotal     decimal.Decimal
	MembershipTotal decimal.Decimal

	Totals MethodTotals

	TotalTransactions int
	TotalCommissions  decimal.Decimal
	GrandTotal        decimal.Decimal

	ExpensesAmount decimal.Decimal
	FinalBalance   decimal.Decimal

	CreatedBy   string
	CreatorName string
	Notes       string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewCutFromFigures builds an open cut from a day's fetched figures.
func NewCutFromFigures(figures DayFigures, expenses any) *CutRecord {
	cut := &CutRecord{
		CutDate:        DateOnly(figures.Date),
		Status:         CutStatusOpen,
		IsManual:       false,
		POS:            figures.POS,
		Abonos:         figures.Abonos,
		Membership:     figures.Membership,
		ExpensesAmount: NormalizeAmount(expenses),
	}
	cut.Recompute()
	return cut
}

// Recompute re-normalizes every base figure and re-derives every derived
// field. Stale derived values on the receiver are discarded wholesale;
// loading a tampered record and recomputing self-heals it.
func (c *CutRecord) Recompute() {
	c.POS = c.POS.Normalize()
	c.Abonos = c.Abonos.Normalize()
	c.Membership = c.Membership.Normalize()
	c.ExpensesAmount = NormalizeAmount(c.ExpensesAmount)

	c.POSTotal = c.POS.Total()
	c.AbonosTotal = c.Abonos.Total()
	c.MembershipTotal = c.Membership.Total()

	c.Totals = MethodTotals{
		Efectivo:      c.methodGrandTotal(MethodEfectivo),
		Transferencia: c.methodGrandTotal(MethodTransferencia),
		Debito:        c.methodGrandTotal(MethodDebito),
		Credito:       c.methodGrandTotal(MethodCredito),
		Mixto:         c.methodGrandTotal(MethodMixto),
	}

	c.TotalTransactions = c.POS.Transactions + c.Abonos.Transactions + c.Membership.Transactions
	c.TotalCommissions = c.POS.Commissions.Add(c.Abonos.Commissions).Add(c.Membership.Commissions)
	c.GrandTotal = c.POSTotal.Add(c.AbonosTotal).Add(c.MembershipTotal)
	c.FinalBalance = c.GrandTotal.Sub(c.ExpensesAmount)
}

func (c *CutRecord) methodGrandTotal(m Method) decimal.Decimal {
	return c.POS.Method(m).
		Add(c.Abonos.Method(m)).
		Add(c.Membership.Method(m))
}

// Channel returns the figures for a revenue channel.
func (c *CutRecord) Channel(ch Channel) ChannelFigures {
	switch ch {
	case ChannelPOS:
		return c.POS
	case ChannelAbonos:
		return c.Abonos
	case ChannelMembership:
		return c.Membership
	}
	return ChannelFigures{}
}

// MarkEdited flags the cut as operator-edited. Closed cuts stay closed.
func (c *CutRecord) MarkEdited() {
	if c.Status != CutStatusClosed {
		c.Status = CutStatusEdited
	}
}

// Close transitions an open or edited cut to closed.
func (c *CutRecord) Close() error {
	if c.Status == CutStatusClosed {
		return ErrCutAlreadyClosed
	}
	c.Status = CutStatusClosed
	return nil
}

// DateOnly strips the time component, keeping the calendar day in UTC.
func DateOnly(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
