package domain

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestCutRecord_Recompute_ExampleDay(t *testing.T) {
	cut := &CutRecord{
		Status: CutStatusOpen,
		POS: ChannelFigures{
			Efectivo:      dec("100"),
			Transferencia: dec("50"),
			Transactions:  5,
		},
		Abonos: ChannelFigures{
			Efectivo:     dec("20"),
			Transactions: 2,
		},
		Membership: ChannelFigures{
			Credito:      dec("200"),
			Transactions: 1,
		},
		ExpensesAmount: dec("30"),
	}

	cut.Recompute()

	checks := []struct {
		name string
		got  decimal.Decimal
		want string
	}{
		{"pos_total", cut.POSTotal, "150"},
		{"abonos_total", cut.AbonosTotal, "20"},
		{"membership_total", cut.MembershipTotal, "200"},
		{"grand_total", cut.GrandTotal, "370"},
		{"total_efectivo", cut.Totals.Efectivo, "120"},
		{"total_transferencia", cut.Totals.Transferencia, "50"},
		{"total_debito", cut.Totals.Debito, "0"},
		{"total_credito", cut.Totals.Credito, "200"},
		{"total_mixto", cut.Totals.Mixto, "0"},
		{"final_balance", cut.FinalBalance, "340"},
	}

	for _, c := range checks {
		if !c.got.Equal(dec(c.want)) {
			t.Errorf("%s = %s, want %s", c.name, c.got, c.want)
		}
	}

	if cut.TotalTransactions != 8 {
		t.Errorf("total_transactions = %d, want 8", cut.TotalTransactions)
	}
}

func TestCutRecord_Recompute_CrossConsistency(t *testing.T) {
	cut := &CutRecord{
		POS:        ChannelFigures{Efectivo: dec("10.11"), Transferencia: dec("20.22"), Debito: dec("30.33"), Credito: dec("40.44"), Mixto: dec("1.01")},
		Abonos:     ChannelFigures{Efectivo: dec("5.05"), Transferencia: dec("6.06"), Debito: dec("7.07"), Credito: dec("8.08"), Mixto: dec("2.02")},
		Membership: ChannelFigures{Efectivo: dec("9.09"), Transferencia: dec("1.10"), Debito: dec("2.20"), Credito: dec("3.30"), Mixto: dec("4.40")},
	}

	cut.Recompute()

	byChannels := cut.POSTotal.Add(cut.AbonosTotal).Add(cut.MembershipTotal)
	byMethods := cut.Totals.Sum()

	if !byChannels.Equal(byMethods) {
		t.Errorf("channel sum %s != method sum %s", byChannels, byMethods)
	}
	if !cut.GrandTotal.Equal(byChannels) {
		t.Errorf("grand_total %s != channel sum %s", cut.GrandTotal, byChannels)
	}
}

func TestCutRecord_Recompute_FixedPoint(t *testing.T) {
	cut := &CutRecord{
		POS:            ChannelFigures{Efectivo: dec("33.33"), Commissions: dec("1.50"), Transactions: 3},
		Abonos:         ChannelFigures{Transferencia: dec("66.67"), Commissions: dec("0.25")},
		Membership:     ChannelFigures{Mixto: dec("12.00")},
		ExpensesAmount: dec("200"),
	}

	cut.Recompute()
	first := *cut
	cut.Recompute()

	if first.GrandTotal.Cmp(cut.GrandTotal) != 0 ||
		first.FinalBalance.Cmp(cut.FinalBalance) != 0 ||
		first.TotalCommissions.Cmp(cut.TotalCommissions) != 0 ||
		first.TotalTransactions != cut.TotalTransactions {
		t.Error("Recompute is not a fixed point on its own output")
	}
}

func TestCutRecord_Recompute_SelfHealsStaleDerivedFields(t *testing.T) {
	cut := &CutRecord{
		POS: ChannelFigures{Efectivo: dec("100")},
		// Tampered derived fields from a stale load.
		GrandTotal:   dec("999999"),
		FinalBalance: dec("-1"),
		POSTotal:     dec("42"),
	}

	cut.Recompute()

	if !cut.GrandTotal.Equal(dec("100")) {
		t.Errorf("grand_total = %s, want 100", cut.GrandTotal)
	}
	if !cut.FinalBalance.Equal(dec("100")) {
		t.Errorf("final_balance = %s, want 100", cut.FinalBalance)
	}
}

func TestCutRecord_Recompute_NegativeBalanceNotClamped(t *testing.T) {
	cut := &CutRecord{
		POS:            ChannelFigures{Efectivo: dec("50")},
		ExpensesAmount: dec("80"),
	}

	cut.Recompute()

	if !cut.FinalBalance.Equal(dec("-30")) {
		t.Errorf("final_balance = %s, want -30", cut.FinalBalance)
	}
}

func TestCutRecord_Recompute_CommissionTotals(t *testing.T) {
	cut := &CutRecord{
		POS:        ChannelFigures{Commissions: dec("10.50")},
		Abonos:     ChannelFigures{Commissions: dec("2.25")},
		Membership: ChannelFigures{Commissions: dec("0.75")},
	}

	cut.Recompute()

	if !cut.TotalCommissions.Equal(dec("13.5")) {
		t.Errorf("total_commissions = %s, want 13.5", cut.TotalCommissions)
	}
}

func TestCutRecord_StatusTransitions(t *testing.T) {
	cut := &CutRecord{Status: CutStatusOpen}

	cut.MarkEdited()
	if cut.Status != CutStatusEdited {
		t.Errorf("status = %s, want edited", cut.Status)
	}

	if err := cut.Close(); err != nil {
		t.Fatalf("unexpected error closing edited cut: %v", err)
	}
	if cut.Status != CutStatusClosed {
		t.Errorf("status = %s, want closed", cut.Status)
	}

	if err := cut.Close(); err != ErrCutAlreadyClosed {
		t.Errorf("expected ErrCutAlreadyClosed, got %v", err)
	}

	// MarkEdited never reopens a closed cut.
	cut.MarkEdited()
	if cut.Status != CutStatusClosed {
		t.Errorf("status = %s, closed cut must stay closed", cut.Status)
	}
}

func TestNewCutFromFigures(t *testing.T) {
	figures := DayFigures{
		Date:   time.Date(2025, 8, 14, 16, 45, 0, 0, time.UTC),
		POS:    ChannelFigures{Efectivo: dec("100")},
		Abonos: ChannelFigures{Debito: dec("40")},
	}

	cut := NewCutFromFigures(figures, "25.50")

	if cut.IsManual {
		t.Error("derived cut must not be manual")
	}
	if cut.Status != CutStatusOpen {
		t.Errorf("status = %s, want open", cut.Status)
	}
	if !cut.CutDate.Equal(time.Date(2025, 8, 14, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("cut_date = %s, want midnight UTC", cut.CutDate)
	}
	if !cut.GrandTotal.Equal(dec("140")) {
		t.Errorf("grand_total = %s, want 140", cut.GrandTotal)
	}
	if !cut.FinalBalance.Equal(dec("114.50")) {
		t.Errorf("final_balance = %s, want 114.50", cut.FinalBalance)
	}
}

func TestChannelFigures_Total_MissingMixtoIsZero(t *testing.T) {
	// Zero-value Mixto behaves exactly like an absent bucket.
	f := ChannelFigures{Efectivo: dec("10"), Credito: dec("5")}

	if !f.Total().Equal(dec("15")) {
		t.Errorf("total = %s, want 15", f.Total())
	}
	if !f.Method(MethodMixto).Equal(decimal.Zero) {
		t.Errorf("mixto = %s, want 0", f.Method(MethodMixto))
	}
}
