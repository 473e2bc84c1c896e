package dto

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
)

func TestChannelFiguresPayload_ToDomain(t *testing.T) {
	tests := []struct {
		name         string
		payload      *ChannelFiguresPayload
		wantEfectivo string
		wantTxns     int
	}{
		{
			name:         "nil payload yields zero figures",
			payload:      nil,
			wantEfectivo: "0",
		},
		{
			name: "numeric values pass through",
			payload: &ChannelFiguresPayload{
				Efectivo:     1200.5,
				Transactions: 7,
			},
			wantEfectivo: "1200.5",
			wantTxns:     7,
		},
		{
			name: "numeric strings are parsed",
			payload: &ChannelFiguresPayload{
				Efectivo:     "850.25",
				Transactions: "3",
			},
			wantEfectivo: "850.25",
			wantTxns:     3,
		},
		{
			name: "garbage degrades to zero",
			payload: &ChannelFiguresPayload{
				Efectivo:     "not-a-number",
				Transactions: []int{1, 2},
			},
			wantEfectivo: "0",
		},
		{
			name: "negative amounts are preserved",
			payload: &ChannelFiguresPayload{
				Efectivo: "-45.50",
			},
			wantEfectivo: "-45.5",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.payload.ToDomain()
			if got.Efectivo.String() != tt.wantEfectivo {
				t.Fatalf("Efectivo = %s, want %s", got.Efectivo, tt.wantEfectivo)
			}
			if got.Transactions != tt.wantTxns {
				t.Fatalf("Transactions = %d, want %d", got.Transactions, tt.wantTxns)
			}
		})
	}
}

func TestCreateCutRequest_ParseDate(t *testing.T) {
	req := &CreateCutRequest{Date: "2025-03-10"}

	date, err := req.ParseDate()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if date.Year() != 2025 || date.Month() != 3 || date.Day() != 10 {
		t.Fatalf("unexpected date %s", date)
	}

	req = &CreateCutRequest{Date: "10-03-2025"}
	if _, err := req.ParseDate(); err == nil {
		t.Fatal("expected error for non-ISO date")
	}
}

func TestCreateCutRequest_ToManualInput(t *testing.T) {
	var req CreateCutRequest
	raw := `{
		"date": "2025-03-10",
		"manual": true,
		"pos": {"efectivo": 500, "credito": "120.50", "transactions": 4},
		"expenses_amount": "75.25",
		"notes": "till counted twice"
	}`
	if err := json.Unmarshal([]byte(raw), &req); err != nil {
		t.Fatalf("failed to unmarshal: %v", err)
	}

	date, err := req.ParseDate()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	input := req.ToManualInput(date, "user-1", "Ana")

	if !input.POS.Efectivo.Equal(decimal.NewFromInt(500)) {
		t.Fatalf("expected efectivo 500, got %s", input.POS.Efectivo)
	}
	if !input.POS.Credito.Equal(decimal.RequireFromString("120.50")) {
		t.Fatalf("expected credito 120.50, got %s", input.POS.Credito)
	}
	if input.POS.Transactions != 4 {
		t.Fatalf("expected 4 transactions, got %d", input.POS.Transactions)
	}
	if !input.Abonos.Efectivo.IsZero() {
		t.Fatal("absent channel must normalize to zero")
	}
	if !input.ExpensesAmount.Equal(decimal.RequireFromString("75.25")) {
		t.Fatalf("expected expenses 75.25, got %s", input.ExpensesAmount)
	}
	if input.CreatedBy != "user-1" || input.CreatorName != "Ana" {
		t.Fatalf("unexpected actor: %s / %s", input.CreatedBy, input.CreatorName)
	}
	if input.Notes != "till counted twice" {
		t.Fatalf("unexpected notes %q", input.Notes)
	}
}

func TestUpdateCutRequest_ToUseCaseInput(t *testing.T) {
	notes := "recount"
	req := &UpdateCutRequest{
		POS:            &ChannelFiguresPayload{Efectivo: 300},
		ExpensesAmount: "50",
		Notes:          &notes,
	}

	input := req.ToUseCaseInput("cut-1", "user-1")

	if input.ID != "cut-1" || input.UpdatedBy != "user-1" {
		t.Fatalf("unexpected identity: %+v", input)
	}
	if input.POS == nil || !input.POS.Efectivo.Equal(decimal.NewFromInt(300)) {
		t.Fatalf("expected pos efectivo 300, got %+v", input.POS)
	}
	if input.Abonos != nil || input.Membership != nil {
		t.Fatal("absent channels must stay nil")
	}
	if input.ExpensesAmount == nil || !input.ExpensesAmount.Equal(decimal.NewFromInt(50)) {
		t.Fatalf("expected expenses 50, got %+v", input.ExpensesAmount)
	}
	if input.Notes == nil || *input.Notes != "recount" {
		t.Fatalf("unexpected notes: %+v", input.Notes)
	}
}

func TestUpdateCutRequest_EmptyLeavesEverythingNil(t *testing.T) {
	req := &UpdateCutRequest{}

	input := req.ToUseCaseInput("cut-1", "user-1")

	if input.POS != nil || input.Abonos != nil || input.Membership != nil {
		t.Fatalf("expected nil channels, got %+v", input)
	}
	if input.ExpensesAmount != nil || input.Notes != nil {
		t.Fatalf("expected nil expenses and notes, got %+v", input)
	}
}

func TestCreateUserRequest_ToUseCaseInput(t *testing.T) {
	req := &CreateUserRequest{
		Email:    "ana@example.com",
		Name:     "Ana",
		Password: "Secret123",
		Role:     "operator",
	}

	input := req.ToUseCaseInput()
	if input.Email != "ana@example.com" || string(input.Role) != "operator" {
		t.Fatalf("unexpected input: %+v", input)
	}
}
