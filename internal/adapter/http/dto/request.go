package dto

import (
	"time"

	"github.com/gymops/cashcut/internal/domain"
	"github.com/gymops/cashcut/internal/usecase"
)

// ChannelFiguresPayload carries one channel's raw figures. Fields are
// untyped on purpose: operators and upstream systems send numbers,
// numeric strings, or nothing at all, and every variant normalizes to a
// safe figure instead of failing the request.
type ChannelFiguresPayload struct {
	Efectivo      any `json:"efectivo"`
	Transferencia any `json:"transferencia"`
	Debito        any `json:"debito"`
	Credito       any `json:"credito"`
	Mixto         any `json:"mixto"`
	Transactions  any `json:"transactions"`
	Commissions   any `json:"commissions"`
}

// ToDomain normalizes the payload into channel figures.
func (p *ChannelFiguresPayload) ToDomain() domain.ChannelFigures {
	if p == nil {
		return domain.ChannelFigures{}
	}
	return domain.ChannelFigures{
		Efectivo:      domain.NormalizeAmount(p.Efectivo),
		Transferencia: domain.NormalizeAmount(p.Transferencia),
		Debito:        domain.NormalizeAmount(p.Debito),
		Credito:       domain.NormalizeAmount(p.Credito),
		Mixto:         domain.NormalizeAmount(p.Mixto),
		Transactions:  domain.NormalizeCount(p.Transactions),
		Commissions:   domain.NormalizeAmount(p.Commissions),
	}
}

// CreateCutRequest represents a request to create a cut. With manual set,
// the figures come from the body; otherwise they are fetched for the date.
type CreateCutRequest struct {
	Date           string                 `json:"date"` // YYYY-MM-DD
	Manual         bool                   `json:"manual"`
	POS            *ChannelFiguresPayload `json:"pos,omitempty"`
	Abonos         *ChannelFiguresPayload `json:"abonos,omitempty"`
	Membership     *ChannelFiguresPayload `json:"membership,omitempty"`
	ExpensesAmount any                    `json:"expenses_amount,omitempty"`
	Notes          string                 `json:"notes,omitempty"`
}

// ParseDate parses the request's calendar day.
func (r *CreateCutRequest) ParseDate() (time.Time, error) {
	return time.ParseInLocation("2006-01-02", r.Date, time.UTC)
}

// ToManualInput converts to a manual-creation use case input.
func (r *CreateCutRequest) ToManualInput(date time.Time, createdBy, creatorName string) usecase.CreateManualCutInput {
	return usecase.CreateManualCutInput{
		Date:           date,
		POS:            r.POS.ToDomain(),
		Abonos:         r.Abonos.ToDomain(),
		Membership:     r.Membership.ToDomain(),
		ExpensesAmount: domain.NormalizeAmount(r.ExpensesAmount),
		CreatedBy:      createdBy,
		CreatorName:    creatorName,
		Notes:          r.Notes,
	}
}

// UpdateCutRequest represents a partial edit of a cut. Absent channels
// keep their stored figures; present channels replace them wholesale.
type UpdateCutRequest struct {
	POS            *ChannelFiguresPayload `json:"pos,omitempty"`
	Abonos         *ChannelFiguresPayload `json:"abonos,omitempty"`
	Membership     *ChannelFiguresPayload `json:"membership,omitempty"`
	ExpensesAmount any                    `json:"expenses_amount,omitempty"`
	Notes          *string                `json:"notes,omitempty"`
}

// ToUseCaseInput converts to a use case input.
func (r *UpdateCutRequest) ToUseCaseInput(id, updatedBy string) usecase.UpdateCutInput {
	input := usecase.UpdateCutInput{
		ID:        id,
		Notes:     r.Notes,
		UpdatedBy: updatedBy,
	}

	if r.POS != nil {
		figures := r.POS.ToDomain()
		input.POS = &figures
	}
	if r.Abonos != nil {
		figures := r.Abonos.ToDomain()
		input.Abonos = &figures
	}
	if r.Membership != nil {
		figures := r.Membership.ToDomain()
		input.Membership = &figures
	}
	if r.ExpensesAmount != nil {
		amount := domain.NormalizeAmount(r.ExpensesAmount)
		input.ExpensesAmount = &amount
	}

	return input
}

// LoginRequest represents a login request.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// CreateUserRequest represents a request to create a user.
type CreateUserRequest struct {
	Email    string `json:"email"`
	Name     string `json:"name"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// ToUseCaseInput converts to a use case input.
func (r *CreateUserRequest) ToUseCaseInput() usecase.CreateUserInput {
	return usecase.CreateUserInput{
		Email:    r.Email,
		Name:     r.Name,
		Password: r.Password,
		Role:     domain.Role(r.Role),
	}
}

// UpdateUserRequest represents a request to update a user.
type UpdateUserRequest struct {
	Name     *string `json:"name,omitempty"`
	Role     *string `json:"role,omitempty"`
	Active   *bool   `json:"active,omitempty"`
	Password *string `json:"password,omitempty"`
}

// ToUseCaseInput converts to a use case input.
func (r *UpdateUserRequest) ToUseCaseInput(id string) usecase.UpdateUserInput {
	input := usecase.UpdateUserInput{
		ID:       id,
		Name:     r.Name,
		Active:   r.Active,
		Password: r.Password,
	}
	if r.Role != nil {
		role := domain.Role(*r.Role)
		input.Role = &role
	}
	return input
}
