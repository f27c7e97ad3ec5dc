package ports

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/tripnest/travel-client/internal/core/domain"
)

// ExpenseInput is the expense form. A zero Date defaults to today and a nil
// TripID records a general expense.
type ExpenseInput struct {
	UserID      domain.ID           `json:"userId" validate:"required"`
	TripID      *domain.ID          `json:"tripId"`
	Date        domain.Date         `json:"date"`
	Category    string              `json:"category" validate:"required"`
	Amount      decimal.NullDecimal `json:"amount" validate:"required,gt=0"`
	Description string              `json:"description" validate:"required"`
	ReceiptURL  string              `json:"receiptUrl" validate:"omitempty,url"`
}

// ExpenseService defines the expense tracking use cases.
type ExpenseService interface {
	List(ctx context.Context, userID domain.ID, tripID *domain.ID) ([]domain.Expense, error)
	Create(ctx context.Context, in ExpenseInput) (*domain.Expense, error)
	Update(ctx context.Context, actor domain.Identity, id domain.ID, in ExpenseInput) (*domain.Expense, error)
	Delete(ctx context.Context, actor domain.Identity, id domain.ID) error
	TripTotal(ctx context.Context, userID, tripID domain.ID) (decimal.Decimal, error)
}
