package gateway

import (
	"context"
	"net/http"

	"github.com/tripnest/travel-client/internal/core/domain"
	"github.com/tripnest/travel-client/internal/core/ports"
)

const resourceExpenses = "expenses"

func (c *Client) ListExpenses(ctx context.Context, f ports.ExpenseFilter) ([]domain.Expense, error) {
	var expenses []domain.Expense
	err := c.do(ctx, call{
		resource: resourceExpenses,
		op:       "list expenses",
		fallback: "Failed to fetch expenses",
		method:   http.MethodGet,
		path:     "/expenses",
		query:    queryOf("userId", f.UserID.String(), "tripId", f.TripID.String()),
	}, &expenses)
	return expenses, err
}

func (c *Client) ListAllExpenses(ctx context.Context) ([]domain.Expense, error) {
	var expenses []domain.Expense
	err := c.do(ctx, call{
		resource: resourceExpenses,
		op:       "list all expenses",
		fallback: "Failed to fetch all expenses",
		method:   http.MethodGet,
		path:     "/admin/expenses",
	}, &expenses)
	return expenses, err
}

func (c *Client) GetExpense(ctx context.Context, id domain.ID) (*domain.Expense, error) {
	if err := requireID(id); err != nil {
		return nil, err
	}
	var e domain.Expense
	err := c.do(ctx, call{
		resource: resourceExpenses,
		op:       "get expense",
		fallback: "Failed to fetch expense",
		method:   http.MethodGet,
		path:     itemPath("expenses", id),
	}, &e)
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (c *Client) CreateExpense(ctx context.Context, e domain.Expense) (*domain.Expense, error) {
	created := e
	err := c.do(ctx, call{
		resource: resourceExpenses,
		op:       "create expense",
		fallback: "Failed to create expense",
		method:   http.MethodPost,
		path:     "/expenses",
		body:     e,
	}, &created)
	if err != nil {
		return nil, err
	}
	return &created, nil
}

func (c *Client) UpdateExpense(ctx context.Context, e domain.Expense) (*domain.Expense, error) {
	if err := requireID(e.ID); err != nil {
		return nil, err
	}
	updated := e
	err := c.do(ctx, call{
		resource: resourceExpenses,
		op:       "update expense",
		fallback: "Failed to update expense",
		method:   http.MethodPut,
		path:     itemPath("expenses", e.ID),
		body:     e,
	}, &updated)
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

func (c *Client) DeleteExpense(ctx context.Context, id domain.ID) error {
	if err := requireID(id); err != nil {
		return err
	}
	return c.do(ctx, call{
		resource: resourceExpenses,
		op:       "delete expense",
		fallback: "Failed to delete expense",
		method:   http.MethodDelete,
		path:     itemPath("expenses", id),
	}, nil)
}
