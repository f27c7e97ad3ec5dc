package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/tripnest/travel-client/internal/core/aggregate"
	"github.com/tripnest/travel-client/internal/core/domain"
	"github.com/tripnest/travel-client/internal/core/ports"
	"github.com/tripnest/travel-client/internal/core/validation"
)

type expenseService struct {
	gw ports.ExpenseGateway
	lifecycle
}

func NewExpenseService(gw ports.ExpenseGateway, guard ports.ActionGuard, activity ports.ActivityRecorder, log zerolog.Logger) ports.ExpenseService {
	return &expenseService{gw: gw, lifecycle: newLifecycle(guard, activity, log)}
}

func (s *expenseService) List(ctx context.Context, userID domain.ID, tripID *domain.ID) ([]domain.Expense, error) {
	if userID == "" {
		return nil, domain.NewValidationError("userId", "userId is required")
	}
	filter := ports.ExpenseFilter{UserID: userID}
	if tripID != nil {
		filter.TripID = *tripID
	}
	expenses, err := s.gw.ListExpenses(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list expenses: %w", err)
	}
	return expenses, nil
}

func (s *expenseService) Create(ctx context.Context, in ports.ExpenseInput) (*domain.Expense, error) {
	if err := validation.Struct(in); err != nil {
		return nil, err
	}

	e := s.fromInput(in)
	var created *domain.Expense
	err := s.guarded(ctx, "expense:create:"+in.UserID.String(), func() error {
		var err error
		created, err = s.gw.CreateExpense(ctx, e)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("create expense: %w", err)
	}

	s.record(ctx, domain.Activity{Kind: domain.ActivityExpenseCreated, UserID: created.UserID, SubjectID: created.ID})
	s.log.Info().Str("expense_id", created.ID.String()).Str("category", created.Category).Msg("expense created")
	return created, nil
}

func (s *expenseService) Update(ctx context.Context, actor domain.Identity, id domain.ID, in ports.ExpenseInput) (*domain.Expense, error) {
	if id == "" {
		return nil, domain.NewValidationError("id", "id is required")
	}
	if err := validation.Struct(in); err != nil {
		return nil, err
	}

	existing, err := s.gw.GetExpense(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("update expense %s: %w", id, err)
	}
	if !canModify(actor, existing.UserID) {
		return nil, domain.ErrForbidden
	}

	e := s.fromInput(in)
	e.ID = id
	e.UserID = existing.UserID

	var updated *domain.Expense
	err = s.guarded(ctx, "expense:update:"+id.String(), func() error {
		var err error
		updated, err = s.gw.UpdateExpense(ctx, e)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("update expense %s: %w", id, err)
	}

	s.record(ctx, domain.Activity{Kind: domain.ActivityExpenseUpdated, UserID: actor.ID, SubjectID: id})
	return updated, nil
}

func (s *expenseService) Delete(ctx context.Context, actor domain.Identity, id domain.ID) error {
	if id == "" {
		return domain.NewValidationError("id", "id is required")
	}
	existing, err := s.gw.GetExpense(ctx, id)
	if err != nil {
		return fmt.Errorf("delete expense %s: %w", id, err)
	}
	if !canModify(actor, existing.UserID) {
		return domain.ErrForbidden
	}

	err = s.guarded(ctx, "expense:delete:"+id.String(), func() error {
		return s.gw.DeleteExpense(ctx, id)
	})
	if err != nil {
		return fmt.Errorf("delete expense %s: %w", id, err)
	}

	s.record(ctx, domain.Activity{Kind: domain.ActivityExpenseDeleted, UserID: actor.ID, SubjectID: id})
	return nil
}

// TripTotal sums the user's expenses scoped to tripID.
func (s *expenseService) TripTotal(ctx context.Context, userID, tripID domain.ID) (decimal.Decimal, error) {
	if tripID == "" {
		return decimal.Zero, domain.NewValidationError("tripId", "tripId is required")
	}
	expenses, err := s.List(ctx, userID, nil)
	if err != nil {
		return decimal.Zero, err
	}
	return aggregate.TripExpenseTotal(expenses, tripID), nil
}

func (s *expenseService) fromInput(in ports.ExpenseInput) domain.Expense {
	date := in.Date
	if date.IsZero() {
		date = s.today()
	}
	return domain.Expense{
		UserID:      in.UserID,
		TripID:      in.TripID,
		Date:        date,
		Category:    in.Category,
		Amount:      in.Amount,
		Description: in.Description,
		ReceiptURL:  in.ReceiptURL,
	}
}
