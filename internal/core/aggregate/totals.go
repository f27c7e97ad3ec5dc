package aggregate

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/tripnest/travel-client/internal/core/domain"
)

// TotalOf sums amountOf over records; missing amounts count as zero.
func TotalOf[T any](records []T, amountOf func(T) decimal.NullDecimal) decimal.Decimal {
	total := decimal.Zero
	for _, r := range records {
		if a := amountOf(r); a.Valid {
			total = total.Add(a.Decimal)
		}
	}
	return total
}

// BookingTotal sums every booking amount, cancelled ones included.
func BookingTotal(bookings []domain.Booking) decimal.Decimal {
	return TotalOf(bookings, bookingAmount)
}

// ExpenseTotal sums every expense amount.
func ExpenseTotal(expenses []domain.Expense) decimal.Decimal {
	return TotalOf(expenses, expenseAmount)
}

// MonthTotal sums the expenses dated in the calendar month of now.
func MonthTotal(expenses []domain.Expense, now time.Time) decimal.Decimal {
	total := decimal.Zero
	for _, e := range expenses {
		if e.Date.Year() == now.Year() && e.Date.Month() == now.Month() && e.Amount.Valid {
			total = total.Add(e.Amount.Decimal)
		}
	}
	return total
}

// TripExpenseTotal sums only the expenses scoped to tripID.
func TripExpenseTotal(expenses []domain.Expense, tripID domain.ID) decimal.Decimal {
	total := decimal.Zero
	for _, e := range expenses {
		if domain.SameID(e.TripID, tripID) && e.Amount.Valid {
			total = total.Add(e.Amount.Decimal)
		}
	}
	return total
}
