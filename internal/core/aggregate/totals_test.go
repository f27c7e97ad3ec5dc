package aggregate

import (
	"slices"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/tripnest/travel-client/internal/core/domain"
)

func TestTotalOf_Empty(t *testing.T) {
	assert.True(t, TotalOf([]domain.Expense{}, expenseAmount).IsZero())
	assert.True(t, TotalOf[domain.Expense](nil, expenseAmount).IsZero())
}

func TestTotalOf_IgnoresMissingAmounts(t *testing.T) {
	expenses := []domain.Expense{
		{Amount: amount(10)},
		{},
		{Amount: domain.Money(decimal.RequireFromString("2.5"))},
	}

	assert.Equal(t, "12.5", TotalOf(expenses, expenseAmount).String())
}

func TestTotalOf_OrderInvariant(t *testing.T) {
	bookings := []domain.Booking{
		{ID: "1", Amount: amount(17000)},
		{ID: "2", Amount: domain.Money(decimal.RequireFromString("0.1"))},
		{ID: "3"},
		{ID: "4", Amount: domain.Money(decimal.RequireFromString("0.2"))},
	}
	want := BookingTotal(bookings)

	reversed := slices.Clone(bookings)
	slices.Reverse(reversed)
	rotated := append(slices.Clone(bookings[2:]), bookings[:2]...)

	assert.True(t, want.Equal(BookingTotal(reversed)))
	assert.True(t, want.Equal(BookingTotal(rotated)))
	assert.Equal(t, "17000.3", want.String())
}

func TestMonthTotal(t *testing.T) {
	expenses := []domain.Expense{
		{Date: domain.MustDate("2024-03-01"), Amount: amount(20)},
		{Date: domain.MustDate("2024-03-20"), Amount: amount(5)},
		{Date: domain.MustDate("2023-03-20"), Amount: amount(1000)},
		{Date: domain.MustDate("2024-02-29"), Amount: amount(1000)},
	}

	assert.Equal(t, "25", MonthTotal(expenses, now).String())
}

func TestTripExpenseTotal(t *testing.T) {
	tripA := domain.ID("a")
	tripB := domain.ID("b")
	expenses := []domain.Expense{
		{TripID: &tripA, Amount: amount(10)},
		{TripID: &tripB, Amount: amount(20)},
		{Amount: amount(40)},
		{TripID: &tripA, Amount: amount(5)},
	}

	assert.Equal(t, "15", TripExpenseTotal(expenses, "a").String())
	assert.True(t, TripExpenseTotal(expenses, "missing").IsZero())
}

func TestStatusCounts(t *testing.T) {
	bookings := []domain.Booking{
		{Status: domain.BookingPending},
		{Status: domain.BookingPending},
		{Status: domain.BookingConfirmed},
		{Status: domain.BookingCancelled},
		{Status: domain.BookingCompleted},
		{Status: domain.BookingStatus("planning")},
	}

	assert.Equal(t, Counts{Total: 6, Pending: 2, Confirmed: 1, Cancelled: 1}, StatusCounts(bookings))
}
