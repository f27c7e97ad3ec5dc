package aggregate

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/tripnest/travel-client/internal/core/domain"
)

const (
	labelLayout = "Jan 06"

	BookingSpendMonths = 12
	ExpenseMonths      = 6
)

// Series is a month-bucketed chart series. Labels and Values have equal length,
// oldest month first.
type Series struct {
	Labels []string          `json:"labels"`
	Values []decimal.Decimal `json:"values"`
}

type monthKey struct {
	year  int
	month time.Month
}

// MonthBucketedSum sums amountOf by the calendar month of dateOf over the trailing
// monthsBack months ending with the month of now. Months without records are
// zero. Records with a zero date or a missing amount are ignored.
func MonthBucketedSum[T any](records []T, monthsBack int, now time.Time, dateOf func(T) domain.Date, amountOf func(T) decimal.NullDecimal) Series {
	if monthsBack <= 0 {
		return Series{Labels: []string{}, Values: []decimal.Decimal{}}
	}

	sums := make(map[monthKey]decimal.Decimal)
	for _, r := range records {
		d := dateOf(r)
		amount := amountOf(r)
		if d.IsZero() || !amount.Valid {
			continue
		}
		k := monthKey{d.Year(), d.Month()}
		sums[k] = sums[k].Add(amount.Decimal)
	}

	first := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	s := Series{
		Labels: make([]string, 0, monthsBack),
		Values: make([]decimal.Decimal, 0, monthsBack),
	}
	for i := monthsBack - 1; i >= 0; i-- {
		m := first.AddDate(0, -i, 0)
		s.Labels = append(s.Labels, m.Format(labelLayout))
		if v, ok := sums[monthKey{m.Year(), m.Month()}]; ok {
			s.Values = append(s.Values, v)
		} else {
			s.Values = append(s.Values, decimal.Zero)
		}
	}
	return s
}

// BookingSpendSeries is the 12-month series of non-cancelled booking amounts.
func BookingSpendSeries(bookings []domain.Booking, now time.Time) Series {
	active := make([]domain.Booking, 0, len(bookings))
	for _, b := range bookings {
		if b.Status != domain.BookingCancelled {
			active = append(active, b)
		}
	}
	return MonthBucketedSum(active, BookingSpendMonths, now, bookingDate, bookingAmount)
}

// ExpenseSeries is the 6-month series of expense amounts.
func ExpenseSeries(expenses []domain.Expense, now time.Time) Series {
	return MonthBucketedSum(expenses, ExpenseMonths, now, expenseDate, expenseAmount)
}

func bookingDate(b domain.Booking) domain.Date { return b.Date }
func bookingAmount(b domain.Booking) decimal.NullDecimal { return b.Amount }
func expenseDate(e domain.Expense) domain.Date { return e.Date }
func expenseAmount(e domain.Expense) decimal.NullDecimal { return e.Amount }
