package report

import (
	"math"
	"reflect"
	"testing"
	"time"

	"atelier/internal/models"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func income(amount int64, status models.EntryStatus, due time.Time, paid *time.Time) models.LedgerEntry {
	return models.LedgerEntry{Kind: models.EntryKindIncome, Amount: amount, Status: status, DueDate: due, PaymentDate: paid}
}

func expense(amount int64, status models.EntryStatus, due time.Time, paid *time.Time) models.LedgerEntry {
	return models.LedgerEntry{Kind: models.EntryKindExpense, Amount: amount, Status: status, DueDate: due, PaymentDate: paid}
}

func ptr(t time.Time) *time.Time { return &t }

func TestSummarize(t *testing.T) {
	t.Run("empty_input", func(t *testing.T) {
		got := Summarize(nil)
		if got != (Summary{}) {
			t.Errorf("expected zero summary, got %+v", got)
		}
	})

	t.Run("balance_and_realized_balance", func(t *testing.T) {
		entries := []models.LedgerEntry{
			income(100000, models.EntryStatusPaid, date(2024, time.January, 10), ptr(date(2024, time.January, 10))),
			expense(40000, models.EntryStatusPending, date(2024, time.January, 20), nil),
		}
		got := Summarize(entries)

		if got.Balance != 60000 {
			t.Errorf("expected balance 60000, got %d", got.Balance)
		}
		if got.RealizedBalance != 100000 {
			t.Errorf("expected realized balance 100000, got %d", got.RealizedBalance)
		}
		if got.PendingExpense != 40000 {
			t.Errorf("expected pending expense 40000, got %d", got.PendingExpense)
		}
		if got.PaidExpense != 0 {
			t.Errorf("expected paid expense 0, got %d", got.PaidExpense)
		}
	})

	t.Run("idempotent", func(t *testing.T) {
		entries := []models.LedgerEntry{
			income(1234, models.EntryStatusPaid, date(2024, time.March, 1), ptr(date(2024, time.March, 2))),
			expense(567, models.EntryStatusPaid, date(2024, time.March, 5), ptr(date(2024, time.March, 6))),
			expense(890, models.EntryStatusPending, date(2024, time.April, 1), nil),
		}
		first := Summarize(entries)
		second := Summarize(entries)
		if first != second {
			t.Errorf("summaries differ: %+v vs %+v", first, second)
		}
	})
}

func TestFilterPeriod(t *testing.T) {
	t.Run("paid_entries_use_payment_date", func(t *testing.T) {
		// Due in January, paid in February: belongs to a February window.
		e := income(5000, models.EntryStatusPaid, date(2024, time.January, 25), ptr(date(2024, time.February, 3)))

		jan := FilterPeriod([]models.LedgerEntry{e}, date(2024, time.January, 1), date(2024, time.January, 31))
		if len(jan) != 0 {
			t.Errorf("paid entry should not match its due month, got %d entries", len(jan))
		}

		feb := FilterPeriod([]models.LedgerEntry{e}, date(2024, time.February, 1), date(2024, time.February, 29))
		if len(feb) != 1 {
			t.Errorf("paid entry should match its payment month, got %d entries", len(feb))
		}
	})

	t.Run("pending_entries_use_due_date", func(t *testing.T) {
		e := expense(5000, models.EntryStatusPending, date(2024, time.January, 25), nil)
		jan := FilterPeriod([]models.LedgerEntry{e}, date(2024, time.January, 1), date(2024, time.January, 31))
		if len(jan) != 1 {
			t.Errorf("pending entry should match its due month, got %d entries", len(jan))
		}
	})

	t.Run("paid_without_payment_date_falls_back_to_due_date", func(t *testing.T) {
		e := income(5000, models.EntryStatusPaid, date(2024, time.January, 25), nil)
		jan := FilterPeriod([]models.LedgerEntry{e}, date(2024, time.January, 1), date(2024, time.January, 31))
		if len(jan) != 1 {
			t.Errorf("expected fallback to due date, got %d entries", len(jan))
		}
	})
}

func TestFilterRange(t *testing.T) {
	entries := []models.LedgerEntry{
		expense(1000, models.EntryStatusPending, date(2023, time.November, 15), nil),
		expense(2000, models.EntryStatusPending, date(2024, time.February, 15), nil),
	}

	t.Run("from_only", func(t *testing.T) {
		from := date(2024, time.January, 1)
		got := FilterRange(entries, &from, nil)
		if len(got) != 1 || got[0].Amount != 2000 {
			t.Errorf("expected only the 2024 entry, got %d entries", len(got))
		}
	})

	t.Run("to_only", func(t *testing.T) {
		to := date(2023, time.December, 31)
		got := FilterRange(entries, nil, &to)
		if len(got) != 1 || got[0].Amount != 1000 {
			t.Errorf("expected only the 2023 entry, got %d entries", len(got))
		}
	})

	t.Run("both_bounds_nil_keeps_everything", func(t *testing.T) {
		got := FilterRange(entries, nil, nil)
		if len(got) != 2 {
			t.Errorf("expected both entries, got %d", len(got))
		}
	})
}

func TestMonthlyBuckets(t *testing.T) {
	now := date(2024, time.June, 15)

	t.Run("empty_input", func(t *testing.T) {
		if got := MonthlyBuckets(nil, now); len(got) != 0 {
			t.Errorf("expected no buckets, got %v", got)
		}
	})

	t.Run("chronological_order_across_years", func(t *testing.T) {
		entries := []models.LedgerEntry{
			income(100, models.EntryStatusPaid, date(2024, time.February, 1), ptr(date(2024, time.February, 1))),
			income(100, models.EntryStatusPaid, date(2023, time.December, 1), ptr(date(2023, time.December, 1))),
			income(100, models.EntryStatusPaid, date(2024, time.January, 1), ptr(date(2024, time.January, 1))),
		}
		got := MonthlyBuckets(entries, now)

		var labels []string
		for _, b := range got {
			labels = append(labels, b.Label)
		}
		want := []string{"Dec 2023", "Jan 2024", "Feb 2024"}
		if !reflect.DeepEqual(labels, want) {
			t.Errorf("expected labels %v, got %v", want, labels)
		}
	})

	t.Run("pending_future_entries_excluded", func(t *testing.T) {
		entries := []models.LedgerEntry{
			expense(100, models.EntryStatusPending, date(2024, time.December, 1), nil), // future, pending
			expense(200, models.EntryStatusPending, date(2024, time.May, 1), nil),     // overdue
			income(300, models.EntryStatusPaid, date(2024, time.December, 1), ptr(date(2024, time.June, 1))),
		}
		got := MonthlyBuckets(entries, now)
		if len(got) != 2 {
			t.Fatalf("expected 2 buckets, got %d (%v)", len(got), got)
		}
		if got[0].Label != "May 2024" || got[0].Expense != 200 {
			t.Errorf("unexpected first bucket %+v", got[0])
		}
		// Paid entry lands in its payment month even with a future due date.
		if got[1].Label != "Jun 2024" || got[1].Income != 300 {
			t.Errorf("unexpected second bucket %+v", got[1])
		}
	})

	t.Run("balance_per_month", func(t *testing.T) {
		entries := []models.LedgerEntry{
			income(1000, models.EntryStatusPaid, date(2024, time.March, 5), ptr(date(2024, time.March, 5))),
			expense(400, models.EntryStatusPaid, date(2024, time.March, 20), ptr(date(2024, time.March, 20))),
		}
		got := MonthlyBuckets(entries, now)
		if len(got) != 1 {
			t.Fatalf("expected 1 bucket, got %d", len(got))
		}
		if got[0].Balance != 600 {
			t.Errorf("expected balance 600, got %d", got[0].Balance)
		}
	})
}

func TestCategoryBreakdown(t *testing.T) {
	cat := func(name string) *models.Category {
		return &models.Category{Name: name}
	}

	t.Run("empty_input", func(t *testing.T) {
		if got := CategoryBreakdown(nil, models.EntryKindExpense); len(got) != 0 {
			t.Errorf("expected no buckets, got %v", got)
		}
	})

	t.Run("percentages_sum_to_100", func(t *testing.T) {
		entries := []models.LedgerEntry{
			{Kind: models.EntryKindExpense, Amount: 300, Category: cat("Rent"), DueDate: date(2024, time.January, 1)},
			{Kind: models.EntryKindExpense, Amount: 200, Category: cat("Software"), DueDate: date(2024, time.January, 1)},
			{Kind: models.EntryKindExpense, Amount: 100, Category: cat("Software"), DueDate: date(2024, time.January, 1)},
			{Kind: models.EntryKindExpense, Amount: 100, Category: nil, DueDate: date(2024, time.January, 1)},
		}
		got := CategoryBreakdown(entries, models.EntryKindExpense)
		if len(got) != 3 {
			t.Fatalf("expected 3 buckets, got %d", len(got))
		}

		var sum float64
		for _, b := range got {
			sum += b.Percentage
		}
		if math.Abs(sum-100) > 1e-9 {
			t.Errorf("percentages sum to %f, expected 100", sum)
		}

		// Sorted by total descending: Rent 300, Software 300 — tie broken
		// by name; uncategorized falls back to the display literal.
		if got[len(got)-1].Name != "Outros" {
			t.Errorf("expected fallback bucket last, got %+v", got)
		}
	})

	t.Run("filters_by_kind", func(t *testing.T) {
		entries := []models.LedgerEntry{
			{Kind: models.EntryKindIncome, Amount: 500, Category: cat("Branding"), DueDate: date(2024, time.January, 1)},
			{Kind: models.EntryKindExpense, Amount: 300, Category: cat("Rent"), DueDate: date(2024, time.January, 1)},
		}
		got := CategoryBreakdown(entries, models.EntryKindIncome)
		if len(got) != 1 || got[0].Name != "Branding" {
			t.Fatalf("expected only income categories, got %v", got)
		}
		if got[0].Count != 1 || got[0].Total != 500 {
			t.Errorf("unexpected bucket %+v", got[0])
		}
		if got[0].Percentage != 100 {
			t.Errorf("expected 100%%, got %f", got[0].Percentage)
		}
	})
}
