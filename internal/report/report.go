// Package report computes financial summaries over ledger entries: period
// totals, monthly buckets for charts, and per-category breakdowns. All
// functions are pure, single-pass reductions over an in-memory slice;
// amounts stay in integer cents until formatting.
package report

import (
	"sort"
	"time"

	"atelier/internal/models"
)

// fallbackCategory labels entries whose category is missing or was deleted.
const fallbackCategory = "Outros"

// Summary holds period totals split by kind and payment status.
type Summary struct {
	TotalIncome     int64 `json:"total_income"`
	TotalExpense    int64 `json:"total_expense"`
	PaidIncome      int64 `json:"paid_income"`
	PaidExpense     int64 `json:"paid_expense"`
	PendingIncome   int64 `json:"pending_income"`
	PendingExpense  int64 `json:"pending_expense"`
	Balance         int64 `json:"balance"`
	RealizedBalance int64 `json:"realized_balance"`
}

// MonthBucket accumulates income and expense for one calendar month.
type MonthBucket struct {
	Year    int        `json:"year"`
	Month   time.Month `json:"month"`
	Label   string     `json:"label"`
	Income  int64      `json:"income"`
	Expense int64      `json:"expense"`
	Balance int64      `json:"balance"`
}

// CategoryBucket accumulates one category's share of a kind's total.
type CategoryBucket struct {
	Name       string  `json:"name"`
	Total      int64   `json:"total"`
	Count      int     `json:"count"`
	Percentage float64 `json:"percentage"`
}

// FilterRange keeps entries whose effective date falls on or after from
// and on or before to; a nil bound leaves that side open. Paid entries
// are bucketed by payment date, pending ones by due date, so a bill paid
// late counts in the month it was actually settled.
func FilterRange(entries []models.LedgerEntry, from, to *time.Time) []models.LedgerEntry {
	var out []models.LedgerEntry
	for _, e := range entries {
		d := e.EffectiveDate()
		if from != nil && d.Before(*from) {
			continue
		}
		if to != nil && d.After(*to) {
			continue
		}
		out = append(out, e)
	}
	return out
}

// FilterPeriod keeps entries whose effective date falls within [from, to].
func FilterPeriod(entries []models.LedgerEntry, from, to time.Time) []models.LedgerEntry {
	return FilterRange(entries, &from, &to)
}

// Summarize reduces entries into period totals. Balance is income minus
// expense regardless of status; RealizedBalance counts only paid entries.
func Summarize(entries []models.LedgerEntry) Summary {
	var s Summary
	for _, e := range entries {
		paid := e.Status == models.EntryStatusPaid
		switch e.Kind {
		case models.EntryKindIncome:
			s.TotalIncome += e.Amount
			if paid {
				s.PaidIncome += e.Amount
			} else {
				s.PendingIncome += e.Amount
			}
		case models.EntryKindExpense:
			s.TotalExpense += e.Amount
			if paid {
				s.PaidExpense += e.Amount
			} else {
				s.PendingExpense += e.Amount
			}
		}
	}
	s.Balance = s.TotalIncome - s.TotalExpense
	s.RealizedBalance = s.PaidIncome - s.PaidExpense
	return s
}

type monthKey struct {
	year  int
	month time.Month
}

// MonthlyBuckets groups entries into chronologically ordered month buckets
// keyed by effective date. Pending entries due after now are left out, so
// the historical chart shows only settled or overdue amounts; buckets are
// sorted by real (year, month), never by label text.
func MonthlyBuckets(entries []models.LedgerEntry, now time.Time) []MonthBucket {
	buckets := make(map[monthKey]*MonthBucket)
	for _, e := range entries {
		if e.Status != models.EntryStatusPaid && e.DueDate.After(now) {
			continue
		}
		d := e.EffectiveDate()
		key := monthKey{year: d.Year(), month: d.Month()}
		b, ok := buckets[key]
		if !ok {
			b = &MonthBucket{
				Year:  key.year,
				Month: key.month,
				Label: time.Date(key.year, key.month, 1, 0, 0, 0, 0, time.UTC).Format("Jan 2006"),
			}
			buckets[key] = b
		}
		switch e.Kind {
		case models.EntryKindIncome:
			b.Income += e.Amount
		case models.EntryKindExpense:
			b.Expense += e.Amount
		}
	}

	out := make([]MonthBucket, 0, len(buckets))
	for _, b := range buckets {
		b.Balance = b.Income - b.Expense
		out = append(out, *b)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Year != out[j].Year {
			return out[i].Year < out[j].Year
		}
		return out[i].Month < out[j].Month
	})
	return out
}

// CategoryBreakdown groups entries of one kind by category display name.
// Each bucket carries its share of the grand total as a percentage; when
// the grand total is zero every percentage is zero.
func CategoryBreakdown(entries []models.LedgerEntry, kind models.EntryKind) []CategoryBucket {
	totals := make(map[string]*CategoryBucket)
	var grand int64
	for _, e := range entries {
		if e.Kind != kind {
			continue
		}
		name := fallbackCategory
		if e.Category != nil && e.Category.Name != "" {
			name = e.Category.Name
		}
		b, ok := totals[name]
		if !ok {
			b = &CategoryBucket{Name: name}
			totals[name] = b
		}
		b.Total += e.Amount
		b.Count++
		grand += e.Amount
	}

	out := make([]CategoryBucket, 0, len(totals))
	for _, b := range totals {
		if grand > 0 {
			b.Percentage = float64(b.Total) / float64(grand) * 100
		}
		out = append(out, *b)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Total != out[j].Total {
			return out[i].Total > out[j].Total
		}
		return out[i].Name < out[j].Name
	})
	return out
}
