// Package recurrence expands a monthly recurring obligation into the
// concrete due dates of the ledger entries it generates.
package recurrence

import "time"

// openEndedCap bounds open-ended obligations to one year of generated dates.
const openEndedCap = 12

// Expand returns the ordered due dates for an obligation that starts at
// start, is due on dueDay of each month, and runs until end when set.
// One candidate is built per calendar month; a candidate is emitted when
// it falls on or after start and, when end is set, on or before end.
//
// dueDay values that do not exist in a short month are not clamped:
// time.Date normalizes them into the following month (Feb 31 becomes
// Mar 2 or 3). Callers treat that as a known quirk of the schedule.
func Expand(start time.Time, end *time.Time, dueDay int) []time.Time {
	startDay := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, time.UTC)

	var dates []time.Time
	year, month := startDay.Year(), startDay.Month()
	for {
		if end != nil {
			monthStart := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
			if monthStart.After(*end) {
				break
			}
		}

		candidate := time.Date(year, month, dueDay, 0, 0, 0, 0, time.UTC)
		if !candidate.Before(startDay) && (end == nil || !candidate.After(*end)) {
			dates = append(dates, candidate)
		}

		if end == nil && len(dates) >= openEndedCap {
			break
		}

		month++
		if month > time.December {
			month = time.January
			year++
		}
	}
	return dates
}
