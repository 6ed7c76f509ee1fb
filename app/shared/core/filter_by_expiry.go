package core

import "time"

// FilterByExpiry returns the items matching the filter, keeping their order.
// Dates are compared without the time of day, both sides in UTC.
func FilterByExpiry(items []ToDoItem, filter DateFilter, now time.Time) []ToDoItem {
	result := make([]ToDoItem, 0, len(items))

	if filter == None {
		return append(result, items...)
	}

	today := dateOnly(now)
	from, until := today, today

	switch filter {
	case Tomorrow:
		from = today.AddDate(0, 0, 1)
		until = from
	case ThisWeek:
		until = today.AddDate(0, 0, 7)
	case ThisMonth:
		until = addMonthsClamped(today, 1)
	}

	for _, item := range items {
		due := dateOnly(item.TimeOfExpiry)
		if !due.Before(from) && !due.After(until) {
			result = append(result, item)
		}
	}

	return result
}

func dateOnly(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// addMonthsClamped adds calendar months and clamps to the last day of the target month,
// so January 31st plus one month is the last day of February instead of early March.
func addMonthsClamped(day time.Time, months int) time.Time {
	y, m, d := day.Date()
	firstOfTarget := time.Date(y, m+time.Month(months), 1, 0, 0, 0, 0, time.UTC)
	lastDay := firstOfTarget.AddDate(0, 1, -1).Day()

	if d > lastDay {
		d = lastDay
	}

	return time.Date(firstOfTarget.Year(), firstOfTarget.Month(), d, 0, 0, 0, 0, time.UTC)
}
