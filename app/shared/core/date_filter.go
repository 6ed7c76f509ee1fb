package core

import (
	"errors"
	"strconv"
	"strings"
)

// DateFilter selects items by their due date relative to the current day.
type DateFilter int

const (
	// None applies no filter.
	None DateFilter = iota
	// Today selects items due today.
	Today
	// Tomorrow selects items due tomorrow.
	Tomorrow
	// ThisWeek selects items due between today and seven days from today, both inclusive.
	ThisWeek
	// ThisMonth selects items due between today and one month from today, both inclusive.
	ThisMonth
)

// ErrUnknownDateFilter is returned when a filter name can't be parsed.
var ErrUnknownDateFilter = errors.New("unknown date filter")

var dateFilterNames = map[DateFilter]string{
	None:      "None",
	Today:     "Today",
	Tomorrow:  "Tomorrow",
	ThisWeek:  "ThisWeek",
	ThisMonth: "ThisMonth",
}

// String returns the canonical name of the filter.
func (f DateFilter) String() string {
	if name, ok := dateFilterNames[f]; ok {
		return name
	}

	return "DateFilter(" + strconv.Itoa(int(f)) + ")"
}

// ParseDateFilter parses a filter name case-insensitively.
// The numeric forms "0" to "4" are accepted as well, an empty string means None.
func ParseDateFilter(raw string) (DateFilter, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return None, nil
	}

	if n, err := strconv.Atoi(raw); err == nil {
		if _, ok := dateFilterNames[DateFilter(n)]; ok {
			return DateFilter(n), nil
		}

		return None, ErrUnknownDateFilter
	}

	for filter, name := range dateFilterNames {
		if strings.EqualFold(name, raw) {
			return filter, nil
		}
	}

	return None, ErrUnknownDateFilter
}
