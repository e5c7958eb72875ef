// Package capacity decides whether a job may be scheduled on a date.
// It is pure: callers supply settings and counts read from the store.
package capacity

import (
	"fmt"
	"slices"
)

const (
	DefaultDailyLimit = 10
	ClearanceDailyCap = 5
)

const (
	ReasonHoliday         = "Cannot schedule jobs on a public holiday."
	reasonDailyLimit      = "Daily limit of %d reached for %s."
	reasonClearanceCapped = "Maximum of %d import clearance jobs reached for %s."
)

type Settings struct {
	DailyJobLimits map[string]int
	Holidays       []string
}

// Booking is the slice of a job the policy looks at.
type Booking struct {
	Date            string
	Rejected        bool
	ImportClearance bool
}

type Decision struct {
	Allow  bool
	Reason string
}

func allow() Decision {
	return Decision{Allow: true}
}

func reject(reason string) Decision {
	return Decision{Allow: false, Reason: reason}
}

func IsHoliday(date string, s Settings) bool {
	return slices.Contains(s.Holidays, date)
}

func EffectiveLimit(date string, s Settings) int {
	if limit, ok := s.DailyJobLimits[date]; ok {
		return limit
	}
	return DefaultDailyLimit
}

// Evaluate applies the holiday and daily limit rules to a count of
// non-rejected jobs already booked on date.
func Evaluate(date string, count int, s Settings) Decision {
	if IsHoliday(date, s) {
		return reject(ReasonHoliday)
	}
	limit := EffectiveLimit(date, s)
	if count >= limit {
		return reject(fmt.Sprintf(reasonDailyLimit, limit, date))
	}
	return allow()
}

func CanScheduleJob(date string, bookings []Booking, s Settings) Decision {
	count := 0
	for _, b := range bookings {
		if b.Date == date && !b.Rejected {
			count++
		}
	}
	return Evaluate(date, count, s)
}

// EvaluateClearance applies the fixed clearance cap. Every clearance job on
// the date counts, whatever its status, and daily limits are not consulted.
func EvaluateClearance(date string, count int) Decision {
	if count >= ClearanceDailyCap {
		return reject(fmt.Sprintf(reasonClearanceCapped, ClearanceDailyCap, date))
	}
	return allow()
}

func CanScheduleClearance(date string, bookings []Booking) Decision {
	count := 0
	for _, b := range bookings {
		if b.Date == date && b.ImportClearance {
			count++
		}
	}
	return EvaluateClearance(date, count)
}

// Remaining is the number of free slots left, never negative.
func Remaining(date string, count int, s Settings) int {
	if IsHoliday(date, s) {
		return 0
	}
	return max(EffectiveLimit(date, s)-count, 0)
}

func ClearanceRemaining(count int) int {
	return max(ClearanceDailyCap-count, 0)
}
