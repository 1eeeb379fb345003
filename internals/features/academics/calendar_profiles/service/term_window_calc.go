// file: internals/features/academics/calendar_profiles/service/term_window_calc.go
//
// Pure term-window arithmetic: profile month-days in, concrete dated windows
// out. No I/O here; every caller gets the same answer for the same input.
package service

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	model "kampusku_backend/internals/features/academics/calendar_profiles/model"
	"kampusku_backend/internals/helpers/aycode"
)

var (
	ErrInvalidAYCode    = errors.New("invalid academic year code")
	ErrInvalidShift     = errors.New("shift_days must be between -30 and 30")
	ErrMalformedProfile = errors.New("malformed calendar profile")
)

const (
	MinShiftDays = -30
	MaxShiftDays = 30
)

// defaultAnchorMonth: with no anchor configured, month >= July belongs to the
// AY's start year. Legacy convention, deliberately hard-coded.
const defaultAnchorMonth = 7

type TermWindow struct {
	Label     string    `json:"label"`
	StartDate time.Time `json:"start_date"`
	EndDate   time.Time `json:"end_date"`
}

type monthDay struct {
	month int
	day   int
}

func parseMonthDay(s string) (monthDay, error) {
	if !model.MonthDayValid(s) {
		return monthDay{}, fmt.Errorf("%w: bad month-day %q", ErrMalformedProfile, s)
	}
	m, _ := strconv.Atoi(s[:2])
	d, _ := strconv.Atoi(s[3:])
	return monthDay{month: m, day: d}, nil
}

// onOrAfter: (month,day) ordering
func (md monthDay) onOrAfter(other monthDay) bool {
	if md.month != other.month {
		return md.month > other.month
	}
	return md.day >= other.day
}

// resolveYear places a month-day into the AY's start year when it falls on or
// after the anchor, otherwise into the following year. The anchor is what
// disambiguates calendars whose year boundary is not January 1.
func resolveYear(md monthDay, anchor *monthDay, startYear int) int {
	if anchor != nil {
		if md.onOrAfter(*anchor) {
			return startYear
		}
		return startYear + 1
	}
	if md.month >= defaultAnchorMonth {
		return startYear
	}
	return startYear + 1
}

// ComputeTermWindows maps a profile's abstract term boundaries onto concrete
// dates for one academic year, then applies the calendar-day shift to both
// ends of every window.
func ComputeTermWindows(profile *model.CalendarProfileModel, ayCode string, shiftDays int) ([]TermWindow, error) {
	startYear, err := aycode.Parse(ayCode)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidAYCode, ayCode)
	}
	if shiftDays < MinShiftDays || shiftDays > MaxShiftDays {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidShift, shiftDays)
	}
	if profile == nil || len(profile.CalendarProfileTerms) == 0 {
		return nil, fmt.Errorf("%w: no terms", ErrMalformedProfile)
	}

	var anchor *monthDay
	if profile.CalendarProfileAnchorMonthDay != nil {
		a, err := parseMonthDay(*profile.CalendarProfileAnchorMonthDay)
		if err != nil {
			return nil, err
		}
		anchor = &a
	}

	windows := make([]TermWindow, 0, len(profile.CalendarProfileTerms))
	for _, term := range profile.CalendarProfileTerms {
		startMD, err := parseMonthDay(term.StartMonthDay)
		if err != nil {
			return nil, err
		}
		endMD, err := parseMonthDay(term.EndMonthDay)
		if err != nil {
			return nil, err
		}

		start := time.Date(resolveYear(startMD, anchor, startYear), time.Month(startMD.month), startMD.day, 0, 0, 0, 0, time.UTC)
		end := time.Date(resolveYear(endMD, anchor, startYear), time.Month(endMD.month), endMD.day, 0, 0, 0, 0, time.UTC)

		// a term spanning the turn of the year ends in the next one
		if end.Before(start) {
			end = end.AddDate(1, 0, 0)
		}

		windows = append(windows, TermWindow{
			Label:     term.Label,
			StartDate: start.AddDate(0, 0, shiftDays),
			EndDate:   end.AddDate(0, 0, shiftDays),
		})
	}
	return windows, nil
}
