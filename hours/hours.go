// Package hours decides open/closed state for a weekly trading schedule at an
// arbitrary wall-clock instant, including windows that span midnight. All
// functions are pure; no timezone conversion happens here, the caller owns
// timezone consistency.
package hours

import (
	"time"

	"github.com/donaldchunggit/WhatStillOpenSydney/models"
)

// IsOpenAt reports whether the schedule has the venue open at the instant.
func IsOpenAt(s *models.WeeklySchedule, at time.Time) bool {
	_, open := ClosingInstantAt(s, at)
	return open
}

// ClosingInstantAt returns the closing instant of the window containing the
// instant, projected onto the correct calendar day. The second return is
// false when the venue is closed (including nil or empty schedules).
//
// Two scans decide the state:
//  1. today's windows — a same-day window (close > open) contains the instant
//     when open <= m < close; a cross-midnight window (close <= open) is
//     active from open until the following midnight and closes tomorrow.
//  2. yesterday's windows — a cross-midnight window from the previous day
//     spills into today and stays active while m < close.
//
// The first satisfying window wins; the data source is trusted not to
// overlap windows but nothing here depends on that.
func ClosingInstantAt(s *models.WeeklySchedule, at time.Time) (time.Time, bool) {
	if s == nil {
		return time.Time{}, false
	}

	day := models.WeekdayOf(at)
	m := at.Hour()*60 + at.Minute()
	midnight := time.Date(at.Year(), at.Month(), at.Day(), 0, 0, 0, 0, at.Location())

	for _, w := range s.Windows(day) {
		// Equal bounds are a dead window, not a 24-hour day. The raw pair is
		// checked before normalization so (00:00, 00:00) stays dead instead
		// of reading as (00:00, 24:00).
		if w.Open == w.Close {
			continue
		}
		close := w.NormalizedClose()
		if close == w.Open {
			continue
		}
		if close > w.Open {
			if m >= w.Open && m < close {
				return midnight.Add(time.Duration(close) * time.Minute), true
			}
			continue
		}
		// Cross-midnight window on its opening day: open through midnight,
		// closing on the following calendar day.
		if m >= w.Open {
			return midnight.AddDate(0, 0, 1).Add(time.Duration(close) * time.Minute), true
		}
	}

	// Spillover: a cross-midnight window opened yesterday is still active
	// this morning until its close.
	for _, w := range s.Windows(day.Prev()) {
		close := w.NormalizedClose()
		if close == w.Open || close > w.Open {
			continue
		}
		if m < close {
			return midnight.Add(time.Duration(close) * time.Minute), true
		}
	}

	return time.Time{}, false
}

// MinutesUntilClose returns the whole minutes between the instant and the
// closing instant, floored at zero. Returns 0, false when closed.
func MinutesUntilClose(s *models.WeeklySchedule, at time.Time) (int, bool) {
	closesAt, open := ClosingInstantAt(s, at)
	if !open {
		return 0, false
	}
	mins := int(closesAt.Sub(at) / time.Minute)
	if mins < 0 {
		mins = 0
	}
	return mins, true
}
