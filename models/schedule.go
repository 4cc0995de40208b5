package models

import (
	"strconv"
	"strings"
	"time"
)

// Minutes-of-day bounds for trading windows. EndOfDay (1440) is the sentinel
// for a midnight close; a literal close of 0 is normalized to it.
const (
	MinutesPerDay = 1440
	EndOfDay      = 1440
)

// Weekday indexes WeeklySchedule. Monday is 0 so the provider payloads
// (monday..sunday) and the schedule array line up without a lookup table.
type Weekday int

const (
	Monday Weekday = iota
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday
)

var weekdayNames = [7]string{
	"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday",
}

func (d Weekday) String() string {
	if d < Monday || d > Sunday {
		return "unknown"
	}
	return weekdayNames[d]
}

// Prev returns the previous calendar weekday, wrapping Monday back to Sunday.
func (d Weekday) Prev() Weekday {
	return (d + 6) % 7
}

// WeekdayOf converts time.Weekday (Sunday=0) into the schedule index (Monday=0).
func WeekdayOf(t time.Time) Weekday {
	return Weekday((int(t.Weekday()) + 6) % 7)
}

// TradingWindow is a single open/close pair in minutes since midnight.
// Close <= Open means the window crosses midnight and closes on the
// following calendar day. Open == Close contributes no open time.
type TradingWindow struct {
	Open  int `json:"open"`
	Close int `json:"close"`
}

// CrossesMidnight reports whether the window closes on the following day.
// Callers must normalize before asking; see NormalizedClose.
func (w TradingWindow) CrossesMidnight() bool {
	return w.NormalizedClose() <= w.Open
}

// NormalizedClose maps a close of 0 to the end-of-day sentinel. Without this
// a venue trading until midnight would appear to close the moment it opened.
func (w TradingWindow) NormalizedClose() int {
	if w.Close == 0 {
		return EndOfDay
	}
	return w.Close
}

// WeeklySchedule maps each weekday to its trading windows. The fixed-size
// array makes "no such day" unrepresentable; a day with no windows is simply
// closed all day. Window order within a day is preserved as received.
type WeeklySchedule [7][]TradingWindow

// Windows returns the windows listed under the given weekday.
func (s *WeeklySchedule) Windows(d Weekday) []TradingWindow {
	return s[d]
}

// Add appends a window under the given weekday, preserving insertion order.
func (s *WeeklySchedule) Add(d Weekday, w TradingWindow) {
	s[d] = append(s[d], w)
}

// HasData reports whether any day carries at least one window. A venue whose
// schedule has no data at all is scored neutrally rather than penalized.
func (s *WeeklySchedule) HasData() bool {
	if s == nil {
		return false
	}
	for _, windows := range s {
		if len(windows) > 0 {
			return true
		}
	}
	return false
}

// RawTradingWindow is the provider's wire form of a window, "HH:MM" strings.
type RawTradingWindow struct {
	Open  string `json:"open"`
	Close string `json:"close"`
}

// RawWeeklyHours is the provider's wire form of a schedule: lowercase day
// names mapped to window lists. Unknown day keys are ignored.
type RawWeeklyHours map[string][]RawTradingWindow

// ParseWeeklySchedule converts the provider payload into a WeeklySchedule.
// Malformed windows (non-numeric hour or minute, out-of-range values) are
// skipped rather than failing the whole schedule; the venue just reads as
// closed for that window.
func ParseWeeklySchedule(raw RawWeeklyHours) *WeeklySchedule {
	if raw == nil {
		return nil
	}
	var s WeeklySchedule
	for day := Monday; day <= Sunday; day++ {
		for _, rw := range raw[day.String()] {
			open, err := parseMinuteOfDay(rw.Open)
			if err != nil {
				continue
			}
			close, err := parseMinuteOfDay(rw.Close)
			if err != nil {
				continue
			}
			s.Add(day, TradingWindow{Open: open, Close: close})
		}
	}
	return &s
}

// parseMinuteOfDay parses "HH:MM" into minutes since midnight.
func parseMinuteOfDay(value string) (int, error) {
	parts := strings.SplitN(value, ":", 2)
	if len(parts) != 2 {
		return 0, &time.ParseError{Layout: "HH:MM", Value: value, Message: ": missing separator"}
	}
	hour, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return 0, err
	}
	minute, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return 0, err
	}
	if hour < 0 || hour > 24 || minute < 0 || minute > 59 {
		return 0, &time.ParseError{Layout: "HH:MM", Value: value, Message: ": out of range"}
	}
	total := hour*60 + minute
	if total > MinutesPerDay {
		return 0, &time.ParseError{Layout: "HH:MM", Value: value, Message: ": out of range"}
	}
	return total, nil
}
