package schedule

import (
	"math"
	"time"
)

// ── civil time ──────────────────────────────────────────────
//
// Everything the calendar and reservation grids draw is positioned by civil
// (wall-clock) time in one fixed timezone, while activities are stored as
// absolute instants in UTC epoch milliseconds. Clock is the single place
// where the two meet: it attaches a civil-calendar view to an instant and
// provides the day/week/month arithmetic the layout code needs.
//
// The timezone is injected by the caller (from configuration), never read
// from ambient process state, so tests can pin any zone.
// ─────────────────────────────────────────────────────────────

const (
	msPerMinute int64 = 60_000
	msPerHour   int64 = 3_600_000
	msPerDay    int64 = 86_400_000
)

// InvalidInstant marks an instant that could not be parsed. A Moment built
// from it is invalid: every comparison involving it reports false.
const InvalidInstant int64 = math.MinInt64

// MaxActivityDays caps an activity's total duration.
const MaxActivityDays = 100

// MaxActivityDurationMs is MaxActivityDays in epoch milliseconds.
const MaxActivityDurationMs = int64(MaxActivityDays) * msPerDay

// Sentinel location values that name no physical room. Activities placed
// there are never reservations and never conflict-checked.
const (
	LocationNone   = "none"
	LocationOther  = "other"
	LocationOnline = "online"
)

// IsSentinelLocation reports whether loc names no physical room.
func IsSentinelLocation(loc string) bool {
	return loc == LocationNone || loc == LocationOther || loc == LocationOnline
}

// Clock converts instants to civil moments in one fixed timezone.
type Clock struct {
	loc *time.Location
}

// NewClock builds a Clock for the given location. A nil location means UTC.
func NewClock(loc *time.Location) Clock {
	if loc == nil {
		loc = time.UTC
	}
	return Clock{loc: loc}
}

// LoadClock builds a Clock from an IANA zone name.
func LoadClock(name string) (Clock, error) {
	loc, err := time.LoadLocation(name)
	if err != nil {
		return Clock{}, err
	}
	return Clock{loc: loc}, nil
}

// Location returns the clock's timezone.
func (c Clock) Location() *time.Location {
	if c.loc == nil {
		return time.UTC
	}
	return c.loc
}

// ToCivil attaches the civil-calendar view to an absolute instant.
func (c Clock) ToCivil(ms int64) Moment {
	if ms == InvalidInstant {
		return Moment{}
	}
	return Moment{t: time.UnixMilli(ms).In(c.Location()), valid: true}
}

// CivilDate builds the Moment at civil midnight of the given date.
func (c Clock) CivilDate(year int, month time.Month, day int) Moment {
	return Moment{t: time.Date(year, month, day, 0, 0, 0, 0, c.Location()), valid: true}
}

// Moment is one instant together with its civil-calendar view.
// The zero Moment is invalid.
type Moment struct {
	t     time.Time
	valid bool
}

// Valid reports whether the moment holds a real instant.
func (m Moment) Valid() bool { return m.valid }

// UnixMilli returns the absolute instant, or InvalidInstant.
func (m Moment) UnixMilli() int64 {
	if !m.valid {
		return InvalidInstant
	}
	return m.t.UnixMilli()
}

// Time returns the underlying time.Time (zero when invalid).
func (m Moment) Time() time.Time { return m.t }

// Year, Month, Day, Hour, Minute expose the civil fields.
func (m Moment) Year() int         { return m.t.Year() }
func (m Moment) Month() time.Month { return m.t.Month() }
func (m Moment) Day() int          { return m.t.Day() }
func (m Moment) Hour() int         { return m.t.Hour() }
func (m Moment) Minute() int       { return m.t.Minute() }

// Weekday returns the civil weekday, 0 = Sunday.
func (m Moment) Weekday() int { return int(m.t.Weekday()) }

// IsMidnight reports whether the moment sits exactly on a civil midnight.
func (m Moment) IsMidnight() bool {
	return m.valid && m.t.Hour() == 0 && m.t.Minute() == 0 && m.t.Second() == 0 && m.t.Nanosecond() == 0
}

// HourOfDay returns the civil hour including a fractional minute part
// (e.g. 22.5 for 22:30).
func (m Moment) HourOfDay() float64 {
	return float64(m.t.Hour()) + float64(m.t.Minute())/60 + float64(m.t.Second())/3600
}

// StartOfDay returns civil midnight of the moment's day.
func (m Moment) StartOfDay() Moment {
	if !m.valid {
		return Moment{}
	}
	y, mo, d := m.t.Date()
	return Moment{t: time.Date(y, mo, d, 0, 0, 0, 0, m.t.Location()), valid: true}
}

// StartOfWeek returns civil midnight of the Sunday beginning the moment's week.
func (m Moment) StartOfWeek() Moment {
	return m.StartOfDay().AddDays(-m.Weekday())
}

// StartOfMonth returns civil midnight of the first of the moment's month.
func (m Moment) StartOfMonth() Moment {
	if !m.valid {
		return Moment{}
	}
	return Moment{t: time.Date(m.t.Year(), m.t.Month(), 1, 0, 0, 0, 0, m.t.Location()), valid: true}
}

// AddDays moves n civil days, keeping the wall-clock time.
func (m Moment) AddDays(n int) Moment {
	if !m.valid {
		return Moment{}
	}
	return Moment{t: m.t.AddDate(0, 0, n), valid: true}
}

// AddWeeks moves n civil weeks.
func (m Moment) AddWeeks(n int) Moment {
	return m.AddDays(7 * n)
}

// AddMonths moves n civil months.
func (m Moment) AddMonths(n int) Moment {
	if !m.valid {
		return Moment{}
	}
	return Moment{t: m.t.AddDate(0, n, 0), valid: true}
}

// SameDay reports whether both moments fall on the same civil day.
// Always false when either moment is invalid.
func (m Moment) SameDay(o Moment) bool {
	if !m.valid || !o.valid {
		return false
	}
	y1, m1, d1 := m.t.Date()
	y2, m2, d2 := o.t.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// SameWeek reports whether both moments fall in the same civil week
// (weeks start on Sunday).
func (m Moment) SameWeek(o Moment) bool {
	if !m.valid || !o.valid {
		return false
	}
	return m.StartOfWeek().SameDay(o.StartOfWeek())
}

// SameMonth reports whether both moments fall in the same civil month.
func (m Moment) SameMonth(o Moment) bool {
	if !m.valid || !o.valid {
		return false
	}
	return m.t.Year() == o.t.Year() && m.t.Month() == o.t.Month()
}

// Before reports strict instant order; false when either moment is invalid.
func (m Moment) Before(o Moment) bool {
	if !m.valid || !o.valid {
		return false
	}
	return m.t.Before(o.t)
}

// After reports strict instant order; false when either moment is invalid.
func (m Moment) After(o Moment) bool {
	if !m.valid || !o.valid {
		return false
	}
	return m.t.After(o.t)
}

// Format renders the moment with a time.Format layout; empty when invalid.
func (m Moment) Format(layout string) string {
	if !m.valid {
		return ""
	}
	return m.t.Format(layout)
}

// DaysInMonth returns the number of days in the moment's civil month.
func (m Moment) DaysInMonth() int {
	return time.Date(m.t.Year(), m.t.Month()+1, 0, 0, 0, 0, 0, m.t.Location()).Day()
}
