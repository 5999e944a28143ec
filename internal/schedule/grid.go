package schedule

import (
	"sort"
	"time"
)

// ── month grid layout ───────────────────────────────────────
//
// The month view is a Sunday-first grid of full weeks. Leading cells before
// the 1st and trailing cells after the last day belong to the neighboring
// months and are marked out-of-month. Depending on where the 1st falls the
// grid has 4, 5 or 6 rows; the cramped 5-row shape gives each cell one less
// inline chip before overflow kicks in.
// ─────────────────────────────────────────────────────────────

// DayCell is one cell of the month grid.
type DayCell struct {
	Date     Moment    `json:"-"`
	DateISO  string    `json:"date"`
	Day      int       `json:"day"`
	InMonth  bool      `json:"in_month"`
	IsToday  bool      `json:"is_today"`
	Segments []Segment `json:"segments"`
	Overflow int       `json:"overflow"`
}

// MonthGrid is a fully laid-out month view.
type MonthGrid struct {
	Year     int        `json:"year"`
	Month    time.Month `json:"month"`
	Rows     int        `json:"rows"`
	Capacity int        `json:"capacity"`
	Cells    []DayCell  `json:"cells"`
}

// LayoutMonth arranges segments into the Sunday-first grid for the given
// civil month. capacity is the inline chip limit for 4- and 6-row months;
// nowMs marks the cell flagged IsToday.
func LayoutMonth(clock Clock, year int, month time.Month, segments []Segment, nowMs int64, capacity int) MonthGrid {
	first := clock.CivilDate(year, month, 1)
	lead := first.Weekday()
	total := lead + first.DaysInMonth()
	if rem := total % 7; rem != 0 {
		total += 7 - rem
	}
	rows := total / 7

	effective := capacity
	if rows == 5 {
		effective--
	}
	if effective < 0 {
		effective = 0
	}

	buckets := bucketByDay(clock, segments)
	today := clock.ToCivil(nowMs)

	cells := make([]DayCell, 0, total)
	cursor := first.AddDays(-lead)
	for i := 0; i < total; i++ {
		key := cursor.Format("2006-01-02")
		segs := buckets[key]
		overflow := 0
		if len(segs) > effective {
			overflow = len(segs) - effective
		}
		cells = append(cells, DayCell{
			Date:     cursor,
			DateISO:  key,
			Day:      cursor.Day(),
			InMonth:  cursor.Month() == month && cursor.Year() == year,
			IsToday:  cursor.SameDay(today),
			Segments: segs,
			Overflow: overflow,
		})
		cursor = cursor.AddDays(1)
	}

	return MonthGrid{Year: year, Month: month, Rows: rows, Capacity: effective, Cells: cells}
}

// bucketByDay groups segments under the civil day of their start, each
// bucket ordered by start instant.
func bucketByDay(clock Clock, segments []Segment) map[string][]Segment {
	buckets := make(map[string][]Segment)
	for _, s := range segments {
		key := clock.ToCivil(s.StartMs).Format("2006-01-02")
		if key == "" {
			continue
		}
		buckets[key] = append(buckets[key], s)
	}
	for _, b := range buckets {
		sort.SliceStable(b, func(i, j int) bool { return b[i].StartMs < b[j].StartMs })
	}
	return buckets
}
