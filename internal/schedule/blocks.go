package schedule

import (
	"sort"
	"time"

	"github.com/tams-cso/tams-club-cal-sub001/internal/model"
)

// ── reservation blocks ──────────────────────────────────────
//
// The room schedule draws reservations as hour-positioned blocks inside a
// per-day column that shows 6:00 through 24:00. A reservation spanning
// several civil days contributes one block per day; blocks starting before
// the visible window are clipped to its left edge or dropped entirely.
// ─────────────────────────────────────────────────────────────

// Block is one single-day slice of a reservation, positioned in grid hours.
// HourOffset counts hours from the visible window's start; HourSpan is the
// block's width in hours. Both carry fractional parts for non-whole-hour
// reservations.
type Block struct {
	Activity   *model.Activity `json:"activity"`
	Room       string          `json:"room"`
	StartMs    int64           `json:"start_ms"`
	EndMs      int64           `json:"end_ms"`
	HourOffset float64         `json:"hour_offset"`
	HourSpan   float64         `json:"hour_span"`
}

// DecomposeReservations slices reservations into per-day blocks, clips them
// to the visible window starting at visibleStartHour, and returns them
// ordered by start instant.
func DecomposeReservations(clock Clock, acts []model.Activity, visibleStartHour int) []Block {
	var raw []Block
	for i := range acts {
		raw = append(raw, decomposeOne(clock, &acts[i])...)
	}
	sort.SliceStable(raw, func(i, j int) bool { return raw[i].StartMs < raw[j].StartMs })

	window := float64(visibleStartHour)
	blocks := make([]Block, 0, len(raw))
	for _, b := range raw {
		startHour := clock.ToCivil(b.StartMs).HourOfDay()
		endHour := startHour + b.HourSpan
		switch {
		case startHour >= window:
			b.HourOffset = startHour - window
			blocks = append(blocks, b)
		case endHour >= window:
			// Starts before the window but reaches into it: pin to the
			// left edge and trim the hidden hours off the width.
			b.HourOffset = 0
			b.HourSpan = endHour - window
			blocks = append(blocks, b)
		}
	}
	return blocks
}

// decomposeOne walks a reservation midnight by midnight. A reservation
// ending exactly at midnight closes on that midnight without opening a
// zero-width block on the following day.
func decomposeOne(clock Clock, a *model.Activity) []Block {
	start := clock.ToCivil(a.StartMs)
	end := clock.ToCivil(a.DisplayEndMs())
	if !start.Valid() || !end.Valid() || end.Before(start) {
		return nil
	}

	var blocks []Block
	cursor := start
	for {
		nextMidnight := cursor.StartOfDay().AddDays(1)
		segEnd := end
		if nextMidnight.Before(end) {
			segEnd = nextMidnight
		}
		blocks = append(blocks, Block{
			Activity: a,
			Room:     a.Location,
			StartMs:  cursor.UnixMilli(),
			EndMs:    segEnd.UnixMilli(),
			HourSpan: float64(segEnd.UnixMilli()-cursor.UnixMilli()) / float64(msPerHour),
		})
		if segEnd.UnixMilli() == end.UnixMilli() {
			return blocks
		}
		cursor = nextMidnight
	}
}

// RoomRow is one room's blocks within a single day.
type RoomRow struct {
	Room   string  `json:"room"`
	Blocks []Block `json:"blocks"`
}

// DayReservations is one civil day of the week view.
type DayReservations struct {
	Date    Moment    `json:"-"`
	DateISO string    `json:"date"`
	Weekday int       `json:"weekday"`
	Rooms   []RoomRow `json:"rooms"`
}

// WeekGrid is a Sunday-through-Saturday week of room reservations.
type WeekGrid struct {
	StartISO string             `json:"week_start"`
	Days     [7]DayReservations `json:"days"`
}

// GroupWeek distributes blocks into the Sunday-first civil week containing
// anchorMs, grouping each day's blocks by room in room order.
func GroupWeek(clock Clock, blocks []Block, anchorMs int64) WeekGrid {
	weekStart := clock.ToCivil(anchorMs).StartOfWeek()
	grid := WeekGrid{StartISO: weekStart.Format("2006-01-02")}
	for d := 0; d < 7; d++ {
		day := weekStart.AddDays(d)
		grid.Days[d] = DayReservations{
			Date:    day,
			DateISO: day.Format("2006-01-02"),
			Weekday: day.Weekday(),
			Rooms:   groupByRoom(filterDay(clock, blocks, day)),
		}
	}
	return grid
}

// DayBlocks is one civil day of a room's month view.
type DayBlocks struct {
	Date    Moment  `json:"-"`
	DateISO string  `json:"date"`
	Day     int     `json:"day"`
	Blocks  []Block `json:"blocks"`
}

// MonthReservations lists one room's blocks for every day of a civil month.
type MonthReservations struct {
	Room  string      `json:"room"`
	Year  int         `json:"year"`
	Month time.Month  `json:"month"`
	Days  []DayBlocks `json:"days"`
}

// GroupRoomMonth distributes one room's blocks across the days of a civil
// month. Blocks for other rooms are ignored.
func GroupRoomMonth(clock Clock, blocks []Block, room string, year int, month time.Month) MonthReservations {
	first := clock.CivilDate(year, month, 1)
	out := MonthReservations{Room: room, Year: year, Month: month}
	for d := 0; d < first.DaysInMonth(); d++ {
		day := first.AddDays(d)
		var dayBlocks []Block
		for _, b := range filterDay(clock, blocks, day) {
			if b.Room == room {
				dayBlocks = append(dayBlocks, b)
			}
		}
		out.Days = append(out.Days, DayBlocks{
			Date:    day,
			DateISO: day.Format("2006-01-02"),
			Day:     day.Day(),
			Blocks:  dayBlocks,
		})
	}
	return out
}

func filterDay(clock Clock, blocks []Block, day Moment) []Block {
	var out []Block
	for _, b := range blocks {
		if clock.ToCivil(b.StartMs).SameDay(day) {
			out = append(out, b)
		}
	}
	return out
}

func groupByRoom(blocks []Block) []RoomRow {
	byRoom := make(map[string][]Block)
	var order []string
	for _, b := range blocks {
		if _, ok := byRoom[b.Room]; !ok {
			order = append(order, b.Room)
		}
		byRoom[b.Room] = append(byRoom[b.Room], b)
	}
	sort.Strings(order)
	rows := make([]RoomRow, 0, len(order))
	for _, room := range order {
		rows = append(rows, RoomRow{Room: room, Blocks: byRoom[room]})
	}
	return rows
}
