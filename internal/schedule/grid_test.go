package schedule

import (
	"testing"
	"time"

	"github.com/tams-cso/tams-club-cal-sub001/internal/model"
)

func segmentOn(clock Clock, name string, year int, month time.Month, day, hour int) Segment {
	start := clock.CivilDate(year, month, day).UnixMilli() + int64(hour)*msPerHour
	return Segment{
		Activity:  &model.Activity{Name: name},
		Name:      name,
		StartMs:   start,
		EndMs:     start + msPerHour,
		DayIndex:  1,
		TotalDays: 1,
	}
}

func TestLayoutMonthRowCounts(t *testing.T) {
	clock := NewClock(time.UTC)
	cases := []struct {
		year  int
		month time.Month
		rows  int
	}{
		{2026, time.February, 4}, // starts Sunday, 28 days
		{2025, time.June, 5},     // starts Sunday, 30 days
		{2026, time.August, 6},   // starts Saturday, 31 days
	}
	for _, c := range cases {
		grid := LayoutMonth(clock, c.year, c.month, nil, 0, 4)
		if grid.Rows != c.rows {
			t.Errorf("%v %d: rows %d, want %d", c.month, c.year, grid.Rows, c.rows)
		}
		if len(grid.Cells) != c.rows*7 {
			t.Errorf("%v %d: %d cells, want %d", c.month, c.year, len(grid.Cells), c.rows*7)
		}
	}
}

func TestLayoutMonthMarksNeighborMonthCells(t *testing.T) {
	clock := NewClock(time.UTC)
	// June 2024 starts on a Saturday: six leading May cells.
	grid := LayoutMonth(clock, 2024, time.June, nil, 0, 4)
	if grid.Rows != 6 {
		t.Fatalf("expected 6 rows, got %d", grid.Rows)
	}
	for i := 0; i < 6; i++ {
		if grid.Cells[i].InMonth {
			t.Errorf("leading cell %d (%s) should be out of month", i, grid.Cells[i].DateISO)
		}
	}
	if !grid.Cells[6].InMonth || grid.Cells[6].Day != 1 {
		t.Errorf("cell 6 should be June 1, got %s", grid.Cells[6].DateISO)
	}
	last := grid.Cells[len(grid.Cells)-1]
	if last.InMonth {
		t.Errorf("trailing cell %s should be out of month", last.DateISO)
	}
}

func TestLayoutMonthGridAlwaysStartsOnSunday(t *testing.T) {
	clock := NewClock(time.UTC)
	for month := time.January; month <= time.December; month++ {
		grid := LayoutMonth(clock, 2024, month, nil, 0, 4)
		if grid.Cells[0].Date.Weekday() != 0 {
			t.Errorf("%v grid starts on weekday %d", month, grid.Cells[0].Date.Weekday())
		}
		if grid.Cells[0].Day != 1 && grid.Cells[0].InMonth {
			t.Errorf("%v grid has an in-month leading cell that is not the 1st", month)
		}
	}
}

func TestLayoutMonthFiveRowCapacityShrinksByOne(t *testing.T) {
	clock := NewClock(time.UTC)
	segs := []Segment{
		segmentOn(clock, "a", 2025, time.June, 10, 9),
		segmentOn(clock, "b", 2025, time.June, 10, 10),
		segmentOn(clock, "c", 2025, time.June, 10, 11),
		segmentOn(clock, "d", 2025, time.June, 10, 12),
	}

	// June 2025 lays out in 5 rows, so only 3 of the 4 chips fit inline.
	grid := LayoutMonth(clock, 2025, time.June, segs, 0, 4)
	if grid.Capacity != 3 {
		t.Fatalf("expected effective capacity 3 in a 5-row month, got %d", grid.Capacity)
	}
	cell := findCell(t, grid, "2025-06-10")
	if cell.Overflow != 1 {
		t.Errorf("expected overflow 1, got %d", cell.Overflow)
	}

	// The same four chips fit with room to spare in a 4-row month.
	for i := range segs {
		segs[i].StartMs = clock.CivilDate(2026, time.February, 10).UnixMilli() + int64(9+i)*msPerHour
		segs[i].EndMs = segs[i].StartMs + msPerHour
	}
	grid = LayoutMonth(clock, 2026, time.February, segs, 0, 4)
	if grid.Capacity != 4 {
		t.Fatalf("expected full capacity 4 in a 4-row month, got %d", grid.Capacity)
	}
	if cell := findCell(t, grid, "2026-02-10"); cell.Overflow != 0 {
		t.Errorf("expected no overflow, got %d", cell.Overflow)
	}
}

func TestLayoutMonthFlagsToday(t *testing.T) {
	clock := NewClock(time.UTC)
	now := msUTC(2024, time.June, 14, 15, 30)
	grid := LayoutMonth(clock, 2024, time.June, nil, now, 4)
	for _, cell := range grid.Cells {
		want := cell.DateISO == "2024-06-14"
		if cell.IsToday != want {
			t.Errorf("cell %s: IsToday=%v", cell.DateISO, cell.IsToday)
		}
	}
}

func findCell(t *testing.T, grid MonthGrid, iso string) DayCell {
	t.Helper()
	for _, cell := range grid.Cells {
		if cell.DateISO == iso {
			return cell
		}
	}
	t.Fatalf("no cell for %s", iso)
	return DayCell{}
}
