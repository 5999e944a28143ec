package schedule

import (
	"testing"
	"time"

	"github.com/tams-cso/tams-club-cal-sub001/internal/model"
)

func reservation(name, room string, startMs, endMs int64) model.Activity {
	return model.Activity{
		Name:          name,
		Location:      room,
		StartMs:       startMs,
		EndMs:         endMs,
		IsReservation: true,
	}
}

func TestDecomposeSingleDayReservation(t *testing.T) {
	clock := NewClock(time.UTC)
	blocks := DecomposeReservations(clock, []model.Activity{
		reservation("Officer Meeting", "room-a", msUTC(2024, time.June, 3, 14, 0), msUTC(2024, time.June, 3, 16, 0)),
	}, 6)
	if len(blocks) != 1 {
		t.Fatalf("expected 1 block, got %d", len(blocks))
	}
	b := blocks[0]
	if b.HourOffset != 8 || b.HourSpan != 2 {
		t.Errorf("expected offset 8 span 2, got offset %v span %v", b.HourOffset, b.HourSpan)
	}
}

func TestDecomposeOvernightReservationClipsSecondDay(t *testing.T) {
	clock := NewClock(time.UTC)
	// Monday 22:00 through Tuesday 07:00.
	blocks := DecomposeReservations(clock, []model.Activity{
		reservation("Lock-in", "room-a", msUTC(2024, time.June, 3, 22, 0), msUTC(2024, time.June, 4, 7, 0)),
	}, 6)
	if len(blocks) != 2 {
		t.Fatalf("expected 2 blocks, got %d", len(blocks))
	}
	mon, tue := blocks[0], blocks[1]
	if mon.HourOffset != 16 || mon.HourSpan != 2 {
		t.Errorf("Monday block: offset %v span %v, want 16 and 2", mon.HourOffset, mon.HourSpan)
	}
	if mon.EndMs != msUTC(2024, time.June, 4, 0, 0) {
		t.Errorf("Monday block must close at midnight, got %d", mon.EndMs)
	}
	// The Tuesday 00:00 start is hidden before 6:00; only the 6:00 to
	// 7:00 remainder stays visible.
	if tue.HourOffset != 0 || tue.HourSpan != 1 {
		t.Errorf("Tuesday block: offset %v span %v, want 0 and 1", tue.HourOffset, tue.HourSpan)
	}
}

func TestDecomposeMidnightEndEmitsNoNextDaySliver(t *testing.T) {
	clock := NewClock(time.UTC)
	blocks := DecomposeReservations(clock, []model.Activity{
		reservation("Evening Mixer", "room-a", msUTC(2024, time.June, 3, 20, 0), msUTC(2024, time.June, 4, 0, 0)),
	}, 6)
	if len(blocks) != 1 {
		t.Fatalf("expected 1 block, got %d", len(blocks))
	}
	if blocks[0].HourOffset != 14 || blocks[0].HourSpan != 4 {
		t.Errorf("offset %v span %v, want 14 and 4", blocks[0].HourOffset, blocks[0].HourSpan)
	}
}

func TestDecomposeDropsBlockEntirelyBeforeWindow(t *testing.T) {
	clock := NewClock(time.UTC)
	blocks := DecomposeReservations(clock, []model.Activity{
		reservation("Overnight Storage", "room-a", msUTC(2024, time.June, 3, 1, 0), msUTC(2024, time.June, 3, 5, 0)),
	}, 6)
	if len(blocks) != 0 {
		t.Fatalf("pre-window block should be dropped, got %d blocks", len(blocks))
	}
}

func TestDecomposeKeepsFractionalHours(t *testing.T) {
	clock := NewClock(time.UTC)
	blocks := DecomposeReservations(clock, []model.Activity{
		reservation("Rehearsal", "room-a", msUTC(2024, time.June, 3, 18, 30), msUTC(2024, time.June, 3, 20, 0)),
	}, 6)
	if len(blocks) != 1 {
		t.Fatalf("expected 1 block, got %d", len(blocks))
	}
	if blocks[0].HourOffset != 12.5 || blocks[0].HourSpan != 1.5 {
		t.Errorf("offset %v span %v, want 12.5 and 1.5", blocks[0].HourOffset, blocks[0].HourSpan)
	}
}

func TestGroupWeekOrdersDaysAndRooms(t *testing.T) {
	clock := NewClock(time.UTC)
	blocks := DecomposeReservations(clock, []model.Activity{
		reservation("B", "room-b", msUTC(2024, time.June, 4, 10, 0), msUTC(2024, time.June, 4, 11, 0)),
		reservation("A", "room-a", msUTC(2024, time.June, 4, 12, 0), msUTC(2024, time.June, 4, 13, 0)),
		reservation("C", "room-a", msUTC(2024, time.June, 7, 9, 0), msUTC(2024, time.June, 7, 10, 0)),
	}, 6)

	grid := GroupWeek(clock, blocks, msUTC(2024, time.June, 5, 0, 0))
	if grid.StartISO != "2024-06-02" {
		t.Fatalf("week should start on Sunday June 2, got %s", grid.StartISO)
	}
	tue := grid.Days[2]
	if tue.DateISO != "2024-06-04" || len(tue.Rooms) != 2 {
		t.Fatalf("Tuesday should hold two rooms, got %+v", tue)
	}
	if tue.Rooms[0].Room != "room-a" || tue.Rooms[1].Room != "room-b" {
		t.Errorf("rooms not sorted: %s, %s", tue.Rooms[0].Room, tue.Rooms[1].Room)
	}
	if len(grid.Days[5].Rooms) != 1 || grid.Days[5].Rooms[0].Blocks[0].Activity.Name != "C" {
		t.Errorf("Friday should hold the single room-a block")
	}
	for d, day := range grid.Days {
		if day.Weekday != d {
			t.Errorf("day %d carries weekday %d", d, day.Weekday)
		}
	}
}

func TestGroupRoomMonthFiltersOtherRooms(t *testing.T) {
	clock := NewClock(time.UTC)
	blocks := DecomposeReservations(clock, []model.Activity{
		reservation("Keep", "room-a", msUTC(2024, time.June, 10, 10, 0), msUTC(2024, time.June, 10, 11, 0)),
		reservation("Skip", "room-b", msUTC(2024, time.June, 10, 10, 0), msUTC(2024, time.June, 10, 11, 0)),
	}, 6)

	month := GroupRoomMonth(clock, blocks, "room-a", 2024, time.June)
	if len(month.Days) != 30 {
		t.Fatalf("June should hold 30 day slots, got %d", len(month.Days))
	}
	day := month.Days[9]
	if day.DateISO != "2024-06-10" {
		t.Fatalf("day 10 slot mislabeled: %s", day.DateISO)
	}
	if len(day.Blocks) != 1 || day.Blocks[0].Activity.Name != "Keep" {
		t.Errorf("expected only room-a's block, got %+v", day.Blocks)
	}
	for i, d := range month.Days {
		if i != 9 && len(d.Blocks) != 0 {
			t.Errorf("day %s should be empty", d.DateISO)
		}
	}
}
