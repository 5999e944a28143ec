package schedule

import (
	"testing"
	"time"

	"github.com/tams-cso/tams-club-cal-sub001/internal/model"
)

func activity(name string, startMs, endMs int64) model.Activity {
	return model.Activity{Name: name, StartMs: startMs, EndMs: endMs}
}

func TestSplitSameDayPassesThroughUnchanged(t *testing.T) {
	clock := NewClock(time.UTC)
	a := activity("Chess Night", msUTC(2024, time.June, 3, 18, 0), msUTC(2024, time.June, 3, 20, 0))
	segs := SplitActivities(clock, []model.Activity{a})
	if len(segs) != 1 {
		t.Fatalf("expected 1 segment, got %d", len(segs))
	}
	s := segs[0]
	if s.Name != "Chess Night" || s.DayIndex != 1 || s.TotalDays != 1 {
		t.Errorf("same-day activity must not be relabelled: %+v", s)
	}
	if s.StartMs != a.StartMs || s.EndMs != a.EndMs {
		t.Errorf("same-day activity boundaries changed: %+v", s)
	}
}

func TestSplitEndOnClosingMidnightDoesNotSpill(t *testing.T) {
	clock := NewClock(time.UTC)
	// Ends exactly on the midnight that closes its starting day.
	a := activity("Late Rehearsal", msUTC(2024, time.June, 3, 21, 0), msUTC(2024, time.June, 4, 0, 0))
	segs := SplitActivities(clock, []model.Activity{a})
	if len(segs) != 1 {
		t.Fatalf("expected 1 segment, got %d", len(segs))
	}
	if segs[0].Name != "Late Rehearsal" || segs[0].TotalDays != 1 {
		t.Errorf("midnight-terminated activity must stay unsplit: %+v", segs[0])
	}
}

func TestSplitTwentySevenHourSpanGivesThreeSegments(t *testing.T) {
	clock := NewClock(time.UTC)
	start := msUTC(2024, time.March, 10, 23, 0)
	end := msUTC(2024, time.March, 12, 2, 0)
	segs := SplitActivities(clock, []model.Activity{activity("Hackathon", start, end)})
	if len(segs) != 3 {
		t.Fatalf("expected 3 segments, got %d", len(segs))
	}
	want := []struct {
		name           string
		startMs, endMs int64
		allDay         bool
	}{
		{"Hackathon (Day 1/3)", start, msUTC(2024, time.March, 11, 0, 0), false},
		{"Hackathon (Day 2/3)", msUTC(2024, time.March, 11, 0, 0), msUTC(2024, time.March, 12, 0, 0), true},
		{"Hackathon (Day 3/3)", msUTC(2024, time.March, 12, 0, 0), end, false},
	}
	for i, w := range want {
		got := segs[i]
		if got.Name != w.name {
			t.Errorf("segment %d: name %q, want %q", i, got.Name, w.name)
		}
		if got.StartMs != w.startMs || got.EndMs != w.endMs {
			t.Errorf("segment %d: boundaries [%d,%d), want [%d,%d)", i, got.StartMs, got.EndMs, w.startMs, w.endMs)
		}
		if got.AllDay != w.allDay {
			t.Errorf("segment %d: allDay %v, want %v", i, got.AllDay, w.allDay)
		}
		if got.DayIndex != i+1 || got.TotalDays != 3 {
			t.Errorf("segment %d: counter %d/%d", i, got.DayIndex, got.TotalDays)
		}
	}
}

func TestSplitMidnightEndAfterFullDayCountsTwoSegments(t *testing.T) {
	clock := NewClock(time.UTC)
	// Monday 10:00 through Wednesday 00:00: a partial Monday and a full
	// Tuesday, nothing on Wednesday.
	segs := SplitActivities(clock, []model.Activity{
		activity("Retreat", msUTC(2024, time.June, 3, 10, 0), msUTC(2024, time.June, 5, 0, 0)),
	})
	if len(segs) != 2 {
		t.Fatalf("expected 2 segments, got %d", len(segs))
	}
	if segs[0].AllDay {
		t.Error("partial first day must not be all-day")
	}
	if !segs[1].AllDay {
		t.Error("full middle day ending at midnight must be all-day")
	}
	if segs[1].EndMs != msUTC(2024, time.June, 5, 0, 0) {
		t.Errorf("last segment must close on the final midnight, got %d", segs[1].EndMs)
	}
}

func TestSplitFullDaysBetweenMidnightsAreAllDay(t *testing.T) {
	clock := NewClock(time.UTC)
	// Three full civil days bounded by midnights on both sides.
	segs := SplitActivities(clock, []model.Activity{
		activity("Spring Camp", msUTC(2024, time.June, 3, 0, 0), msUTC(2024, time.June, 6, 0, 0)),
	})
	if len(segs) != 3 {
		t.Fatalf("expected 3 segments, got %d", len(segs))
	}
	for i, s := range segs {
		if !s.AllDay {
			t.Errorf("segment %d of a midnight-bounded span must be all-day", i)
		}
	}
}

func TestSplitNoEndActivityStaysOnItsDay(t *testing.T) {
	clock := NewClock(time.UTC)
	a := activity("Info Table", msUTC(2024, time.June, 3, 11, 0), 0)
	a.NoEnd = true
	segs := SplitActivities(clock, []model.Activity{a})
	if len(segs) != 1 || segs[0].TotalDays != 1 {
		t.Fatalf("open-ended activity must render as a single same-day segment: %+v", segs)
	}
	if segs[0].EndMs != a.StartMs {
		t.Errorf("open-ended activity should display zero duration, got end %d", segs[0].EndMs)
	}
}

func TestSplitOutputOrderedBySegmentStart(t *testing.T) {
	clock := NewClock(time.UTC)
	segs := SplitActivities(clock, []model.Activity{
		activity("B", msUTC(2024, time.June, 3, 20, 0), msUTC(2024, time.June, 4, 4, 0)),
		activity("A", msUTC(2024, time.June, 3, 9, 0), msUTC(2024, time.June, 3, 10, 0)),
	})
	for i := 1; i < len(segs); i++ {
		if segs[i-1].StartMs > segs[i].StartMs {
			t.Fatalf("segments out of order at %d: %d > %d", i, segs[i-1].StartMs, segs[i].StartMs)
		}
	}
	if segs[0].Name != "A" {
		t.Errorf("earliest segment should come first, got %q", segs[0].Name)
	}
}
