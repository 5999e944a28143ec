package schedule

import (
	"testing"
	"time"
)

func mustClock(t *testing.T, name string) Clock {
	t.Helper()
	c, err := LoadClock(name)
	if err != nil {
		t.Fatalf("LoadClock(%s): %v", name, err)
	}
	return c
}

func msUTC(year int, month time.Month, day, hour, min int) int64 {
	return time.Date(year, month, day, hour, min, 0, 0, time.UTC).UnixMilli()
}

func TestMomentWeekdaySundayIsZero(t *testing.T) {
	clock := NewClock(time.UTC)
	// 2024-06-02 is a Sunday.
	m := clock.ToCivil(msUTC(2024, time.June, 2, 12, 0))
	if m.Weekday() != 0 {
		t.Errorf("expected Sunday weekday 0, got %d", m.Weekday())
	}
	sat := m.AddDays(6)
	if sat.Weekday() != 6 {
		t.Errorf("expected Saturday weekday 6, got %d", sat.Weekday())
	}
}

func TestMomentStartOfWeekLandsOnSunday(t *testing.T) {
	clock := NewClock(time.UTC)
	// 2024-06-05 is a Wednesday.
	m := clock.ToCivil(msUTC(2024, time.June, 5, 9, 30))
	ws := m.StartOfWeek()
	if ws.Weekday() != 0 || !ws.IsMidnight() {
		t.Errorf("week start not a Sunday midnight: %s", ws.Format(time.RFC3339))
	}
	if ws.Day() != 2 {
		t.Errorf("expected week start June 2, got day %d", ws.Day())
	}
}

func TestMomentMidnightDetection(t *testing.T) {
	clock := NewClock(time.UTC)
	if !clock.ToCivil(msUTC(2024, time.June, 3, 0, 0)).IsMidnight() {
		t.Error("00:00 should be midnight")
	}
	if clock.ToCivil(msUTC(2024, time.June, 3, 0, 1)).IsMidnight() {
		t.Error("00:01 should not be midnight")
	}
}

func TestInvalidMomentComparesFalse(t *testing.T) {
	clock := NewClock(time.UTC)
	bad := clock.ToCivil(InvalidInstant)
	good := clock.ToCivil(msUTC(2024, time.June, 3, 10, 0))
	if bad.Valid() {
		t.Fatal("invalid instant should yield an invalid moment")
	}
	if bad.SameDay(good) || good.SameDay(bad) || bad.Before(good) || good.After(bad) {
		t.Error("comparisons involving an invalid moment must report false")
	}
	if bad.UnixMilli() != InvalidInstant {
		t.Errorf("invalid moment should round-trip the sentinel, got %d", bad.UnixMilli())
	}
}

func TestCivilFieldsFollowConfiguredZone(t *testing.T) {
	clock := mustClock(t, "America/Chicago")
	// 2024-06-03T03:00Z is still June 2, 22:00 in Chicago (CDT).
	m := clock.ToCivil(msUTC(2024, time.June, 3, 3, 0))
	if m.Day() != 2 || m.Hour() != 22 {
		t.Errorf("expected June 2 22:00 civil, got day %d hour %d", m.Day(), m.Hour())
	}
}

func TestAddDaysKeepsWallClockAcrossDST(t *testing.T) {
	clock := mustClock(t, "America/Chicago")
	// 2024-03-09 18:00 CST; the next civil day is only 23 hours long.
	midnight := clock.CivilDate(2024, time.March, 9)
	start := clock.ToCivil(midnight.UnixMilli() + 18*msPerHour)
	next := start.AddDays(1)
	if next.Hour() != 18 || next.Day() != 10 {
		t.Errorf("expected March 10 18:00 civil, got day %d hour %d", next.Day(), next.Hour())
	}
	if diff := next.UnixMilli() - start.UnixMilli(); diff != 23*msPerHour {
		t.Errorf("expected a 23h absolute step over spring forward, got %dh", diff/msPerHour)
	}
}
