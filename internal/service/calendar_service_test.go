package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/tams-cso/tams-club-cal-sub001/internal/model"
	"github.com/tams-cso/tams-club-cal-sub001/internal/repository"
	"github.com/tams-cso/tams-club-cal-sub001/internal/schedule"
)

func setupTestCalendarService() (CalendarService, *mockActivityRepo) {
	actRepo := newMockActivityRepo()
	repo := &repository.Repository{
		User:     newMockUserRepo(),
		Club:     newMockClubRepo(),
		Activity: actRepo,
	}
	clock := schedule.NewClock(time.UTC)
	svc := NewCalendarService(testConfig(), repo, clock, zap.NewNop())
	return svc, actRepo
}

func TestCalendarService_MonthView_SplitsAcrossDays(t *testing.T) {
	svc, actRepo := setupTestCalendarService()
	actRepo.activities["act-001"] = &model.Activity{
		ActivityID: "act-001",
		Name:       "Hackathon",
		IsPublic:   true,
		StartMs:    ms(2024, time.June, 3, 23, 0),
		EndMs:      ms(2024, time.June, 5, 2, 0),
	}

	grid, err := svc.MonthView(context.Background(), 2024, time.June, ms(2024, time.June, 1, 12, 0))
	if err != nil {
		t.Fatalf("MonthView should succeed: %v", err)
	}

	names := make(map[string]string)
	for _, cell := range grid.Cells {
		for _, seg := range cell.Segments {
			names[cell.DateISO] = seg.Name
		}
	}
	if names["2024-06-03"] != "Hackathon (Day 1/3)" {
		t.Errorf("June 3 chip: %q", names["2024-06-03"])
	}
	if names["2024-06-04"] != "Hackathon (Day 2/3)" {
		t.Errorf("June 4 chip: %q", names["2024-06-04"])
	}
	if names["2024-06-05"] != "Hackathon (Day 3/3)" {
		t.Errorf("June 5 chip: %q", names["2024-06-05"])
	}
}

func TestCalendarService_MonthView_HidesPrivateActivities(t *testing.T) {
	svc, actRepo := setupTestCalendarService()
	actRepo.activities["act-001"] = &model.Activity{
		ActivityID: "act-001",
		Name:       "Officers Only",
		IsPublic:   false,
		StartMs:    ms(2024, time.June, 10, 18, 0),
		EndMs:      ms(2024, time.June, 10, 19, 0),
	}

	grid, err := svc.MonthView(context.Background(), 2024, time.June, 0)
	if err != nil {
		t.Fatalf("MonthView should succeed: %v", err)
	}
	for _, cell := range grid.Cells {
		if len(cell.Segments) != 0 {
			t.Fatalf("private activity leaked into cell %s", cell.DateISO)
		}
	}
}

func TestCalendarService_WeekReservations(t *testing.T) {
	svc, actRepo := setupTestCalendarService()
	actRepo.activities["act-001"] = &model.Activity{
		ActivityID:    "act-001",
		Name:          "Lock-in",
		Location:      "room-a",
		IsReservation: true,
		IsPublic:      true,
		StartMs:       ms(2024, time.June, 3, 22, 0),
		EndMs:         ms(2024, time.June, 4, 7, 0),
	}

	grid, err := svc.WeekReservations(context.Background(), ms(2024, time.June, 5, 12, 0))
	if err != nil {
		t.Fatalf("WeekReservations should succeed: %v", err)
	}
	if grid.StartISO != "2024-06-02" {
		t.Fatalf("week should start Sunday June 2, got %s", grid.StartISO)
	}

	mon := grid.Days[1]
	if len(mon.Rooms) != 1 || len(mon.Rooms[0].Blocks) != 1 {
		t.Fatalf("Monday should hold one block, got %+v", mon.Rooms)
	}
	if got := mon.Rooms[0].Blocks[0].HourOffset; got != 16 {
		t.Errorf("Monday block offset %v, want 16", got)
	}

	tue := grid.Days[2]
	if len(tue.Rooms) != 1 || len(tue.Rooms[0].Blocks) != 1 {
		t.Fatalf("Tuesday should hold the clipped block, got %+v", tue.Rooms)
	}
	if b := tue.Rooms[0].Blocks[0]; b.HourOffset != 0 || b.HourSpan != 1 {
		t.Errorf("Tuesday block offset %v span %v, want 0 and 1", b.HourOffset, b.HourSpan)
	}
}

func TestCalendarService_RoomMonth_UnknownRoom(t *testing.T) {
	svc, _ := setupTestCalendarService()

	_, err := svc.RoomMonthReservations(context.Background(), "room-z", 2024, time.June)
	if !errors.Is(err, ErrUnknownRoom) {
		t.Errorf("expected ErrUnknownRoom, got: %v", err)
	}
}

func TestCalendarService_RoomMonth(t *testing.T) {
	svc, actRepo := setupTestCalendarService()
	actRepo.activities["act-001"] = &model.Activity{
		ActivityID:    "act-001",
		Name:          "Robotics Build",
		Location:      "room-a",
		IsReservation: true,
		StartMs:       ms(2024, time.June, 10, 14, 0),
		EndMs:         ms(2024, time.June, 10, 16, 0),
	}
	actRepo.activities["act-002"] = &model.Activity{
		ActivityID:    "act-002",
		Name:          "Other Room",
		Location:      "room-b",
		IsReservation: true,
		StartMs:       ms(2024, time.June, 10, 14, 0),
		EndMs:         ms(2024, time.June, 10, 16, 0),
	}

	grid, err := svc.RoomMonthReservations(context.Background(), "room-a", 2024, time.June)
	if err != nil {
		t.Fatalf("RoomMonthReservations should succeed: %v", err)
	}
	if len(grid.Days) != 30 {
		t.Fatalf("June should hold 30 day slots, got %d", len(grid.Days))
	}
	day := grid.Days[9]
	if len(day.Blocks) != 1 || day.Blocks[0].Activity.Name != "Robotics Build" {
		t.Errorf("June 10 should hold only room-a's block, got %+v", day.Blocks)
	}
}
