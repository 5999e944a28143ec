package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/tams-cso/tams-club-cal-sub001/config"
	"github.com/tams-cso/tams-club-cal-sub001/internal/repository"
	"github.com/tams-cso/tams-club-cal-sub001/internal/schedule"
)

var ErrUnknownRoom = errors.New("unknown room")

// CalendarService lays out the month, week and room grids.
type CalendarService interface {
	MonthView(ctx context.Context, year int, month time.Month, nowMs int64) (*schedule.MonthGrid, error)
	WeekReservations(ctx context.Context, anchorMs int64) (*schedule.WeekGrid, error)
	RoomMonthReservations(ctx context.Context, room string, year int, month time.Month) (*schedule.MonthReservations, error)
	Rooms() []config.Room
}

type calendarService struct {
	cfg    *config.Config
	repo   *repository.Repository
	clock  schedule.Clock
	logger *zap.Logger
}

// NewCalendarService creates the CalendarService.
func NewCalendarService(cfg *config.Config, repo *repository.Repository, clock schedule.Clock, logger *zap.Logger) CalendarService {
	return &calendarService{cfg: cfg, repo: repo, clock: clock, logger: logger}
}

// MonthView builds the public month grid. The fetch range covers the whole
// grid including the neighbor-month cells, so chips on those cells render too.
func (s *calendarService) MonthView(ctx context.Context, year int, month time.Month, nowMs int64) (*schedule.MonthGrid, error) {
	first := s.clock.CivilDate(year, month, 1)
	gridStart := first.AddDays(-first.Weekday())
	gridEnd := gridStart.AddDays(42)

	acts, err := s.repo.Activity.ListInRange(ctx, gridStart.UnixMilli(), gridEnd.UnixMilli(), true)
	if err != nil {
		s.logger.Error("load month activities failed", zap.Error(err))
		return nil, err
	}

	segments := schedule.SplitActivities(s.clock, acts)
	grid := schedule.LayoutMonth(s.clock, year, month, segments, nowMs, s.cfg.Calendar.DayCapacity)
	return &grid, nil
}

// WeekReservations builds the Sunday-first reservation week containing the
// anchor instant.
func (s *calendarService) WeekReservations(ctx context.Context, anchorMs int64) (*schedule.WeekGrid, error) {
	weekStart := s.clock.ToCivil(anchorMs).StartOfWeek()
	if !weekStart.Valid() {
		return nil, ErrInvalidInterval
	}
	weekEnd := weekStart.AddDays(7)

	acts, err := s.repo.Activity.ListReservationsInRange(ctx, weekStart.UnixMilli(), weekEnd.UnixMilli())
	if err != nil {
		s.logger.Error("load week reservations failed", zap.Error(err))
		return nil, err
	}

	blocks := schedule.DecomposeReservations(s.clock, acts, s.cfg.Calendar.VisibleStartHour)
	grid := schedule.GroupWeek(s.clock, blocks, anchorMs)
	return &grid, nil
}

// RoomMonthReservations builds one room's month of reservation blocks.
func (s *calendarService) RoomMonthReservations(ctx context.Context, room string, year int, month time.Month) (*schedule.MonthReservations, error) {
	if !s.knownRoom(room) {
		return nil, ErrUnknownRoom
	}
	first := s.clock.CivilDate(year, month, 1)
	next := first.AddMonths(1)

	acts, err := s.repo.Activity.ListRoomReservationsInRange(ctx, room, first.UnixMilli(), next.UnixMilli())
	if err != nil {
		s.logger.Error("load room reservations failed", zap.Error(err))
		return nil, err
	}

	blocks := schedule.DecomposeReservations(s.clock, acts, s.cfg.Calendar.VisibleStartHour)
	grid := schedule.GroupRoomMonth(s.clock, blocks, room, year, month)
	return &grid, nil
}

// Rooms lists the reservable rooms from configuration.
func (s *calendarService) Rooms() []config.Room {
	return s.cfg.Rooms
}

func (s *calendarService) knownRoom(room string) bool {
	if len(s.cfg.Rooms) == 0 {
		return !schedule.IsSentinelLocation(room)
	}
	for _, r := range s.cfg.Rooms {
		if r.Value == room {
			return true
		}
	}
	return false
}
