package service

import (
	"context"
	"time"

	ics "github.com/arran4/golang-ical"
	"go.uber.org/zap"

	"github.com/tams-cso/tams-club-cal-sub001/config"
	"github.com/tams-cso/tams-club-cal-sub001/internal/repository"
	"github.com/tams-cso/tams-club-cal-sub001/internal/schedule"
)

// ── ICS feed ────────────────────────────────────────────────
//
// The public feed exposes every public activity in an RFC 5545 calendar so
// members can subscribe from their own calendar apps. Instants are emitted
// in UTC; subscribers' clients localize them.
// ─────────────────────────────────────────────────────────────

// feedWindow bounds the feed around now: a little history, a lot of future.
const (
	feedLookBehind = 30 * 24 * time.Hour
	feedLookAhead  = 365 * 24 * time.Hour
)

// ICSService renders the public calendar feed.
type ICSService interface {
	PublicFeed(ctx context.Context, nowMs int64) (string, error)
}

type icsService struct {
	cfg    *config.Config
	repo   *repository.Repository
	clock  schedule.Clock
	logger *zap.Logger
}

// NewICSService creates the ICSService.
func NewICSService(cfg *config.Config, repo *repository.Repository, clock schedule.Clock, logger *zap.Logger) ICSService {
	return &icsService{cfg: cfg, repo: repo, clock: clock, logger: logger}
}

func (s *icsService) PublicFeed(ctx context.Context, nowMs int64) (string, error) {
	now := time.UnixMilli(nowMs)
	from := now.Add(-feedLookBehind).UnixMilli()
	to := now.Add(feedLookAhead).UnixMilli()

	acts, err := s.repo.Activity.ListInRange(ctx, from, to, true)
	if err != nil {
		s.logger.Error("load feed activities failed", zap.Error(err))
		return "", err
	}

	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId("-//TAMS Club Calendar//EN")

	for i := range acts {
		a := &acts[i]
		evt := cal.AddEvent(a.ActivityID)
		evt.SetDtStampTime(now.UTC())
		evt.SetStartAt(time.UnixMilli(a.StartMs).UTC())
		evt.SetEndAt(time.UnixMilli(a.DisplayEndMs()).UTC())
		evt.SetSummary(a.Name)
		if a.Description != "" {
			evt.SetDescription(a.Description)
		}
		if a.ClubName != "" {
			evt.SetOrganizer(a.ClubName)
		}
		if !schedule.IsSentinelLocation(a.Location) {
			evt.SetLocation(a.Location)
		}
	}

	return cal.Serialize(), nil
}
