package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/tams-cso/tams-club-cal-sub001/config"
	"github.com/tams-cso/tams-club-cal-sub001/internal/dto"
	"github.com/tams-cso/tams-club-cal-sub001/internal/model"
	"github.com/tams-cso/tams-club-cal-sub001/internal/repository"
	"github.com/tams-cso/tams-club-cal-sub001/internal/schedule"
)

var (
	ErrActivityNotFound    = errors.New("activity not found")
	ErrInvalidInterval     = errors.New("end must not be before start")
	ErrDurationExceeded    = errors.New("activity exceeds the maximum duration")
	ErrInvalidRoom         = errors.New("reservation requires a reservable room")
	ErrReservationConflict = errors.New("room already reserved for that time")
	ErrInvalidRepeatBound  = errors.New("weekly series requires a repeat-until date")

	// ErrConflictCheckFailed means availability could not be determined.
	// It is never treated as "no conflict": the write is refused.
	ErrConflictCheckFailed = errors.New("conflict check failed")
)

// ActivityService is the event and reservation business interface.
type ActivityService interface {
	Create(ctx context.Context, req *dto.CreateActivityRequest, callerID string) (*dto.SeriesResponse, error)
	GetByID(ctx context.Context, id string) (*model.Activity, error)
	Update(ctx context.Context, id string, req *dto.UpdateActivityRequest, callerID string) (*model.Activity, error)
	Delete(ctx context.Context, id string, callerID string) error
	DeleteSeries(ctx context.Context, groupID string, callerID string) error
	List(ctx context.Context, req *dto.ActivityListRequest) ([]dto.ActivitySummary, int64, error)
	CheckConflict(ctx context.Context, req *dto.CheckConflictRequest) (*dto.ConflictResponse, error)
}

type activityService struct {
	cfg    *config.Config
	repo   *repository.Repository
	clock  schedule.Clock
	rooms  map[string]bool
	logger *zap.Logger
}

// NewActivityService creates the ActivityService.
func NewActivityService(cfg *config.Config, repo *repository.Repository, clock schedule.Clock, logger *zap.Logger) ActivityService {
	rooms := make(map[string]bool, len(cfg.Rooms))
	for _, r := range cfg.Rooms {
		rooms[r.Value] = true
	}
	return &activityService{
		cfg:    cfg,
		repo:   repo,
		clock:  clock,
		rooms:  rooms,
		logger: logger,
	}
}

func (s *activityService) Create(ctx context.Context, req *dto.CreateActivityRequest, callerID string) (*dto.SeriesResponse, error) {
	base := &model.Activity{
		Name:          req.Name,
		ClubName:      req.ClubName,
		Description:   req.Description,
		StartMs:       req.StartMs,
		EndMs:         req.EndMs,
		NoEnd:         req.NoEnd,
		AllDay:        req.AllDay,
		Location:      req.Location,
		IsReservation: req.IsReservation,
		IsPublic:      true,
	}
	if req.IsPublic != nil {
		base.IsPublic = *req.IsPublic
	}
	normalizeActivity(base)
	base.CreatedBy = &callerID

	if err := s.validateInterval(base); err != nil {
		return nil, err
	}
	if err := s.checkRoomFree(ctx, base, ""); err != nil {
		return nil, err
	}

	acts := []*model.Activity{base}

	if req.RepeatsWeekly {
		if req.RepeatUntilMs == 0 || req.RepeatUntilMs == schedule.InvalidInstant {
			return nil, ErrInvalidRepeatBound
		}
		groupID := uuid.New().String()
		until := req.RepeatUntilMs
		base.RepeatingGroupID = &groupID
		base.RepeatUntilMs = &until

		// Every occurrence must clear the conflict check before anything
		// is written; the first collision aborts the whole series.
		for _, occ := range schedule.EnumerateWeekly(s.clock, base.StartMs, base.EndMs, until) {
			copyAct := *base
			copyAct.StartMs = occ.StartMs
			copyAct.EndMs = occ.EndMs
			if err := s.checkRoomFree(ctx, &copyAct, ""); err != nil {
				return nil, err
			}
			acts = append(acts, &copyAct)
		}
	}

	if err := s.repo.Activity.CreateBatch(ctx, acts); err != nil {
		s.logger.Error("create activities failed", zap.Error(err))
		return nil, err
	}

	resp := &dto.SeriesResponse{Count: len(acts)}
	if base.RepeatingGroupID != nil {
		resp.GroupID = *base.RepeatingGroupID
	}
	for _, a := range acts {
		resp.Activities = append(resp.Activities, toActivitySummary(a))
	}
	return resp, nil
}

func (s *activityService) GetByID(ctx context.Context, id string) (*model.Activity, error) {
	act, err := s.repo.Activity.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrActivityNotFound
		}
		s.logger.Error("look up activity failed", zap.Error(err))
		return nil, err
	}
	return act, nil
}

func (s *activityService) Update(ctx context.Context, id string, req *dto.UpdateActivityRequest, callerID string) (*model.Activity, error) {
	act, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		act.Name = *req.Name
	}
	if req.ClubName != nil {
		act.ClubName = *req.ClubName
	}
	if req.Description != nil {
		act.Description = *req.Description
	}
	if req.StartMs != nil {
		act.StartMs = *req.StartMs
	}
	if req.EndMs != nil {
		act.EndMs = *req.EndMs
	}
	if req.NoEnd != nil {
		act.NoEnd = *req.NoEnd
	}
	if req.AllDay != nil {
		act.AllDay = *req.AllDay
	}
	if req.Location != nil {
		act.Location = *req.Location
	}
	if req.IsReservation != nil {
		act.IsReservation = *req.IsReservation
	}
	if req.IsPublic != nil {
		act.IsPublic = *req.IsPublic
	}
	normalizeActivity(act)
	act.UpdatedBy = &callerID

	if err := s.validateInterval(act); err != nil {
		return nil, err
	}
	// The activity's own row must not block its own move.
	if err := s.checkRoomFree(ctx, act, act.ActivityID); err != nil {
		return nil, err
	}

	if err := s.repo.Activity.Update(ctx, act); err != nil {
		s.logger.Error("update activity failed", zap.Error(err))
		return nil, err
	}
	return act, nil
}

func (s *activityService) Delete(ctx context.Context, id string, callerID string) error {
	if _, err := s.GetByID(ctx, id); err != nil {
		return err
	}
	if err := s.repo.Activity.Delete(ctx, id, callerID); err != nil {
		s.logger.Error("delete activity failed", zap.Error(err))
		return err
	}
	return nil
}

func (s *activityService) DeleteSeries(ctx context.Context, groupID string, callerID string) error {
	if err := s.repo.Activity.DeleteGroup(ctx, groupID, callerID); err != nil {
		s.logger.Error("delete series failed", zap.Error(err))
		return err
	}
	return nil
}

func (s *activityService) List(ctx context.Context, req *dto.ActivityListRequest) ([]dto.ActivitySummary, int64, error) {
	filter := repository.ActivityFilter{
		ClubName:        req.ClubName,
		Location:        req.Location,
		ReservationOnly: req.ReservationOnly,
		FromMs:          req.FromMs,
		ToMs:            req.ToMs,
	}
	acts, total, err := s.repo.Activity.List(ctx, filter, req.GetOffset(), req.GetPageSize())
	if err != nil {
		s.logger.Error("list activities failed", zap.Error(err))
		return nil, 0, err
	}
	out := make([]dto.ActivitySummary, 0, len(acts))
	for i := range acts {
		out = append(out, toActivitySummary(&acts[i]))
	}
	return out, total, nil
}

// CheckConflict probes a room without writing. Sentinel locations are never
// occupied, so they always come back free.
func (s *activityService) CheckConflict(ctx context.Context, req *dto.CheckConflictRequest) (*dto.ConflictResponse, error) {
	if req.EndMs < req.StartMs {
		return nil, ErrInvalidInterval
	}
	if schedule.IsSentinelLocation(req.Location) {
		return &dto.ConflictResponse{Conflict: false}, nil
	}

	blocking, err := s.repo.Activity.ListOverlapping(ctx, req.Location, req.StartMs, req.EndMs, req.ExcludeID)
	if err != nil {
		s.logger.Error("conflict query failed", zap.Error(err))
		return nil, ErrConflictCheckFailed
	}

	resp := &dto.ConflictResponse{Conflict: len(blocking) > 0}
	for i := range blocking {
		resp.Blocking = append(resp.Blocking, toActivitySummary(&blocking[i]))
	}
	return resp, nil
}

// ── internal helpers ──

// normalizeActivity settles the derived fields before validation. An
// open-ended activity stores its start as its end so range queries stay
// well-formed.
func normalizeActivity(act *model.Activity) {
	if act.Location == "" {
		act.Location = schedule.LocationNone
	}
	if act.NoEnd {
		act.EndMs = act.StartMs
	}
	if schedule.IsSentinelLocation(act.Location) {
		act.IsReservation = false
	}
}

func (s *activityService) validateInterval(act *model.Activity) error {
	if act.StartMs == schedule.InvalidInstant || act.EndMs == schedule.InvalidInstant {
		return ErrInvalidInterval
	}
	if act.EndMs < act.StartMs {
		return ErrInvalidInterval
	}
	if act.EndMs-act.StartMs > schedule.MaxActivityDurationMs {
		return ErrDurationExceeded
	}
	if act.IsReservation {
		if schedule.IsSentinelLocation(act.Location) {
			return ErrInvalidRoom
		}
		if len(s.rooms) > 0 && !s.rooms[act.Location] {
			return ErrInvalidRoom
		}
	}
	return nil
}

// checkRoomFree refuses the write when the room is taken, and also when
// availability cannot be determined.
func (s *activityService) checkRoomFree(ctx context.Context, act *model.Activity, excludeID string) error {
	if !act.IsReservation || schedule.IsSentinelLocation(act.Location) {
		return nil
	}
	blocking, err := s.repo.Activity.ListOverlapping(ctx, act.Location, act.StartMs, act.EndMs, excludeID)
	if err != nil {
		s.logger.Error("conflict query failed", zap.Error(err))
		return ErrConflictCheckFailed
	}
	if len(blocking) > 0 {
		return ErrReservationConflict
	}
	return nil
}

func toActivitySummary(act *model.Activity) dto.ActivitySummary {
	return dto.ActivitySummary{
		ID:            act.ActivityID,
		Name:          act.Name,
		ClubName:      act.ClubName,
		StartMs:       act.StartMs,
		EndMs:         act.EndMs,
		NoEnd:         act.NoEnd,
		AllDay:        act.AllDay,
		Location:      act.Location,
		IsReservation: act.IsReservation,
	}
}
