package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tams-cso/tams-club-cal-sub001/internal/dto"
	"github.com/tams-cso/tams-club-cal-sub001/internal/service"
	"github.com/tams-cso/tams-club-cal-sub001/pkg/response"
)

// ActivityHandler serves the event and reservation endpoints.
type ActivityHandler struct {
	activitySvc service.ActivityService
}

// NewActivityHandler creates the ActivityHandler.
func NewActivityHandler(activitySvc service.ActivityService) *ActivityHandler {
	return &ActivityHandler{activitySvc: activitySvc}
}

// ListActivities lists activities with paging and filters.
// GET /api/v1/activities
func (h *ActivityHandler) ListActivities(c *gin.Context) {
	var req dto.ActivityListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, 10001, "invalid query parameters")
		return
	}

	acts, total, err := h.activitySvc.List(c.Request.Context(), &req)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OKPage(c, acts, total, req.GetPage(), req.GetPageSize())
}

// GetActivity returns one activity.
// GET /api/v1/activities/:id
func (h *ActivityHandler) GetActivity(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 10001, "activity id required")
		return
	}

	act, err := h.activitySvc.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleActivityError(c, err)
		return
	}

	response.OK(c, act)
}

// CreateActivity creates an event, a reservation, or a weekly series.
// POST /api/v1/activities
func (h *ActivityHandler) CreateActivity(c *gin.Context) {
	var req dto.CreateActivityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "invalid request body")
		return
	}

	callerID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	series, err := h.activitySvc.Create(c.Request.Context(), &req, callerID)
	if err != nil {
		h.handleActivityError(c, err)
		return
	}

	response.Created(c, series)
}

// UpdateActivity edits an activity.
// PUT /api/v1/activities/:id
func (h *ActivityHandler) UpdateActivity(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 10001, "activity id required")
		return
	}

	var req dto.UpdateActivityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "invalid request body")
		return
	}

	callerID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	act, err := h.activitySvc.Update(c.Request.Context(), id, &req, callerID)
	if err != nil {
		h.handleActivityError(c, err)
		return
	}

	response.OK(c, act)
}

// DeleteActivity removes one activity.
// DELETE /api/v1/activities/:id
func (h *ActivityHandler) DeleteActivity(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 10001, "activity id required")
		return
	}

	callerID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	if err := h.activitySvc.Delete(c.Request.Context(), id, callerID); err != nil {
		h.handleActivityError(c, err)
		return
	}

	response.OK(c, nil)
}

// DeleteSeries removes a whole weekly series.
// DELETE /api/v1/activity-series/:groupId
func (h *ActivityHandler) DeleteSeries(c *gin.Context) {
	groupID := c.Param("groupId")
	if groupID == "" {
		response.BadRequest(c, 10001, "series group id required")
		return
	}

	callerID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	if err := h.activitySvc.DeleteSeries(c.Request.Context(), groupID, callerID); err != nil {
		h.handleActivityError(c, err)
		return
	}

	response.OK(c, nil)
}

// CheckConflict probes room availability without creating anything.
// POST /api/v1/activities/check-conflict
func (h *ActivityHandler) CheckConflict(c *gin.Context) {
	var req dto.CheckConflictRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "invalid request body")
		return
	}

	result, err := h.activitySvc.CheckConflict(c.Request.Context(), &req)
	if err != nil {
		h.handleActivityError(c, err)
		return
	}

	response.OK(c, result)
}

func (h *ActivityHandler) handleActivityError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrActivityNotFound):
		response.NotFound(c, 13001, "activity not found")
	case errors.Is(err, service.ErrInvalidInterval):
		response.BadRequest(c, 13002, "end must not be before start")
	case errors.Is(err, service.ErrDurationExceeded):
		response.BadRequest(c, 13003, "activity exceeds the maximum duration")
	case errors.Is(err, service.ErrInvalidRoom):
		response.BadRequest(c, 13004, "reservation requires a reservable room")
	case errors.Is(err, service.ErrInvalidRepeatBound):
		response.BadRequest(c, 13005, "weekly series requires a repeat-until date")
	case errors.Is(err, service.ErrReservationConflict):
		response.Conflict(c, 13006, "room already reserved for that time")
	case errors.Is(err, service.ErrConflictCheckFailed):
		response.Error(c, http.StatusServiceUnavailable, 13007, "availability could not be determined, try again")
	default:
		response.InternalError(c)
	}
}
