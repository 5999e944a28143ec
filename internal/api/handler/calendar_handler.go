package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/tams-cso/tams-club-cal-sub001/internal/dto"
	"github.com/tams-cso/tams-club-cal-sub001/internal/service"
	"github.com/tams-cso/tams-club-cal-sub001/pkg/response"
)

// CalendarHandler serves the calendar grid and feed endpoints. They are
// public: the calendar is the site's front page.
type CalendarHandler struct {
	calendarSvc service.CalendarService
	icsSvc      service.ICSService
}

// NewCalendarHandler creates the CalendarHandler.
func NewCalendarHandler(calendarSvc service.CalendarService, icsSvc service.ICSService) *CalendarHandler {
	return &CalendarHandler{calendarSvc: calendarSvc, icsSvc: icsSvc}
}

// MonthView returns the laid-out month grid.
// GET /api/v1/calendar/month?year=2024&month=6
func (h *CalendarHandler) MonthView(c *gin.Context) {
	var req dto.MonthViewRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, 10001, "invalid query parameters")
		return
	}

	grid, err := h.calendarSvc.MonthView(c.Request.Context(), req.Year, time.Month(req.Month), time.Now().UnixMilli())
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, grid)
}

// WeekReservations returns the reservation week containing the anchor.
// GET /api/v1/calendar/reservations/week?anchor_ms=...
func (h *CalendarHandler) WeekReservations(c *gin.Context) {
	var req dto.WeekViewRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, 10001, "invalid query parameters")
		return
	}

	grid, err := h.calendarSvc.WeekReservations(c.Request.Context(), req.AnchorMs)
	if err != nil {
		if errors.Is(err, service.ErrInvalidInterval) {
			response.BadRequest(c, 10001, "invalid anchor instant")
			return
		}
		response.InternalError(c)
		return
	}

	response.OK(c, grid)
}

// RoomMonthReservations returns one room's month of reservations.
// GET /api/v1/calendar/reservations/room?room=room-a&year=2024&month=6
func (h *CalendarHandler) RoomMonthReservations(c *gin.Context) {
	var req dto.RoomMonthRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, 10001, "invalid query parameters")
		return
	}

	grid, err := h.calendarSvc.RoomMonthReservations(c.Request.Context(), req.Room, req.Year, time.Month(req.Month))
	if err != nil {
		if errors.Is(err, service.ErrUnknownRoom) {
			response.NotFound(c, 14001, "unknown room")
			return
		}
		response.InternalError(c)
		return
	}

	response.OK(c, grid)
}

// ListRooms returns the reservable rooms.
// GET /api/v1/calendar/rooms
func (h *CalendarHandler) ListRooms(c *gin.Context) {
	response.OK(c, gin.H{"rooms": h.calendarSvc.Rooms()})
}

// PublicFeed serves the iCalendar subscription feed.
// GET /api/v1/calendar/feed.ics
func (h *CalendarHandler) PublicFeed(c *gin.Context) {
	feed, err := h.icsSvc.PublicFeed(c.Request.Context(), time.Now().UnixMilli())
	if err != nil {
		response.InternalError(c)
		return
	}

	c.Header("Content-Type", "text/calendar; charset=utf-8")
	c.Header("Content-Disposition", `attachment; filename="calendar.ics"`)
	c.String(http.StatusOK, feed)
}
