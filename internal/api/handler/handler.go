package handler

import "github.com/tams-cso/tams-club-cal-sub001/internal/service"

// Handler aggregates every HTTP handler.
type Handler struct {
	Auth     *AuthHandler
	User     *UserHandler
	Club     *ClubHandler
	Activity *ActivityHandler
	Calendar *CalendarHandler
	Export   *ExportHandler
}

// NewHandler wires the handlers to their services.
func NewHandler(svc *service.Service) *Handler {
	return &Handler{
		Auth:     NewAuthHandler(svc.Auth),
		User:     NewUserHandler(svc.User),
		Club:     NewClubHandler(svc.Club),
		Activity: NewActivityHandler(svc.Activity),
		Calendar: NewCalendarHandler(svc.Calendar, svc.ICS),
		Export:   NewExportHandler(svc.Export),
	}
}
