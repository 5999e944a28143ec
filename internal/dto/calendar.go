package dto

// ── calendar module DTOs ──

// MonthViewRequest selects a civil month of the calendar.
type MonthViewRequest struct {
	Year  int `form:"year"  binding:"required,min=1970,max=2200"`
	Month int `form:"month" binding:"required,min=1,max=12"`
}

// WeekViewRequest selects the civil week containing an anchor instant.
type WeekViewRequest struct {
	AnchorMs int64 `form:"anchor_ms" binding:"required"`
}

// RoomMonthRequest selects one room's reservations over a civil month.
type RoomMonthRequest struct {
	Room  string `form:"room"  binding:"required,max=80"`
	Year  int    `form:"year"  binding:"required,min=1970,max=2200"`
	Month int    `form:"month" binding:"required,min=1,max=12"`
}
