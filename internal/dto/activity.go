package dto

// ── activity module DTOs ──
//
// Instants travel over the wire as UTC epoch milliseconds, matching how they
// are stored. The civil timezone applies only when laying out grids.

// CreateActivityRequest creates an event or room reservation.
type CreateActivityRequest struct {
	Name          string `json:"name"        binding:"required,min=2,max=200"`
	ClubName      string `json:"club_name"   binding:"max=150"`
	Description   string `json:"description" binding:"max=10000"`
	StartMs       int64  `json:"start_ms"    binding:"required"`
	EndMs         int64  `json:"end_ms"`
	NoEnd         bool   `json:"no_end"`
	AllDay        bool   `json:"all_day"`
	Location      string `json:"location"`
	IsReservation bool   `json:"is_reservation"`
	IsPublic      *bool  `json:"is_public"`

	// RepeatsWeekly asks for a weekly series ending on the civil day of
	// RepeatUntilMs, inclusive.
	RepeatsWeekly bool  `json:"repeats_weekly"`
	RepeatUntilMs int64 `json:"repeat_until_ms"`
}

// UpdateActivityRequest edits an activity. Nil fields stay untouched.
type UpdateActivityRequest struct {
	Name          *string `json:"name"        binding:"omitempty,min=2,max=200"`
	ClubName      *string `json:"club_name"   binding:"omitempty,max=150"`
	Description   *string `json:"description" binding:"omitempty,max=10000"`
	StartMs       *int64  `json:"start_ms"`
	EndMs         *int64  `json:"end_ms"`
	NoEnd         *bool   `json:"no_end"`
	AllDay        *bool   `json:"all_day"`
	Location      *string `json:"location"`
	IsReservation *bool   `json:"is_reservation"`
	IsPublic      *bool   `json:"is_public"`
}

// ActivityListRequest filters the activity listing.
type ActivityListRequest struct {
	PaginationRequest
	ClubName        string `form:"club_name"        binding:"omitempty,max=150"`
	Location        string `form:"location"         binding:"omitempty,max=80"`
	ReservationOnly bool   `form:"reservation_only"`
	FromMs          int64  `form:"from_ms"`
	ToMs            int64  `form:"to_ms"`
}

// CheckConflictRequest probes a room for availability without writing.
type CheckConflictRequest struct {
	Location  string `json:"location"   binding:"required"`
	StartMs   int64  `json:"start_ms"   binding:"required"`
	EndMs     int64  `json:"end_ms"     binding:"required"`
	ExcludeID string `json:"exclude_id" binding:"omitempty,uuid"`
}

// ConflictResponse reports the outcome of a conflict probe.
type ConflictResponse struct {
	Conflict bool              `json:"conflict"`
	Blocking []ActivitySummary `json:"blocking,omitempty"`
}

// ActivitySummary is the compact listing view of an activity.
type ActivitySummary struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	ClubName      string `json:"club_name"`
	StartMs       int64  `json:"start_ms"`
	EndMs         int64  `json:"end_ms"`
	NoEnd         bool   `json:"no_end"`
	AllDay        bool   `json:"all_day"`
	Location      string `json:"location"`
	IsReservation bool   `json:"is_reservation"`
}

// SeriesResponse reports the activities created for a weekly series.
type SeriesResponse struct {
	GroupID    string            `json:"group_id"`
	Count      int               `json:"count"`
	Activities []ActivitySummary `json:"activities"`
}
