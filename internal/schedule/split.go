package schedule

import (
	"fmt"
	"sort"

	"github.com/tams-cso/tams-club-cal-sub001/internal/model"
)

// ── multi-day splitting ─────────────────────────────────────
//
// The month calendar renders one chip per civil day, so an activity that
// crosses a civil midnight is broken into per-day segments labelled
// "Name (Day i/N)". An activity that stays inside one civil day, or ends
// exactly on the midnight closing its starting day, passes through
// unchanged.
// ─────────────────────────────────────────────────────────────

// Segment is one per-day slice of an activity as shown on the month grid.
// For an unsplit activity DayIndex and TotalDays are both 1 and Name is the
// activity's own name.
type Segment struct {
	Activity  *model.Activity `json:"activity"`
	Name      string          `json:"name"`
	StartMs   int64           `json:"start_ms"`
	EndMs     int64           `json:"end_ms"`
	DayIndex  int             `json:"day_index"`
	TotalDays int             `json:"total_days"`
	AllDay    bool            `json:"all_day"`
}

// SplitActivities slices every midnight-crossing activity into per-day
// segments and returns the whole set ordered by segment start. Activities
// with an invalid start instant are dropped.
func SplitActivities(clock Clock, acts []model.Activity) []Segment {
	segs := make([]Segment, 0, len(acts))
	for i := range acts {
		segs = append(segs, splitOne(clock, &acts[i])...)
	}
	sort.SliceStable(segs, func(i, j int) bool { return segs[i].StartMs < segs[j].StartMs })
	return segs
}

func splitOne(clock Clock, a *model.Activity) []Segment {
	start := clock.ToCivil(a.StartMs)
	end := clock.ToCivil(a.DisplayEndMs())
	if !start.Valid() || !end.Valid() || end.Before(start) {
		if !start.Valid() {
			return nil
		}
		end = start
	}

	// Unchanged when the activity stays within its starting civil day. An
	// end sitting exactly on the midnight that closes that day counts as
	// staying inside it.
	firstMidnight := start.StartOfDay().AddDays(1)
	if start.SameDay(end) || (end.IsMidnight() && end.UnixMilli() == firstMidnight.UnixMilli()) {
		return []Segment{{
			Activity:  a,
			Name:      a.Name,
			StartMs:   start.UnixMilli(),
			EndMs:     end.UnixMilli(),
			DayIndex:  1,
			TotalDays: 1,
			AllDay:    a.AllDay || (start.IsMidnight() && end.UnixMilli() == firstMidnight.UnixMilli()),
		}}
	}

	// Whole 24h periods covered, plus one partial day on each ragged edge.
	span := int((end.UnixMilli() - start.UnixMilli()) / msPerDay)
	if !start.IsMidnight() {
		span++
	}
	if !end.IsMidnight() {
		span++
	}

	segs := make([]Segment, 0, span)
	cursor := start
	for i := 1; i <= span; i++ {
		nextMidnight := cursor.StartOfDay().AddDays(1)
		segEnd := nextMidnight
		if i == span {
			segEnd = end
		}
		allDay := true
		if i == 1 {
			allDay = cursor.IsMidnight()
		} else if i == span {
			allDay = end.IsMidnight()
		}
		segs = append(segs, Segment{
			Activity:  a,
			Name:      fmt.Sprintf("%s (Day %d/%d)", a.Name, i, span),
			StartMs:   cursor.UnixMilli(),
			EndMs:     segEnd.UnixMilli(),
			DayIndex:  i,
			TotalDays: span,
			AllDay:    allDay,
		})
		cursor = nextMidnight
	}
	return segs
}
