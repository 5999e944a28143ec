package schedule

// ── weekly recurrence ───────────────────────────────────────

// Occurrence is one candidate repetition of a weekly activity. N counts
// weeks after the base occurrence, starting at 1.
type Occurrence struct {
	N       int   `json:"n"`
	StartMs int64 `json:"start_ms"`
	EndMs   int64 `json:"end_ms"`
}

// EnumerateWeekly lists the repetitions following the base occurrence at a
// weekly cadence. until is an inclusive civil-date bound: a candidate whose
// start falls on that civil day is still included. The base occurrence
// itself is not returned. Weekly steps are civil, so the wall-clock time of
// day is preserved across daylight-saving transitions.
func EnumerateWeekly(clock Clock, startMs, endMs, untilMs int64) []Occurrence {
	start := clock.ToCivil(startMs)
	end := clock.ToCivil(endMs)
	until := clock.ToCivil(untilMs)
	if !start.Valid() || !end.Valid() || !until.Valid() {
		return nil
	}
	lastDay := until.StartOfDay()

	var out []Occurrence
	for n := 1; ; n++ {
		candStart := start.AddWeeks(n)
		if candStart.StartOfDay().After(lastDay) {
			return out
		}
		out = append(out, Occurrence{
			N:       n,
			StartMs: candStart.UnixMilli(),
			EndMs:   end.AddWeeks(n).UnixMilli(),
		})
	}
}
