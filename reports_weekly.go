package club

// WeeklyDelta compares a member's position now against one week prior. The
// prior snapshot re-cuts every member's total at the same boundary, so the
// ownership change reflects pool-wide movement, not just the subject member.
type WeeklyDelta struct {
	Member             string
	ContributionsAdded Money   // this week's total minus last week's
	OwnershipChange    Percent // signed
	CurrentOwnership   Percent
}

// NewWeeklyDelta compares the member's full current position against the
// ledger cut at asOf minus seven days. The current side always covers every
// record, even ones dated after asOf. asOf defaults to today when zero.
// Unknown members get a ValidationError.
func NewWeeklyDelta(b *Book, member string, asOf Date) (WeeklyDelta, error) {
	if !b.Members.Contains(member) {
		return WeeklyDelta{}, validationf("unknown member %q", member)
	}
	if asOf.IsZero() {
		asOf = Today()
	}
	cutoff := asOf.Add(-7)

	thisTotal := b.Contributions.TotalContributed(member)
	lastTotal := b.Contributions.TotalContributedAsOf(member, cutoff)
	thisPct := b.Contributions.OwnershipPercentage(member)
	lastPct := b.Contributions.ownershipAsOf(member, cutoff)

	return WeeklyDelta{
		Member:             member,
		ContributionsAdded: thisTotal.Sub(lastTotal),
		OwnershipChange:    thisPct - lastPct,
		CurrentOwnership:   thisPct,
	}, nil
}

// NewWeeklyDeltas computes the delta for every registered member, in
// registry order.
func NewWeeklyDeltas(b *Book, asOf Date) []WeeklyDelta {
	deltas := make([]WeeklyDelta, 0, b.Members.Len())
	for _, member := range b.Members.Names() {
		// members come from the registry, the error path is unreachable
		delta, _ := NewWeeklyDelta(b, member, asOf)
		deltas = append(deltas, delta)
	}
	return deltas
}

// ContributionStreak counts the consecutive ISO calendar weeks, walking
// backward from asOf's week, in which the member contributed at least once.
// It stops at the first gap and returns 0 when the current week has no
// contribution. Year rollover is handled by walking an actual date cursor
// back seven days at a time, so week 1 correctly follows week 52 or 53 of
// the prior year.
func ContributionStreak(b *Book, member string, asOf Date) int {
	if asOf.IsZero() {
		asOf = Today()
	}
	type isoWeek struct{ year, week int }
	seen := make(map[isoWeek]bool)
	for _, rec := range b.Contributions.Records(member) {
		y, w := rec.Date.ISOWeek()
		seen[isoWeek{y, w}] = true
	}

	streak := 0
	for cursor := asOf; ; cursor = cursor.Add(-7) {
		y, w := cursor.ISOWeek()
		if !seen[isoWeek{y, w}] {
			break
		}
		streak++
	}
	return streak
}

// Heatmap buckets every contribution into Monday-aligned week bins spanning
// from the earliest to the latest contribution date across all members.
// Rows follow registry order; missing member/week cells are zero.
type Heatmap struct {
	Members []string
	Weeks   []Date    // start (Monday) of each bin, ascending
	Cells   [][]Money // Cells[member][week], summed contribution amounts
}

// NewHeatmap builds the weekly contribution heatmap. It returns an empty
// matrix (no weeks) when there are no contributions at all.
func NewHeatmap(b *Book) *Heatmap {
	hm := &Heatmap{Members: b.Members.Names()}

	first, last, ok := b.Contributions.DateSpan()
	if !ok {
		hm.Cells = make([][]Money, len(hm.Members))
		return hm
	}
	for week := first.StartOfWeek(); !week.After(last); week = week.Add(7) {
		hm.Weeks = append(hm.Weeks, week)
	}

	index := make(map[Date]int, len(hm.Weeks))
	for i, week := range hm.Weeks {
		index[week] = i
	}

	for _, member := range hm.Members {
		row := make([]Money, len(hm.Weeks))
		for _, rec := range b.Contributions.Records(member) {
			if i, ok := index[rec.Date.StartOfWeek()]; ok {
				row[i] = row[i].Add(rec.Amount)
			}
		}
		hm.Cells = append(hm.Cells, row)
	}
	return hm
}
