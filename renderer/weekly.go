package renderer

import (
	"fmt"

	"github.com/cryptogeezas/club"
)

// WeeklyRow is one member's line in the weekly movement table.
type WeeklyRow struct {
	Member          string
	Added           string
	OwnershipChange string
	Ownership       string
	Streak          string
}

// HeatmapRow is one member's cells across the heatmap weeks.
type HeatmapRow struct {
	Member string
	Cells  []string
}

// Weekly is the weekly report view: the pool status, per-member deltas, and
// the contribution heatmap spanning the club's whole history.
type Weekly struct {
	Date           string
	TotalInvested  string
	PortfolioValue string
	GainLoss       string
	GainLossPct    string
	Stale          bool
	Rows           []WeeklyRow
	Weeks          []string // heatmap column headers, Monday of each week
	WeekDivider    string   // the |---|---:| separator row, sized to Weeks
	Heatmap        []HeatmapRow
}

// NewWeekly builds the weekly view as of a date, defaulting to today.
func NewWeekly(b *club.Book, snapshot club.PriceSnapshot, asOf club.Date) *Weekly {
	if asOf.IsZero() {
		asOf = club.Today()
	}
	roi := club.NewROIReport(b, snapshot)
	w := &Weekly{
		Date:           asOf.String(),
		TotalInvested:  roi.TotalInvested.String(),
		PortfolioValue: roi.PortfolioValue.String(),
		GainLoss:       roi.GainLoss.SignedString(),
		GainLossPct:    roi.GainLossPct.SignedString(),
		Stale:          roi.Stale,
	}

	for _, delta := range club.NewWeeklyDeltas(b, asOf) {
		streak := club.ContributionStreak(b, delta.Member, asOf)
		w.Rows = append(w.Rows, WeeklyRow{
			Member:          delta.Member,
			Added:           delta.ContributionsAdded.String(),
			OwnershipChange: delta.OwnershipChange.SignedString(),
			Ownership:       delta.CurrentOwnership.String(),
			Streak:          fmt.Sprintf("%d weeks", streak),
		})
	}

	hm := club.NewHeatmap(b)
	w.WeekDivider = "|---|"
	for _, week := range hm.Weeks {
		w.Weeks = append(w.Weeks, week.Format("Jan 02"))
		w.WeekDivider += "---:|"
	}
	for i, member := range hm.Members {
		row := HeatmapRow{Member: member}
		for _, cell := range hm.Cells[i] {
			if cell.IsZero() {
				row.Cells = append(row.Cells, "")
			} else {
				row.Cells = append(row.Cells, cell.String())
			}
		}
		w.Heatmap = append(w.Heatmap, row)
	}
	return w
}

// RenderWeekly renders the Weekly view to a markdown string.
func RenderWeekly(w *Weekly) string {
	partials := map[string]string{
		"weekly_status":  "weekly_status.md",
		"weekly_deltas":  "weekly_deltas.md",
		"weekly_heatmap": "weekly_heatmap.md",
	}
	return renderTemplate("weekly", "weekly.md", partials, w)
}
