package renderer

import (
	"fmt"

	"github.com/cryptogeezas/club"
)

// SummaryRow is one member's line in the equity table.
type SummaryRow struct {
	Member      string
	Contributed string
	Ownership   string
	Equity      string
}

// Summary is the dashboard view of the club: pool totals, portfolio value,
// the equity table, and any bookkeeping anomalies.
type Summary struct {
	Date           string
	TotalPool      string
	Balance        string
	PortfolioValue string
	GainLoss       string
	Stale          bool
	Unpriced       []string
	Members        []SummaryRow
	Anomalies      []string
}

// NewSummary builds the summary view from the book under a price snapshot.
func NewSummary(b *club.Book, snapshot club.PriceSnapshot, on club.Date) *Summary {
	if on.IsZero() {
		on = club.Today()
	}
	equity := club.NewEquityReport(b, snapshot)
	roi := club.NewROIReport(b, snapshot)

	s := &Summary{
		Date:           on.String(),
		TotalPool:      equity.TotalPool.String(),
		Balance:        b.AvailableBalance().String(),
		PortfolioValue: equity.PortfolioValue.String(),
		GainLoss:       roi.GainLoss.SignedString(),
		Stale:          equity.Stale,
		Unpriced:       equity.Unpriced,
	}
	for _, m := range equity.Members {
		s.Members = append(s.Members, SummaryRow{
			Member:      m.Member,
			Contributed: m.Contributed.String(),
			Ownership:   m.Ownership.String(),
			Equity:      m.EquityValue.String(),
		})
	}
	for _, a := range b.Anomalies() {
		s.Anomalies = append(s.Anomalies, fmt.Sprintf("%s: %s", a.Code, a.Detail))
	}
	return s
}

// RenderSummary renders the Summary view to a markdown string.
func RenderSummary(s *Summary) string {
	partials := map[string]string{
		"summary_title":     "summary_title.md",
		"summary_equity":    "summary_equity.md",
		"summary_anomalies": "summary_anomalies.md",
	}
	return renderTemplate("summary", "summary.md", partials, s)
}
