package renderer

import "github.com/cryptogeezas/club"

// ROIRow is one asset's line of the returns table.
type ROIRow struct {
	Asset    string
	Held     string
	Invested string
	Value    string
	ROI      string
}

// ROI is the returns view: per-asset rows plus the pool-level gain figures.
type ROI struct {
	Date           string
	Rows           []ROIRow
	TotalInvested  string
	PortfolioValue string
	GainLoss       string
	GainLossPct    string
	Stale          bool
	Unpriced       []string
}

// NewROI builds the returns view from the book under a price snapshot.
func NewROI(b *club.Book, snapshot club.PriceSnapshot, on club.Date) *ROI {
	if on.IsZero() {
		on = club.Today()
	}
	report := club.NewROIReport(b, snapshot)

	v := &ROI{
		Date:           on.String(),
		TotalInvested:  report.TotalInvested.String(),
		PortfolioValue: report.PortfolioValue.String(),
		GainLoss:       report.GainLoss.SignedString(),
		GainLossPct:    report.GainLossPct.SignedString(),
		Stale:          report.Stale,
		Unpriced:       report.Unpriced,
	}
	for _, a := range report.Assets {
		v.Rows = append(v.Rows, ROIRow{
			Asset:    a.Asset,
			Held:     a.AmountHeld.String(),
			Invested: a.Invested.String(),
			Value:    a.CurrentValue.String(),
			ROI:      a.ROI.SignedString(),
		})
	}
	return v
}

// RenderROI renders the returns view to a markdown string.
func RenderROI(v *ROI) string {
	return renderTemplate("roi", "roi.md", nil, v)
}
