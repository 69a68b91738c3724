package club

// MemberEquity is one member's slice of the pool: lifetime contributions,
// ownership percentage and the equity value those represent at current
// prices.
type MemberEquity struct {
	Member      string
	Contributed Money
	Ownership   Percent
	EquityValue Money
}

// EquityReport attributes the portfolio's market value to each member in
// proportion to contributions. It is a pure projection of the two ledgers
// and a price snapshot; computing it has no side effects.
type EquityReport struct {
	PortfolioValue Money
	TotalPool      Money
	Stale          bool     // snapshot used fallback prices
	Unpriced       []string // held assets the snapshot could not price
	Members        []MemberEquity
}

// NewEquityReport computes the equity table for every registered member, in
// registry order. Equity value is the member's exact share of the portfolio
// value; when the portfolio value is zero every equity value is zero
// regardless of ownership.
func NewEquityReport(b *Book, snapshot PriceSnapshot) *EquityReport {
	value, unpriced := b.PortfolioValue(snapshot)
	pool := b.Contributions.TotalPool()

	report := &EquityReport{
		PortfolioValue: value,
		TotalPool:      pool,
		Stale:          snapshot.Stale,
		Unpriced:       unpriced,
	}
	for _, member := range b.Members.Names() {
		contributed := b.Contributions.TotalContributed(member)
		var equity Money
		if !pool.IsZero() {
			share := contributed.Decimal().Div(pool.Decimal())
			equity = M(value.Decimal().Mul(share), value.Currency())
		}
		report.Members = append(report.Members, MemberEquity{
			Member:      member,
			Contributed: contributed,
			Ownership:   b.Contributions.OwnershipPercentage(member),
			EquityValue: equity,
		})
	}
	return report
}
