package club

import (
	"slices"
	"time"

	"github.com/google/uuid"
)

// ContributionRecord is a single deposit by a member into the shared pool.
// Records are immutable once appended.
type ContributionRecord struct {
	ID       uuid.UUID
	Member   string
	Amount   Money
	Date     Date      // day the deposit happened, may differ from Recorded
	Recorded time.Time // when the record was appended
}

// ContributionLedger is the append-only record of member deposits. It owns
// each member's records exclusively and derives the pool total and the
// ownership percentages from them.
type ContributionLedger struct {
	members *MemberRegistry
	records map[string][]ContributionRecord
}

// NewContributionLedger creates an empty ledger for the given registry.
func NewContributionLedger(members *MemberRegistry) *ContributionLedger {
	return &ContributionLedger{
		members: members,
		records: make(map[string][]ContributionRecord),
	}
}

// Record appends a contribution for a member. The date defaults to today
// when zero. It returns a ValidationError when the amount is not positive or
// the member is not registered. There is no upper bound on amount or
// frequency: the same member may contribute several times on the same day.
func (l *ContributionLedger) Record(member string, amount Money, on Date) (ContributionRecord, error) {
	if !l.members.Contains(member) {
		return ContributionRecord{}, validationf("unknown member %q", member)
	}
	if !amount.IsPositive() {
		return ContributionRecord{}, validationf("contribution amount must be positive, got %s", amount)
	}
	if on.IsZero() {
		on = Today()
	}
	rec := ContributionRecord{
		ID:       uuid.New(),
		Member:   member,
		Amount:   amount,
		Date:     on,
		Recorded: time.Now(),
	}
	l.records[member] = append(l.records[member], rec)
	return rec, nil
}

// Records returns a copy of a member's contribution records, in append order.
func (l *ContributionLedger) Records(member string) []ContributionRecord {
	return slices.Clone(l.records[member])
}

// TotalContributed returns the lifetime sum of a member's contributions,
// zero if there are none.
func (l *ContributionLedger) TotalContributed(member string) Money {
	return l.TotalContributedAsOf(member, Date{})
}

// TotalContributedAsOf sums a member's contributions dated on or before the
// cutoff. A zero cutoff means no cutoff.
func (l *ContributionLedger) TotalContributedAsOf(member string, cutoff Date) Money {
	var total Money
	for _, rec := range l.records[member] {
		if !cutoff.IsZero() && rec.Date.After(cutoff) {
			continue
		}
		total = total.Add(rec.Amount)
	}
	return total
}

// TotalPool returns the sum of all contributions across all members.
func (l *ContributionLedger) TotalPool() Money {
	return l.TotalPoolAsOf(Date{})
}

// TotalPoolAsOf sums all contributions dated on or before the cutoff, across
// all members. A zero cutoff means no cutoff.
func (l *ContributionLedger) TotalPoolAsOf(cutoff Date) Money {
	var total Money
	for _, member := range l.members.Names() {
		total = total.Add(l.TotalContributedAsOf(member, cutoff))
	}
	return total
}

// OwnershipPercentage returns the member's share of the pool in [0,100],
// proportional to lifetime contributions. When the pool is empty every
// member owns 0%, never NaN.
func (l *ContributionLedger) OwnershipPercentage(member string) Percent {
	return l.ownershipAsOf(member, Date{})
}

func (l *ContributionLedger) ownershipAsOf(member string, cutoff Date) Percent {
	pool := l.TotalPoolAsOf(cutoff)
	if pool.IsZero() {
		return 0
	}
	return ratioPercent(l.TotalContributedAsOf(member, cutoff).Decimal(), pool.Decimal())
}

// DateSpan returns the earliest and latest contribution dates across all
// members, and false when the ledger is empty.
func (l *ContributionLedger) DateSpan() (first, last Date, ok bool) {
	for _, recs := range l.records {
		for _, rec := range recs {
			if !ok {
				first, last, ok = rec.Date, rec.Date, true
				continue
			}
			if rec.Date.Before(first) {
				first = rec.Date
			}
			if rec.Date.After(last) {
				last = rec.Date
			}
		}
	}
	return first, last, ok
}

// newContributionLedgerFromRecords rebuilds a ledger from persisted records.
// Records of unregistered members are kept out of totals by the registry
// iteration, but preserved, so a registry typo does not destroy data.
func newContributionLedgerFromRecords(members *MemberRegistry, records map[string][]ContributionRecord) *ContributionLedger {
	l := NewContributionLedger(members)
	for member, recs := range records {
		l.records[member] = slices.Clone(recs)
	}
	return l
}
