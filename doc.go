// Package club implements the ledger and attribution engine of a small
// shared cryptocurrency investment pool.
//
// A fixed set of members deposits cash into a common pool, and the pool buys
// crypto assets with it. The package turns the two append-only ledgers
// (member contributions and asset purchases) into the figures the club cares
// about: available balance, ownership percentages, portfolio market value,
// equity per member, ROI per asset and weekly performance (deltas, streaks
// and a contribution heatmap).
//
// All monetary arithmetic is exact, built on shopspring/decimal. Prices come
// from an external oracle that can fail: the snapshot it produces is always
// usable, falling back to static prices and carrying a stale flag.
//
// Persistence is whole-document: BookStore stores the three collections as
// JSON documents with write-then-rename replacement, which is all the
// single-writer usage model of the club requires.
package club
