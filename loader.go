package club

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log"
	"os"
	"path/filepath"
)

// The three document names, kept from the original club tracker.
const (
	contributionsFile = "contributions.json"
	transactionsFile  = "transactions.json"
	holdingsFile      = "portfolio.json"
)

// BookStore persists a Book as three whole JSON documents in a directory.
// Every save replaces each document via write-new-then-rename, so a crash
// never leaves a truncated or half-appended ledger behind.
//
// Loads are forgiving: a missing or corrupt document loads as an empty
// default. Corruption silently loses data, so it is logged loudly here
// rather than masked.
type BookStore struct {
	Dir string

	// Currency labels the bare amounts in the documents on load.
	// Empty means DefaultCurrency.
	Currency string
}

// NewBookStore creates a store rooted at dir.
func NewBookStore(dir string) *BookStore { return &BookStore{Dir: dir} }

func (s *BookStore) currency() string {
	if s.Currency == "" {
		return DefaultCurrency
	}
	return s.Currency
}

// Load reads the three documents and assembles a Book. It never fails:
// missing or unreadable documents become empty collections.
func (s *BookStore) Load(members *MemberRegistry) *Book {
	var contribs map[string][]ContributionRecord
	if ok := s.load(contributionsFile, func(r io.Reader) (err error) {
		contribs, err = DecodeContributions(r, s.currency())
		return err
	}); !ok {
		contribs = nil
	}

	var txs []TransactionRecord
	if ok := s.load(transactionsFile, func(r io.Reader) (err error) {
		txs, err = DecodeTransactions(r, s.currency())
		return err
	}); !ok {
		txs = nil
	}

	var holdings Holdings
	if ok := s.load(holdingsFile, func(r io.Reader) (err error) {
		holdings, err = DecodeHoldings(r)
		return err
	}); !ok {
		holdings = nil
	}

	return &Book{
		Members:       members,
		Contributions: newContributionLedgerFromRecords(members, contribs),
		Transactions:  newTransactionLedgerFromRecords(txs, holdings),
	}
}

// load opens a document and runs the decoder over it. It returns false when
// the document is missing or corrupt, logging the latter.
func (s *BookStore) load(name string, decode func(io.Reader) error) bool {
	f, err := os.Open(filepath.Join(s.Dir, name))
	if errors.Is(err, fs.ErrNotExist) {
		return false
	}
	if err != nil {
		log.Printf("warning: cannot open %s, loading empty: %v", name, err)
		return false
	}
	defer f.Close()
	if err := decode(f); err != nil {
		log.Printf("warning: corrupt %s treated as empty, data in it is ignored: %v", name, err)
		return false
	}
	return true
}

// Save writes the three documents, replacing each atomically.
func (s *BookStore) Save(b *Book) error {
	if err := os.MkdirAll(s.Dir, 0755); err != nil {
		return fmt.Errorf("could not create data directory %q: %w", s.Dir, err)
	}
	if err := s.save(contributionsFile, func(w io.Writer) error {
		return EncodeContributions(w, b.Contributions)
	}); err != nil {
		return err
	}
	if err := s.save(transactionsFile, func(w io.Writer) error {
		return EncodeTransactions(w, b.Transactions)
	}); err != nil {
		return err
	}
	return s.save(holdingsFile, func(w io.Writer) error {
		return EncodeHoldings(w, b.Transactions.Holdings())
	})
}

// save writes a document to a temp file in the same directory and renames
// it over the target.
func (s *BookStore) save(name string, encode func(io.Writer) error) error {
	f, err := os.CreateTemp(s.Dir, "."+name+".tmp-*")
	if err != nil {
		return fmt.Errorf("could not create temp file for %s: %w", name, err)
	}
	tmp := f.Name()
	if err := encode(f); err != nil {
		f.Close()
		os.Remove(tmp)
		return fmt.Errorf("could not encode %s: %w", name, err)
	}
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("could not write %s: %w", name, err)
	}
	if err := os.Rename(tmp, filepath.Join(s.Dir, name)); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("could not replace %s: %w", name, err)
	}
	return nil
}
