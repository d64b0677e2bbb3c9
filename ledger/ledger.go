// Package ledger holds the domain model and the balance reconciliation
// engine: the rules that keep each bank's stored balance consistent with
// the transaction and transfer ledger as records are created, edited and
// deleted.
package ledger

import (
	"time"

	"github.com/shopspring/decimal"
)

// EntryType classifies a transaction as money in or money out.
type EntryType string

const (
	Income  EntryType = "income"
	Expense EntryType = "expense"
)

// CreditType classifies a peer-to-peer credit record.
type CreditType string

const (
	OweMe CreditType = "owe_me" // somebody owes the user
	IOwe  CreditType = "i_owe"  // the user owes somebody
)

// Bank is a named money-holding account. Balance is derived-but-stored:
// it always equals the opening balance plus the signed sum of every
// non-deleted transaction and transfer referencing the bank.
type Bank struct {
	ID        string
	Owner     string
	Name      string
	Balance   decimal.Decimal
	Color     string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Transaction is a single income or expense entry against exactly one bank.
type Transaction struct {
	ID         string
	Owner      string
	BankID     string
	Type       EntryType
	Amount     decimal.Decimal // always positive; sign comes from Type
	Date       time.Time
	Category   string
	Notes      string
	PersonName string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// SignedAmount returns the transaction's signed contribution to its bank.
func (t Transaction) SignedAmount() decimal.Decimal {
	return SignedEffect(t.Type, t.Amount)
}

// Transfer moves funds between two distinct banks owned by the same user.
type Transfer struct {
	ID         string
	Owner      string
	FromBankID string
	ToBankID   string
	Amount     decimal.Decimal
	Date       time.Time
	Notes      string
	CreatedAt  time.Time
}

// Credit is a personal IOU record. It never affects any bank balance and
// exists only for net-position reporting per person.
type Credit struct {
	ID          string
	Owner       string
	PersonName  string
	Amount      decimal.Decimal
	Type        CreditType
	Description string
	Date        time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Filter narrows list queries. Zero fields match everything.
type Filter struct {
	BankID     string
	Type       EntryType
	Category   string
	PersonName string
	From       time.Time
	To         time.Time
}

// MatchesTransaction reports whether t passes the filter.
func (f Filter) MatchesTransaction(t Transaction) bool {
	if f.BankID != "" && t.BankID != f.BankID {
		return false
	}
	if f.Type != "" && t.Type != f.Type {
		return false
	}
	if f.Category != "" && t.Category != f.Category {
		return false
	}
	if f.PersonName != "" && t.PersonName != f.PersonName {
		return false
	}
	return f.matchesDate(t.Date)
}

// MatchesTransfer reports whether tr passes the filter. BankID matches
// either side of the transfer.
func (f Filter) MatchesTransfer(tr Transfer) bool {
	if f.BankID != "" && tr.FromBankID != f.BankID && tr.ToBankID != f.BankID {
		return false
	}
	return f.matchesDate(tr.Date)
}

// MatchesCredit reports whether cr passes the filter.
func (f Filter) MatchesCredit(cr Credit) bool {
	if f.PersonName != "" && cr.PersonName != f.PersonName {
		return false
	}
	return f.matchesDate(cr.Date)
}

func (f Filter) matchesDate(d time.Time) bool {
	if !f.From.IsZero() && d.Before(f.From) {
		return false
	}
	if !f.To.IsZero() && d.After(f.To) {
		return false
	}
	return true
}
