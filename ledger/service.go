package ledger

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Store is the persistence contract the service reconciles against. Every
// operation is scoped to an explicit owner; implementations return
// ErrNotFound for missing rows, ErrPermissionDenied for rows held by a
// different owner, and wrap backend failures otherwise.
//
// Mutation methods that touch balances receive the deltas computed by the
// engine and must apply the row change and all deltas atomically, as
// server-side increments.
type Store interface {
	InsertBank(ctx context.Context, b Bank) (Bank, error)
	GetBank(ctx context.Context, owner, id string) (Bank, error)
	ListBanks(ctx context.Context, owner string) ([]Bank, error)
	UpdateBank(ctx context.Context, b Bank) (Bank, error)
	DeleteBank(ctx context.Context, owner, id string, deltas []BalanceDelta) error

	InsertTransaction(ctx context.Context, t Transaction, deltas []BalanceDelta) (Transaction, error)
	GetTransaction(ctx context.Context, owner, id string) (Transaction, error)
	ListTransactions(ctx context.Context, owner string, f Filter) ([]Transaction, error)
	UpdateTransaction(ctx context.Context, t Transaction, deltas []BalanceDelta) (Transaction, error)
	DeleteTransaction(ctx context.Context, owner, id string, deltas []BalanceDelta) error

	InsertTransfer(ctx context.Context, tr Transfer, deltas []BalanceDelta) (Transfer, error)
	GetTransfer(ctx context.Context, owner, id string) (Transfer, error)
	ListTransfers(ctx context.Context, owner string, f Filter) ([]Transfer, error)
	DeleteTransfer(ctx context.Context, owner, id string, deltas []BalanceDelta) error

	InsertCredit(ctx context.Context, cr Credit) (Credit, error)
	GetCredit(ctx context.Context, owner, id string) (Credit, error)
	ListCredits(ctx context.Context, owner string, f Filter) ([]Credit, error)
	UpdateCredit(ctx context.Context, cr Credit) (Credit, error)
	DeleteCredit(ctx context.Context, owner, id string) error
}

// Service orchestrates validation, delta computation and store calls for
// every ledger mutation.
type Service struct {
	store Store
}

// NewService creates a Service backed by the given store.
func NewService(store Store) *Service {
	return &Service{store: store}
}

// Bank operations

// CreateBank registers a new bank. The submitted balance is the opening
// balance; the engine maintains it incrementally from then on.
func (s *Service) CreateBank(ctx context.Context, owner string, b Bank) (Bank, error) {
	if strings.TrimSpace(b.Name) == "" {
		return Bank{}, validationErrorf("name", "cannot be empty")
	}
	b.ID = uuid.NewString()
	b.Owner = owner
	now := time.Now().UTC()
	b.CreatedAt = now
	b.UpdatedAt = now
	return s.store.InsertBank(ctx, b)
}

// GetBank returns a single bank owned by the caller.
func (s *Service) GetBank(ctx context.Context, owner, id string) (Bank, error) {
	return s.store.GetBank(ctx, owner, id)
}

// ListBanks returns all of the caller's banks.
func (s *Service) ListBanks(ctx context.Context, owner string) ([]Bank, error) {
	return s.store.ListBanks(ctx, owner)
}

// UpdateBank renames or recolors a bank. The balance is not editable here;
// it only moves through reconciliation.
func (s *Service) UpdateBank(ctx context.Context, owner, id, name, color string) (Bank, error) {
	if strings.TrimSpace(name) == "" {
		return Bank{}, validationErrorf("name", "cannot be empty")
	}
	b, err := s.store.GetBank(ctx, owner, id)
	if err != nil {
		return Bank{}, err
	}
	b.Name = name
	b.Color = color
	b.UpdatedAt = time.Now().UTC()
	return s.store.UpdateBank(ctx, b)
}

// DeleteBank removes a bank and cascades to its transactions and
// transfers. The bank's own balance disappears with it, but every
// cascaded transfer had a leg on another bank; those legs are reversed
// in the same store transaction so surviving balances stay reconciled.
func (s *Service) DeleteBank(ctx context.Context, owner, id string) error {
	if _, err := s.store.GetBank(ctx, owner, id); err != nil {
		return err
	}
	transfers, err := s.store.ListTransfers(ctx, owner, Filter{BankID: id})
	if err != nil {
		return err
	}
	return s.store.DeleteBank(ctx, owner, id, BankDeleted(id, transfers))
}

// Transaction operations

// CreateTransaction validates t, confirms its bank is caller-owned, and
// inserts the row together with its balance effect.
func (s *Service) CreateTransaction(ctx context.Context, owner string, t Transaction) (Transaction, error) {
	if err := validateTransaction(t); err != nil {
		return Transaction{}, err
	}
	if _, err := s.store.GetBank(ctx, owner, t.BankID); err != nil {
		return Transaction{}, err
	}

	t.ID = uuid.NewString()
	t.Owner = owner
	now := time.Now().UTC()
	t.CreatedAt = now
	t.UpdatedAt = now
	if t.Date.IsZero() {
		t.Date = now
	}
	return s.store.InsertTransaction(ctx, t, TransactionCreated(t))
}

// UpdateTransaction edits a transaction in place. The stored row's effect
// is reversed against the bank it was recorded on and the submitted
// state's effect is applied against the submitted bank, so re-assigning a
// transaction to another bank moves its contribution between the two.
func (s *Service) UpdateTransaction(ctx context.Context, owner, id string, t Transaction) (Transaction, error) {
	if err := validateTransaction(t); err != nil {
		return Transaction{}, err
	}
	old, err := s.store.GetTransaction(ctx, owner, id)
	if err != nil {
		return Transaction{}, err
	}
	if _, err := s.store.GetBank(ctx, owner, t.BankID); err != nil {
		return Transaction{}, err
	}

	t.ID = old.ID
	t.Owner = owner
	t.CreatedAt = old.CreatedAt
	t.UpdatedAt = time.Now().UTC()
	if t.Date.IsZero() {
		t.Date = old.Date
	}
	return s.store.UpdateTransaction(ctx, t, TransactionUpdated(old, t))
}

// DeleteTransaction removes a transaction and reverses its balance effect.
func (s *Service) DeleteTransaction(ctx context.Context, owner, id string) error {
	old, err := s.store.GetTransaction(ctx, owner, id)
	if err != nil {
		return err
	}
	return s.store.DeleteTransaction(ctx, owner, id, TransactionDeleted(old))
}

// GetTransaction returns a single transaction owned by the caller.
func (s *Service) GetTransaction(ctx context.Context, owner, id string) (Transaction, error) {
	return s.store.GetTransaction(ctx, owner, id)
}

// ListTransactions returns the caller's transactions matching f, most
// recent first.
func (s *Service) ListTransactions(ctx context.Context, owner string, f Filter) ([]Transaction, error) {
	return s.store.ListTransactions(ctx, owner, f)
}

// Transfer operations

// CreateTransfer validates tr, confirms both banks are caller-owned, and
// inserts the row with its paired debit/credit deltas.
func (s *Service) CreateTransfer(ctx context.Context, owner string, tr Transfer) (Transfer, error) {
	if err := validateTransfer(tr); err != nil {
		return Transfer{}, err
	}
	if _, err := s.store.GetBank(ctx, owner, tr.FromBankID); err != nil {
		return Transfer{}, err
	}
	if _, err := s.store.GetBank(ctx, owner, tr.ToBankID); err != nil {
		return Transfer{}, err
	}

	tr.ID = uuid.NewString()
	tr.Owner = owner
	now := time.Now().UTC()
	tr.CreatedAt = now
	if tr.Date.IsZero() {
		tr.Date = now
	}
	return s.store.InsertTransfer(ctx, tr, TransferCreated(tr))
}

// DeleteTransfer removes a transfer and restores both balances. Transfers
// have no update: an edit is a delete followed by a fresh create.
func (s *Service) DeleteTransfer(ctx context.Context, owner, id string) error {
	old, err := s.store.GetTransfer(ctx, owner, id)
	if err != nil {
		return err
	}
	return s.store.DeleteTransfer(ctx, owner, id, TransferDeleted(old))
}

// ListTransfers returns the caller's transfers matching f, most recent first.
func (s *Service) ListTransfers(ctx context.Context, owner string, f Filter) ([]Transfer, error) {
	return s.store.ListTransfers(ctx, owner, f)
}

// Credit operations: plain CRUD, no balance participation.

// CreateCredit records a new IOU.
func (s *Service) CreateCredit(ctx context.Context, owner string, cr Credit) (Credit, error) {
	if err := validateCredit(cr); err != nil {
		return Credit{}, err
	}
	cr.ID = uuid.NewString()
	cr.Owner = owner
	now := time.Now().UTC()
	cr.CreatedAt = now
	cr.UpdatedAt = now
	if cr.Date.IsZero() {
		cr.Date = now
	}
	return s.store.InsertCredit(ctx, cr)
}

// UpdateCredit edits an IOU in place.
func (s *Service) UpdateCredit(ctx context.Context, owner, id string, cr Credit) (Credit, error) {
	if err := validateCredit(cr); err != nil {
		return Credit{}, err
	}
	old, err := s.store.GetCredit(ctx, owner, id)
	if err != nil {
		return Credit{}, err
	}
	cr.ID = old.ID
	cr.Owner = owner
	cr.CreatedAt = old.CreatedAt
	cr.UpdatedAt = time.Now().UTC()
	if cr.Date.IsZero() {
		cr.Date = old.Date
	}
	return s.store.UpdateCredit(ctx, cr)
}

// DeleteCredit removes an IOU.
func (s *Service) DeleteCredit(ctx context.Context, owner, id string) error {
	if _, err := s.store.GetCredit(ctx, owner, id); err != nil {
		return err
	}
	return s.store.DeleteCredit(ctx, owner, id)
}

// ListCredits returns the caller's credits matching f, most recent first.
func (s *Service) ListCredits(ctx context.Context, owner string, f Filter) ([]Credit, error) {
	return s.store.ListCredits(ctx, owner, f)
}

// Validation

func validateTransaction(t Transaction) error {
	if t.Type != Income && t.Type != Expense {
		return validationErrorf("type", "must be %q or %q", Income, Expense)
	}
	if t.BankID == "" {
		return validationErrorf("bank_id", "is required")
	}
	if !t.Amount.IsPositive() {
		return validationErrorf("amount", "must be greater than zero")
	}
	return nil
}

func validateTransfer(tr Transfer) error {
	if tr.FromBankID == "" || tr.ToBankID == "" {
		return validationErrorf("bank_id", "both from_bank_id and to_bank_id are required")
	}
	if tr.FromBankID == tr.ToBankID {
		return validationErrorf("to_bank_id", "must differ from from_bank_id")
	}
	if !tr.Amount.IsPositive() {
		return validationErrorf("amount", "must be greater than zero")
	}
	return nil
}

func validateCredit(cr Credit) error {
	if cr.Type != OweMe && cr.Type != IOwe {
		return validationErrorf("type", "must be %q or %q", OweMe, IOwe)
	}
	if strings.TrimSpace(cr.PersonName) == "" {
		return validationErrorf("person_name", "cannot be empty")
	}
	if !cr.Amount.IsPositive() {
		return validationErrorf("amount", "must be greater than zero")
	}
	return nil
}
