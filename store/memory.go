package store

import (
	"context"
	"sort"
	"sync"

	"fintrack/ledger"
)

// Memory is an in-memory ledger.Store. A single mutex serializes every
// mutation, so a row change and its balance deltas are applied as one
// atomic step, matching the transactional behavior of the Postgres store.
type Memory struct {
	mu           sync.Mutex
	banks        map[string]ledger.Bank
	transactions map[string]ledger.Transaction
	transfers    map[string]ledger.Transfer
	credits      map[string]ledger.Credit
}

// NewMemory creates an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{
		banks:        make(map[string]ledger.Bank),
		transactions: make(map[string]ledger.Transaction),
		transfers:    make(map[string]ledger.Transfer),
		credits:      make(map[string]ledger.Credit),
	}
}

var _ ledger.Store = (*Memory)(nil)

// Bank operations

func (m *Memory) InsertBank(_ context.Context, b ledger.Bank) (ledger.Bank, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.bankNameTakenLocked(b.Owner, b.Name, b.ID) {
		return ledger.Bank{}, ledger.ErrConflict
	}
	m.banks[b.ID] = b
	return b, nil
}

// bankNameTakenLocked mirrors the UNIQUE (owner, name) constraint in the
// SQL schema.
func (m *Memory) bankNameTakenLocked(owner, name, excludeID string) bool {
	for _, b := range m.banks {
		if b.Owner == owner && b.Name == name && b.ID != excludeID {
			return true
		}
	}
	return false
}

func (m *Memory) GetBank(_ context.Context, owner, id string) (ledger.Bank, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.getBankLocked(owner, id)
}

func (m *Memory) getBankLocked(owner, id string) (ledger.Bank, error) {
	b, ok := m.banks[id]
	if !ok {
		return ledger.Bank{}, ledger.ErrNotFound
	}
	if b.Owner != owner {
		return ledger.Bank{}, ledger.ErrPermissionDenied
	}
	return b, nil
}

func (m *Memory) ListBanks(_ context.Context, owner string) ([]ledger.Bank, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]ledger.Bank, 0)
	for _, b := range m.banks {
		if b.Owner == owner {
			out = append(out, b)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (m *Memory) UpdateBank(_ context.Context, b ledger.Bank) (ledger.Bank, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	cur, err := m.getBankLocked(b.Owner, b.ID)
	if err != nil {
		return ledger.Bank{}, err
	}
	if m.bankNameTakenLocked(b.Owner, b.Name, b.ID) {
		return ledger.Bank{}, ledger.ErrConflict
	}
	cur.Name = b.Name
	cur.Color = b.Color
	cur.UpdatedAt = b.UpdatedAt
	m.banks[b.ID] = cur
	return cur, nil
}

func (m *Memory) DeleteBank(_ context.Context, owner, id string, deltas []ledger.BalanceDelta) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, err := m.getBankLocked(owner, id); err != nil {
		return err
	}
	// Reverse the cascaded transfers' legs on surviving banks before the
	// rows disappear.
	if err := m.applyDeltasLocked(owner, deltas); err != nil {
		return err
	}
	delete(m.banks, id)
	// Cascade, mirroring the foreign keys in the SQL schema.
	for txID, t := range m.transactions {
		if t.BankID == id {
			delete(m.transactions, txID)
		}
	}
	for trID, tr := range m.transfers {
		if tr.FromBankID == id || tr.ToBankID == id {
			delete(m.transfers, trID)
		}
	}
	return nil
}

// applyDeltasLocked validates every target bank before touching any
// balance, so a bad delta set leaves all balances unchanged.
func (m *Memory) applyDeltasLocked(owner string, deltas []ledger.BalanceDelta) error {
	for _, d := range deltas {
		if _, err := m.getBankLocked(owner, d.BankID); err != nil {
			return err
		}
	}
	for _, d := range deltas {
		b := m.banks[d.BankID]
		b.Balance = b.Balance.Add(d.Delta)
		m.banks[d.BankID] = b
	}
	return nil
}

// Transaction operations

func (m *Memory) InsertTransaction(_ context.Context, t ledger.Transaction, deltas []ledger.BalanceDelta) (ledger.Transaction, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.applyDeltasLocked(t.Owner, deltas); err != nil {
		return ledger.Transaction{}, err
	}
	m.transactions[t.ID] = t
	return t, nil
}

func (m *Memory) GetTransaction(_ context.Context, owner, id string) (ledger.Transaction, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.getTransactionLocked(owner, id)
}

func (m *Memory) getTransactionLocked(owner, id string) (ledger.Transaction, error) {
	t, ok := m.transactions[id]
	if !ok {
		return ledger.Transaction{}, ledger.ErrNotFound
	}
	if t.Owner != owner {
		return ledger.Transaction{}, ledger.ErrPermissionDenied
	}
	return t, nil
}

func (m *Memory) ListTransactions(_ context.Context, owner string, f ledger.Filter) ([]ledger.Transaction, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]ledger.Transaction, 0)
	for _, t := range m.transactions {
		if t.Owner == owner && f.MatchesTransaction(t) {
			out = append(out, t)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].Date.Equal(out[j].Date) {
			return out[i].Date.After(out[j].Date)
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (m *Memory) UpdateTransaction(_ context.Context, t ledger.Transaction, deltas []ledger.BalanceDelta) (ledger.Transaction, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, err := m.getTransactionLocked(t.Owner, t.ID); err != nil {
		return ledger.Transaction{}, err
	}
	if err := m.applyDeltasLocked(t.Owner, deltas); err != nil {
		return ledger.Transaction{}, err
	}
	m.transactions[t.ID] = t
	return t, nil
}

func (m *Memory) DeleteTransaction(_ context.Context, owner, id string, deltas []ledger.BalanceDelta) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, err := m.getTransactionLocked(owner, id); err != nil {
		return err
	}
	if err := m.applyDeltasLocked(owner, deltas); err != nil {
		return err
	}
	delete(m.transactions, id)
	return nil
}

// Transfer operations

func (m *Memory) InsertTransfer(_ context.Context, tr ledger.Transfer, deltas []ledger.BalanceDelta) (ledger.Transfer, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.applyDeltasLocked(tr.Owner, deltas); err != nil {
		return ledger.Transfer{}, err
	}
	m.transfers[tr.ID] = tr
	return tr, nil
}

func (m *Memory) GetTransfer(_ context.Context, owner, id string) (ledger.Transfer, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.getTransferLocked(owner, id)
}

func (m *Memory) getTransferLocked(owner, id string) (ledger.Transfer, error) {
	tr, ok := m.transfers[id]
	if !ok {
		return ledger.Transfer{}, ledger.ErrNotFound
	}
	if tr.Owner != owner {
		return ledger.Transfer{}, ledger.ErrPermissionDenied
	}
	return tr, nil
}

func (m *Memory) ListTransfers(_ context.Context, owner string, f ledger.Filter) ([]ledger.Transfer, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]ledger.Transfer, 0)
	for _, tr := range m.transfers {
		if tr.Owner == owner && f.MatchesTransfer(tr) {
			out = append(out, tr)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].Date.Equal(out[j].Date) {
			return out[i].Date.After(out[j].Date)
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (m *Memory) DeleteTransfer(_ context.Context, owner, id string, deltas []ledger.BalanceDelta) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, err := m.getTransferLocked(owner, id); err != nil {
		return err
	}
	if err := m.applyDeltasLocked(owner, deltas); err != nil {
		return err
	}
	delete(m.transfers, id)
	return nil
}

// Credit operations

func (m *Memory) InsertCredit(_ context.Context, cr ledger.Credit) (ledger.Credit, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.credits[cr.ID] = cr
	return cr, nil
}

func (m *Memory) GetCredit(_ context.Context, owner, id string) (ledger.Credit, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.getCreditLocked(owner, id)
}

func (m *Memory) getCreditLocked(owner, id string) (ledger.Credit, error) {
	cr, ok := m.credits[id]
	if !ok {
		return ledger.Credit{}, ledger.ErrNotFound
	}
	if cr.Owner != owner {
		return ledger.Credit{}, ledger.ErrPermissionDenied
	}
	return cr, nil
}

func (m *Memory) ListCredits(_ context.Context, owner string, f ledger.Filter) ([]ledger.Credit, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]ledger.Credit, 0)
	for _, cr := range m.credits {
		if cr.Owner == owner && f.MatchesCredit(cr) {
			out = append(out, cr)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].Date.Equal(out[j].Date) {
			return out[i].Date.After(out[j].Date)
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (m *Memory) UpdateCredit(_ context.Context, cr ledger.Credit) (ledger.Credit, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, err := m.getCreditLocked(cr.Owner, cr.ID); err != nil {
		return ledger.Credit{}, err
	}
	m.credits[cr.ID] = cr
	return cr, nil
}

func (m *Memory) DeleteCredit(_ context.Context, owner, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, err := m.getCreditLocked(owner, id); err != nil {
		return err
	}
	delete(m.credits, id)
	return nil
}
