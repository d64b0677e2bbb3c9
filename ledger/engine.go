package ledger

import "github.com/shopspring/decimal"

// Balance reconciliation engine.
//
// Every mutation of a transaction or transfer maps to a set of balance
// deltas, one per affected bank. A store applies the ledger row change and
// all deltas in a single database transaction, so the bank invariant
//
//	balance == opening + Σ signed transactions + Σ signed transfer touches
//
// holds between any two mutations, even when mutations race on the same
// bank: deltas are applied as server-side increments, never as
// read-then-overwrite.

// BalanceDelta is a signed adjustment to one bank's stored balance.
type BalanceDelta struct {
	BankID string
	Delta  decimal.Decimal
}

// SignedEffect returns the signed contribution of an entry to its bank:
// +amount for income, -amount for expense.
func SignedEffect(t EntryType, amount decimal.Decimal) decimal.Decimal {
	if t == Income {
		return amount
	}
	return amount.Neg()
}

// TransactionCreated returns the delta applied when t is inserted.
func TransactionCreated(t Transaction) []BalanceDelta {
	return []BalanceDelta{{BankID: t.BankID, Delta: t.SignedAmount()}}
}

// TransactionDeleted returns the delta applied when t is removed: the
// exact inverse of TransactionCreated.
func TransactionDeleted(t Transaction) []BalanceDelta {
	return []BalanceDelta{{BankID: t.BankID, Delta: t.SignedAmount().Neg()}}
}

// TransactionUpdated returns the deltas for an in-place edit: the old
// entry's effect is reversed against the bank it was recorded on, and the
// new entry's effect is applied against the bank selected by the edit.
// When the bank is unchanged the two collapse into one delta, so the
// reversal is always computed from the stored row, never from the
// submitted form.
func TransactionUpdated(old, updated Transaction) []BalanceDelta {
	reversal := old.SignedAmount().Neg()
	effect := updated.SignedAmount()

	if old.BankID == updated.BankID {
		return []BalanceDelta{{BankID: old.BankID, Delta: reversal.Add(effect)}}
	}
	return []BalanceDelta{
		{BankID: old.BankID, Delta: reversal},
		{BankID: updated.BankID, Delta: effect},
	}
}

// TransferCreated returns the paired deltas applied when tr is inserted:
// the source bank is debited and the destination bank credited.
func TransferCreated(tr Transfer) []BalanceDelta {
	return []BalanceDelta{
		{BankID: tr.FromBankID, Delta: tr.Amount.Neg()},
		{BankID: tr.ToBankID, Delta: tr.Amount},
	}
}

// TransferDeleted returns the exact inverse of TransferCreated.
func TransferDeleted(tr Transfer) []BalanceDelta {
	return []BalanceDelta{
		{BankID: tr.FromBankID, Delta: tr.Amount},
		{BankID: tr.ToBankID, Delta: tr.Amount.Neg()},
	}
}

// BankDeleted returns the deltas for removing a bank together with every
// transfer touching it. The bank's own rows vanish with its balance, but
// each removed transfer also carried an effect on the bank at its other
// end; that leg is reversed so surviving banks stay reconciled. Deltas
// never target the deleted bank itself.
func BankDeleted(bankID string, transfers []Transfer) []BalanceDelta {
	var deltas []BalanceDelta
	for _, tr := range transfers {
		switch {
		case tr.FromBankID == bankID:
			// The counterpart was credited; take it back.
			deltas = append(deltas, BalanceDelta{BankID: tr.ToBankID, Delta: tr.Amount.Neg()})
		case tr.ToBankID == bankID:
			// The counterpart was debited; give it back.
			deltas = append(deltas, BalanceDelta{BankID: tr.FromBankID, Delta: tr.Amount})
		}
	}
	return deltas
}
