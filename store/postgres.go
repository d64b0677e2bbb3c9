package store

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"fintrack/ledger"
)

// Postgres is the pgx-backed ledger.Store. Every balance-affecting
// mutation runs the ledger row change and its deltas inside a single
// database transaction, and each delta is a server-side
// `balance = balance + $n` increment, so two concurrent mutations on the
// same bank compose instead of clobbering each other.
type Postgres struct {
	pool *pgxpool.Pool
}

// NewPostgres creates a Postgres store over an existing pool.
func NewPostgres(pool *pgxpool.Pool) *Postgres {
	return &Postgres{pool: pool}
}

var _ ledger.Store = (*Postgres)(nil)

// Bank operations

const bankColumns = `id, owner, name, balance::text, color, created_at, updated_at`

func (p *Postgres) InsertBank(ctx context.Context, b ledger.Bank) (ledger.Bank, error) {
	_, err := p.pool.Exec(ctx, `
		INSERT INTO banks (id, owner, name, balance, color, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		b.ID, b.Owner, b.Name, b.Balance.String(), nullText(b.Color), b.CreatedAt, b.UpdatedAt)
	if err != nil {
		return ledger.Bank{}, mapError(err)
	}
	return b, nil
}

func (p *Postgres) GetBank(ctx context.Context, owner, id string) (ledger.Bank, error) {
	row := p.pool.QueryRow(ctx, `SELECT `+bankColumns+` FROM banks WHERE id = $1`, id)
	b, err := scanBank(row)
	if err != nil {
		return ledger.Bank{}, mapError(err)
	}
	if b.Owner != owner {
		return ledger.Bank{}, ledger.ErrPermissionDenied
	}
	return b, nil
}

func (p *Postgres) ListBanks(ctx context.Context, owner string) ([]ledger.Bank, error) {
	rows, err := p.pool.Query(ctx, `SELECT `+bankColumns+` FROM banks WHERE owner = $1 ORDER BY name`, owner)
	if err != nil {
		return nil, mapError(err)
	}
	defer rows.Close()

	banks := make([]ledger.Bank, 0)
	for rows.Next() {
		b, err := scanBank(rows)
		if err != nil {
			return nil, mapError(err)
		}
		banks = append(banks, b)
	}
	return banks, mapError(rows.Err())
}

func (p *Postgres) UpdateBank(ctx context.Context, b ledger.Bank) (ledger.Bank, error) {
	tag, err := p.pool.Exec(ctx, `
		UPDATE banks SET name = $1, color = $2, updated_at = $3
		WHERE id = $4 AND owner = $5`,
		b.Name, nullText(b.Color), b.UpdatedAt, b.ID, b.Owner)
	if err != nil {
		return ledger.Bank{}, mapError(err)
	}
	if tag.RowsAffected() == 0 {
		return ledger.Bank{}, ledger.ErrNotFound
	}
	return p.GetBank(ctx, b.Owner, b.ID)
}

func (p *Postgres) DeleteBank(ctx context.Context, owner, id string, deltas []ledger.BalanceDelta) error {
	// ON DELETE CASCADE removes the bank's transactions and transfers;
	// each cascaded transfer's leg on a surviving bank is reversed first,
	// inside the same transaction.
	return p.inTx(ctx, func(tx pgx.Tx) error {
		if err := applyDeltas(ctx, tx, owner, deltas); err != nil {
			return err
		}
		tag, err := tx.Exec(ctx, `DELETE FROM banks WHERE id = $1 AND owner = $2`, id, owner)
		if err != nil {
			return err
		}
		if tag.RowsAffected() == 0 {
			return ledger.ErrNotFound
		}
		return nil
	})
}

// applyDeltas executes each delta as an atomic increment within tx.
func applyDeltas(ctx context.Context, tx pgx.Tx, owner string, deltas []ledger.BalanceDelta) error {
	for _, d := range deltas {
		tag, err := tx.Exec(ctx, `
			UPDATE banks SET balance = balance + $1, updated_at = now()
			WHERE id = $2 AND owner = $3`,
			d.Delta.String(), d.BankID, owner)
		if err != nil {
			return err
		}
		if tag.RowsAffected() == 0 {
			return ledger.ErrNotFound
		}
	}
	return nil
}

// inTx runs fn inside a transaction, rolling back on any error so the
// ledger row and its balance deltas land together or not at all.
func (p *Postgres) inTx(ctx context.Context, fn func(pgx.Tx) error) error {
	tx, err := p.pool.Begin(ctx)
	if err != nil {
		return mapError(err)
	}
	defer tx.Rollback(ctx)

	if err := fn(tx); err != nil {
		return mapError(err)
	}
	return mapError(tx.Commit(ctx))
}

// Transaction operations

const transactionColumns = `id, owner, bank_id, type, amount::text, date, category, notes, person_name, created_at, updated_at`

func (p *Postgres) InsertTransaction(ctx context.Context, t ledger.Transaction, deltas []ledger.BalanceDelta) (ledger.Transaction, error) {
	err := p.inTx(ctx, func(tx pgx.Tx) error {
		_, err := tx.Exec(ctx, `
			INSERT INTO transactions (id, owner, bank_id, type, amount, date, category, notes, person_name, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
			t.ID, t.Owner, t.BankID, string(t.Type), t.Amount.String(), t.Date,
			t.Category, nullText(t.Notes), nullText(t.PersonName), t.CreatedAt, t.UpdatedAt)
		if err != nil {
			return err
		}
		return applyDeltas(ctx, tx, t.Owner, deltas)
	})
	if err != nil {
		return ledger.Transaction{}, err
	}
	return t, nil
}

func (p *Postgres) GetTransaction(ctx context.Context, owner, id string) (ledger.Transaction, error) {
	row := p.pool.QueryRow(ctx, `SELECT `+transactionColumns+` FROM transactions WHERE id = $1`, id)
	t, err := scanTransaction(row)
	if err != nil {
		return ledger.Transaction{}, mapError(err)
	}
	if t.Owner != owner {
		return ledger.Transaction{}, ledger.ErrPermissionDenied
	}
	return t, nil
}

func (p *Postgres) ListTransactions(ctx context.Context, owner string, f ledger.Filter) ([]ledger.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE owner = $1`
	args := []interface{}{owner}

	if f.BankID != "" {
		args = append(args, f.BankID)
		query += fmt.Sprintf(" AND bank_id = $%d", len(args))
	}
	if f.Type != "" {
		args = append(args, string(f.Type))
		query += fmt.Sprintf(" AND type = $%d", len(args))
	}
	if f.Category != "" {
		args = append(args, f.Category)
		query += fmt.Sprintf(" AND category = $%d", len(args))
	}
	if f.PersonName != "" {
		args = append(args, f.PersonName)
		query += fmt.Sprintf(" AND person_name = $%d", len(args))
	}
	query += dateRange(&args, f)
	query += " ORDER BY date DESC, created_at DESC"

	rows, err := p.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, mapError(err)
	}
	defer rows.Close()

	txs := make([]ledger.Transaction, 0)
	for rows.Next() {
		t, err := scanTransaction(rows)
		if err != nil {
			return nil, mapError(err)
		}
		txs = append(txs, t)
	}
	return txs, mapError(rows.Err())
}

func (p *Postgres) UpdateTransaction(ctx context.Context, t ledger.Transaction, deltas []ledger.BalanceDelta) (ledger.Transaction, error) {
	err := p.inTx(ctx, func(tx pgx.Tx) error {
		tag, err := tx.Exec(ctx, `
			UPDATE transactions
			SET bank_id = $1, type = $2, amount = $3, date = $4, category = $5,
			    notes = $6, person_name = $7, updated_at = $8
			WHERE id = $9 AND owner = $10`,
			t.BankID, string(t.Type), t.Amount.String(), t.Date, t.Category,
			nullText(t.Notes), nullText(t.PersonName), t.UpdatedAt, t.ID, t.Owner)
		if err != nil {
			return err
		}
		if tag.RowsAffected() == 0 {
			return ledger.ErrNotFound
		}
		return applyDeltas(ctx, tx, t.Owner, deltas)
	})
	if err != nil {
		return ledger.Transaction{}, err
	}
	return t, nil
}

func (p *Postgres) DeleteTransaction(ctx context.Context, owner, id string, deltas []ledger.BalanceDelta) error {
	return p.inTx(ctx, func(tx pgx.Tx) error {
		tag, err := tx.Exec(ctx, `DELETE FROM transactions WHERE id = $1 AND owner = $2`, id, owner)
		if err != nil {
			return err
		}
		if tag.RowsAffected() == 0 {
			return ledger.ErrNotFound
		}
		return applyDeltas(ctx, tx, owner, deltas)
	})
}

// Transfer operations

const transferColumns = `id, owner, from_bank_id, to_bank_id, amount::text, date, notes, created_at`

func (p *Postgres) InsertTransfer(ctx context.Context, tr ledger.Transfer, deltas []ledger.BalanceDelta) (ledger.Transfer, error) {
	err := p.inTx(ctx, func(tx pgx.Tx) error {
		_, err := tx.Exec(ctx, `
			INSERT INTO transfers (id, owner, from_bank_id, to_bank_id, amount, date, notes, created_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
			tr.ID, tr.Owner, tr.FromBankID, tr.ToBankID, tr.Amount.String(),
			tr.Date, nullText(tr.Notes), tr.CreatedAt)
		if err != nil {
			return err
		}
		return applyDeltas(ctx, tx, tr.Owner, deltas)
	})
	if err != nil {
		return ledger.Transfer{}, err
	}
	return tr, nil
}

func (p *Postgres) GetTransfer(ctx context.Context, owner, id string) (ledger.Transfer, error) {
	row := p.pool.QueryRow(ctx, `SELECT `+transferColumns+` FROM transfers WHERE id = $1`, id)
	tr, err := scanTransfer(row)
	if err != nil {
		return ledger.Transfer{}, mapError(err)
	}
	if tr.Owner != owner {
		return ledger.Transfer{}, ledger.ErrPermissionDenied
	}
	return tr, nil
}

func (p *Postgres) ListTransfers(ctx context.Context, owner string, f ledger.Filter) ([]ledger.Transfer, error) {
	query := `SELECT ` + transferColumns + ` FROM transfers WHERE owner = $1`
	args := []interface{}{owner}

	if f.BankID != "" {
		args = append(args, f.BankID)
		query += fmt.Sprintf(" AND (from_bank_id = $%d OR to_bank_id = $%d)", len(args), len(args))
	}
	query += dateRange(&args, f)
	query += " ORDER BY date DESC, created_at DESC"

	rows, err := p.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, mapError(err)
	}
	defer rows.Close()

	transfers := make([]ledger.Transfer, 0)
	for rows.Next() {
		tr, err := scanTransfer(rows)
		if err != nil {
			return nil, mapError(err)
		}
		transfers = append(transfers, tr)
	}
	return transfers, mapError(rows.Err())
}

func (p *Postgres) DeleteTransfer(ctx context.Context, owner, id string, deltas []ledger.BalanceDelta) error {
	return p.inTx(ctx, func(tx pgx.Tx) error {
		tag, err := tx.Exec(ctx, `DELETE FROM transfers WHERE id = $1 AND owner = $2`, id, owner)
		if err != nil {
			return err
		}
		if tag.RowsAffected() == 0 {
			return ledger.ErrNotFound
		}
		return applyDeltas(ctx, tx, owner, deltas)
	})
}

// Credit operations

const creditColumns = `id, owner, person_name, amount::text, type, description, date, created_at, updated_at`

func (p *Postgres) InsertCredit(ctx context.Context, cr ledger.Credit) (ledger.Credit, error) {
	_, err := p.pool.Exec(ctx, `
		INSERT INTO credits (id, owner, person_name, amount, type, description, date, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		cr.ID, cr.Owner, cr.PersonName, cr.Amount.String(), string(cr.Type),
		nullText(cr.Description), cr.Date, cr.CreatedAt, cr.UpdatedAt)
	if err != nil {
		return ledger.Credit{}, mapError(err)
	}
	return cr, nil
}

func (p *Postgres) GetCredit(ctx context.Context, owner, id string) (ledger.Credit, error) {
	row := p.pool.QueryRow(ctx, `SELECT `+creditColumns+` FROM credits WHERE id = $1`, id)
	cr, err := scanCredit(row)
	if err != nil {
		return ledger.Credit{}, mapError(err)
	}
	if cr.Owner != owner {
		return ledger.Credit{}, ledger.ErrPermissionDenied
	}
	return cr, nil
}

func (p *Postgres) ListCredits(ctx context.Context, owner string, f ledger.Filter) ([]ledger.Credit, error) {
	query := `SELECT ` + creditColumns + ` FROM credits WHERE owner = $1`
	args := []interface{}{owner}

	if f.PersonName != "" {
		args = append(args, f.PersonName)
		query += fmt.Sprintf(" AND person_name = $%d", len(args))
	}
	query += dateRange(&args, f)
	query += " ORDER BY date DESC, created_at DESC"

	rows, err := p.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, mapError(err)
	}
	defer rows.Close()

	credits := make([]ledger.Credit, 0)
	for rows.Next() {
		cr, err := scanCredit(rows)
		if err != nil {
			return nil, mapError(err)
		}
		credits = append(credits, cr)
	}
	return credits, mapError(rows.Err())
}

func (p *Postgres) UpdateCredit(ctx context.Context, cr ledger.Credit) (ledger.Credit, error) {
	tag, err := p.pool.Exec(ctx, `
		UPDATE credits
		SET person_name = $1, amount = $2, type = $3, description = $4, date = $5, updated_at = $6
		WHERE id = $7 AND owner = $8`,
		cr.PersonName, cr.Amount.String(), string(cr.Type), nullText(cr.Description),
		cr.Date, cr.UpdatedAt, cr.ID, cr.Owner)
	if err != nil {
		return ledger.Credit{}, mapError(err)
	}
	if tag.RowsAffected() == 0 {
		return ledger.Credit{}, ledger.ErrNotFound
	}
	return cr, nil
}

func (p *Postgres) DeleteCredit(ctx context.Context, owner, id string) error {
	tag, err := p.pool.Exec(ctx, `DELETE FROM credits WHERE id = $1 AND owner = $2`, id, owner)
	if err != nil {
		return mapError(err)
	}
	if tag.RowsAffected() == 0 {
		return ledger.ErrNotFound
	}
	return nil
}

// Scan and conversion helpers

func scanBank(row pgx.Row) (ledger.Bank, error) {
	var b ledger.Bank
	var balance string
	var color pgtype.Text
	if err := row.Scan(&b.ID, &b.Owner, &b.Name, &balance, &color, &b.CreatedAt, &b.UpdatedAt); err != nil {
		return ledger.Bank{}, err
	}
	var err error
	if b.Balance, err = decimal.NewFromString(balance); err != nil {
		return ledger.Bank{}, err
	}
	b.Color = color.String
	return b, nil
}

func scanTransaction(row pgx.Row) (ledger.Transaction, error) {
	var t ledger.Transaction
	var txType, amount string
	var notes, personName pgtype.Text
	if err := row.Scan(&t.ID, &t.Owner, &t.BankID, &txType, &amount, &t.Date,
		&t.Category, &notes, &personName, &t.CreatedAt, &t.UpdatedAt); err != nil {
		return ledger.Transaction{}, err
	}
	var err error
	if t.Amount, err = decimal.NewFromString(amount); err != nil {
		return ledger.Transaction{}, err
	}
	t.Type = ledger.EntryType(txType)
	t.Notes = notes.String
	t.PersonName = personName.String
	return t, nil
}

func scanTransfer(row pgx.Row) (ledger.Transfer, error) {
	var tr ledger.Transfer
	var amount string
	var notes pgtype.Text
	if err := row.Scan(&tr.ID, &tr.Owner, &tr.FromBankID, &tr.ToBankID, &amount,
		&tr.Date, &notes, &tr.CreatedAt); err != nil {
		return ledger.Transfer{}, err
	}
	var err error
	if tr.Amount, err = decimal.NewFromString(amount); err != nil {
		return ledger.Transfer{}, err
	}
	tr.Notes = notes.String
	return tr, nil
}

func scanCredit(row pgx.Row) (ledger.Credit, error) {
	var cr ledger.Credit
	var crType, amount string
	var description pgtype.Text
	if err := row.Scan(&cr.ID, &cr.Owner, &cr.PersonName, &amount, &crType,
		&description, &cr.Date, &cr.CreatedAt, &cr.UpdatedAt); err != nil {
		return ledger.Credit{}, err
	}
	var err error
	if cr.Amount, err = decimal.NewFromString(amount); err != nil {
		return ledger.Credit{}, err
	}
	cr.Type = ledger.CreditType(crType)
	cr.Description = description.String
	return cr, nil
}

func nullText(s string) pgtype.Text {
	return pgtype.Text{String: s, Valid: s != ""}
}

func dateRange(args *[]interface{}, f ledger.Filter) string {
	var clause strings.Builder
	if !f.From.IsZero() {
		*args = append(*args, f.From)
		fmt.Fprintf(&clause, " AND date >= $%d", len(*args))
	}
	if !f.To.IsZero() {
		*args = append(*args, f.To)
		fmt.Fprintf(&clause, " AND date <= $%d", len(*args))
	}
	return clause.String()
}

// mapError converts pgx-level failures into the ledger error taxonomy.
func mapError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, ledger.ErrNotFound) || errors.Is(err, ledger.ErrPermissionDenied) || errors.Is(err, ledger.ErrConflict) {
		return err
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return ledger.ErrNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23503":
			// Foreign key violation: the referenced bank is gone.
			return ledger.ErrNotFound
		case "23505":
			// Unique violation: duplicate owner-scoped bank name.
			return ledger.ErrConflict
		}
	}
	return fmt.Errorf("store: %w", err)
}
