package main

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"fintrack/ledger"
)

const dateLayout = "2006-01-02"

// requireUser extracts the caller identity from the X-User-ID header and
// stows it in the request context. Every store call downstream is scoped
// to this owner; there is no ambient session.
func requireUser(c *gin.Context) {
	owner := c.GetHeader("X-User-ID")
	if owner == "" {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing X-User-ID header"})
		return
	}
	c.Set("owner", owner)
	c.Next()
}

func ownerFrom(c *gin.Context) string {
	return c.GetString("owner")
}

// handleStoreError converts service and store errors to HTTP responses.
func handleStoreError(err error) (statusCode int, message string) {
	var ve *ledger.ValidationError
	switch {
	case errors.As(err, &ve):
		return http.StatusBadRequest, ve.Error()
	case errors.Is(err, ledger.ErrNotFound):
		return http.StatusNotFound, "Resource not found"
	case errors.Is(err, ledger.ErrPermissionDenied):
		return http.StatusForbidden, "Resource belongs to another user"
	case errors.Is(err, ledger.ErrConflict):
		return http.StatusConflict, "Resource already exists"
	default:
		return http.StatusInternalServerError, "Internal server error"
	}
}

// parseAmount accepts a positive fixed-point amount string.
func parseAmount(s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, &ledger.ValidationError{Field: "amount", Reason: "must be a decimal number"}
	}
	return d, nil
}

// parseDate accepts YYYY-MM-DD; empty input maps to the zero time, which
// the service fills with today.
func parseDate(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	d, err := time.Parse(dateLayout, s)
	if err != nil {
		return time.Time{}, &ledger.ValidationError{Field: "date", Reason: "must be YYYY-MM-DD"}
	}
	return d, nil
}

// parseFilter builds a list filter from the request query string.
func parseFilter(c *gin.Context) (ledger.Filter, error) {
	f := ledger.Filter{
		BankID:     c.Query("bank_id"),
		Type:       ledger.EntryType(c.Query("type")),
		Category:   c.Query("category"),
		PersonName: c.Query("person"),
	}
	var err error
	if f.From, err = parseDate(c.Query("from")); err != nil {
		return ledger.Filter{}, err
	}
	if f.To, err = parseDate(c.Query("to")); err != nil {
		return ledger.Filter{}, err
	}
	return f, nil
}

// Conversions from domain types to API types

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func convertBank(b ledger.Bank) Bank {
	return Bank{
		ID:        b.ID,
		Name:      b.Name,
		Balance:   b.Balance.StringFixed(2),
		Color:     optional(b.Color),
		CreatedAt: b.CreatedAt,
		UpdatedAt: b.UpdatedAt,
	}
}

func convertTransaction(t ledger.Transaction) Transaction {
	return Transaction{
		ID:         t.ID,
		BankID:     t.BankID,
		Type:       string(t.Type),
		Amount:     t.Amount.StringFixed(2),
		Date:       t.Date.Format(dateLayout),
		Category:   t.Category,
		Notes:      optional(t.Notes),
		PersonName: optional(t.PersonName),
		CreatedAt:  t.CreatedAt,
		UpdatedAt:  t.UpdatedAt,
	}
}

func convertTransfer(tr ledger.Transfer) Transfer {
	return Transfer{
		ID:         tr.ID,
		FromBankID: tr.FromBankID,
		ToBankID:   tr.ToBankID,
		Amount:     tr.Amount.StringFixed(2),
		Date:       tr.Date.Format(dateLayout),
		Notes:      optional(tr.Notes),
		CreatedAt:  tr.CreatedAt,
	}
}

func convertCredit(cr ledger.Credit) Credit {
	return Credit{
		ID:          cr.ID,
		PersonName:  cr.PersonName,
		Amount:      cr.Amount.StringFixed(2),
		Type:        string(cr.Type),
		Description: optional(cr.Description),
		Date:        cr.Date.Format(dateLayout),
		CreatedAt:   cr.CreatedAt,
		UpdatedAt:   cr.UpdatedAt,
	}
}

func convertCategorySummaries(in []ledger.CategorySummary) []CategorySummary {
	out := make([]CategorySummary, 0, len(in))
	for _, s := range in {
		out = append(out, CategorySummary{
			Category: s.Category,
			Income:   s.Income.StringFixed(2),
			Expense:  s.Expense.StringFixed(2),
			Net:      s.Net.StringFixed(2),
			Count:    s.Count,
		})
	}
	return out
}

func convertPeriodSummaries(in []ledger.PeriodSummary) []PeriodSummary {
	out := make([]PeriodSummary, 0, len(in))
	for _, s := range in {
		out = append(out, PeriodSummary{
			Period:  s.Period,
			Income:  s.Income.StringFixed(2),
			Expense: s.Expense.StringFixed(2),
			Net:     s.Net.StringFixed(2),
			Count:   s.Count,
		})
	}
	return out
}

func convertPersonSummaries(in []ledger.PersonSummary) []PersonSummary {
	out := make([]PersonSummary, 0, len(in))
	for _, s := range in {
		out = append(out, PersonSummary{
			PersonName: s.PersonName,
			OwedToMe:   s.OwedToMe.StringFixed(2),
			IOwe:       s.IOwe.StringFixed(2),
			Net:        s.Net.StringFixed(2),
			Count:      s.Count,
		})
	}
	return out
}
