package main

import "time"

// API types. Monetary values travel as fixed-point strings ("1500.00") so
// clients never see binary-float artifacts.

// Bank represents a money-holding account with its maintained balance.
type Bank struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Balance   string    `json:"balance"`
	Color     *string   `json:"color"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Transaction represents a single income or expense entry.
type Transaction struct {
	ID         string    `json:"id"`
	BankID     string    `json:"bank_id"`
	Type       string    `json:"type"`
	Amount     string    `json:"amount"`
	Date       string    `json:"date"`
	Category   string    `json:"category"`
	Notes      *string   `json:"notes"`
	PersonName *string   `json:"person_name"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// Transfer represents a paired debit/credit between two banks.
type Transfer struct {
	ID         string    `json:"id"`
	FromBankID string    `json:"from_bank_id"`
	ToBankID   string    `json:"to_bank_id"`
	Amount     string    `json:"amount"`
	Date       string    `json:"date"`
	Notes      *string   `json:"notes"`
	CreatedAt  time.Time `json:"created_at"`
}

// Credit represents a personal IOU record.
type Credit struct {
	ID          string    `json:"id"`
	PersonName  string    `json:"person_name"`
	Amount      string    `json:"amount"`
	Type        string    `json:"type"`
	Description *string   `json:"description"`
	Date        string    `json:"date"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// CategorySummary is the per-category income/expense breakdown.
type CategorySummary struct {
	Category string `json:"category"`
	Income   string `json:"income"`
	Expense  string `json:"expense"`
	Net      string `json:"net"`
	Count    int    `json:"count"`
}

// PeriodSummary is the per-day or per-month breakdown.
type PeriodSummary struct {
	Period  string `json:"period"`
	Income  string `json:"income"`
	Expense string `json:"expense"`
	Net     string `json:"net"`
	Count   int    `json:"count"`
}

// PersonSummary is the net credit position against one person.
type PersonSummary struct {
	PersonName string `json:"person_name"`
	OwedToMe   string `json:"owed_to_me"`
	IOwe       string `json:"i_owe"`
	Net        string `json:"net"`
	Count      int    `json:"count"`
}

// Overview is the dashboard roll-up.
type Overview struct {
	TotalBalance string `json:"total_balance"`
	TotalIncome  string `json:"total_income"`
	TotalExpense string `json:"total_expense"`
	CreditNet    string `json:"credit_net"`
	BankCount    int    `json:"bank_count"`
}
