package ledger

import (
	"sort"

	"github.com/shopspring/decimal"
)

// Aggregation helpers for the reporting endpoints. All of these are pure:
// they take already-fetched rows and group them, so the dashboards never
// touch the store directly.

// UncategorizedLabel is the bucket for transactions without a category.
const UncategorizedLabel = "Uncategorized"

// CategorySummary is the income/expense breakdown for one category.
type CategorySummary struct {
	Category string
	Income   decimal.Decimal
	Expense  decimal.Decimal
	Net      decimal.Decimal
	Count    int
}

// PeriodSummary is the income/expense breakdown for one day or month.
type PeriodSummary struct {
	Period  string
	Income  decimal.Decimal
	Expense decimal.Decimal
	Net     decimal.Decimal
	Count   int
}

// PersonSummary nets a person's credits: what they owe the user minus
// what the user owes them.
type PersonSummary struct {
	PersonName string
	OwedToMe   decimal.Decimal
	IOwe       decimal.Decimal
	Net        decimal.Decimal
	Count      int
}

// SummarizeByCategory groups transactions per category, largest absolute
// net first. Empty categories fall into the Uncategorized bucket.
func SummarizeByCategory(txs []Transaction) []CategorySummary {
	buckets := make(map[string]*CategorySummary)
	for _, t := range txs {
		key := t.Category
		if key == "" {
			key = UncategorizedLabel
		}
		b, ok := buckets[key]
		if !ok {
			b = &CategorySummary{Category: key}
			buckets[key] = b
		}
		accumulate(&b.Income, &b.Expense, &b.Net, t)
		b.Count++
	}

	out := make([]CategorySummary, 0, len(buckets))
	for _, b := range buckets {
		out = append(out, *b)
	}
	sort.Slice(out, func(i, j int) bool {
		a, b := out[i].Net.Abs(), out[j].Net.Abs()
		if !a.Equal(b) {
			return a.GreaterThan(b)
		}
		return out[i].Category < out[j].Category
	})
	return out
}

// SummarizeByMonth groups transactions per calendar month (YYYY-MM),
// most recent month first.
func SummarizeByMonth(txs []Transaction) []PeriodSummary {
	return summarizeByPeriod(txs, "2006-01")
}

// SummarizeByDay groups transactions per day (YYYY-MM-DD), most recent
// day first.
func SummarizeByDay(txs []Transaction) []PeriodSummary {
	return summarizeByPeriod(txs, "2006-01-02")
}

func summarizeByPeriod(txs []Transaction, layout string) []PeriodSummary {
	buckets := make(map[string]*PeriodSummary)
	for _, t := range txs {
		key := t.Date.Format(layout)
		b, ok := buckets[key]
		if !ok {
			b = &PeriodSummary{Period: key}
			buckets[key] = b
		}
		accumulate(&b.Income, &b.Expense, &b.Net, t)
		b.Count++
	}

	out := make([]PeriodSummary, 0, len(buckets))
	for _, b := range buckets {
		out = append(out, *b)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Period > out[j].Period })
	return out
}

// SummarizeByPerson nets credits per distinct person, largest absolute
// net position first.
func SummarizeByPerson(credits []Credit) []PersonSummary {
	buckets := make(map[string]*PersonSummary)
	for _, cr := range credits {
		b, ok := buckets[cr.PersonName]
		if !ok {
			b = &PersonSummary{PersonName: cr.PersonName}
			buckets[cr.PersonName] = b
		}
		if cr.Type == OweMe {
			b.OwedToMe = b.OwedToMe.Add(cr.Amount)
		} else {
			b.IOwe = b.IOwe.Add(cr.Amount)
		}
		b.Net = b.OwedToMe.Sub(b.IOwe)
		b.Count++
	}

	out := make([]PersonSummary, 0, len(buckets))
	for _, b := range buckets {
		out = append(out, *b)
	}
	sort.Slice(out, func(i, j int) bool {
		a, b := out[i].Net.Abs(), out[j].Net.Abs()
		if !a.Equal(b) {
			return a.GreaterThan(b)
		}
		return out[i].PersonName < out[j].PersonName
	})
	return out
}

// Overview is the dashboard roll-up across all of a user's records.
type Overview struct {
	TotalBalance decimal.Decimal
	TotalIncome  decimal.Decimal
	TotalExpense decimal.Decimal
	CreditNet    decimal.Decimal
	BankCount    int
}

// Summarize builds the dashboard overview from the user's banks,
// transactions and credits.
func Summarize(banks []Bank, txs []Transaction, credits []Credit) Overview {
	o := Overview{BankCount: len(banks)}
	for _, b := range banks {
		o.TotalBalance = o.TotalBalance.Add(b.Balance)
	}
	for _, t := range txs {
		if t.Type == Income {
			o.TotalIncome = o.TotalIncome.Add(t.Amount)
		} else {
			o.TotalExpense = o.TotalExpense.Add(t.Amount)
		}
	}
	for _, cr := range credits {
		if cr.Type == OweMe {
			o.CreditNet = o.CreditNet.Add(cr.Amount)
		} else {
			o.CreditNet = o.CreditNet.Sub(cr.Amount)
		}
	}
	return o
}

func accumulate(income, expense, net *decimal.Decimal, t Transaction) {
	if t.Type == Income {
		*income = income.Add(t.Amount)
	} else {
		*expense = expense.Add(t.Amount)
	}
	*net = income.Sub(*expense)
}
