package models

import "github.com/shopspring/decimal"

// Transaction types as reported by the record store.
const (
	TransactionIncome  = "income"
	TransactionExpense = "expense"
)

// Transaction is a single income or expense entry from the record store.
// Amounts are decimal to avoid penny drift when summing many entries.
type Transaction struct {
	Type        string          `json:"transactionType"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description,omitempty"`
}

// PeriodRecord groups the transactions of one reporting period. The record
// store keys periods by "_id" (a date for daily records, a period label for
// weekly and monthly ones) and adds explicit bounds for weekly records.
type PeriodRecord struct {
	ID            string        `json:"_id"`
	WeekStartDate string        `json:"weekStartDate,omitempty"`
	WeekEndDate   string        `json:"weekEndDate,omitempty"`
	Transactions  []Transaction `json:"transactions"`
}

// Report is the nested structure returned by the record store's report
// endpoint. Any of the three granularities may be absent.
type Report struct {
	Daily   []PeriodRecord `json:"daily,omitempty"`
	Weekly  []PeriodRecord `json:"weekly,omitempty"`
	Monthly []PeriodRecord `json:"monthly,omitempty"`
}

// Empty reports whether the report carries no period records at all.
func (r *Report) Empty() bool {
	return r == nil || (len(r.Daily) == 0 && len(r.Weekly) == 0 && len(r.Monthly) == 0)
}
