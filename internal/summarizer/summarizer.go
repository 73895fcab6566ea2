// Package summarizer converts raw transaction reports into textual chunks.
// The transformation is pure and deterministic: identical input yields
// byte-identical chunk text and identical totals.
package summarizer

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/teddyfinance/assistant/internal/models"
)

// Summarize derives one chunk per reporting period present in the report.
// Granularities absent from the report produce no chunks; period order within
// each granularity follows the source. A nil report yields no chunks.
func Summarize(report *models.Report) []models.Chunk {
	if report == nil {
		return nil
	}

	var chunks []models.Chunk
	for _, rec := range report.Daily {
		chunks = append(chunks, dailyChunk(rec))
	}
	for _, rec := range report.Weekly {
		chunks = append(chunks, weeklyChunk(rec))
	}
	for _, rec := range report.Monthly {
		chunks = append(chunks, monthlyChunk(rec))
	}
	return chunks
}

func dailyChunk(rec models.PeriodRecord) models.Chunk {
	income, expense := totals(rec.Transactions)
	net := income.Sub(expense)

	var b strings.Builder
	fmt.Fprintf(&b, "Date: %s\n", rec.ID)
	fmt.Fprintf(&b, "Income: $%s, Expenses: $%s, Net: $%s\n", money(income), money(expense), money(net))
	b.WriteString("Transactions:\n")
	for _, t := range rec.Transactions {
		desc := t.Description
		if desc == "" {
			desc = "N/A"
		}
		fmt.Fprintf(&b, "- %s: $%s - %s\n", t.Type, money(t.Amount), desc)
	}

	return models.Chunk{
		Kind:         models.ChunkDaily,
		PeriodKey:    rec.ID,
		Text:         b.String(),
		TotalIncome:  income,
		TotalExpense: expense,
		Net:          net,
	}
}

func weeklyChunk(rec models.PeriodRecord) models.Chunk {
	income, expense := totals(rec.Transactions)
	net := income.Sub(expense)

	var b strings.Builder
	fmt.Fprintf(&b, "Week: %s to %s\n", rec.WeekStartDate, rec.WeekEndDate)
	fmt.Fprintf(&b, "Income: $%s, Expenses: $%s\n", money(income), money(expense))
	fmt.Fprintf(&b, "Net: $%s\n", money(net))

	return models.Chunk{
		Kind:         models.ChunkWeekly,
		PeriodKey:    rec.ID,
		Text:         b.String(),
		TotalIncome:  income,
		TotalExpense: expense,
		Net:          net,
	}
}

func monthlyChunk(rec models.PeriodRecord) models.Chunk {
	income, expense := totals(rec.Transactions)
	net := income.Sub(expense)

	var b strings.Builder
	fmt.Fprintf(&b, "Month: %s\n", rec.ID)
	fmt.Fprintf(&b, "Income: $%s, Expenses: $%s\n", money(income), money(expense))
	fmt.Fprintf(&b, "Net: $%s\n", money(net))

	return models.Chunk{
		Kind:         models.ChunkMonthly,
		PeriodKey:    rec.ID,
		Text:         b.String(),
		TotalIncome:  income,
		TotalExpense: expense,
		Net:          net,
	}
}

// totals partitions transactions by type and sums each side in fixed-point
// decimal arithmetic. Unknown types contribute to neither total.
func totals(transactions []models.Transaction) (income, expense decimal.Decimal) {
	for _, t := range transactions {
		switch t.Type {
		case models.TransactionIncome:
			income = income.Add(t.Amount)
		case models.TransactionExpense:
			expense = expense.Add(t.Amount)
		}
	}
	return income, expense
}

func money(d decimal.Decimal) string {
	return d.StringFixed(2)
}
