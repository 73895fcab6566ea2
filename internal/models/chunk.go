package models

import "github.com/shopspring/decimal"

// Chunk kinds, one per reporting granularity.
const (
	ChunkDaily   = "daily"
	ChunkWeekly  = "weekly"
	ChunkMonthly = "monthly"
)

// Chunk is a derived textual and numeric summary of the transactions in one
// reporting period. Chunks are immutable once created; the summarizer
// replaces a session's chunk set wholesale whenever fresh records arrive.
type Chunk struct {
	// Kind is one of ChunkDaily, ChunkWeekly, ChunkMonthly.
	Kind string

	// PeriodKey identifies the period: a date for daily chunks, the record
	// store's period label for weekly and monthly ones.
	PeriodKey string

	// Text is the fixed-format rendering handed to the context assembler.
	Text string

	TotalIncome  decimal.Decimal
	TotalExpense decimal.Decimal

	// Net is TotalIncome minus TotalExpense, exactly.
	Net decimal.Decimal
}
