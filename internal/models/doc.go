// Package models defines the core data structures for the Teddy assistant.
//
// These structs mirror the JSON contracts of the external record store
// (transactions, period reports, conversation history) plus the derived
// Chunk type produced by the summarizer. Raw data is sourced externally and
// treated as immutable once decoded.
package models
