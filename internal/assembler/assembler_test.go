package assembler

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/teddyfinance/assistant/internal/models"
)

func TestBuildContextEmptyCollections(t *testing.T) {
	got := BuildContext(nil, nil, nil)
	assert.Equal(t, "", got)
}

func TestBuildContextSectionsOmittedIndividually(t *testing.T) {
	chunks := []models.Chunk{{Kind: "daily", Text: "Date: 2024-03-01\nExpenses: $50.00\n"}}

	got := BuildContext(chunks, nil, nil)
	assert.Contains(t, got, "=== ALL EXPENSE DATA ===")
	assert.NotContains(t, got, "PREVIOUS CONVERSATIONS")
	assert.NotContains(t, got, "CURRENT CONVERSATION")

	got = BuildContext(nil, []models.Turn{{Human: "q", Assistant: "a"}}, nil)
	assert.NotContains(t, got, "ALL EXPENSE DATA")
	assert.Contains(t, got, "=== PREVIOUS CONVERSATIONS ===")

	got = BuildContext(nil, nil, []models.Turn{{Human: "q", Assistant: "a"}})
	assert.Contains(t, got, "=== CURRENT CONVERSATION ===")
}

func TestBuildContextChunkOrderPreserved(t *testing.T) {
	chunks := []models.Chunk{
		{Kind: "daily", Text: "first\n"},
		{Kind: "weekly", Text: "second\n"},
		{Kind: "monthly", Text: "third\n"},
	}
	got := BuildContext(chunks, nil, nil)

	assert.Contains(t, got, "Data 1 (daily):\nfirst")
	assert.Contains(t, got, "Data 2 (weekly):\nsecond")
	assert.Contains(t, got, "Data 3 (monthly):\nthird")
	assert.Less(t, strings.Index(got, "first"), strings.Index(got, "second"))
	assert.Less(t, strings.Index(got, "second"), strings.Index(got, "third"))
}

func TestBuildContextHistoryWindowedToLastThree(t *testing.T) {
	history := []models.Turn{
		{Human: "h1", Assistant: "a1"},
		{Human: "h2", Assistant: "a2"},
		{Human: "h3", Assistant: "a3"},
		{Human: "h4", Assistant: "a4"},
		{Human: "h5", Assistant: "a5"},
	}
	got := BuildContext(nil, history, nil)

	assert.NotContains(t, got, "Human: h1")
	assert.NotContains(t, got, "Human: h2")
	assert.Contains(t, got, "Previous 1:\nHuman: h3\nAssistant: a3")
	assert.Contains(t, got, "Previous 2:\nHuman: h4\nAssistant: a4")
	assert.Contains(t, got, "Previous 3:\nHuman: h5\nAssistant: a5")
}

func TestBuildContextMemoryOldestToNewest(t *testing.T) {
	memory := []models.Turn{
		{Human: "m1", Assistant: "r1"},
		{Human: "m2", Assistant: "r2"},
	}
	got := BuildContext(nil, nil, memory)

	assert.Contains(t, got, "Exchange 1:\nHuman: m1\nAssistant: r1")
	assert.Contains(t, got, "Exchange 2:\nHuman: m2\nAssistant: r2")
	assert.Less(t, strings.Index(got, "m1"), strings.Index(got, "m2"))
}

func TestBuildPrompt(t *testing.T) {
	got := BuildPrompt("CONTEXT-BLOB", "how much did I spend?")

	assert.Contains(t, got, "CONTEXT-BLOB")
	assert.Contains(t, got, "Question: how much did I spend?")
	assert.Contains(t, got, "Guidelines:")
	// The context precedes the question in the template.
	assert.Less(t, strings.Index(got, "CONTEXT-BLOB"), strings.Index(got, "Question:"))
}
