// Package assembler builds the bounded context window handed to the
// completion provider: all record chunks, a window of persisted history, and
// the in-session memory, concatenated into a fixed instruction template.
package assembler

import (
	"fmt"
	"strings"

	"github.com/teddyfinance/assistant/internal/models"
)

// historyWindow bounds how many persisted turns enter the context.
const historyWindow = 3

// SystemPrompt is the system-role framing sent with every completion call.
const SystemPrompt = "You are Teddy, a helpful personal finance assistant."

// BuildContext renders the three labeled context sections. Each section is
// omitted when its underlying collection is empty. Chunks are forwarded in
// full and in summarizer order — there is no relevance filtering. Persisted
// history is windowed to the most recent turns, oldest first; in-session
// memory is already capped by the caller.
func BuildContext(chunks []models.Chunk, history, memory []models.Turn) string {
	var parts []string

	if len(chunks) > 0 {
		parts = append(parts, "=== ALL EXPENSE DATA ===")
		for i, chunk := range chunks {
			parts = append(parts, fmt.Sprintf("Data %d (%s):\n%s", i+1, chunk.Kind, chunk.Text))
		}
	}

	if len(history) > 0 {
		parts = append(parts, "\n=== PREVIOUS CONVERSATIONS ===")
		recent := history
		if len(recent) > historyWindow {
			recent = recent[len(recent)-historyWindow:]
		}
		for i, turn := range recent {
			parts = append(parts,
				fmt.Sprintf("Previous %d:", i+1),
				"Human: "+turn.Human,
				"Assistant: "+turn.Assistant,
			)
		}
	}

	if len(memory) > 0 {
		parts = append(parts, "\n=== CURRENT CONVERSATION ===")
		for i, turn := range memory {
			parts = append(parts,
				fmt.Sprintf("Exchange %d:", i+1),
				"Human: "+turn.Human,
				"Assistant: "+turn.Assistant,
			)
		}
	}

	return strings.Join(parts, "\n")
}

// promptTemplate is a design constant; its content is not user-controllable.
const promptTemplate = `Use the information from the context to answer the question at the end. If you don't know the answer based on the provided data, just say that you don't know, definitely do not try to make up an answer.

You are Teddy, a friendly and knowledgeable personal finance assistant. Use ALL the expense data and conversation history to provide helpful, specific financial advice.

%s

Question: %s

Guidelines:
- You have access to ALL expense data available - use it comprehensively to answer questions
- If someone asks about expenses, provide a summary of all the expenses, then ask if they specifically want to know about any particular aspect
- Use exact numbers from the expense data when available
- Be encouraging but honest about financial situations
- Provide specific recommendations based on the data
- Reference previous conversations when relevant
- If no relevant data is available, offer general financial advice
- Keep your response helpful and conversational
- If the user is engaging in normal conversation (greetings, casual chat), respond naturally and conversationally while maintaining your role as a finance assistant
`

// BuildPrompt injects the assembled context and the user's question into the
// instruction template.
func BuildPrompt(contextText, question string) string {
	return fmt.Sprintf(promptTemplate, contextText, question)
}
