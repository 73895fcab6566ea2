package models

// Turn is one human/assistant exchange. The same shape serves both
// populations: persisted history loaded from the external store (read-only
// within a session) and in-session memory accumulated locally.
type Turn struct {
	Human     string `json:"human"`
	Assistant string `json:"assistant"`
}
