package models

import "strings"

// FAQEntry is one question/answer pair of the FAQ page, loaded from
// preguntas.xlsx. Not persisted to the database.
type FAQEntry struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// Matches reports whether the query appears in the question or the answer,
// case-insensitively.
func (f *FAQEntry) Matches(query string) bool {
	q := strings.ToLower(strings.TrimSpace(query))
	return strings.Contains(strings.ToLower(f.Question), q) ||
		strings.Contains(strings.ToLower(f.Answer), q)
}
