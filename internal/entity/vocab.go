package entity

import "strings"

// Domain is a named partition scoping terms and sentences (a subject area).
type Domain struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// Term is a vocabulary entry tracked for study.
type Term struct {
	ID         int64    `json:"id"`
	DomainID   int64    `json:"domain_id"`
	Word       string   `json:"word"`
	Definition string   `json:"definition,omitempty"`
	Frequency  int32    `json:"frequency"`
	StarLevel  int32    `json:"star_level"`
	AudioRef   string   `json:"audio_ref,omitempty"`
	ImageRefs  []string `json:"image_refs,omitempty"`
	Active     bool     `json:"is_active"`
}

// Sentence is a unit of context text, optionally translated, explained and voiced.
type Sentence struct {
	ID            int64  `json:"id"`
	DomainID      int64  `json:"domain_id"`
	ContentEN     string `json:"content_en"`
	ContentCN     string `json:"content_cn,omitempty"`
	CNExplanation string `json:"cn_explanation,omitempty"`
	AudioRef      string `json:"audio_ref,omitempty"`
}

// Match is a confirmed association between a Term and a Sentence.
// At most one row exists per (TermID, SentenceID) pair.
type Match struct {
	TermID     int64 `json:"term_id"`
	SentenceID int64 `json:"sentence_id"`
}

// TermUpdate carries optional term field edits. Nil fields are left untouched.
type TermUpdate struct {
	Definition *string
	AudioRef   *string
	StarLevel  *int32
	ImageRefs  []string
}

// SentenceUpdate carries optional sentence field edits. Nil fields are left untouched.
type SentenceUpdate struct {
	ContentCN     *string
	AudioRef      *string
	CNExplanation *string
}

// Empty reports whether the update would change nothing.
func (u SentenceUpdate) Empty() bool {
	return u.ContentCN == nil && u.AudioRef == nil && u.CNExplanation == nil
}

// TermExplanation is the structured result of an LLM explain call.
type TermExplanation struct {
	Translation string `json:"translation"`
	Explanation string `json:"explanation"`
}

// NormalizeWord lowercases and trims a term word for case-insensitive comparison.
func NormalizeWord(word string) string {
	return strings.ToLower(strings.TrimSpace(word))
}

// imageRefSeparator joins image references into the single stored column.
const imageRefSeparator = ";"

// JoinImageRefs serializes an ordered image reference list for storage.
func JoinImageRefs(refs []string) string {
	return strings.Join(refs, imageRefSeparator)
}

// SplitImageRefs parses the stored image reference column.
func SplitImageRefs(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	parts := strings.Split(raw, imageRefSeparator)
	refs := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			refs = append(refs, p)
		}
	}
	return refs
}
