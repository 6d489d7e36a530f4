package dto

import (
	"github.com/eslsoft/deepgloss/internal/entity"
)

// CandidatePayload is the wire form of a context candidate. Virtual
// candidates carry synthetic negative ids and exist only in the semantic
// index until confirmed.
type CandidatePayload struct {
	SentenceID    int64  `json:"sentence_id"`
	DomainID      int64  `json:"domain_id"`
	ContentEN     string `json:"content_en"`
	ContentCN     string `json:"content_cn,omitempty"`
	CNExplanation string `json:"cn_explanation,omitempty"`
	AudioRef      string `json:"audio_ref,omitempty"`
	Virtual       bool   `json:"virtual"`
	Linked        bool   `json:"linked"`
}

// CandidateFromEntity maps a candidate onto its wire form.
func CandidateFromEntity(c entity.Candidate) CandidatePayload {
	return CandidatePayload{
		SentenceID:    c.SentenceID,
		DomainID:      c.DomainID,
		ContentEN:     c.ContentEN,
		ContentCN:     c.ContentCN,
		CNExplanation: c.CNExplanation,
		AudioRef:      c.AudioRef,
		Virtual:       c.Virtual,
		Linked:        c.Linked,
	}
}

// Candidate maps the wire form back onto the entity.
func (p CandidatePayload) Candidate() entity.Candidate {
	return entity.Candidate{
		SentenceID:    p.SentenceID,
		DomainID:      p.DomainID,
		ContentEN:     p.ContentEN,
		ContentCN:     p.ContentCN,
		CNExplanation: p.CNExplanation,
		AudioRef:      p.AudioRef,
		Virtual:       p.Virtual,
		Linked:        p.Linked,
	}
}

// ContextResponse is the retrieval result. Found is false when no context
// exists anywhere for the term.
type ContextResponse struct {
	Found     bool              `json:"found"`
	Candidate *CandidatePayload `json:"candidate,omitempty"`
}

// ConfirmRequest promotes and links a candidate, optionally persisting user
// edits alongside.
type ConfirmRequest struct {
	Candidate     CandidatePayload `json:"candidate" binding:"required"`
	ContentCN     *string          `json:"content_cn"`
	AudioRef      *string          `json:"audio_ref"`
	CNExplanation *string          `json:"cn_explanation"`
}

// Fields extracts the optional sentence edits of the confirmation.
func (r ConfirmRequest) Fields() entity.SentenceUpdate {
	return entity.SentenceUpdate{
		ContentCN:     r.ContentCN,
		AudioRef:      r.AudioRef,
		CNExplanation: r.CNExplanation,
	}
}

// IngestRequest loads a term list and corpus text into a domain.
type IngestRequest struct {
	Words  []string `json:"words"`
	Corpus string   `json:"corpus" binding:"required"`
}

// IndexRequest feeds corpus text into the semantic index.
type IndexRequest struct {
	Corpus string `json:"corpus" binding:"required"`
}

// CountResponse reports how many items an operation touched.
type CountResponse struct {
	Count int `json:"count"`
}

// ExplainRequest asks for a translation and in-context explanation.
type ExplainRequest struct {
	Term     string `json:"term" binding:"required"`
	Sentence string `json:"sentence" binding:"required"`
}

// SpeechRequest asks for an audio reference for arbitrary text.
type SpeechRequest struct {
	Text string `json:"text" binding:"required"`
}

// SpeechResponse carries the audio reference; empty when synthesis was
// unavailable.
type SpeechResponse struct {
	AudioRef string `json:"audio_ref"`
}
