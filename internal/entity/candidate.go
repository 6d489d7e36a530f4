package entity

// Candidate is a context sentence proposed for a term. Candidates drawn from
// the relational store carry a real sentence id; candidates known only to the
// semantic index are virtual and carry a synthetic negative id until they are
// promoted by reconciliation.
type Candidate struct {
	SentenceID    int64  `json:"sentence_id"`
	DomainID      int64  `json:"domain_id"`
	ContentEN     string `json:"content_en"`
	ContentCN     string `json:"content_cn,omitempty"`
	CNExplanation string `json:"cn_explanation,omitempty"`
	AudioRef      string `json:"audio_ref,omitempty"`
	Virtual       bool   `json:"virtual"`
	Linked        bool   `json:"linked"`
}

// Relational reports whether the candidate already exists as a sentence row.
func (c Candidate) Relational() bool {
	return !c.Virtual && c.SentenceID > 0
}

// CandidateFromSentence wraps a stored sentence as a retrieval candidate.
func CandidateFromSentence(s Sentence, linked bool) Candidate {
	return Candidate{
		SentenceID:    s.ID,
		DomainID:      s.DomainID,
		ContentEN:     s.ContentEN,
		ContentCN:     s.ContentCN,
		CNExplanation: s.CNExplanation,
		AudioRef:      s.AudioRef,
		Linked:        linked,
	}
}

// VirtualCandidate wraps raw semantic-index text as a candidate. The ordinal
// is the zero-based position in the recall list; ids count down from -1 so
// they can never collide with relational ids.
func VirtualCandidate(domainID int64, ordinal int, text string) Candidate {
	return Candidate{
		SentenceID: -int64(ordinal) - 1,
		DomainID:   domainID,
		ContentEN:  text,
		Virtual:    true,
	}
}
