package dto

import (
	"github.com/eslsoft/deepgloss/internal/entity"
)

// CreateDomainRequest names a domain to ensure.
type CreateDomainRequest struct {
	Name string `json:"name" binding:"required"`
}

// CreateTermRequest adds a term to a domain.
type CreateTermRequest struct {
	Word       string `json:"word" binding:"required"`
	Definition string `json:"definition"`
}

// IDResponse carries a created or resolved identifier.
type IDResponse struct {
	ID int64 `json:"id"`
}

// UpdateTermRequest carries optional term edits; absent fields stay untouched.
type UpdateTermRequest struct {
	Definition *string  `json:"definition"`
	AudioRef   *string  `json:"audio_ref"`
	StarLevel  *int32   `json:"star_level"`
	ImageRefs  []string `json:"image_refs"`
}

// Update converts the request into the entity edit carrier.
func (r UpdateTermRequest) Update() entity.TermUpdate {
	return entity.TermUpdate{
		Definition: r.Definition,
		AudioRef:   r.AudioRef,
		StarLevel:  r.StarLevel,
		ImageRefs:  r.ImageRefs,
	}
}

// BulkUpdateTermsRequest rewrites a batch of terms.
type BulkUpdateTermsRequest struct {
	Terms []BulkTermPayload `json:"terms" binding:"required"`
}

// BulkTermPayload is one term row in a bulk rewrite.
type BulkTermPayload struct {
	ID         int64  `json:"id" binding:"required"`
	Word       string `json:"word" binding:"required"`
	Definition string `json:"definition"`
	StarLevel  int32  `json:"star_level"`
	Active     bool   `json:"is_active"`
}

// UpdateSentenceRequest carries optional sentence edits; absent fields stay
// untouched.
type UpdateSentenceRequest struct {
	ContentCN     *string `json:"content_cn"`
	AudioRef      *string `json:"audio_ref"`
	CNExplanation *string `json:"cn_explanation"`
}

// Update converts the request into the entity edit carrier.
func (r UpdateSentenceRequest) Update() entity.SentenceUpdate {
	return entity.SentenceUpdate{
		ContentCN:     r.ContentCN,
		AudioRef:      r.AudioRef,
		CNExplanation: r.CNExplanation,
	}
}
