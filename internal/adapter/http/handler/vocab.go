package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/samber/lo"

	"github.com/eslsoft/deepgloss/internal/adapter/http/dto"
	"github.com/eslsoft/deepgloss/internal/entity"
	"github.com/eslsoft/deepgloss/internal/usecase"
)

// VocabHandler serves domain, term and sentence management.
type VocabHandler struct {
	vocab usecase.VocabUsecase
}

// NewVocabHandler creates the vocabulary handler.
func NewVocabHandler(vocab usecase.VocabUsecase) *VocabHandler {
	return &VocabHandler{vocab: vocab}
}

// CreateDomain ensures the named domain exists and returns its id.
func (h *VocabHandler) CreateDomain(c *gin.Context) {
	var req dto.CreateDomainRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.BadRequest(c, err.Error())
		return
	}
	id, err := h.vocab.EnsureDomain(c.Request.Context(), req.Name)
	if err != nil {
		writeError(c, err)
		return
	}
	dto.Created(c, dto.IDResponse{ID: id})
}

// ListDomains returns all domains.
func (h *VocabHandler) ListDomains(c *gin.Context) {
	domains, err := h.vocab.ListDomains(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	dto.Success(c, domains)
}

// CreateTerm adds a term to the domain, returning the existing id for a
// case-insensitive duplicate.
func (h *VocabHandler) CreateTerm(c *gin.Context) {
	domainID, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req dto.CreateTermRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.BadRequest(c, err.Error())
		return
	}
	id, err := h.vocab.AddTerm(c.Request.Context(), domainID, req.Word, req.Definition)
	if err != nil {
		writeError(c, err)
		return
	}
	dto.Created(c, dto.IDResponse{ID: id})
}

// ListTerms returns the domain's terms; ?active=true filters to active ones.
func (h *VocabHandler) ListTerms(c *gin.Context) {
	domainID, ok := pathID(c, "id")
	if !ok {
		return
	}
	terms, err := h.vocab.Terms(c.Request.Context(), domainID, c.Query("active") == "true")
	if err != nil {
		writeError(c, err)
		return
	}
	dto.Success(c, terms)
}

// GetTerm returns a single term.
func (h *VocabHandler) GetTerm(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	term, err := h.vocab.Term(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	dto.Success(c, term)
}

// UpdateTerm applies the non-nil fields of the request.
func (h *VocabHandler) UpdateTerm(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req dto.UpdateTermRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.BadRequest(c, err.Error())
		return
	}
	if err := h.vocab.UpdateTerm(c.Request.Context(), id, req.Update()); err != nil {
		writeError(c, err)
		return
	}
	dto.Success(c, dto.IDResponse{ID: id})
}

// BulkUpdateTerms rewrites a batch of terms in one transaction.
func (h *VocabHandler) BulkUpdateTerms(c *gin.Context) {
	var req dto.BulkUpdateTermsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.BadRequest(c, err.Error())
		return
	}
	terms := lo.Map(req.Terms, func(t dto.BulkTermPayload, _ int) entity.Term {
		return entity.Term{
			ID:         t.ID,
			Word:       t.Word,
			Definition: t.Definition,
			StarLevel:  t.StarLevel,
			Active:     t.Active,
		}
	})
	if err := h.vocab.BulkUpdateTerms(c.Request.Context(), terms); err != nil {
		writeError(c, err)
		return
	}
	dto.Success(c, dto.CountResponse{Count: len(terms)})
}

// ListSentences returns the domain's sentences.
func (h *VocabHandler) ListSentences(c *gin.Context) {
	domainID, ok := pathID(c, "id")
	if !ok {
		return
	}
	sentences, err := h.vocab.Sentences(c.Request.Context(), domainID)
	if err != nil {
		writeError(c, err)
		return
	}
	dto.Success(c, sentences)
}

// UpdateSentence applies the non-nil fields of the request.
func (h *VocabHandler) UpdateSentence(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req dto.UpdateSentenceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.BadRequest(c, err.Error())
		return
	}
	if err := h.vocab.UpdateSentence(c.Request.Context(), id, req.Update()); err != nil {
		writeError(c, err)
		return
	}
	dto.Success(c, dto.IDResponse{ID: id})
}
