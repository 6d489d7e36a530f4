package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/eslsoft/deepgloss/internal/adapter/http/dto"
	"github.com/eslsoft/deepgloss/internal/usecase"
)

// EnrichHandler serves translation, speech and illustration enrichment.
type EnrichHandler struct {
	enrich usecase.EnrichUsecase
}

// NewEnrichHandler creates the enrichment handler.
func NewEnrichHandler(enrich usecase.EnrichUsecase) *EnrichHandler {
	return &EnrichHandler{enrich: enrich}
}

// Explain translates the sentence and explains the term's usage in it.
// Upstream failures come back inside the result, never as an HTTP error.
func (h *EnrichHandler) Explain(c *gin.Context) {
	var req dto.ExplainRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.BadRequest(c, err.Error())
		return
	}
	dto.Success(c, h.enrich.Explain(c.Request.Context(), req.Term, req.Sentence))
}

// Speech returns an audio reference for arbitrary text; empty when
// synthesis was unavailable.
func (h *EnrichHandler) Speech(c *gin.Context) {
	var req dto.SpeechRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.BadRequest(c, err.Error())
		return
	}
	dto.Success(c, dto.SpeechResponse{AudioRef: h.enrich.SpeakText(c.Request.Context(), req.Text)})
}

// SpeakTerm generates and persists audio for the term's word.
func (h *EnrichHandler) SpeakTerm(c *gin.Context) {
	termID, ok := pathID(c, "id")
	if !ok {
		return
	}
	ref, err := h.enrich.SpeakTerm(c.Request.Context(), termID)
	if err != nil {
		writeError(c, err)
		return
	}
	dto.Success(c, dto.SpeechResponse{AudioRef: ref})
}

// IllustrateTerm fetches and persists illustration URLs for the term.
func (h *EnrichHandler) IllustrateTerm(c *gin.Context) {
	termID, ok := pathID(c, "id")
	if !ok {
		return
	}
	urls, err := h.enrich.IllustrateTerm(c.Request.Context(), termID, 3)
	if err != nil {
		writeError(c, err)
		return
	}
	dto.Success(c, urls)
}
