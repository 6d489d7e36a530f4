package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/eslsoft/deepgloss/internal/adapter/http/dto"
	"github.com/eslsoft/deepgloss/internal/usecase"
)

// RetrievalHandler serves hybrid context retrieval and candidate
// confirmation.
type RetrievalHandler struct {
	vocab     usecase.VocabUsecase
	retriever usecase.RetrieverUsecase
	reconcile usecase.ReconcileUsecase
}

// NewRetrievalHandler creates the retrieval handler.
func NewRetrievalHandler(
	vocab usecase.VocabUsecase,
	retriever usecase.RetrieverUsecase,
	reconcile usecase.ReconcileUsecase,
) *RetrievalHandler {
	return &RetrievalHandler{vocab: vocab, retriever: retriever, reconcile: reconcile}
}

// Context returns the canonical context candidate for a term, or found=false
// when no context exists anywhere.
func (h *RetrievalHandler) Context(c *gin.Context) {
	termID, ok := pathID(c, "id")
	if !ok {
		return
	}
	term, err := h.vocab.Term(c.Request.Context(), termID)
	if err != nil {
		writeError(c, err)
		return
	}

	candidate, err := h.retriever.FindContext(c.Request.Context(), term.ID, term.DomainID, term.Word)
	if err != nil {
		writeError(c, err)
		return
	}
	if candidate == nil {
		dto.Success(c, dto.ContextResponse{Found: false})
		return
	}
	payload := dto.CandidateFromEntity(*candidate)
	dto.Success(c, dto.ContextResponse{Found: true, Candidate: &payload})
}

// Confirm promotes the candidate into the relational store, links it to the
// term, and persists any user edits.
func (h *RetrievalHandler) Confirm(c *gin.Context) {
	termID, ok := pathID(c, "id")
	if !ok {
		return
	}
	term, err := h.vocab.Term(c.Request.Context(), termID)
	if err != nil {
		writeError(c, err)
		return
	}

	var req dto.ConfirmRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.BadRequest(c, err.Error())
		return
	}
	sentenceID, err := h.reconcile.Confirm(c.Request.Context(), term.ID, term.DomainID, req.Candidate.Candidate(), req.Fields())
	if err != nil {
		writeError(c, err)
		return
	}
	dto.Success(c, dto.IDResponse{ID: sentenceID})
}
