package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/eslsoft/deepgloss/internal/adapter/http/dto"
	"github.com/eslsoft/deepgloss/internal/usecase"
)

// IngestHandler serves corpus loading and semantic indexing.
type IngestHandler struct {
	ingest usecase.IngestUsecase
}

// NewIngestHandler creates the ingestion handler.
func NewIngestHandler(ingest usecase.IngestUsecase) *IngestHandler {
	return &IngestHandler{ingest: ingest}
}

// Ingest registers the term list and stores every corpus sentence containing
// at least one term.
func (h *IngestHandler) Ingest(c *gin.Context) {
	domainID, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req dto.IngestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.BadRequest(c, err.Error())
		return
	}
	stored, err := h.ingest.Process(c.Request.Context(), domainID, req.Words, req.Corpus)
	if err != nil {
		writeError(c, err)
		return
	}
	dto.Success(c, dto.CountResponse{Count: stored})
}

// Index feeds the corpus sentences into the semantic index.
func (h *IngestHandler) Index(c *gin.Context) {
	domainID, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req dto.IndexRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.BadRequest(c, err.Error())
		return
	}
	count, err := h.ingest.IndexCorpus(c.Request.Context(), domainID, req.Corpus)
	if err != nil {
		writeError(c, err)
		return
	}
	dto.Success(c, dto.CountResponse{Count: count})
}
