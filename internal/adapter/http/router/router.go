// Package router assembles the HTTP routes.
package router

import (
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/eslsoft/deepgloss/internal/adapter/http/handler"
	"github.com/eslsoft/deepgloss/internal/adapter/http/middleware"
	"github.com/eslsoft/deepgloss/internal/usecase"
)

// Handlers groups the route handlers for assembly.
type Handlers struct {
	Vocab     *handler.VocabHandler
	Retrieval *handler.RetrievalHandler
	Ingest    *handler.IngestHandler
	Enrich    *handler.EnrichHandler
}

// NewHandlers builds the handler set from the usecases.
func NewHandlers(
	vocab usecase.VocabUsecase,
	retriever usecase.RetrieverUsecase,
	reconcile usecase.ReconcileUsecase,
	ingest usecase.IngestUsecase,
	enrich usecase.EnrichUsecase,
) Handlers {
	return Handlers{
		Vocab:     handler.NewVocabHandler(vocab),
		Retrieval: handler.NewRetrievalHandler(vocab, retriever, reconcile),
		Ingest:    handler.NewIngestHandler(ingest),
		Enrich:    handler.NewEnrichHandler(enrich),
	}
}

// New assembles the gin engine with middlewares and the /api/v1 routes.
func New(logger *logrus.Logger, h Handlers) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestLogger(logger))
	engine.Use(middleware.CORS())

	engine.GET("/health", handler.NewHealthHandler().Health)

	v1 := engine.Group("/api/v1")
	{
		domains := v1.Group("/domains")
		{
			domains.GET("", h.Vocab.ListDomains)
			domains.POST("", h.Vocab.CreateDomain)
			domains.GET("/:id/terms", h.Vocab.ListTerms)
			domains.POST("/:id/terms", h.Vocab.CreateTerm)
			domains.GET("/:id/sentences", h.Vocab.ListSentences)
			domains.POST("/:id/ingest", h.Ingest.Ingest)
			domains.POST("/:id/index", h.Ingest.Index)
		}

		terms := v1.Group("/terms")
		{
			terms.GET("/:id", h.Vocab.GetTerm)
			terms.PUT("/:id", h.Vocab.UpdateTerm)
			terms.PUT("", h.Vocab.BulkUpdateTerms)
			terms.GET("/:id/context", h.Retrieval.Context)
			terms.POST("/:id/confirm", h.Retrieval.Confirm)
			terms.POST("/:id/speech", h.Enrich.SpeakTerm)
			terms.POST("/:id/images", h.Enrich.IllustrateTerm)
		}

		sentences := v1.Group("/sentences")
		{
			sentences.PUT("/:id", h.Vocab.UpdateSentence)
		}

		v1.POST("/explain", h.Enrich.Explain)
		v1.POST("/speech", h.Enrich.Speech)
	}

	return engine
}
