// Package app wires the application dependencies by hand.
package app

import (
	"database/sql"

	"github.com/sirupsen/logrus"

	httprouter "github.com/eslsoft/deepgloss/internal/adapter/http/router"
	"github.com/eslsoft/deepgloss/internal/adapter/repository"
	"github.com/eslsoft/deepgloss/internal/infrastructure/config"
	"github.com/eslsoft/deepgloss/internal/infrastructure/database"
	"github.com/eslsoft/deepgloss/internal/infrastructure/embedding"
	"github.com/eslsoft/deepgloss/internal/infrastructure/images"
	"github.com/eslsoft/deepgloss/internal/infrastructure/llm"
	"github.com/eslsoft/deepgloss/internal/infrastructure/server"
	"github.com/eslsoft/deepgloss/internal/infrastructure/tts"
	"github.com/eslsoft/deepgloss/internal/infrastructure/vector"
	repo "github.com/eslsoft/deepgloss/internal/repository"
	"github.com/eslsoft/deepgloss/internal/usecase"
)

// Container holds the wired application components.
type Container struct {
	Config *config.Config
	Logger *logrus.Logger
	DB     *sql.DB

	Vocab     usecase.VocabUsecase
	Retriever usecase.RetrieverUsecase
	Reconcile usecase.ReconcileUsecase
	Ingest    usecase.IngestUsecase
	Enrich    usecase.EnrichUsecase

	Sentences repo.SentenceRepository
	Matches   repo.MatchRepository

	Server *server.Server
}

// Initialize builds the full dependency graph and returns the container with
// a cleanup function releasing the underlying stores.
func Initialize() (*Container, func(), error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}

	logger, err := server.NewLogger(cfg)
	if err != nil {
		return nil, nil, err
	}

	db, dbCleanup, err := database.NewConnection(cfg)
	if err != nil {
		return nil, nil, err
	}

	embedder := embedding.NewClient(cfg)
	vectorIndex, vecCleanup, err := vector.NewIndex(cfg, embedder, logger)
	if err != nil {
		dbCleanup()
		return nil, nil, err
	}
	cleanup := func() {
		vecCleanup()
		dbCleanup()
	}

	speech, err := tts.NewManager(cfg, logger)
	if err != nil {
		cleanup()
		return nil, nil, err
	}

	domainRepo := repository.NewDomainRepository(db)
	termRepo := repository.NewTermRepository(db)
	sentenceRepo := repository.NewSentenceRepository(db)
	matchRepo := repository.NewMatchRepository(db)

	vocab := usecase.NewVocabUsecase(domainRepo, termRepo, sentenceRepo)
	retriever := usecase.NewRetrieverUsecase(sentenceRepo, matchRepo, vectorIndex, cfg.Vector.TopK)
	reconcile := usecase.NewReconcileUsecase(sentenceRepo, matchRepo)
	ingest := usecase.NewIngestUsecase(termRepo, sentenceRepo, matchRepo, vectorIndex, logger)
	enrich := usecase.NewEnrichUsecase(termRepo, llm.NewClient(cfg, logger), speech, images.NewScraper(cfg, logger))

	handlers := httprouter.NewHandlers(vocab, retriever, reconcile, ingest, enrich)
	engine := httprouter.New(logger, handlers)

	c := &Container{
		Config:    cfg,
		Logger:    logger,
		DB:        db,
		Vocab:     vocab,
		Retriever: retriever,
		Reconcile: reconcile,
		Ingest:    ingest,
		Enrich:    enrich,
		Sentences: sentenceRepo,
		Matches:   matchRepo,
		Server:    server.NewServer(cfg, logger, engine),
	}
	return c, cleanup, nil
}
