package service

import (
	"context"
	"errors"

	"golang.org/x/sync/errgroup"

	"github.com/ahstack/shopchat/internal/catalog"
	"github.com/ahstack/shopchat/internal/logger"
	"github.com/ahstack/shopchat/internal/models"
)

// CatalogClient is the slice of the catalog client the orchestrator needs.
type CatalogClient interface {
	FetchAll(ctx context.Context) ([]models.Product, error)
}

// ChatService runs the whole pipeline for one message: extract the intent,
// fetch the catalog snapshot, resolve facts, synthesize the answer.
type ChatService interface {
	// Answer always produces a response body. Upstream failures come back as
	// the canned apology with Degraded set, never as an error or a panic.
	Answer(ctx context.Context, message string) models.ChatResponse
}

type chatService struct {
	catalog   CatalogClient
	intents   IntentService
	resolver  *FactResolver
	responses ResponseService
	logger    logger.Logger
}

// NewChatService wires dependencies and returns ChatService.
func NewChatService(cat CatalogClient, intents IntentService, resolver *FactResolver, responses ResponseService, log logger.Logger) ChatService {
	return &chatService{
		catalog:   cat,
		intents:   intents,
		resolver:  resolver,
		responses: responses,
		logger:    log.With(map[string]interface{}{"component": "chat"}),
	}
}

func (s *chatService) Answer(ctx context.Context, message string) models.ChatResponse {
	// The catalog fetch and intent extraction have no data dependency on each
	// other, so they run concurrently; resolution and synthesis wait on both.
	g, gctx := errgroup.WithContext(ctx)

	var products []models.Product
	var intent models.Intent

	g.Go(func() error {
		var err error
		products, err = s.fetchCatalog(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		intent, err = s.intents.Extract(gctx, message)
		return err
	})

	if err := g.Wait(); err != nil {
		s.logger.Warn("pipeline degraded before resolution", map[string]interface{}{"error": err.Error()})
		return models.ChatResponse{Response: Apology, Degraded: true}
	}

	facts := s.resolver.Resolve(intent, products)
	s.logger.Debug("facts resolved", map[string]interface{}{
		"goal":    string(intent.Goal),
		"matches": len(facts.Products),
	})

	reply, err := s.responses.Synthesize(ctx, message, facts)
	if err != nil {
		s.logger.Warn("synthesis degraded", map[string]interface{}{"error": err.Error()})
		return models.ChatResponse{Response: Apology, Degraded: true}
	}

	return models.ChatResponse{Response: reply}
}

// fetchCatalog applies a single bounded retry on transient catalog failures.
func (s *chatService) fetchCatalog(ctx context.Context) ([]models.Product, error) {
	products, err := s.catalog.FetchAll(ctx)
	if err != nil && errors.Is(err, catalog.ErrUnavailable) && ctx.Err() == nil {
		s.logger.Warn("catalog fetch failed, retrying once", map[string]interface{}{"error": err.Error()})
		products, err = s.catalog.FetchAll(ctx)
	}
	return products, err
}
