package economy

import (
	"context"

	"github.com/osse101/LootForge_Go/internal/catalog"
	"github.com/osse101/LootForge_Go/internal/domain"
	"github.com/osse101/LootForge_Go/internal/event"
	"github.com/osse101/LootForge_Go/internal/repository"
)

// Service defines the interface for selling items to the system and consuming them
type Service interface {
	SellItem(ctx context.Context, playerID, itemID string) (*domain.SaleResult, error)
	UseItem(ctx context.Context, playerID, itemID string) (*domain.UseResult, error)
}

type service struct {
	repo      repository.Economy
	catalog   *catalog.Catalog
	publisher event.Publisher
}

// NewService creates a new economy service
func NewService(repo repository.Economy, c *catalog.Catalog, publisher event.Publisher) Service {
	return &service{
		repo:      repo,
		catalog:   c,
		publisher: publisher,
	}
}

func (s *service) publish(ctx context.Context, reason string, playerID string, evt event.Event) {
	if s.publisher == nil {
		return
	}
	s.publisher.PublishWithRetry(ctx, event.NewInventoryChangedEvent(reason, playerID))
	s.publisher.PublishWithRetry(ctx, evt)
}
