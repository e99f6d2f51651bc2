package services

import (
	"github.com/ghuser/itemhub/pkg/app"
	"github.com/ghuser/itemhub/pkg/cache"
	"github.com/ghuser/itemhub/pkg/config"
	"github.com/ghuser/itemhub/services/item/infrastructure/persistence/postgres"
)

// Services bundles the item application services for route registration.
type Services struct {
	Items      *ItemService
	AsyncItems *AsyncItemService
}

// NewServices wires the item services from shared infrastructure.
func NewServices(a *app.Application, cfg *config.Config) *Services {
	repo := postgres.NewItemRepository(a.Db, a.EventBus)

	var itemCache *cache.ItemCache
	if a.Redis != nil {
		itemCache = cache.NewItemCache(a.Redis)
	}

	items := NewItemService(repo, itemCache, a.Logger)
	return &Services{
		Items:      items,
		AsyncItems: NewAsyncItemService(items, a.Async, cfg.AsyncOpTimeout, a.Logger),
	}
}
