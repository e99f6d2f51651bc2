package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/ghuser/itemhub/pkg/cache"
	"github.com/ghuser/itemhub/pkg/logger"
	itemdomain "github.com/ghuser/itemhub/services/item/domain"
	"github.com/ghuser/itemhub/services/item/domain/models"
	"github.com/ghuser/itemhub/services/item/domain/repositories"
	domainsvc "github.com/ghuser/itemhub/services/item/domain/services"
)

// ItemService implements the synchronous use cases for the item bounded
// context. The async endpoints reuse these methods through AsyncItemService.
type ItemService struct {
	repo   repositories.ItemRepository
	cache  *cache.ItemCache // nil disables the read-through cache
	logger logger.Logger
}

// NewItemService creates an ItemService. cache may be nil, in which case all
// reads go straight to the repository.
func NewItemService(repo repositories.ItemRepository, itemCache *cache.ItemCache, log logger.Logger) *ItemService {
	return &ItemService{repo: repo, cache: itemCache, logger: log}
}

// Create validates and persists a new item. Duplicate names return
// ErrItemAlreadyExists; structurally invalid names return ErrInvalidItemName.
func (s *ItemService) Create(ctx context.Context, name, category string) (*models.Item, error) {
	itemName, err := models.NewItemName(name)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", itemdomain.ErrInvalidItemName, err)
	}

	item, err := models.NewItem(itemName, category)
	if err != nil {
		return nil, fmt.Errorf("create item: %w", err)
	}
	if err := domainsvc.ValidateItemForCreation(item); err != nil {
		return nil, fmt.Errorf("%w: %s", itemdomain.ErrInvalidItemName, err)
	}

	existing, err := s.repo.FindByName(ctx, itemName.String())
	if err != nil {
		return nil, fmt.Errorf("check duplicate name: %w", err)
	}
	if len(existing) > 0 {
		return nil, itemdomain.ErrItemAlreadyExists
	}

	if err := s.repo.Save(ctx, item); err != nil {
		return nil, err
	}
	s.logger.InfoContext(ctx, "item created", "item_id", item.ID, "name", item.Name.String())
	return item, nil
}

// GetByID retrieves an item, serving from the cache when possible and
// populating it on a miss. Cache failures degrade to the repository.
func (s *ItemService) GetByID(ctx context.Context, id uuid.UUID) (*models.Item, error) {
	if s.cache != nil {
		cached, err := s.cache.Get(ctx, id)
		switch {
		case err == nil:
			return cachedToModel(cached), nil
		case !errors.Is(err, redis.Nil):
			s.logger.WarnContext(ctx, "item cache read failed", "item_id", id, "error", err)
		}
	}

	item, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if s.cache != nil {
		if err := s.cache.Set(ctx, modelToCached(item)); err != nil {
			s.logger.WarnContext(ctx, "item cache write failed", "item_id", id, "error", err)
		}
	}
	return item, nil
}

// List retrieves items with optional category filter and pagination.
func (s *ItemService) List(ctx context.Context, category string, opts repositories.QueryOpts) ([]*models.Item, int, error) {
	return s.repo.List(ctx, category, opts)
}

// Update applies a new name and category to an existing item. Returns
// ErrItemNotFound when the item does not exist; the repository is not
// written in that case.
func (s *ItemService) Update(ctx context.Context, id uuid.UUID, name, category string) (*models.Item, error) {
	itemName, err := models.NewItemName(name)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", itemdomain.ErrInvalidItemName, err)
	}
	if err := domainsvc.ValidateName(itemName); err != nil {
		return nil, fmt.Errorf("%w: %s", itemdomain.ErrInvalidItemName, err)
	}

	item, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	item.Apply(itemName, category)
	if err := s.repo.Update(ctx, item); err != nil {
		return nil, err
	}

	s.invalidate(ctx, id)
	s.logger.InfoContext(ctx, "item updated", "item_id", id)
	return item, nil
}

// Delete removes an item. Returns ErrItemNotFound when the item does not exist.
func (s *ItemService) Delete(ctx context.Context, id uuid.UUID) error {
	exists, err := s.repo.Exists(ctx, id)
	if err != nil {
		return err
	}
	if !exists {
		return itemdomain.ErrItemNotFound
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidate(ctx, id)
	s.logger.InfoContext(ctx, "item deleted", "item_id", id)
	return nil
}

// Search returns items whose name or category contains the keyword,
// case-insensitively. An empty keyword matches everything.
func (s *ItemService) Search(ctx context.Context, keyword string) ([]*models.Item, error) {
	items, _, err := s.repo.List(ctx, "", repositories.QueryOpts{})
	if err != nil {
		return nil, err
	}

	needle := strings.ToLower(keyword)
	matched := make([]*models.Item, 0, len(items))
	for _, item := range items {
		if strings.Contains(strings.ToLower(item.Name.String()), needle) ||
			strings.Contains(strings.ToLower(item.Category), needle) {
			matched = append(matched, item)
		}
	}
	return matched, nil
}

func (s *ItemService) invalidate(ctx context.Context, id uuid.UUID) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Delete(ctx, id); err != nil {
		s.logger.WarnContext(ctx, "item cache invalidation failed", "item_id", id, "error", err)
	}
}

func cachedToModel(c *cache.CachedItem) *models.Item {
	return &models.Item{
		ID:        c.ID,
		Name:      models.ItemName(c.Name),
		Category:  c.Category,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

func modelToCached(item *models.Item) *cache.CachedItem {
	return &cache.CachedItem{
		ID:        item.ID,
		Name:      item.Name.String(),
		Category:  item.Category,
		CreatedAt: item.CreatedAt,
		UpdatedAt: item.UpdatedAt,
	}
}
