package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/ghuser/itemhub/pkg/async"
	"github.com/ghuser/itemhub/pkg/logger"
	itemdomain "github.com/ghuser/itemhub/services/item/domain"
	"github.com/ghuser/itemhub/services/item/domain/models"
)

// combinedFallback is served when the combined-info pipeline cannot produce
// a result within the deadline.
const combinedFallback = "combined item info unavailable"

// AsyncItemService runs the item use cases on a bounded pool with a uniform
// per-operation deadline. Every method returns an already-guarded future:
// faults, queue rejection, and deadline expiry all surface as the operation's
// fallback value (nil, false, or empty) rather than as an error, with one
// diagnostic log entry per occurrence.
//
// A nil item or false flag therefore means "absent or unavailable" — callers
// cannot distinguish a missing row from a timed-out lookup. The synchronous
// ItemService keeps the distinction for callers that need it.
type AsyncItemService struct {
	items   *ItemService
	pool    *async.Pool
	timeout time.Duration
	logger  logger.Logger
}

// NewAsyncItemService wraps items with the given pool and per-operation deadline.
func NewAsyncItemService(items *ItemService, pool *async.Pool, timeout time.Duration, log logger.Logger) *AsyncItemService {
	return &AsyncItemService{items: items, pool: pool, timeout: timeout, logger: log}
}

// GetByIDAsync resolves to the item, or nil when it is absent or the lookup
// could not complete in time.
func (s *AsyncItemService) GetByIDAsync(ctx context.Context, id uuid.UUID) *async.Future[*models.Item] {
	ctx = context.WithoutCancel(ctx)
	f := async.Submit(s.pool, func() (*models.Item, error) {
		item, err := s.items.GetByID(ctx, id)
		if errors.Is(err, itemdomain.ErrItemNotFound) {
			return nil, nil
		}
		return item, err
	})
	return async.WithTimeout(f, s.timeout, nilItem, s.logger, "item.get_by_id", id.String())
}

// CreateAsync resolves to the created item, or nil on validation failure,
// duplicate name, fault, or timeout.
func (s *AsyncItemService) CreateAsync(ctx context.Context, name, category string) *async.Future[*models.Item] {
	ctx = context.WithoutCancel(ctx)
	f := async.Submit(s.pool, func() (*models.Item, error) {
		return s.items.Create(ctx, name, category)
	})
	return async.WithTimeout(f, s.timeout, nilItem, s.logger, "item.create", name)
}

// UpdateAsync resolves to the updated item, or nil when the item is absent,
// the input is invalid, or the operation could not complete in time.
func (s *AsyncItemService) UpdateAsync(ctx context.Context, id uuid.UUID, name, category string) *async.Future[*models.Item] {
	ctx = context.WithoutCancel(ctx)
	f := async.Submit(s.pool, func() (*models.Item, error) {
		item, err := s.items.Update(ctx, id, name, category)
		if errors.Is(err, itemdomain.ErrItemNotFound) {
			return nil, nil
		}
		return item, err
	})
	return async.WithTimeout(f, s.timeout, nilItem, s.logger, "item.update", id.String())
}

// DeleteAsync resolves to true when the item existed and was removed, false
// when it was absent or the operation could not complete in time.
func (s *AsyncItemService) DeleteAsync(ctx context.Context, id uuid.UUID) *async.Future[bool] {
	ctx = context.WithoutCancel(ctx)
	f := async.Submit(s.pool, func() (bool, error) {
		if err := s.items.Delete(ctx, id); err != nil {
			if errors.Is(err, itemdomain.ErrItemNotFound) {
				return false, nil
			}
			return false, err
		}
		return true, nil
	})
	return async.WithTimeout(f, s.timeout, func(error) bool { return false }, s.logger, "item.delete", id.String())
}

// SearchAsync resolves to the matching items, or an empty slice on fault or
// timeout.
func (s *AsyncItemService) SearchAsync(ctx context.Context, keyword string) *async.Future[[]*models.Item] {
	ctx = context.WithoutCancel(ctx)
	f := async.Submit(s.pool, func() ([]*models.Item, error) {
		return s.items.Search(ctx, keyword)
	})
	return async.WithTimeout(f, s.timeout, emptyItems, s.logger, "item.search", keyword)
}

// CombinedInfo fetches an item and searches for related items concurrently,
// then joins the two into a one-line summary. Each leg carries its own
// deadline and fallback; the join result is additionally guarded so a join
// fault still yields an in-band string.
func (s *AsyncItemService) CombinedInfo(ctx context.Context, id uuid.UUID, keyword string) *async.Future[string] {
	item := s.GetByIDAsync(ctx, id)
	related := s.SearchAsync(ctx, keyword)

	joined := async.Combine(item, related, func(item *models.Item, related []*models.Item) string {
		if item == nil {
			return "item not found"
		}
		return fmt.Sprintf("Item: %s (related found: %d)", item.Name.String(), len(related))
	})
	return async.WithTimeout(joined, s.timeout,
		func(error) string { return combinedFallback },
		s.logger, "item.combined_info", id.String())
}

func nilItem(error) *models.Item { return nil }

func emptyItems(error) []*models.Item { return []*models.Item{} }
