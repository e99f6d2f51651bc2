package services_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/ghuser/itemhub/pkg/config"
	"github.com/ghuser/itemhub/pkg/logger"
	appsvc "github.com/ghuser/itemhub/services/item/application/services"
	itemdomain "github.com/ghuser/itemhub/services/item/domain"
	"github.com/ghuser/itemhub/services/item/domain/models"
	"github.com/ghuser/itemhub/services/item/domain/repositories"
)

// fakeItemRepo is an in-memory ItemRepository. Optional per-call delays and
// injected errors drive the timeout and fault paths in the async tests.
type fakeItemRepo struct {
	mu    sync.Mutex
	items map[uuid.UUID]*models.Item

	getDelay  time.Duration
	listDelay time.Duration
	getErr    error
	listErr   error

	updateCalls int
}

func newFakeItemRepo() *fakeItemRepo {
	return &fakeItemRepo{items: map[uuid.UUID]*models.Item{}}
}

func (r *fakeItemRepo) Save(_ context.Context, item *models.Item) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.items {
		if existing.Name == item.Name {
			return itemdomain.ErrItemAlreadyExists
		}
	}
	cp := *item
	r.items[item.ID] = &cp
	return nil
}

func (r *fakeItemRepo) GetByID(_ context.Context, id uuid.UUID) (*models.Item, error) {
	time.Sleep(r.getDelay)
	if r.getErr != nil {
		return nil, r.getErr
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	item, ok := r.items[id]
	if !ok {
		return nil, itemdomain.ErrItemNotFound
	}
	cp := *item
	return &cp, nil
}

func (r *fakeItemRepo) List(_ context.Context, category string, opts repositories.QueryOpts) ([]*models.Item, int, error) {
	time.Sleep(r.listDelay)
	if r.listErr != nil {
		return nil, 0, r.listErr
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	all := make([]*models.Item, 0, len(r.items))
	for _, item := range r.items {
		if category != "" && item.Category != category {
			continue
		}
		cp := *item
		all = append(all, &cp)
	}
	total := len(all)
	if opts.Offset > 0 {
		if opts.Offset >= len(all) {
			all = nil
		} else {
			all = all[opts.Offset:]
		}
	}
	if opts.Limit > 0 && len(all) > opts.Limit {
		all = all[:opts.Limit]
	}
	return all, total, nil
}

func (r *fakeItemRepo) FindByName(_ context.Context, name string) ([]*models.Item, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*models.Item
	for _, item := range r.items {
		if item.Name.String() == name {
			cp := *item
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeItemRepo) Update(_ context.Context, item *models.Item) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.updateCalls++
	if _, ok := r.items[item.ID]; !ok {
		return itemdomain.ErrItemNotFound
	}
	cp := *item
	r.items[item.ID] = &cp
	return nil
}

func (r *fakeItemRepo) Delete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.items, id)
	return nil
}

func (r *fakeItemRepo) Exists(_ context.Context, id uuid.UUID) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.items[id]
	return ok, nil
}

func testLogger() logger.Logger {
	return logger.New(&config.Config{LogLevel: "error"})
}

func newItemService(repo *fakeItemRepo) *appsvc.ItemService {
	return appsvc.NewItemService(repo, nil, testLogger())
}

func mustCreate(t *testing.T, svc *appsvc.ItemService, name, category string) *models.Item {
	t.Helper()
	item, err := svc.Create(context.Background(), name, category)
	if err != nil {
		t.Fatalf("Create(%q, %q): %v", name, category, err)
	}
	return item
}

func TestCreateAndGetByID(t *testing.T) {
	svc := newItemService(newFakeItemRepo())

	created := mustCreate(t, svc, "Widget", "Hardware")
	if created.ID == uuid.Nil {
		t.Fatal("expected generated ID")
	}

	got, err := svc.GetByID(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.Name.String() != "Widget" || got.Category != "Hardware" {
		t.Errorf("got %q/%q, want Widget/Hardware", got.Name, got.Category)
	}
}

func TestCreateDuplicateName(t *testing.T) {
	svc := newItemService(newFakeItemRepo())
	mustCreate(t, svc, "Widget", "Hardware")

	if _, err := svc.Create(context.Background(), "Widget", "Tools"); !errors.Is(err, itemdomain.ErrItemAlreadyExists) {
		t.Errorf("duplicate name: got %v, want ErrItemAlreadyExists", err)
	}
}

func TestCreateInvalidName(t *testing.T) {
	svc := newItemService(newFakeItemRepo())
	for _, name := range []string{"", " padded ", "double  space"} {
		if _, err := svc.Create(context.Background(), name, "Hardware"); !errors.Is(err, itemdomain.ErrInvalidItemName) {
			t.Errorf("Create(%q): got %v, want ErrInvalidItemName", name, err)
		}
	}
}

func TestGetByIDAbsent(t *testing.T) {
	svc := newItemService(newFakeItemRepo())
	if _, err := svc.GetByID(context.Background(), uuid.New()); !errors.Is(err, itemdomain.ErrItemNotFound) {
		t.Errorf("got %v, want ErrItemNotFound", err)
	}
}

func TestUpdate(t *testing.T) {
	svc := newItemService(newFakeItemRepo())
	created := mustCreate(t, svc, "Widget", "Hardware")

	updated, err := svc.Update(context.Background(), created.ID, "Gadget", "Electronics")
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated.ID != created.ID {
		t.Error("update must preserve identity")
	}
	if !updated.CreatedAt.Equal(created.CreatedAt) {
		t.Error("update must preserve CreatedAt")
	}
	if updated.Name.String() != "Gadget" || updated.Category != "Electronics" {
		t.Errorf("got %q/%q after update", updated.Name, updated.Category)
	}
}

func TestUpdateAbsentWritesNothing(t *testing.T) {
	repo := newFakeItemRepo()
	svc := newItemService(repo)

	if _, err := svc.Update(context.Background(), uuid.New(), "Gadget", "Electronics"); !errors.Is(err, itemdomain.ErrItemNotFound) {
		t.Fatalf("got %v, want ErrItemNotFound", err)
	}
	if repo.updateCalls != 0 {
		t.Errorf("repository written %d times for absent item", repo.updateCalls)
	}
}

func TestDelete(t *testing.T) {
	svc := newItemService(newFakeItemRepo())
	created := mustCreate(t, svc, "Widget", "Hardware")

	if err := svc.Delete(context.Background(), created.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := svc.GetByID(context.Background(), created.ID); !errors.Is(err, itemdomain.ErrItemNotFound) {
		t.Error("item still present after delete")
	}
	if err := svc.Delete(context.Background(), created.ID); !errors.Is(err, itemdomain.ErrItemNotFound) {
		t.Errorf("second delete: got %v, want ErrItemNotFound", err)
	}
}

func TestSearchMatchesNameAndCategoryCaseInsensitively(t *testing.T) {
	svc := newItemService(newFakeItemRepo())
	mustCreate(t, svc, "Widget", "Hardware")
	mustCreate(t, svc, "Editor", "Software")
	mustCreate(t, svc, "Lamp", "Furniture")

	results, err := svc.Search(context.Background(), "WARE")
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("Search(WARE): got %d results, want 2 (Hardware + Software)", len(results))
	}

	results, err = svc.Search(context.Background(), "widget")
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(results) != 1 || results[0].Name.String() != "Widget" {
		t.Errorf("Search(widget): got %v", results)
	}

	results, err = svc.Search(context.Background(), "nothing-matches")
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(results) != 0 {
		t.Errorf("Search(nothing-matches): got %d results, want 0", len(results))
	}
}

func TestListFiltersByCategory(t *testing.T) {
	svc := newItemService(newFakeItemRepo())
	mustCreate(t, svc, "Widget", "Hardware")
	mustCreate(t, svc, "Bolt", "Hardware")
	mustCreate(t, svc, "Editor", "Software")

	items, total, err := svc.List(context.Background(), "Hardware", repositories.QueryOpts{Limit: 10})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if total != 2 || len(items) != 2 {
		t.Errorf("got %d items, total %d, want 2/2", len(items), total)
	}

	items, total, err = svc.List(context.Background(), "Hardware", repositories.QueryOpts{Limit: 1})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if total != 2 || len(items) != 1 {
		t.Errorf("paginated: got %d items, total %d, want 1/2", len(items), total)
	}
}
