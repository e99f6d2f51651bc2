package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/ghuser/itemhub/pkg/database"
	"github.com/ghuser/itemhub/pkg/events"
	itemdomain "github.com/ghuser/itemhub/services/item/domain"
	domainevents "github.com/ghuser/itemhub/services/item/domain/events"
	"github.com/ghuser/itemhub/services/item/domain/models"
	"github.com/ghuser/itemhub/services/item/domain/repositories"
)

const itemColumns = "id, name, category, created_at, updated_at"

// ItemRepository implements repositories.ItemRepository against PostgreSQL.
type ItemRepository struct {
	db  *database.Database
	bus *events.EventBus
}

// NewItemRepository returns an ItemRepository backed by the given connection pool
// and event bus. The bus is used to publish ItemCreatedEvents after a successful save.
func NewItemRepository(db *database.Database, bus *events.EventBus) *ItemRepository {
	return &ItemRepository{db: db, bus: bus}
}

// Save persists a new Item and publishes an ItemCreatedEvent within the same transaction.
// Returns ErrItemAlreadyExists on unique constraint violations.
func (r *ItemRepository) Save(ctx context.Context, item *models.Item) error {
	return r.db.WithTx(ctx, func(tx *sql.Tx) error {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO items (id, name, category, created_at, updated_at)
			 VALUES ($1, $2, $3, $4, $5)`,
			item.ID, item.Name.String(), item.Category, item.CreatedAt, item.UpdatedAt,
		)
		if err != nil {
			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) && pgErr.Code == "23505" {
				return itemdomain.ErrItemAlreadyExists
			}
			return fmt.Errorf("insert item: %w", err)
		}

		if r.bus != nil {
			if err := r.publishCreated(tx, item); err != nil {
				return fmt.Errorf("publish item created: %w", err)
			}
		}
		return nil
	})
}

// GetByID retrieves an Item by ID. Returns ErrItemNotFound if not found.
func (r *ItemRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Item, error) {
	row := r.db.DB().QueryRowContext(ctx,
		`SELECT `+itemColumns+` FROM items WHERE id = $1`, id,
	)
	item, err := scanItem(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, itemdomain.ErrItemNotFound
		}
		return nil, fmt.Errorf("query item: %w", err)
	}
	return item, nil
}

// List retrieves items ordered by creation time, optionally filtered by exact
// category, plus the total count ignoring pagination. A Limit <= 0 returns
// every matching row.
func (r *ItemRepository) List(ctx context.Context, category string, opts repositories.QueryOpts) ([]*models.Item, int, error) {
	query := `SELECT ` + itemColumns + ` FROM items`
	countQuery := `SELECT COUNT(*) FROM items`
	args := []any{}

	if category != "" {
		query += ` WHERE category = $1`
		countQuery += ` WHERE category = $1`
		args = append(args, category)
	}
	query += ` ORDER BY created_at, id`
	if opts.Limit > 0 {
		query += fmt.Sprintf(` LIMIT $%d OFFSET $%d`, len(args)+1, len(args)+2)
		args = append(args, opts.Limit, opts.Offset)
	}

	rows, err := r.db.DB().QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("query items: %w", err)
	}
	defer rows.Close() //nolint:errcheck
	items, err := collectItems(rows)
	if err != nil {
		return nil, 0, err
	}

	var total int
	countArgs := args[:0]
	if category != "" {
		countArgs = []any{category}
	}
	if err := r.db.DB().QueryRowContext(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count items: %w", err)
	}
	return items, total, nil
}

// FindByName retrieves items with the given exact name.
func (r *ItemRepository) FindByName(ctx context.Context, name string) ([]*models.Item, error) {
	rows, err := r.db.DB().QueryContext(ctx,
		`SELECT `+itemColumns+` FROM items WHERE name = $1`, name,
	)
	if err != nil {
		return nil, fmt.Errorf("query items by name: %w", err)
	}
	defer rows.Close() //nolint:errcheck
	return collectItems(rows)
}

// Update persists changes to an existing Item. Returns ErrItemNotFound when
// no row matches.
func (r *ItemRepository) Update(ctx context.Context, item *models.Item) error {
	res, err := r.db.DB().ExecContext(ctx,
		`UPDATE items SET name = $2, category = $3, updated_at = $4 WHERE id = $1`,
		item.ID, item.Name.String(), item.Category, item.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update item: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return itemdomain.ErrItemNotFound
	}
	return nil
}

// Delete removes an item by ID.
func (r *ItemRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := r.db.DB().ExecContext(ctx, `DELETE FROM items WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete item: %w", err)
	}
	return nil
}

// Exists reports whether an item with the given ID exists.
func (r *ItemRepository) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	var exists bool
	err := r.db.DB().QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM items WHERE id = $1)`, id,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check item exists: %w", err)
	}
	return exists, nil
}

func (r *ItemRepository) publishCreated(tx *sql.Tx, item *models.Item) error {
	event := domainevents.ItemCreatedEvent{
		EventID:    uuid.New(),
		Version:    1,
		ItemID:     item.ID,
		Name:       item.Name.String(),
		Category:   item.Category,
		OccurredAt: item.CreatedAt,
	}
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}
	msg := message.NewMessage(watermill.NewUUID(), payload)
	msg.Metadata.Set("event_id", event.EventID.String())
	msg.Metadata.Set("event_version", "1")
	p, err := r.bus.NewTxPublisher(tx)
	if err != nil {
		return fmt.Errorf("create publisher: %w", err)
	}
	return p.Publish(domainevents.TopicItemCreated, msg)
}

type rowScanner interface {
	Scan(dest ...any) error
}

// scanItem maps one items row to a domain models.Item.
func scanItem(row rowScanner) (*models.Item, error) {
	var (
		item     models.Item
		name     string
		created  time.Time
		updated  time.Time
		category string
	)
	if err := row.Scan(&item.ID, &name, &category, &created, &updated); err != nil {
		return nil, err
	}
	item.Name = models.ItemName(name)
	item.Category = category
	item.CreatedAt = created
	item.UpdatedAt = updated
	return &item, nil
}

func collectItems(rows *sql.Rows) ([]*models.Item, error) {
	items := make([]*models.Item, 0)
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, fmt.Errorf("scan item: %w", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate items: %w", err)
	}
	return items, nil
}
