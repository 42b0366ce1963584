package repository

import (
	"context"
	"errors"

	"github.com/geekysharma31/closet-api/internal/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrDBNotReady = errors.New("database not initialized")

// ItemRepository owns item persistence. Create assigns the item its
// identifier; items are append-only so there is no update or delete.
type ItemRepository interface {
	Create(ctx context.Context, item *model.Item) error
	ListAll(ctx context.Context) ([]model.Item, error)
	SetDB(db *gorm.DB)
}

type itemRepository struct {
	db *gorm.DB
}

func NewItemRepository(db *gorm.DB) ItemRepository {
	return &itemRepository{db: db}
}

func (r *itemRepository) Create(ctx context.Context, item *model.Item) error {
	if r.db == nil {
		return ErrDBNotReady
	}
	if item.ID == "" {
		item.ID = uuid.NewString()
	}
	return r.db.WithContext(ctx).Create(item).Error
}

func (r *itemRepository) ListAll(ctx context.Context) ([]model.Item, error) {
	if r.db == nil {
		return nil, ErrDBNotReady
	}
	var items []model.Item
	if err := r.db.WithContext(ctx).
		Order("created_at asc, id asc").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *itemRepository) SetDB(db *gorm.DB) {
	r.db = db
}
