package repository

import (
	"context"
	"sync"
	"time"

	"github.com/geekysharma31/closet-api/internal/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// memoryRepository keeps items in insertion order in process memory. It backs
// tests and lets the server run without a database configured.
type memoryRepository struct {
	mu    sync.Mutex
	items []model.Item
}

func NewMemoryRepository() ItemRepository {
	return &memoryRepository{}
}

func (r *memoryRepository) Create(_ context.Context, item *model.Item) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if item.ID == "" {
		item.ID = uuid.NewString()
	}
	if item.CreatedAt.IsZero() {
		item.CreatedAt = time.Now().UTC()
	}
	if item.AdditionalImages == nil {
		item.AdditionalImages = model.ImageList{}
	}
	r.items = append(r.items, *item)
	return nil
}

func (r *memoryRepository) ListAll(_ context.Context) ([]model.Item, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]model.Item, len(r.items))
	copy(out, r.items)
	return out, nil
}

func (r *memoryRepository) SetDB(*gorm.DB) {}
