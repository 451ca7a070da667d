package repository

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/grocodev/groco/internal/catalog"
	"github.com/grocodev/groco/internal/catalog/dto"
	"github.com/grocodev/groco/internal/model"
)

// MemoryRepository keeps the whole catalog in process memory, which is
// the system's only storage for its lifetime. A single RWMutex guards
// the map and the insertion-order index, so batch decrements are atomic
// with respect to every other mutation.
type MemoryRepository struct {
	mu    sync.RWMutex
	items map[string]model.Article
	order []string
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		items: map[string]model.Article{},
	}
}

func (r *MemoryRepository) Add(_ context.Context, a model.Article) error {
	if a.ID == "" {
		return fmt.Errorf("%w: empty article id", catalog.ErrInvalidValue)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[a.ID]; ok {
		return fmt.Errorf("%w: %s", catalog.ErrDuplicateID, a.ID)
	}
	r.items[a.ID] = a
	r.order = append(r.order, a.ID)
	return nil
}

func (r *MemoryRepository) Get(_ context.Context, id string) (model.Article, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	a, ok := r.items[id]
	if !ok {
		return model.Article{}, fmt.Errorf("%w: %s", catalog.ErrNotFound, id)
	}
	return a, nil
}

func (r *MemoryRepository) Update(_ context.Context, id string, in dto.UpdateArticleInput) (model.Article, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	a, ok := r.items[id]
	if !ok {
		return model.Article{}, fmt.Errorf("%w: %s", catalog.ErrNotFound, id)
	}

	if in.Price != nil {
		if in.Price.IsNegative() {
			return model.Article{}, fmt.Errorf("%w: negative price", catalog.ErrInvalidValue)
		}
		a.Price = *in.Price
	}
	if in.Stock != nil {
		if *in.Stock < 0 {
			return model.Article{}, fmt.Errorf("%w: negative stock", catalog.ErrInvalidValue)
		}
		a.Stock = *in.Stock
	}
	if in.Name != nil {
		a.Name = *in.Name
	}
	if in.Category != nil {
		a.Category = *in.Category
	}
	if in.Expiry != nil && a.Kind == model.KindPerishable {
		a.Expiry = *in.Expiry
	}
	if in.ShelfLifeDays != nil && a.Kind == model.KindNonPerishable {
		a.ShelfLifeDays = *in.ShelfLifeDays
	}

	r.items[id] = a
	return a, nil
}

func (r *MemoryRepository) Remove(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[id]; !ok {
		return fmt.Errorf("%w: %s", catalog.ErrNotFound, id)
	}
	delete(r.items, id)
	for i, oid := range r.order {
		if oid == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

func (r *MemoryRepository) List(_ context.Context) []model.Article {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.snapshot()
}

func (r *MemoryRepository) SearchByName(_ context.Context, substr string) []model.Article {
	return r.search(func(a model.Article) string { return a.Name }, substr)
}

func (r *MemoryRepository) SearchByCategory(_ context.Context, substr string) []model.Article {
	return r.search(func(a model.Article) string { return a.Category }, substr)
}

func (r *MemoryRepository) Available(_ context.Context, id string, qty int) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	a, ok := r.items[id]
	return ok && a.Available(qty)
}

func (r *MemoryRepository) DecrementBatch(_ context.Context, demands []catalog.StockDemand) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, d := range demands {
		if d.Quantity <= 0 {
			return fmt.Errorf("%w: non-positive quantity for %s", catalog.ErrInvalidValue, d.ArticleID)
		}
	}

	// Dry run against a working copy of the stock levels so a failure
	// anywhere in the batch mutates nothing.
	remaining := make(map[string]int, len(demands))
	var shortages []catalog.StockShortage
	for _, d := range demands {
		a, ok := r.items[d.ArticleID]
		if !ok {
			shortages = append(shortages, catalog.StockShortage{
				ArticleID: d.ArticleID,
				Requested: d.Quantity,
			})
			continue
		}
		if _, seen := remaining[d.ArticleID]; !seen {
			remaining[d.ArticleID] = a.Stock
		}
		remaining[d.ArticleID] -= d.Quantity
		if remaining[d.ArticleID] < 0 {
			shortages = append(shortages, catalog.StockShortage{
				ArticleID: d.ArticleID,
				Name:      a.Name,
				Requested: d.Quantity,
				Available: a.Stock,
			})
		}
	}
	if len(shortages) > 0 {
		return &catalog.InsufficientStockError{Shortages: shortages}
	}

	for _, d := range demands {
		a := r.items[d.ArticleID]
		a.Stock -= d.Quantity
		r.items[d.ArticleID] = a
	}
	return nil
}

func (r *MemoryRepository) search(field func(model.Article) string, substr string) []model.Article {
	needle := strings.ToLower(substr)

	r.mu.RLock()
	defer r.mu.RUnlock()

	out := []model.Article{}
	for _, id := range r.order {
		a := r.items[id]
		if strings.Contains(strings.ToLower(field(a)), needle) {
			out = append(out, a)
		}
	}
	return out
}

// snapshot copies every article in insertion order. Callers hold at
// least a read lock.
func (r *MemoryRepository) snapshot() []model.Article {
	out := make([]model.Article, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.items[id])
	}
	return out
}
