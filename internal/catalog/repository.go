package catalog

import (
	"context"

	"github.com/grocodev/groco/internal/catalog/dto"
	"github.com/grocodev/groco/internal/model"
)

// StockDemand is one article's share of a batch decrement.
type StockDemand struct {
	ArticleID string
	Quantity  int
}

// Repository owns the article set. Implementations must keep insertion
// order stable for List and the searches, and must make DecrementBatch
// atomic with respect to every other mutation.
type Repository interface {
	Add(ctx context.Context, a model.Article) error
	Get(ctx context.Context, id string) (model.Article, error)
	// Update applies only the non-nil fields of in.
	Update(ctx context.Context, id string, in dto.UpdateArticleInput) (model.Article, error)
	Remove(ctx context.Context, id string) error
	List(ctx context.Context) []model.Article

	SearchByName(ctx context.Context, substr string) []model.Article
	SearchByCategory(ctx context.Context, substr string) []model.Article
	Available(ctx context.Context, id string, qty int) bool

	// DecrementBatch validates every demand before mutating anything;
	// on failure it returns an *InsufficientStockError naming all
	// offending lines and leaves stock untouched.
	DecrementBatch(ctx context.Context, demands []StockDemand) error
}
