package catalog

import (
	"context"

	"github.com/grocodev/groco/internal/catalog/dto"
	"github.com/grocodev/groco/internal/model"
)

// UseCase is the application-facing catalog API. Mutations require the
// acting administrator; reads are open to any caller.
type UseCase interface {
	Create(ctx context.Context, actor *model.Administrator, in dto.CreateArticleInput) (model.Article, error)
	Update(ctx context.Context, actor *model.Administrator, id string, in dto.UpdateArticleInput) (model.Article, error)
	Remove(ctx context.Context, actor *model.Administrator, id string) error

	Get(ctx context.Context, id string) (model.Article, error)
	List(ctx context.Context) []model.Article
	SearchByName(ctx context.Context, substr string) []model.Article
	SearchByCategory(ctx context.Context, substr string) []model.Article
	Available(ctx context.Context, id string, qty int) bool
}
