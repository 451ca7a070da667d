package usecase

import (
	"context"
	"fmt"

	"github.com/grocodev/groco/internal/catalog"
	"github.com/grocodev/groco/internal/catalog/dto"
	"github.com/grocodev/groco/internal/model"
	"go.uber.org/zap"
)

type catalogUseCase struct {
	repo   catalog.Repository
	logger *zap.Logger
}

func NewCatalogUseCase(repo catalog.Repository, logger *zap.Logger) catalog.UseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &catalogUseCase{
		repo:   repo,
		logger: logger,
	}
}

func (uc *catalogUseCase) Create(ctx context.Context, actor *model.Administrator, in dto.CreateArticleInput) (model.Article, error) {
	if actor == nil {
		return model.Article{}, catalog.ErrNotAuthorized
	}
	if in.ID == "" {
		return model.Article{}, fmt.Errorf("%w: empty article id", catalog.ErrInvalidValue)
	}
	if in.Name == "" {
		return model.Article{}, fmt.Errorf("%w: empty article name", catalog.ErrInvalidValue)
	}
	if in.Price.IsNegative() {
		return model.Article{}, fmt.Errorf("%w: negative price", catalog.ErrInvalidValue)
	}
	if in.Stock < 0 {
		return model.Article{}, fmt.Errorf("%w: negative stock", catalog.ErrInvalidValue)
	}

	a := model.Article{
		ID:       in.ID,
		Name:     in.Name,
		Category: in.Category,
		Price:    in.Price,
		Stock:    in.Stock,
	}
	if in.Perishable {
		if in.Expiry.IsZero() {
			return model.Article{}, fmt.Errorf("%w: perishable article needs an expiry date", catalog.ErrInvalidValue)
		}
		a.Kind = model.KindPerishable
		a.Expiry = in.Expiry
	} else {
		a.Kind = model.KindNonPerishable
		a.ShelfLifeDays = in.ShelfLifeDays
	}

	if err := uc.repo.Add(ctx, a); err != nil {
		return model.Article{}, err
	}

	uc.logger.Info("article added",
		zap.String("article_id", a.ID),
		zap.String("kind", a.Kind.String()),
		zap.String("admin_id", actor.ID),
	)
	return a, nil
}

func (uc *catalogUseCase) Update(ctx context.Context, actor *model.Administrator, id string, in dto.UpdateArticleInput) (model.Article, error) {
	if actor == nil {
		return model.Article{}, catalog.ErrNotAuthorized
	}

	a, err := uc.repo.Update(ctx, id, in)
	if err != nil {
		return model.Article{}, err
	}

	uc.logger.Info("article updated",
		zap.String("article_id", id),
		zap.String("admin_id", actor.ID),
	)
	return a, nil
}

func (uc *catalogUseCase) Remove(ctx context.Context, actor *model.Administrator, id string) error {
	if actor == nil {
		return catalog.ErrNotAuthorized
	}

	if err := uc.repo.Remove(ctx, id); err != nil {
		return err
	}

	uc.logger.Info("article removed",
		zap.String("article_id", id),
		zap.String("admin_id", actor.ID),
	)
	return nil
}

func (uc *catalogUseCase) Get(ctx context.Context, id string) (model.Article, error) {
	return uc.repo.Get(ctx, id)
}

func (uc *catalogUseCase) List(ctx context.Context) []model.Article {
	return uc.repo.List(ctx)
}

func (uc *catalogUseCase) SearchByName(ctx context.Context, substr string) []model.Article {
	return uc.repo.SearchByName(ctx, substr)
}

func (uc *catalogUseCase) SearchByCategory(ctx context.Context, substr string) []model.Article {
	return uc.repo.SearchByCategory(ctx, substr)
}

func (uc *catalogUseCase) Available(ctx context.Context, id string, qty int) bool {
	return uc.repo.Available(ctx, id, qty)
}
