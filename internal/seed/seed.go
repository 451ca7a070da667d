// Package seed installs the demo catalog the application ships with.
package seed

import (
	"context"
	"time"

	"github.com/grocodev/groco/internal/catalog"
	"github.com/grocodev/groco/internal/model"
	"github.com/shopspring/decimal"
)

// Catalog fills the repository with the standard A001..A008 sample
// articles. Perishable expiry dates are offsets from now, so the data
// stays realistic whenever the process starts. Seeding writes to the
// repository directly; it is bootstrap, not an administrator action.
func Catalog(ctx context.Context, repo catalog.Repository, now time.Time) error {
	articles := []model.Article{
		perishable("A001", "Lait demi-écrémé 1L", "1.50", 5, "Produits laitiers", now.AddDate(0, 0, 5)),
		perishable("A002", "Pain complet", "1.20", 30, "Boulangerie", now.AddDate(0, 0, 2)),
		nonPerishable("A003", "Pâtes Spaghetti 500g", "2.50", 100, "Épicerie salée", 365),
		nonPerishable("A004", "Riz Basmati 1kg", "3.00", 80, "Épicerie salée", 730),
		perishable("A005", "Fromage Camembert", "4.50", 25, "Produits laitiers", now.AddDate(0, 0, 10)),
		perishable("A006", "Yaourt nature x4", "2.80", 40, "Produits laitiers", now.AddDate(0, 0, 15)),
		nonPerishable("A007", "Huile d'olive 1L", "8.50", 30, "Épicerie salée", 545),
		perishable("A008", "Tomates fraîches 1kg", "3.20", 50, "Fruits et légumes", now.AddDate(0, 0, 4)),
	}

	for _, a := range articles {
		if err := repo.Add(ctx, a); err != nil {
			return err
		}
	}
	return nil
}

func perishable(id, name, price string, stock int, category string, expiry time.Time) model.Article {
	return model.Article{
		Kind:     model.KindPerishable,
		ID:       id,
		Name:     name,
		Category: category,
		Price:    decimal.RequireFromString(price),
		Stock:    stock,
		Expiry:   expiry,
	}
}

func nonPerishable(id, name, price string, stock int, category string, shelfLifeDays int) model.Article {
	return model.Article{
		Kind:          model.KindNonPerishable,
		ID:            id,
		Name:          name,
		Category:      category,
		Price:         decimal.RequireFromString(price),
		Stock:         stock,
		ShelfLifeDays: shelfLifeDays,
	}
}
