// Package report computes read-side aggregates over the sales journal
// and the catalog. Nothing here mutates its inputs.
package report

import (
	"fmt"
	"sort"
	"time"

	"github.com/grocodev/groco/internal/model"
	"github.com/shopspring/decimal"
)

// LowStockThreshold is the stock level at or below which an article
// counts as low stock.
const LowStockThreshold = 10

// ExpiryWarningDays is the remaining-days window in which a perishable
// counts as expiring soon.
const ExpiryWarningDays = 7

// SalesSummary aggregates a slice of the journal.
type SalesSummary struct {
	Revenue      decimal.Decimal
	Transactions int
	Average      decimal.Decimal
	ItemsSold    int
}

// Summarize computes revenue, count, average sale and total line count.
// An empty input yields a zero summary, not a division by zero.
func Summarize(sales []model.Sale) SalesSummary {
	s := SalesSummary{Revenue: decimal.Zero, Average: decimal.Zero}
	for _, sale := range sales {
		s.Revenue = s.Revenue.Add(sale.Total)
		s.Transactions++
		s.ItemsSold += sale.ItemCount()
	}
	if s.Transactions > 0 {
		s.Average = s.Revenue.Div(decimal.NewFromInt(int64(s.Transactions)))
	}
	return s
}

// ProductRank is one row of the best-seller ranking.
type ProductRank struct {
	Name         string
	QuantitySold int
	Revenue      decimal.Decimal
}

// TopProducts ranks products by revenue, descending, truncated to n.
// Products are keyed by name, matching the recorded line snapshots.
// Ties keep first-encounter order, so the ranking is deterministic for
// a given journal.
func TopProducts(sales []model.Sale, n int) []ProductRank {
	index := map[string]int{}
	ranks := []ProductRank{}

	for _, sale := range sales {
		for _, line := range sale.Lines {
			i, ok := index[line.Name]
			if !ok {
				i = len(ranks)
				index[line.Name] = i
				ranks = append(ranks, ProductRank{Name: line.Name, Revenue: decimal.Zero})
			}
			ranks[i].QuantitySold += line.Quantity
			ranks[i].Revenue = ranks[i].Revenue.Add(line.Total())
		}
	}

	sort.SliceStable(ranks, func(i, j int) bool {
		return ranks[i].Revenue.GreaterThan(ranks[j].Revenue)
	})
	if n >= 0 && len(ranks) > n {
		ranks = ranks[:n]
	}
	return ranks
}

// StockRow is one exported line of an inventory-shaped report.
type StockRow struct {
	ArticleID  string
	Name       string
	Quantity   int
	Price      decimal.Decimal
	TotalValue decimal.Decimal
}

// InventoryStats summarizes the full catalog.
type InventoryStats struct {
	TotalItems int
	TotalValue decimal.Decimal
	LowStock   int
	OutOfStock int
}

// Inventory lists every article with its stock value, plus catalog-wide
// statistics.
func Inventory(articles []model.Article) ([]StockRow, InventoryStats) {
	rows := make([]StockRow, 0, len(articles))
	stats := InventoryStats{TotalValue: decimal.Zero}

	for _, a := range articles {
		rows = append(rows, StockRow{
			ArticleID:  a.ID,
			Name:       a.Name,
			Quantity:   a.Stock,
			Price:      a.Price,
			TotalValue: a.StockValue(),
		})
		stats.TotalItems++
		stats.TotalValue = stats.TotalValue.Add(a.StockValue())
		switch {
		case a.Stock == 0:
			stats.OutOfStock++
		case a.Stock <= LowStockThreshold:
			stats.LowStock++
		}
	}
	return rows, stats
}

// ExpiryStats summarizes the perishable side of the catalog.
type ExpiryStats struct {
	Expired      int
	ExpiringSoon int
	ExpiredValue decimal.Decimal
}

// Expired lists the perishable articles already past expiry as of now,
// annotating each row with its expiry date, and counts those expiring
// within the warning window.
func Expired(articles []model.Article, now time.Time) ([]StockRow, ExpiryStats) {
	rows := []StockRow{}
	stats := ExpiryStats{ExpiredValue: decimal.Zero}

	for _, a := range articles {
		if a.Kind != model.KindPerishable {
			continue
		}
		if a.ExpiredAt(now) {
			stats.Expired++
			stats.ExpiredValue = stats.ExpiredValue.Add(a.StockValue())
			rows = append(rows, StockRow{
				ArticleID:  a.ID,
				Name:       fmt.Sprintf("%s (Expiré: %s)", a.Name, a.Expiry.Format("2006-01-02")),
				Quantity:   a.Stock,
				Price:      a.Price,
				TotalValue: a.StockValue(),
			})
		} else if a.DaysRemainingAt(now) <= ExpiryWarningDays {
			stats.ExpiringSoon++
		}
	}
	return rows, stats
}

// LowStockStats summarizes articles at or below the reorder threshold.
type LowStockStats struct {
	LowStock    int
	OutOfStock  int
	ValueAtRisk decimal.Decimal
}

// LowStock lists out-of-stock and low-stock articles with annotated
// names, and the value still on hand for the low-stock ones.
func LowStock(articles []model.Article) ([]StockRow, LowStockStats) {
	rows := []StockRow{}
	stats := LowStockStats{ValueAtRisk: decimal.Zero}

	for _, a := range articles {
		switch {
		case a.Stock == 0:
			stats.OutOfStock++
			rows = append(rows, StockRow{
				ArticleID:  a.ID,
				Name:       a.Name + " (RUPTURE DE STOCK)",
				Quantity:   0,
				Price:      a.Price,
				TotalValue: decimal.Zero,
			})
		case a.Stock <= LowStockThreshold:
			stats.LowStock++
			stats.ValueAtRisk = stats.ValueAtRisk.Add(a.StockValue())
			rows = append(rows, StockRow{
				ArticleID:  a.ID,
				Name:       fmt.Sprintf("%s (Stock faible: %d)", a.Name, a.Stock),
				Quantity:   a.Stock,
				Price:      a.Price,
				TotalValue: a.StockValue(),
			})
		}
	}
	return rows, stats
}
