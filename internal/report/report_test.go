package report

import (
	"testing"
	"time"

	"github.com/grocodev/groco/internal/model"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func sale(total string, lines ...model.SaleLine) model.Sale {
	return model.Sale{ID: "s", Date: time.Now(), Lines: lines, Total: dec(total)}
}

func line(name string, qty int, price string) model.SaleLine {
	return model.SaleLine{ArticleID: "X", Name: name, Quantity: qty, UnitPrice: dec(price)}
}

func TestSummarize(t *testing.T) {
	sales := []model.Sale{
		sale("4.50", line("Lait", 3, "1.50")),
		sale("10.50", line("Camembert", 2, "4.50"), line("Lait", 1, "1.50")),
	}

	s := Summarize(sales)
	assert.True(t, s.Revenue.Equal(dec("15.00")))
	assert.Equal(t, 2, s.Transactions)
	assert.True(t, s.Average.Equal(dec("7.50")))
	assert.Equal(t, 3, s.ItemsSold)
}

func TestSummarizeEmpty(t *testing.T) {
	s := Summarize(nil)
	assert.True(t, s.Revenue.IsZero())
	assert.True(t, s.Average.IsZero())
	assert.Equal(t, 0, s.Transactions)
}

func TestTopProducts(t *testing.T) {
	sales := []model.Sale{
		sale("4.50", line("Lait", 3, "1.50")),
		sale("9.00", line("Camembert", 2, "4.50")),
		sale("3.00", line("Lait", 2, "1.50")),
	}

	ranks := TopProducts(sales, 10)
	require.Len(t, ranks, 2)
	assert.Equal(t, "Camembert", ranks[0].Name)
	assert.True(t, ranks[0].Revenue.Equal(dec("9.00")))
	assert.Equal(t, 2, ranks[0].QuantitySold)
	assert.Equal(t, "Lait", ranks[1].Name)
	assert.Equal(t, 5, ranks[1].QuantitySold)
	assert.True(t, ranks[1].Revenue.Equal(dec("7.50")))
}

func TestTopProductsTiesKeepEncounterOrder(t *testing.T) {
	sales := []model.Sale{
		sale("3.00", line("Pain", 1, "3.00")),
		sale("3.00", line("Riz", 1, "3.00")),
	}

	ranks := TopProducts(sales, 10)
	require.Len(t, ranks, 2)
	assert.Equal(t, "Pain", ranks[0].Name)
	assert.Equal(t, "Riz", ranks[1].Name)
}

func TestTopProductsTruncates(t *testing.T) {
	sales := []model.Sale{
		sale("1.00", line("a", 1, "1.00"), line("b", 1, "2.00"), line("c", 1, "3.00")),
	}
	assert.Len(t, TopProducts(sales, 2), 2)
	assert.Empty(t, TopProducts(nil, 10))
}

func TestInventory(t *testing.T) {
	articles := []model.Article{
		{Kind: model.KindNonPerishable, ID: "A003", Name: "Pâtes", Price: dec("2.50"), Stock: 100},
		{Kind: model.KindPerishable, ID: "A001", Name: "Lait", Price: dec("1.50"), Stock: 5},
		{Kind: model.KindNonPerishable, ID: "A009", Name: "Sel", Price: dec("0.80"), Stock: 0},
	}

	rows, stats := Inventory(articles)
	require.Len(t, rows, 3)
	assert.Equal(t, "A003", rows[0].ArticleID)
	assert.True(t, rows[0].TotalValue.Equal(dec("250.00")))

	assert.Equal(t, 3, stats.TotalItems)
	assert.True(t, stats.TotalValue.Equal(dec("257.50")))
	assert.Equal(t, 1, stats.LowStock)
	assert.Equal(t, 1, stats.OutOfStock)
}

func TestExpired(t *testing.T) {
	now := time.Date(2026, 8, 29, 12, 0, 0, 0, time.Local)
	articles := []model.Article{
		{Kind: model.KindPerishable, ID: "A001", Name: "Lait", Price: dec("1.50"), Stock: 5,
			Expiry: now.AddDate(0, 0, -2)},
		{Kind: model.KindPerishable, ID: "A008", Name: "Tomates", Price: dec("3.20"), Stock: 50,
			Expiry: now.AddDate(0, 0, 4)},
		{Kind: model.KindPerishable, ID: "A006", Name: "Yaourt", Price: dec("2.80"), Stock: 40,
			Expiry: now.AddDate(0, 0, 15)},
		{Kind: model.KindNonPerishable, ID: "A003", Name: "Pâtes", Price: dec("2.50"), Stock: 100},
	}

	rows, stats := Expired(articles, now)
	require.Len(t, rows, 1)
	assert.Equal(t, "A001", rows[0].ArticleID)
	assert.Equal(t, "Lait (Expiré: "+now.AddDate(0, 0, -2).Format("2006-01-02")+")", rows[0].Name)
	assert.True(t, rows[0].TotalValue.Equal(dec("7.50")))

	assert.Equal(t, 1, stats.Expired)
	assert.Equal(t, 1, stats.ExpiringSoon)
	assert.True(t, stats.ExpiredValue.Equal(dec("7.50")))
}

func TestLowStock(t *testing.T) {
	articles := []model.Article{
		{Kind: model.KindNonPerishable, ID: "A009", Name: "Sel", Price: dec("0.80"), Stock: 0},
		{Kind: model.KindPerishable, ID: "A001", Name: "Lait", Price: dec("1.50"), Stock: 5},
		{Kind: model.KindNonPerishable, ID: "A010", Name: "Sucre", Price: dec("1.10"), Stock: 10},
		{Kind: model.KindNonPerishable, ID: "A003", Name: "Pâtes", Price: dec("2.50"), Stock: 100},
	}

	rows, stats := LowStock(articles)
	require.Len(t, rows, 3)
	assert.Equal(t, "Sel (RUPTURE DE STOCK)", rows[0].Name)
	assert.True(t, rows[0].TotalValue.IsZero())
	assert.Equal(t, "Lait (Stock faible: 5)", rows[1].Name)
	assert.Equal(t, "Sucre (Stock faible: 10)", rows[2].Name)

	assert.Equal(t, 2, stats.LowStock)
	assert.Equal(t, 1, stats.OutOfStock)
	assert.True(t, stats.ValueAtRisk.Equal(dec("18.50")))
}
