// Package export renders sales and inventory data for the outside
// world: CSV files and receipt text. Column names and number formats
// follow the shop's established report layout.
package export

import (
	"encoding/csv"
	"io"

	"github.com/grocodev/groco/internal/model"
	"github.com/grocodev/groco/internal/report"
)

var salesHeader = []string{"ID Vente", "Date", "Nombre Articles", "Total"}

var stockHeader = []string{"ID Article", "Nom", "Quantité", "Prix", "Valeur Totale"}

// WriteSalesCSV writes one row per sale: id, yyyy-MM-dd date, line
// count, pre-tax total with two decimals.
func WriteSalesCSV(w io.Writer, sales []model.Sale) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(salesHeader); err != nil {
		return err
	}
	for _, s := range sales {
		row := []string{
			s.ID,
			s.Date.Format("2006-01-02"),
			itoa(s.ItemCount()),
			s.Total.StringFixed(2),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteStockCSV writes one row per report line; price and value carry
// two decimals.
func WriteStockCSV(w io.Writer, rows []report.StockRow) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(stockHeader); err != nil {
		return err
	}
	for _, r := range rows {
		row := []string{
			r.ArticleID,
			r.Name,
			itoa(r.Quantity),
			r.Price.StringFixed(2),
			r.TotalValue.StringFixed(2),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
