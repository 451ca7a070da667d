package export

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/grocodev/groco/internal/model"
	"github.com/shopspring/decimal"
)

// Receipt renders the customer-facing invoice text for a sale. The tax
// surcharge is computed here from the given rate and never stored; the
// sale itself keeps only the pre-tax subtotal.
func Receipt(s model.Sale, taxRate decimal.Decimal) string {
	tax := s.Total.Mul(taxRate)
	total := s.Total.Add(tax)

	var b strings.Builder
	b.WriteString("=== FACTURE ===\n")
	fmt.Fprintf(&b, "ID Vente: %s\n", s.ID)
	fmt.Fprintf(&b, "Date: %s\n\n", s.Date.Format("2006-01-02"))
	b.WriteString("ARTICLES VENDUS:\n")
	for _, l := range s.Lines {
		fmt.Fprintf(&b, "- %s x%d: %s€\n", l.Name, l.Quantity, l.Total().StringFixed(2))
	}
	fmt.Fprintf(&b, "\nSOUS-TOTAL: %s€\n", s.Total.StringFixed(2))
	fmt.Fprintf(&b, "TVA (%s%%): %s€\n", taxRate.Mul(decimal.NewFromInt(100)).String(), tax.StringFixed(2))
	fmt.Fprintf(&b, "TOTAL: %s€\n", total.StringFixed(2))
	return b.String()
}

func itoa(n int) string {
	return strconv.Itoa(n)
}
