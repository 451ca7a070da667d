package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// SaleLine is an immutable snapshot of one cart line at finalize time.
// The unit price is frozen here; later catalog edits do not touch it.
type SaleLine struct {
	ArticleID string
	Name      string
	Quantity  int
	UnitPrice decimal.Decimal
}

// Total is quantity times the frozen unit price.
func (l SaleLine) Total() decimal.Decimal {
	return l.UnitPrice.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// Sale is a permanently recorded transaction. Total is the pre-tax
// subtotal; any surcharge is derived at presentation time.
type Sale struct {
	ID    string
	Date  time.Time
	Lines []SaleLine
	Total decimal.Decimal
}

// ItemCount is the number of distinct lines on the sale.
func (s Sale) ItemCount() int {
	return len(s.Lines)
}

// Clone returns a copy whose line slice does not alias the receiver's.
func (s Sale) Clone() Sale {
	out := s
	out.Lines = make([]SaleLine, len(s.Lines))
	copy(out.Lines, s.Lines)
	return out
}
