package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// ArticleKind discriminates the two catalog variants. Code that differs
// per variant switches exhaustively on it instead of inspecting fields.
type ArticleKind int

const (
	KindPerishable ArticleKind = iota
	KindNonPerishable
)

func (k ArticleKind) String() string {
	switch k {
	case KindPerishable:
		return "perishable"
	case KindNonPerishable:
		return "non-perishable"
	}
	return "unknown"
}

// Article is a catalog item. It is stored and passed by value so the
// owning inventory stays the single writer of its state.
type Article struct {
	Kind     ArticleKind
	ID       string
	Name     string
	Category string
	Price    decimal.Decimal
	Stock    int

	// Expiry is set only when Kind is KindPerishable. Calendar date;
	// clock time is ignored.
	Expiry time.Time

	// ShelfLifeDays is set only when Kind is KindNonPerishable.
	// Informational; no expiry is derived from it.
	ShelfLifeDays int
}

// Available reports whether the current stock covers qty units.
func (a Article) Available(qty int) bool {
	return a.Stock >= qty
}

// ExpiredAt reports whether a perishable article is past its expiry on
// the calendar date of now. Non-perishable articles never expire.
func (a Article) ExpiredAt(now time.Time) bool {
	switch a.Kind {
	case KindPerishable:
		return dateOf(now).After(dateOf(a.Expiry))
	case KindNonPerishable:
		return false
	}
	return false
}

// DaysRemainingAt returns whole calendar days until expiry, negative
// once expired. Meaningful only for perishable articles.
func (a Article) DaysRemainingAt(now time.Time) int {
	return int(dateOf(a.Expiry).Sub(dateOf(now)).Hours() / 24)
}

// Expired is ExpiredAt against the wall clock.
func (a Article) Expired() bool {
	return a.ExpiredAt(time.Now())
}

// DaysRemaining is DaysRemainingAt against the wall clock.
func (a Article) DaysRemaining() int {
	return a.DaysRemainingAt(time.Now())
}

// StockValue is price times units on hand.
func (a Article) StockValue() decimal.Decimal {
	return a.Price.Mul(decimal.NewFromInt(int64(a.Stock)))
}

// dateOf truncates to a UTC calendar date so day arithmetic is immune
// to DST offsets.
func dateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
