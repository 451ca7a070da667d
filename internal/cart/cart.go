package cart

import (
	"errors"

	"github.com/grocodev/groco/internal/model"
	"github.com/shopspring/decimal"
)

// ErrInvalidQuantity is returned when adding a non-positive quantity.
var ErrInvalidQuantity = errors.New("quantity must be positive")

// LineItem is one (article, quantity) selection. UnitPrice is captured
// when the line is first added, so catalog price edits made while the
// sale is in progress do not move an open cart.
type LineItem struct {
	ArticleID string
	Name      string
	Quantity  int
	UnitPrice decimal.Decimal
}

func (l LineItem) Total() decimal.Decimal {
	return l.UnitPrice.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// Cart accumulates line items for one sale in progress. It is owned by
// a single operator session and is not safe for concurrent use. Stock
// is deliberately not checked here; the register re-validates the whole
// cart at finalize time, which is the only enforcement that matters.
type Cart struct {
	lines []LineItem
}

func New() *Cart {
	return &Cart{}
}

// AddLine puts qty units of the article in the cart. Re-adding an
// article merges into its existing line; the line keeps the unit price
// captured on first add.
func (c *Cart) AddLine(a model.Article, qty int) error {
	if qty <= 0 {
		return ErrInvalidQuantity
	}
	for i := range c.lines {
		if c.lines[i].ArticleID == a.ID {
			c.lines[i].Quantity += qty
			return nil
		}
	}
	c.lines = append(c.lines, LineItem{
		ArticleID: a.ID,
		Name:      a.Name,
		Quantity:  qty,
		UnitPrice: a.Price,
	})
	return nil
}

// RemoveLine drops the article's line. Removing an absent id is a no-op.
func (c *Cart) RemoveLine(articleID string) {
	for i := range c.lines {
		if c.lines[i].ArticleID == articleID {
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
			return
		}
	}
}

// SetQuantity replaces the line's quantity; zero or less clears the line.
func (c *Cart) SetQuantity(articleID string, qty int) {
	if qty <= 0 {
		c.RemoveLine(articleID)
		return
	}
	for i := range c.lines {
		if c.lines[i].ArticleID == articleID {
			c.lines[i].Quantity = qty
			return
		}
	}
}

func (c *Cart) Clear() {
	c.lines = nil
}

// Lines returns a copy of the lines in insertion order.
func (c *Cart) Lines() []LineItem {
	out := make([]LineItem, len(c.lines))
	copy(out, c.lines)
	return out
}

// Total is the pre-tax subtotal; zero for an empty cart.
func (c *Cart) Total() decimal.Decimal {
	total := decimal.Zero
	for _, l := range c.lines {
		total = total.Add(l.Total())
	}
	return total
}

func (c *Cart) IsEmpty() bool {
	return len(c.lines) == 0
}

// Size is the number of distinct lines.
func (c *Cart) Size() int {
	return len(c.lines)
}
