package register

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/grocodev/groco/internal/cart"
	"github.com/grocodev/groco/internal/catalog"
	"github.com/grocodev/groco/internal/model"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// ErrEmptyCart is returned when finalize is invoked with no lines.
var ErrEmptyCart = errors.New("cart is empty")

// Stock is the slice of the catalog a finalize needs: the atomic
// all-or-nothing decrement.
type Stock interface {
	DecrementBatch(ctx context.Context, demands []catalog.StockDemand) error
}

// Register owns the append-only sales journal and the stock-decrement
// transaction. The opening float is informational.
type Register struct {
	openingFloat decimal.Decimal
	logger       *zap.Logger

	mu      sync.Mutex
	journal []model.Sale

	// now is swapped in tests to pin sale dates.
	now func() time.Time
}

func New(openingFloat decimal.Decimal, logger *zap.Logger) *Register {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Register{
		openingFloat: openingFloat,
		logger:       logger,
		now:          time.Now,
	}
}

// Finalize converts the cart into a recorded Sale against the given
// stock. Every line is validated before any stock moves; a shortage on
// any line fails the whole operation with catalog.ErrInsufficientStock
// and no state change. On success the sale is appended to the journal
// and returned; the caller still owns (and should clear) the cart.
func (r *Register) Finalize(ctx context.Context, c *cart.Cart, stock Stock) (model.Sale, error) {
	if c.IsEmpty() {
		return model.Sale{}, ErrEmptyCart
	}

	lines := c.Lines()
	demands := make([]catalog.StockDemand, len(lines))
	for i, l := range lines {
		demands[i] = catalog.StockDemand{ArticleID: l.ArticleID, Quantity: l.Quantity}
	}

	if err := stock.DecrementBatch(ctx, demands); err != nil {
		r.logger.Warn("sale rejected", zap.Error(err))
		return model.Sale{}, err
	}

	sale := model.Sale{
		ID:    uuid.NewString(),
		Date:  r.now(),
		Lines: make([]model.SaleLine, len(lines)),
		Total: c.Total(),
	}
	for i, l := range lines {
		sale.Lines[i] = model.SaleLine{
			ArticleID: l.ArticleID,
			Name:      l.Name,
			Quantity:  l.Quantity,
			UnitPrice: l.UnitPrice,
		}
	}

	r.mu.Lock()
	r.journal = append(r.journal, sale)
	r.mu.Unlock()

	r.logger.Info("sale recorded",
		zap.String("sale_id", sale.ID),
		zap.Int("lines", len(sale.Lines)),
		zap.String("total", sale.Total.StringFixed(2)),
	)
	return sale.Clone(), nil
}

// DailySales returns the sales recorded on the calendar date of day,
// in journal order.
func (r *Register) DailySales(day time.Time) []model.Sale {
	return r.SalesBetween(day, day)
}

// SalesBetween filters the journal by calendar date, both bounds
// inclusive, preserving chronological order.
func (r *Register) SalesBetween(start, end time.Time) []model.Sale {
	startDay := dateOf(start)
	endDay := dateOf(end)

	r.mu.Lock()
	defer r.mu.Unlock()

	out := []model.Sale{}
	for _, s := range r.journal {
		day := dateOf(s.Date)
		if day.Before(startDay) || day.After(endDay) {
			continue
		}
		out = append(out, s.Clone())
	}
	return out
}

// Journal returns a copy of every recorded sale in chronological order.
func (r *Register) Journal() []model.Sale {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]model.Sale, len(r.journal))
	for i, s := range r.journal {
		out[i] = s.Clone()
	}
	return out
}

func (r *Register) OpeningFloat() decimal.Decimal {
	return r.openingFloat
}

func dateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
