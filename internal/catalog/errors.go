package catalog

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNotFound is returned when an article id is absent from the inventory.
var ErrNotFound = errors.New("article not found")

// ErrDuplicateID is returned when adding an article whose id already exists.
var ErrDuplicateID = errors.New("article id already exists")

// ErrInvalidValue is returned for negative prices or stock, non-positive
// quantities and empty identifiers.
var ErrInvalidValue = errors.New("invalid value")

// ErrNotAuthorized is returned when a catalog mutation is attempted
// without an administrator principal.
var ErrNotAuthorized = errors.New("administrator required")

// ErrInsufficientStock is the sentinel for stock decrements that cannot
// be covered. The concrete error is an *InsufficientStockError carrying
// every offending line; errors.Is against this sentinel still matches.
var ErrInsufficientStock = errors.New("insufficient stock")

// StockShortage names one line a decrement could not satisfy.
type StockShortage struct {
	ArticleID string
	Name      string
	Requested int
	Available int
}

// InsufficientStockError reports all shortages of a failed batch
// decrement. No stock was mutated.
type InsufficientStockError struct {
	Shortages []StockShortage
}

func (e *InsufficientStockError) Error() string {
	parts := make([]string, 0, len(e.Shortages))
	for _, s := range e.Shortages {
		if s.Name == "" {
			parts = append(parts, fmt.Sprintf("%s: not in inventory", s.ArticleID))
			continue
		}
		parts = append(parts, fmt.Sprintf("%s (%s): requested %d, available %d",
			s.Name, s.ArticleID, s.Requested, s.Available))
	}
	return "insufficient stock: " + strings.Join(parts, "; ")
}

func (e *InsufficientStockError) Is(target error) bool {
	return target == ErrInsufficientStock
}
