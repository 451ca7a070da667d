package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

type CreateArticleInput struct {
	ID       string
	Name     string
	Category string
	Price    decimal.Decimal
	Stock    int

	Perishable    bool
	Expiry        time.Time // required when Perishable
	ShelfLifeDays int       // non-perishable only
}

// UpdateArticleInput carries a partial update: nil fields keep their
// prior value.
type UpdateArticleInput struct {
	Name          *string
	Category      *string
	Price         *decimal.Decimal
	Stock         *int
	Expiry        *time.Time
	ShelfLifeDays *int
}
