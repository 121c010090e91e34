package cart

import (
	"errors"
	"time"
)

// Item is one cart row. Adds are append-only: the same user/product pair can
// appear multiple times and is never merged.
type Item struct {
	UserID    string    `json:"userId" bson:"userId"`
	ProductID string    `json:"productId" bson:"productId"`
	Quantity  int       `json:"quantity" bson:"quantity"`
	AddedAt   time.Time `json:"addedAt" bson:"addedAt"`
}

type AddRequest struct {
	UserID    string `json:"userId"`
	ProductID string `json:"productId"`
	Quantity  *int   `json:"quantity"`
}

func (r AddRequest) Validate() error {
	if r.UserID == "" {
		return errors.New("userId is required")
	}
	if r.ProductID == "" {
		return errors.New("productId is required")
	}
	if r.Quantity != nil && *r.Quantity < 1 {
		return errors.New("quantity must be at least 1")
	}
	return nil
}

// NewItem builds a cart row from a validated add request, defaulting the
// quantity to 1.
func (r AddRequest) NewItem(now time.Time) *Item {
	qty := 1
	if r.Quantity != nil {
		qty = *r.Quantity
	}
	return &Item{
		UserID:    r.UserID,
		ProductID: r.ProductID,
		Quantity:  qty,
		AddedAt:   now,
	}
}
