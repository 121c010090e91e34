package order

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Ezinne-Elele/qucoon-shopokoa-backend-mobile/internal/product"
)

// InsufficientStockError is returned when a line item asks for more units than
// the product currently has.
type InsufficientStockError struct {
	ProductName string
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock for %s", e.ProductName)
}

// Service places orders against the product catalog.
type Service struct {
	orders   Repository
	products product.Repository
}

func NewService(orders Repository, products product.Repository) *Service {
	return &Service{orders: orders, products: products}
}

// Place validates every line item against the catalog, persists the order as
// pending, then decrements stock per item. The three steps are not wrapped in
// a transaction: a concurrent placement can pass validation against the same
// stock and both decrements go through.
func (s *Service) Place(ctx context.Context, req CreateRequest) (*Order, error) {
	for _, it := range req.Items {
		p, err := s.products.Get(ctx, it.ProductID)
		if err != nil {
			if errors.Is(err, product.ErrNotFound) {
				return nil, fmt.Errorf("product %s: %w", it.ProductID, product.ErrNotFound)
			}
			return nil, fmt.Errorf("look up product %s: %w", it.ProductID, err)
		}
		if p.Stock < it.Quantity {
			return nil, &InsufficientStockError{ProductName: p.Name}
		}
	}

	now := time.Now().UTC()
	name := req.CustomerName
	if name == "" {
		name = "Guest"
	}

	o := &Order{
		OrderID:         NewOrderID(now),
		Items:           req.Items,
		Total:           req.Total,
		CustomerName:    name,
		CustomerEmail:   req.CustomerEmail,
		ShippingAddress: req.ShippingAddress,
		Status:          StatusPending,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if err := s.orders.Create(ctx, o); err != nil {
		return nil, err
	}

	for _, it := range req.Items {
		if err := s.products.DecrementStock(ctx, it.ProductID, it.Quantity); err != nil {
			return nil, fmt.Errorf("decrement stock for %s: %w", it.ProductID, err)
		}
	}

	return o, nil
}
