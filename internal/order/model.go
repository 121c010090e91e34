package order

import (
	"errors"
	"fmt"
	"strconv"
	"time"
)

type Item struct {
	ProductID string `json:"productId" bson:"productId"`
	Quantity  int    `json:"quantity" bson:"quantity"`
}

type Address struct {
	Street  string `json:"street" bson:"street"`
	City    string `json:"city" bson:"city"`
	State   string `json:"state" bson:"state"`
	ZipCode string `json:"zipCode" bson:"zipCode"`
	Country string `json:"country" bson:"country"`
}

type Order struct {
	OrderID         string    `json:"orderId" bson:"orderId"`
	Items           []Item    `json:"items" bson:"items"`
	Total           float64   `json:"total" bson:"total"`
	CustomerName    string    `json:"customerName" bson:"customerName"`
	CustomerEmail   string    `json:"customerEmail,omitempty" bson:"customerEmail,omitempty"`
	ShippingAddress Address   `json:"shippingAddress" bson:"shippingAddress"`
	Status          Status    `json:"status" bson:"status"`
	CreatedAt       time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt" bson:"updatedAt"`
}

type CreateRequest struct {
	Items           []Item  `json:"items"`
	Total           float64 `json:"total"`
	CustomerName    string  `json:"customerName"`
	CustomerEmail   string  `json:"customerEmail"`
	ShippingAddress Address `json:"shippingAddress"`
}

func (r CreateRequest) Validate() error {
	if len(r.Items) == 0 {
		return errors.New("order must contain at least one item")
	}
	for i, it := range r.Items {
		if it.ProductID == "" {
			return fmt.Errorf("items[%d]: productId is required", i)
		}
		if it.Quantity <= 0 {
			return fmt.Errorf("items[%d]: quantity must be greater than zero", i)
		}
	}
	if r.Total <= 0 {
		return errors.New("total must be greater than zero")
	}
	addr := map[string]string{
		"street":  r.ShippingAddress.Street,
		"city":    r.ShippingAddress.City,
		"state":   r.ShippingAddress.State,
		"zipCode": r.ShippingAddress.ZipCode,
		"country": r.ShippingAddress.Country,
	}
	for field, v := range addr {
		if v == "" {
			return fmt.Errorf("shippingAddress.%s is required", field)
		}
	}
	return nil
}

// NewOrderID derives an order id from the creation time. Ids created within
// the same second collide; the format is kept for client compatibility.
func NewOrderID(now time.Time) string {
	return "ORD" + strconv.FormatInt(now.Unix(), 10)
}
