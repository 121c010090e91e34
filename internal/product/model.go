package product

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"time"
)

type Product struct {
	ID          string    `json:"id" bson:"id"`
	Name        string    `json:"name" bson:"name"`
	Description string    `json:"description,omitempty" bson:"description,omitempty"`
	Price       float64   `json:"price" bson:"price"`
	Category    string    `json:"category" bson:"category"`
	Stock       int       `json:"stock" bson:"stock"`
	Image       string    `json:"image,omitempty" bson:"image,omitempty"`
	Brand       string    `json:"brand" bson:"brand"`
	Rating      float64   `json:"rating" bson:"rating"`
	Reviews     int       `json:"reviews" bson:"reviews"`
	CreatedAt   time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt" bson:"updatedAt"`
}

type CreateRequest struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Category    string  `json:"category"`
	Stock       int     `json:"stock"`
	Image       string  `json:"image"`
	Brand       string  `json:"brand"`
}

func (r CreateRequest) Validate() error {
	if r.Name == "" {
		return errors.New("name is required")
	}
	if r.Category == "" {
		return errors.New("category is required")
	}
	if r.Price <= 0 {
		return errors.New("price must be greater than zero")
	}
	if r.Stock < 0 {
		return errors.New("stock must not be negative")
	}
	return nil
}

// NewProduct builds a persistable product from a validated create request,
// filling server-side defaults.
func (r CreateRequest) NewProduct(now time.Time) *Product {
	brand := r.Brand
	if brand == "" {
		brand = "Generic"
	}
	return &Product{
		ID:          NewID(),
		Name:        r.Name,
		Description: r.Description,
		Price:       r.Price,
		Category:    r.Category,
		Stock:       r.Stock,
		Image:       r.Image,
		Brand:       brand,
		Rating:      0,
		Reviews:     0,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// UpdateRequest carries a partial update; nil fields are left untouched.
type UpdateRequest struct {
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price"`
	Category    *string  `json:"category"`
	Stock       *int     `json:"stock"`
	Image       *string  `json:"image"`
}

func (r UpdateRequest) Validate() error {
	if r.Name != nil && *r.Name == "" {
		return errors.New("name must not be empty")
	}
	if r.Category != nil && *r.Category == "" {
		return errors.New("category must not be empty")
	}
	if r.Price != nil && *r.Price <= 0 {
		return errors.New("price must be greater than zero")
	}
	if r.Stock != nil && *r.Stock < 0 {
		return errors.New("stock must not be negative")
	}
	return nil
}

// NewID returns a fresh 8-character hex product id.
func NewID() string {
	b := make([]byte, 4)
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}
