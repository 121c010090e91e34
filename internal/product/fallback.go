package product

import "time"

// Fallback returns the hardcoded catalog served when the database is empty or
// unreachable. The ids are stable so clients can still fetch by id while the
// store is down.
func Fallback() []Product {
	now := time.Now().UTC()
	return []Product{
		{
			ID:          "1",
			Name:        "Laptop Pro",
			Description: "High-performance laptop for professionals",
			Price:       1299.99,
			Category:    "Electronics",
			Stock:       15,
			Image:       "https://via.placeholder.com/300x300?text=Laptop",
			Brand:       "ProBook",
			Rating:      4.8,
			Reviews:     127,
			CreatedAt:   now,
			UpdatedAt:   now,
		},
		{
			ID:          "2",
			Name:        "Wireless Mouse",
			Description: "Ergonomic wireless mouse",
			Price:       29.99,
			Category:    "Accessories",
			Stock:       50,
			Image:       "https://via.placeholder.com/300x300?text=Mouse",
			Brand:       "LogiTech",
			Rating:      4.5,
			Reviews:     89,
			CreatedAt:   now,
			UpdatedAt:   now,
		},
		{
			ID:          "3",
			Name:        "USB-C Hub",
			Description: "7-in-1 USB-C hub adapter",
			Price:       49.99,
			Category:    "Accessories",
			Stock:       30,
			Image:       "https://via.placeholder.com/300x300?text=Hub",
			Brand:       "Anker",
			Rating:      4.6,
			Reviews:     201,
			CreatedAt:   now,
			UpdatedAt:   now,
		},
	}
}

// FallbackByID looks a product up in the fallback catalog.
func FallbackByID(id string) *Product {
	for _, p := range Fallback() {
		if p.ID == id {
			return &p
		}
	}
	return nil
}
