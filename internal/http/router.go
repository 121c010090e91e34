package httpapi

import (
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/Ezinne-Elele/qucoon-shopokoa-backend-mobile/internal/auth"
	"github.com/Ezinne-Elele/qucoon-shopokoa-backend-mobile/internal/cart"
	"github.com/Ezinne-Elele/qucoon-shopokoa-backend-mobile/internal/middleware"
	"github.com/Ezinne-Elele/qucoon-shopokoa-backend-mobile/internal/order"
	"github.com/Ezinne-Elele/qucoon-shopokoa-backend-mobile/internal/product"
)

type Deps struct {
	Logger *log.Logger

	DB       Pinger
	Products product.Repository
	Orders   order.Repository
	OrderSvc *order.Service
	Carts    cart.Repository
	Auth     *auth.Service

	CORSAllowOrigins []string
}

func NewRouter(d Deps) http.Handler {
	r := chi.NewRouter()
	r.Use(chimw.RealIP)
	r.Use(middleware.CorrelationID)
	r.Use(middleware.CORS(d.CORSAllowOrigins))
	r.Use(middleware.Recover(d.Logger))
	r.Use(chimw.Logger)

	meta := NewMetaHandler(d.DB)
	products := NewProductHandler(d.Products, d.Logger)
	orders := NewOrderHandler(d.OrderSvc, d.Orders, d.Logger)
	carts := NewCartHandler(d.Carts, d.Logger)
	authH := NewAuthHandler(d.Auth, d.Logger)

	r.Get("/health", meta.Health)

	r.Route("/api/mobile", func(r chi.Router) {
		r.Get("/health", meta.Health)
		r.Get("/version", meta.Version)
		r.Get("/featured", meta.Featured)

		r.Post("/auth/login", authH.Login)

		r.Route("/products", func(r chi.Router) {
			r.Get("/", products.List)
			r.Post("/", products.Create)
			r.Get("/{productId}", products.Get)
			r.Put("/{productId}", products.Update)
			r.Delete("/{productId}", products.Delete)
		})

		r.Route("/orders", func(r chi.Router) {
			r.Get("/", orders.List)
			r.Post("/", orders.Create)
			r.Get("/stats", orders.Stats)
			r.Get("/{orderId}", orders.Get)
			r.Patch("/{orderId}/status", orders.UpdateStatus)
		})

		r.Post("/cart", carts.Add)
		r.Get("/cart/{userId}", carts.List)
	})

	return r
}
