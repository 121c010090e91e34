package httpapi

import (
	"io"
	"log"
	"net/http"
	"strings"

	"github.com/Ezinne-Elele/qucoon-shopokoa-backend-mobile/internal/auth"
	"github.com/Ezinne-Elele/qucoon-shopokoa-backend-mobile/internal/order"
)

func jsonBody(s string) io.Reader {
	return strings.NewReader(s)
}

// newTestRouter wires the real router around fakes so tests exercise routing,
// middleware, and handlers together.
func newTestRouter(products *fakeProductRepo, orders *fakeOrderRepo, carts *fakeCartRepo, db Pinger) http.Handler {
	if products == nil {
		products = &fakeProductRepo{}
	}
	if orders == nil {
		orders = &fakeOrderRepo{}
	}
	if carts == nil {
		carts = &fakeCartRepo{}
	}

	logger := log.New(io.Discard, "", 0)

	return NewRouter(Deps{
		Logger:           logger,
		DB:               db,
		Products:         products,
		Orders:           orders,
		OrderSvc:         order.NewService(orders, products),
		Carts:            carts,
		Auth:             auth.NewService("test-secret"),
		CORSAllowOrigins: []string{"*"},
	})
}
