package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Ezinne-Elele/qucoon-shopokoa-backend-mobile/internal/auth"
	"github.com/Ezinne-Elele/qucoon-shopokoa-backend-mobile/internal/cart"
	"github.com/Ezinne-Elele/qucoon-shopokoa-backend-mobile/internal/config"
	"github.com/Ezinne-Elele/qucoon-shopokoa-backend-mobile/internal/db"
	httpserver "github.com/Ezinne-Elele/qucoon-shopokoa-backend-mobile/internal/http"
	"github.com/Ezinne-Elele/qucoon-shopokoa-backend-mobile/internal/order"
	"github.com/Ezinne-Elele/qucoon-shopokoa-backend-mobile/internal/product"
)

func main() {
	cfg := config.Load()

	logger := log.New(os.Stdout, "[mobile-api] ", log.LstdFlags|log.Lshortfile)

	// Store. A ping failure is logged, not fatal: product reads degrade to
	// fallback data until the database comes back.
	store, err := db.Open(cfg)
	if store == nil {
		logger.Fatalf("open store: %v", err)
	}
	if err != nil {
		logger.Printf("store not reachable yet: %v (read endpoints will serve fallback data)", err)
	}

	productRepo := product.NewRepository(store.Products)
	orderRepo := order.NewRepository(store.Orders)
	cartRepo := cart.NewRepository(store.Cart)
	orderSvc := order.NewService(orderRepo, productRepo)
	authSvc := auth.NewService(cfg.JWTSecret)

	router := httpserver.NewRouter(httpserver.Deps{
		Logger:           logger,
		DB:               store,
		Products:         productRepo,
		Orders:           orderRepo,
		OrderSvc:         orderSvc,
		Carts:            cartRepo,
		Auth:             authSvc,
		CORSAllowOrigins: cfg.CORSAllowOrigins,
	})

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 15 * time.Second,
	}

	go func() {
		logger.Printf("mobile-api listening on :%s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatalf("server error: %v", err)
		}
	}()

	// Graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop
	logger.Println("shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = srv.Shutdown(shutdownCtx)
	_ = store.Close(shutdownCtx)
}
