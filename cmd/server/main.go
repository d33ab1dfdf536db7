package main

import (
	"log"
	"net/http"

	"munchbox-be/internal/config"
	"munchbox-be/internal/db"
	"munchbox-be/internal/hours"
	"munchbox-be/internal/httpapi"
	"munchbox-be/internal/logger"
	"munchbox-be/internal/menu"
	"munchbox-be/internal/middleware"
	"munchbox-be/internal/order"
	"munchbox-be/internal/payment"
	"munchbox-be/internal/revenue"
	"munchbox-be/internal/staff"
)

func main() {
	cfg := config.LoadConfig()

	logger.Init(cfg.AppEnv)
	defer logger.Sync()

	database := db.InitDB(cfg)
	defer database.Close()

	orderRepo := order.NewRepository(database)
	orderSvc := order.NewService(orderRepo, hours.Default())

	menuRepo := menu.NewRepository(database)
	menuSvc := menu.NewService(menuRepo)

	revenueRepo := revenue.NewRepository(database)
	revenueSvc := revenue.NewService(revenueRepo)

	gateway := payment.NewStripeGateway(cfg.StripeSecretKey)
	auth := staff.NewAuthenticator(cfg.StaffPasswordHash, cfg.JWTSecret)

	api := httpapi.New(orderSvc, menuSvc, revenueSvc, gateway, auth)

	var handler http.Handler = api.Routes()
	handler = middleware.RateLimitMiddleware(handler)
	handler = logger.LoggingMiddleware(handler)
	handler = logger.RequestIDMiddleware(handler)

	log.Printf("🚀 Munch Box server running at http://localhost:%s/", cfg.AppPort)
	log.Fatal(http.ListenAndServe(":"+cfg.AppPort, handler))
}
