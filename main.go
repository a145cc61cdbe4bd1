package main

import (
	"log"
	"os"

	httpapi "restaurant-orders/internal/api/http"
	"restaurant-orders/internal/config"
	"restaurant-orders/internal/service"
	"restaurant-orders/internal/storage"
)

func main() {
	db := config.MustInitPostgres()
	defer db.Close()

	rdb := config.MustInitRedis()
	defer rdb.Close()

	repo := storage.NewPostgresRepository(db)
	if err := repo.EnsureSchema(); err != nil {
		log.Fatal("Failed to ensure schema:", err)
	}

	tokens := storage.NewTokenStore(rdb)
	receipts := service.DefaultReceiptGenerator{BaseURL: os.Getenv("PUBLIC_URL")}

	orderSvc := service.NewOrderService(repo, repo, repo, repo, receipts)
	restSvc := service.NewRestaurantService(repo)
	itemSvc := service.NewMenuItemService(repo)
	authSvc := service.NewAuthService(repo, tokens, config.TokenTTL())

	handler := httpapi.NewHandler(orderSvc, restSvc, itemSvc, authSvc)
	httpapi.StartServer(config.ListenAddr(), httpapi.NewRouter(handler))
}
