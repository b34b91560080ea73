package main

import (
	"log"
	"time"

	"app/internal/config"
	"app/internal/currency"
	"app/internal/handler"
	"app/internal/infra/db"
	infraRepo "app/internal/infra/repository"
	"app/internal/notify"
	"app/internal/payment"
	"app/internal/repository"
	"app/internal/server"
	"app/internal/usecase"

	"github.com/joho/godotenv"
)

type realClock struct{}

func (c *realClock) Now() time.Time {
	return time.Now()
}

func main() {
	// .env は無ければ無いでよい
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	//ストア生成。DATABASE_URLがあればPostgres、無ければファイル。
	var store repository.StateStore
	if cfg.DatabaseURL != "" {
		gormDB, err := db.Connect(cfg.DatabaseURL)
		if err != nil {
			log.Fatal(err)
		}
		store, err = infraRepo.NewGormStateStore(gormDB)
		if err != nil {
			log.Fatal(err)
		}
	} else {
		store, err = infraRepo.NewFileStateStore(cfg.DataDir)
		if err != nil {
			log.Fatal(err)
		}
	}

	formatter, err := currency.NewFormatter(cfg.Currency)
	if err != nil {
		log.Fatal(err)
	}

	//usecaseに渡す部品
	catalog := infraRepo.NewStaticProductCatalog()
	gateway := payment.NewSimulator(time.Duration(cfg.PaymentDelayMS) * time.Millisecond)
	notifier := notify.NewLogNotifier()
	clock := &realClock{}

	//Usecase生成
	cartUC := usecase.NewCartUsecase(store, gateway, notifier, clock)
	catalogUC := usecase.NewCatalogUsecase(catalog, formatter)

	//Handler生成
	h := server.Handlers{
		Catalog:  handler.NewCatalogHandler(catalogUC),
		Cart:     handler.NewCartHandler(cartUC, catalogUC, formatter),
		Checkout: handler.NewCheckoutHandler(cartUC),
		Orders:   handler.NewOrderHandler(cartUC),
	}

	//Server起動
	addr := cfg.Port
	if addr[0] != ':' {
		addr = ":" + addr
	}

	if err := server.Start(addr, h); err != nil {
		log.Fatal(err)
	}
}
