package main

import (
	"context"
	"flag"
	"log"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	httpadp "dkcash/internal/adapter/http"
	dkmw "dkcash/internal/adapter/middleware"
	"dkcash/internal/adapter/repository/gnucash"
	"dkcash/internal/config"
	"dkcash/internal/infrastructure/cache"
	"dkcash/internal/infrastructure/db"
	creditoruc "dkcash/internal/usecase/creditor"
	contractuc "dkcash/internal/usecase/contract"
)

func main() {
	cfgPath := flag.String("config", "", "path to config.yaml")
	ledgerFile := flag.String("file", "", "GnuCash file holding the Direktkredit data (overrides config)")
	flag.Parse()

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		log.Fatal(err)
	}
	if *ledgerFile != "" {
		cfg.LedgerFile = *ledgerFile
	}
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}

	registry := db.NewRegistry()
	gdb, err := registry.Acquire(cfg.LedgerFile)
	if err != nil {
		log.Fatal(err)
	}
	defer func() {
		if err := registry.Release(cfg.LedgerFile); err != nil {
			log.Printf("release ledger: %v", err)
		}
	}()

	ctx := context.Background()
	accounts, err := gnucash.Provision(ctx, gdb, gnucash.Bases{
		DK:        cfg.BaseDK,
		Ausgleich: cfg.BaseAusgleich,
		Zinsen:    cfg.BaseZinsen,
	})
	if err != nil {
		log.Fatal(err)
	}
	if cfg.SeedSample {
		if err := gnucash.Seed(ctx, gdb, accounts); err != nil {
			log.Fatal(err)
		}
	}

	creditors := gnucash.NewCreditorRepository(gdb)
	contracts := gnucash.NewContractRepository(gdb)
	tx := gnucash.NewGormUoW(gdb)

	creditorUC := creditoruc.NewUsecase(creditors, tx)
	contractUC := contractuc.NewUsecase(contracts, creditors, tx, accounts.Direktkredite.GUID)

	h := httpadp.NewHandler()
	ch := httpadp.NewCreditorHandler(creditorUC)
	kh := httpadp.NewContractHandler(contractUC)

	e := echo.New()
	e.HideBanner = true
	e.Validator = httpadp.NewValidator()
	e.Use(middleware.Logger(), middleware.Recover())

	if cfg.RedisAddr != "" {
		rdb, err := cache.OpenRedis(cfg.RedisAddr, cfg.RedisDB)
		if err != nil {
			log.Fatal(err)
		}
		e.Use(dkmw.Idempotency(rdb, time.Duration(cfg.IdempTTLSecs)*time.Second))
	}

	// routes
	e.GET("/health", h.Health)

	e.POST("/creditors", ch.Create)
	e.GET("/creditors", ch.List)
	e.GET("/creditors/:id", ch.Get)
	e.PATCH("/creditors/:id", ch.Update)
	e.DELETE("/creditors/:id", ch.Delete)

	e.POST("/contracts", kh.Create)
	e.GET("/contracts", kh.List)
	e.GET("/contracts/:id", kh.Get)
	e.PATCH("/contracts/:id", kh.Update)
	e.DELETE("/contracts/:id", kh.Delete)

	addr := ":" + cfg.AppPort
	log.Printf("listening on %s (ledger %s)", addr, cfg.LedgerFile)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
