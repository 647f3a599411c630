package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"gorm.io/gorm"

	"github.com/trendyfy/storefront/internal/config"
	"github.com/trendyfy/storefront/internal/es"
	"github.com/trendyfy/storefront/internal/events"
	"github.com/trendyfy/storefront/internal/httpserver"
	"github.com/trendyfy/storefront/internal/logging"
	loggingmw "github.com/trendyfy/storefront/internal/middleware/logging"
	"github.com/trendyfy/storefront/internal/service"
	"github.com/trendyfy/storefront/internal/storage"
	"github.com/trendyfy/storefront/internal/storage/gormstore"
	"github.com/trendyfy/storefront/internal/storage/memstore"
)

func main() {
	cfg := config.Load()
	logger := logging.New(cfg.LogLevel)

	var (
		catalog storage.Catalog
		cart    storage.CartStore
		users   storage.UserStore
		contact storage.ContactStore
		gormDB  *gorm.DB
	)

	initCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	switch cfg.StoreBackend {
	case config.BackendMemory:
		ms := memstore.New()
		ms.Load(storage.SeedProducts())
		catalog, cart, users, contact = ms.Catalog(), ms.Cart(), ms.Users(), ms.Contact()
	case config.BackendPostgres, config.BackendSQLite:
		driver := gormstore.DriverPostgres
		dsn := cfg.DatabaseURL
		if cfg.StoreBackend == config.BackendSQLite {
			driver = gormstore.DriverSQLite
			dsn = cfg.SQLitePath
		}
		db, err := gormstore.Open(initCtx, driver, dsn)
		if err != nil {
			log.Fatalf("db init error: %v", err)
		}
		if err := gormstore.Seed(initCtx, db); err != nil {
			log.Fatalf("db seed error: %v", err)
		}
		gormDB = db
		catalog = &gormstore.Catalog{DB: db}
		cart = &gormstore.Cart{DB: db}
		users = &gormstore.Users{DB: db}
		contact = &gormstore.Contact{DB: db}
	default:
		log.Fatalf("unknown STORE_BACKEND %q", cfg.StoreBackend)
	}
	cancel()

	producer := events.NewProducer(cfg.KafkaBrokers)

	var searchHandler *httpserver.SearchHTTP
	if cfg.ESURL != "" {
		esClient, err := es.NewClient(cfg.ESURL, cfg.ESUser, cfg.ESPassword)
		if err != nil {
			log.Fatalf("elasticsearch init error: %v", err)
		}
		searchHandler = &httpserver.SearchHTTP{ES: esClient, Index: "products"}
	}

	cartService := &service.CartService{Catalog: catalog, Cart: cart}
	catalogService := &service.CatalogService{Catalog: catalog}
	authService := &service.AuthService{Users: users, JWTSecret: cfg.JWTSecret}
	contactService := &service.ContactService{Contact: contact}

	e := echo.New()
	e.HideBanner = true
	e.Pre(middleware.RemoveTrailingSlash())
	e.Use(middleware.Recover(), middleware.RequestID(), middleware.CORS())
	e.Use(loggingmw.RequestLogger(logger))

	httpserver.Register(e, &httpserver.Deps{
		AuthHandler:    &httpserver.AuthHTTP{Svc: authService, Producer: producer},
		CatalogHandler: &httpserver.CatalogHTTP{Svc: catalogService},
		CartHandler:    &httpserver.CartHTTP{Svc: cartService, Producer: producer},
		ContactHandler: &httpserver.ContactHTTP{Svc: contactService, Producer: producer},
		SearchHandler:  searchHandler,
		JWTSecret:      cfg.JWTSecret,
	})

	srv := &http.Server{
		Addr:         ":" + strconv.Itoa(cfg.ServerPort),
		Handler:      e,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("server starting", "port", cfg.ServerPort, "backend", cfg.StoreBackend)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("http server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server shutdown error", "error", err)
	}

	if gormDB != nil {
		if sqlDB, err := gormDB.DB(); err == nil {
			if err := sqlDB.Close(); err != nil {
				logger.Error("db close error", "error", err)
			}
		}
	}

	if err := producer.Close(); err != nil {
		logger.Error("kafka close error", "error", err)
	}

	logger.Info("shutdown complete")
}
