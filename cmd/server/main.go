package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"github.com/Skotchmaster/ufo_delivery/internal/config"
	pkgdb "github.com/Skotchmaster/ufo_delivery/internal/db"
	"github.com/Skotchmaster/ufo_delivery/internal/events"
	"github.com/Skotchmaster/ufo_delivery/internal/httpserver"
	"github.com/Skotchmaster/ufo_delivery/internal/logging"
	authmw "github.com/Skotchmaster/ufo_delivery/internal/middleware/auth"
	loggingmw "github.com/Skotchmaster/ufo_delivery/internal/middleware/logging"
	"github.com/Skotchmaster/ufo_delivery/internal/repo"
	"github.com/Skotchmaster/ufo_delivery/internal/search"
	"github.com/Skotchmaster/ufo_delivery/internal/service"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("warning: could not load .env: %v", err)
	}

	cfg := config.Load()
	config.MustNonEmpty(cfg.DatabaseURL, "DATABASE_URL")
	config.MustNonEmptyBytes(cfg.JWTSecret, "JWT_SECRET")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	db, err := pkgdb.Open(ctx, cfg.DatabaseURL)
	cancel()
	if err != nil {
		log.Fatalf("db open: %v", err)
	}
	if err := pkgdb.Migrate(db); err != nil {
		log.Fatalf("db migrate: %v", err)
	}

	logger := logging.New(os.Getenv("LOG_LEVEL")).With("service", cfg.ServiceName)
	slog.SetDefault(logger)

	producer := events.NewProducer(cfg.KafkaBrokers)

	var searchSvc *search.Service
	if cfg.ESURL != "" {
		es, err := search.NewClient(cfg)
		if err != nil {
			log.Fatalf("elasticsearch: %v", err)
		}
		searchSvc = search.NewService(es)
	}

	gormRepo := &repo.GormRepo{DB: db}

	userSvc := &service.UserService{Repo: gormRepo, Producer: producer}
	authSvc := &service.AuthService{
		Repo:           gormRepo,
		JWTSecret:      cfg.JWTSecret,
		AccessTokenTTL: cfg.AccessTokenTTL,
	}
	catalogSvc := &service.CatalogService{Repo: gormRepo, Producer: producer, Search: searchSvc}
	orderSvc := &service.OrderService{Repo: gormRepo, Producer: producer}

	e := echo.New()
	e.Use(echomw.Recover())
	e.Use(echomw.RequestID())
	e.Use(loggingmw.RequestLogger(logger))
	e.Use(echomw.CORS())

	httpserver.Register(e, &httpserver.Deps{
		AuthHandler:  &httpserver.AuthHTTP{Svc: authSvc},
		UserHandler:  &httpserver.UserHTTP{Svc: userSvc},
		ItemHandler:  &httpserver.ItemHTTP{Svc: catalogSvc, Search: searchSvc},
		OrderHandler: &httpserver.OrderHTTP{Svc: orderSvc},
		Auth:         authmw.NewAuthMiddleware(cfg.JWTSecret, userSvc),
	})

	srv := &http.Server{
		Addr:              ":" + strconv.Itoa(cfg.ServerPort),
		Handler:           e,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      15 * time.Second,
		ReadHeaderTimeout: 3 * time.Second,
	}

	go func() {
		log.Printf("%s listening on %s", cfg.ServiceName, srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	_ = srv.Shutdown(shutdownCtx)

	if err := producer.Close(); err != nil {
		log.Printf("kafka close: %v", err)
	}

	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}

	log.Printf("%s stopped", cfg.ServiceName)
}
