package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"github.com/rentalops/vehicle_rental/internal/config"
	"github.com/rentalops/vehicle_rental/internal/db"
	"github.com/rentalops/vehicle_rental/internal/es"
	"github.com/rentalops/vehicle_rental/internal/events"
	"github.com/rentalops/vehicle_rental/internal/httpserver"
	"github.com/rentalops/vehicle_rental/internal/logging"
	mw "github.com/rentalops/vehicle_rental/internal/middleware"
	"github.com/rentalops/vehicle_rental/internal/repo"
	"github.com/rentalops/vehicle_rental/internal/service"
	"github.com/rentalops/vehicle_rental/internal/service/search"
)

func main() {
	cfg := config.Load()
	config.MustNonEmpty(cfg.DatabaseURL, "DATABASE_URL")
	config.MustNonEmptyBytes(cfg.JWTSecret, "JWT_SECRET")

	logger := logging.New(cfg.LogLevel).With("service", cfg.ServiceName)
	slog.SetDefault(logger)

	initCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	gdb, err := db.Open(initCtx, cfg.DatabaseURL)
	cancel()
	if err != nil {
		log.Fatalf("db open: %v", err)
	}
	if err := db.Migrate(gdb); err != nil {
		log.Fatalf("db migrate: %v", err)
	}

	var producer *events.Producer
	var publisher events.Publisher
	if len(cfg.KafkaBrokers) > 0 {
		producer = events.NewProducer(cfg.KafkaBrokers)
		publisher = producer
	} else {
		log.Println("KAFKA_BROKERS not set, event publishing disabled")
	}

	var indexer service.VehicleIndexer
	var searchHTTP *httpserver.SearchHTTP
	if cfg.ESURL != "" {
		esClient, err := es.NewClient(cfg.ESURL, cfg.ESUser, cfg.ESPassword)
		if err != nil {
			log.Fatalf("elasticsearch: %v", err)
		}
		indexer = search.NewIndexer(esClient)
		searchHTTP = httpserver.NewSearchHTTP(esClient)
	} else {
		log.Println("ES_URL not set, vehicle search disabled")
		searchHTTP = &httpserver.SearchHTTP{}
	}

	gormRepo := &repo.GormRepo{DB: gdb}

	deps := &httpserver.Deps{
		Auth:      mw.NewAuth(cfg.JWTSecret),
		AuthHTTP:  &httpserver.AuthHTTP{Svc: &service.AuthService{Repo: gormRepo, JWTSecret: cfg.JWTSecret, Events: publisher}},
		Users:     &httpserver.UserHTTP{Svc: &service.UserService{Repo: gormRepo}},
		Vehicles:  &httpserver.VehicleHTTP{Svc: &service.VehicleService{Repo: gormRepo, Indexer: indexer}},
		Search:    searchHTTP,
		Bookings:  &httpserver.BookingHTTP{Svc: &service.BookingService{Repo: gormRepo, Events: publisher}},
		Payments:  &httpserver.PaymentHTTP{Svc: &service.PaymentService{Repo: gormRepo}},
		Tickets:   &httpserver.TicketHTTP{Svc: &service.TicketService{Repo: gormRepo}},
		Dashboard: &httpserver.DashboardHTTP{Svc: &service.DashboardService{Repo: gormRepo}},
	}

	e := echo.New()
	e.Pre(echomw.RemoveTrailingSlash())
	e.Use(echomw.Recover())
	e.Use(echomw.RequestID())
	e.Use(mw.RequestLogger(logger))
	e.Use(echomw.CORS())

	httpserver.Register(e, deps)

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.ServerPort),
		Handler:           e,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      15 * time.Second,
		ReadHeaderTimeout: 3 * time.Second,
		IdleTimeout:       60 * time.Second,
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

	log.Println("shutting down...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("server shutdown error: %v", err)
	}

	if sqlDB, err := gdb.DB(); err == nil {
		_ = sqlDB.Close()
	}
	if producer != nil {
		if err := producer.Close(); err != nil {
			log.Printf("kafka close error: %v", err)
		}
	}

	log.Println("shutdown complete")
}
