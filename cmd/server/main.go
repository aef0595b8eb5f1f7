package main

import (
	"context"
	"log"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"

	"trainbook/internal/common/clock"
	"trainbook/internal/common/uuid"
	"trainbook/internal/config"
	"trainbook/internal/handlers/httpapi"
	bookingRepo "trainbook/internal/repositories/booking"
	packRepo "trainbook/internal/repositories/pack"
	"trainbook/internal/services/roster"
	"trainbook/internal/services/scheduling"
)

func main() {
	cfg := config.Load()

	// Initialize Redis client
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	// Test Redis connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := redisClient.Ping(ctx).Err(); err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}

	// Initialize repositories
	packages, err := packRepo.NewRedis(&packRepo.Config{
		RedisClient: redisClient,
	})
	if err != nil {
		log.Fatalf("Failed to create package repository: %v", err)
	}

	bookings, err := bookingRepo.NewRedis(&bookingRepo.Config{
		RedisClient: redisClient,
	})
	if err != nil {
		log.Fatalf("Failed to create booking repository: %v", err)
	}

	// Initialize services
	schedulingSvc, err := scheduling.New(&scheduling.Config{
		BookingRepo:   bookings,
		PackageRepo:   packages,
		Clock:         &clock.DefaultClock{},
		UUIDGenerator: uuid.New(),
		GridStartHour: cfg.GridStartHour,
		GridHourCount: cfg.GridHourCount,
	})
	if err != nil {
		log.Fatalf("Failed to create scheduling service: %v", err)
	}

	rosterSvc, err := roster.New(&roster.Config{
		PackageRepo:   packages,
		BookingRepo:   bookings,
		Scheduler:     schedulingSvc,
		Clock:         &clock.DefaultClock{},
		UUIDGenerator: uuid.New(),
	})
	if err != nil {
		log.Fatalf("Failed to create roster service: %v", err)
	}

	// Initialize the HTTP API
	handler, err := httpapi.New(&httpapi.Config{
		Scheduling:  schedulingSvc,
		Roster:      rosterSvc,
		BookingRepo: bookings,
		PackageRepo: packages,
	})
	if err != nil {
		log.Fatalf("Failed to create API handler: %v", err)
	}

	e := echo.New()
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	handler.Register(e)

	if err := e.Start(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
