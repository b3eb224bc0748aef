package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	intconfig "luxadmin/internal/config"
	router "luxadmin/internal/http"
	"luxadmin/internal/domain/models"
	"luxadmin/internal/notifications"
	"luxadmin/internal/outbox"
	"luxadmin/internal/payments"
	"luxadmin/internal/repositories"

	"github.com/gin-gonic/gin"
)

func main() {
	env := intconfig.LoadEnv()
	if env.GinMode != "" {
		gin.SetMode(env.GinMode)
	}

	intconfig.ConnectDB(env)
	defer intconfig.CloseDB()

	bookingRepo := repositories.BookingRepository{DB: intconfig.DB}
	store := notifications.NewStore(env.ReadStateFile)
	hub := notifications.NewHub()

	deps := router.Deps{
		Bookings: bookingRepo,
		Gateway:  payments.NewClient(env.PaymentBaseURL, env.PaymentSecretKey),
		Outbox:   outbox.Archive{Dir: env.OutboxDir},
		Store:    store,
		Hub:      hub,
	}

	r := router.NewRouter(env, deps)

	pollCtx, stopPoller := context.WithCancel(context.Background())
	defer stopPoller()
	poller := &notifications.Poller{
		Store:    store,
		Hub:      hub,
		Interval: env.PollInterval,
		ListBookings: func(ctx context.Context) ([]models.Booking, error) {
			bookings, _, err := bookingRepo.List(repositories.BookingFilter{Page: 1, PageSize: 200})
			return bookings, err
		},
	}
	go poller.Run(pollCtx)

	srv := &http.Server{
		Addr:              env.AppAddr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       20 * time.Second,
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.Printf("server running at http://localhost%s", env.AppAddr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Println("shutting down server...")
	stopPoller()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("server shutdown failed: %v", err)
	}

	log.Println("server stopped cleanly.")
}
