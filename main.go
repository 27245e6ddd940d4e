package main

import (
	"context"
	"database/sql"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"drivent/internal/config"
	intdb "drivent/internal/db"
	api "drivent/internal/http"
	"drivent/internal/http/handlers"
	"drivent/internal/repositories"
	"drivent/internal/services"

	"github.com/gin-gonic/gin"
)

func main() {
	env := config.LoadEnv()
	if err := env.Validate(); err != nil {
		log.Fatalf("config: %v", err)
	}
	if env.GinMode != "" {
		gin.SetMode(env.GinMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := config.ConnectDB(ctx, env)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	defer db.Close()

	if env.AutoMigrate {
		if err := intdb.EnsureSchema(ctx, db); err != nil {
			log.Fatalf("schema: %v", err)
		}
	}
	if env.SeedDemoData {
		res, err := config.SeedDatabase(ctx, db, env.JWTSecret)
		if err != nil {
			log.Fatalf("seed: %v", err)
		}
		if !res.Skipped {
			log.Printf("info: demo bearer token for user %d: %s", res.UserID, res.Token)
		}
	}

	srv := &http.Server{
		Addr:              env.AppAddr,
		Handler:           api.NewRouter(env, newDeps(db)),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       20 * time.Second,
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.Printf("listening on %s", env.AppAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("server: %v", err)
		}
	}()

	<-ctx.Done()
	log.Println("shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("shutdown: %v", err)
		return
	}
	log.Println("server stopped")
}

func newDeps(db *sql.DB) api.Deps {
	bookingRepo := repositories.BookingRepository{DB: db}
	roomRepo := repositories.RoomRepository{DB: db}
	enrollmentRepo := repositories.EnrollmentRepository{DB: db}

	bookings := services.BookingService{
		Bookings:    bookingRepo,
		Rooms:       roomRepo,
		Enrollments: enrollmentRepo,
		Tickets:     repositories.TicketRepository{DB: db},
		Payments:    repositories.PaymentRepository{DB: db},
	}
	docs := services.DocsService{
		Bookings:    bookingRepo,
		Rooms:       roomRepo,
		Enrollments: enrollmentRepo,
	}

	return api.Deps{
		Bookings: handlers.BookingHandler{
			Evaluator: func(requestID string) handlers.BookingEvaluator {
				s := bookings
				s.RequestID = requestID
				return s
			},
			Vouchers: func(requestID string) handlers.VoucherGenerator {
				s := docs
				s.RequestID = requestID
				return s
			},
		},
		Sessions: repositories.SessionRepository{DB: db},
		Ping: func(ctx context.Context) error {
			return config.PingDB(ctx, db)
		},
	}
}
