package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"trekBooker/internal/clock"
	"trekBooker/internal/config"
	"trekBooker/internal/http-server/handlers/admin/bookingsOverview"
	"trekBooker/internal/http-server/handlers/admin/deleteEventBookings"
	"trekBooker/internal/http-server/handlers/admin/eventBookings"
	"trekBooker/internal/http-server/handlers/admin/offlineBooking"
	"trekBooker/internal/http-server/handlers/booking/createBooking"
	"trekBooker/internal/http-server/handlers/booking/verifyPayment"
	"trekBooker/internal/http-server/handlers/event/createEvent"
	"trekBooker/internal/http-server/handlers/event/getAllEvents"
	"trekBooker/internal/http-server/handlers/event/getEventInfo"
	"trekBooker/internal/http-server/middleware/adminauth"
	"trekBooker/internal/http-server/middleware/mwlogger"
	"trekBooker/internal/lib/logger/handlers/slogpretty"
	"trekBooker/internal/lib/logger/sl"
	"trekBooker/internal/lib/logger/wmslog"
	"trekBooker/internal/notification"
	"trekBooker/internal/payment/razorpay"
	"trekBooker/internal/pubsub"
	"trekBooker/internal/services/booking"
	"trekBooker/internal/services/cleanup"
	"trekBooker/internal/services/stats"
	"trekBooker/internal/storage/postgres"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/errgroup"
)

const (
	envLocal = "local"
	envDev   = "dev"
	envProd  = "prod"
)

func main() {
	cfg := config.MustLoad()

	log := setupLogger(cfg.Env)

	log.Info("Starting trek booker", slog.String("env", cfg.Env))
	log.Debug("Debug messages are enabled")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT, os.Interrupt)

	err := run(ctx, log, cfg)
	stop()
	if err != nil {
		log.Error("application stopped with error", sl.Err(err))
		os.Exit(1)
	}

	log.Info("application stopped")
}

// run releases every resource it opens before returning.
func run(ctx context.Context, log *slog.Logger, cfg *config.Config) error {
	wmLogger := wmslog.New(log.With(slog.String("component", "watermill")))

	storage, err := postgres.InitDB(&cfg.Database, wmLogger)
	if err != nil {
		return fmt.Errorf("init storage: %w", err)
	}
	defer func() {
		if err := storage.Close(); err != nil {
			log.Error("failed to close postgres connection", sl.Err(err))
			return
		}
		log.Info("postgres connection closed")
	}()

	if err = storage.Migrate(ctx); err != nil {
		return fmt.Errorf("run migrations: %w", err)
	}

	if err = storage.InitOutbox(); err != nil {
		return fmt.Errorf("init outbox: %w", err)
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	defer func() {
		if err := rdb.Close(); err != nil {
			log.Error("failed to close redis client", sl.Err(err))
		}
	}()

	var sender notification.Sender
	if cfg.Mail.Enabled() {
		sender = notification.NewSMTPSender(cfg.Mail.Host, cfg.Mail.Port, cfg.Mail.User, cfg.Mail.Password, cfg.Mail.From)
	} else {
		log.Warn("smtp is not configured, notifications will only be logged")
		sender = notification.NewLogSender(log)
	}
	dispatcher := notification.NewDispatcher(log, sender, cfg.Mail.OpsEmail)

	clk := clock.NewSystem()
	gateway := razorpay.New(cfg.Payment.KeyID, cfg.Payment.KeySecret, cfg.Payment.Timeout)

	bookings := booking.New(log, storage, storage, gateway, dispatcher, clk, cfg.Payment.Currency)
	statistics := stats.New(log, storage, storage)
	cleaner := cleanup.NewService(log, storage, clk)
	scheduler := cleanup.NewScheduler(log, storage, clk, cfg.Cleanup.Interval, cfg.Cleanup.Grace, cfg.Cleanup.PendingTTL)

	msgRouter, err := pubsub.NewRouter(wmLogger)
	if err != nil {
		return fmt.Errorf("create message router: %w", err)
	}

	handler := pubsub.NewHandler(log, storage, dispatcher)
	if err = pubsub.RegisterEventHandlers(rdb, msgRouter, handler.EventHandlers(), wmLogger); err != nil {
		return fmt.Errorf("register event handlers: %w", err)
	}

	redisPub, err := pubsub.NewRedisPublisher(rdb, wmLogger)
	if err != nil {
		return fmt.Errorf("create redis publisher: %w", err)
	}

	fwd, err := pubsub.NewForwarder(storage.DB(), redisPub, wmLogger)
	if err != nil {
		return fmt.Errorf("create outbox forwarder: %w", err)
	}

	router := chi.NewRouter()

	router.Use(middleware.RequestID)
	router.Use(mwlogger.New(log))
	router.Use(middleware.Recoverer)
	router.Use(middleware.URLFormat)

	router.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		render.JSON(w, r, map[string]string{"status": "ok"})
	})
	router.Handle("/metrics", promhttp.Handler())

	router.Get("/events", getAllEvents.New(log, storage))
	router.Get("/events/{type}/{id}", getEventInfo.New(log, storage))
	router.Post("/bookings", createBooking.New(log, bookings))
	router.Post("/bookings/verify", verifyPayment.New(log, bookings))

	router.Route("/admin", func(r chi.Router) {
		r.Use(adminauth.New(log, cfg.Admin.Key))

		r.Post("/events", createEvent.New(log, storage))
		r.Post("/bookings/offline", offlineBooking.New(log, bookings))
		r.Get("/bookings/overview", bookingsOverview.New(log, statistics))
		r.Get("/events/{type}/{id}/bookings", eventBookings.New(log, statistics))
		r.Delete("/events/{type}/{id}/bookings", deleteEventBookings.New(log, cleaner))
	})

	srv := &http.Server{
		Addr:         cfg.HTTPServer.Address,
		Handler:      router,
		ReadTimeout:  cfg.HTTPServer.Timeout,
		WriteTimeout: cfg.HTTPServer.Timeout,
		IdleTimeout:  cfg.HTTPServer.IdleTimeout,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return msgRouter.Run(gctx)
	})

	g.Go(func() error {
		select {
		case <-msgRouter.Running():
		case <-gctx.Done():
			return nil
		}
		return fwd.Run(gctx)
	})

	g.Go(func() error {
		return scheduler.Run(gctx)
	})

	g.Go(func() error {
		log.Info("starting server", slog.String("address", cfg.HTTPServer.Address))

		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()

		log.Info("application stopping")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTPServer.ShutdownTimeout)
		defer cancel()

		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}

func setupLogger(env string) *slog.Logger {
	var log *slog.Logger

	switch env {
	case envLocal:
		log = setupPrettySlog()
	case envDev:
		log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	case envProd:
		log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	default:
		log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	}

	return log
}

func setupPrettySlog() *slog.Logger {
	opts := slogpretty.PrettyHandlerOptions{
		SlogOpts: &slog.HandlerOptions{
			Level: slog.LevelDebug,
		},
	}

	h := opts.NewPrettyHandler(os.Stdout)

	return slog.New(h)
}
