package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/hanksha/sports-club-backend/announcement"
	"github.com/hanksha/sports-club-backend/api"
	bk "github.com/hanksha/sports-club-backend/booking"
	"github.com/hanksha/sports-club-backend/config"
	"github.com/hanksha/sports-club-backend/coupon"
	"github.com/hanksha/sports-club-backend/court"
	"github.com/hanksha/sports-club-backend/database"
	"github.com/hanksha/sports-club-backend/identity"
	"github.com/hanksha/sports-club-backend/jobs"
	"github.com/hanksha/sports-club-backend/notify"
	"github.com/hanksha/sports-club-backend/payment"
	"github.com/hanksha/sports-club-backend/user"
)

func main() {
	logger := slog.Default().With("component", "main")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()

	if err != nil {
		logger.Error("failed to load configuration", "err", err)
		os.Exit(1)
	}

	loc, err := cfg.Location()

	if err != nil {
		logger.Error("invalid timezone", "timezone", cfg.Timezone, "err", err)
		os.Exit(1)
	}

	if len(cfg.Timezone) == 0 {
		logger.Warn("TIMEZONE not set, booking dates are read in UTC")
	}

	logger.Info("connecting to PostgreSQL database")
	pool, err := database.Connect(ctx, cfg.DatabaseURL)

	if err != nil {
		logger.Error("Unable to connect to database", "err", err)
		os.Exit(1)
	}

	defer pool.Close()

	if err := database.Setup(ctx, pool); err != nil {
		logger.Error("failed to initialize tables", "err", err)
		os.Exit(1)
	}

	logger.Info("initialized database tables")

	mailer := notify.NewMailer(cfg.SendGridAPIKey, cfg.SendGridFromEmail, cfg.SendGridFromName)

	if !mailer.Enabled() {
		logger.Warn("SENDGRID_API_KEY not set, emails will only be logged")
	}

	if len(cfg.StripeWebhookSecret) == 0 {
		logger.Warn("STRIPE_WEBHOOK_SECRET not set, webhook events will be rejected")
	}

	courtService := court.NewService(court.NewRepository(pool))
	couponService := coupon.NewService(coupon.NewRepository(pool))
	userService := user.NewService(user.NewRepository(pool))
	bookingService := bk.NewService(bk.NewRepository(pool), courtService, couponService, mailer).WithClock(time.Now, loc)
	paymentService := payment.NewService(
		payment.NewRepository(pool),
		payment.NewStripeGateway(cfg.StripeSecretKey, cfg.StripeWebhookSecret),
		bookingService,
		couponService,
		mailer,
		cfg.Currency,
	)
	announcementService := announcement.NewService(announcement.NewRepository(pool))

	scheduler, err := jobs.NewScheduler(bookingService, cfg.PurgeSchedule, cfg.PendingBookingTTL)

	if err != nil {
		logger.Error("failed to create scheduler", "err", err)
		os.Exit(1)
	}

	scheduler.Start()

	router := api.NewRouter(api.Handlers{
		Courts:        api.NewCourtHandler(courtService),
		Bookings:      api.NewBookingHandler(bookingService),
		Coupons:       api.NewCouponHandler(couponService),
		Users:         api.NewUserHandler(userService),
		Payments:      api.NewPaymentHandler(paymentService),
		Announcements: api.NewAnnouncementHandler(announcementService),
		Admin:         api.NewAdminHandler(bookingService, courtService, userService, paymentService),
	}, identity.NewClient(cfg.FirebaseAPIKey), userService, cfg.CORSOrigins)

	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("listening", "addr", server.Addr)

		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server stopped", "err", err)
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("failed to shutdown server", "err", err)
	}

	scheduler.Stop(shutdownCtx)
}
