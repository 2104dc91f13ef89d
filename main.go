package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/palepusrinivas/guava-adminpanel-sub002/audit"
	authpkg "github.com/palepusrinivas/guava-adminpanel-sub002/auth"
	authrepo "github.com/palepusrinivas/guava-adminpanel-sub002/auth/repository"
	authsvc "github.com/palepusrinivas/guava-adminpanel-sub002/auth/service"
	"github.com/palepusrinivas/guava-adminpanel-sub002/config"
	couponsvc "github.com/palepusrinivas/guava-adminpanel-sub002/coupon/service"
	driversvc "github.com/palepusrinivas/guava-adminpanel-sub002/driver/service"
	"github.com/palepusrinivas/guava-adminpanel-sub002/entity"
	faresvc "github.com/palepusrinivas/guava-adminpanel-sub002/fare/service"
	api "github.com/palepusrinivas/guava-adminpanel-sub002/handler"
	intercitysvc "github.com/palepusrinivas/guava-adminpanel-sub002/intercity/service"
	kycpkg "github.com/palepusrinivas/guava-adminpanel-sub002/kyc"
	kycsvc "github.com/palepusrinivas/guava-adminpanel-sub002/kyc/service"
	"github.com/palepusrinivas/guava-adminpanel-sub002/logging"
	"github.com/palepusrinivas/guava-adminpanel-sub002/realtime"
	reportsvc "github.com/palepusrinivas/guava-adminpanel-sub002/report/service"
	"github.com/palepusrinivas/guava-adminpanel-sub002/resource"
	settingssvc "github.com/palepusrinivas/guava-adminpanel-sub002/settings/service"
	subsvc "github.com/palepusrinivas/guava-adminpanel-sub002/subscription/service"
	"github.com/palepusrinivas/guava-adminpanel-sub002/upstream"
	vehiclesvc "github.com/palepusrinivas/guava-adminpanel-sub002/vehicle/service"
	zonesvc "github.com/palepusrinivas/guava-adminpanel-sub002/zone/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}
	log, err := logging.New("admin-console", cfg.LogLevel)
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	if err := run(cfg, log); err != nil {
		log.Fatal("console stopped", zap.Error(err))
	}
}

func run(cfg *config.Config, log *zap.Logger) error {
	if cfg.GinMode != "" {
		gin.SetMode(cfg.GinMode)
	}

	db, err := setupDatabase(cfg.DatabaseURL, log)
	if err != nil {
		return err
	}

	publisher := audit.Publisher(audit.Nop{})
	if cfg.Audit.AMQPURL != "" {
		p, err := audit.Dial(cfg.Audit.AMQPURL, cfg.Audit.Exchange, log)
		if err != nil {
			return err
		}
		publisher = p
	}
	defer publisher.Close()

	client := upstream.NewClient(cfg.Upstream.BaseURL, cfg.Upstream.Timeout, nil, log)
	hub := realtime.NewHub(log)

	// Every successful mutation is pushed to open tabs and audited.
	listeners := []resource.ChangeFunc{hub.ResourceChanged, audit.Listener(publisher, log, nil)}

	authService := authsvc.NewAuthService(
		authrepo.NewGormAuthRepo(db),
		authrepo.NewUpstreamAuthenticator(client),
		authpkg.Policy{MaxAttempts: cfg.Login.MaxAttempts, Window: cfg.Login.Lockout},
		cfg.Login.SessionTTL,
		log,
	)

	debouncer := kycpkg.NewDebouncer(cfg.KYCSearchDebounce)
	defer debouncer.Stop()

	router, err := api.NewRouter(api.Deps{
		Log:            log,
		TrustedProxies: cfg.TrustedProxies,
		Auth:           authService,
		Drivers:        driversvc.NewDriverService(client, log, changes[entity.Driver](listeners)...),
		KYC:            kycsvc.NewKYCService(client, log, changes[entity.Driver](listeners)...),
		Vehicles:       vehiclesvc.NewVehicleService(client, log, changes[entity.Vehicle](listeners)...),
		Coupons:        couponsvc.NewCouponService(client, log, changes[entity.Coupon](listeners)...),
		Zones:          zonesvc.NewZoneService(client, log, cfg.DemoMode, changes[entity.Zone](listeners)...),
		Fares:          faresvc.NewFareService(client, log, changes[entity.TripFare](listeners)...),
		Plans:          subsvc.NewPlanService(client, log, changes[entity.SubscriptionPlan](listeners)...),
		Trips:          intercitysvc.NewTripService(client, log, changes[entity.IntercityTrip](listeners)...),
		Reports:        reportsvc.NewReportService(client, log, cfg.DemoMode),
		Settings:       settingssvc.NewSettingsService(client, log, listeners...),
		Hub:            hub,
		KYCDebouncer:   debouncer,
	})
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go purgeSessions(ctx, authService, cfg.Login.SessionPurge, log)

	errCh := make(chan error, 1)
	go func() {
		log.Info("console listening", zap.String("action", "http_listen"), zap.String("addr", srv.Addr),
			zap.String("upstream", cfg.Upstream.BaseURL), zap.Bool("demo_mode", cfg.DemoMode))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	log.Info("shutting down", zap.String("action", "http_shutdown"))
	return srv.Shutdown(shutdownCtx)
}

// purgeSessions drops expired sessions until ctx is done.
func purgeSessions(ctx context.Context, svc authpkg.Service, every time.Duration, log *zap.Logger) {
	ticker := time.NewTicker(every)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if _, err := svc.PurgeExpiredSessions(ctx); err != nil {
				log.Warn("session purge failed", zap.String("action", "session_purge"), zap.Error(err))
			}
		}
	}
}

// changes turns the shared listeners into manager options for one resource type.
func changes[T any](fns []resource.ChangeFunc) []resource.Option[T] {
	opts := make([]resource.Option[T], 0, len(fns))
	for _, fn := range fns {
		opts = append(opts, resource.OnChange[T](fn))
	}
	return opts
}
