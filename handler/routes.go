package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	authpkg "github.com/palepusrinivas/guava-adminpanel-sub002/auth"
	couponpkg "github.com/palepusrinivas/guava-adminpanel-sub002/coupon"
	driverpkg "github.com/palepusrinivas/guava-adminpanel-sub002/driver"
	"github.com/palepusrinivas/guava-adminpanel-sub002/entity"
	farepkg "github.com/palepusrinivas/guava-adminpanel-sub002/fare"
	intercitypkg "github.com/palepusrinivas/guava-adminpanel-sub002/intercity"
	kycpkg "github.com/palepusrinivas/guava-adminpanel-sub002/kyc"
	"github.com/palepusrinivas/guava-adminpanel-sub002/logging"
	"github.com/palepusrinivas/guava-adminpanel-sub002/middleware"
	"github.com/palepusrinivas/guava-adminpanel-sub002/realtime"
	reportpkg "github.com/palepusrinivas/guava-adminpanel-sub002/report"
	settingspkg "github.com/palepusrinivas/guava-adminpanel-sub002/settings"
	subpkg "github.com/palepusrinivas/guava-adminpanel-sub002/subscription"
	vehiclepkg "github.com/palepusrinivas/guava-adminpanel-sub002/vehicle"
	zonepkg "github.com/palepusrinivas/guava-adminpanel-sub002/zone"
)

// Deps are the services behind the console API.
type Deps struct {
	Log *zap.Logger

	// TrustedProxies may set the client address through X-Forwarded-For.
	// The login lockout is keyed by that address, so none are trusted by default.
	TrustedProxies []string

	Auth         authpkg.Service
	Drivers      driverpkg.DriverService
	KYC          kycpkg.KYCService
	Vehicles     vehiclepkg.VehicleService
	Coupons      couponpkg.CouponService
	Zones        zonepkg.ZoneService
	Fares        farepkg.FareService
	Plans        subpkg.PlanService
	Trips        intercitypkg.TripService
	Reports      reportpkg.ReportService
	Settings     settingspkg.SettingsService
	Hub          *realtime.Hub
	KYCDebouncer *kycpkg.Debouncer
}

// NewRouter mounts every console route under /api/v1.
func NewRouter(d Deps) (*gin.Engine, error) {
	r := gin.New()
	if err := r.SetTrustedProxies(d.TrustedProxies); err != nil {
		return nil, err
	}
	r.Use(gin.Recovery(), logging.RequestLogger(d.Log))

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	authHandler := NewAuthHandler(d.Auth)
	driverHandler := NewDriverHandler(d.Drivers)
	kycHandler := NewKYCHandler(d.KYC)
	tripHandler := NewIntercityHandler(d.Trips)
	reportHandler := NewReportHandler(d.Reports)
	settingsHandler := NewSettingsHandler(d.Settings)
	wsHandler := NewWSHandler(d.Hub, d.KYC, d.KYCDebouncer, d.Log)

	session := middleware.RequireSession(d.Auth)
	confirm := middleware.RequireConfirm()

	v1 := r.Group("/api/v1")
	{
		v1.POST("/auth/login", authHandler.Login())
		v1.GET("/auth/lockout", authHandler.Lockout())
		v1.POST("/auth/logout", session, authHandler.Logout())
	}

	admin := v1.Group("", session)
	{
		admin.GET("/ws", wsHandler.ConsoleSocket())

		drivers := admin.Group("/drivers")
		drivers.GET("", ListHandler[entity.Driver](d.Drivers))
		drivers.POST("", CreateHandler[driverpkg.CreateDriverRequest, entity.Driver](d.Drivers))
		drivers.GET("/:id", driverHandler.GetDriver())
		drivers.PATCH("/:id/status", StatusHandler(d.Drivers))

		kyc := admin.Group("/kyc")
		kyc.GET("", kycHandler.Search())
		kyc.POST("/:id/approve", kycHandler.Approve())
		kyc.POST("/:id/reject", kycHandler.Reject())
		kyc.POST("/:id/documents", kycHandler.UploadDocument())

		vehicles := admin.Group("/vehicles")
		vehicles.GET("", ListHandler[entity.Vehicle](d.Vehicles))
		vehicles.POST("", CreateHandler[vehiclepkg.VehicleForm, entity.Vehicle](d.Vehicles))
		vehicles.PUT("/:id", UpdateHandler[vehiclepkg.VehicleForm, entity.Vehicle](d.Vehicles))
		vehicles.PATCH("/:id/status", StatusHandler(d.Vehicles))
		vehicles.DELETE("/:id", confirm, DeleteHandler(d.Vehicles))

		coupons := admin.Group("/coupons")
		coupons.GET("", ListHandler[entity.Coupon](d.Coupons))
		coupons.POST("", CreateHandler[couponpkg.CouponForm, entity.Coupon](d.Coupons))
		coupons.PUT("/:id", UpdateHandler[couponpkg.CouponForm, entity.Coupon](d.Coupons))
		coupons.PATCH("/:id/status", StatusHandler(d.Coupons))
		coupons.DELETE("/:id", confirm, DeleteHandler(d.Coupons))

		zones := admin.Group("/zones")
		zones.GET("", ListHandler[entity.Zone](d.Zones))
		zones.GET("/v2", ZoneOptions(d.Zones))
		zones.POST("", CreateHandler[zonepkg.ZoneForm, entity.Zone](d.Zones))
		zones.PUT("/:id", UpdateHandler[zonepkg.ZoneForm, entity.Zone](d.Zones))
		zones.PATCH("/:id/status", StatusHandler(d.Zones))
		zones.DELETE("/:id", confirm, DeleteHandler(d.Zones))

		fares := admin.Group("/trip-fares")
		fares.GET("", ListHandler[entity.TripFare](d.Fares))
		fares.POST("", CreateHandler[farepkg.FareForm, entity.TripFare](d.Fares))
		fares.PUT("/:id", UpdateHandler[farepkg.FareForm, entity.TripFare](d.Fares))
		fares.DELETE("/:id", confirm, DeleteHandler(d.Fares))

		plans := admin.Group("/subscription-plans")
		plans.GET("", ListHandler[entity.SubscriptionPlan](d.Plans))
		plans.POST("", CreateHandler[subpkg.PlanForm, entity.SubscriptionPlan](d.Plans))
		plans.PUT("/:id", UpdateHandler[subpkg.PlanForm, entity.SubscriptionPlan](d.Plans))
		plans.PATCH("/:id/status", StatusHandler(d.Plans))
		plans.DELETE("/:id", confirm, DeleteHandler(d.Plans))

		trips := admin.Group("/intercity/trips")
		trips.GET("", ListHandler[intercitypkg.TripView](d.Trips))
		trips.POST("/:id/dispatch", tripHandler.Dispatch())
		trips.POST("/:id/cancel", confirm, tripHandler.Cancel())

		admin.GET("/reports/:kind", reportHandler.Series())

		admin.GET("/settings", settingsHandler.Get())
		admin.PUT("/settings", settingsHandler.Update())
		admin.POST("/settings/logo", settingsHandler.UploadLogo())
	}
	return r, nil
}
