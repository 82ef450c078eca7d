package routes

import (
	"net/http"

	"github.com/Hike-12/BitNBuild25-TeamPony-sub000/configs"
	"github.com/Hike-12/BitNBuild25-TeamPony-sub000/controllers"
	"github.com/Hike-12/BitNBuild25-TeamPony-sub000/middlewares"
	"github.com/Hike-12/BitNBuild25-TeamPony-sub000/pkg/logger"
	"github.com/Hike-12/BitNBuild25-TeamPony-sub000/repository"
	"github.com/Hike-12/BitNBuild25-TeamPony-sub000/services"
	"github.com/Hike-12/BitNBuild25-TeamPony-sub000/utils"
	"github.com/Hike-12/BitNBuild25-TeamPony-sub000/ws"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/gorm"
)

// Deps are the long-lived collaborators built in main. All fields are optional:
// without Events nothing is published, without Hub there is no websocket route.
type Deps struct {
	Events services.EventPublisher
	Hub    *ws.TrackingHub
	Log    *logger.Logger
}

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *configs.Config, deps Deps) error {
	if err := controllers.RegisterValidators(); err != nil {
		return err
	}
	if deps.Log == nil {
		deps.Log = logger.Nop()
	}
	var notifier services.TrackingNotifier = services.NopNotifier{}
	if deps.Hub != nil {
		notifier = deps.Hub
	}

	r.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"ok": true}) })
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Repositories
	userRepo := repository.NewUserRepository(db)
	vendorRepo := repository.NewVendorRepository(db)
	adminRepo := repository.NewAdminRepository(db)
	menuRepo := repository.NewMenuRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	trackingRepo := repository.NewTrackingRepository(db)
	subRepo := repository.NewSubscriptionRepository(db)
	feedbackRepo := repository.NewFeedbackRepository(db)
	paymentRepo := repository.NewPaymentRepository(db)

	// Services
	authSvc := services.NewAuthService(userRepo, vendorRepo, adminRepo, cfg.JWTSecret, cfg.JWTTTL)
	vendorSvc := services.NewVendorService(vendorRepo)
	catalogSvc := services.NewCatalogService(menuRepo, vendorRepo)
	orderSvc := services.NewOrderService(db, orderRepo, menuRepo, deps.Events, deps.Log)
	trackingSvc := services.NewTrackingService(db, trackingRepo, orderRepo, notifier, deps.Events, deps.Log)
	subSvc := services.NewSubscriptionService(subRepo, vendorRepo)
	feedbackSvc := services.NewFeedbackService(feedbackRepo, orderRepo)
	paymentSvc := services.NewPaymentService(db, paymentRepo, orderRepo, cfg.RazorpayKeySecret, deps.Events, deps.Log)

	// Controllers
	authCtrl := controllers.NewAuthController(authSvc)
	adminCtrl := controllers.NewAdminController(authSvc, vendorSvc)
	menuCtrl := controllers.NewMenuController(catalogSvc)
	orderCtrl := controllers.NewOrderController(orderSvc)
	trackingCtrl := controllers.NewTrackingController(trackingSvc)
	subCtrl := controllers.NewSubscriptionController(subSvc)
	feedbackCtrl := controllers.NewFeedbackController(feedbackSvc)
	paymentCtrl := controllers.NewPaymentController(paymentSvc)

	secret := cfg.JWTSecret
	customer := middlewares.CustomerAuth(secret)
	vendor := middlewares.VendorAuth(secret)

	api := r.Group("/api")

	// Customer auth
	user := api.Group("/user")
	{
		user.POST("/register", authCtrl.RegisterUser)
		user.POST("/login", authCtrl.LoginUser)
		user.GET("/check-auth", customer, authCtrl.CheckUser)
		user.GET("/logout", authCtrl.Logout)
	}

	// Vendor auth
	auth := api.Group("/auth")
	{
		auth.POST("/register", authCtrl.RegisterVendor)
		auth.POST("/login", authCtrl.LoginVendor)
		auth.GET("/check-auth", vendor, authCtrl.CheckVendor)
		auth.GET("/logout", authCtrl.Logout)
	}

	// Admin
	api.POST("/admin/login", adminCtrl.Login)
	admin := api.Group("/admin", middlewares.AdminAuth(secret))
	{
		admin.PATCH("/vendors/:vendorId/verify", adminCtrl.SetVendorFlags)
	}

	// Catalog
	api.GET("/menus", menuCtrl.Public)
	vendorArea := api.Group("/vendor", vendor)
	{
		vendorArea.GET("/dashboard", menuCtrl.Dashboard)
		vendorArea.GET("/menu-items", menuCtrl.ListItems)
		vendorArea.POST("/menu-items", menuCtrl.CreateItem)
		vendorArea.GET("/daily-menus", menuCtrl.ListMenus)
		vendorArea.POST("/daily-menus", menuCtrl.CreateMenu)
		vendorArea.PATCH("/daily-menus/:menuId/active", menuCtrl.SetActive)
	}

	// Orders
	orders := api.Group("/orders")
	{
		orders.POST("", customer, orderCtrl.Create)
		orders.GET("", customer, orderCtrl.ListForCustomer)
		orders.GET("/vendor", vendor, orderCtrl.ListForVendor)
		orders.PATCH("/:orderId/status", vendor, orderCtrl.UpdateStatus)
	}

	// Tracking
	tracking := api.Group("/order-tracking")
	{
		tracking.GET("/consumer", customer, trackingCtrl.ConsumerList)
		tracking.GET("/consumer/:orderId", customer, trackingCtrl.ConsumerDetail)
		tracking.GET("/vendor", vendor, trackingCtrl.VendorList)
		tracking.POST("/vendor/:orderId/update", vendor, trackingCtrl.Update)
		tracking.GET("/live", middlewares.CustomerOrVendorAuth(secret), trackingCtrl.Live)
		if deps.Hub != nil {
			deps.Hub.SetService(trackingSvc)
			tracking.GET("/ws/:orderId",
				middlewares.WSAuthMiddleware(secret, utils.AudienceCustomer, utils.AudienceVendor),
				deps.Hub.HandleWebSocket)
		}
	}

	// Subscriptions
	subs := api.Group("/subscriptions")
	{
		subs.POST("", customer, subCtrl.Create)
		subs.GET("", customer, subCtrl.ListForCustomer)
		subs.GET("/vendor", vendor, subCtrl.ListForVendor)
		subs.PATCH("/:subscriptionId/status", customer, subCtrl.UpdateStatus)
	}

	// Feedback
	feedback := api.Group("/feedback")
	{
		feedback.POST("/orders/:orderId", customer, feedbackCtrl.Create)
		feedback.GET("/user", customer, feedbackCtrl.ListForCustomer)
		feedback.GET("/vendors/:vendorId", feedbackCtrl.ListForVendor)
		feedback.PATCH("/:feedbackId/response", vendor, feedbackCtrl.Respond)
	}

	// Payments
	api.POST("/payments/verify-payment", customer, paymentCtrl.Verify)

	return nil
}
