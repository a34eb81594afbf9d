package server

import (
	"context"
	"net/http"

	"gymslot/internal/auth"
	"gymslot/internal/config"
	"gymslot/internal/customer"
	"gymslot/internal/gym"
	"gymslot/internal/notify"
	"gymslot/internal/order"
	"gymslot/internal/vendor"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
)

type Server struct {
	router *gin.Engine
	http   *http.Server
	db     *sqlx.DB
	config *config.Config
}

func New(db *sqlx.DB, cfg *config.Config, notifier *notify.Service) *Server {
	registerValidators()

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(corsMiddleware())
	router.Use(RequestLoggingMiddleware())
	router.Use(MetricsMiddleware())
	router.Use(RateLimitMiddleware(cfg.RateLimitRPS, cfg.RateLimitBurst))

	customerRepo := customer.NewRepository(db)
	vendorRepo := vendor.NewRepository(db)
	gymRepo := gym.NewRepository(db)
	orderRepo := order.NewRepository(db)

	customerHandler := customer.NewHandler(customer.NewService(customerRepo, cfg.JWTSecret))
	vendorHandler := vendor.NewHandler(vendor.NewService(vendorRepo, cfg.JWTSecret))
	gymHandler := gym.NewHandler(gym.NewService(gymRepo))
	orderHandler := order.NewHandler(order.NewService(orderRepo, gymRepo, customerRepo, notifier))

	customerPublic := router.Group("/customer")
	{
		customerPublic.POST("/signup", customerHandler.Signup)
		customerPublic.POST("/login", customerHandler.Login)
	}

	vendorPublic := router.Group("/vendor")
	{
		vendorPublic.POST("/signup", vendorHandler.Signup)
		vendorPublic.POST("/login", vendorHandler.Login)
	}

	customerAuth := auth.RequirePrincipal(cfg.JWTSecret, auth.KindCustomer, customerRepo)
	vendorAuth := auth.RequirePrincipal(cfg.JWTSecret, auth.KindVendor, vendorRepo)

	orders := router.Group("/order")
	orders.Use(customerAuth)
	{
		orders.POST("/create_order", orderHandler.CreateOrder)
		orders.PUT("/update_order_status/:orderID", orderHandler.UpdateOrderStatus)
		orders.PUT("/cancel_order/:orderID", orderHandler.CancelOrder)
		orders.GET("/my_orders", orderHandler.ListMyOrders)
	}

	browse := router.Group("/gym")
	browse.Use(customerAuth)
	{
		browse.GET("/list", gymHandler.ListGyms)
		browse.GET("/:gymID/slots", gymHandler.ListSlots)
	}

	manage := router.Group("/gym")
	manage.Use(vendorAuth)
	{
		manage.POST("/add_gym", gymHandler.AddGym)
		manage.PUT("/remove_gym/:gymID", gymHandler.RemoveGym)
		manage.PUT("/pause_gym/:gymID", gymHandler.PauseGym)
		manage.POST("/:gymID/slots", gymHandler.AddSlot)
		manage.PUT("/slots/:slotID", gymHandler.UpdateSlot)
		manage.GET("/:gymID/orders", orderHandler.ListGymOrders)
	}

	router.GET("/health", Health)
	router.GET("/metrics", Metrics())
	SetupSwagger(router)

	return &Server{
		router: router,
		db:     db,
		config: cfg,
	}
}

func (s *Server) Start(port string) error {
	s.http = &http.Server{
		Addr:    ":" + port,
		Handler: s.router,
	}
	return s.http.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	if s.http == nil {
		return nil
	}
	return s.http.Shutdown(ctx)
}

// Router exposes the gin engine for tests.
func (s *Server) Router() *gin.Engine {
	return s.router
}

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	}
}
