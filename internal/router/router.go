package router

import (
	"fmt"
	"strings"

	"github.com/sugarloaf/bakehouse/internal/cache"
	"github.com/sugarloaf/bakehouse/internal/config"
	"github.com/sugarloaf/bakehouse/internal/constants"
	publichandlers "github.com/sugarloaf/bakehouse/internal/http/handlers/public"
	"github.com/sugarloaf/bakehouse/internal/logger"
	"github.com/sugarloaf/bakehouse/internal/provider"

	"github.com/gin-gonic/gin"
)

// SetupRouter wires the HTTP surface.
func SetupRouter(cfg *config.Config, c *provider.Container) *gin.Engine {
	log := logger.L
	if log == nil {
		log = logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	}
	r := gin.New()

	handler := publichandlers.New(c)
	redisPrefix := strings.TrimSpace(cfg.Redis.Prefix)
	if redisPrefix == "" {
		redisPrefix = constants.RedisPrefixDefault
	}
	redisClient := cache.Client()
	loginRule := RateLimitRule{
		Prefix:        fmt.Sprintf("%s:rate:login", redisPrefix),
		WindowSeconds: cfg.Security.LoginRateLimit.WindowSeconds,
		MaxRequests:   cfg.Security.LoginRateLimit.MaxAttempts,
		BlockSeconds:  cfg.Security.LoginRateLimit.BlockSeconds,
		Message:       "too many login attempts",
	}

	r.Use(gin.Recovery())
	r.Use(RequestIDMiddleware())
	r.Use(LoggerMiddleware(log))
	r.Use(CORSMiddleware(cfg.CORS))

	// Uploaded images (custom cake references, profile pictures).
	r.Static("/uploads", "./uploads")

	// Account endpoints.
	r.POST("/register", handler.UserRegister)
	r.POST("/login", RateLimitMiddleware(redisClient, loginRule, KeyByIPAndJSONField("email")), handler.UserLogin)
	r.POST("/verifyToken", handler.VerifyToken)
	r.GET("/auth/google", handler.GoogleLogin)
	r.GET("/auth/google/callback", handler.GoogleCallback)
	r.GET("/captcha/image", handler.GetImageCaptcha)

	// Storefront catalog.
	r.GET("/items", handler.ListItems)
	r.GET("/customization-prices", handler.ListCustomizationPrices)

	// Provider callback, deliberately unauthenticated.
	r.POST("/webhooks/xendit", handler.XenditWebhook)

	// Signed-in surface.
	user := r.Group("")
	user.Use(UserJWTAuthMiddleware(cfg.JWT.SecretKey, c.UserRepo))
	{
		user.POST("/carts", handler.AddCartLine)
		user.POST("/customcarts", handler.AddCustomCartLine)
		user.GET("/carts/:userId", handler.ListCartLines)
		user.DELETE("/carts/clear/:userId", handler.ClearCart)
		user.DELETE("/clear-cart/:userId", handler.ClearCartStrict)
		user.DELETE("/carts/item/:itemId", handler.DeleteCartLine)
		user.PUT("/carts/item/:itemId/increase", handler.IncreaseCartLine)
		user.PUT("/carts/item/:itemId/decrease", handler.DecreaseCartLine)

		user.POST("/save-order", handler.SaveOrder)
		user.GET("/orders/:userId", handler.ListUserOrders)
		user.POST("/create-payment-link", handler.CreatePaymentLink)

		user.GET("/loyalty/:userId", handler.GetLoyalty)

		user.GET("/users/:id", handler.GetUser)
		user.PUT("/users/:id", handler.UpdateUser)
	}

	// Staff-only order management.
	staff := r.Group("")
	staff.Use(UserJWTAuthMiddleware(cfg.JWT.SecretKey, c.UserRepo), StaffRBACMiddleware(c.AuthzService))
	{
		staff.GET("/orders", handler.ListOrders)
		staff.PUT("/orders/:id", handler.UpdateOrder)
	}

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	return r
}
