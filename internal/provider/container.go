package provider

import (
	"github.com/sugarloaf/bakehouse/internal/authz"
	"github.com/sugarloaf/bakehouse/internal/cache"
	"github.com/sugarloaf/bakehouse/internal/config"
	"github.com/sugarloaf/bakehouse/internal/logger"
	"github.com/sugarloaf/bakehouse/internal/models"
	"github.com/sugarloaf/bakehouse/internal/queue"
	"github.com/sugarloaf/bakehouse/internal/repository"
	"github.com/sugarloaf/bakehouse/internal/service"
)

// Container wires repositories and services together.
type Container struct {
	Config      *config.Config
	QueueClient *queue.Client

	// Repositories
	UserRepo               repository.UserRepository
	ItemRepo               repository.ItemRepository
	CartRepo               repository.CartRepository
	OrderRepo              repository.OrderRepository
	CounterRepo            repository.CounterRepository
	LoyaltyRepo            repository.LoyaltyRepository
	CustomizationPriceRepo repository.CustomizationPriceRepository

	// Services
	AuthzService         *authz.Service
	UserAuthService      *service.UserAuthService
	OAuthService         *service.OAuthService
	CaptchaService       *service.CaptchaService
	UploadService        *service.UploadService
	ItemService          *service.ItemService
	CartService          *service.CartService
	OrderNumberService   *service.OrderNumberService
	OrderService         *service.OrderService
	PaymentService       *service.PaymentService
	LoyaltyService       *service.LoyaltyService
	CustomizationService *service.CustomizationService
}

// NewContainer initializes the container.
func NewContainer(cfg *config.Config) *Container {
	if err := cache.InitRedis(&cfg.Redis); err != nil {
		logger.Warnw("provider_init_redis_failed", "error", err)
	}

	var queueClient *queue.Client
	if cfg.Queue.Enabled {
		qc, err := queue.NewClient(&cfg.Queue)
		if err != nil {
			logger.Errorw("provider_init_queue_client_failed", "error", err)
		} else {
			queueClient = qc
		}
	}

	c := &Container{
		Config:      cfg,
		QueueClient: queueClient,
	}

	c.initRepositories()
	c.initServices()

	return c
}

func (c *Container) initRepositories() {
	db := models.DB
	c.UserRepo = repository.NewUserRepository(db)
	c.ItemRepo = repository.NewItemRepository(db)
	c.CartRepo = repository.NewCartRepository(db)
	c.OrderRepo = repository.NewOrderRepository(db)
	c.CounterRepo = repository.NewCounterRepository(db)
	c.LoyaltyRepo = repository.NewLoyaltyRepository(db)
	c.CustomizationPriceRepo = repository.NewCustomizationPriceRepository(db)
}

func (c *Container) initServices() {
	authzService, err := authz.NewService(models.DB)
	if err != nil {
		logger.Errorw("provider_init_authz_failed", "error", err)
		panic(err)
	}
	c.AuthzService = authzService
	if err := c.AuthzService.BootstrapBuiltinRoles(); err != nil {
		logger.Errorw("provider_bootstrap_builtin_roles_failed", "error", err)
		panic(err)
	}

	c.UserAuthService = service.NewUserAuthService(c.Config, c.UserRepo)
	c.OAuthService = service.NewOAuthService(c.Config, c.UserRepo)
	c.CaptchaService = service.NewCaptchaService(c.Config.Captcha)
	c.UploadService = service.NewUploadService(c.Config)
	c.ItemService = service.NewItemService(c.ItemRepo)
	c.CartService = service.NewCartService(c.CartRepo)
	c.OrderNumberService = service.NewOrderNumberService(models.DB, c.CounterRepo, c.OrderRepo)
	c.OrderService = service.NewOrderService(c.OrderRepo, c.UserRepo, c.OrderNumberService)
	c.PaymentService = service.NewPaymentService(c.Config, c.OrderRepo, c.OrderService, c.QueueClient)
	c.LoyaltyService = service.NewLoyaltyService(c.LoyaltyRepo, c.OrderRepo, c.UserRepo, c.Config.Loyalty.ActiveThreshold)
	c.CustomizationService = service.NewCustomizationService(c.CustomizationPriceRepo)
}
