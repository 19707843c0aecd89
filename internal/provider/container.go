package provider

import (
	"github.com/storehub/internal/cache"
	"github.com/storehub/internal/config"
	"github.com/storehub/internal/logger"
	"github.com/storehub/internal/models"
	"github.com/storehub/internal/queue"
	"github.com/storehub/internal/repository"
	"github.com/storehub/internal/service"

	"github.com/shopspring/decimal"
)

// Container 依赖注入容器
type Container struct {
	Config      *config.Config
	QueueClient *queue.Client

	// Repositories
	CollectionRepo repository.CollectionRepository
	ProductRepo    repository.ProductRepository
	ReviewRepo     repository.ReviewRepository
	CartRepo       repository.CartRepository
	CustomerRepo   repository.CustomerRepository
	OrderRepo      repository.OrderRepository

	// Services
	CollectionService *service.CollectionService
	ProductService    *service.ProductService
	ReviewService     *service.ReviewService
	CartService       *service.CartService
	CustomerService   *service.CustomerService
	OrderService      *service.OrderService
}

// NewContainer 初始化容器
func NewContainer(cfg *config.Config) *Container {
	// 初始化缓存
	if err := cache.InitRedis(&cfg.Redis); err != nil {
		logger.Warnw("provider_init_redis_failed", "error", err)
	}

	// 初始化队列客户端
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

	// 1. 初始化 Repositories
	c.initRepositories()

	// 2. 初始化 Services
	c.initServices()

	return c
}

func (c *Container) initRepositories() {
	db := models.DB
	c.CollectionRepo = repository.NewCollectionRepository(db)
	c.ProductRepo = repository.NewProductRepository(db)
	c.ReviewRepo = repository.NewReviewRepository(db)
	c.CartRepo = repository.NewCartRepository(db)
	c.CustomerRepo = repository.NewCustomerRepository(db)
	c.OrderRepo = repository.NewOrderRepository(db)
}

func (c *Container) initServices() {
	taxRate, err := decimal.NewFromString(c.Config.Store.TaxRate)
	if err != nil {
		logger.Warnw("provider_tax_rate_invalid_use_default", "tax_rate", c.Config.Store.TaxRate, "error", err)
		taxRate = decimal.RequireFromString("1.1")
	}

	c.CollectionService = service.NewCollectionService(c.CollectionRepo)
	c.ProductService = service.NewProductService(c.ProductRepo, c.CollectionRepo, taxRate)
	c.ReviewService = service.NewReviewService(c.ReviewRepo, c.ProductRepo)
	c.CartService = service.NewCartService(c.CartRepo, c.ProductRepo)
	c.CustomerService = service.NewCustomerService(c.CustomerRepo)
	c.OrderService = service.NewOrderService(models.DB, c.OrderRepo, c.CartRepo, c.CustomerRepo)

	// 事务提交后通过队列发送下单通知
	c.OrderService.OnOrderCreated(func(order *models.Order) {
		if !c.QueueClient.Enabled() {
			logger.Debugw("order_created_queue_disabled", "order_id", order.ID)
			return
		}
		err := c.QueueClient.EnqueueOrderCreated(queue.OrderCreatedPayload{
			OrderID:    order.ID,
			CustomerID: order.CustomerID,
		})
		if err != nil {
			logger.Warnw("order_created_enqueue_failed", "order_id", order.ID, "error", err)
		}
	})
}
