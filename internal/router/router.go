package router

import (
	"fmt"
	"strings"

	"github.com/storehub/internal/cache"
	"github.com/storehub/internal/config"
	storehandlers "github.com/storehub/internal/http/handlers/store"
	"github.com/storehub/internal/http/response"
	"github.com/storehub/internal/logger"
	"github.com/storehub/internal/provider"

	"github.com/gin-gonic/gin"
)

// SetupRouter 初始化路由
func SetupRouter(cfg *config.Config, c *provider.Container) *gin.Engine {
	log := logger.L
	if log == nil {
		log = logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	}
	r := gin.New()

	handler := storehandlers.New(c)
	redisPrefix := strings.TrimSpace(cfg.Redis.Prefix)
	if redisPrefix == "" {
		redisPrefix = "sh"
	}
	redisClient := cache.Client()
	checkoutRule := RateLimitRule{
		Prefix:        fmt.Sprintf("%s:rate:checkout", redisPrefix),
		WindowSeconds: cfg.Security.CheckoutRateLimit.WindowSeconds,
		MaxRequests:   cfg.Security.CheckoutRateLimit.MaxRequests,
	}
	cartRule := RateLimitRule{
		Prefix:        fmt.Sprintf("%s:rate:cart", redisPrefix),
		WindowSeconds: cfg.Security.CartRateLimit.WindowSeconds,
		MaxRequests:   cfg.Security.CartRateLimit.MaxRequests,
	}

	// 中间件
	r.Use(gin.Recovery())
	r.Use(RequestIDMiddleware())
	r.Use(LoggerMiddleware(log))
	r.Use(CORSMiddleware(cfg.CORS))

	r.HandleMethodNotAllowed = true
	r.NoRoute(func(ctx *gin.Context) {
		response.NotFound(ctx, "resource not found")
	})
	r.NoMethod(func(ctx *gin.Context) {
		response.MethodNotAllowed(ctx, "method not allowed")
	})

	r.GET("/healthz", Healthz)

	auth := AuthMiddleware(cfg.Auth.Secret)
	staff := StaffMiddleware(cfg.Auth.Secret)

	api := r.Group("/api/v1")
	{
		// 商品（读公开，写仅员工）
		products := api.Group("/products")
		{
			products.GET("", handler.ListProducts)
			products.GET("/:product_id", handler.GetProduct)
			products.POST("", staff, handler.CreateProduct)
			products.PUT("/:product_id", staff, handler.UpdateProduct)
			products.PATCH("/:product_id", staff, handler.PatchProduct)
			products.DELETE("/:product_id", staff, handler.DeleteProduct)

			// 评价（匿名可写，商品范围取自路径）
			products.GET("/:product_id/reviews", handler.ListReviews)
			products.POST("/:product_id/reviews", handler.CreateReview)
			products.GET("/:product_id/reviews/:id", handler.GetReview)
			products.PUT("/:product_id/reviews/:id", handler.UpdateReview)
			products.PATCH("/:product_id/reviews/:id", handler.PatchReview)
			products.DELETE("/:product_id/reviews/:id", handler.DeleteReview)
		}

		// 集合（读公开，写仅员工）
		collections := api.Group("/collections")
		{
			collections.GET("", handler.ListCollections)
			collections.GET("/:id", handler.GetCollection)
			collections.POST("", staff, handler.CreateCollection)
			collections.PUT("/:id", staff, handler.UpdateCollection)
			collections.PATCH("/:id", staff, handler.PatchCollection)
			collections.DELETE("/:id", staff, handler.DeleteCollection)
		}

		// 购物车（匿名）
		carts := api.Group("/carts")
		{
			carts.POST("", RateLimitMiddleware(redisClient, cartRule, KeyByIP), handler.CreateCart)
			carts.GET("/:cart_id", handler.GetCart)
			carts.DELETE("/:cart_id", handler.DeleteCart)

			carts.GET("/:cart_id/items", handler.ListCartItems)
			carts.POST("/:cart_id/items", handler.AddCartItem)
			carts.GET("/:cart_id/items/:id", handler.GetCartItem)
			carts.PATCH("/:cart_id/items/:id", handler.UpdateCartItem)
			carts.DELETE("/:cart_id/items/:id", handler.DeleteCartItem)
		}

		// 顾客（管理 CRUD 仅员工；/me 面向登录用户）
		customers := api.Group("/customers")
		{
			customers.GET("/me", auth, handler.GetMe)
			customers.PUT("/me", auth, handler.UpdateMe)

			customers.GET("", staff, handler.ListCustomers)
			customers.POST("", staff, handler.CreateCustomer)
			customers.GET("/:id", staff, handler.GetCustomer)
			customers.PUT("/:id", staff, handler.UpdateCustomer)
			customers.PATCH("/:id", staff, handler.PatchCustomer)
			customers.DELETE("/:id", staff, handler.DeleteCustomer)
		}

		// 订单（登录用户；改删仅员工）
		orders := api.Group("/orders")
		orders.Use(auth)
		{
			orders.POST("", RateLimitMiddleware(redisClient, checkoutRule, KeyByIP), handler.Checkout)
			orders.GET("", handler.ListOrders)
			orders.GET("/:id", handler.GetOrder)
			orders.PATCH("/:id", staff, handler.UpdateOrder)
			orders.DELETE("/:id", staff, handler.DeleteOrder)
		}
	}

	return r
}

// Healthz 健康检查
func Healthz(c *gin.Context) {
	response.Success(c, gin.H{"status": "ok"})
}
