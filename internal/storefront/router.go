package storefront

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/hnthao/foodorder/config"
	"github.com/hnthao/foodorder/internal/middleware"
	"go.uber.org/zap"
)

// Router assembles the customer-facing engine.
func Router(cfg *config.Config, h *Handler, log *zap.Logger) *gin.Engine {
	if cfg.Server.AppEnv != "dev" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger(log))

	store := cookie.NewStore([]byte(cfg.Server.SessionSecret))
	r.Use(sessions.Sessions("foodorder_session", store))

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	r.GET("/", h.Home)
	r.GET("/menu", h.Menu)
	r.GET("/products/:id", h.ProductDetail)

	r.GET("/cart", h.ViewCart)
	r.POST("/cart/items", h.AddToCart)
	r.POST("/cart/update", h.UpdateCart)
	r.POST("/cart/clear", h.ClearCart)

	r.GET("/checkout", h.CheckoutSummary)
	r.POST("/checkout", h.Checkout)
	r.GET("/orders/:id", h.OrderConfirmation)

	r.POST("/reviews", h.CreateReview)
	r.GET("/reviews", h.ListReviews)

	api := r.Group("/api")
	{
		api.GET("/products/:id/rating", h.ProductRating)
		api.GET("/products/:id/reviews", h.ProductReviews)
	}

	return r
}
