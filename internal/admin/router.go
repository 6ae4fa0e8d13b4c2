package admin

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/hnthao/foodorder/config"
	"github.com/hnthao/foodorder/internal/auth"
	"github.com/hnthao/foodorder/internal/middleware"
	"go.uber.org/zap"
)

// Router assembles the back-office engine. Everything except login, logout
// and the health probe sits behind the session gate.
func Router(cfg *config.Config, h *Handler, log *zap.Logger) *gin.Engine {
	if cfg.Server.AppEnv != "dev" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger(log))

	store := cookie.NewStore([]byte(cfg.Server.SessionSecret))
	r.Use(sessions.Sessions("foodorder_admin_session", store))

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

	r.POST("/login", h.Login)
	r.POST("/logout", h.Logout)

	gated := r.Group("/", auth.RequireAdmin())
	{
		gated.GET("/dashboard", h.Dashboard)

		gated.GET("/products", h.ListProducts)
		gated.POST("/products", h.CreateProduct)
		gated.GET("/products/:id", h.GetProduct)
		gated.PUT("/products/:id", h.UpdateProduct)
		gated.DELETE("/products/:id", h.DeleteProduct)

		gated.GET("/orders", h.ListOrders)
		gated.GET("/orders/:id", h.OrderDetail)
		gated.POST("/orders/:id/status", h.UpdateOrderStatus)

		gated.GET("/reviews", h.ListReviews)
		gated.DELETE("/reviews/:id", h.DeleteReview)

		charts := gated.Group("/api/charts")
		{
			charts.GET("/revenue", h.RevenueChart)
			charts.GET("/revenue-monthly", h.MonthlyRevenueChart)
			charts.GET("/status", h.StatusChart)
			charts.GET("/top-products", h.TopProductsChart)
		}
	}

	return r
}
