package admin

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/hnthao/foodorder/internal/auth"
	"github.com/hnthao/foodorder/internal/order"
	"github.com/hnthao/foodorder/internal/product"
	productdto "github.com/hnthao/foodorder/internal/product/dto"
	"github.com/hnthao/foodorder/internal/review"
	"go.uber.org/zap"
)

type Handler struct {
	credentials auth.Credentials
	products    product.UseCase
	orders      order.UseCase
	reviews     review.UseCase
	logger      *zap.Logger
}

func NewHandler(creds auth.Credentials, products product.UseCase, orders order.UseCase, reviews review.UseCase, log *zap.Logger) *Handler {
	return &Handler{
		credentials: creds,
		products:    products,
		orders:      orders,
		reviews:     reviews,
		logger:      log,
	}
}

func fail(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"success": false, "message": message})
}

func parseID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		fail(c, http.StatusBadRequest, "invalid id")
		return 0, false
	}
	return id, true
}

type loginRequest struct {
	Username string `json:"username" form:"username"`
	Password string `json:"password" form:"password"`
}

func (h *Handler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBind(&req); err != nil {
		fail(c, http.StatusBadRequest, "invalid request")
		return
	}

	if !h.credentials.Verify(req.Username, req.Password) {
		h.logger.Warn("admin login rejected", zap.String("username", req.Username))
		fail(c, http.StatusUnauthorized, "wrong username or password")
		return
	}

	if err := auth.SignIn(c, req.Username); err != nil {
		h.logger.Error("failed to save session", zap.Error(err))
		fail(c, http.StatusInternalServerError, "login failed")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "logged in"})
}

func (h *Handler) Logout(c *gin.Context) {
	if err := auth.SignOut(c); err != nil {
		h.logger.Error("failed to clear session", zap.Error(err))
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "logged out"})
}

// Dashboard gathers the headline statistics, recent orders, time-window
// counts and top sellers in one payload.
func (h *Handler) Dashboard(c *gin.Context) {
	ctx := c.Request.Context()

	stats, err := h.orders.Statistics(ctx)
	if err != nil {
		h.logger.Error("failed to load statistics", zap.Error(err))
		fail(c, http.StatusInternalServerError, "failed to load dashboard")
		return
	}

	recent, err := h.orders.ListOrders(ctx, "")
	if err != nil {
		h.logger.Error("failed to list orders", zap.Error(err))
		fail(c, http.StatusInternalServerError, "failed to load dashboard")
		return
	}
	if len(recent) > 10 {
		recent = recent[:10]
	}

	products, err := h.products.ListProducts(ctx, &productdto.ProductFilters{})
	if err != nil {
		h.logger.Error("failed to list products", zap.Error(err))
		fail(c, http.StatusInternalServerError, "failed to load dashboard")
		return
	}

	today, err := h.orders.OrdersToday(ctx)
	if err != nil {
		h.logger.Error("failed to count today's orders", zap.Error(err))
		fail(c, http.StatusInternalServerError, "failed to load dashboard")
		return
	}
	week, err := h.orders.OrdersThisWeek(ctx)
	if err != nil {
		h.logger.Error("failed to count this week's orders", zap.Error(err))
		fail(c, http.StatusInternalServerError, "failed to load dashboard")
		return
	}
	month, err := h.orders.OrdersThisMonth(ctx)
	if err != nil {
		h.logger.Error("failed to count this month's orders", zap.Error(err))
		fail(c, http.StatusInternalServerError, "failed to load dashboard")
		return
	}

	topProducts, err := h.orders.TopProducts(ctx, 5)
	if err != nil {
		h.logger.Error("failed to load top products", zap.Error(err))
		fail(c, http.StatusInternalServerError, "failed to load dashboard")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"stats":          stats,
		"recent_orders":  recent,
		"total_products": len(products),
		"orders_today":   today,
		"orders_week":    week,
		"orders_month":   month,
		"top_products":   topProducts,
	})
}

// ListProducts returns the catalog without the availability filter, so the
// admin can see soft-deleted rows too.
func (h *Handler) ListProducts(c *gin.Context) {
	filters := &productdto.ProductFilters{IncludeUnavailable: true}
	if search := c.Query("search"); search != "" {
		filters.SearchQuery = search
	} else if category := c.Query("category"); category != "" {
		filters.Category = category
	}

	products, err := h.products.ListProducts(c.Request.Context(), filters)
	if err != nil {
		h.logger.Error("failed to list products", zap.Error(err))
		fail(c, http.StatusInternalServerError, "failed to load products")
		return
	}

	categories, err := h.products.Categories(c.Request.Context())
	if err != nil {
		h.logger.Error("failed to list categories", zap.Error(err))
		fail(c, http.StatusInternalServerError, "failed to load categories")
		return
	}

	c.JSON(http.StatusOK, gin.H{"products": products, "categories": categories})
}

func (h *Handler) GetProduct(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	p, err := h.products.GetProduct(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, product.ErrNotFound) {
			fail(c, http.StatusNotFound, "product not found")
			return
		}
		h.logger.Error("failed to get product", zap.Error(err))
		fail(c, http.StatusInternalServerError, "failed to load product")
		return
	}
	c.JSON(http.StatusOK, p)
}

type productRequest struct {
	Name        string  `json:"name" form:"name"`
	Description string  `json:"description" form:"description"`
	Price       float64 `json:"price" form:"price"`
	ImageURL    string  `json:"image_url" form:"image_url"`
	Category    string  `json:"category" form:"category"`
}

func (h *Handler) CreateProduct(c *gin.Context) {
	var req productRequest
	if err := c.ShouldBind(&req); err != nil {
		fail(c, http.StatusBadRequest, "invalid request")
		return
	}

	p, err := h.products.CreateProduct(c.Request.Context(), &productdto.CreateProductInput{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		ImageURL:    req.ImageURL,
		Category:    req.Category,
	})
	if err != nil {
		if errors.Is(err, product.ErrInvalidInput) {
			fail(c, http.StatusBadRequest, err.Error())
			return
		}
		h.logger.Error("failed to create product", zap.Error(err))
		fail(c, http.StatusInternalServerError, "failed to create product")
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "product": p})
}

func (h *Handler) UpdateProduct(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req productRequest
	if err := c.ShouldBind(&req); err != nil {
		fail(c, http.StatusBadRequest, "invalid request")
		return
	}

	p, err := h.products.UpdateProduct(c.Request.Context(), &productdto.UpdateProductInput{
		ID:          id,
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		ImageURL:    req.ImageURL,
		Category:    req.Category,
	})
	if err != nil {
		switch {
		case errors.Is(err, product.ErrNotFound):
			fail(c, http.StatusNotFound, "product not found")
		case errors.Is(err, product.ErrInvalidInput):
			fail(c, http.StatusBadRequest, err.Error())
		default:
			h.logger.Error("failed to update product", zap.Error(err))
			fail(c, http.StatusInternalServerError, "failed to update product")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "product": p})
}

func (h *Handler) DeleteProduct(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := h.products.DeleteProduct(c.Request.Context(), id); err != nil {
		if errors.Is(err, product.ErrNotFound) {
			fail(c, http.StatusNotFound, "product not found")
			return
		}
		h.logger.Error("failed to delete product", zap.Error(err))
		fail(c, http.StatusInternalServerError, "failed to delete product")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (h *Handler) ListOrders(c *gin.Context) {
	orders, err := h.orders.ListOrders(c.Request.Context(), c.Query("status"))
	if err != nil {
		if errors.Is(err, order.ErrInvalidStatus) {
			fail(c, http.StatusBadRequest, "invalid status filter")
			return
		}
		h.logger.Error("failed to list orders", zap.Error(err))
		fail(c, http.StatusInternalServerError, "failed to load orders")
		return
	}
	c.JSON(http.StatusOK, gin.H{"orders": orders})
}

func (h *Handler) OrderDetail(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	o, items, err := h.orders.GetOrder(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, order.ErrNotFound) {
			fail(c, http.StatusNotFound, "order not found")
			return
		}
		h.logger.Error("failed to get order", zap.Error(err))
		fail(c, http.StatusInternalServerError, "failed to load order")
		return
	}

	c.JSON(http.StatusOK, gin.H{"order": o, "items": items})
}

type updateStatusRequest struct {
	Status string `json:"status" form:"status"`
}

func (h *Handler) UpdateOrderStatus(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req updateStatusRequest
	if err := c.ShouldBind(&req); err != nil {
		fail(c, http.StatusBadRequest, "invalid request")
		return
	}

	if err := h.orders.UpdateStatus(c.Request.Context(), id, req.Status); err != nil {
		switch {
		case errors.Is(err, order.ErrInvalidStatus):
			fail(c, http.StatusBadRequest, "invalid status")
		case errors.Is(err, order.ErrNotFound):
			fail(c, http.StatusNotFound, "order not found")
		default:
			h.logger.Error("failed to update order status", zap.Error(err))
			fail(c, http.StatusInternalServerError, "failed to update status")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// RevenueChart feeds the dashboard line chart.
func (h *Handler) RevenueChart(c *gin.Context) {
	days, _ := strconv.Atoi(c.DefaultQuery("days", "7"))

	data, err := h.orders.RevenueByDate(c.Request.Context(), days)
	if err != nil {
		h.logger.Error("failed to load revenue chart", zap.Error(err))
		fail(c, http.StatusInternalServerError, "failed to load chart data")
		return
	}

	labels := make([]string, len(data))
	values := make([]float64, len(data))
	for i, row := range data {
		labels[i] = row.Date
		values[i] = row.Revenue
	}
	c.JSON(http.StatusOK, gin.H{"labels": labels, "data": values})
}

// MonthlyRevenueChart is the month-bucketed variant of RevenueChart.
func (h *Handler) MonthlyRevenueChart(c *gin.Context) {
	months, _ := strconv.Atoi(c.DefaultQuery("months", "6"))

	data, err := h.orders.RevenueByMonth(c.Request.Context(), months)
	if err != nil {
		h.logger.Error("failed to load monthly revenue chart", zap.Error(err))
		fail(c, http.StatusInternalServerError, "failed to load chart data")
		return
	}

	labels := make([]string, len(data))
	values := make([]float64, len(data))
	for i, row := range data {
		labels[i] = row.Month
		values[i] = row.Revenue
	}
	c.JSON(http.StatusOK, gin.H{"labels": labels, "data": values})
}

// StatusChart feeds the dashboard pie chart.
func (h *Handler) StatusChart(c *gin.Context) {
	data, err := h.orders.StatusBreakdown(c.Request.Context())
	if err != nil {
		h.logger.Error("failed to load status chart", zap.Error(err))
		fail(c, http.StatusInternalServerError, "failed to load chart data")
		return
	}

	labels := make([]string, len(data))
	values := make([]int, len(data))
	for i, row := range data {
		labels[i] = row.Status
		values[i] = row.Count
	}
	c.JSON(http.StatusOK, gin.H{"labels": labels, "data": values})
}

// TopProductsChart feeds the dashboard bar chart.
func (h *Handler) TopProductsChart(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

	data, err := h.orders.TopProducts(c.Request.Context(), limit)
	if err != nil {
		h.logger.Error("failed to load top products chart", zap.Error(err))
		fail(c, http.StatusInternalServerError, "failed to load chart data")
		return
	}

	labels := make([]string, len(data))
	sold := make([]int, len(data))
	revenue := make([]float64, len(data))
	for i, row := range data {
		labels[i] = row.Name
		sold[i] = row.TotalSold
		revenue[i] = row.Revenue
	}
	c.JSON(http.StatusOK, gin.H{"labels": labels, "data": sold, "revenue": revenue})
}

// ListReviews lets the back office inspect all reviews with the aggregate
// rating statistics alongside.
func (h *Handler) ListReviews(c *gin.Context) {
	reviews, err := h.reviews.ListAll(c.Request.Context())
	if err != nil {
		h.logger.Error("failed to list reviews", zap.Error(err))
		fail(c, http.StatusInternalServerError, "failed to load reviews")
		return
	}

	stats, err := h.reviews.Statistics(c.Request.Context())
	if err != nil {
		h.logger.Error("failed to load review statistics", zap.Error(err))
		fail(c, http.StatusInternalServerError, "failed to load review statistics")
		return
	}

	c.JSON(http.StatusOK, gin.H{"reviews": reviews, "stats": stats})
}

func (h *Handler) DeleteReview(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := h.reviews.DeleteReview(c.Request.Context(), id); err != nil {
		h.logger.Error("failed to delete review", zap.Error(err))
		fail(c, http.StatusInternalServerError, "failed to delete review")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
