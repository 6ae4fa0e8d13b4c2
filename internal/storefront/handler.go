package storefront

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/hnthao/foodorder/internal/cart"
	"github.com/hnthao/foodorder/internal/order"
	orderdto "github.com/hnthao/foodorder/internal/order/dto"
	"github.com/hnthao/foodorder/internal/product"
	productdto "github.com/hnthao/foodorder/internal/product/dto"
	"github.com/hnthao/foodorder/internal/review"
	reviewdto "github.com/hnthao/foodorder/internal/review/dto"
	"go.uber.org/zap"
)

const sessionKeyCart = "cart"

type Handler struct {
	products product.UseCase
	orders   order.UseCase
	reviews  review.UseCase
	pricing  cart.Pricing
	logger   *zap.Logger
}

func NewHandler(products product.UseCase, orders order.UseCase, reviews review.UseCase, pricing cart.Pricing, log *zap.Logger) *Handler {
	return &Handler{
		products: products,
		orders:   orders,
		reviews:  reviews,
		pricing:  pricing,
		logger:   log,
	}
}

func (h *Handler) loadCart(c *gin.Context) cart.Cart {
	raw, _ := sessions.Default(c).Get(sessionKeyCart).(string)
	return cart.Decode(raw)
}

func (h *Handler) saveCart(c *gin.Context, ct cart.Cart) {
	session := sessions.Default(c)
	if ct.Empty() {
		session.Delete(sessionKeyCart)
	} else {
		session.Set(sessionKeyCart, ct.Encode())
	}
	if err := session.Save(); err != nil {
		h.logger.Error("failed to save session cart", zap.Error(err))
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

// Home returns the eight newest available products, the category list and
// the three most recent reviews.
func (h *Handler) Home(c *gin.Context) {
	products, err := h.products.ListProducts(c.Request.Context(), &productdto.ProductFilters{})
	if err != nil {
		h.logger.Error("failed to list products", zap.Error(err))
		fail(c, http.StatusInternalServerError, "failed to load products")
		return
	}
	if len(products) > 8 {
		products = products[:8]
	}

	categories, err := h.products.Categories(c.Request.Context())
	if err != nil {
		h.logger.Error("failed to list categories", zap.Error(err))
		fail(c, http.StatusInternalServerError, "failed to load categories")
		return
	}

	recentReviews, err := h.reviews.ListRecent(c.Request.Context(), 3)
	if err != nil {
		h.logger.Error("failed to load recent reviews", zap.Error(err))
		recentReviews = nil
	}

	c.JSON(http.StatusOK, gin.H{
		"products":       products,
		"categories":     categories,
		"recent_reviews": recentReviews,
	})
}

// Menu lists available products, optionally narrowed by search or category.
// Search wins when both are given, matching the storefront's behavior.
func (h *Handler) Menu(c *gin.Context) {
	filters := &productdto.ProductFilters{}
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

	c.JSON(http.StatusOK, gin.H{
		"products":          products,
		"categories":        categories,
		"selected_category": c.Query("category"),
		"search_query":      c.Query("search"),
	})
}

func (h *Handler) ProductDetail(c *gin.Context) {
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

	related, err := h.products.RelatedProducts(c.Request.Context(), p, 4)
	if err != nil {
		h.logger.Error("failed to load related products", zap.Error(err))
		related = nil
	}

	rating, err := h.reviews.AverageRating(c.Request.Context(), id)
	if err != nil {
		h.logger.Error("failed to load rating", zap.Error(err))
		rating = &reviewdto.RatingInfo{}
	}

	c.JSON(http.StatusOK, gin.H{
		"product":          p,
		"related_products": related,
		"rating":           rating,
	})
}

type addToCartRequest struct {
	ProductID int64 `json:"product_id" form:"product_id"`
	Quantity  int   `json:"quantity" form:"quantity"`
}

func (h *Handler) AddToCart(c *gin.Context) {
	var req addToCartRequest
	if err := c.ShouldBind(&req); err != nil {
		fail(c, http.StatusBadRequest, "invalid request")
		return
	}
	if req.Quantity == 0 {
		req.Quantity = 1
	}
	if req.Quantity < 0 {
		fail(c, http.StatusBadRequest, "quantity must be positive")
		return
	}

	p, err := h.products.GetProduct(c.Request.Context(), req.ProductID)
	if err != nil {
		if errors.Is(err, product.ErrNotFound) {
			fail(c, http.StatusNotFound, "product not found")
			return
		}
		h.logger.Error("failed to get product", zap.Error(err))
		fail(c, http.StatusInternalServerError, "failed to add to cart")
		return
	}

	ct := h.loadCart(c)
	ct.Add(p, req.Quantity)
	h.saveCart(c, ct)

	c.JSON(http.StatusOK, gin.H{
		"success":     true,
		"message":     "added to cart",
		"cart_count":  len(ct.Items),
		"total_items": ct.TotalQuantity(),
	})
}

func (h *Handler) ViewCart(c *gin.Context) {
	ct := h.loadCart(c)
	c.JSON(http.StatusOK, gin.H{
		"items":   ct.Items,
		"summary": ct.Summarize(h.pricing),
	})
}

type updateCartRequest struct {
	ProductID int64  `json:"product_id" form:"product_id"`
	Action    string `json:"action" form:"action"`
}

func (h *Handler) UpdateCart(c *gin.Context) {
	var req updateCartRequest
	if err := c.ShouldBind(&req); err != nil {
		fail(c, http.StatusBadRequest, "invalid request")
		return
	}

	action := cart.Action(req.Action)
	if !action.Valid() {
		fail(c, http.StatusBadRequest, "invalid cart action")
		return
	}

	ct := h.loadCart(c)
	ct.Apply(req.ProductID, action)
	h.saveCart(c, ct)

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"items":   ct.Items,
		"summary": ct.Summarize(h.pricing),
	})
}

func (h *Handler) ClearCart(c *gin.Context) {
	ct := h.loadCart(c)
	ct.Clear()
	h.saveCart(c, ct)
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// CheckoutSummary mirrors ViewCart but rejects empty carts, so the client
// can render the checkout form only when there is something to order.
func (h *Handler) CheckoutSummary(c *gin.Context) {
	ct := h.loadCart(c)
	if ct.Empty() {
		fail(c, http.StatusBadRequest, "cart is empty")
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"items":   ct.Items,
		"summary": ct.Summarize(h.pricing),
	})
}

type checkoutRequest struct {
	CustomerName    string `json:"customer_name" form:"customer_name"`
	CustomerPhone   string `json:"customer_phone" form:"customer_phone"`
	CustomerAddress string `json:"customer_address" form:"customer_address"`
}

// Checkout creates the order from the session cart and clears the cart only
// after the order is persisted.
func (h *Handler) Checkout(c *gin.Context) {
	var req checkoutRequest
	if err := c.ShouldBind(&req); err != nil {
		fail(c, http.StatusBadRequest, "invalid request")
		return
	}

	ct := h.loadCart(c)
	orderID, err := h.orders.Checkout(c.Request.Context(), &orderdto.CheckoutInput{
		CustomerName:    req.CustomerName,
		CustomerPhone:   req.CustomerPhone,
		CustomerAddress: req.CustomerAddress,
		Items:           ct.Items,
	})
	if err != nil {
		switch {
		case errors.Is(err, order.ErrEmptyCart):
			fail(c, http.StatusBadRequest, "cart is empty")
		case errors.Is(err, order.ErrInvalidInput):
			fail(c, http.StatusBadRequest, err.Error())
		default:
			h.logger.Error("checkout failed", zap.Error(err))
			fail(c, http.StatusInternalServerError, "checkout failed")
		}
		return
	}

	ct.Clear()
	h.saveCart(c, ct)

	c.JSON(http.StatusCreated, gin.H{"success": true, "order_id": orderID})
}

// OrderConfirmation backs the post-checkout success view.
func (h *Handler) OrderConfirmation(c *gin.Context) {
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

type createReviewRequest struct {
	ProductID    int64  `json:"product_id" form:"product_id"`
	OrderID      *int64 `json:"order_id" form:"order_id"`
	CustomerName string `json:"customer_name" form:"customer_name"`
	Rating       int    `json:"rating" form:"rating"`
	Comment      string `json:"comment" form:"comment"`
}

func (h *Handler) CreateReview(c *gin.Context) {
	var req createReviewRequest
	if err := c.ShouldBind(&req); err != nil {
		fail(c, http.StatusBadRequest, "invalid request")
		return
	}

	_, err := h.reviews.CreateReview(c.Request.Context(), &reviewdto.CreateReviewInput{
		ProductID:    req.ProductID,
		OrderID:      req.OrderID,
		CustomerName: req.CustomerName,
		Rating:       req.Rating,
		Comment:      req.Comment,
	})
	if err != nil {
		if errors.Is(err, review.ErrInvalidRating) || errors.Is(err, review.ErrInvalidInput) {
			fail(c, http.StatusBadRequest, err.Error())
			return
		}
		h.logger.Error("failed to create review", zap.Error(err))
		fail(c, http.StatusInternalServerError, "failed to create review")
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "message": "thank you for your review"})
}

func (h *Handler) ListReviews(c *gin.Context) {
	reviews, err := h.reviews.ListAll(c.Request.Context())
	if err != nil {
		h.logger.Error("failed to list reviews", zap.Error(err))
		fail(c, http.StatusInternalServerError, "failed to load reviews")
		return
	}
	c.JSON(http.StatusOK, gin.H{"reviews": reviews})
}

func (h *Handler) ProductRating(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	rating, err := h.reviews.AverageRating(c.Request.Context(), id)
	if err != nil {
		h.logger.Error("failed to load rating", zap.Error(err))
		fail(c, http.StatusInternalServerError, "failed to load rating")
		return
	}
	c.JSON(http.StatusOK, rating)
}

func (h *Handler) ProductReviews(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	reviews, err := h.reviews.ListByProduct(c.Request.Context(), id)
	if err != nil {
		h.logger.Error("failed to list product reviews", zap.Error(err))
		fail(c, http.StatusInternalServerError, "failed to load reviews")
		return
	}
	c.JSON(http.StatusOK, reviews)
}
