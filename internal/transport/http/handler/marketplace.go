package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/meli-labs/seller-dashboard/internal/marketplace"
)

// MarketplaceHandler serves the protected dashboard endpoints. All data
// is synthetic (see internal/marketplace); the handlers only shape the
// HTTP surface the frontend consumes.
type MarketplaceHandler struct {
	api      *marketplace.Client
	snapshot *marketplace.Snapshot
	logger   *slog.Logger
}

func NewMarketplaceHandler(api *marketplace.Client, snapshot *marketplace.Snapshot, logger *slog.Logger) *MarketplaceHandler {
	return &MarketplaceHandler{
		api:      api,
		snapshot: snapshot,
		logger:   logger.With("component", "marketplace_handler"),
	}
}

// GET /api/cd-data
func (h *MarketplaceHandler) CDData(c *gin.Context) {
	c.JSON(http.StatusOK, h.snapshot.Data())
}

// GET /api/products
func (h *MarketplaceHandler) CDProducts(c *gin.Context) {
	c.JSON(http.StatusOK, h.snapshot.Products())
}

// GET /api/metrics
func (h *MarketplaceHandler) CDMetrics(c *gin.Context) {
	c.JSON(http.StatusOK, h.snapshot.Metrics())
}

// GET /api/mercadolivre/user
func (h *MarketplaceHandler) UserInfo(c *gin.Context) {
	c.JSON(http.StatusOK, h.api.UserInfo())
}

// GET /api/mercadolivre/products?limit=&offset=
func (h *MarketplaceHandler) Products(c *gin.Context) {
	limit, offset := pagination(c, 50)
	c.JSON(http.StatusOK, h.api.Products(limit, offset))
}

// GET /api/mercadolivre/orders?limit=&offset=
func (h *MarketplaceHandler) Orders(c *gin.Context) {
	limit, offset := pagination(c, 50)
	c.JSON(http.StatusOK, h.api.Orders(limit, offset))
}

// GET /api/mercadolivre/metrics
func (h *MarketplaceHandler) SalesMetrics(c *gin.Context) {
	c.JSON(http.StatusOK, h.api.SalesMetrics())
}

// GET /api/mercadolivre/questions?limit=
func (h *MarketplaceHandler) Questions(c *gin.Context) {
	limit := intQuery(c, "limit", 20)
	c.JSON(http.StatusOK, h.api.Questions(limit))
}

// GET /api/mercadolivre/notifications
func (h *MarketplaceHandler) Notifications(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"notifications": h.api.Notifications()})
}

// GET /api/mercadolivre/analytics
func (h *MarketplaceHandler) Analytics(c *gin.Context) {
	c.JSON(http.StatusOK, h.api.Analytics())
}

// GET /api/mercadolivre/shipping/:orderID
func (h *MarketplaceHandler) Shipping(c *gin.Context) {
	c.JSON(http.StatusOK, h.api.ShippingInfo(c.Param("orderID")))
}

type stockUpdateRequest struct {
	Quantity int `json:"quantity" binding:"min=0"`
}

// PUT /api/mercadolivre/products/:productID/stock
func (h *MarketplaceHandler) UpdateStock(c *gin.Context) {
	var req stockUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, h.api.UpdateStock(c.Param("productID"), req.Quantity))
}

func pagination(c *gin.Context, defaultLimit int) (limit, offset int) {
	return intQuery(c, "limit", defaultLimit), intQuery(c, "offset", 0)
}

func intQuery(c *gin.Context, name string, fallback int) int {
	raw := c.Query(name)
	if raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return v
}
