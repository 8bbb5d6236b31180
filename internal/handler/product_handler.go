package handler

import (
	"errors"
	"net/http"

	"technomaster/internal/model"
	"technomaster/internal/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ProductHandler handles catalog and news requests
type ProductHandler struct {
	service service.ProductService
	logger  *zap.Logger
}

// NewProductHandler creates a new ProductHandler
func NewProductHandler(s service.ProductService, logger *zap.Logger) *ProductHandler {
	return &ProductHandler{service: s, logger: logger}
}

func (h *ProductHandler) ListProducts(c *gin.Context) {
	products, err := h.service.ListProducts(c.Request.Context())
	if err != nil {
		h.logger.Error("failed to list products", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve products"})
		return
	}
	c.JSON(http.StatusOK, products)
}

func (h *ProductHandler) ListNews(c *gin.Context) {
	c.JSON(http.StatusOK, h.service.ListNews())
}

func (h *ProductHandler) CreateProduct(c *gin.Context) {
	var req model.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	product, err := h.service.AddProduct(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCategory) || errors.Is(err, service.ErrInvalidPrice) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		h.logger.Error("failed to create product", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create product"})
		return
	}
	c.JSON(http.StatusCreated, product)
}

func (h *ProductHandler) DeleteProduct(c *gin.Context) {
	if err := h.service.DeleteProduct(c.Request.Context(), c.Param("id")); err != nil {
		h.logger.Error("failed to delete product", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete product"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Product deleted successfully"})
}

func (h *ProductHandler) DescribeProduct(c *gin.Context) {
	var req struct {
		Title    string `json:"title"`
		Category string `json:"category" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	text, err := h.service.DescribeProduct(c.Request.Context(), req.Title, req.Category)
	if err != nil {
		if errors.Is(err, service.ErrTitleRequired) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Iltimos, avval mahsulot nomini kiriting."})
			return
		}
		if errors.Is(err, service.ErrInvalidCategory) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		h.logger.Error("failed to describe product", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to describe product"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"description": text})
}

// RegisterProductRoutes registers catalog routes
func (h *ProductHandler) RegisterProductRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc, adminMW gin.HandlerFunc) {
	rg.GET("/products", h.ListProducts)
	rg.GET("/news", h.ListNews)

	adminRoutes := rg.Group("/admin/products")
	adminRoutes.Use(authMW)
	adminRoutes.Use(adminMW)
	{
		adminRoutes.POST("", h.CreateProduct)
		adminRoutes.DELETE("/:id", h.DeleteProduct)
		adminRoutes.POST("/describe", h.DescribeProduct)
	}
}
