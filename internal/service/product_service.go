package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"technomaster/internal/llm"
	"technomaster/internal/model"
	"technomaster/internal/repository"
	"technomaster/internal/utils"

	"go.uber.org/zap"
)

var (
	ErrInvalidCategory = errors.New("invalid product category")
	ErrInvalidPrice    = errors.New("price must not be negative")
	ErrTitleRequired   = errors.New("product title is required")
)

// ProductService defines catalog operations
type ProductService interface {
	ListProducts(ctx context.Context) ([]model.Product, error)
	AddProduct(ctx context.Context, req model.CreateProductRequest) (*model.Product, error)
	DeleteProduct(ctx context.Context, id string) error
	DescribeProduct(ctx context.Context, title, category string) (string, error)
	ListNews() []model.NewsPost
}

type productService struct {
	productRepo repository.ProductRepository
	newsRepo    *repository.NewsRepository
	describer   llm.Describer
	logger      *zap.Logger
}

// NewProductService creates a new ProductService
func NewProductService(
	productRepo repository.ProductRepository,
	newsRepo *repository.NewsRepository,
	describer llm.Describer,
	logger *zap.Logger,
) ProductService {
	return &productService{
		productRepo: productRepo,
		newsRepo:    newsRepo,
		describer:   describer,
		logger:      logger,
	}
}

func (s *productService) ListProducts(ctx context.Context) ([]model.Product, error) {
	products, err := s.productRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	return products, nil
}

// AddProduct validates the request and prepends a new product to the catalog
func (s *productService) AddProduct(ctx context.Context, req model.CreateProductRequest) (*model.Product, error) {
	category, err := model.ParseCategory(req.Category)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidCategory, err)
	}
	if req.Price < 0 {
		return nil, ErrInvalidPrice
	}

	imageURL := req.ImageURL
	if imageURL == "" {
		imageURL = fmt.Sprintf("https://picsum.photos/400/300?random=%d", time.Now().UnixMilli())
	}

	product := &model.Product{
		ID:          utils.NewID(),
		Title:       req.Title,
		Description: req.Description,
		Price:       req.Price,
		ImageURL:    imageURL,
		Category:    category,
	}
	if err := s.productRepo.Add(ctx, product); err != nil {
		return nil, fmt.Errorf("failed to create product in repo: %w", err)
	}
	s.logger.Info("product added", zap.String("product_id", product.ID), zap.String("category", string(category)))
	return product, nil
}

// DeleteProduct removes a product; unknown ids are ignored
func (s *productService) DeleteProduct(ctx context.Context, id string) error {
	if err := s.productRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete product in repo: %w", err)
	}
	s.logger.Info("product deleted", zap.String("product_id", id))
	return nil
}

// DescribeProduct asks the describer for marketing copy. Generator failures
// come back as the fallback text, never as an error.
func (s *productService) DescribeProduct(ctx context.Context, title, category string) (string, error) {
	if strings.TrimSpace(title) == "" {
		return "", ErrTitleRequired
	}
	c, err := model.ParseCategory(category)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidCategory, err)
	}
	return s.describer.Describe(ctx, title, c), nil
}

func (s *productService) ListNews() []model.NewsPost {
	return s.newsRepo.List()
}
