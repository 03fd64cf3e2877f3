package service

import (
	"errors"
	"fmt"

	"glitchmart/models"

	"gorm.io/gorm"
)

// ProductsPerPage is the catalog page size.
const ProductsPerPage = 6

// ErrProductNotFound indicates no catalog row exists for an ID.
var ErrProductNotFound = errors.New("product not found")

// ProductService handles catalog reads
type ProductService struct {
	db *gorm.DB
}

// NewProductService constructs a product service
func NewProductService(db *gorm.DB) *ProductService {
	return &ProductService{db: db}
}

// List returns one catalog page plus the total page count. Pages are
// 1-based; out-of-range pages return an empty slice, not an error.
func (s *ProductService) List(page int) ([]models.Product, int, error) {
	if page <= 0 {
		page = 1
	}

	var total int64
	if err := s.db.Model(&models.Product{}).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count products: %w", err)
	}

	totalPages := int((total + ProductsPerPage - 1) / ProductsPerPage)

	products := make([]models.Product, 0, ProductsPerPage)
	offset := (page - 1) * ProductsPerPage
	if err := s.db.Order("rowid").Offset(offset).Limit(ProductsPerPage).Find(&products).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list products: %w", err)
	}
	return products, totalPages, nil
}

// Get fetches a product by ID
func (s *ProductService) Get(id string) (*models.Product, error) {
	var product models.Product
	if err := s.db.First(&product, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrProductNotFound, id)
		}
		return nil, fmt.Errorf("failed to get product: %w", err)
	}
	return &product, nil
}
