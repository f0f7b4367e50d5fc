// Package catalog implementa o gerenciamento do catálogo de produtos
// da loja: CRUD, importação/exportação CSV e publicação no Shopify
package catalog

import (
	"github.com/zyra-app/zyra-api/infrastructure/integrator/shopify"
	"github.com/zyra-app/zyra-api/infrastructure/repository"
	"github.com/zyra-app/zyra-api/internal/domain"
	"github.com/zyra-app/zyra-api/pkg/log"
	"github.com/zyra-app/zyra-api/pkg/utils"
)

//go:generate mockgen -source=service.go -destination=mocks/service.go -package=mocks

type CatalogService interface {
	ListProducts() ([]*domain.Product, error)
	GetProduct(productID string) (*domain.Product, error)
	CreateProduct(req *domain.CreateProductRequest) (*domain.Product, error)
	UpdateProduct(req *domain.UpdateProductRequest) (*domain.Product, error)
	DeleteProduct(productID string) error
	PublishToShopify(productID string) (*domain.Product, error)
	ImportCSV(data []byte) (*domain.ImportResult, error)
	ExportCSV() ([]byte, error)
}

type Service struct {
	productRepo repository.ProductRepository
	publisher   shopify.ShopifyIntegrator
}

func NewService(
	productRepo repository.ProductRepository,
	publisher shopify.ShopifyIntegrator,
) CatalogService {
	return &Service{
		productRepo: productRepo,
		publisher:   publisher,
	}
}

func (s *Service) ListProducts() ([]*domain.Product, error) {
	return s.productRepo.List()
}

func (s *Service) GetProduct(productID string) (*domain.Product, error) {
	product, err := s.productRepo.GetByID(productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrProductNotFound
	}

	return product, nil
}

func (s *Service) CreateProduct(req *domain.CreateProductRequest) (*domain.Product, error) {
	if req.Name == "" {
		return nil, ErrMissingName
	}

	status := domain.ProductStatusDraft
	if req.Status != nil {
		if !domain.ValidStatus(*req.Status) {
			return nil, ErrInvalidStatus
		}
		status = domain.ProductStatus(*req.Status)
	}

	id, err := utils.GenerateID()
	if err != nil {
		return nil, err
	}

	product := &domain.Product{
		ID:       id,
		Name:     req.Name,
		Category: req.Category,
		Price:    req.Price,
		Status:   status,
	}
	if req.IsOptimized != nil {
		product.IsOptimized = *req.IsOptimized
	}

	if err := s.productRepo.Create(product); err != nil {
		return nil, err
	}

	log.L.WithFields(log.Fields{
		"product_id":   product.ID,
		"product_name": product.Name,
	}).Info("catalog: produto criado")

	return product, nil
}

func (s *Service) UpdateProduct(req *domain.UpdateProductRequest) (*domain.Product, error) {
	if req.Status != nil && !domain.ValidStatus(*req.Status) {
		return nil, ErrInvalidStatus
	}
	if req.Name != nil && *req.Name == "" {
		return nil, ErrMissingName
	}

	existing, err := s.productRepo.GetByID(req.ID)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, ErrProductNotFound
	}

	if err := s.productRepo.Update(req); err != nil {
		return nil, err
	}

	return s.productRepo.GetByID(req.ID)
}

func (s *Service) DeleteProduct(productID string) error {
	product, err := s.productRepo.GetByID(productID)
	if err != nil {
		return err
	}
	if product == nil {
		return ErrProductNotFound
	}

	return s.productRepo.Delete(productID)
}

// PublishToShopify publica o produto na loja Shopify configurada e
// vincula o ID externo retornado
func (s *Service) PublishToShopify(productID string) (*domain.Product, error) {
	product, err := s.productRepo.GetByID(productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrProductNotFound
	}
	if product.ShopifyID != nil {
		return nil, ErrAlreadyPublished
	}

	published, err := s.publisher.PublishProduct(product)
	if err != nil {
		return nil, err
	}

	if err := s.productRepo.SetShopifyID(product.ID, published.ShopifyID); err != nil {
		return nil, err
	}

	log.L.WithFields(log.Fields{
		"product_id": product.ID,
		"shopify_id": published.ShopifyID,
	}).Info("catalog: produto publicado no Shopify")

	product.ShopifyID = &published.ShopifyID

	return product, nil
}
