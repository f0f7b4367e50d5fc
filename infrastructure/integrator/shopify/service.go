// Package shopify integra o catálogo da Zyra com a Admin API do Shopify
package shopify

import (
	"strconv"

	"github.com/pkg/errors"
	shopifydomain "github.com/zyra-app/zyra-api/infrastructure/integrator/shopify/domain"
	"github.com/zyra-app/zyra-api/infrastructure/integrator/shopify/shopifyclient"
	"github.com/zyra-app/zyra-api/internal/config"
	"github.com/zyra-app/zyra-api/internal/domain"
	"github.com/zyra-app/zyra-api/pkg/log"
)

//go:generate mockgen -source=service.go -destination=mocks/service.go -package=mocks

// PublishResult identifica o produto criado na loja Shopify
type PublishResult struct {
	ShopifyID int64  `json:"shopify_id"`
	Status    string `json:"status"`
}

type ShopifyIntegrator interface {
	PublishProduct(product *domain.Product) (*PublishResult, error)
}

type Service struct {
	config *config.Config
	client shopifyclient.Client
}

func New(cfg *config.Config, client shopifyclient.Client) ShopifyIntegrator {
	return &Service{
		config: cfg,
		client: client,
	}
}

// PublishProduct cria o produto na loja Shopify configurada
func (s *Service) PublishProduct(product *domain.Product) (*PublishResult, error) {
	payload := shopifydomain.ProductPayload{
		Product: shopifydomain.ProductBody{
			Title:  product.Name,
			Status: shopifyStatus(product.Status),
		},
	}

	if product.Category != nil {
		payload.Product.ProductType = *product.Category
	}

	if product.Price != nil {
		payload.Product.Variants = []shopifydomain.Variant{
			{Price: strconv.FormatFloat(*product.Price, 'f', 2, 64)},
		}
	}

	response, err := s.client.CreateProduct(payload)
	if err != nil {
		return nil, errors.Wrapf(err, "erro ao publicar o produto %s no Shopify", product.ID)
	}

	log.L.WithFields(log.Fields{
		"product_id": product.ID,
		"shopify_id": response.Product.ID,
		"shop":       s.config.Shopify.ShopDomain,
	}).Info("shopify: produto publicado")

	return &PublishResult{
		ShopifyID: response.Product.ID,
		Status:    response.Product.Status,
	}, nil
}

// shopifyStatus traduz o status do catálogo para o vocabulário do Shopify
func shopifyStatus(status domain.ProductStatus) string {
	switch status {
	case domain.ProductStatusActive:
		return "active"
	case domain.ProductStatusArchived:
		return "archived"
	default:
		return "draft"
	}
}
