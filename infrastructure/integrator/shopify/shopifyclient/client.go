package shopifyclient

import (
	"net/http"
	"time"

	shopifydomain "github.com/zyra-app/zyra-api/infrastructure/integrator/shopify/domain"
	"github.com/zyra-app/zyra-api/internal/config"
)

type Client interface {
	CreateProduct(payload shopifydomain.ProductPayload) (*shopifydomain.ProductResponse, error)
}

type ShopifyClient struct {
	httpClient *http.Client
	config     *config.Config

	// baseURL sobrepõe o domínio da loja nos testes
	baseURL string
}

// NewClient cria uma nova instância do cliente da Admin API do Shopify
func NewClient(cfg *config.Config) Client {
	return &ShopifyClient{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		config: cfg,
	}
}
