package shopifyclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	shopifydomain "github.com/zyra-app/zyra-api/infrastructure/integrator/shopify/domain"
)

func (c *ShopifyClient) CreateProduct(payload shopifydomain.ProductPayload) (*shopifydomain.ProductResponse, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 45*time.Second)
	defer cancel()

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("erro ao serializar o produto: %w", err)
	}

	endpoint := fmt.Sprintf(
		"%s/admin/api/%s/products.json",
		c.shopBaseURL(),
		c.config.Shopify.APIVersion,
	)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("erro ao criar a requisição: %w", err)
	}

	req.Header.Set("X-Shopify-Access-Token", c.config.Shopify.AccessToken)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a requisição: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated && resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("requisição ao Shopify falhou com status: %s", resp.Status)
	}

	var response shopifydomain.ProductResponse
	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		return nil, fmt.Errorf("erro ao decodificar a resposta: %w", err)
	}

	return &response, nil
}

func (c *ShopifyClient) shopBaseURL() string {
	if c.baseURL != "" {
		return c.baseURL
	}
	return "https://" + c.config.Shopify.ShopDomain
}
