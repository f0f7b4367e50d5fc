package domain

import "time"

type ProductStatus string

const (
	ProductStatusActive   ProductStatus = "active"
	ProductStatusDraft    ProductStatus = "draft"
	ProductStatusArchived ProductStatus = "archived"
)

// Product representa um produto do catálogo da loja
type Product struct {
	ID          string        `json:"id"`
	Name        string        `json:"name"`
	Category    *string       `json:"category,omitempty"`
	Price       *float64      `json:"price,omitempty"`
	Status      ProductStatus `json:"status"`
	IsOptimized bool          `json:"is_optimized"`
	ShopifyID   *int64        `json:"shopify_id,omitempty"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`
}

// CreateProductRequest é o payload de criação de produto
type CreateProductRequest struct {
	Name        string   `json:"name"`
	Category    *string  `json:"category,omitempty"`
	Price       *float64 `json:"price,omitempty"`
	Status      *string  `json:"status,omitempty"`
	IsOptimized *bool    `json:"is_optimized,omitempty"`
}

// UpdateProductRequest é o payload de atualização parcial de produto
type UpdateProductRequest struct {
	ID          string   `json:"-"`
	Name        *string  `json:"name,omitempty"`
	Category    *string  `json:"category,omitempty"`
	Price       *float64 `json:"price,omitempty"`
	Status      *string  `json:"status,omitempty"`
	IsOptimized *bool    `json:"is_optimized,omitempty"`
}

// ValidStatus verifica se o status informado é um dos valores aceitos
func ValidStatus(s string) bool {
	switch ProductStatus(s) {
	case ProductStatusActive, ProductStatusDraft, ProductStatusArchived:
		return true
	}
	return false
}
