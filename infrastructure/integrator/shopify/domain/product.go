package domain

// ProductPayload é o corpo aceito pela Admin API do Shopify na criação
// de produtos
type ProductPayload struct {
	Product ProductBody `json:"product"`
}

type ProductBody struct {
	Title       string    `json:"title"`
	BodyHTML    string    `json:"body_html,omitempty"`
	ProductType string    `json:"product_type,omitempty"`
	Status      string    `json:"status,omitempty"`
	Variants    []Variant `json:"variants,omitempty"`
}

type Variant struct {
	Price string `json:"price,omitempty"`
}

// ProductResponse é a resposta da Admin API na criação de produtos
type ProductResponse struct {
	Product CreatedProduct `json:"product"`
}

type CreatedProduct struct {
	ID     int64  `json:"id"`
	Title  string `json:"title"`
	Status string `json:"status"`
}
