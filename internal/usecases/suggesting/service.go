// Package suggesting gera sugestões de merchandising para produtos.
// A implementação atual é determinística e local; um provedor real de
// IA entra por trás da mesma interface sem mudar o contrato.
package suggesting

import (
	"fmt"
	"strings"

	"github.com/zyra-app/zyra-api/internal/domain"
)

// Suggestion é uma sugestão de otimização para um produto
type Suggestion struct {
	Field   string `json:"field"`
	Current string `json:"current,omitempty"`
	Value   string `json:"value"`
	Reason  string `json:"reason"`
}

type SuggestionService interface {
	SuggestForProduct(product *domain.Product) []Suggestion
}

type Service struct{}

func NewService() SuggestionService {
	return &Service{}
}

// SuggestForProduct monta sugestões de título, descrição e palavras-chave
// a partir dos dados atuais do produto
func (s *Service) SuggestForProduct(product *domain.Product) []Suggestion {
	suggestions := make([]Suggestion, 0, 3)

	category := "products"
	if product.Category != nil && *product.Category != "" {
		category = strings.ToLower(*product.Category)
	}

	suggestions = append(suggestions, Suggestion{
		Field:   "title",
		Current: product.Name,
		Value:   fmt.Sprintf("%s | Premium %s", product.Name, titleCase(category)),
		Reason:  "Títulos com a categoria tendem a ranquear melhor em buscas de cauda longa",
	})

	suggestions = append(suggestions, Suggestion{
		Field:  "description",
		Value:  fmt.Sprintf("Discover %s, a standout choice in our %s collection. Crafted for quality and built to last.", product.Name, category),
		Reason: "Descrições entre 150 e 160 caracteres aproveitam todo o snippet de busca",
	})

	keywords := []string{
		strings.ToLower(product.Name),
		category,
		fmt.Sprintf("buy %s online", strings.ToLower(product.Name)),
	}
	suggestions = append(suggestions, Suggestion{
		Field:  "keywords",
		Value:  strings.Join(keywords, ", "),
		Reason: "Palavras-chave transacionais atraem visitantes com intenção de compra",
	})

	return suggestions
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
