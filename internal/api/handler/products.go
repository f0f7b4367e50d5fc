package handler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/zyra-app/zyra-api/internal/domain"
	"github.com/zyra-app/zyra-api/internal/usecases/catalog"
	"github.com/zyra-app/zyra-api/internal/usecases/suggesting"
	"github.com/zyra-app/zyra-api/pkg/apiErrors"
)

// Limite de upload para importação de catálogo via CSV (5 MB)
const maxImportBodySize = 5 << 20

func ListProducts(service catalog.CatalogService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		products, err := service.ListProducts()
		if err != nil {
			logrus.Error("Erro ao listar produtos:", err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao consultar produtos no banco de dados", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")

		if err := json.NewEncoder(w).Encode(products); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	})
}

func GetProduct(service catalog.CatalogService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		productID := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if productID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID do produto não informado", nil)
			return
		}

		product, err := service.GetProduct(productID)
		if err != nil {
			if errors.Is(err, catalog.ErrProductNotFound) {
				apiErrors.WriteError(w, apiErrors.ErrResourceNotFound, "Produto não encontrado", nil)
				return
			}

			logrus.Error("Erro ao buscar produto:", err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao consultar produto no banco de dados", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")

		if err := json.NewEncoder(w).Encode(product); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	})
}

func CreateProduct(service catalog.CatalogService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req domain.CreateProductRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Corpo da requisição inválido", nil)
			return
		}

		product, err := service.CreateProduct(&req)
		if err != nil {
			switch {
			case errors.Is(err, catalog.ErrMissingName):
				apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "O nome do produto é obrigatório", nil)

			case errors.Is(err, catalog.ErrInvalidStatus):
				apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Status de produto inválido. Valores aceitos: active, draft, archived", nil)

			default:
				logrus.Error("Erro ao criar produto:", err)
				apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao gravar produto no banco de dados", nil)
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)

		if err := json.NewEncoder(w).Encode(product); err != nil {
			logrus.Error("Erro ao codificar resposta de criação de produto:", err)
		}
	})
}

func UpdateProduct(service catalog.CatalogService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		productID := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if productID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID do produto não informado", nil)
			return
		}

		var req domain.UpdateProductRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Corpo da requisição inválido", nil)
			return
		}
		req.ID = productID

		product, err := service.UpdateProduct(&req)
		if err != nil {
			switch {
			case errors.Is(err, catalog.ErrProductNotFound):
				apiErrors.WriteError(w, apiErrors.ErrResourceNotFound, "Produto não encontrado", nil)

			case errors.Is(err, catalog.ErrInvalidStatus):
				apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Status de produto inválido. Valores aceitos: active, draft, archived", nil)

			default:
				logrus.Error("Erro ao atualizar produto:", err)
				apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao atualizar produto no banco de dados", nil)
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")

		if err := json.NewEncoder(w).Encode(product); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	})
}

func DeleteProduct(service catalog.CatalogService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		productID := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if productID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID do produto não informado", nil)
			return
		}

		if err := service.DeleteProduct(productID); err != nil {
			if errors.Is(err, catalog.ErrProductNotFound) {
				apiErrors.WriteError(w, apiErrors.ErrResourceNotFound, "Produto não encontrado", nil)
				return
			}

			logrus.Error("Erro ao remover produto:", err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao remover produto do banco de dados", nil)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	})
}

// PublishProduct publica um produto no Shopify e grava o ID externo retornado
func PublishProduct(service catalog.CatalogService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - PublishProduct")

		productID := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if productID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID do produto não informado", nil)
			return
		}

		product, err := service.PublishToShopify(productID)
		if err != nil {
			switch {
			case errors.Is(err, catalog.ErrProductNotFound):
				apiErrors.WriteError(w, apiErrors.ErrResourceNotFound, "Produto não encontrado", nil)

			case errors.Is(err, catalog.ErrAlreadyPublished):
				apiErrors.WriteError(w, apiErrors.ErrResourceConflict, "Produto já publicado no Shopify", nil)

			default:
				logrus.Error("Erro ao publicar produto no Shopify:", err)
				apiErrors.WriteError(w, apiErrors.ErrExternalService, "Erro ao publicar produto no Shopify", nil)
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")

		if err := json.NewEncoder(w).Encode(product); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	})
}

func GetProductSuggestions(service catalog.CatalogService, suggester suggesting.SuggestionService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		productID := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if productID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID do produto não informado", nil)
			return
		}

		product, err := service.GetProduct(productID)
		if err != nil {
			if errors.Is(err, catalog.ErrProductNotFound) {
				apiErrors.WriteError(w, apiErrors.ErrResourceNotFound, "Produto não encontrado", nil)
				return
			}

			logrus.Error("Erro ao buscar produto para sugestões:", err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao consultar produto no banco de dados", nil)
			return
		}

		suggestions := suggester.SuggestForProduct(product)

		w.Header().Set("Content-Type", "application/json")

		if err := json.NewEncoder(w).Encode(suggestions); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	})
}

// ImportProductsCSV importa produtos a partir de um arquivo CSV enviado no corpo
func ImportProductsCSV(service catalog.CatalogService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - ImportProductsCSV")

		body, err := io.ReadAll(io.LimitReader(r.Body, maxImportBodySize))
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao ler o corpo da requisição", nil)
			return
		}

		if len(body) == 0 {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Arquivo CSV não informado", nil)
			return
		}

		result, err := service.ImportCSV(body)
		if err != nil {
			logrus.Error("Erro ao importar produtos:", err)
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Erro ao processar o arquivo CSV", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")

		if err := json.NewEncoder(w).Encode(result); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	})
}

// ExportProductsCSV exporta o catálogo completo em CSV
func ExportProductsCSV(service catalog.CatalogService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		data, err := service.ExportCSV()
		if err != nil {
			logrus.Error("Erro ao exportar catálogo:", err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao exportar catálogo de produtos", nil)
			return
		}

		w.Header().Set("Content-Type", "text/csv; charset=utf-8")
		w.Header().Set("Content-Disposition", `attachment; filename="products.csv"`)

		if _, err := w.Write(data); err != nil {
			logrus.Error("Erro ao enviar arquivo CSV do catálogo:", err)
		}
	})
}
