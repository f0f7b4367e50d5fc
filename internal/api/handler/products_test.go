package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zyra-app/zyra-api/internal/api/handler/router"
	"github.com/zyra-app/zyra-api/internal/domain"
	"github.com/zyra-app/zyra-api/internal/usecases/catalog"
	catalogmocks "github.com/zyra-app/zyra-api/internal/usecases/catalog/mocks"
	"github.com/zyra-app/zyra-api/internal/usecases/suggesting"
	"go.uber.org/mock/gomock"
)

func newProductsRouter(service catalog.CatalogService) router.Router {
	return router.New(router.WithRoutes(Products(service, suggesting.NewService())...))
}

func TestCreateProduct(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		setup          func(service *catalogmocks.MockCatalogService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "Criação com sucesso",
			body: `{"name":"Organic Cotton T-Shirt","status":"active"}`,
			setup: func(service *catalogmocks.MockCatalogService) {
				service.EXPECT().CreateProduct(gomock.Any()).DoAndReturn(
					func(req *domain.CreateProductRequest) (*domain.Product, error) {
						assert.Equal(t, "Organic Cotton T-Shirt", req.Name)
						return &domain.Product{ID: "P1", Name: req.Name, Status: domain.ProductStatusActive}, nil
					})
			},
			expectedStatus: http.StatusCreated,
			expectedBody:   "Organic Cotton T-Shirt",
		},
		{
			name:           "Corpo inválido",
			body:           `{{{`,
			expectedStatus: http.StatusBadRequest,
			expectedBody:   "VAL_003",
		},
		{
			name: "Nome ausente",
			body: `{"category":"Apparel"}`,
			setup: func(service *catalogmocks.MockCatalogService) {
				service.EXPECT().CreateProduct(gomock.Any()).Return(nil, catalog.ErrMissingName)
			},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   "VAL_002",
		},
		{
			name: "Status inválido",
			body: `{"name":"Bamboo Sunglasses","status":"published"}`,
			setup: func(service *catalogmocks.MockCatalogService) {
				service.EXPECT().CreateProduct(gomock.Any()).Return(nil, catalog.ErrInvalidStatus)
			},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   "VAL_001",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)

			service := catalogmocks.NewMockCatalogService(ctrl)
			if tt.setup != nil {
				tt.setup(service)
			}

			recorder := httptest.NewRecorder()
			request := httptest.NewRequest(http.MethodPost, "/v1/products", strings.NewReader(tt.body))

			newProductsRouter(service).ServeHTTP(recorder, request)

			assert.Equal(t, tt.expectedStatus, recorder.Code)
			assert.Contains(t, recorder.Body.String(), tt.expectedBody)
		})
	}
}

func TestGetProduct(t *testing.T) {
	ctrl := gomock.NewController(t)

	service := catalogmocks.NewMockCatalogService(ctrl)
	service.EXPECT().GetProduct("P404").Return(nil, catalog.ErrProductNotFound)

	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodGet, "/v1/products/P404", nil)

	newProductsRouter(service).ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusNotFound, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "RES_001")
}

func TestPublishProduct(t *testing.T) {
	tests := []struct {
		name           string
		setup          func(service *catalogmocks.MockCatalogService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "Publicação com sucesso",
			setup: func(service *catalogmocks.MockCatalogService) {
				shopifyID := int64(880123)
				service.EXPECT().PublishToShopify("P1").Return(&domain.Product{
					ID:        "P1",
					Name:      "Organic Cotton T-Shirt",
					ShopifyID: &shopifyID,
				}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   "880123",
		},
		{
			name: "Produto já publicado",
			setup: func(service *catalogmocks.MockCatalogService) {
				service.EXPECT().PublishToShopify("P1").Return(nil, catalog.ErrAlreadyPublished)
			},
			expectedStatus: http.StatusConflict,
			expectedBody:   "RES_002",
		},
		{
			name: "Falha do Shopify",
			setup: func(service *catalogmocks.MockCatalogService) {
				service.EXPECT().PublishToShopify("P1").Return(nil, assert.AnError)
			},
			expectedStatus: http.StatusBadGateway,
			expectedBody:   "SRV_003",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)

			service := catalogmocks.NewMockCatalogService(ctrl)
			tt.setup(service)

			recorder := httptest.NewRecorder()
			request := httptest.NewRequest(http.MethodPost, "/v1/products/P1/publish", nil)

			newProductsRouter(service).ServeHTTP(recorder, request)

			assert.Equal(t, tt.expectedStatus, recorder.Code)
			assert.Contains(t, recorder.Body.String(), tt.expectedBody)
		})
	}
}

func TestImportProductsCSV(t *testing.T) {
	ctrl := gomock.NewController(t)

	csv := "name,category,price,status,is_optimized\nOrganic Cotton T-Shirt,Apparel,29.90,active,true\n"

	service := catalogmocks.NewMockCatalogService(ctrl)
	service.EXPECT().ImportCSV([]byte(csv)).Return(&domain.ImportResult{
		TotalRows:     1,
		ImportedCount: 1,
		Errors:        []domain.ImportRowError{},
	}, nil)

	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodPost, "/v1/products/import", strings.NewReader(csv))

	newProductsRouter(service).ServeHTTP(recorder, request)

	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), `"imported_count":1`)
}

func TestImportProductsCSV_EmptyBody(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := catalogmocks.NewMockCatalogService(ctrl)

	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodPost, "/v1/products/import", nil)

	newProductsRouter(service).ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "VAL_002")
}

func TestExportProductsCSV(t *testing.T) {
	ctrl := gomock.NewController(t)

	service := catalogmocks.NewMockCatalogService(ctrl)
	service.EXPECT().ExportCSV().Return([]byte("id,name\nP1,Organic Cotton T-Shirt\n"), nil)

	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodGet, "/v1/products/export", nil)

	newProductsRouter(service).ServeHTTP(recorder, request)

	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "text/csv; charset=utf-8", recorder.Header().Get("Content-Type"))
	assert.Equal(t, `attachment; filename="products.csv"`, recorder.Header().Get("Content-Disposition"))
	assert.Contains(t, recorder.Body.String(), "Organic Cotton T-Shirt")
}

func TestGetProductSuggestions(t *testing.T) {
	ctrl := gomock.NewController(t)

	service := catalogmocks.NewMockCatalogService(ctrl)
	service.EXPECT().GetProduct("P1").Return(&domain.Product{ID: "P1", Name: "Organic Cotton T-Shirt"}, nil)

	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodGet, "/v1/products/P1/suggestions", nil)

	newProductsRouter(service).ServeHTTP(recorder, request)

	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), `"field":"title"`)
	assert.Contains(t, recorder.Body.String(), `"field":"keywords"`)
}
