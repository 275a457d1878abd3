package product_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"gotienda/internal/api/product"
	"gotienda/internal/domain"
	apperror "gotienda/internal/errors"
	"gotienda/internal/pkg/logger"
)

// MockProductService é uma implementação mock da interface ProductService
type MockProductService struct {
	mock.Mock
}

func (m *MockProductService) CreateProduct(ctx context.Context, in domain.ProductInput) (domain.Product, error) {
	args := m.Called(ctx, in)
	return args.Get(0).(domain.Product), args.Error(1)
}

func (m *MockProductService) GetProductByID(ctx context.Context, id string) (domain.Product, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Product), args.Error(1)
}

func (m *MockProductService) ListProducts(ctx context.Context, filter domain.ProductFilter) ([]domain.Product, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]domain.Product), args.Error(1)
}

func (m *MockProductService) LowStock(ctx context.Context, threshold int) ([]domain.Product, error) {
	args := m.Called(ctx, threshold)
	return args.Get(0).([]domain.Product), args.Error(1)
}

func (m *MockProductService) UpdateProduct(ctx context.Context, id string, in domain.ProductInput) (domain.Product, error) {
	args := m.Called(ctx, id, in)
	return args.Get(0).(domain.Product), args.Error(1)
}

func (m *MockProductService) DeleteProduct(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func newRouter(svc *MockProductService) http.Handler {
	r := chi.NewRouter()
	r.Route("/v1/products", product.NewHandler(svc, logger.NewNop()).Routes)
	return r
}

func do(router http.Handler, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestCreateProductHandler(t *testing.T) {
	svc := new(MockProductService)
	svc.On("CreateProduct", mock.Anything, mock.MatchedBy(func(in domain.ProductInput) bool {
		return in.Name == "Buzo" && in.SalePrice == 20
	})).Return(domain.Product{ID: "p1", Code: "P00001"}, nil)

	rec := do(newRouter(svc), http.MethodPost, "/v1/products",
		`{"name":"Buzo","category":"Buzos","size":"L","color":"Gris","cost_price":10,"sale_price":20,"stock":3}`)

	assert.Equal(t, http.StatusCreated, rec.Code)
	var got domain.Product
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "P00001", got.Code)
}

func TestCreateProductHandler_MalformedJSON(t *testing.T) {
	svc := new(MockProductService)

	rec := do(newRouter(svc), http.MethodPost, "/v1/products", `{"name":`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	svc.AssertNotCalled(t, "CreateProduct", mock.Anything, mock.Anything)
}

func TestListProductsHandler_PassesFilter(t *testing.T) {
	svc := new(MockProductService)
	svc.On("ListProducts", mock.Anything, domain.ProductFilter{Search: "negro", Size: "M", OrderBy: "name"}).
		Return([]domain.Product{{ID: "p1"}}, nil)

	rec := do(newRouter(svc), http.MethodGet, "/v1/products?search=negro&size=M&order_by=name", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	svc.AssertExpectations(t)
}

func TestLowStockHandler(t *testing.T) {
	svc := new(MockProductService)
	svc.On("LowStock", mock.Anything, -1).Return([]domain.Product{}, nil)
	svc.On("LowStock", mock.Anything, 3).Return([]domain.Product{{ID: "p1", Stock: 1}}, nil)

	assert.Equal(t, http.StatusOK, do(newRouter(svc), http.MethodGet, "/v1/products/low-stock", "").Code)
	assert.Equal(t, http.StatusOK, do(newRouter(svc), http.MethodGet, "/v1/products/low-stock?threshold=3", "").Code)
	assert.Equal(t, http.StatusBadRequest, do(newRouter(svc), http.MethodGet, "/v1/products/low-stock?threshold=x", "").Code)
	svc.AssertExpectations(t)
}

func TestGetProductByIDHandler_NotFound(t *testing.T) {
	svc := new(MockProductService)
	svc.On("GetProductByID", mock.Anything, "abc").Return(domain.Product{}, apperror.NewNotFoundError("produto"))

	rec := do(newRouter(svc), http.MethodGet, "/v1/products/abc", "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	var body domain.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "NOT_FOUND", body.Category)
}

func TestDeleteProductHandler_Conflict(t *testing.T) {
	svc := new(MockProductService)
	svc.On("DeleteProduct", mock.Anything, "p1").Return(apperror.NewConflictError("tem vendas"))

	rec := do(newRouter(svc), http.MethodDelete, "/v1/products/p1", "")

	assert.Equal(t, http.StatusConflict, rec.Code)
}
