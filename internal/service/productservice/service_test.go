package productservice_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"gotienda/internal/domain"
	apperror "gotienda/internal/errors"
	"gotienda/internal/pkg/logger"
	"gotienda/internal/service/productservice"
)

// MockProductRepository é uma implementação mock da interface ProductRepository
type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) Create(ctx context.Context, p domain.Product) (domain.Product, error) {
	args := m.Called(ctx, p)
	return args.Get(0).(domain.Product), args.Error(1)
}

func (m *MockProductRepository) FindByID(ctx context.Context, id string) (domain.Product, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Product), args.Error(1)
}

func (m *MockProductRepository) FindAll(ctx context.Context, filter domain.ProductFilter) ([]domain.Product, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]domain.Product), args.Error(1)
}

func (m *MockProductRepository) FindLowStock(ctx context.Context, threshold int) ([]domain.Product, error) {
	args := m.Called(ctx, threshold)
	return args.Get(0).([]domain.Product), args.Error(1)
}

func (m *MockProductRepository) Update(ctx context.Context, p domain.Product) (domain.Product, error) {
	args := m.Called(ctx, p)
	return args.Get(0).(domain.Product), args.Error(1)
}

func (m *MockProductRepository) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func validInput() domain.ProductInput {
	return domain.ProductInput{
		Name: " Remera oversize ", Category: "Remeras", Size: "M", Color: "Negro",
		CostPrice: 10, SalePrice: 15, Stock: 8,
	}
}

func TestCreateProduct_AppliesDefaultMinStock(t *testing.T) {
	repo := new(MockProductRepository)
	svc := productservice.NewService(repo, logger.NewNop(), 5)

	repo.On("Create", mock.Anything, mock.MatchedBy(func(p domain.Product) bool {
		return p.Name == "Remera oversize" && p.MinStock == 5 && p.ID != ""
	})).Return(domain.Product{ID: "x", Code: "P00001"}, nil)

	created, err := svc.CreateProduct(context.Background(), validInput())

	require.NoError(t, err)
	assert.Equal(t, "P00001", created.Code)
	repo.AssertExpectations(t)
}

func TestCreateProduct_ExplicitZeroMinStock(t *testing.T) {
	repo := new(MockProductRepository)
	svc := productservice.NewService(repo, logger.NewNop(), 5)

	zero := 0
	in := validInput()
	in.MinStock = &zero
	repo.On("Create", mock.Anything, mock.MatchedBy(func(p domain.Product) bool { return p.MinStock == 0 })).
		Return(domain.Product{}, nil)

	_, err := svc.CreateProduct(context.Background(), in)

	require.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestCreateProduct_Validation(t *testing.T) {
	cases := map[string]func(*domain.ProductInput){
		"venda igual ao custo":  func(in *domain.ProductInput) { in.SalePrice = in.CostPrice },
		"venda abaixo do custo": func(in *domain.ProductInput) { in.SalePrice = 5 },
		"custo zero":            func(in *domain.ProductInput) { in.CostPrice = 0 },
		"estoque negativo":      func(in *domain.ProductInput) { in.Stock = -1 },
		"nome vazio":            func(in *domain.ProductInput) { in.Name = "" },
	}

	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			repo := new(MockProductRepository)
			svc := productservice.NewService(repo, logger.NewNop(), 5)

			in := validInput()
			mutate(&in)
			_, err := svc.CreateProduct(context.Background(), in)

			var vErr *apperror.ValidationError
			assert.ErrorAs(t, err, &vErr)
			repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		})
	}
}

func TestGetProductByID_InvalidUUID(t *testing.T) {
	repo := new(MockProductRepository)
	svc := productservice.NewService(repo, logger.NewNop(), 5)

	_, err := svc.GetProductByID(context.Background(), "123")

	var vErr *apperror.ValidationError
	assert.ErrorAs(t, err, &vErr)
	repo.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
}

func TestGetProductByID_NotFound(t *testing.T) {
	repo := new(MockProductRepository)
	svc := productservice.NewService(repo, logger.NewNop(), 5)
	id := uuid.NewString()

	repo.On("FindByID", mock.Anything, id).Return(domain.Product{}, apperror.NewNotFoundError("não existe"))

	_, err := svc.GetProductByID(context.Background(), id)

	var nf *apperror.NotFoundError
	assert.ErrorAs(t, err, &nf)
}

func TestLowStock_DefaultThreshold(t *testing.T) {
	repo := new(MockProductRepository)
	svc := productservice.NewService(repo, logger.NewNop(), 7)

	repo.On("FindLowStock", mock.Anything, 7).Return([]domain.Product{{Stock: 1}}, nil)
	repo.On("FindLowStock", mock.Anything, 2).Return([]domain.Product{}, nil)

	got, err := svc.LowStock(context.Background(), -1)
	require.NoError(t, err)
	assert.Len(t, got, 1)

	got, err = svc.LowStock(context.Background(), 2)
	require.NoError(t, err)
	assert.Empty(t, got)
	repo.AssertExpectations(t)
}

func TestUpdateProduct(t *testing.T) {
	repo := new(MockProductRepository)
	svc := productservice.NewService(repo, logger.NewNop(), 5)
	id := uuid.NewString()

	three := 3
	in := validInput()
	in.MinStock = &three
	repo.On("Update", mock.Anything, mock.MatchedBy(func(p domain.Product) bool { return p.ID == id && p.MinStock == 3 })).
		Return(domain.Product{ID: id, Version: 2}, nil)

	updated, err := svc.UpdateProduct(context.Background(), id, in)

	require.NoError(t, err)
	assert.Equal(t, 2, updated.Version)
	repo.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
}

func TestUpdateProduct_KeepsStoredMinStock(t *testing.T) {
	repo := new(MockProductRepository)
	svc := productservice.NewService(repo, logger.NewNop(), 5)
	id := uuid.NewString()

	repo.On("FindByID", mock.Anything, id).Return(domain.Product{ID: id, MinStock: 12}, nil)
	repo.On("Update", mock.Anything, mock.MatchedBy(func(p domain.Product) bool { return p.MinStock == 12 })).
		Return(domain.Product{ID: id, MinStock: 12}, nil)

	updated, err := svc.UpdateProduct(context.Background(), id, validInput())

	require.NoError(t, err)
	assert.Equal(t, 12, updated.MinStock)
	repo.AssertExpectations(t)
}

func TestCreateProduct_PricesComparedAtCents(t *testing.T) {
	cases := map[string]struct{ cost, sale float64 }{
		"venda igual ao custo em centavos": {10.001, 10.004},
		"custo arredonda para zero":        {0.004, 1},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			repo := new(MockProductRepository)
			svc := productservice.NewService(repo, logger.NewNop(), 5)

			in := validInput()
			in.CostPrice, in.SalePrice = tc.cost, tc.sale
			_, err := svc.CreateProduct(context.Background(), in)

			var vErr *apperror.ValidationError
			assert.ErrorAs(t, err, &vErr)
			repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		})
	}
}

func TestCreateProduct_StoresRoundedPrices(t *testing.T) {
	repo := new(MockProductRepository)
	svc := productservice.NewService(repo, logger.NewNop(), 5)

	in := validInput()
	in.CostPrice, in.SalePrice = 10.004, 12.499
	repo.On("Create", mock.Anything, mock.MatchedBy(func(p domain.Product) bool {
		return p.CostPrice == 10.0 && p.SalePrice == 12.5
	})).Return(domain.Product{ID: "p1"}, nil)

	_, err := svc.CreateProduct(context.Background(), in)

	require.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestDeleteProduct_PropagatesConflict(t *testing.T) {
	repo := new(MockProductRepository)
	svc := productservice.NewService(repo, logger.NewNop(), 5)
	id := uuid.NewString()

	repo.On("Delete", mock.Anything, id).Return(apperror.NewConflictError("tem vendas"))

	err := svc.DeleteProduct(context.Background(), id)

	var conflict *apperror.ConflictError
	assert.ErrorAs(t, err, &conflict)
}
