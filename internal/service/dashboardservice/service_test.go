package dashboardservice_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"gotienda/internal/domain"
	apperror "gotienda/internal/errors"
	"gotienda/internal/pkg/logger"
	"gotienda/internal/service/dashboardservice"
)

type MockProductLister struct{ mock.Mock }

func (m *MockProductLister) ListProducts(ctx context.Context, filter domain.ProductFilter) ([]domain.Product, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]domain.Product), args.Error(1)
}

type MockSalesStatter struct{ mock.Mock }

func (m *MockSalesStatter) Stats(ctx context.Context, period domain.Period) (domain.SalesStats, error) {
	args := m.Called(ctx, period)
	return args.Get(0).(domain.SalesStats), args.Error(1)
}

type MockPurchaseStatter struct{ mock.Mock }

func (m *MockPurchaseStatter) Stats(ctx context.Context, period domain.Period) (domain.PurchaseStats, error) {
	args := m.Called(ctx, period)
	return args.Get(0).(domain.PurchaseStats), args.Error(1)
}

func TestLoad_CombinesSources(t *testing.T) {
	products := new(MockProductLister)
	sales := new(MockSalesStatter)
	purchases := new(MockPurchaseStatter)
	svc := dashboardservice.NewService(products, sales, purchases, logger.NewNop())

	products.On("ListProducts", mock.Anything, mock.Anything).Return([]domain.Product{
		{ID: "a", Stock: 0, MinStock: 5, CostPrice: 10, SalePrice: 20},
		{ID: "b", Stock: 10, MinStock: 5, CostPrice: 2, SalePrice: 3},
	}, nil)
	sales.On("Stats", mock.Anything, domain.PeriodWeek).Return(domain.SalesStats{Count: 3, Revenue: 90}, nil)
	purchases.On("Stats", mock.Anything, domain.PeriodWeek).Return(domain.PurchaseStats{Count: 1, TotalSpent: 40}, nil)

	d, err := svc.Load(context.Background(), domain.PeriodWeek)

	require.NoError(t, err)
	assert.Equal(t, 2, d.Inventory.TotalProducts)
	assert.Equal(t, 20.0, d.Inventory.InventoryValue)
	assert.Equal(t, 1, d.Inventory.OutOfStock)
	require.Len(t, d.Categories, 1)
	assert.Equal(t, 10, d.Categories[0].TotalStock)
	assert.Equal(t, 1, d.Categories[0].LowStock)
	require.Len(t, d.LowStock, 1)
	assert.Equal(t, "a", d.LowStock[0].ID)
	assert.Equal(t, 3, d.Sales.Count)
	assert.Equal(t, 40.0, d.Purchases.TotalSpent)
}

func TestLoad_PropagatesFailure(t *testing.T) {
	products := new(MockProductLister)
	sales := new(MockSalesStatter)
	purchases := new(MockPurchaseStatter)
	svc := dashboardservice.NewService(products, sales, purchases, logger.NewNop())

	products.On("ListProducts", mock.Anything, mock.Anything).Return([]domain.Product{}, nil)
	sales.On("Stats", mock.Anything, domain.PeriodMonth).
		Return(domain.SalesStats{}, apperror.NewDBError("Falha ao agregar vendas", assert.AnError))
	purchases.On("Stats", mock.Anything, domain.PeriodMonth).Return(domain.PurchaseStats{}, nil)

	_, err := svc.Load(context.Background(), domain.PeriodMonth)

	var internal *apperror.InternalError
	assert.ErrorAs(t, err, &internal)
}
