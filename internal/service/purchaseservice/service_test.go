package purchaseservice_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"gotienda/internal/domain"
	apperror "gotienda/internal/errors"
	"gotienda/internal/pkg/logger"
	"gotienda/internal/service/purchaseservice"
)

// MockPurchaseRepository é uma implementação mock da interface PurchaseRepository
type MockPurchaseRepository struct {
	mock.Mock
}

func (m *MockPurchaseRepository) Create(ctx context.Context, p domain.Purchase) (domain.Purchase, error) {
	args := m.Called(ctx, p)
	if fn, ok := args.Get(0).(func(context.Context, domain.Purchase) domain.Purchase); ok {
		return fn(ctx, p), args.Error(1)
	}
	return args.Get(0).(domain.Purchase), args.Error(1)
}

func (m *MockPurchaseRepository) FindByID(ctx context.Context, id string) (domain.Purchase, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Purchase), args.Error(1)
}

func (m *MockPurchaseRepository) FindAll(ctx context.Context, filter domain.LedgerFilter) ([]domain.Purchase, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]domain.Purchase), args.Error(1)
}

func (m *MockPurchaseRepository) Delete(ctx context.Context, id string) (domain.Purchase, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Purchase), args.Error(1)
}

func (m *MockPurchaseRepository) Stats(ctx context.Context, since time.Time) (domain.PurchaseStats, error) {
	args := m.Called(ctx, since)
	return args.Get(0).(domain.PurchaseStats), args.Error(1)
}

// MockProductReader é uma implementação mock da interface ProductReader
type MockProductReader struct {
	mock.Mock
}

func (m *MockProductReader) FindByID(ctx context.Context, id string) (domain.Product, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Product), args.Error(1)
}

// MockStockService é uma implementação mock da interface StockService
type MockStockService struct {
	mock.Mock
}

func (m *MockStockService) AdjustStock(ctx context.Context, adj domain.StockAdjustment) (domain.Product, error) {
	args := m.Called(ctx, adj)
	return args.Get(0).(domain.Product), args.Error(1)
}

func (m *MockStockService) UpdateCostPrice(ctx context.Context, productID string, costPrice float64) (domain.Product, error) {
	args := m.Called(ctx, productID, costPrice)
	return args.Get(0).(domain.Product), args.Error(1)
}

type fixture struct {
	repo     *MockPurchaseRepository
	products *MockProductReader
	stock    *MockStockService
	svc      *purchaseservice.Service
	product  domain.Product
}

func newFixture() *fixture {
	f := &fixture{
		repo:     new(MockPurchaseRepository),
		products: new(MockProductReader),
		stock:    new(MockStockService),
		product:  domain.Product{ID: uuid.NewString(), CostPrice: 10, SalePrice: 15, Stock: 4},
	}
	f.svc = purchaseservice.NewService(f.repo, f.products, f.stock, logger.NewNop())
	f.products.On("FindByID", mock.Anything, f.product.ID).Return(f.product, nil)
	f.repo.On("Create", mock.Anything, mock.AnythingOfType("domain.Purchase")).
		Return(func(_ context.Context, p domain.Purchase) domain.Purchase { return p }, nil)
	return f
}

func (f *fixture) input(qty int, unit float64) domain.PurchaseInput {
	return domain.PurchaseInput{ProductID: f.product.ID, Quantity: qty, UnitPrice: unit, Supplier: " Mayorista Once "}
}

func TestCreatePurchase_SameCostOnlyAdjustsStock(t *testing.T) {
	f := newFixture()
	f.stock.On("AdjustStock", mock.Anything, domain.StockAdjustment{
		ProductID: f.product.ID, Delta: 6, Reason: domain.ReasonPurchase,
	}).Return(domain.Product{Stock: 10}, nil).Once()

	purchase, err := f.svc.CreatePurchase(context.Background(), f.input(6, 10))

	require.NoError(t, err)
	assert.Equal(t, 60.0, purchase.Total)
	assert.Equal(t, "Mayorista Once", purchase.Supplier)
	f.stock.AssertNotCalled(t, "UpdateCostPrice", mock.Anything, mock.Anything, mock.Anything)
	f.stock.AssertExpectations(t)
}

func TestCreatePurchase_NewCostOverwritesProductCost(t *testing.T) {
	f := newFixture()
	f.stock.On("AdjustStock", mock.Anything, mock.Anything).Return(domain.Product{}, nil).Once()
	f.stock.On("UpdateCostPrice", mock.Anything, f.product.ID, 12.0).
		Return(domain.Product{CostPrice: 12}, nil).Once()

	_, err := f.svc.CreatePurchase(context.Background(), f.input(2, 12))

	require.NoError(t, err)
	f.stock.AssertExpectations(t)
}

func TestCreatePurchase_StockStepFailure(t *testing.T) {
	f := newFixture()
	f.stock.On("AdjustStock", mock.Anything, mock.Anything).
		Return(domain.Product{}, errors.New("conn reset")).Once()

	purchase, err := f.svc.CreatePurchase(context.Background(), f.input(2, 12))

	var stepErr *apperror.StepError
	require.ErrorAs(t, err, &stepErr)
	assert.Equal(t, apperror.StepStockAdjustment, stepErr.Step)
	assert.Equal(t, purchase.ID, stepErr.RecordID)
	f.stock.AssertNotCalled(t, "UpdateCostPrice", mock.Anything, mock.Anything, mock.Anything)
}

func TestCreatePurchase_CostStepFailure(t *testing.T) {
	f := newFixture()
	f.stock.On("AdjustStock", mock.Anything, mock.Anything).Return(domain.Product{}, nil).Once()
	f.stock.On("UpdateCostPrice", mock.Anything, f.product.ID, 12.0).
		Return(domain.Product{}, apperror.NewConflictError("versão mudou")).Once()

	_, err := f.svc.CreatePurchase(context.Background(), f.input(2, 12))

	var stepErr *apperror.StepError
	require.ErrorAs(t, err, &stepErr)
	assert.Equal(t, apperror.StepCostPriceUpdate, stepErr.Step)
	status, category, _ := apperror.MapToHTTPStatus(err)
	assert.Equal(t, 409, status)
	assert.Equal(t, "PARTIAL_CONFLICT", category)
}

func TestCreatePurchase_Validation(t *testing.T) {
	f := newFixture()

	_, err := f.svc.CreatePurchase(context.Background(), f.input(0, 12))

	var vErr *apperror.ValidationError
	assert.ErrorAs(t, err, &vErr)
	f.repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCreatePurchase_SubCentPriceMatchesStoredCost(t *testing.T) {
	f := newFixture()
	f.stock.On("AdjustStock", mock.Anything, mock.Anything).Return(domain.Product{}, nil).Once()
	f.repo.ExpectedCalls = nil
	f.repo.On("Create", mock.Anything, mock.MatchedBy(func(p domain.Purchase) bool {
		return p.UnitPrice == 10 && p.Total == 20
	})).Return(domain.Purchase{ID: "c1"}, nil)

	_, err := f.svc.CreatePurchase(context.Background(), f.input(2, 10.004))

	require.NoError(t, err)
	f.stock.AssertNotCalled(t, "UpdateCostPrice", mock.Anything, mock.Anything, mock.Anything)
	f.repo.AssertExpectations(t)
}

func TestDeletePurchase_ClampsStock(t *testing.T) {
	f := newFixture()
	id := uuid.NewString()
	f.repo.On("Delete", mock.Anything, id).
		Return(domain.Purchase{ID: id, ProductID: f.product.ID, Quantity: 10}, nil)
	f.stock.On("AdjustStock", mock.Anything, domain.StockAdjustment{
		ProductID: f.product.ID, Delta: -10, Clamp: true, Reason: domain.ReasonPurchaseDeleted,
	}).Return(domain.Product{Stock: 0}, nil).Once()

	require.NoError(t, f.svc.DeletePurchase(context.Background(), id))
	f.stock.AssertExpectations(t)
}

func TestDeletePurchase_InvalidID(t *testing.T) {
	f := newFixture()

	err := f.svc.DeletePurchase(context.Background(), "nope")

	var vErr *apperror.ValidationError
	assert.ErrorAs(t, err, &vErr)
}

func TestListPurchases_TrimsSupplier(t *testing.T) {
	f := newFixture()
	f.repo.On("FindAll", mock.Anything, domain.LedgerFilter{Supplier: "Once"}).
		Return([]domain.Purchase{{ID: "p1"}}, nil)

	got, err := f.svc.ListPurchases(context.Background(), domain.LedgerFilter{Supplier: "  Once "})

	require.NoError(t, err)
	assert.Len(t, got, 1)
}

func TestStats_Week(t *testing.T) {
	f := newFixture()
	f.repo.On("Stats", mock.Anything, mock.MatchedBy(func(since time.Time) bool {
		return time.Since(since) >= 7*24*time.Hour-time.Minute
	})).Return(domain.PurchaseStats{Count: 2, TotalSpent: 80}, nil)

	stats, err := f.svc.Stats(context.Background(), domain.PeriodWeek)

	require.NoError(t, err)
	assert.Equal(t, 80.0, stats.TotalSpent)
}
