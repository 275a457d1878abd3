package productrepo_test

import (
	"context"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"

	"gotienda/internal/domain"
	apperror "gotienda/internal/errors"
	"gotienda/internal/pkg/database"
	"gotienda/internal/pkg/logger"
	"gotienda/internal/repository/productrepo"
	"gotienda/internal/repository/purchaserepo"
	"gotienda/internal/repository/salerepo"
	"gotienda/internal/repository/sellerrepo"
	"gotienda/internal/repository/userrepo"
	"gotienda/migrations"
)

// setupDB sobe um PostgreSQL descartável com o schema aplicado.
func setupDB(t *testing.T) *sqlx.DB {
	t.Helper()
	if testing.Short() {
		t.Skip("teste de integração ignorado com -short")
	}
	testcontainers.SkipIfProviderIsNotHealthy(t)

	ctx := context.Background()
	container, err := postgres.Run(ctx, "postgres:16-alpine",
		postgres.WithDatabase("gotienda"),
		postgres.WithUsername("gotienda"),
		postgres.WithPassword("gotienda"),
		postgres.BasicWaitStrategies(),
	)
	testcontainers.CleanupContainer(t, container)
	require.NoError(t, err)

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	db, err := database.NewPostgresDB(ctx, dsn, database.DefaultPoolConfig(), logger.NewNop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	migrator, err := database.NewMigrator(migrations.FS, ".")
	require.NoError(t, err)
	require.NoError(t, migrator.Up(db.DB))
	return db
}

func TestRepositories_Integration(t *testing.T) {
	db := setupDB(t)
	ctx := context.Background()
	log := logger.NewNop()
	timeout := 5 * time.Second

	products := productrepo.NewProductRepository(db, timeout, log)
	sales := salerepo.NewSaleRepository(db, timeout, log)
	purchases := purchaserepo.NewPurchaseRepository(db, timeout, log)
	sellers := sellerrepo.NewSellerRepository(db, timeout, log)
	users := userrepo.NewUserRepository(db, timeout, log)

	t.Run("produto recebe código sequencial e margem", func(t *testing.T) {
		p1, err := products.Create(ctx, domain.Product{Name: "Remera", Category: "Remeras", Size: "M", Color: "Negro", CostPrice: 10, SalePrice: 15, Stock: 4, MinStock: 5})
		require.NoError(t, err)
		p2, err := products.Create(ctx, domain.Product{Name: "Jean", Category: "Jeans", Size: "42", Color: "Azul", CostPrice: 20, SalePrice: 35, Stock: 10, MinStock: 5})
		require.NoError(t, err)

		assert.Equal(t, "P00001", p1.Code)
		assert.Equal(t, "P00002", p2.Code)
		require.NotNil(t, p1.MarginPercent)
		assert.InDelta(t, 50.0, *p1.MarginPercent, 1e-9)

		found, err := products.FindAll(ctx, domain.ProductFilter{Search: "NEG"})
		require.NoError(t, err)
		require.Len(t, found, 1)
		assert.Equal(t, p1.ID, found[0].ID)

		low, err := products.FindLowStock(ctx, 5)
		require.NoError(t, err)
		require.Len(t, low, 1)
		assert.Equal(t, p1.ID, low[0].ID)
	})

	t.Run("ajuste de estoque respeita o mínimo zero", func(t *testing.T) {
		p, err := products.Create(ctx, domain.Product{Name: "Buzo", Category: "Buzos", Size: "L", Color: "Gris", CostPrice: 30, SalePrice: 50, Stock: 2})
		require.NoError(t, err)

		_, err = products.AdjustStock(ctx, domain.StockAdjustment{ProductID: p.ID, Delta: -3})
		var stockErr *apperror.InsufficientStockError
		require.ErrorAs(t, err, &stockErr)
		assert.Equal(t, 2, stockErr.Available)

		unchanged, err := products.FindByID(ctx, p.ID)
		require.NoError(t, err)
		assert.Equal(t, 2, unchanged.Stock)

		clamped, err := products.AdjustStock(ctx, domain.StockAdjustment{ProductID: p.ID, Delta: -3, Clamp: true})
		require.NoError(t, err)
		assert.Equal(t, 0, clamped.Stock)
		assert.Equal(t, unchanged.Version+1, clamped.Version)

		updated, err := products.UpdateCostPrice(ctx, p.ID, 33)
		require.NoError(t, err)
		assert.Equal(t, 33.0, updated.CostPrice)
	})

	t.Run("livro de vendas e compras", func(t *testing.T) {
		p, err := products.Create(ctx, domain.Product{Name: "Gorra", Category: "Gorras", Size: "U", Color: "Rojo", CostPrice: 5, SalePrice: 12, Stock: 10})
		require.NoError(t, err)

		sale, err := sales.Create(ctx, domain.Sale{ProductID: p.ID, Quantity: 3, UnitPrice: 12, PaymentMethod: domain.PaymentCash, Total: 36, NetProfit: 21})
		require.NoError(t, err)
		assert.Equal(t, p.Code, sale.Product.Code)

		stats, err := sales.Stats(ctx, time.Now().Add(-time.Hour))
		require.NoError(t, err)
		assert.Equal(t, 1, stats.Count)
		assert.Equal(t, 36.0, stats.Revenue)

		deleted, err := sales.Delete(ctx, sale.ID)
		require.NoError(t, err)
		assert.Equal(t, 3, deleted.Quantity)

		_, err = sales.FindByID(ctx, sale.ID)
		var notFound *apperror.NotFoundError
		assert.ErrorAs(t, err, &notFound)

		purchase, err := purchases.Create(ctx, domain.Purchase{ProductID: p.ID, Quantity: 5, UnitPrice: 6, Supplier: "Mayorista Once", Total: 30})
		require.NoError(t, err)
		listed, err := purchases.FindAll(ctx, domain.LedgerFilter{Supplier: "once"})
		require.NoError(t, err)
		require.Len(t, listed, 1)
		assert.Equal(t, purchase.ID, listed[0].ID)

		// Produto com compra registrada não pode ser removido.
		err = products.Delete(ctx, p.ID)
		var conflict *apperror.ConflictError
		assert.ErrorAs(t, err, &conflict)
	})

	t.Run("seller substitui links", func(t *testing.T) {
		s, err := sellers.Create(ctx, domain.Seller{Name: "Zapas Mayorista", Specialty: "Zapatillas", Links: []domain.SellerLink{
			{Name: "Catálogo", URL: "https://a.example"},
			{Name: "Instagram", URL: "https://b.example"},
		}})
		require.NoError(t, err)
		require.Len(t, s.Links, 2)

		s.Links = []domain.SellerLink{{Name: "Web", URL: "https://c.example"}}
		_, err = sellers.Update(ctx, s)
		require.NoError(t, err)

		got, err := sellers.FindByID(ctx, s.ID)
		require.NoError(t, err)
		require.Len(t, got.Links, 1)
		assert.Equal(t, "Web", got.Links[0].Name)

		specialties, err := sellers.Specialties(ctx)
		require.NoError(t, err)
		assert.Equal(t, []string{"Zapatillas"}, specialties)

		require.NoError(t, sellers.Delete(ctx, s.ID))
		var links int
		require.NoError(t, db.GetContext(ctx, &links, `SELECT COUNT(*) FROM seller_links WHERE seller_id = $1`, s.ID))
		assert.Zero(t, links)
	})

	t.Run("usuário com e-mail duplicado", func(t *testing.T) {
		_, err := users.Save(ctx, domain.User{Email: "Ana@Example.com", PasswordHash: "x", Role: domain.RoleUser})
		require.NoError(t, err)

		_, err = users.Save(ctx, domain.User{Email: "ana@example.com", PasswordHash: "y", Role: domain.RoleUser})
		var conflict *apperror.ConflictError
		assert.ErrorAs(t, err, &conflict)

		u, err := users.FindByEmail(ctx, "ANA@example.com")
		require.NoError(t, err)
		assert.Equal(t, "ana@example.com", u.Email)
	})
}
