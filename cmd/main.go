package main

import (
	"context"
	"errors"
	stdlog "log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	// Infraestrutura e utilitários
	"gotienda/config"
	_ "gotienda/docs" // registra o swagger servido em /swagger
	"gotienda/internal/pkg/cache"
	"gotienda/internal/pkg/database"
	"gotienda/internal/pkg/logger"
	"gotienda/internal/pkg/metrics"
	"gotienda/internal/pkg/middleware"
	"gotienda/internal/pkg/token"
	"gotienda/internal/pricing"

	// Handlers
	"gotienda/internal/api/dashboard"
	pricingapi "gotienda/internal/api/pricing"
	"gotienda/internal/api/product"
	"gotienda/internal/api/purchase"
	"gotienda/internal/api/router"
	"gotienda/internal/api/sale"
	"gotienda/internal/api/seller"
	"gotienda/internal/api/user"

	// Repositórios
	"gotienda/internal/repository/productrepo"
	"gotienda/internal/repository/purchaserepo"
	"gotienda/internal/repository/salerepo"
	"gotienda/internal/repository/sellerrepo"
	"gotienda/internal/repository/userrepo"

	// Serviços
	"gotienda/internal/service/dashboardservice"
	"gotienda/internal/service/productservice"
	"gotienda/internal/service/purchaseservice"
	"gotienda/internal/service/saleservice"
	"gotienda/internal/service/sellerservice"
	"gotienda/internal/service/stockservice"
	"gotienda/internal/service/userservice"
)

// @title GoTienda API
// @version 1.0
// @description Inventário, vendas, compras, sellers e calculadoras de preço de uma pequena loja.
// @BasePath /v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// 0. Variáveis de ambiente (.env)
	// Sem .env seguimos só com o ambiente do sistema (ex: Docker).
	if err := godotenv.Load(); err != nil {
		stdlog.Println("Aviso: arquivo .env não encontrado. Carregando configs apenas do ambiente do sistema.")
	}

	// 1. Configuração e Logger
	cfg, err := config.LoadConfig()
	if err != nil {
		stdlog.Fatalf("Falha ao carregar configuração: %v", err)
	}
	log := logger.NewLogger(cfg.LogLevel, cfg.Environment)
	if syncer, ok := log.(interface{ Sync() error }); ok {
		defer func() { _ = syncer.Sync() }()
	}
	log.Info("Configurações carregadas.", map[string]interface{}{"env": cfg.Environment, "port": cfg.Port})

	// 2. Infraestrutura
	ctx := context.Background()

	// A. Banco de Dados (PostgreSQL)
	db, err := database.NewPostgresDB(ctx, cfg.DatabaseURL, database.DefaultPoolConfig(), log)
	if err != nil {
		log.Fatal("Falha ao conectar ao banco de dados.", err)
	}
	defer db.Close()

	// B. Redis (contadores do rate limit). Sem Redis a API sobe sem limite de requisições.
	var limiter cache.Client
	redisClient, err := cache.NewRedisClient(ctx, cfg.RedisAddr, cfg.RedisTimeout)
	if err != nil {
		log.Warn("Redis indisponível, rate limit desativado.", map[string]interface{}{"error": err.Error()})
	} else {
		limiter = redisClient
		defer redisClient.Close()
		log.Info("Conexão Redis estabelecida.", map[string]interface{}{"addr": cfg.RedisAddr})
	}

	// C. Tokens (JWT)
	tokenSvc := token.NewService(cfg.JWTSecretKey, cfg.TokenExpiry)

	// 3. Injeção de dependências: Repository -> Service -> Handler
	productRepo := productrepo.NewProductRepository(db, cfg.DBTimeout, log)
	saleRepo := salerepo.NewSaleRepository(db, cfg.DBTimeout, log)
	purchaseRepo := purchaserepo.NewPurchaseRepository(db, cfg.DBTimeout, log)
	sellerRepo := sellerrepo.NewSellerRepository(db, cfg.DBTimeout, log)
	userRepo := userrepo.NewUserRepository(db, cfg.DBTimeout, log)

	productSvc := productservice.NewService(productRepo, log, cfg.DefaultMinStock)
	stockSvc := stockservice.NewService(productRepo, log)
	saleSvc := saleservice.NewService(saleRepo, productRepo, stockSvc, log)
	purchaseSvc := purchaseservice.NewService(purchaseRepo, productRepo, stockSvc, log)
	sellerSvc := sellerservice.NewService(sellerRepo, middleware.ClaimsAuthorizer{}, log)
	userSvc := userservice.NewService(userRepo, tokenSvc, log)
	dashboardSvc := dashboardservice.NewService(productSvc, saleSvc, purchaseSvc, log)

	handlers := router.Handlers{
		Product:   product.NewHandler(productSvc, log),
		Sale:      sale.NewHandler(saleSvc, log),
		Purchase:  purchase.NewHandler(purchaseSvc, log),
		Seller:    seller.NewHandler(sellerSvc, log),
		Pricing:   pricingapi.NewHandler(cfg.ImportRates(), pricing.NewConverter(cfg.USDToARSRate), log),
		Dashboard: dashboard.NewHandler(dashboardSvc, log),
		User:      user.NewHandler(userSvc, log),
	}
	log.Debug("Dependências inicializadas.", nil)

	// 4. Roteador e Servidor
	r := router.NewRouter(handlers, router.Options{
		TokenSvc:        tokenSvc,
		Cache:           limiter,
		Metrics:         metrics.NewMetrics(),
		Logger:          log,
		CORSOrigins:     cfg.CORSOrigins,
		IsProduction:    cfg.IsProduction(),
		RateLimit:       cfg.RateLimitMaxRequests,
		RateLimitWindow: cfg.RateLimitPeriod,
	})

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// 5. Execução e Graceful Shutdown
	go func() {
		log.Info("Servidor GoTienda ouvindo na porta", map[string]interface{}{"port": cfg.Port})
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("Servidor falhou.", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	<-quit
	log.Info("Sinal de encerramento recebido. Desligando servidor...", nil)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("Desligamento do servidor forçado.", err)
	}

	log.Info("Servidor encerrado com sucesso.", nil)
}
