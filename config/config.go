package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"

	"gotienda/internal/pricing"
)

// Config armazena todas as configurações do aplicativo GoTienda.
// Os campos são lidos das variáveis de ambiente (o .env é carregado antes pelo cmd).
type Config struct {
	// Geral
	Port        string   `envconfig:"PORT" default:"8080"`
	Environment string   `envconfig:"ENV" default:"development"`
	LogLevel    string   `envconfig:"LOG_LEVEL" default:"info"`
	CORSOrigins []string `envconfig:"CORS_ALLOWED_ORIGINS" default:"http://localhost:5173"`

	// Banco de Dados (PostgreSQL)
	DatabaseURL string        `envconfig:"DATABASE_URL" required:"true"`
	DBTimeout   time.Duration `envconfig:"DB_TIMEOUT" default:"5s"`

	// Redis (contadores do rate limit)
	RedisAddr    string        `envconfig:"REDIS_ADDR" default:"localhost:6379"`
	RedisTimeout time.Duration `envconfig:"REDIS_TIMEOUT" default:"2s"`

	// Segurança (JWT)
	JWTSecretKey string        `envconfig:"JWT_SECRET_KEY" required:"true"`
	TokenExpiry  time.Duration `envconfig:"JWT_EXPIRY" default:"60m"`

	// Rate Limiting
	RateLimitMaxRequests int           `envconfig:"RATE_LIMIT_MAX_REQUESTS" default:"100"`
	RateLimitPeriod      time.Duration `envconfig:"RATE_LIMIT_PERIOD" default:"1m"`

	// Tarifas do serviço de importação (USD)
	ImportFirstKgRate        float64 `envconfig:"IMPORT_FIRST_KG_RATE" default:"24.46"`
	ImportExtraKgRate        float64 `envconfig:"IMPORT_EXTRA_KG_RATE" default:"9.08"`
	ImportRechargePercent    float64 `envconfig:"IMPORT_RECHARGE_PERCENT" default:"4"`
	ImportServiceCharge      float64 `envconfig:"IMPORT_SERVICE_CHARGE" default:"4"`
	ImportOptimalWeightGrams float64 `envconfig:"IMPORT_OPTIMAL_WEIGHT_GRAMS" default:"5999"`

	USDToARSRate    float64 `envconfig:"USD_TO_ARS_RATE" default:"1200"`
	DefaultMinStock int     `envconfig:"DEFAULT_MIN_STOCK" default:"5"`
}

// LoadConfig carrega as configurações a partir das variáveis de ambiente.
// Variáveis obrigatórias ausentes ou valores mal formatados retornam erro.
func LoadConfig() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("erro de configuração: %w", err)
	}
	if strings.TrimSpace(cfg.JWTSecretKey) == "" {
		return nil, errors.New("erro de configuração: JWT_SECRET_KEY não pode ser vazia")
	}
	if cfg.DBTimeout <= 0 {
		return nil, errors.New("erro de configuração: DB_TIMEOUT deve ser positivo")
	}
	if cfg.DefaultMinStock < 0 {
		return nil, errors.New("erro de configuração: DEFAULT_MIN_STOCK não pode ser negativo")
	}
	return &cfg, nil
}

// IsProduction indica se a aplicação roda em produção.
func (c *Config) IsProduction() bool {
	return c != nil && c.Environment == "production"
}

// ImportRates monta as tarifas de importação configuradas.
func (c *Config) ImportRates() pricing.ImportRates {
	return pricing.ImportRates{
		FirstKgRate:        c.ImportFirstKgRate,
		ExtraKgRate:        c.ImportExtraKgRate,
		RechargePercent:    c.ImportRechargePercent,
		ServiceCharge:      c.ImportServiceCharge,
		OptimalWeightGrams: c.ImportOptimalWeightGrams,
	}
}

// DatabaseConfig é o subconjunto usado pelo cmd/migrate, que não precisa de JWT nem Redis.
type DatabaseConfig struct {
	DatabaseURL string        `envconfig:"DATABASE_URL" required:"true"`
	DBTimeout   time.Duration `envconfig:"DB_TIMEOUT" default:"5s"`
	LogLevel    string        `envconfig:"LOG_LEVEL" default:"info"`
	Environment string        `envconfig:"ENV" default:"development"`
}

// LoadDatabaseConfig carrega apenas as variáveis do banco de dados.
func LoadDatabaseConfig() (*DatabaseConfig, error) {
	var cfg DatabaseConfig
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("erro de configuração: %w", err)
	}
	return &cfg, nil
}
