package main

import (
	"context"
	"flag"
	"fmt"
	stdlog "log"

	"github.com/joho/godotenv"

	"gotienda/config"
	"gotienda/internal/pkg/database"
	"gotienda/internal/pkg/logger"
	"gotienda/migrations"
)

// Uso: migrate [up|down|status|version|redo|reset|up-to N|down-to N]
func main() {
	if err := godotenv.Load(); err != nil {
		stdlog.Println("Aviso: arquivo .env não encontrado. Carregando configs apenas do ambiente do sistema.")
	}

	cfg, err := config.LoadDatabaseConfig()
	if err != nil {
		stdlog.Fatalf("goose: %v", err)
	}
	log := logger.NewLogger(cfg.LogLevel, cfg.Environment)

	flag.Parse()

	ctx, cancel := context.WithTimeout(context.Background(), cfg.DBTimeout)
	defer cancel()

	pool := database.DefaultPoolConfig()
	pool.MaxOpenConns = 1
	db, err := database.NewPostgresDB(ctx, cfg.DatabaseURL, pool, log)
	if err != nil {
		log.Fatal("goose: falha ao conectar ao DB.", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("goose: falha ao fechar o DB.", err)
		}
	}()

	arguments := flag.Args()
	if len(arguments) == 0 {
		arguments = []string{"up"}
	}
	command := arguments[0]
	args := arguments[1:]

	migrator, err := database.NewMigrator(migrations.FS, ".")
	if err != nil {
		log.Fatal("goose: falha ao preparar migrações.", err)
	}
	if err := migrator.Run(command, db.DB, args...); err != nil {
		log.Fatal("goose: comando falhou.", err)
	}

	fmt.Printf("goose %s success\n", command)
}
