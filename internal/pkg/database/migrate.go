package database

import (
	"database/sql"
	"fmt"
	"io/fs"

	"github.com/pressly/goose/v3"
)

// Migrator executa comandos do goose sobre um conjunto de migrações embutidas.
type Migrator struct {
	fsys fs.FS
	dir  string
}

// NewMigrator cria o executor para as migrações em dir dentro de fsys.
func NewMigrator(fsys fs.FS, dir string) (*Migrator, error) {
	if err := goose.SetDialect("postgres"); err != nil {
		return nil, fmt.Errorf("falha ao definir o dialeto do goose: %w", err)
	}
	return &Migrator{fsys: fsys, dir: dir}, nil
}

// Up aplica todas as migrações pendentes.
func (m *Migrator) Up(db *sql.DB) error {
	return m.Run("up", db)
}

// Run executa um comando do goose (up, down, status, version, redo, reset...).
func (m *Migrator) Run(command string, db *sql.DB, args ...string) error {
	goose.SetBaseFS(m.fsys)
	defer goose.SetBaseFS(nil)

	if err := goose.Run(command, db, m.dir, args...); err != nil {
		return fmt.Errorf("goose %s: %w", command, err)
	}
	return nil
}
