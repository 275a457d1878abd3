// Package pgerr classifica erros do driver PostgreSQL para os repositórios.
package pgerr

import (
	"errors"

	"github.com/lib/pq"
)

// Códigos SQLSTATE usados pelos repositórios.
const (
	UniqueViolation     = "23505"
	ForeignKeyViolation = "23503"
	CheckViolation      = "23514"
)

// Is informa se err (ou algum erro da cadeia) é um *pq.Error com o código dado.
func Is(err error, code string) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && string(pqErr.Code) == code
}
