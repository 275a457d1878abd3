// Package respond padroniza as respostas JSON dos handlers da API.
package respond

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"gotienda/internal/domain"
	apperror "gotienda/internal/errors"
	"gotienda/internal/pkg/logger"
)

// Handle processa o resultado do serviço e envia a resposta padronizada ao cliente.
// Com err nil, data é codificado com successStatus; caso contrário o erro é traduzido
// por apperror.MapToHTTPStatus.
func Handle(w http.ResponseWriter, r *http.Request, log logger.Logger, data interface{}, err error, successStatus int) {
	if err != nil {
		Error(w, r, log, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(successStatus)

	log.Debug("Requisição concluída com sucesso", map[string]interface{}{
		"method": r.Method,
		"path":   r.URL.Path,
		"status": successStatus,
	})

	if data != nil {
		if jsonErr := json.NewEncoder(w).Encode(data); jsonErr != nil {
			log.Error("Falha ao codificar JSON de resposta", jsonErr)
		}
	}
}

// Error traduz err para o status HTTP e o corpo domain.ErrorResponse.
func Error(w http.ResponseWriter, r *http.Request, log logger.Logger, err error) {
	status, category, message := apperror.MapToHTTPStatus(err)

	if status >= 500 {
		log.Error(fmt.Sprintf("Erro de Servidor: %s", category), err)
	} else {
		log.Debug(fmt.Sprintf("Requisição rejeitada com status %d. Categoria: %s", status, category),
			map[string]interface{}{"path": r.URL.Path})
	}

	body := domain.ErrorResponse{Code: status, Category: category, Message: message}
	var vErr *apperror.ValidationError
	if errors.As(err, &vErr) {
		body.Fields = vErr.Fields
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

// Decode lê o corpo JSON em dst. Corpo malformado vira ValidationError.
func Decode(r *http.Request, dst interface{}) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return apperror.NewValidationError("Payload inválido. Verifique o formato JSON.")
	}
	return nil
}

const dateLayout = "2006-01-02"

// LedgerFilter lê from/to (AAAA-MM-DD) e supplier da query.
// "to" cobre o dia inteiro.
func LedgerFilter(r *http.Request) (domain.LedgerFilter, error) {
	q := r.URL.Query()
	filter := domain.LedgerFilter{Supplier: q.Get("supplier")}

	if raw := q.Get("from"); raw != "" {
		from, err := time.Parse(dateLayout, raw)
		if err != nil {
			return filter, apperror.NewFieldValidationError("Data inválida.", map[string]string{"from": "use AAAA-MM-DD"})
		}
		filter.From = &from
	}
	if raw := q.Get("to"); raw != "" {
		to, err := time.Parse(dateLayout, raw)
		if err != nil {
			return filter, apperror.NewFieldValidationError("Data inválida.", map[string]string{"to": "use AAAA-MM-DD"})
		}
		to = to.Add(24*time.Hour - time.Nanosecond)
		filter.To = &to
	}
	return filter, nil
}

// Period lê o parâmetro period (day, week, month; padrão month).
func Period(r *http.Request) (domain.Period, error) {
	p, err := domain.ParsePeriod(r.URL.Query().Get("period"))
	if err != nil {
		return "", apperror.NewFieldValidationError("Período inválido.", map[string]string{"period": "deve ser um de: day week month"})
	}
	return p, nil
}

// XLSX prepara os cabeçalhos de download de uma planilha.
func XLSX(w http.ResponseWriter, fileName string) {
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", fileName))
}
