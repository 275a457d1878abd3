package middleware

import (
	"encoding/json"
	"net/http"

	apperror "gotienda/internal/errors"
)

// writeError responde no mesmo formato de erro dos handlers da API.
func writeError(w http.ResponseWriter, err error) {
	status, category, message := apperror.MapToHTTPStatus(err)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]interface{}{
		"code":     status,
		"category": category,
		"message":  message,
	})
}
