package dashboard

import (
	"context"
	"net/http"

	"gotienda/internal/api/respond"
	"gotienda/internal/domain"
	"gotienda/internal/pkg/logger"
	"gotienda/internal/service/dashboardservice"
)

// DashboardService define o contrato que o Handler espera da camada de Serviço.
type DashboardService interface {
	Load(ctx context.Context, period domain.Period) (dashboardservice.Dashboard, error)
}

// Handler serve o painel inicial.
type Handler struct {
	Service DashboardService
	Logger  logger.Logger
}

// NewHandler cria uma nova instância do Handler, injetando o Service e o Logger.
func NewHandler(svc DashboardService, log logger.Logger) *Handler {
	return &Handler{Service: svc, Logger: log}
}

// DashboardHandler lida com a requisição GET /v1/dashboard.
// @Summary Painel da loja
// @Description Resumo do inventário, vendas e compras do período e produtos com estoque baixo.
// @Tags dashboard
// @Produce json
// @Security BearerAuth
// @Param period query string false "day, week ou month (padrão)"
// @Success 200 {object} dashboardservice.Dashboard
// @Failure 400 {object} domain.ErrorResponse "Período inválido"
// @Router /dashboard [get]
func (h *Handler) DashboardHandler(w http.ResponseWriter, r *http.Request) {
	period, err := respond.Period(r)
	if err != nil {
		respond.Error(w, r, h.Logger, err)
		return
	}

	d, err := h.Service.Load(r.Context(), period)
	respond.Handle(w, r, h.Logger, d, err, http.StatusOK)
}
