package purchase

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"gotienda/internal/api/respond"
	"gotienda/internal/domain"
	"gotienda/internal/pkg/logger"
	"gotienda/internal/pkg/report"
)

// PurchaseService define o contrato que o Handler espera da camada de Serviço.
type PurchaseService interface {
	CreatePurchase(ctx context.Context, in domain.PurchaseInput) (domain.Purchase, error)
	DeletePurchase(ctx context.Context, id string) error
	ListPurchases(ctx context.Context, filter domain.LedgerFilter) ([]domain.Purchase, error)
	Stats(ctx context.Context, period domain.Period) (domain.PurchaseStats, error)
	Export(ctx context.Context, filter domain.LedgerFilter, w io.Writer) error
}

// Handler agrupa os handlers do livro de compras.
type Handler struct {
	Service PurchaseService
	Logger  logger.Logger
}

// NewHandler cria uma nova instância do Handler, injetando o Service e o Logger.
func NewHandler(svc PurchaseService, log logger.Logger) *Handler {
	return &Handler{Service: svc, Logger: log}
}

// Routes registra as rotas de /v1/purchases.
func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.ListPurchasesHandler)
	r.Post("/", h.CreatePurchaseHandler)
	r.Get("/stats", h.StatsHandler)
	r.Get("/export", h.ExportHandler)
	r.Delete("/{id}", h.DeletePurchaseHandler)
}

// CreatePurchaseHandler lida com a requisição POST /v1/purchases.
// @Summary Registra uma compra
// @Description Soma o estoque e, se o preço unitário mudou, sobrescreve o custo do produto.
// @Tags purchases
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param purchase body domain.PurchaseInput true "Dados da compra"
// @Success 201 {object} domain.Purchase
// @Failure 400 {object} domain.ErrorResponse "Payload inválido"
// @Failure 404 {object} domain.ErrorResponse "Produto não encontrado"
// @Router /purchases [post]
func (h *Handler) CreatePurchaseHandler(w http.ResponseWriter, r *http.Request) {
	var in domain.PurchaseInput
	if err := respond.Decode(r, &in); err != nil {
		respond.Error(w, r, h.Logger, err)
		return
	}

	created, err := h.Service.CreatePurchase(r.Context(), in)
	respond.Handle(w, r, h.Logger, created, err, http.StatusCreated)
}

// ListPurchasesHandler lida com a requisição GET /v1/purchases.
// @Summary Lista compras
// @Tags purchases
// @Produce json
// @Security BearerAuth
// @Param from query string false "Data inicial AAAA-MM-DD"
// @Param to query string false "Data final AAAA-MM-DD (inclusive)"
// @Param supplier query string false "Parte do nome do fornecedor"
// @Success 200 {array} domain.Purchase
// @Failure 400 {object} domain.ErrorResponse "Datas inválidas"
// @Router /purchases [get]
func (h *Handler) ListPurchasesHandler(w http.ResponseWriter, r *http.Request) {
	filter, err := respond.LedgerFilter(r)
	if err != nil {
		respond.Error(w, r, h.Logger, err)
		return
	}

	purchases, err := h.Service.ListPurchases(r.Context(), filter)
	respond.Handle(w, r, h.Logger, purchases, err, http.StatusOK)
}

// StatsHandler lida com a requisição GET /v1/purchases/stats.
// @Summary Estatísticas de compras
// @Tags purchases
// @Produce json
// @Security BearerAuth
// @Param period query string false "day, week ou month (padrão)"
// @Success 200 {object} domain.PurchaseStats
// @Failure 400 {object} domain.ErrorResponse "Período inválido"
// @Router /purchases/stats [get]
func (h *Handler) StatsHandler(w http.ResponseWriter, r *http.Request) {
	period, err := respond.Period(r)
	if err != nil {
		respond.Error(w, r, h.Logger, err)
		return
	}

	stats, err := h.Service.Stats(r.Context(), period)
	respond.Handle(w, r, h.Logger, stats, err, http.StatusOK)
}

// ExportHandler lida com a requisição GET /v1/purchases/export.
// @Summary Exporta compras em XLSX
// @Tags purchases
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Security BearerAuth
// @Param from query string false "Data inicial AAAA-MM-DD"
// @Param to query string false "Data final AAAA-MM-DD (inclusive)"
// @Param supplier query string false "Parte do nome do fornecedor"
// @Success 200 {file} file
// @Router /purchases/export [get]
func (h *Handler) ExportHandler(w http.ResponseWriter, r *http.Request) {
	filter, err := respond.LedgerFilter(r)
	if err != nil {
		respond.Error(w, r, h.Logger, err)
		return
	}

	var buf bytes.Buffer
	if err := h.Service.Export(r.Context(), filter, &buf); err != nil {
		respond.Error(w, r, h.Logger, err)
		return
	}

	respond.XLSX(w, report.FileName("compras", time.Now()))
	if _, err := buf.WriteTo(w); err != nil {
		h.Logger.Error("Falha ao enviar planilha de compras.", err)
	}
}

// DeletePurchaseHandler lida com a requisição DELETE /v1/purchases/{id}.
// @Summary Remove uma compra
// @Description Retira as unidades do estoque sem deixá-lo negativo. O custo não é revertido.
// @Tags purchases
// @Security BearerAuth
// @Param id path string true "ID da compra"
// @Success 204
// @Failure 404 {object} domain.ErrorResponse "Compra não encontrada"
// @Router /purchases/{id} [delete]
func (h *Handler) DeletePurchaseHandler(w http.ResponseWriter, r *http.Request) {
	err := h.Service.DeletePurchase(r.Context(), chi.URLParam(r, "id"))
	respond.Handle(w, r, h.Logger, nil, err, http.StatusNoContent)
}
