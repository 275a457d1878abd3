package pricing

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"gotienda/internal/api/respond"
	"gotienda/internal/pkg/logger"
	"gotienda/internal/pkg/validation"
	"gotienda/internal/pricing"
)

// Handler expõe as calculadoras de preço e de importação. Não acessa o banco.
type Handler struct {
	Rates     pricing.ImportRates
	Converter pricing.Converter
	Logger    logger.Logger
}

// NewHandler cria o Handler com as tarifas de importação e a cotação configuradas.
func NewHandler(rates pricing.ImportRates, converter pricing.Converter, log logger.Logger) *Handler {
	return &Handler{Rates: rates, Converter: converter, Logger: log}
}

// Routes registra as rotas de /v1/pricing.
func (h *Handler) Routes(r chi.Router) {
	r.Post("/price", h.PriceHandler)
	r.Post("/import", h.ImportHandler)
	r.Get("/presets", h.PresetsHandler)
}

// PriceRequest é o formulário da calculadora de preço.
type PriceRequest struct {
	pricing.PriceInput
	InPesos bool `json:"in_pesos"`
}

// PriceShares é a participação de cada parcela no preço final, em porcentagem.
type PriceShares struct {
	Cost       float64 `json:"cost"`
	Tax        float64 `json:"tax"`
	Shipping   float64 `json:"shipping"`
	Profit     float64 `json:"profit"`
	Commission float64 `json:"commission"`
}

// PriceResponse é o preço calculado com os valores já formatados para exibição.
type PriceResponse struct {
	pricing.PriceQuote
	Shares       PriceShares `json:"shares"`
	Display      string      `json:"display"`
	ExchangeRate float64     `json:"exchange_rate"`
}

// PriceHandler lida com a requisição POST /v1/pricing/price.
// @Summary Calcula o preço final
// @Description custo + imposto + frete, depois margem de lucro, depois comissão da plataforma.
// @Tags pricing
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param input body PriceRequest true "Parâmetros do preço (percentuais em pontos)"
// @Success 200 {object} PriceResponse
// @Failure 400 {object} domain.ErrorResponse "Payload inválido"
// @Router /pricing/price [post]
func (h *Handler) PriceHandler(w http.ResponseWriter, r *http.Request) {
	var req PriceRequest
	if err := respond.Decode(r, &req); err != nil {
		respond.Error(w, r, h.Logger, err)
		return
	}
	if err := validation.Struct(req.PriceInput); err != nil {
		respond.Error(w, r, h.Logger, err)
		return
	}

	quote := pricing.Calculate(req.PriceInput)
	if err := quote.Validate(); err != nil {
		respond.Error(w, r, h.Logger, err)
		return
	}
	b := quote.Breakdown
	resp := PriceResponse{
		PriceQuote: quote,
		Shares: PriceShares{
			Cost:       quote.ShareOf(b.Cost),
			Tax:        quote.ShareOf(b.Tax),
			Shipping:   quote.ShareOf(b.Shipping),
			Profit:     quote.ShareOf(b.Profit),
			Commission: quote.ShareOf(b.Commission),
		},
		Display:      h.Converter.Format(quote.FinalPrice, req.InPesos),
		ExchangeRate: h.Converter.Rate(),
	}
	respond.Handle(w, r, h.Logger, resp, nil, http.StatusOK)
}

// ImportRequest é a lista de itens de um envio consolidado.
type ImportRequest struct {
	Items   []pricing.ImportItem `json:"items"`
	InPesos bool                 `json:"in_pesos"`
}

// ImportResponse é o custo do envio rateado por item.
type ImportResponse struct {
	pricing.ImportQuote
	TotalDisplay       string  `json:"total_display"`
	CostPerItemDisplay string  `json:"cost_per_item_display"`
	ExchangeRate       float64 `json:"exchange_rate"`
}

// ImportHandler lida com a requisição POST /v1/pricing/import.
// @Summary Calcula o custo de um envio de importação
// @Description Rateia recarga, frete internacional e taxa de serviço entre os itens.
// @Tags pricing
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param input body ImportRequest true "Itens do envio (USD e gramas)"
// @Success 200 {object} ImportResponse
// @Failure 400 {object} domain.ErrorResponse "Itens inválidos"
// @Router /pricing/import [post]
func (h *Handler) ImportHandler(w http.ResponseWriter, r *http.Request) {
	var req ImportRequest
	if err := respond.Decode(r, &req); err != nil {
		respond.Error(w, r, h.Logger, err)
		return
	}

	quote, err := h.Rates.Quote(req.Items)
	if err != nil {
		respond.Error(w, r, h.Logger, err)
		return
	}

	respond.Handle(w, r, h.Logger, ImportResponse{
		ImportQuote:        quote,
		TotalDisplay:       h.Converter.Format(quote.TotalCost, req.InPesos),
		CostPerItemDisplay: h.Converter.Format(quote.CostPerItem, req.InPesos),
		ExchangeRate:       h.Converter.Rate(),
	}, nil, http.StatusOK)
}

// PresetsHandler lida com a requisição GET /v1/pricing/presets.
// @Summary Margens e comissões sugeridas
// @Tags pricing
// @Produce json
// @Security BearerAuth
// @Success 200 {object} pricing.Presets
// @Router /pricing/presets [get]
func (h *Handler) PresetsHandler(w http.ResponseWriter, r *http.Request) {
	respond.Handle(w, r, h.Logger, pricing.AllPresets(), nil, http.StatusOK)
}
