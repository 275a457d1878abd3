package pricing

import (
	"math"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// DefaultUSDToARSRate é a cotação usada quando nenhuma é configurada.
const DefaultUSDToARSRate = 1200

var arPrinter = message.NewPrinter(language.MustParse("es-AR"))

// RoundMoney arredonda um valor monetário em centavos, a precisão com que é gravado.
func RoundMoney(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return v
	}
	f, _ := decimal.NewFromFloat(v).Round(2).Float64()
	return f
}

// Converter converte e formata valores em dólar para exibição.
type Converter struct {
	rate decimal.Decimal
}

// NewConverter cria um conversor com a cotação USD→ARS informada.
// Cotação não positiva usa DefaultUSDToARSRate.
func NewConverter(usdToARS float64) Converter {
	if usdToARS <= 0 {
		usdToARS = DefaultUSDToARSRate
	}
	return Converter{rate: decimal.NewFromFloat(usdToARS)}
}

// Rate devolve a cotação em uso.
func (c Converter) Rate() float64 {
	f, _ := c.rate.Float64()
	return f
}

// ToARS converte um valor em USD para pesos, arredondado em centavos.
func (c Converter) ToARS(usd float64) float64 {
	f, _ := decimal.NewFromFloat(usd).Mul(c.rate).Round(2).Float64()
	return f
}

// FormatUSD formata com duas casas: "$12.50 USD".
func (c Converter) FormatUSD(usd float64) string {
	return "$" + decimal.NewFromFloat(usd).StringFixed(2) + " USD"
}

// FormatARS converte e formata com o agrupamento argentino: "$15.000 ARS".
func (c Converter) FormatARS(usd float64) string {
	return arPrinter.Sprintf("$%v ARS", c.ToARS(usd))
}

// Format escolhe a moeda de exibição. Valores não finitos viram "n/d".
func (c Converter) Format(usd float64, inPesos bool) string {
	if math.IsNaN(usd) || math.IsInf(usd, 0) {
		return "n/d"
	}
	if inPesos {
		return c.FormatARS(usd)
	}
	return c.FormatUSD(usd)
}
