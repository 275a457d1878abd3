package pricing

// Preset é um valor sugerido para um campo percentual do formulário de preço.
type Preset struct {
	Name    string  `json:"name"`
	Percent float64 `json:"percent"`
}

// MarginPresets são as margens de lucro sugeridas.
var MarginPresets = []Preset{
	{Name: "Bajo", Percent: 30},
	{Name: "Medio", Percent: 50},
	{Name: "Alto", Percent: 70},
	{Name: "Premium", Percent: 100},
}

// PlatformPresets são as comissões das plataformas de venda mais usadas.
var PlatformPresets = []Preset{
	{Name: "MercadoLibre", Percent: 11.5},
	{Name: "Tiendanube", Percent: 3.5},
	{Name: "Shopify", Percent: 2.9},
	{Name: "Instagram Shop", Percent: 5.0},
}

// Presets agrupa as sugestões expostas pela API.
type Presets struct {
	Margins   []Preset `json:"margins"`
	Platforms []Preset `json:"platforms"`
}

// AllPresets devolve cópias das listas de sugestões.
func AllPresets() Presets {
	return Presets{
		Margins:   append([]Preset(nil), MarginPresets...),
		Platforms: append([]Preset(nil), PlatformPresets...),
	}
}
