package domain

// ProfitabilityRecord traz o resultado bruto do cruzamento entre vendas,
// gasto de ads e tarifas FBA por ASIN.
type ProfitabilityRecord struct {
	ASIN     string  `json:"asin"`
	Quantity int     `json:"quantity"`
	Sales    float64 `json:"sales"`
	Ads      float64 `json:"ads"`
	AmzFee   float64 `json:"amzFee"`
}

// NetProfit é vendas menos gasto de ads menos tarifa Amazon.
func (p *ProfitabilityRecord) NetProfit() float64 {
	return p.Sales - p.Ads - p.AmzFee
}

// ProfitabilityErrorDetail descreve um ASIN classificado como erro de
// lucratividade, com a margem calculada e o motivo.
type ProfitabilityErrorDetail struct {
	ASIN      string  `json:"asin"`
	Sales     float64 `json:"sales"`
	Ads       float64 `json:"ads"`
	AmzFee    float64 `json:"amzFee"`
	NetProfit float64 `json:"netProfit"`
	Margin    float64 `json:"margin"`
	Reason    string  `json:"reason"`
}
