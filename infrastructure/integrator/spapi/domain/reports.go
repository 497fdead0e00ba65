// Package domain contém as estruturas brutas retornadas pelo Amazon SP-API.
package domain

import "encoding/json"

// ListingItem é um item do relatório de listings do vendedor
type ListingItem struct {
	ASIN      string  `json:"asin"`
	SKU       string  `json:"sellerSku"`
	Title     string  `json:"itemName"`
	Status    string  `json:"status"`
	Price     float64 `json:"price"`
	MainImage string  `json:"mainImage"`
}

// SalesByASINRow é uma linha do relatório de vendas e tráfego por ASIN
type SalesByASINRow struct {
	ASIN         string `json:"parentAsin"`
	UnitsOrdered int    `json:"unitsOrdered"`
	OrderedSales struct {
		Amount       float64 `json:"amount"`
		CurrencyCode string  `json:"currencyCode"`
	} `json:"orderedProductSales"`
}

// FeeEstimate é a estimativa de tarifas FBA de um ASIN
type FeeEstimate struct {
	ASIN     string `json:"asin"`
	FeeTotal struct {
		Amount       float64 `json:"amount"`
		CurrencyCode string  `json:"currencyCode"`
	} `json:"totalFeesEstimate"`
}

// FinanceSummary é o resumo financeiro do período, repassado bruto ao
// dashboard; apenas o total de reembolsos é extraído.
type FinanceSummary struct {
	Raw                json.RawMessage `json:"-"`
	ReimbursementTotal float64         `json:"-"`
}

// MarketplaceParticipation é uma participação de marketplace do vendedor
type MarketplaceParticipation struct {
	Marketplace struct {
		ID          string `json:"id"`
		Name        string `json:"name"`
		CountryCode string `json:"countryCode"`
	} `json:"marketplace"`
	Participation struct {
		IsParticipating bool `json:"isParticipating"`
	} `json:"participation"`
}
