// Package domain contém as estruturas de dados do domínio da aplicação
package domain

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
	"time"
)

// AccountData é o payload completo de uma conta de vendedor, montado a
// partir dos feeds do SP-API e da API de Ads. Os nomes dos campos JSON
// seguem o contrato histórico do frontend — incluindo as grafias
// "negetiveKeywords" e "Reimburstment" — e não podem ser corrigidos sem
// quebrar os consumidores.
type AccountData struct {
	TotalProducts           []CatalogProduct          `json:"TotalProducts"`
	SalesByProducts         []ProductSale             `json:"SalesByProducts"`
	ProductWiseSponsoredAds []SponsoredAdEntry        `json:"ProductWiseSponsoredAds"`
	ProductWiseFBAData      []FBAProductData          `json:"ProductWiseFBAData,omitempty"`
	FBAFees                 []FBAFeeEntry             `json:"fbaFees,omitempty"`
	NegativeKeywords        []NegativeKeyword         `json:"negetiveKeywords,omitempty"`
	KeywordPerformance      []KeywordPerformanceEntry `json:"keywordPerformanceData,omitempty"`
	RankingsData            *RankingsData             `json:"RankingsData" validate:"required"`
	ConversionData          *ConversionData           `json:"ConversionData" validate:"required"`
	AccountHealth           *AccountHealth            `json:"AccountData,omitempty"`
	FinanceData             json.RawMessage           `json:"FinanceData,omitempty"`
	ReplenishmentQty        FlexFloat                 `json:"replenishmentQty,omitempty"`
	Reimbursement           FlexFloat                 `json:"Reimburstment,omitempty"`
	TotalSales              FlexFloat                 `json:"TotalSales,omitempty"`
	Country                 string                    `json:"Country,omitempty"`
	StartDate               string                    `json:"startDate,omitempty"`
	EndDate                 string                    `json:"endDate,omitempty"`
	Keywords                []string                  `json:"keywords,omitempty"`
}

type CatalogProduct struct {
	ASIN      string    `json:"asin"`
	Status    string    `json:"status"`
	SKU       string    `json:"sku"`
	Price     FlexFloat `json:"price"`
	Title     string    `json:"title"`
	MainImage string    `json:"MainImage,omitempty"`
}

type ProductSale struct {
	ASIN     string    `json:"asin"`
	Quantity FlexFloat `json:"quantity"`
	Amount   FlexFloat `json:"amount"`
}

type SponsoredAdEntry struct {
	ASIN              string    `json:"asin"`
	CampaignID        string    `json:"campaignId,omitempty"`
	CampaignName      string    `json:"campaignName,omitempty"`
	Spend             FlexFloat `json:"spend"`
	SalesIn30Days     FlexFloat `json:"salesIn30Days"`
	PurchasedIn30Days FlexFloat `json:"purchasedIn30Days"`
	Clicks            FlexFloat `json:"clicks,omitempty"`
	Impressions       FlexFloat `json:"impressions,omitempty"`
}

// FBAProductData é o feed legado de taxas FBA, ainda presente em payloads
// de contas antigas.
type FBAProductData struct {
	ASIN        string    `json:"asin"`
	TotalFBA    FlexFloat `json:"totalFba"`
	TotalAmzFee FlexFloat `json:"totalAmzFee"`
}

// FBAFeeEntry é uma entrada do feed atual de taxas. O campo "fees" pode
// vir como número, string numérica ou objeto com campo "amount",
// dependendo da versão do coletor que montou o payload.
type FBAFeeEntry struct {
	ASIN string          `json:"asin"`
	Fees json.RawMessage `json:"fees,omitempty"`
}

// FeeAmount converte o campo "fees" para float64. Valores ausentes ou
// inconvertíveis contribuem 0, nunca interrompem a agregação.
func (e FBAFeeEntry) FeeAmount() float64 {
	raw := strings.TrimSpace(string(e.Fees))
	if raw == "" || raw == "null" {
		return 0
	}

	var number float64
	if err := json.Unmarshal(e.Fees, &number); err == nil {
		return sanitizeFee(number)
	}

	var text string
	if err := json.Unmarshal(e.Fees, &text); err == nil {
		value, err := strconv.ParseFloat(strings.TrimSpace(text), 64)
		if err != nil {
			return 0
		}
		return sanitizeFee(value)
	}

	var object struct {
		Amount FlexFloat `json:"amount"`
	}
	if err := json.Unmarshal(e.Fees, &object); err == nil {
		return sanitizeFee(object.Amount.Float())
	}

	return 0
}

func sanitizeFee(value float64) float64 {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return 0
	}
	return value
}

type NegativeKeyword struct {
	AdGroupID   string `json:"adGroupId"`
	CampaignID  string `json:"campaignId"`
	KeywordID   string `json:"keywordId"`
	KeywordText string `json:"keywordText"`
	State       string `json:"state,omitempty"`
}

type KeywordPerformanceEntry struct {
	Keyword            string    `json:"keyword"`
	CampaignID         string    `json:"campaignId,omitempty"`
	CampaignName       string    `json:"campaignName,omitempty"`
	AttributedSales30d FlexFloat `json:"attributedSales30d"`
	Cost               FlexFloat `json:"cost"`
	Clicks             FlexFloat `json:"clicks,omitempty"`
	Impressions        FlexFloat `json:"impressions,omitempty"`
	MatchType          string    `json:"matchType,omitempty"`
}

type RankingsData struct {
	RankingResultArray        []RankingResult        `json:"RankingResultArray"`
	BackendKeywordResultArray []BackendKeywordResult `json:"BackendKeywordResultArray,omitempty"`
}

type RankingResult struct {
	ASIN string            `json:"asin"`
	Data *RankingCheckData `json:"data"`
}

// RankingCheckData é o resultado das checagens de conteúdo de um produto.
// CharLim e DublicateWords são anexados na passada de backend keywords.
type RankingCheckData struct {
	Title               string      `json:"Title"`
	TotalErrors         int         `json:"TotalErrors"`
	TitleCheck          *FieldCheck `json:"TitleCheck,omitempty"`
	BulletPointsCheck   *FieldCheck `json:"BulletPointsCheck,omitempty"`
	DescriptionCheck    *FieldCheck `json:"DescriptionCheck,omitempty"`
	BackendKeywordCheck *FieldCheck `json:"BackendKeywordCheck,omitempty"`
	CharLim             *FlexFloat  `json:"charLim,omitempty"`
	DublicateWords      []string    `json:"dublicateWords,omitempty"`
}

type FieldCheck struct {
	CharacterLimit    *CheckOutcome `json:"characterLimit,omitempty"`
	RestrictedWords   *CheckOutcome `json:"restrictedWords,omitempty"`
	SpecialCharacters *CheckOutcome `json:"specialCharacters,omitempty"`
}

type CheckOutcome struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

type BackendKeywordResult struct {
	ASIN string              `json:"asin"`
	Data *BackendKeywordData `json:"data"`
}

type BackendKeywordData struct {
	NumberOfErrors int        `json:"NumberOfErrors"`
	CharLim        *FlexFloat `json:"charLim,omitempty"`
	DublicateWords []string   `json:"dublicateWords,omitempty"`
}

type ConversionData struct {
	APlusResult             []ConversionCheck `json:"aPlusResult,omitempty"`
	ImageResult             []ConversionCheck `json:"imageResult,omitempty"`
	VideoResult             []ConversionCheck `json:"videoResult,omitempty"`
	ProductReviewResult     []ConversionCheck `json:"productReviewResult,omitempty"`
	ProductStarRatingResult []ConversionCheck `json:"productStarRatingResult,omitempty"`
	ProductWithOutBuybox    []BuyboxProduct   `json:"ProductWithOutBuybox,omitempty"`
	AmazonReadyProducts     []ConversionCheck `json:"AmazonReadyproducts,omitempty"`
}

type ConversionCheck struct {
	ASIN   string          `json:"asin"`
	Status string          `json:"status,omitempty"`
	Data   json.RawMessage `json:"data,omitempty"`
}

type BuyboxProduct struct {
	ASIN  string          `json:"asin"`
	Title string          `json:"title,omitempty"`
	Data  json.RawMessage `json:"data,omitempty"`
}

type AccountHealth struct {
	HealthPercentage FlexFloat       `json:"getAccountHealthPercentge"`
	AccountHealth    json.RawMessage `json:"accountHealth,omitempty"`
}

// AccountDataEntry representa um payload bruto de conta armazenado no banco
type AccountDataEntry struct {
	ID        int64        `json:"id"`
	AccountID string       `json:"account_id"`
	Date      time.Time    `json:"date"`
	Payload   *AccountData `json:"payload"`
	CreatedAt time.Time    `json:"created_at"`
	UpdatedAt time.Time    `json:"updated_at"`
}
