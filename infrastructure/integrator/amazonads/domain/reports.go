// Package domain contém as estruturas brutas retornadas pela Amazon Ads API.
package domain

// CampaignReportRow é uma linha do relatório de produtos anunciados
type CampaignReportRow struct {
	ASIN               string  `json:"asin"`
	CampaignID         string  `json:"campaignId"`
	CampaignName       string  `json:"campaignName"`
	Cost               float64 `json:"cost"`
	Sales30d           float64 `json:"sales30d"`
	Purchases30d       int     `json:"purchases30d"`
	Clicks             int     `json:"clicks"`
	Impressions        int     `json:"impressions"`
}

// KeywordReportRow é uma linha do relatório de performance de keywords
type KeywordReportRow struct {
	KeywordText        string  `json:"keywordText"`
	CampaignID         string  `json:"campaignId"`
	CampaignName       string  `json:"campaignName"`
	MatchType          string  `json:"matchType"`
	Cost               float64 `json:"cost"`
	AttributedSales30d float64 `json:"sales30d"`
	Clicks             int     `json:"clicks"`
	Impressions        int     `json:"impressions"`
}

// NegativeKeywordRow é uma keyword negativada de um grupo de anúncios
type NegativeKeywordRow struct {
	KeywordID  int64  `json:"keywordId"`
	AdGroupID  int64  `json:"adGroupId"`
	CampaignID int64  `json:"campaignId"`
	KeywordText string `json:"keywordText"`
	State      string `json:"state"`
}
