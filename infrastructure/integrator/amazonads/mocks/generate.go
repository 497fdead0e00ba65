package mocks

//go:generate go run go.uber.org/mock/mockgen -destination=mock_ads_integrator.go -package=mocks github.com/vfg2006/seller-analytics-api/infrastructure/integrator/amazonads AdsIntegrator
