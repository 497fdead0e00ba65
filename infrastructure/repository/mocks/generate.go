package mocks

//go:generate go run go.uber.org/mock/mockgen -destination=mock_account_repository.go -package=mocks github.com/vfg2006/seller-analytics-api/infrastructure/repository AccountRepository
//go:generate go run go.uber.org/mock/mockgen -destination=mock_account_data_repository.go -package=mocks github.com/vfg2006/seller-analytics-api/infrastructure/repository AccountDataRepository
//go:generate go run go.uber.org/mock/mockgen -destination=mock_dashboard_snapshot_repository.go -package=mocks github.com/vfg2006/seller-analytics-api/infrastructure/repository DashboardSnapshotRepository
//go:generate go run go.uber.org/mock/mockgen -destination=mock_user_repository.go -package=mocks github.com/vfg2006/seller-analytics-api/infrastructure/repository UserRepository
