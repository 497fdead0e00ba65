package mocks

//go:generate go run go.uber.org/mock/mockgen -destination=mock_snapshotter.go -package=mocks github.com/vfg2006/seller-analytics-api/internal/usecases/snapshotting Snapshotter
