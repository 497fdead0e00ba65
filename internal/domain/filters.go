package domain

import "time"

type AnalysisFilters struct {
	StartDate *time.Time
	EndDate   *time.Time
}
