package core

import (
	"time"

	"github.com/JonMunkholm/csvdash/internal/metrics"
)

// Analysis is one completed extraction kept in the history store.
// It is never modified after it is stored.
type Analysis struct {
	ID        string                    `json:"id" yaml:"id"`
	FileName  string                    `json:"fileName" yaml:"fileName"`
	CreatedAt time.Time                 `json:"createdAt" yaml:"createdAt"`
	SizeBytes int64                     `json:"sizeBytes" yaml:"sizeBytes"`
	Metrics   *metrics.DashboardMetrics `json:"metrics" yaml:"metrics"`
}

// AnalysisSummary is the short form used by history listings.
type AnalysisSummary struct {
	ID        string    `json:"id"`
	FileName  string    `json:"fileName"`
	CreatedAt time.Time `json:"createdAt"`
	RowCount  int       `json:"rowCount"`
	Summary   string    `json:"summary"`
}

// Summary returns the listing form of the analysis.
func (a *Analysis) Summary() AnalysisSummary {
	s := AnalysisSummary{
		ID:        a.ID,
		FileName:  a.FileName,
		CreatedAt: a.CreatedAt,
	}
	if a.Metrics != nil {
		s.RowCount = a.Metrics.RowCount
		s.Summary = a.Metrics.Summary
	}
	return s
}
