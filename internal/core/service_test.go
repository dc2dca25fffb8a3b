package core

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JonMunkholm/csvdash/internal/config"
	"github.com/JonMunkholm/csvdash/internal/metrics"
)

const salesCSV = `Month,Sales,Units,Profit
Jan,5000,100,1000
Feb,5500,120,1200
Mar,5800,150,1400
Apr,7200,180,2100`

func newTestService(t *testing.T) *Service {
	t.Helper()
	cfg := config.Default()
	cfg.Upload.MaxFileSize = 1024
	cfg.History.MaxEntries = 3
	return NewService(cfg)
}

func TestService_Analyze(t *testing.T) {
	svc := newTestService(t)
	fixed := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return fixed }

	a, err := svc.Analyze(context.Background(), "sales.csv", strings.NewReader(salesCSV), AnalyzeOptions{})
	require.NoError(t, err)

	assert.NotEmpty(t, a.ID)
	assert.Equal(t, "sales.csv", a.FileName)
	assert.Equal(t, fixed, a.CreatedAt)
	assert.Equal(t, int64(len(salesCSV)), a.SizeBytes)
	require.Len(t, a.Metrics.TopMetrics, 3)
	assert.Equal(t, 23500.0, a.Metrics.TopMetrics[0].Value)

	stored, err := svc.GetAnalysis(a.ID)
	require.NoError(t, err)
	assert.Same(t, a, stored)
}

func TestService_AnalyzeRejectsNonCSV(t *testing.T) {
	svc := newTestService(t)
	_, err := svc.Analyze(context.Background(), "sales.txt", strings.NewReader(salesCSV), AnalyzeOptions{})
	assert.ErrorIs(t, err, ErrNotCSV)
	assert.Empty(t, svc.History())
}

func TestService_AnalyzeAcceptsUpperCaseExtension(t *testing.T) {
	svc := newTestService(t)
	_, err := svc.Analyze(context.Background(), "SALES.CSV", strings.NewReader(salesCSV), AnalyzeOptions{})
	assert.NoError(t, err)
}

func TestService_AnalyzeEmpty(t *testing.T) {
	svc := newTestService(t)
	_, err := svc.AnalyzeText(context.Background(), "", "  \n\t ", AnalyzeOptions{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, metrics.ErrEmptyInput))
	assert.Equal(t, "FILE005", MapError(err).Code)
	assert.Empty(t, svc.History())
}

func TestService_AnalyzeTooLarge(t *testing.T) {
	svc := newTestService(t)
	big := "Value\n" + strings.Repeat("1\n", 1024)
	_, err := svc.AnalyzeText(context.Background(), "big.csv", big, AnalyzeOptions{})
	assert.ErrorIs(t, err, ErrFileTooLarge)
}

func TestService_AnalyzeTextDefaultName(t *testing.T) {
	svc := newTestService(t)
	a, err := svc.AnalyzeText(context.Background(), "", salesCSV, AnalyzeOptions{})
	require.NoError(t, err)
	assert.Equal(t, DefaultFileName, a.FileName)
}

func TestService_AnalyzeStripsBOM(t *testing.T) {
	svc := newTestService(t)
	a, err := svc.AnalyzeText(context.Background(), "", "\uFEFFSales\n1\n2", AnalyzeOptions{})
	require.NoError(t, err)
	require.Len(t, a.Metrics.TopMetrics, 1)
	assert.Equal(t, "Sales", a.Metrics.TopMetrics[0].Name)
}

func TestService_StrictOverride(t *testing.T) {
	svc := newTestService(t)
	text := "Rate\n10%\n20%"

	a, err := svc.AnalyzeText(context.Background(), "", text, AnalyzeOptions{})
	require.NoError(t, err)
	require.Len(t, a.Metrics.TopMetrics, 1)
	assert.Equal(t, 30.0, a.Metrics.TopMetrics[0].Value)

	strict := true
	a, err = svc.AnalyzeText(context.Background(), "", text, AnalyzeOptions{Strict: &strict})
	require.NoError(t, err)
	assert.Empty(t, a.Metrics.TopMetrics)
}

func TestService_StrictFromConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Analysis.StrictNumbers = true
	svc := NewService(cfg)

	a, err := svc.AnalyzeText(context.Background(), "", "Rate\n10%\n20%", AnalyzeOptions{})
	require.NoError(t, err)
	assert.Empty(t, a.Metrics.TopMetrics)

	strict := false
	a, err = svc.AnalyzeText(context.Background(), "", "Rate\n10%\n20%", AnalyzeOptions{Strict: &strict})
	require.NoError(t, err)
	require.Len(t, a.Metrics.TopMetrics, 1)
}

func TestService_Busy(t *testing.T) {
	cfg := config.Default()
	cfg.Upload.MaxConcurrent = 1
	cfg.Upload.MaxWaitTime = 20 * time.Millisecond
	svc := NewService(cfg)

	require.True(t, svc.limiter.TryAcquire())
	defer svc.limiter.Release()

	_, err := svc.AnalyzeText(context.Background(), "", salesCSV, AnalyzeOptions{})
	assert.ErrorIs(t, err, ErrTooManyUploads)
	assert.Equal(t, 1, svc.UploadLimiterStatus().Active)
}

func TestService_HistoryLifecycle(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()
	for i := 0; i < 4; i++ {
		_, err := svc.AnalyzeText(ctx, "", salesCSV, AnalyzeOptions{})
		require.NoError(t, err)
	}
	assert.Len(t, svc.History(), 3)

	assert.Equal(t, 3, svc.ClearHistory(ctx))
	assert.Empty(t, svc.History())

	_, err := svc.GetAnalysis("nope")
	assert.ErrorIs(t, err, ErrAnalysisNotFound)
	assert.NoError(t, svc.WaitForUploads(ctx))
}
