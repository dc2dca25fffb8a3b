package core

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/JonMunkholm/csvdash/internal/config"
	"github.com/JonMunkholm/csvdash/internal/logging"
	"github.com/JonMunkholm/csvdash/internal/metrics"
)

// Service runs CSV analyses and keeps their results.
type Service struct {
	maxFileSize int64
	strict      bool

	limiter *UploadLimiter
	history *HistoryStore

	now func() time.Time
}

// NewService builds a Service from application configuration.
func NewService(cfg *config.Config) *Service {
	return &Service{
		maxFileSize: cfg.Upload.MaxFileSize,
		strict:      cfg.Analysis.StrictNumbers,
		limiter:     NewUploadLimiter(cfg.Upload.MaxConcurrent, cfg.Upload.MaxWaitTime),
		history:     NewHistoryStore(cfg.History.MaxEntries),
		now:         time.Now,
	}
}

// AnalyzeOptions tunes a single analysis.
type AnalyzeOptions struct {
	// ValueColumn picks the series column; see metrics.Options.
	ValueColumn string

	// Strict overrides the configured number parsing mode when set.
	Strict *bool
}

// Analyze reads a CSV upload named fileName from r, extracts its metrics and
// stores the result in history. An empty fileName is treated as pasted text
// and skips the extension check.
func (s *Service) Analyze(ctx context.Context, fileName string, r io.Reader, opts AnalyzeOptions) (*Analysis, error) {
	if fileName == "" {
		fileName = DefaultFileName
	} else if err := ValidateFileName(fileName); err != nil {
		return nil, err
	}

	if err := s.limiter.Acquire(ctx); err != nil {
		return nil, err
	}
	defer s.limiter.Release()

	start := time.Now()

	text, err := readInput(r, s.maxFileSize)
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	dm, err := metrics.Extract(text, s.metricOptions(opts))
	if err != nil {
		return nil, fmt.Errorf("analyze %s: %w", fileName, err)
	}

	a := &Analysis{
		ID:        uuid.NewString(),
		FileName:  fileName,
		CreatedAt: s.now().UTC(),
		SizeBytes: int64(len(text)),
		Metrics:   dm,
	}
	s.history.Add(a)

	client := ClientFromContext(ctx)
	logging.FromContext(ctx).Info("analysis complete",
		slog.String("analysis_id", a.ID),
		slog.String("file_name", a.FileName),
		slog.Int("rows", dm.RowCount),
		slog.Int("numeric_columns", len(dm.Columns)),
		slog.Bool("time_series", len(dm.TimeSeries) > 0),
		slog.String("client_ip", client.IP),
		slog.Int64("duration_ms", time.Since(start).Milliseconds()),
	)

	return a, nil
}

// AnalyzeText is Analyze for text that is already in memory.
func (s *Service) AnalyzeText(ctx context.Context, fileName, text string, opts AnalyzeOptions) (*Analysis, error) {
	return s.Analyze(ctx, fileName, strings.NewReader(text), opts)
}

func (s *Service) metricOptions(opts AnalyzeOptions) metrics.Options {
	strict := s.strict
	if opts.Strict != nil {
		strict = *opts.Strict
	}
	return metrics.Options{
		ValueColumn:   opts.ValueColumn,
		StrictNumbers: strict,
	}
}

// History returns stored analyses, newest first.
func (s *Service) History() []*Analysis {
	return s.history.List()
}

// GetAnalysis returns a stored analysis or an error wrapping ErrAnalysisNotFound.
func (s *Service) GetAnalysis(id string) (*Analysis, error) {
	return s.history.Get(id)
}

// ClearHistory drops every stored analysis.
func (s *Service) ClearHistory(ctx context.Context) int {
	n := s.history.Clear()
	logging.FromContext(ctx).Info("history cleared", slog.Int("removed", n))
	return n
}

// MaxFileSize returns the configured upload limit in bytes.
func (s *Service) MaxFileSize() int64 {
	return s.maxFileSize
}

// UploadLimiterStatus reports analysis slot usage.
func (s *Service) UploadLimiterStatus() UploadLimiterStatus {
	return s.limiter.Status()
}

// WaitForUploads blocks until in-flight analyses finish or ctx ends.
func (s *Service) WaitForUploads(ctx context.Context) error {
	return s.limiter.WaitForDrain(ctx)
}
