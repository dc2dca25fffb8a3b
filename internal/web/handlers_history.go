package web

import (
	"bytes"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/JonMunkholm/csvdash/internal/core"
	"github.com/JonMunkholm/csvdash/internal/export"
	"github.com/JonMunkholm/csvdash/internal/web/templates"
)

func summaries(list []*core.Analysis) []core.AnalysisSummary {
	out := make([]core.AnalysisSummary, len(list))
	for i, a := range list {
		out[i] = a.Summary()
	}
	return out
}

// handleListHistory returns stored analyses newest first.
func (s *Server) handleListHistory(w http.ResponseWriter, r *http.Request) {
	items := summaries(s.service.History())
	if isHTMX(r) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_ = templates.HistoryList(items).Render(r.Context(), w)
		return
	}
	writeJSON(w, http.StatusOK, items)
}

// handleGetAnalysis returns one stored analysis.
func (s *Server) handleGetAnalysis(w http.ResponseWriter, r *http.Request) {
	a, err := s.service.GetAnalysis(chi.URLParam(r, "id"))
	if err != nil {
		s.respondError(w, r, err, statusFor(err))
		return
	}
	writeJSON(w, http.StatusOK, a)
}

// handleClearHistory drops every stored analysis.
func (s *Server) handleClearHistory(w http.ResponseWriter, r *http.Request) {
	n := s.service.ClearHistory(r.Context())
	if isHTMX(r) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_ = templates.HistoryList(nil).Render(r.Context(), w)
		return
	}
	writeJSON(w, http.StatusOK, map[string]int{"removed": n})
}

// handleExport downloads a stored analysis as csv or xlsx.
func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	format, err := export.ParseFormat(r.URL.Query().Get("format"))
	if err != nil {
		s.respondError(w, r, err, statusFor(err))
		return
	}
	a, err := s.service.GetAnalysis(chi.URLParam(r, "id"))
	if err != nil {
		s.respondError(w, r, err, statusFor(err))
		return
	}

	var buf bytes.Buffer
	if err := export.Write(&buf, a, format); err != nil {
		s.respondError(w, r, err, statusFor(err))
		return
	}

	w.Header().Set("Content-Type", format.ContentType())
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", export.FileName(a, format)))
	_, _ = buf.WriteTo(w)
}
