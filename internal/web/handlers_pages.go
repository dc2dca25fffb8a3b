package web

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/JonMunkholm/csvdash/internal/web/templates"
)

// handleIndex renders the upload page with recent analyses.
func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_ = templates.UploadPage(summaries(s.service.History()), s.service.MaxFileSize()).Render(r.Context(), w)
}

// handleAnalysisPage renders the dashboard of a stored analysis.
func (s *Server) handleAnalysisPage(w http.ResponseWriter, r *http.Request) {
	a, err := s.service.GetAnalysis(chi.URLParam(r, "id"))
	if err != nil {
		s.respondError(w, r, err, statusFor(err))
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_ = templates.DashboardPage(a).Render(r.Context(), w)
}

// handleHealth reports liveness and analysis slot usage.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status":   "ok",
		"uploads":  s.service.UploadLimiterStatus(),
		"analyses": len(s.service.History()),
	})
}
