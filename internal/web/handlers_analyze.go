package web

import (
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"strconv"
	"strings"

	"github.com/JonMunkholm/csvdash/internal/core"
	"github.com/JonMunkholm/csvdash/internal/web/templates"
)

// multipartOverhead is the body allowance on top of the file size limit for
// multipart boundaries and other form fields.
const multipartOverhead = 1 << 20

// multipartMemory is how much of a multipart form is held in memory before
// spilling to temporary files.
const multipartMemory = 32 << 20

// analyzeInput is the CSV carried by one analyze request.
type analyzeInput struct {
	name  string
	body  io.Reader
	close func() error
}

// handleAnalyze accepts a multipart "file" upload, a "data" form field with
// raw CSV text, or a text/csv request body.
//
// htmx requests get the dashboard fragment, browser form posts are redirected
// to the analysis page and everything else gets the DashboardMetrics as JSON,
// with the stored analysis in Location and X-Analysis-ID.
func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, s.service.MaxFileSize()+multipartOverhead)

	in, err := readAnalyzeInput(r)
	if err != nil {
		s.respondError(w, r, err, statusFor(err))
		return
	}
	defer in.close()
	if r.MultipartForm != nil {
		defer r.MultipartForm.RemoveAll()
	}

	opts := core.AnalyzeOptions{ValueColumn: strings.TrimSpace(r.FormValue("valueColumn"))}
	if v, err := strconv.ParseBool(r.FormValue("strict")); err == nil {
		opts.Strict = &v
	}
	ctx := WithRequestMetadata(r.Context(), r)

	a, err := s.service.Analyze(ctx, in.name, in.body, opts)
	if err != nil {
		s.respondError(w, r, err, statusFor(err))
		return
	}

	switch {
	case isHTMX(r):
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Header().Set("HX-Trigger", "analysis-added")
		_ = templates.Dashboard(a).Render(r.Context(), w)
	case acceptsHTML(r):
		http.Redirect(w, r, "/analysis/"+a.ID, http.StatusSeeOther)
	default:
		w.Header().Set("Location", "/api/history/"+a.ID)
		w.Header().Set("X-Analysis-ID", a.ID)
		writeJSON(w, http.StatusCreated, a.Metrics)
	}
}

func readAnalyzeInput(r *http.Request) (*analyzeInput, error) {
	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	noop := func() error { return nil }

	switch mediaType {
	case "multipart/form-data":
		if err := r.ParseMultipartForm(multipartMemory); err != nil {
			return nil, formError(err)
		}
		file, header, err := r.FormFile("file")
		if err == nil {
			return &analyzeInput{name: header.Filename, body: file, close: file.Close}, nil
		}
		if !errors.Is(err, http.ErrMissingFile) {
			return nil, formError(err)
		}
	case "text/csv":
		return &analyzeInput{name: r.URL.Query().Get("name"), body: r.Body, close: noop}, nil
	default:
		if err := r.ParseForm(); err != nil {
			return nil, formError(err)
		}
	}

	if _, ok := r.Form["data"]; !ok {
		return nil, core.ErrNoInput
	}
	return &analyzeInput{
		name:  r.FormValue("fileName"),
		body:  strings.NewReader(r.FormValue("data")),
		close: noop,
	}, nil
}

var errInvalidForm = errors.New("read upload: invalid form")

// formError keeps body size errors recognizable and reports anything else as
// an invalid form.
func formError(err error) error {
	var maxBytesErr *http.MaxBytesError
	if errors.As(err, &maxBytesErr) {
		return fmt.Errorf("%w: %v", core.ErrFileTooLarge, err)
	}
	return fmt.Errorf("%w: %v", errInvalidForm, err)
}
