package adapthttp

import (
	"fmt"
	"net/http"

	log "github.com/sirupsen/logrus"

	"slimdown/internal/export"
)

func (s *Server) handleRankings(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	ctx := r.Context()
	standings, err := s.stats.Standings(ctx)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	summary, err := s.stats.Summarize(ctx)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"standings": standings, "summary": summary})
}

func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	format := r.URL.Query().Get("format")
	if format == "" {
		format = "csv"
	}

	standings, err := s.stats.Standings(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}

	switch format {
	case "csv":
		w.Header().Set("Content-Type", "text/csv; charset=utf-8")
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", export.Filename(format)))
		if err := export.WriteCSV(w, standings); err != nil {
			// Headers are already sent; all we can do is log.
			log.WithError(err).Error("csv export failed")
		}
	case "xlsx":
		w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", export.Filename(format)))
		if err := export.WriteXLSX(w, standings); err != nil {
			log.WithError(err).Error("xlsx export failed")
		}
	default:
		writeError(w, http.StatusBadRequest, fmt.Errorf("unknown export format %q", format))
	}
}
