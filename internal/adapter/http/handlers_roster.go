package adapthttp

import (
	"errors"
	"net/http"
	"strings"

	"slimdown/internal/app"
	"slimdown/internal/domain"
	"slimdown/internal/metrics"
)

func (s *Server) handleContestants(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	switch r.Method {
	case http.MethodGet:
		items, err := s.stats.Roster(ctx)
		if err != nil {
			writeError(w, http.StatusInternalServerError, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"items": items})

	case http.MethodPost:
		var body struct {
			Name           string  `json:"name"`
			DateOfBirth    string  `json:"date_of_birth"`
			StartingWeight float64 `json:"starting_weight"`
		}
		if err := parseJSON(r, &body); err != nil {
			writeError(w, http.StatusBadRequest, err)
			return
		}

		c, err := s.roster.Enroll(ctx, body.Name, body.DateOfBirth, body.StartingWeight)
		switch {
		case errors.Is(err, app.ErrContestantExists):
			writeError(w, http.StatusConflict, err)
			return
		case errors.Is(err, app.ErrNameRequired), errors.Is(err, domain.ErrInvalidDateOfBirth):
			writeError(w, http.StatusBadRequest, err)
			return
		case err != nil:
			writeError(w, http.StatusInternalServerError, err)
			return
		}
		metrics.IncContestantEnrolled()

		detail, err := s.stats.Describe(ctx, c.Name)
		if err != nil {
			writeError(w, http.StatusInternalServerError, err)
			return
		}
		writeJSON(w, http.StatusCreated, map[string]any{"contestant": detail})

	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

func (s *Server) handleContestant(w http.ResponseWriter, r *http.Request) {
	name := strings.TrimPrefix(r.URL.Path, "/contestants/")
	if rest, ok := strings.CutSuffix(name, "/weight"); ok {
		s.handleWeighIn(w, r, rest)
		return
	}
	if name == "" {
		writeError(w, http.StatusNotFound, app.ErrContestantNotFound)
		return
	}

	ctx := r.Context()

	switch r.Method {
	case http.MethodGet:
		detail, err := s.stats.Describe(ctx, name)
		if errors.Is(err, app.ErrContestantNotFound) {
			writeError(w, http.StatusNotFound, err)
			return
		}
		if err != nil {
			writeError(w, http.StatusInternalServerError, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"contestant": detail})

	case http.MethodPatch:
		var body struct {
			DateOfBirth    *string  `json:"date_of_birth"`
			StartingWeight *float64 `json:"starting_weight"`
			CurrentWeight  *float64 `json:"current_weight"`
		}
		if err := parseJSON(r, &body); err != nil {
			writeError(w, http.StatusBadRequest, err)
			return
		}

		_, err := s.roster.Edit(ctx, name, app.EditRequest{
			DateOfBirth:    body.DateOfBirth,
			StartingWeight: body.StartingWeight,
			CurrentWeight:  body.CurrentWeight,
		})
		switch {
		case errors.Is(err, app.ErrContestantNotFound):
			writeError(w, http.StatusNotFound, err)
			return
		case errors.Is(err, domain.ErrInvalidDateOfBirth):
			writeError(w, http.StatusBadRequest, err)
			return
		case err != nil:
			writeError(w, http.StatusInternalServerError, err)
			return
		}

		detail, err := s.stats.Describe(ctx, name)
		if err != nil {
			writeError(w, http.StatusInternalServerError, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"contestant": detail})

	case http.MethodDelete:
		err := s.roster.Remove(ctx, name)
		if errors.Is(err, app.ErrContestantNotFound) {
			writeError(w, http.StatusNotFound, err)
			return
		}
		if err != nil {
			writeError(w, http.StatusInternalServerError, err)
			return
		}
		metrics.IncContestantRemoved()
		writeJSON(w, http.StatusOK, map[string]any{"ok": true})

	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

func (s *Server) handleWeighIn(w http.ResponseWriter, r *http.Request, name string) {
	if r.Method != http.MethodPut {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	var body struct {
		Weight float64 `json:"weight"`
	}
	if err := parseJSON(r, &body); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	ctx := r.Context()
	if _, err := s.roster.RecordWeight(ctx, name, body.Weight); err != nil {
		if errors.Is(err, app.ErrContestantNotFound) {
			writeError(w, http.StatusNotFound, err)
			return
		}
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	metrics.IncWeighIn()

	detail, err := s.stats.Describe(ctx, name)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"contestant": detail})
}
