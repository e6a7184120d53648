package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/matzehuels/mazesearch/pkg/buildinfo"
	errs "github.com/matzehuels/mazesearch/pkg/errors"
	"github.com/matzehuels/mazesearch/pkg/pipeline"
	"github.com/matzehuels/mazesearch/pkg/render"
	"github.com/matzehuels/mazesearch/pkg/report"
	"github.com/matzehuels/mazesearch/pkg/store"
)

// maxCellSize bounds the PNG cell size a client may ask for.
const maxCellSize = 200

type solveRequest struct {
	Maze      string `json:"maze"`
	Algorithm string `json:"algorithm,omitempty"`
	Heuristic string `json:"heuristic,omitempty"`
}

type runsResponse struct {
	Runs []report.Report `json:"runs"`
}

type healthResponse struct {
	Status string `json:"status"`
	buildinfo.Info
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, healthResponse{Status: "ok", Info: buildinfo.Get()})
}

func (s *Server) handleSolve(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, errs.MaxMazeBytes+4096)

	var req solveRequest
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		s.writeError(w, r, errs.Wrap(errs.ErrCodeInvalidInput, err, "invalid request body"))
		return
	}

	rep, err := s.runner.Solve(r.Context(), pipeline.Options{
		Maze:      req.Maze,
		Source:    "api",
		Algorithm: req.Algorithm,
		Heuristic: req.Heuristic,
	})
	noSolution := errs.Is(err, errs.ErrCodeNoSolution)
	if err != nil && !noSolution {
		s.writeError(w, r, err)
		return
	}

	if err := s.store.Save(r.Context(), &rep); err != nil {
		s.writeError(w, r, errs.Wrap(errs.ErrCodeUnavailable, err, "cannot store run"))
		return
	}

	status := http.StatusCreated
	if noSolution {
		status = http.StatusUnprocessableEntity
	}
	w.Header().Set("Location", "/v1/runs/"+rep.ID)
	s.writeJSON(w, status, rep)
}

func (s *Server) handleListRuns(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			s.writeError(w, r, errs.New(errs.ErrCodeInvalidInput, "limit must be a positive integer"))
			return
		}
		limit = n
	}

	runs, err := s.store.List(r.Context(), limit)
	if err != nil {
		s.writeError(w, r, errs.Wrap(errs.ErrCodeUnavailable, err, "cannot list runs"))
		return
	}
	s.writeJSON(w, http.StatusOK, runsResponse{Runs: runs})
}

func (s *Server) handleGetRun(w http.ResponseWriter, r *http.Request) {
	rep, err := s.loadRun(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, rep)
}

func (s *Server) handleDeleteRun(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := errs.ValidateRunID(id); err != nil {
		s.writeError(w, r, err)
		return
	}
	if err := s.store.Delete(r.Context(), id); err != nil {
		s.writeError(w, r, errs.Wrap(errs.ErrCodeUnavailable, err, "cannot delete run"))
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	format, err := render.ParseFormat(chi.URLParam(r, "format"))
	if err != nil {
		s.writeError(w, r, errs.Wrap(errs.ErrCodeInvalidFormat, err, "invalid format"))
		return
	}
	opts, err := renderOptions(r, format)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	rep, err := s.loadRun(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	artifacts, err := s.runner.Render(r.Context(), rep, opts)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", format.ContentType())
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(artifacts[format]); err != nil {
		s.logger.Warn("write artifact", "err", err)
	}
}

// loadRun fetches the run named by the {id} URL parameter.
func (s *Server) loadRun(r *http.Request) (report.Report, error) {
	id := chi.URLParam(r, "id")
	if err := errs.ValidateRunID(id); err != nil {
		return report.Report{}, err
	}
	rep, err := s.store.Get(r.Context(), id)
	if errors.Is(err, store.ErrNotFound) {
		return report.Report{}, errs.Wrap(errs.ErrCodeNotFound, err, "run %s not found", id)
	}
	if err != nil {
		return report.Report{}, errs.Wrap(errs.ErrCodeUnavailable, err, "cannot load run")
	}
	return rep, nil
}

// renderOptions reads the drawing switches from the query string:
// solution (default true), explored, heuristic_labels and cell_size.
func renderOptions(r *http.Request, format render.Format) (pipeline.Options, error) {
	q := r.URL.Query()
	opts := pipeline.Options{Formats: []string{string(format)}}

	flags := []struct {
		name string
		dst  *bool
	}{
		{"explored", &opts.Explored},
		{"heuristic_labels", &opts.HeuristicLabels},
	}
	for _, f := range flags {
		if v := q.Get(f.name); v != "" {
			b, err := strconv.ParseBool(v)
			if err != nil {
				return opts, errs.New(errs.ErrCodeInvalidInput, "%s must be a boolean", f.name)
			}
			*f.dst = b
		}
	}
	if v := q.Get("solution"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return opts, errs.New(errs.ErrCodeInvalidInput, "solution must be a boolean")
		}
		opts.HideSolution = !b
	}
	if v := q.Get("cell_size"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 4 || n > maxCellSize {
			return opts, errs.New(errs.ErrCodeInvalidInput, "cell_size must be between 4 and %d", maxCellSize)
		}
		opts.CellSize = n
	}
	return opts, nil
}
