package server

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"

	errs "github.com/matzehuels/mazesearch/pkg/errors"
	"github.com/matzehuels/mazesearch/pkg/observability"
)

type errorBody struct {
	Code      errs.Code `json:"code"`
	Message   string    `json:"message"`
	RequestID string    `json:"request_id,omitempty"`
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Warn("write response", "err", err)
	}
}

// writeError answers with the status and code carried by err. Errors
// without a code are reported as internal and their text is not exposed.
func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := errs.HTTPStatus(err)
	code := errs.GetCode(err)
	msg := errs.UserMessage(err)
	if code == "" {
		code = errs.ErrCodeInternal
		msg = "internal error"
	}

	if status >= http.StatusInternalServerError {
		s.logger.Error("request failed", "route", routePattern(r), "err", err)
	} else {
		s.logger.Debug("request rejected", "route", routePattern(r), "err", err)
	}
	observability.HTTP().OnError(r.Context(), r.Method, routePattern(r), err)

	s.writeJSON(w, status, errorBody{
		Code:      code,
		Message:   msg,
		RequestID: middleware.GetReqID(r.Context()),
	})
}
