package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/eduguide/advisor/internal/catalog"
	"github.com/eduguide/advisor/internal/enrich"
)

// handleAdvise answers one advising message.
func (s *Server) handleAdvise(w http.ResponseWriter, r *http.Request) {
	var req enrich.Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	if err := s.validate.Struct(req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, validationMessage(err))
		return
	}

	resp := s.advisor.Advise(r.Context(), req)
	s.jsonResponse(w, http.StatusOK, resp)
}

// handleListColleges returns the catalog, optionally filtered by state
// and/or type query parameters.
func (s *Server) handleListColleges(w http.ResponseWriter, r *http.Request) {
	state := strings.ToUpper(r.URL.Query().Get("state"))
	schoolType := r.URL.Query().Get("type")

	colleges := s.catalog.All()
	if state != "" || schoolType != "" {
		filtered := make([]catalog.College, 0, len(colleges))
		for _, c := range colleges {
			if state != "" && c.State != state {
				continue
			}
			if schoolType != "" && !strings.EqualFold(string(c.Type), schoolType) {
				continue
			}
			filtered = append(filtered, c)
		}
		colleges = filtered
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"colleges": colleges,
		"count":    len(colleges),
	})
}

// handleGetCollege returns one college by ID.
func (s *Server) handleGetCollege(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	college, ok := s.catalog.ByID(id)
	if !ok {
		s.errorResponse(w, http.StatusNotFound, "college not found: "+id)
		return
	}

	s.jsonResponse(w, http.StatusOK, college)
}

// handleListStates returns the distinct states in the catalog.
func (s *Server) handleListStates(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]any{"states": s.catalog.States()})
}

// handleListTypes returns the distinct school types in the catalog.
func (s *Server) handleListTypes(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]any{"types": s.catalog.Types()})
}

// validationMessage flattens a validator error into a client-readable
// message.
func validationMessage(err error) string {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		first := verrs[0]
		return "invalid field '" + first.Field() + "': failed '" + first.Tag() + "' rule"
	}
	return "invalid request"
}
