package http

import (
	"encoding/json"
	"errors"
	"maps"
	"net/http"
	"slices"
	"strconv"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/aimatrix/pkg/domain/model"
	"github.com/secmon-lab/aimatrix/pkg/usecase"
	"github.com/secmon-lab/aimatrix/pkg/utils/errutil"
)

// createOpportunityRequest mirrors the creation form. Scores may be sent as
// JSON numbers or as strings; both go through the same coercion as the form.
type createOpportunityRequest struct {
	Name              string                     `json:"name"`
	Description       string                     `json:"description"`
	Scores            map[string]json.RawMessage `json:"scores"`
	QuickWinPotential bool                       `json:"quickWinPotential"`
	TechnologyType    string                     `json:"technologyType"`
}

func (req *createOpportunityRequest) toDraft() (*model.Draft, error) {
	draft := model.NewDraft()
	draft.Name = req.Name
	draft.Description = req.Description
	draft.QuickWinPotential = req.QuickWinPotential
	if req.TechnologyType != "" {
		draft.TechnologyType = req.TechnologyType
	}

	verr := &model.ValidationError{}
	for _, key := range slices.Sorted(maps.Keys(req.Scores)) {
		if _, ok := model.LookupScoreField(key); !ok {
			verr.Add(key, "unknown score field")
			continue
		}
		if err := draft.Set(key, rawScoreText(req.Scores[key])); err != nil {
			return nil, goerr.Wrap(err, "failed to set score", goerr.V(model.FieldKey, key))
		}
	}

	if err := verr.OrNil(); err != nil {
		return nil, err
	}
	return draft, nil
}

// rawScoreText unquotes JSON strings and keeps any other literal as typed
func rawScoreText(raw json.RawMessage) string {
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	return string(raw)
}

func (s *Server) listOpportunitiesHandler(w http.ResponseWriter, r *http.Request) {
	opportunities, err := s.opportunity.ListOpportunities(r.Context())
	if err != nil {
		errutil.HandleHTTP(r.Context(), w, err, http.StatusInternalServerError)
		return
	}

	resp := make([]opportunityResponse, len(opportunities))
	for i, o := range opportunities {
		resp[i] = toOpportunityResponse(o)
	}
	writeJSON(w, r, http.StatusOK, resp)
}

func (s *Server) getOpportunityHandler(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		errutil.HandleHTTP(r.Context(), w, err, http.StatusBadRequest)
		return
	}

	o, err := s.opportunity.GetOpportunity(r.Context(), id)
	if err != nil {
		if errors.Is(err, usecase.ErrOpportunityNotFound) {
			errutil.HandleHTTP(r.Context(), w, err, http.StatusNotFound)
			return
		}
		errutil.HandleHTTP(r.Context(), w, err, http.StatusInternalServerError)
		return
	}

	writeJSON(w, r, http.StatusOK, toOpportunityResponse(o))
}

func (s *Server) createOpportunityHandler(w http.ResponseWriter, r *http.Request) {
	var req createOpportunityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		errutil.HandleHTTP(r.Context(), w, goerr.Wrap(err, "invalid request body"), http.StatusBadRequest)
		return
	}

	created, err := s.createFromRequest(r, &req)
	if err != nil {
		var verr *model.ValidationError
		if errors.As(err, &verr) {
			writeJSON(w, r, http.StatusUnprocessableEntity, toValidationErrorResponse(verr))
			return
		}
		errutil.HandleHTTP(r.Context(), w, err, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Location", "/api/opportunities/"+strconv.FormatInt(created.ID, 10))
	writeJSON(w, r, http.StatusCreated, toOpportunityResponse(created))
}

func (s *Server) createFromRequest(r *http.Request, req *createOpportunityRequest) (*model.Opportunity, error) {
	draft, err := req.toDraft()
	if err != nil {
		return nil, err
	}
	return s.opportunity.SubmitDraft(r.Context(), draft)
}

func (s *Server) gridHandler(w http.ResponseWriter, r *http.Request) {
	grid, err := s.opportunity.BuildGrid(r.Context())
	if err != nil {
		errutil.HandleHTTP(r.Context(), w, err, http.StatusInternalServerError)
		return
	}
	writeJSON(w, r, http.StatusOK, toGridResponse(grid))
}
