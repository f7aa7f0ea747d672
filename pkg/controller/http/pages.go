package http

import (
	"bytes"
	"embed"
	"errors"
	"html/template"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/aimatrix/pkg/domain/model"
	"github.com/secmon-lab/aimatrix/pkg/domain/types"
	"github.com/secmon-lab/aimatrix/pkg/usecase"
	"github.com/secmon-lab/aimatrix/pkg/utils/errutil"
	"github.com/secmon-lab/aimatrix/pkg/utils/safe"
)

//go:embed templates static
var assets embed.FS

type legendEntry struct {
	Label       string
	Token       string
	Description string
}

type legend struct {
	Title   string
	Entries []legendEntry
}

type pageData struct {
	*usecase.View
	Quadrants []model.Quadrant
	Legends   []legend
}

func parsePages() (*template.Template, error) {
	tmpl, err := template.ParseFS(assets, "templates/*.html")
	if err != nil {
		return nil, goerr.Wrap(err, "failed to parse page templates")
	}
	return tmpl, nil
}

// levelLegends describes every level of the impact, feasibility and risk axes
func levelLegends() []legend {
	axes := []struct {
		name  string
		token func(types.Level) string
	}{
		{model.AxisImpact, nil},
		{model.AxisFeasibility, nil},
		{model.AxisRisk, model.RiskToken},
	}

	out := make([]legend, 0, len(axes))
	for _, axis := range axes {
		l := legend{Title: axis.name}
		for _, level := range types.Levels() {
			entry := legendEntry{
				Label:       level.String() + " " + axis.name,
				Description: model.LevelDescription(axis.name, level),
			}
			if axis.token != nil {
				entry.Token = axis.token(level)
			}
			l.Entries = append(l.Entries, entry)
		}
		out = append(out, l)
	}
	return out
}

// renderDashboard writes the full page with the given status code
func (s *Server) renderDashboard(w http.ResponseWriter, r *http.Request, status int) {
	view, err := s.dashboard.View(r.Context())
	if err != nil {
		errutil.HandleHTTP(r.Context(), w, goerr.Wrap(err, "failed to build dashboard view"), http.StatusInternalServerError)
		return
	}

	data := pageData{
		View:      view,
		Quadrants: model.Quadrants(),
		Legends:   levelLegends(),
	}

	var buf bytes.Buffer
	if err := s.pages.ExecuteTemplate(&buf, "dashboard.html", data); err != nil {
		errutil.HandleHTTP(r.Context(), w, goerr.Wrap(err, "failed to render dashboard"), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	safe.Write(r.Context(), w, buf.Bytes())
}

// apply runs events against the dashboard and redirects back to it
func (s *Server) apply(w http.ResponseWriter, r *http.Request, events ...usecase.Event) {
	if err := s.dashboard.Apply(r.Context(), events...); err != nil {
		s.handleEventError(w, r, err)
		return
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (s *Server) handleEventError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, model.ErrValidation):
		s.renderDashboard(w, r, http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrOpportunityNotFound):
		errutil.HandleHTTP(r.Context(), w, err, http.StatusNotFound)
	case errors.Is(err, usecase.ErrFormHidden), errors.Is(err, model.ErrUnknownField):
		errutil.HandleHTTP(r.Context(), w, err, http.StatusConflict)
	default:
		errutil.HandleHTTP(r.Context(), w, err, http.StatusInternalServerError)
	}
}

func (s *Server) indexHandler(w http.ResponseWriter, r *http.Request) {
	s.renderDashboard(w, r, http.StatusOK)
}

func (s *Server) toggleFormHandler(w http.ResponseWriter, r *http.Request) {
	s.apply(w, r, usecase.ToggleForm{})
}

func (s *Server) cancelFormHandler(w http.ResponseWriter, r *http.Request) {
	s.apply(w, r, usecase.CancelForm{})
}

// submitFormHandler replays every posted field as a change and then submits.
// An unchecked checkbox is not posted, so its absence clears the flag.
func (s *Server) submitFormHandler(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		errutil.HandleHTTP(r.Context(), w, goerr.Wrap(err, "failed to parse form"), http.StatusBadRequest)
		return
	}

	var events []usecase.Event
	for _, key := range model.FieldKeys() {
		if key == model.FieldQuickWinPotential {
			events = append(events, usecase.ChangeField{Field: key, Value: r.PostForm.Get(key)})
			continue
		}
		if values, ok := r.PostForm[key]; ok && len(values) > 0 {
			events = append(events, usecase.ChangeField{Field: key, Value: values[0]})
		}
	}
	events = append(events, usecase.SubmitForm{})

	s.apply(w, r, events...)
}

func (s *Server) selectHandler(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		errutil.HandleHTTP(r.Context(), w, err, http.StatusBadRequest)
		return
	}
	s.apply(w, r, usecase.SelectOpportunity{ID: id})
}

func (s *Server) clearSelectionHandler(w http.ResponseWriter, r *http.Request) {
	s.apply(w, r, usecase.ClearSelection{})
}

func parseID(r *http.Request) (int64, error) {
	raw := chi.URLParam(r, "id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, goerr.New("invalid opportunity ID", goerr.V(usecase.OpportunityIDKey, raw))
	}
	return id, nil
}
