package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/m-mizutani/gt"
	httpctrl "github.com/secmon-lab/aimatrix/pkg/controller/http"
	"github.com/secmon-lab/aimatrix/pkg/domain/model"
	"github.com/secmon-lab/aimatrix/pkg/domain/types"
	"github.com/secmon-lab/aimatrix/pkg/repository/memory"
	"github.com/secmon-lab/aimatrix/pkg/usecase"
)

func setupServer(t *testing.T, seed ...model.OpportunityInput) (*httpctrl.Server, *usecase.UseCases) {
	t.Helper()
	uc := usecase.New(memory.New())
	if len(seed) > 0 {
		_, err := uc.Opportunity.SeedOpportunities(context.Background(), seed)
		gt.NoError(t, err).Required()
	}

	srv, err := httpctrl.New(uc.Dashboard, uc.Opportunity)
	gt.NoError(t, err).Required()
	return srv, uc
}

func seedInput(name string, impact, feasibility types.Score) model.OpportunityInput {
	scores := model.DefaultScores()
	scores.OverallBusinessImpact = impact
	scores.OverallFeasibilityReadiness = feasibility
	return model.OpportunityInput{
		Name:           name,
		Description:    name + " description",
		Scores:         scores,
		TechnologyType: types.TechGenerativeAI,
	}
}

func riskyInput(name string, risk types.Score) model.OpportunityInput {
	in := seedInput(name, 9, 2)
	in.Scores.ModelBiasRisk = risk
	in.Scores.CostVsRoiAssessment = risk
	in.Scores.TechnicalComplexity = risk
	return in
}

func postForm(srv http.Handler, path string, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	srv.ServeHTTP(w, req)
	return w
}

func get(srv http.Handler, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	srv.ServeHTTP(w, req)
	return w
}

func TestHealthz(t *testing.T) {
	srv, _ := setupServer(t)
	w := get(srv, "/healthz")
	gt.Number(t, w.Code).Equal(http.StatusOK)
	gt.Value(t, w.Body.String()).Equal("ok")
}

func TestStaticAssets(t *testing.T) {
	srv, _ := setupServer(t)
	w := get(srv, "/static/style.css")
	gt.Number(t, w.Code).Equal(http.StatusOK)
	gt.String(t, w.Body.String()).Contains(".grid")
}

func TestIndex(t *testing.T) {
	srv, _ := setupServer(t,
		seedInput("Automated Text Extraction from PDFs", 9, 9),
		seedInput("AI for Predicting Office Supply Needs", 2, 2),
		riskyInput("Generative AI for Initial Design Concepts", 9),
	)

	w := get(srv, "/")
	gt.Number(t, w.Code).Equal(http.StatusOK)
	body := w.Body.String()
	gt.String(t, body).Contains("1. Quick Wins / Must-Dos")
	gt.String(t, body).Contains("9. Avoid / Sunset")
	gt.String(t, body).Contains("Automated Text Extraction from PDFs")
	gt.String(t, body).Contains(`action="/selection/1"`)
	gt.String(t, body).Contains("Medium Risk (5)")
	gt.String(t, body).Contains("High Risk (9)")
	gt.String(t, body).Contains("Significant contribution to strategic objectives.")
	gt.String(t, body).Contains("Data ready, expertise exists, low complexity.")
	gt.String(t, body).Contains("Manageable risks, require attention.")
	gt.String(t, body).Contains("Add New Opportunity")
	gt.Bool(t, strings.Contains(body, `action="/form/submit"`)).False()
	gt.Bool(t, strings.Contains(body, `class="overlay"`)).False()
}

func TestFormFlow(t *testing.T) {
	t.Run("toggle shows the form with defaults", func(t *testing.T) {
		srv, _ := setupServer(t)

		w := postForm(srv, "/form/toggle", nil)
		gt.Number(t, w.Code).Equal(http.StatusSeeOther)
		gt.Value(t, w.Header().Get("Location")).Equal("/")

		body := get(srv, "/").Body.String()
		gt.String(t, body).Contains(`action="/form/submit"`)
		gt.String(t, body).Contains("Hide Form")
		gt.String(t, body).Contains(`name="overallBusinessImpact" value="5" min="1" max="10"`)
		gt.String(t, body).Contains(`<option value="Machine Learning" selected>`)
	})

	t.Run("submit creates the opportunity", func(t *testing.T) {
		srv, uc := setupServer(t)
		postForm(srv, "/form/toggle", nil)

		form := url.Values{}
		form.Set("name", "Claims intake assistant")
		form.Set("description", "Reads incoming claims")
		form.Set("overallBusinessImpact", "8")
		form.Set("overallFeasibilityReadiness", "9")
		form.Set("modelBiasRisk", "2")
		form.Set("costVsRoiAssessment", "2")
		form.Set("technicalComplexity", "2")
		form.Set("quickWinPotential", "on")
		form.Set("technologyType", "Conversational AI")

		w := postForm(srv, "/form/submit", form)
		gt.Number(t, w.Code).Equal(http.StatusSeeOther)

		list, err := uc.Opportunity.ListOpportunities(context.Background())
		gt.NoError(t, err).Required()
		gt.Array(t, list).Length(1)
		gt.Value(t, list[0].Cell()).Equal(types.CellID("0-0"))
		gt.Value(t, list[0].OverallRisk).Equal(types.Score(2))
		gt.Bool(t, list[0].QuickWinPotential).True()
		gt.Value(t, list[0].TechnologyType).Equal(types.TechConversationalAI)

		body := get(srv, "/").Body.String()
		gt.Bool(t, strings.Contains(body, `action="/form/submit"`)).False()
		gt.String(t, body).Contains("Claims intake assistant")
	})

	t.Run("non-numeric score re-renders with 422", func(t *testing.T) {
		srv, uc := setupServer(t)
		postForm(srv, "/form/toggle", nil)

		form := url.Values{}
		form.Set("name", "Broken")
		form.Set("dataQuality", "excellent")

		w := postForm(srv, "/form/submit", form)
		gt.Number(t, w.Code).Equal(http.StatusUnprocessableEntity)
		body := w.Body.String()
		gt.String(t, body).Contains("must be a whole number between 1 and 10")
		gt.String(t, body).Contains(`value="excellent"`)

		list, err := uc.Opportunity.ListOpportunities(context.Background())
		gt.NoError(t, err).Required()
		gt.Array(t, list).Length(0)
	})

	t.Run("cancel hides the form without storing", func(t *testing.T) {
		srv, uc := setupServer(t)
		postForm(srv, "/form/toggle", nil)

		w := postForm(srv, "/form/cancel", url.Values{"name": {"never saved"}})
		gt.Number(t, w.Code).Equal(http.StatusSeeOther)

		list, err := uc.Opportunity.ListOpportunities(context.Background())
		gt.NoError(t, err).Required()
		gt.Array(t, list).Length(0)
		gt.Value(t, uc.Dashboard.FormState()).Equal(usecase.FormHidden)
	})

	t.Run("submit while hidden conflicts", func(t *testing.T) {
		srv, _ := setupServer(t)
		w := postForm(srv, "/form/submit", url.Values{"name": {"x"}})
		gt.Number(t, w.Code).Equal(http.StatusConflict)
	})
}

func TestSelection(t *testing.T) {
	srv, _ := setupServer(t, seedInput("Generative AI for Initial Design Concepts", 8, 2))

	w := postForm(srv, "/selection/1", nil)
	gt.Number(t, w.Code).Equal(http.StatusSeeOther)

	body := get(srv, "/").Body.String()
	gt.String(t, body).Contains(`class="overlay"`)
	gt.String(t, body).Contains("3. Long-Term Bets")
	gt.String(t, body).Contains("Generative AI for Initial Design Concepts description")

	w = postForm(srv, "/selection/clear", nil)
	gt.Number(t, w.Code).Equal(http.StatusSeeOther)
	body = get(srv, "/").Body.String()
	gt.Bool(t, strings.Contains(body, `class="overlay"`)).False()

	gt.Number(t, postForm(srv, "/selection/42", nil).Code).Equal(http.StatusNotFound)
	gt.Number(t, postForm(srv, "/selection/abc", nil).Code).Equal(http.StatusBadRequest)
}

func TestAPI_Opportunities(t *testing.T) {
	srv, _ := setupServer(t,
		seedInput("first", 9, 9),
		seedInput("second", 5, 2),
	)

	t.Run("list", func(t *testing.T) {
		w := get(srv, "/api/opportunities")
		gt.Number(t, w.Code).Equal(http.StatusOK)

		var resp []map[string]any
		gt.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp)).Required()
		gt.Array(t, resp).Length(2)
		gt.Value(t, resp[0]["name"]).Equal("first")
		gt.Value(t, resp[1]["cell"]).Equal("1-2")
	})

	t.Run("get", func(t *testing.T) {
		w := get(srv, "/api/opportunities/1")
		gt.Number(t, w.Code).Equal(http.StatusOK)

		var resp map[string]any
		gt.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp)).Required()
		gt.Value(t, resp["impact"]).Equal("High")
		gt.Value(t, resp["feasibility"]).Equal("High")
		gt.Value(t, resp["riskRating"]).Equal("Medium")
		gt.Value(t, resp["quadrant"]).Equal("1. Quick Wins / Must-Dos")
		gt.Value(t, resp["overallRisk"]).Equal(float64(5))
	})

	t.Run("get missing", func(t *testing.T) {
		gt.Number(t, get(srv, "/api/opportunities/99").Code).Equal(http.StatusNotFound)
	})

	t.Run("get malformed id", func(t *testing.T) {
		gt.Number(t, get(srv, "/api/opportunities/zero").Code).Equal(http.StatusBadRequest)
	})
}

func TestAPI_CreateOpportunity(t *testing.T) {
	post := func(srv http.Handler, body string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/api/opportunities", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		srv.ServeHTTP(w, req)
		return w
	}

	t.Run("created", func(t *testing.T) {
		srv, _ := setupServer(t, seedInput("existing", 5, 5))

		w := post(srv, `{
			"name": "Contract review",
			"scores": {"overallBusinessImpact": 8, "overallFeasibilityReadiness": "9", "modelBiasRisk": 2, "costVsRoiAssessment": 2, "technicalComplexity": 2},
			"technologyType": "Natural Language Processing"
		}`)
		gt.Number(t, w.Code).Equal(http.StatusCreated)
		gt.Value(t, w.Header().Get("Location")).Equal("/api/opportunities/2")

		var resp map[string]any
		gt.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp)).Required()
		gt.Value(t, resp["id"]).Equal(float64(2))
		gt.Value(t, resp["cell"]).Equal("0-0")
		gt.Value(t, resp["overallRisk"]).Equal(float64(2))
		gt.Value(t, resp["riskRating"]).Equal("Low")
	})

	t.Run("validation errors", func(t *testing.T) {
		srv, uc := setupServer(t)

		w := post(srv, `{"scores": {"dataQuality": 7.5, "colour": 3}}`)
		gt.Number(t, w.Code).Equal(http.StatusUnprocessableEntity)

		var resp struct {
			Errors []struct {
				Field   string `json:"field"`
				Message string `json:"message"`
			} `json:"errors"`
		}
		gt.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp)).Required()
		gt.Array(t, resp.Errors).Length(1)
		gt.Value(t, resp.Errors[0].Field).Equal("colour")

		w = post(srv, `{"scores": {"dataQuality": 7.5}}`)
		gt.Number(t, w.Code).Equal(http.StatusUnprocessableEntity)
		gt.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp)).Required()
		fields := map[string]bool{}
		for _, e := range resp.Errors {
			fields[e.Field] = true
		}
		gt.Bool(t, fields["dataQuality"]).True()
		gt.Bool(t, fields["name"]).True()

		list, err := uc.Opportunity.ListOpportunities(context.Background())
		gt.NoError(t, err).Required()
		gt.Array(t, list).Length(0)
	})

	t.Run("malformed body", func(t *testing.T) {
		srv, _ := setupServer(t)
		gt.Number(t, post(srv, `{"name":`).Code).Equal(http.StatusBadRequest)
	})
}

func TestAPI_Grid(t *testing.T) {
	srv, _ := setupServer(t,
		seedInput("a", 9, 9),
		seedInput("b", 9, 8),
		seedInput("c", 1, 1),
	)

	w := get(srv, "/api/grid")
	gt.Number(t, w.Code).Equal(http.StatusOK)

	var resp struct {
		Total int `json:"total"`
		Cells []struct {
			Cell  string `json:"cell"`
			Label string `json:"label"`
			Items []struct {
				Name string `json:"name"`
			} `json:"items"`
		} `json:"cells"`
	}
	gt.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp)).Required()
	gt.Number(t, resp.Total).Equal(3)
	gt.Array(t, resp.Cells).Length(9)
	gt.Value(t, resp.Cells[0].Cell).Equal("0-0")
	gt.Array(t, resp.Cells[0].Items).Length(2)
	gt.Value(t, resp.Cells[8].Label).Equal("9. Avoid / Sunset")
	gt.Array(t, resp.Cells[8].Items).Length(1)
	gt.Array(t, resp.Cells[4].Items).Length(0)
}
