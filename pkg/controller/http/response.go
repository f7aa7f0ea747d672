package http

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/aimatrix/pkg/domain/model"
	"github.com/secmon-lab/aimatrix/pkg/usecase"
	"github.com/secmon-lab/aimatrix/pkg/utils/errutil"
	"github.com/secmon-lab/aimatrix/pkg/utils/safe"
)

type opportunityResponse struct {
	ID                int64          `json:"id"`
	Name              string         `json:"name"`
	Description       string         `json:"description"`
	Scores            map[string]int `json:"scores"`
	QuickWinPotential bool           `json:"quickWinPotential"`
	TechnologyType    string         `json:"technologyType"`
	OverallRisk       int            `json:"overallRisk"`
	Impact            string         `json:"impact"`
	Feasibility       string         `json:"feasibility"`
	RiskRating        string         `json:"riskRating"`
	Cell              string         `json:"cell"`
	Quadrant          string         `json:"quadrant"`
	CreatedAt         time.Time      `json:"createdAt"`
}

func toOpportunityResponse(o *model.Opportunity) opportunityResponse {
	d := usecase.NewDetail(o)
	resp := opportunityResponse{
		ID:                o.ID,
		Name:              o.Name,
		Description:       o.Description,
		Scores:            make(map[string]int, len(d.ScoreValues)),
		QuickWinPotential: o.QuickWinPotential,
		TechnologyType:    o.TechnologyType.String(),
		OverallRisk:       o.OverallRisk.Int(),
		Impact:            d.Impact.String(),
		Feasibility:       d.Feasibility.String(),
		RiskRating:        d.Risk.String(),
		Cell:              d.Quadrant.Cell.String(),
		Quadrant:          d.Quadrant.Label,
		CreatedAt:         o.CreatedAt,
	}
	for _, sv := range d.ScoreValues {
		resp.Scores[sv.Key] = sv.Value.Int()
	}
	return resp
}

type summaryResponse struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	OverallRisk int    `json:"overallRisk"`
	RiskRating  string `json:"riskRating"`
	RiskToken   string `json:"riskToken"`
}

type cellResponse struct {
	Cell  string            `json:"cell"`
	Row   int               `json:"row"`
	Col   int               `json:"col"`
	Label string            `json:"label"`
	Token string            `json:"token"`
	Items []summaryResponse `json:"items"`
}

type gridResponse struct {
	Total int            `json:"total"`
	Cells []cellResponse `json:"cells"`
}

func toGridResponse(g *usecase.Grid) gridResponse {
	resp := gridResponse{
		Total: g.Total,
		Cells: make([]cellResponse, len(g.Cells)),
	}
	for i, c := range g.Cells {
		cell := cellResponse{
			Cell:  c.Cell.String(),
			Row:   c.Row,
			Col:   c.Col,
			Label: c.Label,
			Token: c.Token,
			Items: make([]summaryResponse, len(c.Items)),
		}
		for j, item := range c.Items {
			cell.Items[j] = summaryResponse{
				ID:          item.ID,
				Name:        item.Name,
				OverallRisk: item.OverallRisk.Int(),
				RiskRating:  item.RiskLevel.String(),
				RiskToken:   item.RiskToken,
			}
		}
		resp.Cells[i] = cell
	}
	return resp
}

type fieldErrorResponse struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type validationErrorResponse struct {
	Errors []fieldErrorResponse `json:"errors"`
}

func toValidationErrorResponse(verr *model.ValidationError) validationErrorResponse {
	resp := validationErrorResponse{
		Errors: make([]fieldErrorResponse, len(verr.Fields)),
	}
	for i, f := range verr.Fields {
		resp.Errors[i] = fieldErrorResponse{Field: f.Field, Message: f.Message}
	}
	return resp
}

func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		errutil.HandleHTTP(r.Context(), w, goerr.Wrap(err, "failed to marshal response"), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	safe.Write(r.Context(), w, data)
}
