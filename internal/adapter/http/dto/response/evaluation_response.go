package response

import (
	"procuredesk/internal/domain/entities"
	"time"
)

type EvaluationResultResponse struct {
	VendorID      int64   `json:"vendor_id"`
	Verdict       string  `json:"verdict"`
	Score         float64 `json:"score"`
	Justification string  `json:"justification"`
}

type EvaluationReportResponse struct {
	RequirementID int64                      `json:"req_id"`
	EvaluatedAt   time.Time                  `json:"evaluated_at"`
	Accepted      int                        `json:"accepted"`
	Rejected      int                        `json:"rejected"`
	Results       []EvaluationResultResponse `json:"results"`
}

func FromEvaluationReport(report entities.EvaluationReport) EvaluationReportResponse {
	results := make([]EvaluationResultResponse, 0, len(report.Results))
	for _, res := range report.Results {
		results = append(results, EvaluationResultResponse{
			VendorID:      res.VendorID,
			Verdict:       string(res.Verdict),
			Score:         res.Score,
			Justification: res.Justification,
		})
	}
	return EvaluationReportResponse{
		RequirementID: report.RequirementID,
		EvaluatedAt:   report.EvaluatedAt,
		Accepted:      report.Accepted(),
		Rejected:      report.Rejected(),
		Results:       results,
	}
}
