package transport

import "leadvault_backend/internal/analytics/repository"

type SummaryResponse struct {
	TotalLeads     int64            `json:"total_leads"`
	PipelineBudget float64          `json:"pipeline_budget"`
	DueWithin24h   int64            `json:"due_within_24h"`
	ByStatus       map[string]int64 `json:"by_status"`
	BySource       map[string]int64 `json:"by_source"`
}

func ToSummaryResponse(summary repository.Summary) SummaryResponse {
	return SummaryResponse{
		TotalLeads:     summary.TotalLeads,
		PipelineBudget: summary.PipelineBudget,
		DueWithin24h:   summary.DueWithin24h,
		ByStatus:       summary.ByStatus,
		BySource:       summary.BySource,
	}
}
