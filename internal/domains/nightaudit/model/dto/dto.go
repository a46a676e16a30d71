package dto

import (
	"hotelops/internal/domains/nightaudit/model"
	"hotelops/shared"
	"hotelops/shared/constant"
	"hotelops/shared/timezone"
)

type RunAuditRequest struct {
	AuditDate string `json:"audit_date" validate:"omitempty,datetime=2006-01-02"`
}

type AuditLogResponse struct {
	ID         string        `json:"id"`
	AuditDate  string        `json:"audit_date"`
	Status     model.Status  `json:"status"`
	Summary    model.Summary `json:"summary"`
	RunBy      string        `json:"run_by"`
	StartedAt  string        `json:"started_at"`
	FinishedAt *string       `json:"finished_at"`
}

func (a *AuditLogResponse) FromModel(m model.Log) {
	a.ID = m.ID
	a.AuditDate = timezone.FormatDate(m.AuditDate)
	a.Status = m.Status
	a.Summary = m.Summary
	a.RunBy = m.RunBy
	a.StartedAt = timezone.Format(m.StartedAt, constant.DateFormat)

	if m.FinishedAt != nil {
		finished := timezone.Format(*m.FinishedAt, constant.DateFormat)
		a.FinishedAt = &finished
	}
}

type GetLogsResponse struct {
	Logs      []AuditLogResponse `json:"logs"`
	TotalPage int                `json:"total_page"`
	TotalData int                `json:"total_data"`
}

func (g *GetLogsResponse) FromModels(models []model.Log, totalData, limit int) {
	g.TotalData = totalData
	g.TotalPage = shared.CalculateTotalPage(totalData, limit)

	g.Logs = make([]AuditLogResponse, len(models))
	for i, mod := range models {
		g.Logs[i].FromModel(mod)
	}
}
