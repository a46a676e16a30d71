package dto

import (
	"hotelops/internal/domains/maintenance/model"
	"hotelops/shared"
	"hotelops/shared/constant"
	gDto "hotelops/shared/dto"
	"hotelops/shared/timezone"
)

type ReportIssueRequest struct {
	RoomID      string         `json:"room_id"      validate:"required,uuid"`
	IssueType   string         `json:"issue_type"   validate:"required,max=100"`
	Description string         `json:"description"  validate:"omitempty,max=1000"`
	Priority    model.Priority `json:"priority"     validate:"required,hotelops"`
	OutOfOrder  bool           `json:"out_of_order"`
}

type ResolveIssueRequest struct {
	Resolution      string `json:"resolution"        validate:"required,max=1000"`
	ReturnToService bool   `json:"return_to_service"`
}

type GetIssuesRequest struct {
	Status   model.Status   `validate:"omitempty,oneof=reported in_progress resolved"`
	Priority model.Priority `validate:"omitempty,oneof=low medium high critical"`
	RoomID   string         `validate:"omitempty,uuid"`
}

type IssueResponse struct {
	ID          string         `json:"id"`
	RoomID      string         `json:"room_id"`
	RoomNumber  string         `json:"room_number,omitempty"`
	IssueType   string         `json:"issue_type"`
	Description string         `json:"description"`
	Priority    model.Priority `json:"priority"`
	Status      model.Status   `json:"status"`
	Resolution  string         `json:"resolution,omitempty"`
	ResolvedAt  *string        `json:"resolved_at"`
	gDto.Metadata
}

func (i *IssueResponse) FromModel(m model.Issue) {
	i.ID = m.ID
	i.RoomID = m.RoomID
	i.RoomNumber = m.RoomNumber
	i.IssueType = m.IssueType
	i.Description = m.Description
	i.Priority = m.Priority
	i.Status = m.Status
	i.Resolution = m.Resolution

	if m.ResolvedAt != nil {
		resolved := timezone.Format(*m.ResolvedAt, constant.DateFormat)
		i.ResolvedAt = &resolved
	}

	i.Metadata.FromModel(m.Metadata)
}

type GetIssuesResponse struct {
	Issues    []IssueResponse `json:"issues"`
	TotalPage int             `json:"total_page"`
	TotalData int             `json:"total_data"`
}

func (g *GetIssuesResponse) FromModels(models []model.Issue, totalData, limit int) {
	g.TotalData = totalData
	g.TotalPage = shared.CalculateTotalPage(totalData, limit)

	g.Issues = make([]IssueResponse, len(models))
	for i, mod := range models {
		g.Issues[i].FromModel(mod)
	}
}
