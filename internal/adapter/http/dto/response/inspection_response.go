package response

import (
	"time"

	"github.com/web-source-dev/Vos-backend-sub000/internal/domain/entities"
)

type InspectionResponse struct {
	ID     string `json:"id"`
	CaseID string `json:"case_id"`
	Token  string `json:"token"`

	InspectorName   string `json:"inspector_name"`
	InspectorEmail  string `json:"inspector_email"`
	InspectorPhone  string `json:"inspector_phone,omitempty"`
	InspectorUserID string `json:"inspector_user_id,omitempty"`

	ScheduledDate string `json:"scheduled_date"`
	ScheduledTime string `json:"scheduled_time,omitempty"`

	Sections     []entities.InspectionSection `json:"sections,omitempty"`
	Completed    bool                         `json:"completed"`
	CompletedAt  *time.Time                   `json:"completed_at,omitempty"`
	OverallScore float64                      `json:"overall_score"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func FromInspection(i entities.Inspection) InspectionResponse {
	return InspectionResponse{
		ID:              i.ID,
		CaseID:          i.CaseID,
		Token:           i.Token,
		InspectorName:   i.Inspector.Name,
		InspectorEmail:  i.Inspector.Email,
		InspectorPhone:  i.Inspector.Phone,
		InspectorUserID: i.InspectorUserID,
		ScheduledDate:   i.ScheduledDate,
		ScheduledTime:   i.ScheduledTime,
		Sections:        i.Sections,
		Completed:       i.Completed,
		CompletedAt:     i.CompletedAt,
		OverallScore:    i.OverallScore,
		CreatedAt:       i.CreatedAt,
		UpdatedAt:       i.UpdatedAt,
	}
}
