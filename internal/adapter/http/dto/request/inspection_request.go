package request

import (
	"github.com/web-source-dev/Vos-backend-sub000/internal/domain/entities"
)

type ScheduleInspectionRequest struct {
	InspectorName   string `json:"inspector_name" binding:"required"`
	InspectorEmail  string `json:"inspector_email" binding:"required,email"`
	InspectorPhone  string `json:"inspector_phone"`
	InspectorUserID string `json:"inspector_user_id"`
	ScheduledDate   string `json:"scheduled_date" binding:"required"`
	ScheduledTime   string `json:"scheduled_time"`
}

type SubQuestionPayload struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

type QuestionPayload struct {
	Question     string               `json:"question" binding:"required"`
	Answer       string               `json:"answer"`
	Score        float64              `json:"score"`
	Notes        string               `json:"notes"`
	SubQuestions []SubQuestionPayload `json:"sub_questions"`
}

type SectionPayload struct {
	Name      string            `json:"name" binding:"required"`
	Questions []QuestionPayload `json:"questions" binding:"required"`
}

// InspectionSectionsRequest carries the answer tree for drafts and final
// submission.
type InspectionSectionsRequest struct {
	Sections []SectionPayload `json:"sections" binding:"required"`
}

func (r InspectionSectionsRequest) ToSections() []entities.InspectionSection {
	sections := make([]entities.InspectionSection, 0, len(r.Sections))
	for _, s := range r.Sections {
		questions := make([]entities.InspectionQuestion, 0, len(s.Questions))
		for _, q := range s.Questions {
			subs := make([]entities.InspectionSubQuestion, 0, len(q.SubQuestions))
			for _, sq := range q.SubQuestions {
				subs = append(subs, entities.InspectionSubQuestion{Question: sq.Question, Answer: sq.Answer})
			}
			questions = append(questions, entities.InspectionQuestion{
				Question:     q.Question,
				Answer:       q.Answer,
				Score:        q.Score,
				Notes:        q.Notes,
				SubQuestions: subs,
			})
		}
		sections = append(sections, entities.InspectionSection{Name: s.Name, Questions: questions})
	}
	return sections
}
