package entities

import "time"

// InspectionSubQuestion is a follow-up answer nested under a question.
type InspectionSubQuestion struct {
	Question string `json:"question"`
	Answer   string `json:"answer,omitempty"`
}

// InspectionQuestion is one scored answer inside a section.
type InspectionQuestion struct {
	Question     string                  `json:"question"`
	Answer       string                  `json:"answer,omitempty"`
	Score        float64                 `json:"score"`
	Notes        string                  `json:"notes,omitempty"`
	SubQuestions []InspectionSubQuestion `json:"sub_questions,omitempty"`
}

// InspectionSection groups questions (exterior, interior, mechanical, ...).
type InspectionSection struct {
	Name      string               `json:"name"`
	Questions []InspectionQuestion `json:"questions"`
}

// Inspection is created by the schedule-inspection transition (stage 2→3).
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI token-index: token
//   - GSI case_id-index: case_id
//
// Token notes:
//   - Token is a 40-hex single-use access grant handed to the inspector;
//     it never expires and is never rotated.
//   - Completed/CompletedAt/OverallScore are set exactly once, by the
//     token-authorized submission.
type Inspection struct {
	ID     string `json:"id"`
	CaseID string `json:"case_id"`
	Token  string `json:"token"`

	Inspector       ContactRef `json:"inspector"`
	InspectorUserID string     `json:"inspector_user_id,omitempty"`

	ScheduledDate string `json:"scheduled_date"`
	ScheduledTime string `json:"scheduled_time,omitempty"`

	Sections     []InspectionSection `json:"sections,omitempty"`
	Completed    bool                `json:"completed"`
	CompletedAt  *time.Time          `json:"completed_at,omitempty"`
	OverallScore float64             `json:"overall_score"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ComputeOverallScore averages all question scores across sections.
func ComputeOverallScore(sections []InspectionSection) float64 {
	total := 0.0
	count := 0
	for _, s := range sections {
		for _, q := range s.Questions {
			total += q.Score
			count++
		}
	}
	if count == 0 {
		return 0
	}
	return total / float64(count)
}
