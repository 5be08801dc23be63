package entities

// Stage numbers 1..7 and the "1".."7" stageStatuses keys are a fixed contract
// consumed by front-end clients. Changing their meaning is a breaking change.
const (
	StageIntake               = 1
	StageInspectionScheduling = 2
	StageInspection           = 3
	StageQuote                = 4
	StageDecision             = 5
	StagePaperwork            = 6
	StageCompletion           = 7

	StageCount = 7
)

// StageStatus is the per-stage progress marker inside Case.StageStatuses.
type StageStatus string

const (
	StageStatusPending  StageStatus = "pending"
	StageStatusActive   StageStatus = "active"
	StageStatusComplete StageStatus = "complete"
)

var stageNames = map[int]string{
	StageIntake:               "Intake",
	StageInspectionScheduling: "Inspection Scheduling",
	StageInspection:           "Inspection In Progress",
	StageQuote:                "Quote Preparation",
	StageDecision:             "Offer Decision",
	StagePaperwork:            "Paperwork & Payment",
	StageCompletion:           "Completion",
}

func StageName(stage int) string {
	return stageNames[stage]
}

func ValidStage(stage int) bool {
	return stage >= StageIntake && stage <= StageCompletion
}

// NewStageStatuses returns the stage map of a freshly created case: intake is
// already complete (creation is the intake), scheduling is active, the rest
// are pending.
func NewStageStatuses() map[int]StageStatus {
	m := make(map[int]StageStatus, StageCount)
	for s := StageIntake; s <= StageCompletion; s++ {
		m[s] = StageStatusPending
	}
	m[StageIntake] = StageStatusComplete
	m[StageInspectionScheduling] = StageStatusActive
	return m
}

// AdvanceStages copies the map, marks from complete and to active. A single
// active stage at a time is a convention of the coded transitions, not an
// enforced invariant.
func AdvanceStages(statuses map[int]StageStatus, from, to int) map[int]StageStatus {
	next := CloneStageStatuses(statuses)
	next[from] = StageStatusComplete
	next[to] = StageStatusActive
	return next
}

func CloneStageStatuses(statuses map[int]StageStatus) map[int]StageStatus {
	next := make(map[int]StageStatus, StageCount)
	for s, st := range statuses {
		next[s] = st
	}
	return next
}
