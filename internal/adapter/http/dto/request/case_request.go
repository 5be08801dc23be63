package request

// CustomerPayload and VehiclePayload are the intake sub-payloads; both
// records are created atomically with the case.
type CustomerPayload struct {
	FirstName string `json:"first_name" binding:"required"`
	LastName  string `json:"last_name"`
	Email     string `json:"email" binding:"required,email"`
	Phone     string `json:"phone"`
	Address   string `json:"address"`
	City      string `json:"city"`
	State     string `json:"state"`
	Zip       string `json:"zip"`
}

type VehiclePayload struct {
	VIN      string `json:"vin"`
	Year     int    `json:"year"`
	Make     string `json:"make" binding:"required"`
	Model    string `json:"model" binding:"required"`
	Trim     string `json:"trim"`
	Color    string `json:"color"`
	Odometer int    `json:"odometer"`
}

type CreateCaseRequest struct {
	Customer CustomerPayload `json:"customer" binding:"required"`
	Vehicle  VehiclePayload  `json:"vehicle" binding:"required"`
}

// StageOverrideRequest is the administrative stage override. The stage map is
// applied verbatim; keys are the "1".."7" wire-contract stage numbers.
type StageOverrideRequest struct {
	CurrentStage  int               `json:"current_stage" binding:"required"`
	StageStatuses map[string]string `json:"stage_statuses"`
	Status        string            `json:"status"`
}
