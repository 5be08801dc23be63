package response

// Envelope is the uniform response shape. Error payloads come from
// pkg.HTTPError instead; both carry the success flag.
type Envelope struct {
	Success bool `json:"success"`
	Data    any  `json:"data,omitempty"`
}

func OK(data any) Envelope {
	return Envelope{Success: true, Data: data}
}
