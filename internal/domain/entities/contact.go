package entities

// ContactRef is the denormalized actor reference embedded in Inspection and
// Quote. Inspectors and estimators are stored by contact info, not by foreign
// key; the optional identity link lives next to it on the owning record.
type ContactRef struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone,omitempty"`
}

func (c ContactRef) Empty() bool {
	return c.Name == "" && c.Email == ""
}
