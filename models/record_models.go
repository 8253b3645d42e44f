package models

// CanonicalFields lists the five record fields in their fixed column order.
// Validation messages, CSV columns and completion rates all follow this order.
var CanonicalFields = []string{"Name", "City", "Age", "Email", "Phone"}

// Record represents a single person entry after normalization.
// Age stays a string on the wire; numeric interpretation happens internally.
type Record struct {
	Name  string `json:"Name"`
	City  string `json:"City"`
	Age   string `json:"Age"`
	Email string `json:"Email"`
	Phone string `json:"Phone"`
}

// Field returns the value of a canonical field by name, with ok reporting
// whether the name is one of the five canonical fields.
func (r Record) Field(name string) (string, bool) {
	switch name {
	case "Name":
		return r.Name, true
	case "City":
		return r.City, true
	case "Age":
		return r.Age, true
	case "Email":
		return r.Email, true
	case "Phone":
		return r.Phone, true
	}
	return "", false
}

// Values returns the field values in canonical column order, ready for a
// sheet row append.
func (r Record) Values() []string {
	return []string{r.Name, r.City, r.Age, r.Email, r.Phone}
}

// AddRowResponse represents the REST add_row endpoint response.
type AddRowResponse struct {
	Status  string   `json:"status"`
	Message string   `json:"message"`
	Errors  []string `json:"errors,omitempty"`
}

// ErrorResponse represents a generic REST error body.
type ErrorResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}
