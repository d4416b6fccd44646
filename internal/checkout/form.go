package checkout

import "strings"

// Field names a checkout form input.
type Field string

const (
	FieldName    Field = "name"
	FieldEmail   Field = "email"
	FieldPhone   Field = "phone"
	FieldAddress Field = "address"
	FieldZip     Field = "zip"
	FieldComment Field = "comment"
)

// Form is the transient order form. It lives only for the duration of the
// checkout conversation and is never persisted.
type Form struct {
	Name    string
	Email   string
	Phone   string
	Address string
	Zip     string
	Comment string
}

// Set writes a field by name; unknown fields are ignored.
func (f *Form) Set(field Field, value string) {
	value = strings.TrimSpace(value)
	switch field {
	case FieldName:
		f.Name = value
	case FieldEmail:
		f.Email = value
	case FieldPhone:
		f.Phone = value
	case FieldAddress:
		f.Address = value
	case FieldZip:
		f.Zip = value
	case FieldComment:
		f.Comment = value
	}
}

// Get reads a field by name; unknown fields read as empty.
func (f Form) Get(field Field) string {
	switch field {
	case FieldName:
		return f.Name
	case FieldEmail:
		return f.Email
	case FieldPhone:
		return f.Phone
	case FieldAddress:
		return f.Address
	case FieldZip:
		return f.Zip
	case FieldComment:
		return f.Comment
	}
	return ""
}

// RequiredFields lists the mandatory inputs for a delivery method, in the
// order they are asked. Name and phone are always required; courier delivery
// inside MKAD additionally needs address and zip, the remaining shipment
// methods need an address, and pickup needs nothing else.
func RequiredFields(id DeliveryID) []Field {
	fields := []Field{FieldName, FieldPhone}
	switch id {
	case DeliveryMKAD:
		fields = append(fields, FieldAddress, FieldZip)
	case DeliveryOutMKAD, DeliveryYandex, DeliveryCDEK:
		fields = append(fields, FieldAddress)
	case DeliveryPickup:
	}
	return fields
}

// Validation is the outcome of checking a form against a delivery method.
type Validation struct {
	Valid   bool
	Missing []Field
}

// Validate checks presence of the required fields. Field values are free
// text; only presence matters.
func Validate(form Form, id DeliveryID) Validation {
	var missing []Field
	for _, field := range RequiredFields(id) {
		if strings.TrimSpace(form.Get(field)) == "" {
			missing = append(missing, field)
		}
	}
	return Validation{Valid: len(missing) == 0, Missing: missing}
}
