package contacts

import "strings"

// Field names a filterable contact attribute.
type Field string

const (
	FieldName       Field = "name"
	FieldPhone      Field = "phone"
	FieldEmail      Field = "email"
	FieldAddress1   Field = "address1"
	FieldAddress2   Field = "address2"
	FieldAddress3   Field = "address3"
	FieldPostalCode Field = "postal_code"
	FieldNote       Field = "note"
)

// Fields lists every filterable field in declaration order.
var Fields = []Field{
	FieldName, FieldPhone, FieldEmail,
	FieldAddress1, FieldAddress2, FieldAddress3,
	FieldPostalCode, FieldNote,
}

// Value returns the value of f on c.
func (f Field) Value(c *Contact) string {
	switch f {
	case FieldName:
		return c.Name
	case FieldPhone:
		return c.Phone
	case FieldEmail:
		return c.Email
	case FieldAddress1:
		return c.Address1
	case FieldAddress2:
		return c.Address2
	case FieldAddress3:
		return c.Address3
	case FieldPostalCode:
		return c.PostalCode
	case FieldNote:
		return c.Note
	default:
		return ""
	}
}

// Criterion constrains one field to contain Value as a case-sensitive substring.
type Criterion struct {
	Field Field
	Value string
}

// Filter is a conjunction of criteria. The zero Filter matches every contact.
// Store adapters translate it into their native query conditions.
type Filter struct {
	Criteria []Criterion
}

// FilterFrom builds a Filter from a probe contact: every non-empty field
// becomes a "contains" criterion, empty fields add no constraint. The probe's
// ID is ignored.
func FilterFrom(probe Contact) Filter {
	var f Filter
	for _, field := range Fields {
		if v := field.Value(&probe); v != "" {
			f.Criteria = append(f.Criteria, Criterion{Field: field, Value: v})
		}
	}
	return f
}

// Empty reports whether f places no constraint.
func (f Filter) Empty() bool { return len(f.Criteria) == 0 }

// Matches reports whether c satisfies every criterion of f.
func (f Filter) Matches(c *Contact) bool {
	for _, cr := range f.Criteria {
		if !strings.Contains(cr.Field.Value(c), cr.Value) {
			return false
		}
	}
	return true
}
