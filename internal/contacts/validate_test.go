package contacts

import (
	"slices"
	"strings"
	"testing"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		contact Contact
		want    []string
	}{
		// Valid contacts
		{name: "name only", contact: Contact{Name: "Jessica"}, want: nil},
		{name: "full contact", contact: Contact{
			Name: "Jessica Abigail", Phone: "+62 (482) 211-00.1", Email: "jessica@ngilang.com",
			Address1: "888 Constantine Ave, #54", Address2: "San Angeles", Address3: "Florida",
			PostalCode: "32106", Note: "Meet her at Spring Boot Conference",
		}, want: nil},
		{name: "name at limit", contact: Contact{Name: strings.Repeat("é", MaxNameLen)}, want: nil},
		{name: "shortest phone", contact: Contact{Name: "a", Phone: "1234567"}, want: nil},

		// Violations
		{name: "blank name", contact: Contact{Name: "  "}, want: []string{MsgNameRequired}},
		{name: "name too long", contact: Contact{Name: strings.Repeat("a", MaxNameLen+1)},
			want: []string{"name must be at most 100 characters"}},
		{name: "phone too short", contact: Contact{Name: "a", Phone: "123456"},
			want: []string{"phone must be a valid phone number"}},
		{name: "phone with letters", contact: Contact{Name: "a", Phone: "555-CALL-NOW"},
			want: []string{"phone must be a valid phone number"}},
		{name: "phone plus not leading", contact: Contact{Name: "a", Phone: "12345+678"},
			want: []string{"phone must be a valid phone number"}},
		{name: "phone too long", contact: Contact{Name: "a", Phone: strings.Repeat("1", 26)},
			want: []string{"phone must be at most 25 characters", "phone must be a valid phone number"}},
		{name: "email without domain", contact: Contact{Name: "a", Email: "jessica@"},
			want: []string{"email must be a valid email address"}},
		{name: "email with display name", contact: Contact{Name: "a", Email: "Jess <jessica@ngilang.com>"},
			want: []string{"email must be a valid email address"}},
		{name: "address and postal code too long", contact: Contact{
			Name: "a", Address3: strings.Repeat("x", MaxAddressLen+1), PostalCode: strings.Repeat("9", MaxPostalCodeLen+1),
		}, want: []string{"address3 must be at most 50 characters", "postalCode must be at most 20 characters"}},
		{name: "note too long", contact: Contact{Name: "a", Note: strings.Repeat("n", MaxNoteLen+1)},
			want: []string{"note must be at most 4000 characters"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Validate(&tt.contact)
			if !slices.Equal(got, tt.want) {
				t.Errorf("Validate() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestValidateAddress(t *testing.T) {
	if got := ValidateAddress(&Address{}); got != nil {
		t.Errorf("ValidateAddress(empty) = %q, want nil", got)
	}
	a := Address{Address1: strings.Repeat("x", MaxAddressLen+1)}
	want := []string{"address1 must be at most 50 characters"}
	if got := ValidateAddress(&a); !slices.Equal(got, want) {
		t.Errorf("ValidateAddress() = %q, want %q", got, want)
	}
}
