package contacts

import "testing"

func TestFilterFrom(t *testing.T) {
	f := FilterFrom(Contact{ID: 3, Name: "abc", PostalCode: "321"})
	want := []Criterion{{Field: FieldName, Value: "abc"}, {Field: FieldPostalCode, Value: "321"}}
	if len(f.Criteria) != len(want) {
		t.Fatalf("Criteria = %+v, want %+v", f.Criteria, want)
	}
	for i := range want {
		if f.Criteria[i] != want[i] {
			t.Errorf("Criteria[%d] = %+v, want %+v", i, f.Criteria[i], want[i])
		}
	}
	if !FilterFrom(Contact{}).Empty() {
		t.Error("FilterFrom(zero) should be empty")
	}
}

func TestFilterMatches(t *testing.T) {
	c := &Contact{Name: "Jessica Abigail", Email: "jessica@ngilang.com"}
	tests := []struct {
		name  string
		probe Contact
		want  bool
	}{
		{name: "empty filter", probe: Contact{}, want: true},
		{name: "prefix", probe: Contact{Name: "Jess"}, want: true},
		{name: "middle", probe: Contact{Name: "ca Ab"}, want: true},
		{name: "case differs", probe: Contact{Name: "jess"}, want: false},
		{name: "all criteria hold", probe: Contact{Name: "Abigail", Email: "ngilang"}, want: true},
		{name: "one criterion fails", probe: Contact{Name: "Abigail", Email: "example"}, want: false},
		{name: "constraint on empty field", probe: Contact{Phone: "1"}, want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FilterFrom(tt.probe).Matches(c); got != tt.want {
				t.Errorf("Matches() = %v, want %v", got, tt.want)
			}
		})
	}
}
