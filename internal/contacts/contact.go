// Package contacts holds the contact domain: the entity, its validation rules,
// the store contract and the service that enforces existence and conflict
// rules on top of it.
package contacts

// Contact represents a row in the contacts table.
// A zero ID means the contact has not been persisted yet.
type Contact struct {
	ID         int64  `db:"id"          json:"id,omitempty"`
	Name       string `db:"name"        json:"name"`
	Phone      string `db:"phone"       json:"phone,omitempty"`
	Email      string `db:"email"       json:"email,omitempty"`
	Address1   string `db:"address1"    json:"address1,omitempty"`
	Address2   string `db:"address2"    json:"address2,omitempty"`
	Address3   string `db:"address3"    json:"address3,omitempty"`
	PostalCode string `db:"postal_code" json:"postalCode,omitempty"`
	Note       string `db:"note"        json:"note,omitempty"`
}

// Address is the postal subset of a Contact. It is never stored on its own.
type Address struct {
	Address1   string `json:"address1,omitempty"`
	Address2   string `json:"address2,omitempty"`
	Address3   string `json:"address3,omitempty"`
	PostalCode string `json:"postalCode,omitempty"`
}

// Address returns the address fields of c.
func (c *Contact) Address() Address {
	return Address{
		Address1:   c.Address1,
		Address2:   c.Address2,
		Address3:   c.Address3,
		PostalCode: c.PostalCode,
	}
}

// SetAddress replaces all four address fields of c, including with empty values.
func (c *Contact) SetAddress(a Address) {
	c.Address1 = a.Address1
	c.Address2 = a.Address2
	c.Address3 = a.Address3
	c.PostalCode = a.PostalCode
}

// Persisted reports whether c carries a store-assigned id.
func (c *Contact) Persisted() bool { return c.ID != 0 }
