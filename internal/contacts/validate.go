package contacts

import (
	"fmt"
	"net/mail"
	"regexp"
	"strings"
	"unicode/utf8"
)

const (
	MaxNameLen       = 100
	MaxPhoneLen      = 25
	MaxEmailLen      = 100
	MaxAddressLen    = 50
	MaxPostalCodeLen = 20
	MaxNoteLen       = 4000
)

// MsgNameRequired is the message reported for a blank or missing name.
const MsgNameRequired = "Contact is null or empty"

var phoneRe = regexp.MustCompile(`^\+?[0-9. ()-]{7,25}$`)

// rule is a single validation check. ok returns false when the rule is violated.
type rule[T any] struct {
	ok      func(T) bool
	message string
}

var contactRules = []rule[*Contact]{
	{func(c *Contact) bool { return strings.TrimSpace(c.Name) != "" }, MsgNameRequired},
	{func(c *Contact) bool { return maxLen(c.Name, MaxNameLen) }, lenMessage("name", MaxNameLen)},
	{func(c *Contact) bool { return maxLen(c.Phone, MaxPhoneLen) }, lenMessage("phone", MaxPhoneLen)},
	{func(c *Contact) bool { return c.Phone == "" || phoneRe.MatchString(c.Phone) }, "phone must be a valid phone number"},
	{func(c *Contact) bool { return maxLen(c.Email, MaxEmailLen) }, lenMessage("email", MaxEmailLen)},
	{func(c *Contact) bool { return c.Email == "" || validEmail(c.Email) }, "email must be a valid email address"},
	{func(c *Contact) bool { return maxLen(c.Note, MaxNoteLen) }, lenMessage("note", MaxNoteLen)},
}

var addressRules = []rule[*Address]{
	{func(a *Address) bool { return maxLen(a.Address1, MaxAddressLen) }, lenMessage("address1", MaxAddressLen)},
	{func(a *Address) bool { return maxLen(a.Address2, MaxAddressLen) }, lenMessage("address2", MaxAddressLen)},
	{func(a *Address) bool { return maxLen(a.Address3, MaxAddressLen) }, lenMessage("address3", MaxAddressLen)},
	{func(a *Address) bool { return maxLen(a.PostalCode, MaxPostalCodeLen) }, lenMessage("postalCode", MaxPostalCodeLen)},
}

// Validate evaluates every contact rule, address fields included, and returns
// the messages of all violated rules. A nil result means c is valid.
func Validate(c *Contact) []string {
	msgs := evaluate(contactRules, c)
	a := c.Address()
	return append(msgs, evaluate(addressRules, &a)...)
}

// ValidateAddress evaluates the address rules only.
func ValidateAddress(a *Address) []string {
	return evaluate(addressRules, a)
}

func evaluate[T any](rules []rule[T], v T) []string {
	var msgs []string
	for _, r := range rules {
		if !r.ok(v) {
			msgs = append(msgs, r.message)
		}
	}
	return msgs
}

func maxLen(s string, n int) bool { return utf8.RuneCountInString(s) <= n }

func lenMessage(field string, n int) string {
	return fmt.Sprintf("%s must be at most %d characters", field, n)
}

// validEmail accepts a bare addr-spec; display names ("Bob <bob@x>") are rejected.
func validEmail(s string) bool {
	addr, err := mail.ParseAddress(s)
	if err != nil {
		return false
	}
	return addr.Name == "" && addr.Address == s
}
