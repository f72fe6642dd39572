package member

import (
	"fmt"
	"strings"

	"github.com/changhyeonkim/member-registry/internal/shared/validator"
)

// fieldRule is one ordered check of a field. Checks stop at the first failure.
type fieldRule struct {
	tag     string // go-playground validator tag
	trimmed bool   // check the value after strings.TrimSpace
	reason  string
}

var (
	nameRules = []fieldRule{
		{tag: "required", trimmed: true, reason: "cannot be empty!"},
		{tag: "alphanumspace", reason: "cannot contain symbols!"},
	}

	addressRules = []fieldRule{
		{tag: "required", trimmed: true, reason: "cannot be empty!"},
	}

	phoneNumberRules = []fieldRule{
		{tag: "required", trimmed: true, reason: "cannot be empty!"},
		{tag: "digits", reason: "must be a number."},
		{tag: "min=10,max=13", reason: "must be a number between 10 and 13."},
	}
)

// ValidateName checks a member name: present, not blank, letters/digits/whitespace only.
func ValidateName(name *string) error {
	return validateField("name", name, nameRules)
}

// ValidateAddress checks a member address: present and not blank.
func ValidateAddress(address *string) error {
	return validateField("address", address, addressRules)
}

// ValidatePhoneNumber checks a phone number: present, not blank, digits only, 10 to 13 long.
func ValidatePhoneNumber(phoneNumber *string) error {
	return validateField("phoneNumber", phoneNumber, phoneNumberRules)
}

// Validate runs name, address, then phoneNumber and reports the first failure only.
func (in MemberInput) Validate() error {
	if err := ValidateName(in.Name); err != nil {
		return err
	}
	if err := ValidateAddress(in.Address); err != nil {
		return err
	}
	return ValidatePhoneNumber(in.PhoneNumber)
}

func validateField(field string, value *string, rules []fieldRule) error {
	if value == nil {
		return invalid(fmt.Sprintf("The value of `%s` cannot be null!", field))
	}

	for _, rule := range rules {
		v := *value
		if rule.trimmed {
			v = strings.TrimSpace(v)
		}
		if err := validator.Var(v, rule.tag); err != nil {
			return invalid(fmt.Sprintf("The value of `%s` %s", field, rule.reason))
		}
	}
	return nil
}
