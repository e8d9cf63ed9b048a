package validate

import (
	"regexp"

	"github.com/ShiraazMoollatjie/goluhn"
)

const (
	OrderNumberPrefix = "ZVR"

	minPhoneLen = 10
	maxPhoneLen = 20
)

var (
	orderNumberRe = regexp.MustCompile(`^` + OrderNumberPrefix + `-([0-9]{14})-([0-9A-F]{16})$`)
	phoneRe       = regexp.MustCompile(`^\+?[0-9\s\-()]+$`)
)

func IsLuna(s string) bool {
	err := goluhn.Validate(s)
	return err == nil
}

// IsOrderNumber checks the shape of a marketplace order number and the Luhn
// digit closing its timestamp part.
func IsOrderNumber(s string) bool {
	m := orderNumberRe.FindStringSubmatch(s)
	if m == nil {
		return false
	}
	return IsLuna(m[1])
}

// IsPhone accepts 10 to 20 characters of digits, spaces, dashes and
// parentheses with an optional leading plus.
func IsPhone(s string) bool {
	return len(s) >= minPhoneLen && len(s) <= maxPhoneLen && phoneRe.MatchString(s)
}
