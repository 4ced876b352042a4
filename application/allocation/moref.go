package allocation

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/muhammadheryan/fulfillment/constant"
)

// EntryError is a per-entry validation failure carrying the error kind and a
// message that identifies the offending entry.
type EntryError struct {
	Type    constant.ErrorType
	Message string
}

func (e *EntryError) Error() string {
	return e.Message
}

// moSuffixPattern is the unit-index grammar: a hyphen followed by a positive
// integer with no leading zero.
var moSuffixPattern = regexp.MustCompile(`^-[1-9][0-9]*$`)

// BasePart returns the substring of s up to (excluding) the third hyphen, or
// s itself when it holds fewer than three hyphens.
func BasePart(s string) string {
	count := 0
	for i := 0; i < len(s); i++ {
		if s[i] == '-' {
			count++
			if count == 3 {
				return s[:i]
			}
		}
	}
	return s
}

// ValidateMOSerial checks a candidate serial against a manufacturing order
// reference. The serial must share the reference's base part and be either
// the reference itself or the reference disambiguated by a trailing unit
// index ("-1", "-2", ...). This guards against typos and serials leaking in
// from another production order.
func ValidateMOSerial(moRef, serial string) *EntryError {
	if BasePart(serial) != BasePart(moRef) {
		return &EntryError{
			Type:    constant.ErrSerialBaseMismatch,
			Message: fmt.Sprintf("serial %q does not match manufacturing order %q", serial, moRef),
		}
	}
	if serial == moRef {
		return nil
	}
	if strings.HasPrefix(serial, moRef) {
		suffix := serial[len(moRef):]
		if moSuffixPattern.MatchString(suffix) {
			return nil
		}
	}
	return &EntryError{
		Type:    constant.ErrSerialSuffixInvalid,
		Message: fmt.Sprintf("serial %q is not %q or %q with a unit index suffix", serial, moRef, moRef),
	}
}
