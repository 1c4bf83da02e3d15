package order

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"logistrans/internal/pkg/errs"
	"logistrans/internal/pkg/guard"

	"github.com/google/uuid"
)

// numberPattern matches the human-readable order number format:
// ORD-<date>-<6 uppercase alphanumeric>, e.g. ORD-20260830-4F21AB.
var numberPattern = regexp.MustCompile(`^ORD-\d{8}-[A-Z0-9]{6}$`)

// ErrNumberIsNotConstructed is returned when using an improperly initialized Number.
var ErrNumberIsNotConstructed = errs.NewValueIsRequiredError(
	"order number must be created via NewNumber or NumberFromString")

// Number is the globally unique, human-readable identifier printed on
// shipping documents. It is immutable once assigned to an order; uniqueness
// is enforced by the persistence layer.
type Number struct {
	value string
	guard guard.ConstructorGuard
}

// NewNumber generates a fresh order number for the given date.
// The 6-character suffix is drawn from a random UUID, matching the
// ORD-<YYYYMMDD>-<suffix> document numbering scheme.
func NewNumber(at time.Time) Number {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:6])
	return Number{
		value: fmt.Sprintf("ORD-%s-%s", at.Format("20060102"), suffix),
		guard: guard.NewConstructorGuard(),
	}
}

// NumberFromString restores an order number from its stored representation.
// Returns an error if the value does not match the document format.
func NumberFromString(s string) (Number, error) {
	if s == "" {
		return Number{}, errs.NewValueIsRequiredError("order number")
	}
	if !numberPattern.MatchString(s) {
		return Number{}, errs.NewValueIsInvalidErrorWithCause(
			"order number", fmt.Errorf("%q does not match ORD-<date>-<suffix>", s))
	}
	return Number{value: s, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the number was created through a constructor.
func (n Number) Validate() error {
	return n.guard.Validate(ErrNumberIsNotConstructed)
}

// String returns the document representation, e.g. "ORD-20260830-4F21AB".
func (n Number) String() string {
	return n.value
}

// IsEqual compares two order numbers by value.
func (n Number) IsEqual(other Number) bool {
	return n.value == other.value
}
