package quote

import (
	"strings"

	"github.com/shopspring/decimal"

	"solar-quote/internal/errors"
)

// MaxAmount bounds every user-entered figure so results stay representable
// as float64 in the persisted record.
var MaxAmount = decimal.New(1, 12)

// ParseAmount parses a user-entered number between 0 and MaxAmount. A single
// comma is accepted as the decimal separator when no dot is present, so "1,5"
// reads as 1.5.
func ParseAmount(field, text string) (decimal.Decimal, error) {
	s := strings.TrimSpace(text)
	if !strings.Contains(s, ".") {
		s = strings.Replace(s, ",", ".", 1)
	}

	value, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, errors.InvalidInput(field, text)
	}
	if value.IsNegative() {
		return decimal.Zero, errors.Newf(errors.TypeInvalidInput, "%s must not be negative, got %s", field, value).
			WithContext("field", field)
	}
	if value.GreaterThan(MaxAmount) {
		return decimal.Zero, errors.Newf(errors.TypeInvalidInput, "%s must not exceed %s, got %s", field, MaxAmount, text).
			WithContext("field", field)
	}
	return value, nil
}
