package convert

import (
	"strings"

	apd "github.com/cockroachdb/apd/v3"
)

// DecimalConverter parses a field's text into an arbitrary-precision
// decimal.
type DecimalConverter interface {
	// ConvertDecimal parses the field text.
	ConvertDecimal(field string) (*apd.Decimal, error)
}

var _ DecimalConverter = (*decimalConverter)(nil)

type decimalConverter struct{}

// NewDecimalConverter returns the default decimal strategy. It tolerates
// currency symbols, thousands separators, and stray spaces around the
// number.
func NewDecimalConverter() DecimalConverter {
	return decimalConverter{}
}

// ConvertDecimal implements DecimalConverter.
func (decimalConverter) ConvertDecimal(field string) (*apd.Decimal, error) {
	field = strings.Replace(field, "$", "", -1)
	field = strings.Replace(field, "€", "", -1)
	field = strings.Replace(field, "£", "", -1)
	field = strings.Replace(field, ",", "", -1)
	field = strings.Replace(field, " ", "", -1)

	value, _, err := apd.NewFromString(strings.TrimSpace(field))
	if err != nil {
		return nil, err
	}
	return value, nil
}
