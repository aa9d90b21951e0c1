package cryptomepay

import (
	"fmt"
	"strconv"

	"github.com/shopspring/decimal"
)

// formatAmount renders an amount with exactly two decimals, the form
// the gateway signs and stores.
func formatAmount(amount decimal.Decimal) string {
	return amount.StringFixed(2)
}

// webhookParams renders a decoded JSON object into the string form the
// gateway signed: numbers in shortest round-trip notation, booleans as
// true/false, nulls omitted.
func webhookParams(payload map[string]any) map[string]string {
	params := make(map[string]string, len(payload))
	for key, value := range payload {
		switch value := value.(type) {
		case nil:
			continue
		case string:
			params[key] = value
		case float64:
			params[key] = strconv.FormatFloat(value, 'f', -1, 64)
		case bool:
			params[key] = strconv.FormatBool(value)
		default:
			params[key] = fmt.Sprintf("%v", value)
		}
	}
	return params
}
