package krakenapi

import (
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// FloatToString n: the number of decimal places kept, trailing zeros stripped.
func FloatToString(v float64, n int32) string {
	return decimal.NewFromFloat(v).Round(n).String()
}

func UUID() string {
	return strings.Replace(uuid.New().String(), "-", "", -1)
}
