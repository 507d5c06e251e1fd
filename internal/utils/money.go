package utils

import (
	"fmt"
	"math"
)

// RoundCents rounds to two decimals, half away from zero.
func RoundCents(amount float64) float64 {
	return math.Round(amount*100) / 100
}

// FormatMoney keeps consistent decimal formatting for currency fields.
func FormatMoney(amount float64) string {
	return fmt.Sprintf("%.2f", amount)
}

// FormatSoles renders an amount the way vouchers print it: "S/ 1234.50".
func FormatSoles(amount float64) string {
	return "S/ " + FormatMoney(amount)
}
