package shop

import "fmt"

// FormatPrice renders an amount in minor currency units for display,
// e.g. 2500 -> "2500 y.e".
func FormatPrice(amount int64) string {
	return fmt.Sprintf("%d y.e", amount)
}
