package currency

import "fmt"

// Format renders an amount as a currency string, e.g. "$1200.00".
func Format(amount float64) string {
	return fmt.Sprintf("$%.2f", amount)
}
