package utils

import (
	"fmt"
	"time"
)

// FormatCurrency formats an amount as an INR currency string
func FormatCurrency(amount float64) string {
	return fmt.Sprintf("₹%.2f", amount)
}

// FormatDate formats a timestamp as a readable date, e.g. "January 2, 2006"
func FormatDate(t time.Time) string {
	if t.IsZero() {
		return "N/A"
	}
	return t.Format("January 2, 2006")
}
