package logger

import "strings"

// Example: 081325648565 -> ********8565
func MaskPhone(phone string) string {
	phone = strings.TrimSpace(phone)
	if phone == "" {
		return ""
	}

	runes := []rune(phone)
	if len(runes) <= 4 {
		return strings.Repeat("*", len(runes))
	}

	// Keep only the last four characters
	return strings.Repeat("*", len(runes)-4) + string(runes[len(runes)-4:])
}
