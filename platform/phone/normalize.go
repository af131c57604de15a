// Package phone provides phone number utilities.
// This is part of the platform layer and contains no business logic.
package phone

import (
	"strings"

	"github.com/nyaruka/phonenumbers"
)

// defaultRegion is assumed for numbers entered without a country prefix.
const defaultRegion = "US"

// NormalizeE164 formats a phone number to E.164. Input that cannot be parsed
// as a valid number is returned trimmed but otherwise unchanged, so leads
// keep whatever the caller typed rather than losing the value.
func NormalizeE164(raw string) string {
	cleaned := strings.TrimSpace(raw)
	if cleaned == "" {
		return cleaned
	}

	parsed, err := phonenumbers.Parse(cleaned, defaultRegion)
	if err != nil || !phonenumbers.IsValidNumber(parsed) {
		return cleaned
	}

	return phonenumbers.Format(parsed, phonenumbers.E164)
}
