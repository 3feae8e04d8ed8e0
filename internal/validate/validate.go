package validate

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	reID           = regexp.MustCompile(`^[A-Za-z0-9_-]{1,64}$`)
	reTransmission = regexp.MustCompile(`^(Automatic|Manual)$`)
)

// Query normalizes a free-text search query: trims and caps the length.
// Brand and model names are arbitrary text, so no charset restriction.
func Query(s string) string {
	s = strings.TrimSpace(s)
	if len(s) > 60 {
		s = s[:60]
	}
	return s
}

// ID validates a record identifier (seed ids and uuids both pass).
func ID(s string) (string, bool) {
	s = strings.TrimSpace(s)
	return s, s != "" && reID.MatchString(s)
}

// Required validates a non-empty free-text field with a sane max length.
func Required(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if s == "" || len(s) > 80 {
		return "", false
	}
	return s, true
}

// Year parses a model year. Invalid input is rejected, never coerced; the
// caller keeps the previous draft value.
func Year(s string) (int, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 1900 || n > 2100 {
		return 0, false
	}
	return n, true
}

// Amount parses a non-negative whole-unit currency or odometer value.
func Amount(s string) (int, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 0 {
		return 0, false
	}
	return n, true
}

// OptionalAmount parses an amount that may be left blank (blank means zero,
// i.e. unset). Non-blank invalid input is still rejected.
func OptionalAmount(s string) (int, bool) {
	if strings.TrimSpace(s) == "" {
		return 0, true
	}
	return Amount(s)
}

// Transmission validates the closed label set.
func Transmission(s string) (string, bool) {
	s = strings.TrimSpace(s)
	return s, reTransmission.MatchString(s)
}

// Features splits the comma-delimited features field into trimmed, non-empty
// elements, preserving order.
func Features(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// Page parses a 1-based page number, defaulting to 1.
func Page(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 1 {
		return 1
	}
	return n
}
