package candidate

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	emailPattern = regexp.MustCompile(`^[\w.-]+@[\w.-]+\.\w+$`)
	phonePattern = regexp.MustCompile(`^\+?\d{7,15}$`)
)

// ValidEmail reports whether the text looks like local@domain.tld, where the
// local and domain parts consist of word characters, dots and hyphens.
func ValidEmail(text string) bool {
	return emailPattern.MatchString(text)
}

// ValidPhone reports whether the text is 7-15 digits with an optional
// leading plus sign.
func ValidPhone(text string) bool {
	return phonePattern.MatchString(text)
}

// Sanitize trims surrounding whitespace. No other transformation is applied.
func Sanitize(text string) string {
	return strings.TrimSpace(text)
}

// ParseExperience parses a non-negative integer number of years.
func ParseExperience(text string) (int, bool) {
	years, err := strconv.Atoi(strings.TrimSpace(text))
	if err != nil || years < 0 {
		return 0, false
	}
	return years, true
}

// ParseTechStack splits a comma-separated technology list, trimming each
// entry and dropping empty ones and repeats. Order is preserved; the first
// occurrence of a technology wins.
func ParseTechStack(text string) []string {
	return NormalizeStack(strings.Split(text, ","))
}

// NormalizeStack trims the entries of a technology list and drops empty ones
// and repeats, keeping the first occurrence of each.
func NormalizeStack(entries []string) []string {
	stack := make([]string, 0, len(entries))
	seen := make(map[string]struct{}, len(entries))
	for _, entry := range entries {
		tech := strings.TrimSpace(entry)
		if tech == "" {
			continue
		}
		if _, ok := seen[tech]; ok {
			continue
		}
		seen[tech] = struct{}{}
		stack = append(stack, tech)
	}
	return stack
}
