package lottery

import (
	"strconv"
	"strings"
)

// ParseRequiredCount interprets a configured count, falling back to DefaultRequiredCount
// when the value is absent, unparseable, or not positive.
func ParseRequiredCount(rawValue string) int {
	trimmedValue := strings.TrimSpace(rawValue)
	if len(trimmedValue) == 0 {
		return DefaultRequiredCount
	}
	parsedValue, parseError := strconv.Atoi(trimmedValue)
	if parseError != nil || parsedValue <= 0 {
		return DefaultRequiredCount
	}
	return parsedValue
}
