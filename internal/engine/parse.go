package engine

import (
	"fmt"
	"strings"
)

// ParseCategory parses user input to a BlockCategory, case-insensitively.
// "rest" is accepted for Break; "" maps to Other.
func ParseCategory(input string) (BlockCategory, error) {
	s := strings.TrimSpace(strings.ToLower(input))
	switch s {
	case "":
		return CategoryOther, nil
	case "rest":
		return CategoryBreak, nil
	}
	for _, c := range AllCategories {
		if strings.ToLower(string(c)) == s {
			return c, nil
		}
	}
	return "", fmt.Errorf("invalid category: %q", input)
}

// ParsePriority parses user input to a Priority. Empty input is medium.
func ParsePriority(input string) (Priority, error) {
	s := strings.TrimSpace(strings.ToLower(input))
	switch s {
	case "":
		return PriorityMedium, nil
	case "l", "low":
		return PriorityLow, nil
	case "m", "med", "medium":
		return PriorityMedium, nil
	case "h", "high":
		return PriorityHigh, nil
	default:
		return "", fmt.Errorf("invalid priority: %q", input)
	}
}

// ParseDimension parses user input to a DimensionType. "relations" is
// accepted for Relationships.
func ParseDimension(input string) (DimensionType, error) {
	s := strings.TrimSpace(strings.ToLower(input))
	if s == "relations" {
		return DimensionRelationships, nil
	}
	for _, d := range AllDimensions {
		if strings.ToLower(string(d)) == s {
			return d, nil
		}
	}
	return "", fmt.Errorf("invalid dimension: %q", input)
}
