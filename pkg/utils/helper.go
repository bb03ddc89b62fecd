package utils

import (
	"strconv"
)

// ParseInt converts string to int with default value
func ParseInt(value string, defaultValue int) int {
	if value == "" {
		return defaultValue
	}

	result, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}

	if result < 1 {
		return defaultValue
	}

	return result
}

// ParseIntInRange is ParseInt with an inclusive upper bound.
func ParseIntInRange(value string, defaultValue, max int) int {
	result := ParseInt(value, defaultValue)
	if result > max {
		return defaultValue
	}
	return result
}
