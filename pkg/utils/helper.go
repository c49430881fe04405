package utils

import (
	"fmt"
	"strconv"
)

// ParseQueryInt converts a query value to int, returning defaultValue when empty.
func ParseQueryInt(value string, defaultValue int) (int, error) {
	if value == "" {
		return defaultValue, nil
	}

	result, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("invalid integer %q", value)
	}

	return result, nil
}

// ParseID converts a path parameter to a positive record id.
func ParseID(value string) (uint, error) {
	id, err := strconv.ParseUint(value, 10, 0)
	if err != nil || id == 0 {
		return 0, fmt.Errorf("invalid id %q", value)
	}
	return uint(id), nil
}
