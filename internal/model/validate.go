package model

import (
	"fmt"
	"strings"
)

const (
	MinAge  = 8
	MaxAge  = 18
	MinHour = 0
	MaxHour = 23

	maxNameLen = 100
)

// ValidationError 字段取值不合法，写入必须中止
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func invalid(field, format string, args ...any) *ValidationError {
	return &ValidationError{Field: field, Message: fmt.Sprintf(format, args...)}
}

// ValidateAge 年龄必须在 [8, 18] 之间
func ValidateAge(v int) (int, error) {
	if v < MinAge || v > MaxAge {
		return 0, invalid("age", "age must be between %d and %d", MinAge, MaxAge)
	}
	return v, nil
}

// ValidateTime 时间为一天中的小时，必须在 [0, 23] 之间
func ValidateTime(v int) (int, error) {
	if v < MinHour || v > MaxHour {
		return 0, invalid("time", "time must be between %d and %d", MinHour, MaxHour)
	}
	return v, nil
}

func ValidateName(v string) (string, error) {
	if strings.TrimSpace(v) == "" {
		return "", invalid("name", "name is required")
	}
	if len([]rune(v)) > maxNameLen {
		return "", invalid("name", "name must be at most %d characters", maxNameLen)
	}
	return v, nil
}
