package config

import "fmt"

// MissingValueError is returned when a required configuration value is blank.
type MissingValueError struct {
	Name string
}

func (e *MissingValueError) Error() string {
	return fmt.Sprintf("required configuration value %s is missing", e.Name)
}

// OutOfRangeError is returned when a numeric configuration value is outside
// its allowed range.
type OutOfRangeError struct {
	Name  string
	Value int
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("configuration value %s is out of range: %d", e.Name, e.Value)
}
