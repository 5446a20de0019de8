package util

import (
	"strings"
)

// MultiError collects multiple errors.
type MultiError struct {
	Errors []error
}

// Collect appends the specified error to the list of collected errors. nil errors are ignored.
func (m *MultiError) Collect(err error) {
	if err != nil {
		m.Errors = append(m.Errors, err)
	}
}

// Empty returns true if no errors have been collected.
func (m MultiError) Empty() bool {
	return len(m.Errors) == 0
}

// Error implements the error interface, joining all collected messages with a newline.
func (m MultiError) Error() string {
	var messages []string
	for _, err := range m.Errors {
		messages = append(messages, err.Error())
	}
	return strings.Join(messages, "\n")
}
