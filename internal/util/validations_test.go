package util

import (
	"fmt"
	"github.com/magiconair/properties/assert"
	"strings"
	"testing"
)

func errorLines(err error) []string {
	if err == nil {
		return []string{}
	}
	return strings.Split(err.Error(), "\n")
}

func Test_IsNotEmpty(t *testing.T) {
	var testValues = []struct {
		value  interface{}
		errors []string
	}{
		{"jx", []string{}},
		{"", []string{"Value for FOO cannot be empty."}},
		{42, []string{"Value for FOO needs to be a string."}},
	}

	for _, testValue := range testValues {
		err := IsNotEmpty(testValue.value, "FOO")
		assert.Equal(t, errorLines(err), testValue.errors, fmt.Sprintf("Unexpected error for %v", testValue.value))
	}
}

func Test_IsNonNegativeInt(t *testing.T) {
	var testInts = []struct {
		value  string
		errors []string
	}{
		{"0", []string{}},
		{"3", []string{}},
		{"-1", []string{"Value for FOO cannot be negative."}},
		{"snafu", []string{"Value for FOO needs to be an integer."}},
		{"", []string{"Value for FOO needs to be an integer."}},
	}

	for _, testInt := range testInts {
		err := IsNonNegativeInt(testInt.value, "FOO")
		assert.Equal(t, errorLines(err), testInt.errors, fmt.Sprintf("Unexpected error for %s", testInt.value))
	}
}

func Test_IsFileExtension(t *testing.T) {
	var testExtensions = []struct {
		value  string
		errors []string
	}{
		{".java", []string{}},
		{".kt", []string{}},
		{"java", []string{"Value for FOO needs to be a file extension starting with '.'."}},
		{".", []string{"Value for FOO needs to be a file extension starting with '.'."}},
		{"./java", []string{"Value for FOO needs to be a file extension starting with '.'."}},
	}

	for _, testExtension := range testExtensions {
		err := IsFileExtension(testExtension.value, "FOO")
		assert.Equal(t, errorLines(err), testExtension.errors, fmt.Sprintf("Unexpected error for %s", testExtension.value))
	}
}
