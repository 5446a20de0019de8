package util

import (
	"github.com/pkg/errors"
	"strconv"
	"strings"
)

// IsNotEmpty checks if value stored at given key is empty.
// if it is empty it returns an error.
func IsNotEmpty(value interface{}, key string) error {
	s, ok := value.(string)
	if !ok {
		return errors.Errorf("Value for %s needs to be a string.", key)
	}

	if len(s) == 0 {
		return errors.Errorf("Value for %s cannot be empty.", key)
	}
	return nil
}

// IsNonNegativeInt checks if the value stored at a given key is an int greater or equal to zero.
func IsNonNegativeInt(value interface{}, key string) error {
	s, _ := value.(string)
	i, err := strconv.Atoi(s)
	if err != nil {
		return errors.Errorf("Value for %s needs to be an integer.", key)
	}
	if i < 0 {
		return errors.Errorf("Value for %s cannot be negative.", key)
	}
	return nil
}

// IsFileExtension checks if the value stored at a given key looks like a file extension, eg '.java'.
func IsFileExtension(value interface{}, key string) error {
	s, _ := value.(string)
	if !strings.HasPrefix(s, ".") || len(s) < 2 || strings.ContainsAny(s, `/\`) {
		return errors.Errorf("Value for %s needs to be a file extension starting with '.'.", key)
	}
	return nil
}
