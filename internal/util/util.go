package util

import (
	"runtime"
	"strings"
)

// Contains checks whether the specified string is contained in the given string slice.
// Returns true if it does, false otherwise
func Contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

// NameOfFunction returns the unqualified name of the function at the specified program counter,
// eg 'Level' for 'github.com/jenkins-x-apps/jacoco2cobertura/internal/config.(*EnvConfig).Level'.
func NameOfFunction(pc uintptr) string {
	f := runtime.FuncForPC(pc)
	if f == nil {
		return ""
	}
	name := f.Name()
	return name[strings.LastIndex(name, ".")+1:]
}
