package convert

import (
	"github.com/jenkins-x-apps/jacoco2cobertura/internal/report"
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestFilePath(t *testing.T) {
	var testCases = []struct {
		class    report.Class
		expected string
	}{
		{report.Class{Name: "com/example/Foo", Sourcefilename: "Foo.java"}, "com/example/Foo.java"},
		{report.Class{Name: "com/example/Foo$Bar", Sourcefilename: "Foo.java"}, "com/example/Foo.java"},
		{report.Class{Name: "com/example/Foo"}, "com/example/Foo"},
		{report.Class{Name: "Foo", Sourcefilename: "Foo.kt"}, "Foo.kt"},
	}

	for _, testCase := range testCases {
		assert.Equal(t, testCase.expected, FilePath(testCase.class))
	}
}

func TestFileStem(t *testing.T) {
	var testCases = []struct {
		path     string
		expected string
	}{
		{"com/example/Foo.java", "Foo"},
		{"Foo.java", "Foo"},
		{"com/example/Foo", "Foo"},
		{"com/example/Foo.test.java", "Foo.test"},
	}

	for _, testCase := range testCases {
		assert.Equal(t, testCase.expected, FileStem(testCase.path))
	}
}

func TestIsIncluded(t *testing.T) {
	changed := []string{"Foo", "Bar"}

	var testCases = []struct {
		className string
		stem      string
		changed   []string
		expected  bool
	}{
		{"com.example.Foo", "Foo", changed, true},
		{"com.example.Foo$Inner", "Foo", changed, true},
		{"com.example.Baz", "Baz", changed, false},
		{"com.example.Foo$AjcClosure1", "Foo", changed, false},
		{"com.example.Foo", "Foo", nil, false},
		{"com.example.Foo", "Foo", []string{}, false},
	}

	for _, testCase := range testCases {
		actual := IsIncluded(testCase.className, testCase.stem, testCase.changed)
		assert.Equal(t, testCase.expected, actual, "class %s with stem %s", testCase.className, testCase.stem)
	}
}

func TestCustomSyntheticMarkers(t *testing.T) {
	f := newFilter([]string{"Foo"}, []string{"$$Lambda", "AjcClosure"})

	assert.True(t, f.isIncluded("com.example.Foo", "Foo"))
	assert.False(t, f.isIncluded("com.example.Foo$$Lambda$1", "Foo"))
	assert.False(t, f.isIncluded("com.example.Foo$AjcClosure3", "Foo"))
}
