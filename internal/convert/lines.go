package convert

import (
	"github.com/jenkins-x-apps/jacoco2cobertura/internal/report"
	"sort"
)

// lineAttributor assigns the lines of a class to its methods. JaCoCo only records where a method
// starts, so a method is assumed to end where the next method (by start line) begins.
type lineAttributor struct {
	starts []int
}

func newLineAttributor(methods []report.Method) *lineAttributor {
	starts := make([]int, 0, len(methods))
	for _, method := range methods {
		starts = append(starts, method.Line)
	}
	sort.Ints(starts)
	return &lineAttributor{starts: starts}
}

// bounds returns the half open interval [start, end) of lines owned by a method starting at start.
// open is true if no method starts after start.
func (a *lineAttributor) bounds(start int) (end int, open bool) {
	i := sort.SearchInts(a.starts, start+1)
	if i == len(a.starts) {
		return 0, true
	}
	return a.starts[i], false
}

func (a *lineAttributor) linesOf(method report.Method, lines []report.Line) []report.Line {
	start := method.Line
	end, open := a.bounds(start)

	var methodLines []report.Line
	for _, line := range lines {
		if line.Nr >= start && (open || line.Nr < end) {
			methodLines = append(methodLines, line)
		}
	}
	return methodLines
}

// MethodLines returns, in their original order, the lines attributable to method: every line from the
// method's start line up to, but excluding, the smallest start line of the methods that start after it.
// Methods sharing a start line are attributed the same lines.
func MethodLines(method report.Method, methods []report.Method, lines []report.Line) []report.Line {
	return newLineAttributor(methods).linesOf(method, lines)
}
