package convert

import (
	"fmt"
	"github.com/jenkins-x-apps/jacoco2cobertura/internal/cobertura"
	"github.com/jenkins-x-apps/jacoco2cobertura/internal/report"
	"math"
	"strconv"
	"strings"
)

const (
	zero = "0.0"

	conditionTypeJump = "jump"
)

// Rates are the Cobertura representation of a set of JaCoCo counters.
type Rates struct {
	LineRate   string
	BranchRate string
	Complexity string
}

// TranslateCounters converts JaCoCo counters into Cobertura rates. Line and branch rate are
// covered / (covered + missed), the complexity is covered + missed. A missing counter yields "0.0".
func TranslateCounters(counters []report.Counter) Rates {
	return Rates{
		LineRate:   counterValue(counters, report.CounterTypeLine, fraction),
		BranchRate: counterValue(counters, report.CounterTypeBranch, fraction),
		Complexity: counterValue(counters, report.CounterTypeComplexity, sum),
	}
}

func counterValue(counters []report.Counter, counterType string, operation func(covered, missed float64) float64) string {
	c := report.CounterOfType(counters, counterType)
	if c == nil {
		return zero
	}
	return formatFloat(operation(float64(c.Covered), float64(c.Missed)))
}

// fraction short circuits on nothing covered, which also keeps 0/0 from turning into NaN.
func fraction(covered, missed float64) float64 {
	if covered == 0 {
		return 0
	}
	return covered / (covered + missed)
}

func sum(covered, missed float64) float64 {
	return covered + missed
}

// formatFloat renders f as the shortest decimal that round trips, always with a fractional part
// or an exponent, eg "1.0", "0.75", "3.3333333333333335e-05".
func formatFloat(f float64) string {
	switch {
	case math.IsNaN(f):
		return "nan"
	case math.IsInf(f, 1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	}

	abs := math.Abs(f)
	if abs != 0 && (abs < 1e-4 || abs >= 1e16) {
		return strconv.FormatFloat(f, 'e', -1, 64)
	}
	s := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

// convertLine translates a JaCoCo line. JaCoCo does not record hit counts, a line with any covered
// instruction is reported with a single hit.
func convertLine(line report.Line) cobertura.Line {
	hits := 0
	if line.Ci > 0 {
		hits = 1
	}
	coberturaLine := cobertura.Line{
		Number: line.Nr,
		Hits:   hits,
	}

	branches := line.Mb + line.Cb
	if branches > 0 {
		percentage := fmt.Sprintf("%d%%", branchPercentage(line.Cb, line.Mb))
		coberturaLine.Branch = true
		coberturaLine.ConditionCoverage = fmt.Sprintf("%s (%d/%d)", percentage, line.Cb, branches)
		coberturaLine.Conditions = &cobertura.Conditions{
			Conditions: []cobertura.Condition{
				{Number: 0, Type: conditionTypeJump, Coverage: percentage},
			},
		}
	}
	return coberturaLine
}

// branchPercentage truncates the covered share of branches to a whole percent.
func branchPercentage(covered, missed int) int {
	return int(100 * (float64(covered) / (float64(covered) + float64(missed))))
}

func convertLines(lines []report.Line) cobertura.Lines {
	coberturaLines := cobertura.Lines{}
	for _, line := range lines {
		coberturaLines.Lines = append(coberturaLines.Lines, convertLine(line))
	}
	return coberturaLines
}
