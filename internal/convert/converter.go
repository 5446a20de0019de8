package convert

import (
	"github.com/jenkins-x-apps/jacoco2cobertura/internal/cobertura"
	"github.com/jenkins-x-apps/jacoco2cobertura/internal/logging"
	"github.com/jenkins-x-apps/jacoco2cobertura/internal/report"
	log "github.com/sirupsen/logrus"
	"strconv"
	"strings"
	"time"
)

const (
	defaultSourceRoot = "."
)

var (
	logger = logging.AppLogger().WithFields(log.Fields{"component": "convert"})
)

// Converter translates JaCoCo reports into Cobertura reports.
type Converter struct {
	// SyntheticMarkers overrides DefaultSyntheticMarkers if set.
	SyntheticMarkers []string

	// Now returns the current time, used if the report has no session start. Defaults to time.Now.
	Now func() time.Time
}

// Stats summarises a conversion.
type Stats struct {
	Packages         int
	Classes          int
	SkippedClasses   int
	SyntheticClasses int
	Methods          int
	Lines            int
}

// Convert translates the JaCoCo report into a Cobertura report. Only classes whose source file stem is
// contained in changedFileStems are emitted, packages are always emitted. An empty sourceRoots defaults to '.'.
func Convert(jacoco *report.Report, changedFileStems []string, sourceRoots []string) *cobertura.Coverage {
	coverage, _ := (&Converter{}).Convert(jacoco, changedFileStems, sourceRoots)
	return coverage
}

// Convert translates the JaCoCo report into a Cobertura report, see Convert.
func (c *Converter) Convert(jacoco *report.Report, changedFileStems []string, sourceRoots []string) (*cobertura.Coverage, Stats) {
	markers := c.SyntheticMarkers
	if markers == nil {
		markers = DefaultSyntheticMarkers
	}
	f := newFilter(changedFileStems, markers)
	stats := Stats{}

	rates := TranslateCounters(jacoco.Counters)
	coverage := &cobertura.Coverage{
		Timestamp:  c.timestamp(jacoco),
		LineRate:   rates.LineRate,
		BranchRate: rates.BranchRate,
		Complexity: rates.Complexity,
		Sources:    convertSources(sourceRoots),
	}

	for _, pkg := range jacoco.AllPackages() {
		coverage.Packages.Packages = append(coverage.Packages.Packages, convertPackage(pkg, f, &stats))
	}

	logger.Infof("converted %d packages, %d of %d classes changed", stats.Packages, stats.Classes, stats.Classes+stats.SkippedClasses)
	return coverage, stats
}

func (c *Converter) timestamp(jacoco *report.Report) string {
	if start, ok := jacoco.Start(); ok {
		return formatFloat(float64(start) / 1000)
	}
	now := time.Now
	if c.Now != nil {
		now = c.Now
	}
	logger.Debug("report has no session start, using the current time")
	return strconv.FormatInt(now().Unix(), 10)
}

func convertSources(sourceRoots []string) cobertura.Sources {
	if len(sourceRoots) == 0 {
		sourceRoots = []string{defaultSourceRoot}
	}
	sources := cobertura.Sources{}
	for _, root := range sourceRoots {
		sources.Sources = append(sources.Sources, cobertura.Source{Path: root})
	}
	return sources
}

func convertPackage(pkg report.Package, f *filter, stats *Stats) cobertura.Package {
	rates := TranslateCounters(pkg.Counters)
	coberturaPackage := cobertura.Package{
		Name:       toDotted(pkg.Name),
		LineRate:   rates.LineRate,
		BranchRate: rates.BranchRate,
		Complexity: rates.Complexity,
	}

	for _, class := range pkg.Classes {
		className := toDotted(class.Name)
		if !f.isIncluded(className, FileStem(FilePath(class))) {
			if f.isSynthetic(className) {
				stats.SyntheticClasses++
			}
			stats.SkippedClasses++
			logger.Debugf("skipping class %s", className)
			continue
		}
		coberturaPackage.Classes.Classes = append(coberturaPackage.Classes.Classes, convertClass(class, pkg, stats))
	}

	stats.Packages++
	return coberturaPackage
}

func convertClass(class report.Class, pkg report.Package, stats *Stats) cobertura.Class {
	filePath := FilePath(class)
	rates := TranslateCounters(class.Counters)
	coberturaClass := cobertura.Class{
		Name:       toDotted(class.Name),
		Filename:   filePath,
		LineRate:   rates.LineRate,
		BranchRate: rates.BranchRate,
		Complexity: rates.Complexity,
	}

	lines := pkg.LinesOf(baseName(filePath))
	attributor := newLineAttributor(class.Methods)
	for _, method := range class.Methods {
		coberturaClass.Methods.Methods = append(coberturaClass.Methods.Methods, convertMethod(method, attributor.linesOf(method, lines)))
		stats.Methods++
	}
	coberturaClass.Lines = convertLines(lines)

	stats.Classes++
	stats.Lines += len(lines)
	return coberturaClass
}

func convertMethod(method report.Method, lines []report.Line) cobertura.Method {
	rates := TranslateCounters(method.Counters)
	return cobertura.Method{
		Name:       method.Name,
		Signature:  method.Desc,
		LineRate:   rates.LineRate,
		BranchRate: rates.BranchRate,
		Complexity: rates.Complexity,
		Lines:      convertLines(lines),
	}
}

func toDotted(name string) string {
	return strings.Replace(name, "/", ".", -1)
}

func baseName(filePath string) string {
	return filePath[strings.LastIndex(filePath, "/")+1:]
}
