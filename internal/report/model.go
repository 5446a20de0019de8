package report

import "encoding/xml"

// Report is the top level struct for the jacoco report
type Report struct {
	XMLName     xml.Name      `xml:"report"`
	Name        string        `xml:"name,attr"`
	SessionInfo []SessionInfo `xml:"sessioninfo"`
	Packages    []Package     `xml:"package"`
	Groups      []Group       `xml:"group"`
	Counters    []Counter     `xml:"counter"`
}

// Counter keeps track over misses and coverage of various the source constructs.
type Counter struct {
	Type    string `xml:"type,attr"`
	Missed  int    `xml:"missed,attr"`
	Covered int    `xml:"covered,attr"`
}

// SessionInfo identifies when the report was taken. Start and Dump are milliseconds since the epoch.
type SessionInfo struct {
	ID    string `xml:"id,attr"`
	Start *int64 `xml:"start,attr"`
	Dump  *int64 `xml:"dump,attr"`
}

// Line depict a line in a source file.
type Line struct {
	Nr int `xml:"nr,attr"`
	Mi int `xml:"mi,attr"`
	Ci int `xml:"ci,attr"`
	Mb int `xml:"mb,attr"`
	Cb int `xml:"cb,attr"`
}

// SourceFile depict a Java source file.
type SourceFile struct {
	Name     string    `xml:"name,attr"`
	Lines    []Line    `xml:"line"`
	Counters []Counter `xml:"counter"`
}

// Method depict a Java method.
type Method struct {
	Name     string    `xml:"name,attr"`
	Desc     string    `xml:"desc,attr"`
	Line     int       `xml:"line,attr"`
	Counters []Counter `xml:"counter"`
}

// Class depict a Java class.
type Class struct {
	Name           string    `xml:"name,attr"`
	Sourcefilename string    `xml:"sourcefilename,attr"`
	Methods        []Method  `xml:"method"`
	Counters       []Counter `xml:"counter"`
}

// Package depict a Java package.
type Package struct {
	Name        string       `xml:"name,attr"`
	Classes     []Class      `xml:"class"`
	SourceFiles []SourceFile `xml:"sourcefile"`
	Counters    []Counter    `xml:"counter"`
}

// Group allows the grouping of a set of source constucts.
type Group struct {
	Name     string    `xml:"name,attr"`
	Packages []Package `xml:"package"`
	Groups   []Group   `xml:"group"`
	Counters []Counter `xml:"counter"`
}

// Start returns the start time of the first recorded session in milliseconds since the epoch.
// ok is false if the report does not carry a session start.
func (r *Report) Start() (start int64, ok bool) {
	if len(r.SessionInfo) == 0 || r.SessionInfo[0].Start == nil {
		return 0, false
	}
	return *r.SessionInfo[0].Start, true
}

// AllPackages returns the packages of all groups, depth first and in document order,
// followed by the packages declared directly below the report.
func (r *Report) AllPackages() []Package {
	var packages []Package
	for _, group := range r.Groups {
		packages = append(packages, group.allPackages()...)
	}
	return append(packages, r.Packages...)
}

func (g *Group) allPackages() []Package {
	packages := append([]Package{}, g.Packages...)
	for _, group := range g.Groups {
		packages = append(packages, group.allPackages()...)
	}
	return packages
}

// CounterOfType returns the first counter of the specified type, nil if there is none.
func CounterOfType(counters []Counter, counterType string) *Counter {
	for i := range counters {
		if counters[i].Type == counterType {
			return &counters[i]
		}
	}
	return nil
}

// LinesOf returns the lines of all source files in the package with the specified name.
func (p *Package) LinesOf(sourceFileName string) []Line {
	var lines []Line
	for _, sourceFile := range p.SourceFiles {
		if sourceFile.Name == sourceFileName {
			lines = append(lines, sourceFile.Lines...)
		}
	}
	return lines
}

// Counter types of a JaCoCo report.
const (
	CounterTypeInstruction = "INSTRUCTION"
	CounterTypeBranch      = "BRANCH"
	CounterTypeLine        = "LINE"
	CounterTypeComplexity  = "COMPLEXITY"
	CounterTypeMethod      = "METHOD"
	CounterTypeClass       = "CLASS"
)
