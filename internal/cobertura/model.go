package cobertura

import "encoding/xml"

// Coverage is the root element of a Cobertura report.
// Rates and complexities are kept as rendered strings so the document is reproduced verbatim.
type Coverage struct {
	XMLName    xml.Name `xml:"coverage"`
	Timestamp  string   `xml:"timestamp,attr"`
	LineRate   string   `xml:"line-rate,attr"`
	BranchRate string   `xml:"branch-rate,attr"`
	Complexity string   `xml:"complexity,attr"`
	Sources    Sources  `xml:"sources"`
	Packages   Packages `xml:"packages"`
}

// Sources lists the source roots.
type Sources struct {
	Sources []Source `xml:"source"`
}

// Source is a single source root.
type Source struct {
	Path string `xml:",chardata"`
}

// Packages lists the packages of a report. It is always rendered, even if empty.
type Packages struct {
	Packages []Package `xml:"package"`
}

// Package depict a Java package.
type Package struct {
	Name       string  `xml:"name,attr"`
	LineRate   string  `xml:"line-rate,attr"`
	BranchRate string  `xml:"branch-rate,attr"`
	Complexity string  `xml:"complexity,attr"`
	Classes    Classes `xml:"classes"`
}

// Classes lists the classes of a package.
type Classes struct {
	Classes []Class `xml:"class"`
}

// Class depict a Java class.
type Class struct {
	Name       string  `xml:"name,attr"`
	Filename   string  `xml:"filename,attr"`
	LineRate   string  `xml:"line-rate,attr"`
	BranchRate string  `xml:"branch-rate,attr"`
	Complexity string  `xml:"complexity,attr"`
	Methods    Methods `xml:"methods"`
	Lines      Lines   `xml:"lines"`
}

// Methods lists the methods of a class.
type Methods struct {
	Methods []Method `xml:"method"`
}

// Method depict a Java method.
type Method struct {
	Name       string `xml:"name,attr"`
	Signature  string `xml:"signature,attr"`
	LineRate   string `xml:"line-rate,attr"`
	BranchRate string `xml:"branch-rate,attr"`
	Complexity string `xml:"complexity,attr"`
	Lines      Lines  `xml:"lines"`
}

// Lines lists covered or missed lines.
type Lines struct {
	Lines []Line `xml:"line"`
}

// Line depict a single line. ConditionCoverage and Conditions are only set for lines with branches.
type Line struct {
	Number            int         `xml:"number,attr"`
	Hits              int         `xml:"hits,attr"`
	Branch            bool        `xml:"branch,attr"`
	ConditionCoverage string      `xml:"condition-coverage,attr,omitempty"`
	Conditions        *Conditions `xml:"conditions,omitempty"`
}

// Conditions lists the conditions of a branching line.
type Conditions struct {
	Conditions []Condition `xml:"condition"`
}

// Condition describes the coverage of a single branch point.
type Condition struct {
	Number   int    `xml:"number,attr"`
	Type     string `xml:"type,attr"`
	Coverage string `xml:"coverage,attr"`
}
