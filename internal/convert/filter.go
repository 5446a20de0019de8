package convert

import (
	"github.com/jenkins-x-apps/jacoco2cobertura/internal/report"
	"github.com/jenkins-x-apps/jacoco2cobertura/internal/util"
	"path"
	"strings"
)

// DefaultSyntheticMarkers are the class name fragments of compiler generated classes, eg AspectJ closures.
var DefaultSyntheticMarkers = []string{"AjcClosure"}

// FilePath returns the path of the source file the class was compiled from. The last segment of
// the class name is replaced with the declared source file name or, if there is none, kept as is.
// eg 'com/example/Foo$Bar' with source file 'Foo.java' becomes 'com/example/Foo.java'.
func FilePath(class report.Class) string {
	fileName := class.Sourcefilename
	if fileName == "" {
		fileName = class.Name[strings.LastIndex(class.Name, "/")+1:]
	}
	return class.Name[:strings.LastIndex(class.Name, "/")+1] + fileName
}

// FileStem returns the file name of the specified path without directory and extension.
func FileStem(filePath string) string {
	base := path.Base(filePath)
	return strings.TrimSuffix(base, path.Ext(base))
}

// IsIncluded returns true if fileStem is one of the changed file stems and the class is not compiler generated.
func IsIncluded(className string, fileStem string, changedFileStems []string) bool {
	return newFilter(changedFileStems, DefaultSyntheticMarkers).isIncluded(className, fileStem)
}

type filter struct {
	changedFileStems []string
	syntheticMarkers []string
}

func newFilter(changedFileStems []string, syntheticMarkers []string) *filter {
	return &filter{changedFileStems: changedFileStems, syntheticMarkers: syntheticMarkers}
}

func (f *filter) isIncluded(className string, fileStem string) bool {
	if !util.Contains(f.changedFileStems, fileStem) {
		return false
	}
	return !f.isSynthetic(className)
}

func (f *filter) isSynthetic(className string) bool {
	for _, marker := range f.syntheticMarkers {
		if strings.Contains(className, marker) {
			return true
		}
	}
	return false
}
