package cobertura

import (
	"encoding/xml"
	"github.com/pkg/errors"
	"io"
)

const (
	// Header is the XML declaration written ahead of the coverage element.
	Header = `<?xml version="1.0" ?>` + "\n"
)

// Write serializes the coverage report to w. The document is marshalled completely before anything is written.
func Write(w io.Writer, coverage *Coverage) error {
	data, err := xml.Marshal(coverage)
	if err != nil {
		return errors.Wrap(err, "unable to marshal cobertura report")
	}

	document := make([]byte, 0, len(Header)+len(data)+1)
	document = append(document, Header...)
	document = append(document, data...)
	document = append(document, '\n')

	_, err = w.Write(document)
	return errors.Wrap(err, "unable to write cobertura report")
}
