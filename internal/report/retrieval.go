package report

import (
	"encoding/xml"
	"github.com/hashicorp/go-retryablehttp"
	"github.com/jenkins-x-apps/jacoco2cobertura/internal/logging"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"io"
	"io/ioutil"
	"net/http"
	"os"
	"strings"
	"time"
)

const (
	// Stdin is the report source denoting the standard input.
	Stdin = "-"
)

var (
	timeout           = time.Second * 30
	stdin   io.Reader = os.Stdin
	r       retriever = &defaultRetriever{}
	logger            = logging.AppLogger().WithFields(log.Fields{"component": "report"})
)

// ParseError is returned if the retrieved report is not a well-formed JaCoCo XML document.
type ParseError struct {
	Source string
	Err    error
}

func (e *ParseError) Error() string {
	return "unable to parse report " + e.Source + ": " + e.Err.Error()
}

type retriever interface {
	getRawReport(source string, retries int) ([]byte, error)
}

type defaultRetriever struct {
}

func (r *defaultRetriever) getRawReport(source string, retries int) ([]byte, error) {
	switch {
	case source == Stdin:
		data, err := ioutil.ReadAll(stdin)
		return data, errors.Wrap(err, "unable to read report from stdin")
	case isURL(source):
		return download(source, retries)
	default:
		data, err := ioutil.ReadFile(source)
		return data, errors.Wrapf(err, "unable to read report %s", source)
	}
}

func isURL(source string) bool {
	return strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://")
}

func download(url string, retries int) ([]byte, error) {
	client := retryablehttp.NewClient()
	client.RetryMax = retries
	client.HTTPClient.Timeout = timeout
	client.Logger = &leveledLogger{logger}

	response, err := client.Get(url)
	if err != nil {
		return nil, errors.Wrapf(err, "unable to retrieve report from %s", url)
	}
	defer response.Body.Close()

	if response.StatusCode < http.StatusOK || response.StatusCode >= http.StatusMultipleChoices {
		return nil, errors.Errorf("unable to retrieve report from %s, status code: %d", url, response.StatusCode)
	}

	data, err := ioutil.ReadAll(response.Body)
	if err != nil {
		return nil, errors.Wrapf(err, "unable to read report from %s", url)
	}
	return data, nil
}

// RetrieveReport reads a JaCoCo report from the specified source, which can be a file, a HTTP(S) URL
// or Stdin. retries bounds the number of retries of a HTTP download.
func RetrieveReport(source string, retries int) (Report, error) {
	rawReport, err := r.getRawReport(source, retries)
	if err != nil {
		return Report{}, err
	}
	logger.Debugf("read %d bytes from %s", len(rawReport), source)

	report := Report{}
	err = xml.Unmarshal(rawReport, &report)
	if err != nil {
		return Report{}, &ParseError{Source: source, Err: err}
	}
	return report, nil
}
