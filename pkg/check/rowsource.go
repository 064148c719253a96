// Package check validates meet.csv files and record-set paths against the
// curated database schema, accumulating findings in a report rather than
// failing fast.
package check

import (
	"encoding/csv"
	"io"
)

// RowReader supplies a header row then zero or more data rows as raw text
// fields. Read returns io.EOF when the input is exhausted. The validator is
// sensitive to exact field text, so implementations must not trim or
// otherwise rewrite fields.
type RowReader interface {
	Read() ([]string, error)
}

type csvRowSource struct {
	reader *csv.Reader
}

// NewCSVRowSource wraps an io.Reader in a CSV-backed RowReader. Field
// counts are unchecked here (the header contract is the validator's job)
// and lazy quoting keeps stray quote characters in the raw field text
// instead of aborting the read.
func NewCSVRowSource(r io.Reader) RowReader {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true
	return &csvRowSource{reader: reader}
}

func (s *csvRowSource) Read() ([]string, error) {
	return s.reader.Read()
}
